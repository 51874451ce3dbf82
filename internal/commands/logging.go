package commands

import (
	"strings"

	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// CommandLogger returns the command logger with a component field, optionally
// scoped to a sub module such as "builder".
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	logger := logging.CommandsLogger(provider)
	fields := map[string]any{"component": "command"}
	if name := strings.TrimSpace(module); name != "" {
		fields["command_module"] = name
	}
	return logging.WithFields(logger, fields)
}
