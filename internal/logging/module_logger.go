package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

const (
	rootModule      = "builder"
	editorModule    = "builder.editor"
	storageModule   = "builder.storage"
	assistantModule = "builder.assistant"
	commandsModule  = "builder.commands"
	activityModule  = "builder.activity"
)

const (
	fieldDraftID = "draft_id"
	fieldKind    = "draft_kind"
	fieldSlug    = "slug"
)

// ModuleLogger returns a logger scoped to module. A nil provider yields the
// no-op logger; otherwise the module name is attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if strings.TrimSpace(module) == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// EditorLogger returns the logger used by edit sessions.
func EditorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, editorModule)
}

// StorageLogger returns the logger used by draft repositories.
func StorageLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storageModule)
}

// AssistantLogger returns the logger used by the generative assistant client.
func AssistantLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, assistantModule)
}

// CommandsLogger returns the logger used by command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// ActivityLogger returns the logger used when forwarding activity records.
func ActivityLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, activityModule)
}

// WithDraftContext attaches draft identifiers to logger. Empty values are skipped.
func WithDraftContext(logger interfaces.Logger, draftID, kind, slug string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(draftID); trimmed != "" {
		fields[fieldDraftID] = trimmed
	}
	if trimmed := strings.TrimSpace(kind); trimmed != "" {
		fields[fieldKind] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[fieldSlug] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that discards every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
