package gologger

import (
	"context"
	"fmt"
	"maps"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

const rootName = "builder"

var levels = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

var formats = map[string]func() glog.Option{
	"":        glog.WithLoggerTypeJSON,
	"json":    glog.WithLoggerTypeJSON,
	"console": glog.WithLoggerTypeConsole,
	"pretty":  glog.WithLoggerTypePretty,
}

// Provider serves builder module loggers as children of one go-logger root,
// so every module shares the configured level and format.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds the root logger. An empty level keeps the go-logger
// default; an empty format means JSON.
func NewProvider(level, format string) (*Provider, error) {
	typeOption, ok := formats[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("logging: unsupported go-logger format %q", format)
	}
	options := []glog.Option{typeOption()}
	if resolved := levelFor(level); resolved != "" {
		options = append(options, glog.WithLevel(resolved))
	}
	return &Provider{root: glog.NewLogger(options...)}, nil
}

// GetLogger returns the child logger for a builder module such as
// "builder.editor". Blank names get the root.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil || p.root == nil {
		return logging.NoOp()
	}
	name = strings.TrimSpace(name)
	if name == "" || name == rootName {
		return adapt(p.root)
	}
	return adapt(p.root.GetLogger(name))
}

func levelFor(level string) string {
	return levels[strings.ToLower(strings.TrimSpace(level))]
}

// glogAdapter narrows glog.Logger to interfaces.Logger. The method sets
// differ only in the return type of WithContext.
type glogAdapter struct {
	glog.Logger
}

var (
	_ interfaces.Logger       = glogAdapter{}
	_ interfaces.FieldsLogger = glogAdapter{}
)

func adapt(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return glogAdapter{Logger: inner}
}

func (l glogAdapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return adapt(l.Logger.WithContext(ctx))
}

// WithFields copies fields so later caller mutations never reach emitted
// entries. Backends without field support keep logging without them.
func (l glogAdapter) WithFields(fields map[string]any) interfaces.Logger {
	with, ok := l.Logger.(glog.FieldsLogger)
	if len(fields) == 0 || !ok {
		return l
	}
	return adapt(with.WithFields(maps.Clone(fields)))
}
