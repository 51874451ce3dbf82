package console

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// Level orders console severities.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "INFO"
}

// ParseLevel maps a config level name onto a Level. Unknown names fall back to info.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Options configures the console provider. Zero values write to stdout at debug level.
type Options struct {
	Writer   io.Writer
	Now      func() time.Time
	MinLevel Level
}

// Provider writes one logfmt style line per entry.
type Provider struct {
	out      io.Writer
	now      func() time.Time
	minLevel Level
	mu       sync.Mutex
}

// NewProvider builds a console provider.
func NewProvider(opts Options) *Provider {
	p := &Provider{out: opts.Writer, now: opts.Now, minLevel: opts.MinLevel}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p
}

var _ interfaces.LoggerProvider = (*Provider)(nil)

// GetLogger implements interfaces.LoggerProvider.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	return &entryLogger{provider: p, fields: map[string]any{"logger": name}}
}

type entryLogger struct {
	provider *Provider
	fields   map[string]any
	ctx      context.Context
}

var (
	_ interfaces.Logger       = (*entryLogger)(nil)
	_ interfaces.FieldsLogger = (*entryLogger)(nil)
)

func (l *entryLogger) Trace(msg string, args ...any) { l.write(LevelTrace, msg, args) }
func (l *entryLogger) Debug(msg string, args ...any) { l.write(LevelDebug, msg, args) }
func (l *entryLogger) Info(msg string, args ...any)  { l.write(LevelInfo, msg, args) }
func (l *entryLogger) Warn(msg string, args ...any)  { l.write(LevelWarn, msg, args) }
func (l *entryLogger) Error(msg string, args ...any) { l.write(LevelError, msg, args) }
func (l *entryLogger) Fatal(msg string, args ...any) { l.write(LevelFatal, msg, args) }

func (l *entryLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	merged := maps.Clone(l.fields)
	maps.Copy(merged, fields)
	return &entryLogger{provider: l.provider, fields: merged, ctx: l.ctx}
}

func (l *entryLogger) WithContext(ctx context.Context) interfaces.Logger {
	return &entryLogger{provider: l.provider, fields: l.fields, ctx: ctx}
}

func (l *entryLogger) write(level Level, msg string, args []any) {
	if level < l.provider.minLevel {
		return
	}

	fields := maps.Clone(l.fields)
	if fields == nil {
		fields = map[string]any{}
	}
	maps.Copy(fields, logging.ContextFields(l.ctx))
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg_" + strconv.Itoa(i/2)
		}
		if i+1 < len(args) {
			fields[key] = args[i+1]
		} else {
			fields[key] = nil
		}
	}

	var line strings.Builder
	line.WriteString(l.provider.now().UTC().Format(time.RFC3339Nano))
	line.WriteByte(' ')
	line.WriteString(level.String())
	line.WriteByte(' ')
	line.WriteString(msg)
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		line.WriteByte(' ')
		line.WriteString(key)
		line.WriteByte('=')
		line.WriteString(render(fields[key]))
	}
	line.WriteByte('\n')

	l.provider.mu.Lock()
	defer l.provider.mu.Unlock()
	_, _ = io.WriteString(l.provider.out, line.String())
}

func render(value any) string {
	var text string
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		text = v
	case time.Time:
		text = v.UTC().Format(time.RFC3339Nano)
	case error:
		text = v.Error()
	case fmt.Stringer:
		text = v.String()
	default:
		text = fmt.Sprint(v)
	}
	if text == "" || strings.ContainsAny(text, " =\t\n\"") {
		return strconv.Quote(text)
	}
	return text
}
