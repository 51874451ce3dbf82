package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

var (
	ErrBuilderModeInvalid        = errors.New("builder config: editor mode must be wizard or tabs")
	ErrBuilderStepsInvalid       = errors.New("builder config: step count must be positive")
	ErrStorageProviderUnknown    = errors.New("builder config: storage provider is invalid")
	ErrStorageDSNRequired        = errors.New("builder config: storage dsn is required for sql providers")
	ErrCacheTTLInvalid           = errors.New("builder config: cache ttl must be positive when cache is enabled")
	ErrThemesFeatureRequired     = errors.New("builder config: themes feature must be enabled to configure theme presets")
	ErrThemeDirRequired          = errors.New("builder config: theme directory is required when themes are enabled")
	ErrPublishingBaseURLRequired = errors.New("builder config: publishing base url is required")
	ErrPublishingRouteRequired   = errors.New("builder config: publishing route is required for every draft kind")
	ErrAssistantFeatureRequired  = errors.New("builder config: assistant feature must be enabled to configure an endpoint")
	ErrAssistantEndpointRequired = errors.New("builder config: assistant endpoint is required when the assistant is enabled")
	ErrLoggingProviderRequired   = errors.New("builder config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown    = errors.New("builder config: logging provider is invalid")
	ErrLoggingLevelInvalid       = errors.New("builder config: logging level is invalid")
	ErrLoggingFormatInvalid      = errors.New("builder config: logging format is invalid")
	ErrCommandTimeoutInvalid     = errors.New("builder config: command timeout must not be negative")
)

// Config aggregates the settings a host needs to run the builder.
type Config struct {
	Builder    BuilderConfig    `mapstructure:"builder"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Preview    PreviewConfig    `mapstructure:"preview"`
	Publishing PublishingConfig `mapstructure:"publishing"`
	Assistant  AssistantConfig  `mapstructure:"assistant"`
	Commands   CommandsConfig   `mapstructure:"commands"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Features   Features         `mapstructure:"features"`
}

// BuilderConfig controls edit session navigation.
type BuilderConfig struct {
	Mode  string `mapstructure:"mode"`
	Steps int    `mapstructure:"steps"`
}

// StorageConfig selects the draft repository backend.
type StorageConfig struct {
	Provider string `mapstructure:"provider"`
	DSN      string `mapstructure:"dsn"`
}

// CacheConfig toggles the go-repository-cache read layer.
type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
}

// PreviewConfig configures live preview defaults and the optional theme preset.
type PreviewConfig struct {
	LiveByDefault bool   `mapstructure:"live_by_default"`
	ThemeDir      string `mapstructure:"theme_dir"`
	Theme         string `mapstructure:"theme"`
	Variant       string `mapstructure:"variant"`
}

// PublishingConfig describes where published drafts are served.
type PublishingConfig struct {
	Group   string            `mapstructure:"group"`
	BaseURL string            `mapstructure:"base_url"`
	Routes  map[string]string `mapstructure:"routes"`
}

// RouteConfig converts the publishing settings into a go-urlkit configuration.
func (p PublishingConfig) RouteConfig() *urlkit.Config {
	paths := make(map[string]string, len(p.Routes))
	for kind, path := range p.Routes {
		paths[strings.ToLower(strings.TrimSpace(kind))] = strings.TrimSpace(path)
	}
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    p.GroupName(),
				BaseURL: strings.TrimRight(strings.TrimSpace(p.BaseURL), "/"),
				Paths:   paths,
			},
		},
	}
}

// GroupName returns the configured route group or "public".
func (p PublishingConfig) GroupName() string {
	if name := strings.TrimSpace(p.Group); name != "" {
		return name
	}
	return "public"
}

// AssistantConfig points at the generative text endpoint.
type AssistantConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// CommandsConfig captures command handler behaviour.
type CommandsConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider string `mapstructure:"provider"`
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
}

// Features toggles optional collaborators.
type Features struct {
	Themes    bool `mapstructure:"themes"`
	Assistant bool `mapstructure:"assistant"`
	Logger    bool `mapstructure:"logger"`
}

// DefaultConfig returns settings suitable for a local in-memory builder.
func DefaultConfig() Config {
	return Config{
		Builder: BuilderConfig{
			Mode:  "wizard",
			Steps: 4,
		},
		Storage: StorageConfig{
			Provider: "memory",
		},
		Cache: CacheConfig{
			DefaultTTL: time.Minute,
		},
		Preview: PreviewConfig{
			LiveByDefault: true,
		},
		Publishing: PublishingConfig{
			Group:   "public",
			BaseURL: "http://localhost:8080",
			Routes: map[string]string{
				"event": "/events/:slug",
				"shop":  "/shops/:slug",
			},
		},
		Assistant: AssistantConfig{
			Timeout: 20 * time.Second,
		},
		Commands: CommandsConfig{
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs consistency checks across sections.
func (cfg Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(cfg.Builder.Mode)) {
	case "wizard", "tabs":
	default:
		return fmt.Errorf("%w: %q", ErrBuilderModeInvalid, cfg.Builder.Mode)
	}
	if cfg.Builder.Steps <= 0 {
		return ErrBuilderStepsInvalid
	}

	switch provider := normalize(cfg.Storage.Provider); provider {
	case "memory":
	case "sqlite", "postgres":
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return fmt.Errorf("%w: %s", ErrStorageDSNRequired, provider)
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if cfg.Cache.Enabled && cfg.Cache.DefaultTTL <= 0 {
		return ErrCacheTTLInvalid
	}

	if !cfg.Features.Themes {
		if strings.TrimSpace(cfg.Preview.Theme) != "" {
			return ErrThemesFeatureRequired
		}
	} else if strings.TrimSpace(cfg.Preview.ThemeDir) == "" {
		return ErrThemeDirRequired
	}

	if strings.TrimSpace(cfg.Publishing.BaseURL) == "" {
		return ErrPublishingBaseURLRequired
	}
	for _, kind := range []string{"event", "shop"} {
		if strings.TrimSpace(cfg.Publishing.Routes[kind]) == "" {
			return fmt.Errorf("%w: %s", ErrPublishingRouteRequired, kind)
		}
	}

	endpoint := strings.TrimSpace(cfg.Assistant.Endpoint)
	if cfg.Features.Assistant && endpoint == "" {
		return ErrAssistantEndpointRequired
	}
	if !cfg.Features.Assistant && endpoint != "" {
		return ErrAssistantFeatureRequired
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}

	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	return provider == "console" || provider == "gologger"
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
