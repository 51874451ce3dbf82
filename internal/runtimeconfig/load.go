package runtimeconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SITEBUILDER_STORAGE_DSN.
const EnvPrefix = "SITEBUILDER"

// Load reads configuration from path (any format viper understands) layered over
// DefaultConfig, applies environment overrides, and validates the result. An
// empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("builder config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("builder config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("builder.mode", cfg.Builder.Mode)
	v.SetDefault("builder.steps", cfg.Builder.Steps)

	v.SetDefault("storage.provider", cfg.Storage.Provider)
	v.SetDefault("storage.dsn", cfg.Storage.DSN)

	v.SetDefault("cache.enabled", cfg.Cache.Enabled)
	v.SetDefault("cache.default_ttl", cfg.Cache.DefaultTTL)

	v.SetDefault("preview.live_by_default", cfg.Preview.LiveByDefault)
	v.SetDefault("preview.theme_dir", cfg.Preview.ThemeDir)
	v.SetDefault("preview.theme", cfg.Preview.Theme)
	v.SetDefault("preview.variant", cfg.Preview.Variant)

	v.SetDefault("publishing.group", cfg.Publishing.Group)
	v.SetDefault("publishing.base_url", cfg.Publishing.BaseURL)
	v.SetDefault("publishing.routes", cfg.Publishing.Routes)

	v.SetDefault("assistant.endpoint", cfg.Assistant.Endpoint)
	v.SetDefault("assistant.timeout", cfg.Assistant.Timeout)

	v.SetDefault("commands.timeout", cfg.Commands.Timeout)

	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)

	v.SetDefault("features.themes", cfg.Features.Themes)
	v.SetDefault("features.assistant", cfg.Features.Assistant)
	v.SetDefault("features.logger", cfg.Features.Logger)
}
