package sitebuilder

import "github.com/goliatone/go-sitebuilder/internal/runtimeconfig"

var (
	ErrBuilderModeInvalid        = runtimeconfig.ErrBuilderModeInvalid
	ErrBuilderStepsInvalid       = runtimeconfig.ErrBuilderStepsInvalid
	ErrStorageProviderUnknown    = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDSNRequired        = runtimeconfig.ErrStorageDSNRequired
	ErrCacheTTLInvalid           = runtimeconfig.ErrCacheTTLInvalid
	ErrThemesFeatureRequired     = runtimeconfig.ErrThemesFeatureRequired
	ErrThemeDirRequired          = runtimeconfig.ErrThemeDirRequired
	ErrPublishingBaseURLRequired = runtimeconfig.ErrPublishingBaseURLRequired
	ErrPublishingRouteRequired   = runtimeconfig.ErrPublishingRouteRequired
	ErrAssistantFeatureRequired  = runtimeconfig.ErrAssistantFeatureRequired
	ErrAssistantEndpointRequired = runtimeconfig.ErrAssistantEndpointRequired
	ErrLoggingProviderRequired   = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown    = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid       = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid      = runtimeconfig.ErrLoggingFormatInvalid
	ErrCommandTimeoutInvalid     = runtimeconfig.ErrCommandTimeoutInvalid
)

type (
	Config           = runtimeconfig.Config
	BuilderConfig    = runtimeconfig.BuilderConfig
	StorageConfig    = runtimeconfig.StorageConfig
	CacheConfig      = runtimeconfig.CacheConfig
	PreviewConfig    = runtimeconfig.PreviewConfig
	PublishingConfig = runtimeconfig.PublishingConfig
	AssistantConfig  = runtimeconfig.AssistantConfig
	CommandsConfig   = runtimeconfig.CommandsConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
	Features         = runtimeconfig.Features
)

// DefaultConfig returns the in-memory defaults.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML file and SITEBUILDER_* environment overrides.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
