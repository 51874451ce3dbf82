package di

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitebuilder/internal/activity"
	"github.com/goliatone/go-sitebuilder/internal/assistant"
	buildercmd "github.com/goliatone/go-sitebuilder/internal/commands/builder"
	"github.com/goliatone/go-sitebuilder/internal/editor"
	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/internal/logging/console"
	"github.com/goliatone/go-sitebuilder/internal/logging/gologger"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/preview"
	"github.com/goliatone/go-sitebuilder/internal/runtimeconfig"
	"github.com/goliatone/go-sitebuilder/internal/storage"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// Container wires the builder from a runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	bunDB         *bun.DB
	ownsDB        bool
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer
	httpClient    *http.Client
	activitySink  interfaces.ActivitySink

	registry   modules.Table
	repository storage.Repository
	projector  *preview.Projector
	urls       *editor.RouteURLBuilder
	editorSvc  *editor.Service
	assistant  *assistant.Client
	handlers   buildercmd.Handlers
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB uses db for SQL storage instead of opening the configured DSN.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the read cache used by SQL storage.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the configured logging provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithRepository replaces draft storage entirely.
func WithRepository(repo storage.Repository) Option {
	return func(c *Container) {
		c.repository = repo
	}
}

// WithRegistry replaces the builtin module catalog.
func WithRegistry(registry modules.Table) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// WithHTTPClient sets the client used by the assistant.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithActivitySink forwards publications to a go-users activity feed.
func WithActivitySink(sink interfaces.ActivitySink) Option {
	return func(c *Container) {
		c.activitySink = sink
	}
}

// NewContainer validates cfg and builds every collaborator.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Container{
		Config:   cfg,
		registry: modules.Builtin(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	steps := []func() error{
		c.configureLoggerProvider,
		c.configureCacheDefaults,
		c.configureRepository,
		c.configurePreview,
		c.configurePublishing,
		c.configureEditor,
		c.configureAssistant,
		c.configureCommands,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	cfg := c.Config.Logging
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(cfg.Level, cfg.Format)
		if err != nil {
			return fmt.Errorf("configure gologger provider: %w", err)
		}
		c.loggerProvider = provider
	default:
		c.loggerProvider = console.NewProvider(console.Options{
			Writer:   os.Stderr,
			MinLevel: console.ParseLevel(cfg.Level),
		})
	}
	return nil
}

func (c *Container) configureCacheDefaults() error {
	if !c.Config.Cache.Enabled {
		return nil
	}
	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if ttl := c.Config.Cache.DefaultTTL; ttl > 0 {
			cfg.TTL = ttl
		}
		service, err := repocache.NewCacheService(cfg)
		if err != nil {
			return fmt.Errorf("configure cache: %w", err)
		}
		c.cacheService = service
	}
	if c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
	return nil
}

func (c *Container) configureRepository() error {
	if c.repository != nil {
		return nil
	}
	provider := strings.ToLower(strings.TrimSpace(c.Config.Storage.Provider))
	if provider == storage.ProviderMemory && c.bunDB == nil {
		c.repository = storage.NewMemoryRepository()
		return nil
	}

	if c.bunDB == nil {
		db, err := storage.OpenDB(provider, c.Config.Storage.DSN)
		if err != nil {
			return err
		}
		c.bunDB = db
		c.ownsDB = true
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := storage.CreateSchema(ctx, c.bunDB); err != nil {
		return err
	}

	c.repository = storage.NewBunRepository(c.bunDB,
		storage.WithCache(c.cacheService, c.keySerializer),
		storage.WithLogger(logging.StorageLogger(c.loggerProvider)),
	)
	return nil
}

func (c *Container) configurePreview() error {
	opts := []preview.Option{preview.WithRegistry(c.registry)}
	if c.Config.Features.Themes {
		cfg := c.Config.Preview
		preset, err := preview.LoadPreset(cfg.ThemeDir, cfg.Theme, cfg.Variant)
		if err != nil {
			return err
		}
		opts = append(opts, preview.WithPreset(preset))
	}
	c.projector = preview.NewProjector(opts...)
	return nil
}

func (c *Container) configurePublishing() error {
	publishing := c.Config.Publishing
	c.urls = editor.NewRouteURLBuilder(publishing.RouteConfig(), publishing.GroupName())
	return nil
}

func (c *Container) configureEditor() error {
	c.editorSvc = editor.NewService(c.repository,
		editor.WithRegistry(c.registry),
		editor.WithServiceProjector(c.projector),
		editor.WithPublicURLs(c.urls),
		editor.WithLogger(logging.EditorLogger(c.loggerProvider)),
		editor.WithNavigation(editor.Mode(strings.ToLower(strings.TrimSpace(c.Config.Builder.Mode))), c.Config.Builder.Steps),
		editor.WithDefaultLivePreview(c.Config.Preview.LiveByDefault),
	)
	return nil
}

func (c *Container) configureAssistant() error {
	if !c.Config.Features.Assistant {
		return nil
	}
	opts := []assistant.Option{
		assistant.WithLogger(logging.AssistantLogger(c.loggerProvider)),
	}
	if c.httpClient != nil {
		opts = append(opts, assistant.WithHTTPClient(c.httpClient))
	}
	opts = append(opts, assistant.WithTimeout(c.Config.Assistant.Timeout))
	client, err := assistant.NewClient(c.Config.Assistant.Endpoint, opts...)
	if err != nil {
		return err
	}
	c.assistant = client
	return nil
}

func (c *Container) configureCommands() error {
	opts := buildercmd.Options{
		Logger:  logging.CommandsLogger(c.loggerProvider),
		Timeout: c.Config.Commands.Timeout,
	}
	if recorder := activity.NewRecorder(c.activitySink, activity.WithLogger(logging.ActivityLogger(c.loggerProvider))); recorder != nil {
		opts.OnPublished = recorder.Published
	}
	c.handlers = buildercmd.NewHandlers(c.editorSvc, opts)
	return nil
}

// LoggerProvider returns the configured provider, nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

func (c *Container) Repository() storage.Repository {
	return c.repository
}

func (c *Container) Projector() *preview.Projector {
	return c.projector
}

func (c *Container) PublicURLs() *editor.RouteURLBuilder {
	return c.urls
}

func (c *Container) EditorService() *editor.Service {
	return c.editorSvc
}

// Assistant returns the assistant client, nil when the feature is off.
func (c *Container) Assistant() *assistant.Client {
	return c.assistant
}

func (c *Container) CommandHandlers() buildercmd.Handlers {
	return c.handlers
}

// Close releases a database the container opened itself.
func (c *Container) Close() error {
	if c == nil || !c.ownsDB || c.bunDB == nil {
		return nil
	}
	return c.bunDB.Close()
}
