package sitebuilder

import (
	"context"

	"github.com/goliatone/go-sitebuilder/internal/assistant"
	buildercmd "github.com/goliatone/go-sitebuilder/internal/commands/builder"
	"github.com/goliatone/go-sitebuilder/internal/di"
	"github.com/goliatone/go-sitebuilder/internal/drafts"
	"github.com/goliatone/go-sitebuilder/internal/editor"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/preview"
	"github.com/goliatone/go-sitebuilder/internal/storage"
	"github.com/google/uuid"
)

type (
	Draft            = drafts.Draft
	Kind             = drafts.Kind
	Seed             = drafts.Seed
	NavigationModule = drafts.NavigationModule
	PageSection      = drafts.PageSection

	Session          = editor.Session
	OpenRequest      = editor.OpenRequest
	EditorMode       = editor.Mode
	Publication      = storage.Publication
	Repository       = storage.Repository
	Preview          = preview.Config
	Surface          = preview.Surface
	ModuleDefinition = modules.Definition

	ContentSuggestion = assistant.ContentSuggestion
	PricingSuggestion = assistant.PricingSuggestion

	SaveDraftCommand      = buildercmd.SaveDraftCommand
	PublishDraftCommand   = buildercmd.PublishDraftCommand
	ToggleModuleCommand   = buildercmd.ToggleModuleCommand
	ReorderModulesCommand = buildercmd.ReorderModulesCommand
)

const (
	KindEvent = drafts.KindEvent
	KindShop  = drafts.KindShop

	SurfaceWeb = preview.SurfaceWeb
	SurfaceApp = preview.SurfaceApp
)

var (
	ErrStepOutOfRange           = editor.ErrStepOutOfRange
	ErrStepUnreachable          = editor.ErrStepUnreachable
	ErrSaveInProgress           = editor.ErrSaveInProgress
	ErrSessionActive            = editor.ErrSessionActive
	ErrSessionNotFound          = editor.ErrSessionNotFound
	ErrSlugConflict             = storage.ErrSlugConflict
	ErrAssistantUnavailable     = assistant.ErrAssistantUnavailable
	ErrAssistantResponseInvalid = assistant.ErrAssistantResponseInvalid
)

// Option customises the container behind a Module.
type Option = di.Option

var (
	WithBunDB          = di.WithBunDB
	WithCache          = di.WithCache
	WithLoggerProvider = di.WithLoggerProvider
	WithRepository     = di.WithRepository
	WithHTTPClient     = di.WithHTTPClient
	WithActivitySink   = di.WithActivitySink
)

// Module is the builder runtime façade.
type Module struct {
	container *di.Container
}

// New validates cfg and wires the builder.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Open starts an edit session. See editor.Service.Open.
func (m *Module) Open(ctx context.Context, req OpenRequest) (*Session, error) {
	return m.container.EditorService().Open(ctx, req)
}

// Session returns the active session of a draft.
func (m *Module) Session(id uuid.UUID) (*Session, error) {
	return m.container.EditorService().Session(id)
}

// CloseSession ends the session of a draft. Unsaved edits are discarded.
func (m *Module) CloseSession(id uuid.UUID) error {
	return m.container.EditorService().Close(id)
}

// Editor returns the session service.
func (m *Module) Editor() *editor.Service {
	return m.container.EditorService()
}

// Repository returns draft storage.
func (m *Module) Repository() Repository {
	return m.container.Repository()
}

// Assistant returns the assistant client, nil when disabled.
func (m *Module) Assistant() *assistant.Client {
	return m.container.Assistant()
}

// Commands returns the builder command handlers.
func (m *Module) Commands() buildercmd.Handlers {
	return m.container.CommandHandlers()
}

// Catalog lists the built-in modules available to kind.
func Catalog(kind Kind) []ModuleDefinition {
	return modules.Catalog(kind)
}

// ParseSeed reads a markdown seed document.
func ParseSeed(source []byte) (Seed, error) {
	return drafts.ParseSeed(source)
}

// ApplyContentSuggestion writes an assistant suggestion into a session.
func ApplyContentSuggestion(session *Session, suggestion ContentSuggestion) error {
	return assistant.ApplyContentSuggestion(session, suggestion)
}

// Close releases resources the module opened.
func (m *Module) Close() error {
	return m.container.Close()
}
