package editor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
	"github.com/goliatone/go-sitebuilder/internal/identity"
	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/preview"
	"github.com/goliatone/go-sitebuilder/internal/storage"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// OpenRequest identifies the draft to edit. When ID is empty it is derived
// from Kind and Slug, so the same entity always maps to the same draft.
type OpenRequest struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Kind    drafts.Kind
	Slug    string
	Seed    *drafts.Seed
}

// Service opens edit sessions and keeps at most one active session per
// draft.
type Service struct {
	repo      storage.Repository
	registry  modules.Table
	projector *preview.Projector
	urls      URLBuilder
	logger    interfaces.Logger

	mode        Mode
	steps       int
	livePreview bool

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// ServiceOption configures the editor service.
type ServiceOption func(*Service)

func WithRegistry(registry modules.Table) ServiceOption {
	return func(s *Service) {
		s.registry = registry
	}
}

func WithServiceProjector(projector *preview.Projector) ServiceOption {
	return func(s *Service) {
		if projector != nil {
			s.projector = projector
		}
	}
}

func WithPublicURLs(urls URLBuilder) ServiceOption {
	return func(s *Service) {
		s.urls = urls
	}
}

// WithLogger sets the editor logger; sessions inherit it.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNavigation sets the mode and step count of new sessions.
func WithNavigation(mode Mode, steps int) ServiceOption {
	return func(s *Service) {
		if mode == ModeWizard || mode == ModeTabs {
			s.mode = mode
		}
		if steps > 0 {
			s.steps = steps
		}
	}
}

// WithDefaultLivePreview sets the preview toggle of new sessions.
func WithDefaultLivePreview(enabled bool) ServiceOption {
	return func(s *Service) {
		s.livePreview = enabled
	}
}

// NewService constructs the editor service over repo.
func NewService(repo storage.Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:        repo,
		registry:    modules.Builtin(),
		projector:   preview.NewProjector(),
		logger:      logging.NoOp(),
		mode:        ModeWizard,
		steps:       defaultSteps,
		livePreview: true,
		sessions:    make(map[uuid.UUID]*Session),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Open loads the last saved draft, or builds the defaults for a new one, and
// starts a session on it. A seed is applied on top and leaves the session
// dirty.
func (s *Service) Open(ctx context.Context, req OpenRequest) (*Session, error) {
	if s.repo == nil {
		return nil, ErrRepositoryMissing
	}
	id, err := resolveDraftID(req)
	if err != nil {
		return nil, err
	}
	if err := s.ensureInactive(id); err != nil {
		return nil, err
	}

	saved, err := s.loadOrDefault(ctx, id, req)
	if err != nil {
		return nil, err
	}

	working := saved.Clone()
	if req.Seed != nil {
		if err := req.Seed.Apply(&working); err != nil {
			return nil, err
		}
	}

	session, err := NewSession(s.repo, working,
		WithSnapshot(saved),
		WithMode(s.mode),
		WithSteps(s.steps),
		WithProjector(s.projector),
		WithURLBuilder(s.urls),
		WithSessionLogger(s.logger),
		WithLivePreview(s.livePreview),
	)
	if err != nil {
		return nil, err
	}

	// The load ran unlocked, so another Open may have won the race.
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionActive, id)
	}
	s.sessions[id] = session
	s.logger.Info("editor.session.opened", "draft_id", id, "version", saved.Version, "dirty", session.Dirty())
	return session, nil
}

func (s *Service) ensureInactive(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; ok {
		return fmt.Errorf("%w: %s", ErrSessionActive, id)
	}
	return nil
}

// Session returns the active session for id.
func (s *Service) Session(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

// Close ends the session for id. Unsaved edits are discarded.
func (s *Service) Close(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if session.Dirty() {
		s.logger.Warn("editor.session.closed_dirty", "draft_id", id)
	}
	delete(s.sessions, id)
	return nil
}

func (s *Service) loadOrDefault(ctx context.Context, id uuid.UUID, req OpenRequest) (drafts.Draft, error) {
	loaded, err := s.repo.Load(ctx, id)
	if err == nil {
		return *loaded, nil
	}
	if !storage.IsNotFound(err) {
		return drafts.Draft{}, wrapPersistError(err, "draft load failed", textCodeLoadFailed)
	}

	kind, slug, err := req.target()
	if err != nil {
		return drafts.Draft{}, err
	}
	return drafts.New(id, req.OwnerID, kind, slug, s.registry.DefaultNavigation(kind))
}

// target falls back to the seed for kind and slug. The slug is normalized so
// "Launch Week" and "launch-week" open the same draft.
func (req OpenRequest) target() (drafts.Kind, string, error) {
	kind := req.Kind
	raw := strings.TrimSpace(req.Slug)
	if req.Seed != nil {
		if kind == "" {
			kind = req.Seed.Kind
		}
		if raw == "" {
			raw = strings.TrimSpace(req.Seed.Slug)
		}
	}
	if kind == "" {
		return "", "", ErrKindRequired
	}
	if raw == "" {
		return "", "", storage.ErrSlugRequired
	}
	normalized, err := PublicSlug(raw)
	if err != nil {
		return "", "", wrapSlugError(err)
	}
	return kind, normalized, nil
}

func resolveDraftID(req OpenRequest) (uuid.UUID, error) {
	if req.ID != uuid.Nil {
		return req.ID, nil
	}
	kind, slug, err := req.target()
	if err != nil {
		return uuid.Nil, err
	}
	return identity.DraftUUID(string(kind), slug), nil
}
