package editor

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/internal/preview"
	"github.com/goliatone/go-sitebuilder/internal/storage"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// Mode controls how steps may be navigated.
type Mode string

const (
	// ModeWizard allows going back freely and forward one step at a time.
	ModeWizard Mode = "wizard"
	// ModeTabs allows any step at any time.
	ModeTabs Mode = "tabs"
)

const defaultSteps = 4

// Session is one editor working on one draft. All methods are safe for
// concurrent use; mutations apply in call order.
type Session struct {
	mu sync.Mutex

	repo      storage.Repository
	projector *preview.Projector
	urls      URLBuilder
	logger    interfaces.Logger
	now       func() time.Time

	mode    Mode
	steps   int
	step    int
	visited int

	draft          drafts.Draft
	snapshot       drafts.Draft
	dirty          bool
	revision       uint64
	previewEnabled bool
	saving         bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithMode sets the navigation mode. Unknown modes are ignored.
func WithMode(mode Mode) SessionOption {
	return func(s *Session) {
		if mode == ModeWizard || mode == ModeTabs {
			s.mode = mode
		}
	}
}

// WithSteps sets the number of steps.
func WithSteps(steps int) SessionOption {
	return func(s *Session) {
		if steps > 0 {
			s.steps = steps
		}
	}
}

// WithProjector overrides the preview projector.
func WithProjector(projector *preview.Projector) SessionOption {
	return func(s *Session) {
		if projector != nil {
			s.projector = projector
		}
	}
}

// WithURLBuilder sets the builder used for published URLs.
func WithURLBuilder(urls URLBuilder) SessionOption {
	return func(s *Session) {
		s.urls = urls
	}
}

// WithSessionLogger sets the session logger.
func WithSessionLogger(logger interfaces.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSnapshot sets the last saved state when it differs from the working
// draft, for example after a seed was applied.
func WithSnapshot(snapshot drafts.Draft) SessionOption {
	return func(s *Session) {
		s.snapshot = snapshot.Clone()
	}
}

// WithLivePreview sets the initial preview toggle.
func WithLivePreview(enabled bool) SessionOption {
	return func(s *Session) {
		s.previewEnabled = enabled
	}
}

// WithSessionClock overrides the publication timestamp source.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSession starts editing draft. Unless WithSnapshot is given, draft is
// also the saved snapshot and the session starts clean.
func NewSession(repo storage.Repository, draft drafts.Draft, opts ...SessionOption) (*Session, error) {
	if repo == nil {
		return nil, ErrRepositoryMissing
	}
	s := &Session{
		repo:           repo,
		projector:      preview.NewProjector(),
		logger:         logging.NoOp(),
		now:            time.Now,
		mode:           ModeWizard,
		steps:          defaultSteps,
		draft:          draft.Clone(),
		snapshot:       draft.Clone(),
		previewEnabled: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.dirty = !drafts.Equal(s.draft, s.snapshot)
	s.logger = logging.WithDraftContext(s.logger, draft.ID.String(), string(draft.Kind), draft.Slug)
	return s, nil
}

// ID returns the draft id.
func (s *Session) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.ID
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Visited returns the furthest step reached.
func (s *Session) Visited() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visited
}

func (s *Session) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}

func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Draft returns a copy of the working draft.
func (s *Session) Draft() drafts.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// Snapshot returns a copy of the last saved state.
func (s *Session) Snapshot() drafts.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone()
}

func (s *Session) PreviewEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewEnabled
}

// SetStep moves to step. In wizard mode only the current step or an earlier
// one is reachable; NextStep is the only way forward.
func (s *Session) SetStep(step int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if step < 0 || step >= s.steps {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, step)
	}
	if s.mode == ModeWizard && step > s.step {
		return fmt.Errorf("%w: %d", ErrStepUnreachable, step)
	}
	s.moveLocked(step)
	return nil
}

// NextStep advances one step and extends the visited mark.
func (s *Session) NextStep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.step + 1
	if next >= s.steps {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, next)
	}
	s.moveLocked(next)
	return nil
}

// PreviousStep goes back one step.
func (s *Session) PreviousStep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.step - 1
	if prev < 0 {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, prev)
	}
	s.moveLocked(prev)
	return nil
}

func (s *Session) moveLocked(step int) {
	s.step = step
	if step > s.visited {
		s.visited = step
	}
}

// UpdateField sets one draft field by path. Every successful call marks the
// session dirty, even when the value did not change.
func (s *Session) UpdateField(path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.SetField(path, value); err != nil {
		return err
	}
	s.touchLocked()
	return nil
}

// ToggleModule flips a module's enabled flag. Unknown ids change nothing but
// still mark the session dirty.
func (s *Session) ToggleModule(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if module, _ := s.draft.Module(strings.TrimSpace(id)); module != nil {
		module.Enabled = !module.Enabled
	}
	s.touchLocked()
}

// ReorderModules assigns order by position in ids, which must list every
// enabled module exactly once. Disabled modules keep their order.
func (s *Session) ReorderModules(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	enabled := map[string]bool{}
	for _, module := range s.draft.Navigation {
		if module.Enabled {
			enabled[module.ID] = true
		}
	}
	if err := checkPermutation(ids, enabled); err != nil {
		return err
	}
	for position, id := range ids {
		module, _ := s.draft.Module(id)
		module.Order = position
	}
	s.touchLocked()
	return nil
}

// AddSection appends section after the existing ones.
func (s *Session) AddSection(section drafts.PageSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	section.ID = strings.TrimSpace(section.ID)
	if section.ID == "" {
		return ErrSectionIDRequired
	}
	if existing, _ := s.draft.Section(section.ID); existing != nil {
		return fmt.Errorf("%w: %s", ErrSectionExists, section.ID)
	}
	order := 0
	for _, current := range s.draft.Sections {
		if current.Order >= order {
			order = current.Order + 1
		}
	}
	section.Order = order
	section.Settings = maps.Clone(section.Settings)
	s.draft.Sections = append(s.draft.Sections, section)
	s.touchLocked()
	return nil
}

// UpdateSection replaces the content of an existing section. Its order is
// kept.
func (s *Session) UpdateSection(section drafts.PageSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, _ := s.draft.Section(strings.TrimSpace(section.ID))
	if existing == nil {
		return fmt.Errorf("%w: %s", ErrSectionNotFound, section.ID)
	}
	existing.Kind = section.Kind
	existing.Title = section.Title
	existing.Body = section.Body
	existing.Enabled = section.Enabled
	existing.Settings = maps.Clone(section.Settings)
	s.touchLocked()
	return nil
}

func (s *Session) RemoveSection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, index := s.draft.Section(strings.TrimSpace(id))
	if index < 0 {
		return fmt.Errorf("%w: %s", ErrSectionNotFound, id)
	}
	s.draft.Sections = append(s.draft.Sections[:index:index], s.draft.Sections[index+1:]...)
	s.touchLocked()
	return nil
}

// ReorderSections assigns order by position in ids, which must list every
// section exactly once.
func (s *Session) ReorderSections(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make(map[string]bool, len(s.draft.Sections))
	for _, section := range s.draft.Sections {
		all[section.ID] = true
	}
	if err := checkPermutation(ids, all); err != nil {
		return err
	}
	for position, id := range ids {
		section, _ := s.draft.Section(id)
		section.Order = position
	}
	s.touchLocked()
	return nil
}

func (s *Session) touchLocked() {
	s.dirty = true
	s.revision++
}

func checkPermutation(ids []string, want map[string]bool) error {
	if len(ids) != len(want) {
		return ErrReorderMismatch
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !want[id] || seen[id] {
			return fmt.Errorf("%w: %q", ErrReorderMismatch, id)
		}
		seen[id] = true
	}
	return nil
}

// SetPreviewEnabled chooses whether Preview shows the working draft or the
// saved snapshot.
func (s *Session) SetPreviewEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewEnabled = enabled
}

// Preview projects the working draft, or the snapshot when live preview is
// off, for surface.
func (s *Session) Preview(surface preview.Surface) preview.Config {
	s.mu.Lock()
	draft := s.draft.Clone()
	snapshot := s.snapshot.Clone()
	enabled := s.previewEnabled
	s.mu.Unlock()

	return s.projector.ProjectSession(draft, snapshot, enabled, surface)
}

// Save writes the draft as the next version under its normalized slug. On
// failure the draft, the snapshot and the dirty flag are left as they were.
func (s *Session) Save(ctx context.Context) error {
	next, revision, err := s.beginPersist()
	if err != nil {
		return err
	}

	err = s.repo.Save(ctx, next)
	s.finishPersist(next, revision, err)
	if err != nil {
		s.logger.Error("editor.draft.save_failed", "version", next.Version, "error", err)
		return wrapPersistError(err, "draft save failed", textCodeSaveFailed)
	}
	s.logger.Info("editor.draft.saved", "version", next.Version)
	return nil
}

// Publish saves the draft and records a publication of exactly the saved
// state.
func (s *Session) Publish(ctx context.Context) (*storage.Publication, error) {
	next, revision, err := s.beginPersist()
	if err != nil {
		return nil, err
	}

	publicURL := ""
	if s.urls != nil {
		publicURL, err = s.urls.PublicURL(next.Kind, next.Slug)
		if err != nil {
			s.finishPersist(next, revision, err)
			return nil, wrapURLError(err)
		}
	}

	publication, err := s.repo.Publish(ctx, next, storage.PublishOptions{
		PublicURL:   publicURL,
		PublishedAt: s.now().UTC(),
	})
	s.finishPersist(next, revision, err)
	if err != nil {
		s.logger.Error("editor.draft.publish_failed", "version", next.Version, "error", err)
		return nil, wrapPersistError(err, "draft publish failed", textCodePublishFailed)
	}
	s.logger.Info("editor.draft.published", "version", next.Version, "public_url", publicURL)
	return publication, nil
}

func (s *Session) beginPersist() (drafts.Draft, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saving {
		return drafts.Draft{}, 0, ErrSaveInProgress
	}
	next := s.draft.Clone()
	normalized, err := PublicSlug(next.Slug)
	if err != nil {
		return drafts.Draft{}, 0, wrapSlugError(err)
	}
	s.saving = true
	next.Slug = normalized
	next.Version++
	return next, s.revision, nil
}

// finishPersist commits next as the snapshot when err is nil. Edits made while
// the write was in flight stay in the draft and keep it dirty.
func (s *Session) finishPersist(next drafts.Draft, revision uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saving = false
	if err != nil {
		return
	}
	s.snapshot = next.Clone()
	if s.revision == revision {
		s.draft = next.Clone()
		s.dirty = false
		return
	}
	s.draft.Version = next.Version
}
