package storage

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
	"github.com/goliatone/go-sitebuilder/internal/identity"
)

// MemoryRepository keeps drafts in process. It mirrors the SQL repository:
// values are copied in and out, slugs are unique, and publication history is
// ordered by version.
type MemoryRepository struct {
	mu           sync.RWMutex
	drafts       map[uuid.UUID]drafts.Draft
	publications map[uuid.UUID][]Publication
	now          func() time.Time
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		drafts:       make(map[uuid.UUID]drafts.Draft),
		publications: make(map[uuid.UUID][]Publication),
		now:          time.Now,
	}
}

var _ Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Load(_ context.Context, id uuid.UUID) (*drafts.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.drafts[id]
	if !ok {
		return nil, &NotFoundError{Resource: "draft", Key: id.String()}
	}
	out := stored.Clone()
	return &out, nil
}

func (r *MemoryRepository) LoadBySlug(_ context.Context, slug string) (*drafts.Draft, error) {
	slug = strings.TrimSpace(slug)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.drafts {
		if stored.Slug == slug {
			out := stored.Clone()
			return &out, nil
		}
	}
	return nil, &NotFoundError{Resource: "draft", Key: slug}
}

func (r *MemoryRepository) Save(_ context.Context, draft drafts.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(draft)
}

func (r *MemoryRepository) Publish(_ context.Context, draft drafts.Draft, opts PublishOptions) (*Publication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.saveLocked(draft); err != nil {
		return nil, err
	}

	publishedAt := opts.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = r.now().UTC()
	}
	publication := Publication{
		ID:          identity.PublicationUUID(draft.ID, draft.Version),
		DraftID:     draft.ID,
		Version:     draft.Version,
		Slug:        draft.Slug,
		PublicURL:   opts.PublicURL,
		Payload:     draft.Clone(),
		PublishedAt: publishedAt,
	}
	r.publications[draft.ID] = append(r.publications[draft.ID], publication)

	out := publication
	out.Payload = publication.Payload.Clone()
	return &out, nil
}

func (r *MemoryRepository) Published(_ context.Context, draftID uuid.UUID) (*Publication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.publications[draftID]
	if len(history) == 0 {
		return nil, &NotFoundError{Resource: "publication", Key: draftID.String()}
	}
	out := history[len(history)-1]
	out.Payload = out.Payload.Clone()
	return &out, nil
}

func (r *MemoryRepository) saveLocked(draft drafts.Draft) error {
	if err := validateForWrite(draft); err != nil {
		return err
	}
	for id, stored := range r.drafts {
		if id != draft.ID && stored.Slug == draft.Slug {
			return ErrSlugConflict
		}
	}
	r.drafts[draft.ID] = draft.Clone()
	return nil
}
