package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
	"github.com/goliatone/go-sitebuilder/internal/identity"
	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// Cache namespaces follow go-repository-cache, which derives them from the
// snake cased record type name.
const (
	draftNamespace       = "draft_record"
	navigationNamespace  = "navigation_record"
	sectionNamespace     = "section_record"
	publicationNamespace = "publication_record"
)

// BunRepository stores drafts in a SQL database through bun. Reads go through
// go-repository-bun (optionally cached); writes run in a single transaction.
type BunRepository struct {
	db           *bun.DB
	drafts       repository.Repository[*DraftRecord]
	navigation   repository.Repository[*NavigationRecord]
	sections     repository.Repository[*SectionRecord]
	publications repository.Repository[*PublicationRecord]
	cacheService cache.CacheService
	logger       interfaces.Logger
	now          func() time.Time
}

// BunOption configures a BunRepository.
type BunOption func(*BunRepository)

// WithCache wraps reads with go-repository-cache. Writes invalidate every
// builder namespace.
func WithCache(cacheService cache.CacheService, serializer cache.KeySerializer) BunOption {
	return func(r *BunRepository) {
		if cacheService == nil || serializer == nil {
			return
		}
		r.cacheService = cacheService
		r.drafts = repositorycache.New(r.drafts, cacheService, serializer)
		r.navigation = repositorycache.New(r.navigation, cacheService, serializer)
		r.sections = repositorycache.New(r.sections, cacheService, serializer)
		r.publications = repositorycache.New(r.publications, cacheService, serializer)
	}
}

// WithLogger sets the storage logger.
func WithLogger(logger interfaces.Logger) BunOption {
	return func(r *BunRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) BunOption {
	return func(r *BunRepository) {
		if now != nil {
			r.now = now
		}
	}
}

// NewBunRepository constructs a repository over db.
func NewBunRepository(db *bun.DB, opts ...BunOption) *BunRepository {
	if db == nil {
		panic("storage: bun database is required")
	}
	r := &BunRepository{
		db:           db,
		drafts:       newDraftRepository(db),
		navigation:   newNavigationRepository(db),
		sections:     newSectionRepository(db),
		publications: newPublicationRepository(db),
		logger:       logging.NoOp(),
		now:          time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

var _ Repository = (*BunRepository)(nil)

func (r *BunRepository) Load(ctx context.Context, id uuid.UUID) (*drafts.Draft, error) {
	root, err := r.drafts.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "draft", id.String())
	}
	return r.assemble(ctx, root)
}

func (r *BunRepository) LoadBySlug(ctx context.Context, slug string) (*drafts.Draft, error) {
	slug = strings.TrimSpace(slug)
	root, err := r.drafts.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "draft", slug)
	}
	return r.assemble(ctx, root)
}

func (r *BunRepository) Save(ctx context.Context, draft drafts.Draft) error {
	if err := validateForWrite(draft); err != nil {
		return err
	}
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return r.writeDraft(ctx, tx, draft)
	})
	if err != nil {
		r.logger.Error("storage.draft.save_failed", "draft_id", draft.ID, "version", draft.Version, "error", err)
		return err
	}
	r.invalidate(ctx)
	r.logger.Debug("storage.draft.saved", "draft_id", draft.ID, "version", draft.Version)
	return nil
}

func (r *BunRepository) Publish(ctx context.Context, draft drafts.Draft, opts PublishOptions) (*Publication, error) {
	if err := validateForWrite(draft); err != nil {
		return nil, err
	}
	publishedAt := opts.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = r.now().UTC()
	}
	record := &PublicationRecord{
		ID:          identity.PublicationUUID(draft.ID, draft.Version),
		DraftID:     draft.ID,
		Version:     draft.Version,
		Slug:        draft.Slug,
		PublicURL:   opts.PublicURL,
		Payload:     draft.Clone(),
		PublishedAt: publishedAt,
	}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := r.writeDraft(ctx, tx, draft); err != nil {
			return err
		}
		if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
			return fmt.Errorf("insert publication: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("storage.draft.publish_failed", "draft_id", draft.ID, "version", draft.Version, "error", err)
		return nil, err
	}
	r.invalidate(ctx)
	r.logger.Info("storage.draft.published", "draft_id", draft.ID, "version", draft.Version, "public_url", opts.PublicURL)
	return toPublication(record), nil
}

func (r *BunRepository) Published(ctx context.Context, draftID uuid.UUID) (*Publication, error) {
	records, _, err := r.publications.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.draft_id = ?", draftID)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.version DESC")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "publication", draftID.String())
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "publication", Key: draftID.String()}
	}
	return toPublication(records[0]), nil
}

// writeDraft upserts the root row and replaces every child list inside tx.
func (r *BunRepository) writeDraft(ctx context.Context, tx bun.Tx, draft drafts.Draft) error {
	root, navigation, sections := toRecords(draft, r.now().UTC())

	taken, err := tx.NewSelect().
		Model((*DraftRecord)(nil)).
		Where("?TableAlias.slug = ?", root.Slug).
		Where("?TableAlias.id <> ?", root.ID).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("check draft slug: %w", err)
	}
	if taken {
		return ErrSlugConflict
	}

	if _, err := tx.NewInsert().
		Model(root).
		On("CONFLICT (id) DO UPDATE").
		Set("owner_id = EXCLUDED.owner_id").
		Set("kind = EXCLUDED.kind").
		Set("slug = EXCLUDED.slug").
		Set("version = EXCLUDED.version").
		Set("name = EXCLUDED.name").
		Set("tagline = EXCLUDED.tagline").
		Set("description = EXCLUDED.description").
		Set("start_date = EXCLUDED.start_date").
		Set("end_date = EXCLUDED.end_date").
		Set("venue_name = EXCLUDED.venue_name").
		Set("logo_url = EXCLUDED.logo_url").
		Set("banner_url = EXCLUDED.banner_url").
		Set("design = EXCLUDED.design").
		Set("web = EXCLUDED.web").
		Set("app = EXCLUDED.app").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("upsert draft: %w", err)
	}

	if _, err := tx.NewDelete().
		Model((*NavigationRecord)(nil)).
		Where("?TableAlias.draft_id = ?", root.ID).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete navigation modules: %w", err)
	}
	if len(navigation) > 0 {
		if _, err := tx.NewInsert().Model(&navigation).Exec(ctx); err != nil {
			return fmt.Errorf("insert navigation modules: %w", err)
		}
	}

	if _, err := tx.NewDelete().
		Model((*SectionRecord)(nil)).
		Where("?TableAlias.draft_id = ?", root.ID).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete page sections: %w", err)
	}
	if len(sections) > 0 {
		if _, err := tx.NewInsert().Model(&sections).Exec(ctx); err != nil {
			return fmt.Errorf("insert page sections: %w", err)
		}
	}
	return nil
}

func (r *BunRepository) assemble(ctx context.Context, root *DraftRecord) (*drafts.Draft, error) {
	byDraft := repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.draft_id = ?", root.ID)
	})
	byPosition := repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.position ASC")
	})

	navigation, _, err := r.navigation.List(ctx, byDraft, byPosition)
	if err != nil {
		return nil, fmt.Errorf("list navigation modules: %w", err)
	}
	sections, _, err := r.sections.List(ctx, byDraft, byPosition)
	if err != nil {
		return nil, fmt.Errorf("list page sections: %w", err)
	}

	draft := fromRecords(root, navigation, sections)
	return &draft, nil
}

// InvalidateCache drops every cached builder read. It is a no-op without a
// cache.
func (r *BunRepository) InvalidateCache(ctx context.Context) error {
	if r.cacheService == nil {
		return nil
	}
	for _, namespace := range []string{draftNamespace, navigationNamespace, sectionNamespace, publicationNamespace} {
		if err := r.cacheService.DeleteByPrefix(ctx, cachePrefix(namespace)); err != nil {
			return fmt.Errorf("invalidate %s cache: %w", namespace, err)
		}
	}
	return nil
}

func (r *BunRepository) invalidate(ctx context.Context) {
	if err := r.InvalidateCache(ctx); err != nil {
		r.logger.Warn("storage.cache.invalidate_failed", "error", err)
	}
}

func cachePrefix(namespace string) string {
	if namespace == "" {
		return ""
	}
	return namespace + cache.KeySeparator
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
