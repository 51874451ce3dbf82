package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/storage"
	"github.com/goliatone/go-sitebuilder/pkg/testsupport"
)

var (
	draftID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	ownerID = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
)

func sampleDraft(t *testing.T) drafts.Draft {
	t.Helper()
	d, err := drafts.New(draftID, ownerID, drafts.KindEvent, "launch-week", modules.DefaultNavigation(drafts.KindEvent))
	if err != nil {
		t.Fatalf("new draft: %v", err)
	}
	d.Version = 1
	if err := d.SetField("overview.name", "Launch Week"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := d.SetField("design.tokens.colors.primary", "#ff0066"); err != nil {
		t.Fatalf("set color: %v", err)
	}
	if err := d.SetField("app.colors.background", "#101010"); err != nil {
		t.Fatalf("set app color: %v", err)
	}
	module, _ := d.Module("agenda")
	if module == nil {
		t.Fatalf("expected agenda module")
	}
	module.Enabled = false
	d.Sections = []drafts.PageSection{
		{ID: "intro", Kind: "text", Title: "Welcome", Body: "Hello", Enabled: true, Order: 0, Settings: map[string]string{"align": "center"}},
		{ID: "faq", Kind: "faq", Title: "FAQ", Enabled: false, Order: 1},
	}
	return d
}

type repoFactory func(t *testing.T) storage.Repository

func repositories() map[string]repoFactory {
	return map[string]repoFactory{
		"memory": func(t *testing.T) storage.Repository {
			return storage.NewMemoryRepository()
		},
		"bun": func(t *testing.T) storage.Repository {
			return newBunRepository(t)
		},
	}
}

func newBunRepository(t *testing.T, opts ...storage.BunOption) *storage.BunRepository {
	t.Helper()
	db := testsupport.NewBunDB(t)
	if err := storage.CreateSchema(context.Background(), db); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return storage.NewBunRepository(db, opts...)
}

func TestRepositoryRoundTrip(t *testing.T) {
	for name, factory := range repositories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := factory(t)
			want := sampleDraft(t)

			if err := repo.Save(ctx, want); err != nil {
				t.Fatalf("save: %v", err)
			}

			got, err := repo.Load(ctx, draftID)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !drafts.Equal(*got, want) {
				t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", *got, want)
			}
			agenda, _ := got.Module("agenda")
			if agenda == nil || agenda.Enabled {
				t.Fatalf("expected disabled agenda module to survive, got %+v", agenda)
			}
			if got.Design.Tokens.Colors["primary"] != "#ff0066" {
				t.Fatalf("expected design token to survive, got %v", got.Design.Tokens.Colors)
			}

			bySlug, err := repo.LoadBySlug(ctx, "launch-week")
			if err != nil {
				t.Fatalf("load by slug: %v", err)
			}
			if bySlug.ID != draftID {
				t.Fatalf("expected %s, got %s", draftID, bySlug.ID)
			}
		})
	}
}

func TestRepositorySaveReplacesChildren(t *testing.T) {
	for name, factory := range repositories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := factory(t)
			d := sampleDraft(t)
			if err := repo.Save(ctx, d); err != nil {
				t.Fatalf("save: %v", err)
			}

			d.Version = 2
			d.Sections = d.Sections[1:]
			d.Navigation[0], d.Navigation[1] = d.Navigation[1], d.Navigation[0]
			if err := repo.Save(ctx, d); err != nil {
				t.Fatalf("second save: %v", err)
			}

			got, err := repo.Load(ctx, draftID)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !drafts.Equal(*got, d) {
				t.Fatalf("expected replaced children, got %+v", *got)
			}
			if len(got.Sections) != 1 || got.Sections[0].ID != "faq" {
				t.Fatalf("expected only faq section, got %+v", got.Sections)
			}
		})
	}
}

func TestRepositoryNotFound(t *testing.T) {
	for name, factory := range repositories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := factory(t)

			if _, err := repo.Load(ctx, uuid.New()); !storage.IsNotFound(err) {
				t.Fatalf("expected not found, got %v", err)
			}
			if _, err := repo.LoadBySlug(ctx, "missing"); !storage.IsNotFound(err) {
				t.Fatalf("expected not found by slug, got %v", err)
			}
			if _, err := repo.Published(ctx, draftID); !storage.IsNotFound(err) {
				t.Fatalf("expected no publication, got %v", err)
			}
		})
	}
}

func TestRepositoryRejectsSlugConflict(t *testing.T) {
	for name, factory := range repositories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := factory(t)
			first := sampleDraft(t)
			if err := repo.Save(ctx, first); err != nil {
				t.Fatalf("save: %v", err)
			}

			second := sampleDraft(t)
			second.ID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
			if err := repo.Save(ctx, second); !errors.Is(err, storage.ErrSlugConflict) {
				t.Fatalf("expected slug conflict, got %v", err)
			}
		})
	}
}

func TestRepositoryRejectsIncompleteDraft(t *testing.T) {
	repo := storage.NewMemoryRepository()
	d := sampleDraft(t)
	d.ID = uuid.Nil
	if err := repo.Save(context.Background(), d); !errors.Is(err, storage.ErrDraftIDRequired) {
		t.Fatalf("expected id required, got %v", err)
	}
	d = sampleDraft(t)
	d.Slug = "  "
	if err := repo.Save(context.Background(), d); !errors.Is(err, storage.ErrSlugRequired) {
		t.Fatalf("expected slug required, got %v", err)
	}
}

func TestRepositoryPublish(t *testing.T) {
	for name, factory := range repositories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := factory(t)
			publishedAt := time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC)

			d := sampleDraft(t)
			if _, err := repo.Publish(ctx, d, storage.PublishOptions{PublicURL: "https://example.com/events/launch-week", PublishedAt: publishedAt}); err != nil {
				t.Fatalf("publish v1: %v", err)
			}
			d.Version = 2
			if err := d.SetField("overview.tagline", "Ship it"); err != nil {
				t.Fatalf("set tagline: %v", err)
			}
			publication, err := repo.Publish(ctx, d, storage.PublishOptions{PublicURL: "https://example.com/events/launch-week", PublishedAt: publishedAt.Add(time.Hour)})
			if err != nil {
				t.Fatalf("publish v2: %v", err)
			}
			if publication.Version != 2 || !drafts.Equal(publication.Payload, d) {
				t.Fatalf("unexpected publication %+v", publication)
			}

			latest, err := repo.Published(ctx, draftID)
			if err != nil {
				t.Fatalf("published: %v", err)
			}
			if latest.Version != 2 || latest.Payload.Overview.Tagline != "Ship it" {
				t.Fatalf("expected latest publication, got %+v", latest)
			}
			if latest.PublicURL != "https://example.com/events/launch-week" {
				t.Fatalf("unexpected public url %q", latest.PublicURL)
			}
			if latest.ID != publication.ID {
				t.Fatalf("expected latest id %s, got %s", publication.ID, latest.ID)
			}

			stored, err := repo.Load(ctx, draftID)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if stored.Version != 2 {
				t.Fatalf("expected publish to save the draft, got version %d", stored.Version)
			}
		})
	}
}

func TestBunRepositoryRollsBackFailedSave(t *testing.T) {
	ctx := context.Background()
	db := testsupport.NewBunDB(t)
	if err := storage.CreateSchema(ctx, db); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	repo := storage.NewBunRepository(db)

	d := sampleDraft(t)
	if err := repo.Save(ctx, d); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := db.ExecContext(ctx, `CREATE TRIGGER fail_sections BEFORE INSERT ON builder_page_sections BEGIN SELECT RAISE(ABORT, 'boom'); END;`); err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	next := d.Clone()
	next.Version = 2
	if err := next.SetField("overview.name", "Renamed"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := repo.Save(ctx, next); err == nil {
		t.Fatalf("expected save to fail")
	}
	if _, err := repo.Publish(ctx, next, storage.PublishOptions{}); err == nil {
		t.Fatalf("expected publish to fail")
	}

	got, err := repo.Load(ctx, draftID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !drafts.Equal(*got, d) {
		t.Fatalf("expected previous state after rollback, got %+v", *got)
	}
	if _, err := repo.Published(ctx, draftID); !storage.IsNotFound(err) {
		t.Fatalf("expected no publication after rollback, got %v", err)
	}
}

func TestBunRepositoryWithCache(t *testing.T) {
	ctx := context.Background()
	cfg := repocache.DefaultConfig()
	cfg.TTL = time.Minute
	cacheService, err := repocache.NewCacheService(cfg)
	if err != nil {
		t.Fatalf("new cache service: %v", err)
	}
	repo := newBunRepository(t, storage.WithCache(cacheService, repocache.NewDefaultKeySerializer()))

	d := sampleDraft(t)
	if err := repo.Save(ctx, d); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx, draftID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !drafts.Equal(*got, d) {
		t.Fatalf("cached round trip mismatch: %+v", *got)
	}

	if err := d.SetField("overview.name", "Renamed"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	d.Version = 2
	d.Sections = d.Sections[:1]
	if err := repo.Save(ctx, d); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err = repo.Load(ctx, draftID)
	if err != nil {
		t.Fatalf("load after second save: %v", err)
	}
	if got.Overview.Name != "Renamed" || got.Version != 2 || len(got.Sections) != 1 {
		t.Fatalf("expected fresh draft after save, got name=%q version=%d sections=%d", got.Overview.Name, got.Version, len(got.Sections))
	}
	bySlug, err := repo.LoadBySlug(ctx, d.Slug)
	if err != nil {
		t.Fatalf("load by slug: %v", err)
	}
	if bySlug.Version != 2 {
		t.Fatalf("expected slug lookup to see version 2, got %d", bySlug.Version)
	}

	d.Version = 3
	if _, err := repo.Publish(ctx, d, storage.PublishOptions{PublicURL: "https://example.com/events/launch-week"}); err != nil {
		t.Fatalf("first publish: %v", err)
	}
	if _, err := repo.Published(ctx, draftID); err != nil {
		t.Fatalf("published: %v", err)
	}
	d.Version = 4
	if _, err := repo.Publish(ctx, d, storage.PublishOptions{PublicURL: "https://example.com/events/launch-week"}); err != nil {
		t.Fatalf("second publish: %v", err)
	}
	latest, err := repo.Published(ctx, draftID)
	if err != nil {
		t.Fatalf("published after second publish: %v", err)
	}
	if latest.Version != 4 {
		t.Fatalf("expected latest publication version 4, got %d", latest.Version)
	}

	if err := repo.InvalidateCache(ctx); err != nil {
		t.Fatalf("invalidate cache: %v", err)
	}
}

func TestOpenDBRejectsUnknownProvider(t *testing.T) {
	if _, err := storage.OpenDB("memory", ""); !errors.Is(err, storage.ErrUnknownProvider) {
		t.Fatalf("expected unknown provider, got %v", err)
	}
	db, err := storage.OpenDB("sqlite", "file:open_db_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	if err := storage.CreateSchema(context.Background(), db); err != nil {
		t.Fatalf("create schema: %v", err)
	}
}
