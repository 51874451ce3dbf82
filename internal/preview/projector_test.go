package preview

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
	"github.com/goliatone/go-sitebuilder/internal/modules"
)

func eventDraft(t *testing.T, nav ...drafts.NavigationModule) drafts.Draft {
	t.Helper()
	draft, err := drafts.New(uuid.MustParse("0b9f3a8e-63a4-4e59-9f62-8a7a4c1d2e10"), uuid.Nil, drafts.KindEvent, "summit", nav)
	if err != nil {
		t.Fatalf("drafts.New: %v", err)
	}
	draft.Overview.Name = "Summit"
	draft.Overview.Description = "Two days of **talks**."
	return draft
}

func TestProjectionIsByteIdentical(t *testing.T) {
	draft := eventDraft(t, modules.DefaultNavigation(drafts.KindEvent)...)
	draft.Design.Tokens.Colors = map[string]string{"primary": "#123456", "accent": "#abcdef"}
	draft.Web.Gradients = map[string]string{"hero": "none"}
	draft.Sections = []drafts.PageSection{
		{ID: "b", Kind: "text", Body: "second", Enabled: true, Order: 2, Settings: map[string]string{"z": "1", "a": "2"}},
		{ID: "a", Kind: "text", Body: "first", Enabled: true, Order: 1},
	}

	projector := NewProjector()
	first, err := projector.ProjectSession(draft, draft, true, SurfaceWeb).JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	second, err := projector.ProjectSession(draft, draft, true, SurfaceWeb).JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected identical output\nfirst:  %s\nsecond: %s", first, second)
	}
	if !bytes.Equal(first, mustJSON(t, NewProjector().Project(draft, SurfaceWeb))) {
		t.Fatal("expected separate projectors to agree")
	}
}

func TestModulesFilteredAndSorted(t *testing.T) {
	registry := modules.NewTable(
		modules.Definition{ID: "alpha", Label: "A", Kinds: []drafts.Kind{drafts.KindEvent}},
		modules.Definition{ID: "bravo", Label: "B", Kinds: []drafts.Kind{drafts.KindEvent}},
		modules.Definition{ID: "charlie", Label: "C", Kinds: []drafts.Kind{drafts.KindEvent}},
	)
	draft := eventDraft(t,
		drafts.NavigationModule{ID: "alpha", Enabled: true, Order: 2},
		drafts.NavigationModule{ID: "bravo", Enabled: false, Order: 1},
		drafts.NavigationModule{ID: "charlie", Enabled: true, Order: 1},
	)

	cfg := NewProjector(WithRegistry(registry)).Project(draft, SurfaceWeb)
	if got := cfg.ModuleIDs(); !reflect.DeepEqual(got, []string{"charlie", "alpha"}) {
		t.Fatalf("expected [charlie alpha], got %v", got)
	}
	if cfg.Modules[0].Label != "C" {
		t.Fatalf("expected registry label, got %q", cfg.Modules[0].Label)
	}
}

func TestTiesKeepInsertionOrder(t *testing.T) {
	draft := eventDraft(t,
		drafts.NavigationModule{ID: "venue", Enabled: true, Order: 1},
		drafts.NavigationModule{ID: "agenda", Enabled: true, Order: 1},
		drafts.NavigationModule{ID: "overview", Enabled: true, Order: 0},
	)
	got := NewProjector().Project(draft, SurfaceWeb).ModuleIDs()
	if !reflect.DeepEqual(got, []string{"overview", "venue", "agenda"}) {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestUnknownModuleDropped(t *testing.T) {
	draft := eventDraft(t,
		drafts.NavigationModule{ID: "agenda", Enabled: true, Order: 0},
		drafts.NavigationModule{ID: "hologram", Enabled: true, Order: 1},
	)
	got := NewProjector().Project(draft, SurfaceWeb).ModuleIDs()
	if !reflect.DeepEqual(got, []string{"agenda"}) {
		t.Fatalf("expected unknown module dropped, got %v", got)
	}
}

func TestTokenPrecedence(t *testing.T) {
	draft := eventDraft(t)
	draft.Design.Tokens.Colors = map[string]string{"primary": "#design", "secondary": "#design2"}
	draft.App.Colors = map[string]string{"primary": "#app"}
	preset := NewPreset("aurora", map[string]string{
		"colors.primary":     "#preset",
		"colors.secondary":   "#preset2",
		"colors.accent":      "#preset3",
		"typography.heading": "Lora",
	})
	projector := NewProjector(WithPreset(preset))

	app := projector.Project(draft, SurfaceApp)
	if app.Colors["primary"] != "#app" {
		t.Fatalf("expected surface override, got %q", app.Colors["primary"])
	}
	if app.Colors["secondary"] != "#design2" {
		t.Fatalf("expected design token, got %q", app.Colors["secondary"])
	}
	if app.Colors["accent"] != "#preset3" || app.Typography["heading"] != "Lora" {
		t.Fatalf("expected preset tokens, got %q / %q", app.Colors["accent"], app.Typography["heading"])
	}
	if app.Colors["border"] != defaultColors["border"] || app.Typography["body"] != defaultTypography["body"] {
		t.Fatal("expected platform defaults for unset tokens")
	}
	if app.Theme != "aurora" {
		t.Fatalf("expected preset name, got %q", app.Theme)
	}

	web := projector.Project(draft, SurfaceWeb)
	if web.Colors["primary"] != "#design" {
		t.Fatalf("expected app override not to leak into web, got %q", web.Colors["primary"])
	}
}

func TestEveryTokenResolves(t *testing.T) {
	cfg := NewProjector().Project(eventDraft(t), SurfaceWeb)
	for _, group := range []struct {
		keys   []string
		values map[string]string
	}{
		{drafts.ColorKeys, cfg.Colors},
		{drafts.TypographyKeys, cfg.Typography},
		{drafts.GradientKeys, cfg.Gradients},
	} {
		for _, key := range group.keys {
			if strings.TrimSpace(group.values[key]) == "" {
				t.Fatalf("token %q did not resolve", key)
			}
		}
	}
	if cfg.Hero.Gradient != cfg.Gradients["hero"] {
		t.Fatal("expected hero gradient to follow the resolved token")
	}
}

func TestProjectSessionSelectsSource(t *testing.T) {
	snapshot := eventDraft(t)
	draft := snapshot.Clone()
	draft.Overview.Name = "Summit (edited)"

	projector := NewProjector()
	live := projector.ProjectSession(draft, snapshot, true, SurfaceWeb)
	saved := projector.ProjectSession(draft, snapshot, false, SurfaceWeb)

	if live.Source != SourceDraft || live.Hero.Name != "Summit (edited)" {
		t.Fatalf("unexpected live projection %+v", live.Hero)
	}
	if saved.Source != SourceSnapshot || saved.Hero.Name != "Summit" {
		t.Fatalf("unexpected saved projection %+v", saved.Hero)
	}
}

func TestDescriptionRenderedAsHTML(t *testing.T) {
	cfg := NewProjector().Project(eventDraft(t), SurfaceWeb)
	if cfg.Hero.DescriptionHTML != "<p>Two days of <strong>talks</strong>.</p>" {
		t.Fatalf("unexpected description html %q", cfg.Hero.DescriptionHTML)
	}
}

func TestSectionsFilteredSortedAndDetached(t *testing.T) {
	draft := eventDraft(t)
	draft.Sections = []drafts.PageSection{
		{ID: "late", Enabled: true, Order: 5, Settings: map[string]string{"tone": "warm"}},
		{ID: "hidden", Enabled: false, Order: 0},
		{ID: "early", Enabled: true, Order: 1},
	}
	cfg := NewProjector().Project(draft, SurfaceWeb)
	if len(cfg.Sections) != 2 || cfg.Sections[0].ID != "early" || cfg.Sections[1].ID != "late" {
		t.Fatalf("unexpected sections %+v", cfg.Sections)
	}
	cfg.Sections[1].Settings["tone"] = "cold"
	if draft.Sections[0].Settings["tone"] != "warm" {
		t.Fatal("projection shares section settings with the draft")
	}
}

func TestLoadPresetRequiresDirectory(t *testing.T) {
	if _, err := LoadPreset(" ", "aurora", ""); err == nil {
		t.Fatal("expected error for blank directory")
	}
	if _, err := LoadPreset(t.TempDir()+"/missing", "aurora", ""); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func mustJSON(t *testing.T, cfg Config) []byte {
	t.Helper()
	out, err := cfg.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	return out
}
