package drafts_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
)

func sampleDraft(t *testing.T) drafts.Draft {
	t.Helper()
	draft, err := drafts.New(uuid.New(), uuid.New(), drafts.KindEvent, "spring-summit", []drafts.NavigationModule{
		{ID: "overview", Name: "Overview", Icon: "home", Enabled: true, Order: 0},
		{ID: "agenda", Name: "Agenda", Icon: "calendar", Enabled: true, Order: 1},
		{ID: "polls", Name: "Polls", Icon: "chart", Enabled: false, Order: 2},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return draft
}

func TestNewRejectsUnknownKind(t *testing.T) {
	_, err := drafts.New(uuid.New(), uuid.Nil, drafts.Kind("blog"), "x", nil)
	if !errors.Is(err, drafts.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestSetFieldPaths(t *testing.T) {
	draft := sampleDraft(t)

	cases := map[string]string{
		"slug":                             "autumn-summit",
		"overview.name":                    "Autumn Summit",
		"overview.startDate":               "2025-10-01",
		"overview.bannerUrl":               "https://cdn.example.com/banner.png",
		"design.tokens.colors.primary":     "#0f766e",
		"design.tokens.typography.heading": "Fraunces",
		"design.gradients.hero":            "linear-gradient(#000,#fff)",
		"design.cardStyle":                 "flat",
		"web.heroStyle":                    "centered",
		"app.colors.navText":               "#ffffff",
		"app.typography.body":              "Inter",
		"web.gradients.card":               "none",
	}
	for path, value := range cases {
		if err := draft.SetField(path, value); err != nil {
			t.Fatalf("SetField(%q): %v", path, err)
		}
		got, err := draft.Field(path)
		if err != nil {
			t.Fatalf("Field(%q): %v", path, err)
		}
		if got != value {
			t.Fatalf("Field(%q) = %q, want %q", path, got, value)
		}
	}
	if draft.Design.Tokens.Colors["primary"] != "#0f766e" {
		t.Fatalf("expected color token stored, got %v", draft.Design.Tokens.Colors)
	}
}

func TestSetFieldEmptyClearsOverride(t *testing.T) {
	draft := sampleDraft(t)
	if err := draft.SetField("web.colors.accent", "#f59e0b"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if err := draft.SetField("web.colors.accent", ""); err != nil {
		t.Fatalf("SetField clear: %v", err)
	}
	if _, ok := draft.Web.Colors["accent"]; ok {
		t.Fatalf("expected override removed, got %v", draft.Web.Colors)
	}
}

func TestSetFieldErrorsLeaveDraftUntouched(t *testing.T) {
	draft := sampleDraft(t)
	before := draft.Clone()

	unknown := []string{"", "overview", "overview.title", "design.tokens.colors.hotpink", "web.colors", "mobile.heroStyle", "slug.value"}
	for _, path := range unknown {
		if err := draft.SetField(path, "x"); !errors.Is(err, drafts.ErrUnknownField) {
			t.Fatalf("SetField(%q): expected ErrUnknownField, got %v", path, err)
		}
	}
	if err := draft.SetField("overview.name", 42); !errors.Is(err, drafts.ErrFieldType) {
		t.Fatalf("expected ErrFieldType, got %v", err)
	}
	if !drafts.Equal(before, draft) {
		t.Fatal("expected draft unchanged after rejected updates")
	}
}

func TestCloneIsDeep(t *testing.T) {
	draft := sampleDraft(t)
	draft.Sections = []drafts.PageSection{{ID: "s1", Kind: "text", Settings: map[string]string{"align": "left"}}}
	_ = draft.SetField("design.tokens.colors.primary", "#111111")

	clone := draft.Clone()
	clone.Navigation[0].Enabled = false
	clone.Sections[0].Settings["align"] = "right"
	clone.Design.Tokens.Colors["primary"] = "#222222"

	if !draft.Navigation[0].Enabled || draft.Sections[0].Settings["align"] != "left" || draft.Design.Tokens.Colors["primary"] != "#111111" {
		t.Fatal("mutating the clone leaked into the original")
	}
	if drafts.Equal(draft, clone) {
		t.Fatal("expected clone to differ after mutation")
	}
}

func TestEqualIsOrderSensitiveAndNilTolerant(t *testing.T) {
	a := sampleDraft(t)
	b := a.Clone()
	b.Web.Colors = map[string]string{}
	if !drafts.Equal(a, b) {
		t.Fatal("expected nil and empty maps to compare equal")
	}

	b.Navigation[0], b.Navigation[1] = b.Navigation[1], b.Navigation[0]
	if drafts.Equal(a, b) {
		t.Fatal("expected navigation order to matter")
	}
}

func TestOverviewValidate(t *testing.T) {
	valid := drafts.Overview{Name: "Summit", StartDate: "2025-05-01", EndDate: "2025-05-03"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid overview, got %v", err)
	}

	reversed := drafts.Overview{Name: "Summit", StartDate: "2025-05-03", EndDate: "2025-05-01"}
	if err := reversed.Validate(); err == nil {
		t.Fatal("expected end before start to fail")
	}

	malformed := drafts.Overview{Name: "Summit", StartDate: "05/01/2025"}
	if err := malformed.Validate(); err == nil {
		t.Fatal("expected malformed date to fail")
	}

	if err := (drafts.Overview{}).Validate(); err == nil {
		t.Fatal("expected missing name to fail")
	}
}
