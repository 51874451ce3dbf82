package drafts_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
)

const seedDocument = `---
kind: event
slug: harvest-fair
name: Harvest Fair
tagline: Local food, local makers
start_date: "2025-09-20"
venue: Riverside Hall
colors:
  primary: "#b45309"
typography:
  heading: Playfair Display
card_style: outlined
modules:
  - agenda
  - overview
---
Two days of **markets** and workshops.
`

func TestParseSeedAndApply(t *testing.T) {
	seed, err := drafts.ParseSeed([]byte(seedDocument))
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if seed.Kind != drafts.KindEvent || seed.Slug != "harvest-fair" {
		t.Fatalf("unexpected seed header %+v", seed)
	}

	draft := sampleDraft(t)
	if err := seed.Apply(&draft); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if draft.Slug != "harvest-fair" || draft.Overview.Name != "Harvest Fair" || draft.Overview.VenueName != "Riverside Hall" {
		t.Fatalf("unexpected overview %+v", draft.Overview)
	}
	if draft.Overview.Description != "Two days of **markets** and workshops." {
		t.Fatalf("expected body as description, got %q", draft.Overview.Description)
	}
	if draft.Design.Tokens.Colors["primary"] != "#b45309" || draft.Design.Tokens.Typography["heading"] != "Playfair Display" {
		t.Fatalf("unexpected tokens %+v", draft.Design.Tokens)
	}
	if draft.Design.CardStyle != "outlined" {
		t.Fatalf("expected card style, got %q", draft.Design.CardStyle)
	}

	agenda, _ := draft.Module("agenda")
	overview, _ := draft.Module("overview")
	polls, _ := draft.Module("polls")
	if !agenda.Enabled || agenda.Order != 0 || !overview.Enabled || overview.Order != 1 || polls.Enabled {
		t.Fatalf("unexpected navigation %+v", draft.Navigation)
	}
}

func TestSeedApplyRejectsUnknownTokenWithoutMutation(t *testing.T) {
	seed, err := drafts.ParseSeed([]byte("---\ncolors:\n  neon: \"#0f0\"\nname: Changed\n---\n"))
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}

	draft := sampleDraft(t)
	before := draft.Clone()
	if err := seed.Apply(&draft); !errors.Is(err, drafts.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if !drafts.Equal(before, draft) {
		t.Fatal("expected draft unchanged")
	}
}

func TestParseSeedRejectsUnknownKind(t *testing.T) {
	_, err := drafts.ParseSeed([]byte("---\nkind: blog\n---\nbody\n"))
	if !errors.Is(err, drafts.ErrSeedInvalid) {
		t.Fatalf("expected ErrSeedInvalid, got %v", err)
	}
}
