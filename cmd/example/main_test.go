package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	sitebuilder "github.com/goliatone/go-sitebuilder"
	"github.com/goliatone/go-sitebuilder/pkg/testsupport"
)

func TestRunPrintsPreviewAndPublishes(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-seed", "testdata/launch-week.md", "-disable", "speakers", "-publish"}
	if err := run(context.Background(), args, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected preview and publication lines, got %q", out.String())
	}

	var preview sitebuilder.Preview
	if err := json.Unmarshal([]byte(lines[0]), &preview); err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if preview.Kind != "event" || preview.Hero.Name != "Launch Week" {
		t.Fatalf("unexpected preview %+v", preview)
	}
	for _, module := range preview.Modules {
		if module.ID == "speakers" {
			t.Fatalf("expected speakers to be toggled off")
		}
	}
	if len(preview.Modules) != 2 {
		t.Fatalf("expected overview and agenda, got %+v", preview.Modules)
	}

	if !strings.HasSuffix(lines[1], "http://localhost:8080/events/launch-week") {
		t.Fatalf("unexpected publication line %q", lines[1])
	}
}

func TestRunRejectsUnknownKind(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-kind", "festival"}, &out); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" agenda, ,venue ")
	if len(got) != 2 || got[0] != "agenda" || got[1] != "venue" {
		t.Fatalf("unexpected split %q", got)
	}
}

func TestSeedFixtureEnablesListedModules(t *testing.T) {
	seed, err := sitebuilder.ParseSeed(testsupport.LoadFixture(t, "launch-week.md"))
	if err != nil {
		t.Fatalf("parse seed: %v", err)
	}
	if seed.Kind != sitebuilder.KindEvent || seed.Slug != "launch-week" {
		t.Fatalf("unexpected seed target %s/%s", seed.Kind, seed.Slug)
	}
	if len(seed.EnabledModules) != 3 {
		t.Fatalf("expected three listed modules, got %v", seed.EnabledModules)
	}
}
