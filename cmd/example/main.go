package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	sitebuilder "github.com/goliatone/go-sitebuilder"
	"github.com/google/uuid"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("sitebuilder example: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sitebuilder-example", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a YAML config file (defaults apply when empty)")
	seedPath := fs.String("seed", "", "Markdown seed document with front matter")
	kind := fs.String("kind", "event", "Draft kind used when no seed is given (event or shop)")
	slug := fs.String("slug", "demo", "Draft slug used when no seed is given")
	surface := fs.String("surface", "web", "Preview surface (web or app)")
	disable := fs.String("disable", "", "Comma separated module ids to toggle before saving")
	publish := fs.Bool("publish", false, "Publish the draft after saving")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := sitebuilder.DefaultConfig()
	if *configPath != "" {
		loaded, err := sitebuilder.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	module, err := sitebuilder.New(cfg)
	if err != nil {
		return fmt.Errorf("build module: %w", err)
	}
	defer module.Close()

	req := sitebuilder.OpenRequest{
		Kind: sitebuilder.Kind(*kind),
		Slug: *slug,
	}
	if *seedPath != "" {
		raw, err := os.ReadFile(*seedPath)
		if err != nil {
			return fmt.Errorf("read seed: %w", err)
		}
		seed, err := sitebuilder.ParseSeed(raw)
		if err != nil {
			return fmt.Errorf("parse seed: %w", err)
		}
		req = sitebuilder.OpenRequest{Seed: &seed}
	}

	session, err := module.Open(ctx, req)
	if err != nil {
		return fmt.Errorf("open draft: %w", err)
	}

	handlers := module.Commands()
	for _, id := range splitList(*disable) {
		if err := handlers.Toggle.Execute(ctx, sitebuilder.ToggleModuleCommand{DraftID: session.ID(), ModuleID: id}); err != nil {
			return fmt.Errorf("toggle %s: %w", id, err)
		}
	}
	if err := handlers.Save.Execute(ctx, sitebuilder.SaveDraftCommand{DraftID: session.ID()}); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	preview, err := session.Preview(sitebuilder.Surface(*surface)).JSON()
	if err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	fmt.Fprintf(out, "%s\n", preview)

	if !*publish {
		return nil
	}
	return publishDraft(ctx, module, session.ID(), out)
}

func publishDraft(ctx context.Context, module *sitebuilder.Module, id uuid.UUID, out io.Writer) error {
	if err := module.Commands().Publish.Execute(ctx, sitebuilder.PublishDraftCommand{DraftID: id}); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	publication, err := module.Repository().Published(ctx, id)
	if err != nil {
		return fmt.Errorf("load publication: %w", err)
	}
	fmt.Fprintf(out, "published version %d at %s\n", publication.Version, publication.PublicURL)
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
