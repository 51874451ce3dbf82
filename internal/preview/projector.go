package preview

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
	"github.com/goliatone/go-sitebuilder/internal/modules"
)

// Registry resolves navigation module metadata.
type Registry interface {
	Lookup(id string) (modules.Definition, bool)
}

// Projector derives preview configs from drafts. It holds no mutable state and
// is safe for concurrent use.
type Projector struct {
	registry Registry
	preset   Preset
	markdown goldmark.Markdown
}

// Option configures a Projector.
type Option func(*Projector)

// WithRegistry overrides the module registry. Defaults to the builtin catalog.
func WithRegistry(registry Registry) Option {
	return func(p *Projector) {
		if registry != nil {
			p.registry = registry
		}
	}
}

// WithPreset inserts a theme token layer below draft tokens.
func WithPreset(preset Preset) Option {
	return func(p *Projector) {
		p.preset = preset
	}
}

// NewProjector constructs a projector.
func NewProjector(opts ...Option) *Projector {
	p := &Projector{
		registry: modules.Builtin(),
		markdown: newMarkdownEngine(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// ProjectSession projects draft when preview is enabled and snapshot otherwise.
func (p *Projector) ProjectSession(draft, snapshot drafts.Draft, previewEnabled bool, surface Surface) Config {
	if previewEnabled {
		return p.project(draft, SourceDraft, surface)
	}
	return p.project(snapshot, SourceSnapshot, surface)
}

// Project builds the config for source on surface.
func (p *Projector) Project(source drafts.Draft, surface Surface) Config {
	return p.project(source, SourceDraft, surface)
}

func (p *Projector) project(d drafts.Draft, origin Source, surface Surface) Config {
	target := d.Web
	if surface == SurfaceApp {
		target = d.App
	} else {
		surface = SurfaceWeb
	}

	gradients := p.resolve("gradients", drafts.GradientKeys, target.Gradients, d.Design.Gradients, defaultGradients)

	return Config{
		Source:     origin,
		Kind:       string(d.Kind),
		Surface:    surface,
		Version:    d.Version,
		Theme:      p.preset.Name,
		Colors:     p.resolve("colors", drafts.ColorKeys, target.Colors, d.Design.Tokens.Colors, defaultColors),
		Typography: p.resolve("typography", drafts.TypographyKeys, target.Typography, d.Design.Tokens.Typography, defaultTypography),
		Gradients:  gradients,
		CardStyle:  firstNonEmpty(d.Design.CardStyle, defaultCardStyle),
		IconTheme:  firstNonEmpty(d.Design.IconTheme, defaultIconTheme),
		Hero: Hero{
			Name:            d.Overview.Name,
			Tagline:         d.Overview.Tagline,
			DescriptionHTML: renderMarkdown(p.markdown, d.Overview.Description),
			StartDate:       d.Overview.StartDate,
			EndDate:         d.Overview.EndDate,
			Venue:           d.Overview.VenueName,
			LogoURL:         d.Overview.LogoURL,
			BannerURL:       d.Overview.BannerURL,
			Style:           firstNonEmpty(target.HeroStyle, defaultHeroStyle),
			Pattern:         firstNonEmpty(target.BackgroundPattern, defaultPattern),
			Gradient:        gradients["hero"],
		},
		Modules:  p.modules(d.Navigation),
		Sections: p.sections(d.Sections),
	}
}

// resolve applies surface override, design token, preset, then default for
// every key in the vocabulary.
func (p *Projector) resolve(group string, keys []string, override, design, fallback map[string]string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		if value := strings.TrimSpace(override[key]); value != "" {
			out[key] = value
			continue
		}
		if value := strings.TrimSpace(design[key]); value != "" {
			out[key] = value
			continue
		}
		if value, ok := p.preset.Token(group, key); ok {
			out[key] = value
			continue
		}
		out[key] = fallback[key]
	}
	return out
}

func (p *Projector) modules(navigation []drafts.NavigationModule) []Module {
	enabled := make([]drafts.NavigationModule, 0, len(navigation))
	for _, entry := range navigation {
		if entry.Enabled {
			enabled = append(enabled, entry)
		}
	}
	slices.SortStableFunc(enabled, func(a, b drafts.NavigationModule) int {
		return cmp.Compare(a.Order, b.Order)
	})

	out := make([]Module, 0, len(enabled))
	for _, entry := range enabled {
		def, ok := p.registry.Lookup(entry.ID)
		if !ok {
			continue
		}
		out = append(out, Module{
			ID:          def.ID,
			Label:       def.Label,
			Icon:        def.Icon,
			Gradient:    def.Gradient,
			Description: def.Description,
			Order:       entry.Order,
		})
	}
	return out
}

func (p *Projector) sections(sections []drafts.PageSection) []Section {
	enabled := make([]drafts.PageSection, 0, len(sections))
	for _, section := range sections {
		if section.Enabled {
			enabled = append(enabled, section)
		}
	}
	slices.SortStableFunc(enabled, func(a, b drafts.PageSection) int {
		return cmp.Compare(a.Order, b.Order)
	})

	out := make([]Section, 0, len(enabled))
	for _, section := range enabled {
		out = append(out, Section{
			ID:       section.ID,
			Kind:     section.Kind,
			Title:    section.Title,
			BodyHTML: renderMarkdown(p.markdown, section.Body),
			Settings: maps.Clone(section.Settings),
		})
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
