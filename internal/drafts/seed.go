package drafts

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/adrg/frontmatter"
)

// Seed is the content of a markdown seed document: front matter for the
// structured fields and the body as the overview description.
type Seed struct {
	Kind           Kind
	Slug           string
	Fields         map[string]string
	EnabledModules []string
}

type seedEnvelope struct {
	Kind       string            `yaml:"kind"`
	Slug       string            `yaml:"slug"`
	Name       string            `yaml:"name"`
	Tagline    string            `yaml:"tagline"`
	StartDate  string            `yaml:"start_date"`
	EndDate    string            `yaml:"end_date"`
	Venue      string            `yaml:"venue"`
	Logo       string            `yaml:"logo"`
	Banner     string            `yaml:"banner"`
	Colors     map[string]string `yaml:"colors"`
	Typography map[string]string `yaml:"typography"`
	Gradients  map[string]string `yaml:"gradients"`
	CardStyle  string            `yaml:"card_style"`
	IconTheme  string            `yaml:"icon_theme"`
	Modules    []string          `yaml:"modules"`
}

// ParseSeed reads a seed document.
func ParseSeed(source []byte) (Seed, error) {
	var env seedEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return Seed{}, fmt.Errorf("%w: %v", ErrSeedInvalid, err)
	}

	seed := Seed{
		Kind:           Kind(strings.ToLower(strings.TrimSpace(env.Kind))),
		Slug:           strings.TrimSpace(env.Slug),
		Fields:         map[string]string{},
		EnabledModules: env.Modules,
	}
	if seed.Kind != "" && !seed.Kind.Valid() {
		return Seed{}, fmt.Errorf("%w: kind %q", ErrSeedInvalid, env.Kind)
	}

	put := func(path, value string) {
		if value = strings.TrimSpace(value); value != "" {
			seed.Fields[path] = value
		}
	}
	put("overview.name", env.Name)
	put("overview.tagline", env.Tagline)
	put("overview.startDate", env.StartDate)
	put("overview.endDate", env.EndDate)
	put("overview.venueName", env.Venue)
	put("overview.logoUrl", env.Logo)
	put("overview.bannerUrl", env.Banner)
	put("overview.description", string(body))
	put("design.cardStyle", env.CardStyle)
	put("design.iconTheme", env.IconTheme)
	for key, value := range env.Colors {
		put("design.tokens.colors."+key, value)
	}
	for key, value := range env.Typography {
		put("design.tokens.typography."+key, value)
	}
	for key, value := range env.Gradients {
		put("design.gradients."+key, value)
	}
	return seed, nil
}

// Apply writes the seed onto d. Fields are applied in path order and the
// first unknown path aborts with d unchanged. When EnabledModules is set,
// listed modules are enabled in that order and every other module is disabled.
func (s Seed) Apply(d *Draft) error {
	next := d.Clone()
	if s.Slug != "" {
		next.Slug = s.Slug
	}
	for _, path := range slices.Sorted(maps.Keys(s.Fields)) {
		if err := next.SetField(path, s.Fields[path]); err != nil {
			return err
		}
	}
	if len(s.EnabledModules) > 0 {
		for i := range next.Navigation {
			next.Navigation[i].Enabled = false
		}
		for position, id := range s.EnabledModules {
			if module, _ := next.Module(strings.TrimSpace(id)); module != nil {
				module.Enabled = true
				module.Order = position
			}
		}
	}
	*d = next
	return nil
}
