package preview

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// Preset is a theme token layer that sits between draft tokens and platform
// defaults. Keys follow "colors.<name>", "typography.<name>", and
// "gradients.<name>".
type Preset struct {
	Name    string
	Variant string
	tokens  map[string]string
}

// NewPreset builds a preset from an explicit token map.
func NewPreset(name string, tokens map[string]string) Preset {
	return Preset{Name: strings.TrimSpace(name), tokens: maps.Clone(tokens)}
}

// Token returns the preset value for group and key.
func (p Preset) Token(group, key string) (string, bool) {
	value, ok := p.tokens[group+"."+key]
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// LoadPreset reads a go-theme manifest directory and selects theme and variant.
func LoadPreset(dir, theme, variant string) (Preset, error) {
	cleaned := filepath.Clean(strings.TrimSpace(dir))
	if cleaned == "" || cleaned == "." {
		return Preset{}, fmt.Errorf("preview: theme directory required")
	}

	manifest, err := gotheme.LoadDir(os.DirFS(cleaned), ".")
	if err != nil {
		return Preset{}, fmt.Errorf("preview: load theme manifest from %s: %w", cleaned, err)
	}
	if name := strings.TrimSpace(theme); name != "" && strings.TrimSpace(manifest.Name) == "" {
		manifest.Name = name
	}

	registry := gotheme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return Preset{}, fmt.Errorf("preview: register theme manifest: %w", err)
	}

	selector := gotheme.Selector{
		Registry:       registry,
		DefaultTheme:   manifest.Name,
		DefaultVariant: strings.TrimSpace(variant),
	}
	selection, err := selector.Select(strings.TrimSpace(theme), strings.TrimSpace(variant))
	if err != nil {
		return Preset{}, fmt.Errorf("preview: select theme %s: %w", theme, err)
	}

	return Preset{
		Name:    selection.Theme,
		Variant: selection.Variant,
		tokens:  selection.Tokens(),
	}, nil
}
