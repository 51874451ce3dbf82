package modules

import (
	"fmt"
	"slices"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
)

// Definition is the display metadata for one navigation module.
type Definition struct {
	ID             string
	Label          string
	Icon           string
	Gradient       string
	Description    string
	Kinds          []drafts.Kind
	DefaultEnabled bool
}

// AppliesTo reports whether the module belongs to the catalog of kind.
func (d Definition) AppliesTo(kind drafts.Kind) bool {
	return slices.Contains(d.Kinds, kind)
}

// Table is an immutable module catalog. The zero value is empty.
type Table struct {
	order []string
	byID  map[string]Definition
}

// NewTable builds a table from defs, keeping their order. It panics on
// duplicate or malformed ids since catalogs are compiled in.
func NewTable(defs ...Definition) Table {
	table := Table{
		order: make([]string, 0, len(defs)),
		byID:  make(map[string]Definition, len(defs)),
	}
	for _, def := range defs {
		if !slug.IsValid(def.ID) {
			panic(fmt.Sprintf("modules: invalid module id %q", def.ID))
		}
		if _, exists := table.byID[def.ID]; exists {
			panic(fmt.Sprintf("modules: duplicate module id %q", def.ID))
		}
		def.Kinds = slices.Clone(def.Kinds)
		table.order = append(table.order, def.ID)
		table.byID[def.ID] = def
	}
	return table
}

// Lookup returns the definition registered under id.
func (t Table) Lookup(id string) (Definition, bool) {
	def, ok := t.byID[id]
	if ok {
		def.Kinds = slices.Clone(def.Kinds)
	}
	return def, ok
}

// Catalog lists the definitions for kind in registration order.
func (t Table) Catalog(kind drafts.Kind) []Definition {
	var out []Definition
	for _, id := range t.order {
		if def := t.byID[id]; def.AppliesTo(kind) {
			def.Kinds = slices.Clone(def.Kinds)
			out = append(out, def)
		}
	}
	return out
}

// DefaultNavigation builds the initial navigation list for a new draft.
func (t Table) DefaultNavigation(kind drafts.Kind) []drafts.NavigationModule {
	catalog := t.Catalog(kind)
	out := make([]drafts.NavigationModule, 0, len(catalog))
	for i, def := range catalog {
		out = append(out, drafts.NavigationModule{
			ID:      def.ID,
			Name:    def.Label,
			Icon:    def.Icon,
			Enabled: def.DefaultEnabled,
			Order:   i,
		})
	}
	return out
}

var builtin = NewTable(builtinDefinitions...)

// Builtin returns the process-wide catalog.
func Builtin() Table { return builtin }

// Lookup searches the builtin catalog.
func Lookup(id string) (Definition, bool) { return builtin.Lookup(id) }

// Catalog lists builtin definitions for kind.
func Catalog(kind drafts.Kind) []Definition { return builtin.Catalog(kind) }

// DefaultNavigation builds navigation for kind from the builtin catalog.
func DefaultNavigation(kind drafts.Kind) []drafts.NavigationModule {
	return builtin.DefaultNavigation(kind)
}
