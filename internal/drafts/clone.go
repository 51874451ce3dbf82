package drafts

import (
	"maps"
	"slices"
)

// Clone returns a deep copy of d.
func (d Draft) Clone() Draft {
	out := d
	out.Design = d.Design.clone()
	out.Navigation = cloneModules(d.Navigation)
	out.Sections = cloneSections(d.Sections)
	out.Web = d.Web.clone()
	out.App = d.App.clone()
	return out
}

// Equal compares drafts field by field. Lists are order sensitive; nil and
// empty maps or lists are treated as equal.
func Equal(a, b Draft) bool {
	return a.ID == b.ID &&
		a.OwnerID == b.OwnerID &&
		a.Kind == b.Kind &&
		a.Slug == b.Slug &&
		a.Version == b.Version &&
		a.Overview == b.Overview &&
		a.Design.equal(b.Design) &&
		slices.Equal(a.Navigation, b.Navigation) &&
		slices.EqualFunc(a.Sections, b.Sections, sectionEqual) &&
		a.Web.equal(b.Web) &&
		a.App.equal(b.App)
}

func (d Design) clone() Design {
	out := d
	out.Tokens.Colors = maps.Clone(d.Tokens.Colors)
	out.Tokens.Typography = maps.Clone(d.Tokens.Typography)
	out.Gradients = maps.Clone(d.Gradients)
	return out
}

func (d Design) equal(o Design) bool {
	return d.CardStyle == o.CardStyle &&
		d.IconTheme == o.IconTheme &&
		maps.Equal(d.Tokens.Colors, o.Tokens.Colors) &&
		maps.Equal(d.Tokens.Typography, o.Tokens.Typography) &&
		maps.Equal(d.Gradients, o.Gradients)
}

func (s Surface) clone() Surface {
	out := s
	out.Gradients = maps.Clone(s.Gradients)
	out.Colors = maps.Clone(s.Colors)
	out.Typography = maps.Clone(s.Typography)
	return out
}

func (s Surface) equal(o Surface) bool {
	return s.HeroStyle == o.HeroStyle &&
		s.BackgroundPattern == o.BackgroundPattern &&
		maps.Equal(s.Gradients, o.Gradients) &&
		maps.Equal(s.Colors, o.Colors) &&
		maps.Equal(s.Typography, o.Typography)
}

func sectionEqual(a, b PageSection) bool {
	return a.ID == b.ID &&
		a.Kind == b.Kind &&
		a.Title == b.Title &&
		a.Body == b.Body &&
		a.Enabled == b.Enabled &&
		a.Order == b.Order &&
		maps.Equal(a.Settings, b.Settings)
}

func cloneModules(src []NavigationModule) []NavigationModule {
	if len(src) == 0 {
		return nil
	}
	return slices.Clone(src)
}

func cloneSections(src []PageSection) []PageSection {
	if len(src) == 0 {
		return nil
	}
	out := make([]PageSection, len(src))
	for i, section := range src {
		out[i] = section
		out[i].Settings = maps.Clone(section.Settings)
	}
	return out
}
