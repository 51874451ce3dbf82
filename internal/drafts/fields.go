package drafts

import (
	"fmt"
	"slices"
	"strings"
)

// field is a resolved location inside a draft: either a plain string or one
// key of a string map.
type field struct {
	text *string
	set  *map[string]string
	key  string
}

func (f field) get() string {
	if f.text != nil {
		return *f.text
	}
	return (*f.set)[f.key]
}

func (f field) assign(value string) {
	if f.text != nil {
		*f.text = value
		return
	}
	if value == "" {
		delete(*f.set, f.key)
		return
	}
	if *f.set == nil {
		*f.set = map[string]string{}
	}
	(*f.set)[f.key] = value
}

// SetField replaces the value at a dotted path such as "overview.name" or
// "web.colors.primary". Map entries set to "" are removed, which clears a
// surface override. The draft is left untouched when an error is returned.
func (d *Draft) SetField(path string, value any) error {
	f, err := d.resolve(path)
	if err != nil {
		return err
	}
	text, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s expects string, got %T", ErrFieldType, path, value)
	}
	f.assign(text)
	return nil
}

// Field returns the value stored at path.
func (d *Draft) Field(path string) (string, error) {
	f, err := d.resolve(path)
	if err != nil {
		return "", err
	}
	return f.get(), nil
}

func (d *Draft) resolve(path string) (field, error) {
	parts := strings.Split(strings.TrimSpace(path), ".")
	unknown := fmt.Errorf("%w: %q", ErrUnknownField, path)

	switch parts[0] {
	case "slug":
		if len(parts) == 1 {
			return field{text: &d.Slug}, nil
		}
	case "overview":
		if len(parts) == 2 {
			if target := d.Overview.field(parts[1]); target != nil {
				return field{text: target}, nil
			}
		}
	case "design":
		return d.Design.resolve(parts[1:], unknown)
	case "web":
		return d.Web.resolve(parts[1:], unknown)
	case "app":
		return d.App.resolve(parts[1:], unknown)
	}
	return field{}, unknown
}

func (o *Overview) field(name string) *string {
	switch name {
	case "name":
		return &o.Name
	case "tagline":
		return &o.Tagline
	case "description":
		return &o.Description
	case "startDate":
		return &o.StartDate
	case "endDate":
		return &o.EndDate
	case "venueName":
		return &o.VenueName
	case "logoUrl":
		return &o.LogoURL
	case "bannerUrl":
		return &o.BannerURL
	default:
		return nil
	}
}

func (d *Design) resolve(parts []string, unknown error) (field, error) {
	switch {
	case len(parts) == 1 && parts[0] == "cardStyle":
		return field{text: &d.CardStyle}, nil
	case len(parts) == 1 && parts[0] == "iconTheme":
		return field{text: &d.IconTheme}, nil
	case len(parts) == 2 && parts[0] == "gradients":
		return keyed(&d.Gradients, GradientKeys, parts[1], unknown)
	case len(parts) == 3 && parts[0] == "tokens" && parts[1] == "colors":
		return keyed(&d.Tokens.Colors, ColorKeys, parts[2], unknown)
	case len(parts) == 3 && parts[0] == "tokens" && parts[1] == "typography":
		return keyed(&d.Tokens.Typography, TypographyKeys, parts[2], unknown)
	}
	return field{}, unknown
}

func (s *Surface) resolve(parts []string, unknown error) (field, error) {
	switch {
	case len(parts) == 1 && parts[0] == "heroStyle":
		return field{text: &s.HeroStyle}, nil
	case len(parts) == 1 && parts[0] == "backgroundPattern":
		return field{text: &s.BackgroundPattern}, nil
	case len(parts) == 2 && parts[0] == "gradients":
		return keyed(&s.Gradients, GradientKeys, parts[1], unknown)
	case len(parts) == 2 && parts[0] == "colors":
		return keyed(&s.Colors, ColorKeys, parts[1], unknown)
	case len(parts) == 2 && parts[0] == "typography":
		return keyed(&s.Typography, TypographyKeys, parts[1], unknown)
	}
	return field{}, unknown
}

func keyed(target *map[string]string, allowed []string, key string, unknown error) (field, error) {
	if !slices.Contains(allowed, key) {
		return field{}, unknown
	}
	return field{set: target, key: key}, nil
}
