package drafts

import (
	"github.com/google/uuid"
)

// Kind identifies which product a draft configures.
type Kind string

const (
	KindEvent Kind = "event"
	KindShop  Kind = "shop"
)

// Valid reports whether k is a known draft kind.
func (k Kind) Valid() bool {
	return k == KindEvent || k == KindShop
}

// DateLayout is the format used for overview dates.
const DateLayout = "2006-01-02"

// Fixed token vocabularies. Field paths and projections only accept these keys.
var (
	ColorKeys = []string{
		"primary", "secondary", "accent", "background", "surface",
		"text", "textMuted", "border", "navBackground", "navText",
	}
	TypographyKeys = []string{"heading", "body"}
	GradientKeys   = []string{"hero", "card", "nav"}
)

// Draft is the editable configuration of one event or shop.
type Draft struct {
	ID         uuid.UUID          `json:"id"`
	OwnerID    uuid.UUID          `json:"owner_id"`
	Kind       Kind               `json:"kind"`
	Slug       string             `json:"slug"`
	Version    int                `json:"version"`
	Overview   Overview           `json:"overview"`
	Design     Design             `json:"design"`
	Navigation []NavigationModule `json:"navigation"`
	Sections   []PageSection      `json:"sections"`
	Web        Surface            `json:"web"`
	App        Surface            `json:"app"`
}

// Overview holds the descriptive metadata shown in hero areas.
type Overview struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	VenueName   string `json:"venue_name"`
	LogoURL     string `json:"logo_url"`
	BannerURL   string `json:"banner_url"`
}

// Design carries the design-system tokens shared by both surfaces.
type Design struct {
	Tokens    Tokens            `json:"tokens"`
	Gradients map[string]string `json:"gradients,omitempty"`
	CardStyle string            `json:"card_style"`
	IconTheme string            `json:"icon_theme"`
}

// Tokens maps semantic token names to concrete values.
type Tokens struct {
	Colors     map[string]string `json:"colors,omitempty"`
	Typography map[string]string `json:"typography,omitempty"`
}

// Surface holds presentation settings for one render target. Colors, Typography,
// and Gradients override the design tokens for that target only.
type Surface struct {
	HeroStyle         string            `json:"hero_style"`
	BackgroundPattern string            `json:"background_pattern"`
	Gradients         map[string]string `json:"gradients,omitempty"`
	Colors            map[string]string `json:"colors,omitempty"`
	Typography        map[string]string `json:"typography,omitempty"`
}

// NavigationModule is a togglable, orderable feature entry. Modules are never
// removed from a draft; disabling is the only way to hide one.
type NavigationModule struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
}

// PageSection is a content block rendered on the public page.
type PageSection struct {
	ID       string            `json:"id"`
	Kind     string            `json:"kind"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Enabled  bool              `json:"enabled"`
	Order    int               `json:"order"`
	Settings map[string]string `json:"settings,omitempty"`
}

// Module returns the navigation entry with id and its index.
func (d *Draft) Module(id string) (*NavigationModule, int) {
	for i := range d.Navigation {
		if d.Navigation[i].ID == id {
			return &d.Navigation[i], i
		}
	}
	return nil, -1
}

// Section returns the section with id and its index.
func (d *Draft) Section(id string) (*PageSection, int) {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i], i
		}
	}
	return nil, -1
}
