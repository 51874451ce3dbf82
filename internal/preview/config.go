package preview

import "encoding/json"

// Surface selects which per-target overrides apply.
type Surface string

const (
	SurfaceWeb Surface = "web"
	SurfaceApp Surface = "app"
)

// Source records whether a projection was built from the live draft or the
// saved snapshot.
type Source string

const (
	SourceDraft    Source = "draft"
	SourceSnapshot Source = "snapshot"
)

// Config is the flat record the preview surface renders. It never references
// the draft it was built from.
type Config struct {
	Source     Source            `json:"source"`
	Kind       string            `json:"kind"`
	Surface    Surface           `json:"surface"`
	Version    int               `json:"version"`
	Theme      string            `json:"theme,omitempty"`
	Colors     map[string]string `json:"colors"`
	Typography map[string]string `json:"typography"`
	Gradients  map[string]string `json:"gradients"`
	CardStyle  string            `json:"card_style"`
	IconTheme  string            `json:"icon_theme"`
	Hero       Hero              `json:"hero"`
	Modules    []Module          `json:"modules"`
	Sections   []Section         `json:"sections"`
}

// Hero is the resolved header block.
type Hero struct {
	Name            string `json:"name"`
	Tagline         string `json:"tagline"`
	DescriptionHTML string `json:"description_html"`
	StartDate       string `json:"start_date,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	Venue           string `json:"venue,omitempty"`
	LogoURL         string `json:"logo_url,omitempty"`
	BannerURL       string `json:"banner_url,omitempty"`
	Style           string `json:"style"`
	Pattern         string `json:"pattern"`
	Gradient        string `json:"gradient"`
}

// Module is an enabled navigation entry joined with registry metadata.
type Module struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Gradient    string `json:"gradient"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// Section is an enabled page section with its body rendered.
type Section struct {
	ID       string            `json:"id"`
	Kind     string            `json:"kind"`
	Title    string            `json:"title"`
	BodyHTML string            `json:"body_html"`
	Settings map[string]string `json:"settings,omitempty"`
}

// ModuleIDs lists the projected module ids in display order.
func (c Config) ModuleIDs() []string {
	ids := make([]string, len(c.Modules))
	for i, module := range c.Modules {
		ids[i] = module.ID
	}
	return ids
}

// JSON encodes the config. Map keys are emitted sorted, so equal configs
// always encode to the same bytes.
func (c Config) JSON() ([]byte, error) {
	return json.Marshal(c)
}
