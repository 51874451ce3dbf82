package preview

// Platform defaults are the last fallback for every token the projector emits.
var (
	defaultColors = map[string]string{
		"primary":       "#4f46e5",
		"secondary":     "#0ea5e9",
		"accent":        "#f59e0b",
		"background":    "#ffffff",
		"surface":       "#f8fafc",
		"text":          "#0f172a",
		"textMuted":     "#64748b",
		"border":        "#e2e8f0",
		"navBackground": "#111827",
		"navText":       "#f9fafb",
	}
	defaultTypography = map[string]string{
		"heading": "Inter",
		"body":    "Inter",
	}
	defaultGradients = map[string]string{
		"hero": "linear-gradient(135deg, #4f46e5 0%, #0ea5e9 100%)",
		"card": "linear-gradient(180deg, #ffffff 0%, #f1f5f9 100%)",
		"nav":  "linear-gradient(90deg, #111827 0%, #1f2937 100%)",
	}
)

const (
	defaultHeroStyle = "split"
	defaultPattern   = "none"
	defaultCardStyle = "elevated"
	defaultIconTheme = "outline"
)
