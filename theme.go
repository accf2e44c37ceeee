package invoicepdf

import "strings"

// Default theme values. Any theme field that is empty or unparseable
// resolves to its default independently of the other fields.
const (
	DefaultPrimaryColor   = "#2563eb"
	DefaultSecondaryColor = "#1f2937"
	DefaultAccentColor    = "#f59e0b"
	DefaultFontFamily     = "Helvetica"
)

// RGB is a resolved 24-bit color with components in [0, 255].
type RGB struct {
	R, G, B int
}

// ResolvedTheme is a theme with every field populated and renderer-ready:
// colors parsed to RGB and font families mapped to built-in faces.
type ResolvedTheme struct {
	Primary   RGB
	Secondary RGB
	Accent    RGB

	HeadingFont string
	BodyFont    string
}

// ResolveTheme applies t over the defaults field by field. A nil theme
// resolves to all defaults; a theme carrying only a primary color keeps the
// default secondary, accent and fonts. Unparseable colors fall back to
// their default rather than failing: resolution is total and render-time
// never sees an invalid theme.
func ResolveTheme(t *Theme) ResolvedTheme {
	resolved := ResolvedTheme{
		Primary:     mustHex(DefaultPrimaryColor),
		Secondary:   mustHex(DefaultSecondaryColor),
		Accent:      mustHex(DefaultAccentColor),
		HeadingFont: DefaultFontFamily,
		BodyFont:    DefaultFontFamily,
	}
	if t == nil {
		return resolved
	}

	if c, ok := parseHexColor(t.Colors.Primary); ok {
		resolved.Primary = c
	}
	if c, ok := parseHexColor(t.Colors.Secondary); ok {
		resolved.Secondary = c
	}
	if c, ok := parseHexColor(t.Colors.Accent); ok {
		resolved.Accent = c
	}
	if f := normalizeFontFamily(t.Fonts.Heading); f != "" {
		resolved.HeadingFont = f
	}
	if f := normalizeFontFamily(t.Fonts.Body); f != "" {
		resolved.BodyFont = f
	}
	return resolved
}

// parseHexColor parses "#rrggbb" and the "#rgb" shorthand, with or without
// the leading hash. Reports ok=false for anything else.
func parseHexColor(s string) (RGB, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 6:
		r, ok1 := hexByte(s[0], s[1])
		g, ok2 := hexByte(s[2], s[3])
		b, ok3 := hexByte(s[4], s[5])
		if ok1 && ok2 && ok3 {
			return RGB{R: r, G: g, B: b}, true
		}
	case 3:
		r, ok1 := hexByte(s[0], s[0])
		g, ok2 := hexByte(s[1], s[1])
		b, ok3 := hexByte(s[2], s[2])
		if ok1 && ok2 && ok3 {
			return RGB{R: r, G: g, B: b}, true
		}
	}
	return RGB{}, false
}

func hexByte(hi, lo byte) (int, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	return h<<4 | l, ok1 && ok2
}

func hexNibble(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// mustHex parses a package-default color; the constants are known good.
func mustHex(s string) RGB {
	c, ok := parseHexColor(s)
	if !ok {
		panic("invoicepdf: bad default color " + s)
	}
	return c
}

// normalizeFontFamily maps a free-form family name ("Georgia, serif",
// "JetBrains Mono") to the nearest built-in renderer face. Returns "" when
// no preference was expressed.
func normalizeFontFamily(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	switch {
	case strings.Contains(name, "courier"), strings.Contains(name, "mono"):
		return "Courier"
	case strings.Contains(name, "times"), strings.Contains(name, "georgia"),
		strings.Contains(name, "garamond"), strings.Contains(name, "serif") && !strings.Contains(name, "sans"):
		return "Times"
	default:
		return "Helvetica"
	}
}

// NamedTheme is a ready-made theme preset.
type NamedTheme struct {
	Name  string
	Theme Theme
}

// Presets returns the built-in theme presets, in stable order. The slice
// is freshly allocated; callers may modify it.
func Presets() []NamedTheme {
	return []NamedTheme{
		{
			Name: "classic",
			Theme: Theme{
				Colors: ThemeColors{Primary: DefaultPrimaryColor, Secondary: DefaultSecondaryColor, Accent: DefaultAccentColor},
			},
		},
		{
			Name: "forest",
			Theme: Theme{
				Colors: ThemeColors{Primary: "#15803d", Secondary: "#1c1917", Accent: "#ca8a04"},
			},
		},
		{
			Name: "crimson",
			Theme: Theme{
				Colors: ThemeColors{Primary: "#b91c1c", Secondary: "#292524", Accent: "#0891b2"},
				Fonts:  ThemeFonts{Heading: "Georgia, serif"},
			},
		},
		{
			Name: "slate",
			Theme: Theme{
				Colors: ThemeColors{Primary: "#0f172a", Secondary: "#334155", Accent: "#64748b"},
				Fonts:  ThemeFonts{Heading: "JetBrains Mono", Body: "JetBrains Mono"},
			},
		},
	}
}

// PresetTheme returns the preset with the given name (case-insensitive).
func PresetTheme(name string) (Theme, bool) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, name) {
			return p.Theme, true
		}
	}
	return Theme{}, false
}
