package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme for rendered output.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	// Ramp is the density colormap, darkest stop first.
	Ramp []lipgloss.Color
}

// rocket approximates the sequential "rocket" colormap.
var rocket = []lipgloss.Color{
	"#03051a",
	"#4c1d4b",
	"#a11a5b",
	"#e83f3f",
	"#f69c73",
	"#faebdd",
}

var (
	ThemeLight = Theme{
		Name:       "light",
		Background: lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#000000"),
		Muted:      lipgloss.Color("#555555"),
		Accent:     lipgloss.Color("#a11a5b"),
		Ramp:       rocket,
	}

	// ThemeDark uses the darkest colormap stop as its background.
	ThemeDark = Theme{
		Name:       "dark",
		Background: rocket[0],
		Text:       lipgloss.Color("#dfdfdf"),
		Muted:      lipgloss.Color("#c4c4c4"),
		Accent:     lipgloss.Color("#f69c73"),
		Ramp:       rocket,
	}

	Themes = []Theme{
		ThemeLight,
		ThemeDark,
	}
)

// GetTheme returns a theme by name, falling back to light.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeLight
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// ColorAt interpolates the ramp at v ∈ [0, 1].
func (t Theme) ColorAt(v float64) lipgloss.Color {
	n := len(t.Ramp)
	switch {
	case n == 0:
		return t.Text
	case n == 1 || v <= 0:
		return t.Ramp[0]
	case v >= 1:
		return t.Ramp[n-1]
	}
	pos := v * float64(n-1)
	i := int(pos)
	return lerpColor(t.Ramp[i], t.Ramp[i+1], pos-float64(i))
}
