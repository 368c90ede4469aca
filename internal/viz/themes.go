package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/danahmedkhan/faraday/internal/induction"
)

// Theme defines the color scheme of the induction display.
type Theme struct {
	Name      string
	Attract   lipgloss.Color // current flows one way (v > 0)
	Repel     lipgloss.Color // current flows the other way (v <= 0)
	Field     lipgloss.Color // background field vectors
	Coil      lipgloss.Color
	CoilDim   lipgloss.Color
	PoleNorth lipgloss.Color
	PoleSouth lipgloss.Color
	Highlight lipgloss.Color
	Fade      lipgloss.Color // dying particles
	Text      lipgloss.Color
	Muted     lipgloss.Color
}

// Available themes
var (
	ThemeInduction = Theme{
		Name:      "induction",
		Attract:   lipgloss.Color("#ff9a3d"),
		Repel:     lipgloss.Color("#4da6ff"),
		Field:     lipgloss.Color("#2a3550"),
		Coil:      lipgloss.Color("#c98a2d"),
		CoilDim:   lipgloss.Color("#6b5424"),
		PoleNorth: lipgloss.Color("#e63946"),
		PoleSouth: lipgloss.Color("#3a6ea5"),
		Highlight: lipgloss.Color("#ffe8d6"),
		Fade:      lipgloss.Color("#555577"),
		Text:      lipgloss.Color("#e8e8f0"),
		Muted:     lipgloss.Color("#666688"),
	}

	ThemePhosphor = Theme{
		Name:      "phosphor",
		Attract:   lipgloss.Color("#88ff88"),
		Repel:     lipgloss.Color("#00cc66"),
		Field:     lipgloss.Color("#003300"),
		Coil:      lipgloss.Color("#00aa33"),
		CoilDim:   lipgloss.Color("#004411"),
		PoleNorth: lipgloss.Color("#aaffaa"),
		PoleSouth: lipgloss.Color("#00ff00"),
		Highlight: lipgloss.Color("#ddffdd"),
		Fade:      lipgloss.Color("#224422"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
	}

	ThemeAurora = Theme{
		Name:      "aurora",
		Attract:   lipgloss.Color("#ff9ff3"),
		Repel:     lipgloss.Color("#54e0ff"),
		Field:     lipgloss.Color("#21304a"),
		Coil:      lipgloss.Color("#9b99ff"),
		CoilDim:   lipgloss.Color("#45447a"),
		PoleNorth: lipgloss.Color("#ff6b6b"),
		PoleSouth: lipgloss.Color("#5f9eff"),
		Highlight: lipgloss.Color("#fdf6ff"),
		Fade:      lipgloss.Color("#4a4a6a"),
		Text:      lipgloss.Color("#f0f4ff"),
		Muted:     lipgloss.Color("#6a7a9a"),
	}

	Themes = []Theme{ThemeInduction, ThemePhosphor, ThemeAurora}
)

// PolarityColor maps a polarity to the theme's primary color for it.
func (t Theme) PolarityColor(p induction.Polarity) lipgloss.Color {
	if p == induction.Attract {
		return t.Attract
	}
	return t.Repel
}

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeInduction
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
