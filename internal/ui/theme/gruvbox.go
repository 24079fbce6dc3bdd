package theme

import "github.com/charmbracelet/lipgloss"

var gruvbox = palette{
	backdrop: []string{"#1d2021", "#3c3836", "#665c54", "#d79921"},
	stripe:   "#fb4934",
	tint:     "#fbf1c7",
	tintA:    0x24,
	chip:     "#b8bb26",

	text:      lipgloss.AdaptiveColor{Dark: "#ebdbb2", Light: "#3c3836"},
	textMuted: lipgloss.AdaptiveColor{Dark: "#a89984", Light: "#7c6f64"},
	accent:    lipgloss.AdaptiveColor{Dark: "#fabd2f", Light: "#b57614"},
	statusBg:  lipgloss.AdaptiveColor{Dark: "#282828", Light: "#fbf1c7"},
}

func init() {
	RegisterTheme("gruvbox", gruvbox)
}
