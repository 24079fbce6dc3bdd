package theme

import "github.com/charmbracelet/lipgloss"

// Tokyo Night: deep indigo backdrop with a blue-violet glass.
var tokyoNight = palette{
	backdrop: []string{"#1a1b26", "#24283b", "#414868", "#7aa2f7"},
	stripe:   "#ff9e64",
	tint:     "#c0caf5",
	tintA:    0x30,
	chip:     "#bb9af7",

	text:      lipgloss.AdaptiveColor{Dark: "#c8d3f5", Light: "#3760bf"},
	textMuted: lipgloss.AdaptiveColor{Dark: "#636da6", Light: "#848cb5"},
	accent:    lipgloss.AdaptiveColor{Dark: "#ff966c", Light: "#b15c00"},
	statusBg:  lipgloss.AdaptiveColor{Dark: "#1e2030", Light: "#d5d6db"},
}

func init() {
	RegisterTheme("tokyonight", tokyoNight)
}
