package theme

import "github.com/charmbracelet/lipgloss"

// Nord palette
// https://www.nordtheme.com/docs/colors-and-palettes
var nord = palette{
	backdrop: []string{"#2e3440", "#3b4252", "#5e81ac", "#88c0d0"},
	stripe:   "#ebcb8b",
	tint:     "#eceff4",
	tintA:    0x38,
	chip:     "#a3be8c",

	text:      lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"},
	textMuted: lipgloss.AdaptiveColor{Light: "#3b4252", Dark: "#8b95a7"},
	accent:    lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#8fbcbb"},
	statusBg:  lipgloss.AdaptiveColor{Light: "#e5e9f0", Dark: "#3b4252"},
}

func init() {
	RegisterTheme("nord", nord)
}
