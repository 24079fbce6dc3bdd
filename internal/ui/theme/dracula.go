package theme

import "github.com/charmbracelet/lipgloss"

// Dracula palette
// https://draculatheme.com/contribute
var dracula = palette{
	backdrop: []string{"#282a36", "#44475a", "#6272a4", "#bd93f9"},
	stripe:   "#ff79c6",
	tint:     "#f8f8f2",
	tintA:    0x28,
	chip:     "#50fa7b",

	text:      lipgloss.AdaptiveColor{Light: "#212121", Dark: "#f8f8f2"},
	textMuted: lipgloss.AdaptiveColor{Light: "#757575", Dark: "#6272a4"},
	accent:    lipgloss.AdaptiveColor{Light: "#f9a825", Dark: "#f1fa8c"},
	statusBg:  lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: "#1e1f29"},
}

func init() {
	RegisterTheme("dracula", dracula)
}
