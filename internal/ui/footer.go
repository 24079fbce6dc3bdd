package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint defines a key hint for the status bar.
// These are intentionally shorter than the KeyMap help text.
type footerHint struct {
	key  string
	desc string
}

// Ordered by importance; the tail is dropped first on narrow terminals.
var footerHints = []footerHint{
	{"?", "Help"},
	{"q", "Quit"},
	{"←↑↓→", "Move"},
	{"+/-", "Size"},
	{"a", "Attach"},
	{"t", "Theme"},
}

// renderStatusBar renders the bottom row: title, glass status, key hints.
func (m *App) renderStatusBar() string {
	title := "GLASS"
	if m.cfg.Version != "" {
		title = "GLASS v" + m.cfg.Version
	}
	left := styleAppHeader().Render(title) + styleStatusBar().Render(" ") + styleStatusValue().Render(m.statusLine())
	leftWidth := lipgloss.Width(left)

	hints := trimHintsToFit(footerHints, m.width-leftWidth-2)
	right := renderHints(hints)

	spacing := m.width - leftWidth - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return left + styleStatusBar().Render(strings.Repeat(" ", spacing)) + right
}

// trimHintsToFit drops hints from the end until they fit.
func trimHintsToFit(hints []footerHint, availableWidth int) []footerHint {
	for len(hints) > 0 && lipgloss.Width(renderHints(hints)) > availableWidth {
		hints = hints[:len(hints)-1]
	}
	return hints
}

func renderHints(hints []footerHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return strings.Join(parts, styleKeyDesc().Render("  "))
}

// keyPill renders a single key hint as a pill with description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + styleKeyDesc().Render(" "+desc)
}
