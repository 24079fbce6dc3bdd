package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"glassui/internal/term"
	"glassui/internal/ui/theme"
)

func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	canvas := term.NewCanvas(m.width, m.height, m.cfg.Profile)
	canvas.DrawPixels(m.frame)
	for _, layer := range m.layers() {
		layer.DrawOn(canvas)
	}
	canvas.DrawStringAt(0, m.height-1, m.renderStatusBar())
	return canvas.Render()
}

// layers returns the text drawn over the pixels, bottom to top.
func (m *App) layers() []Layer {
	body := m.height - 1
	layers := []Layer{m.captionLayer()}
	if m.toast != "" {
		layers = append(layers, newToastLayer(styleToast().Render(m.toast), m.width, m.height, 0, body))
	}
	if m.showHelp {
		layers = append(layers, newCenteredOverlayLayer(renderHelpOverlay(m.keys), m.width, body, 0, 0))
	}
	return layers
}

// captionLayer places the markdown caption on the card, in the cell rows
// that lie entirely inside it.
func (m *App) captionLayer() Layer {
	if m.detached || m.card == nil {
		return Layer{}
	}
	area := m.card.Area(m.panelRect)
	if area.Empty() {
		return Layer{}
	}
	col := area.Min.X + 1
	cols := area.Dx() - 2
	first := (area.Min.Y + 1) / 2
	last := area.Max.Y/2 - 1
	if cols < 4 || last < first {
		return Layer{}
	}

	lines := strings.Split(m.captionText(cols), "\n")
	if rows := last - first + 1; len(lines) > rows {
		lines = lines[:rows]
	}
	for i, line := range lines {
		if ansi.StringWidth(line) > cols {
			lines[i] = ansi.Truncate(line, cols, "…")
		}
	}
	return Layer{X: col, Y: first, Content: strings.Join(lines, "\n")}
}

// captionText renders the caption for the given width, caching the result
// until the width or the theme changes.
func (m *App) captionText(width int) string {
	name := theme.CurrentName()
	if m.caption != "" && m.captionWidth == width && m.captionTheme == name {
		return m.caption
	}
	out := buildMarkdownRenderer(m.cfg.CaptionStyle, width)(captionMarkdown)
	if ansi.Strip(out) == out {
		styled := strings.Split(out, "\n")
		for i, line := range styled {
			styled[i] = styleCaption().Render(line)
		}
		out = strings.Join(styled, "\n")
	}
	m.caption, m.captionWidth, m.captionTheme = out, width, name
	return out
}
