package ui

import "glassui/internal/term"

// Layer is a text block printed over the rasterised frame at cell X, Y.
type Layer struct {
	X, Y    int
	Content string
}

// Empty reports whether the layer has nothing to draw.
func (l Layer) Empty() bool {
	return l.Content == ""
}

// DrawOn prints the layer onto c.
func (l Layer) DrawOn(c *term.Canvas) {
	if l.Empty() || c == nil {
		return
	}
	c.DrawStringAt(l.X, l.Y, l.Content)
}
