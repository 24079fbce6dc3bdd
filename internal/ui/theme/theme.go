// Package theme provides the colour palettes the glass demo paints with.
package theme

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a palette for the backdrop scene, the glass itself and the text
// drawn on top of it.
type Theme interface {
	// Backdrop returns the gradient stops of the animated background,
	// top to bottom.
	Backdrop() []color.NRGBA
	// Stripe is the colour of the moving diagonal bands behind the glass.
	Stripe() color.NRGBA
	// Tint is the translucent overlay painted above the snapshot.
	Tint() color.NRGBA
	// Chip is the accent block placed inside the glass.
	Chip() color.NRGBA

	Text() lipgloss.AdaptiveColor      // Caption text
	TextMuted() lipgloss.AdaptiveColor // Status line, hints
	Accent() lipgloss.AdaptiveColor    // Titles, key names
	StatusBackground() lipgloss.AdaptiveColor
}

// palette is the data behind every built-in theme.
type palette struct {
	backdrop []string
	stripe   string
	tint     string
	tintA    uint8
	chip     string

	text, textMuted, accent, statusBg lipgloss.AdaptiveColor
}

func (p palette) Backdrop() []color.NRGBA {
	out := make([]color.NRGBA, len(p.backdrop))
	for i, h := range p.backdrop {
		out[i] = MustHex(h, 0xff)
	}
	return out
}

func (p palette) Stripe() color.NRGBA { return MustHex(p.stripe, 0xff) }
func (p palette) Tint() color.NRGBA   { return MustHex(p.tint, p.tintA) }
func (p palette) Chip() color.NRGBA   { return MustHex(p.chip, 0xff) }

func (p palette) Text() lipgloss.AdaptiveColor             { return p.text }
func (p palette) TextMuted() lipgloss.AdaptiveColor        { return p.textMuted }
func (p palette) Accent() lipgloss.AdaptiveColor           { return p.accent }
func (p palette) StatusBackground() lipgloss.AdaptiveColor { return p.statusBg }

// ParseHex parses "#rrggbb" into a colour with the given alpha.
func ParseHex(s string, alpha uint8) (color.NRGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// MustHex is ParseHex for compile-time palette constants.
func MustHex(s string, alpha uint8) color.NRGBA {
	c, err := ParseHex(s, alpha)
	if err != nil {
		panic(err)
	}
	return c
}
