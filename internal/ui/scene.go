package ui

import (
	"image"
	"image/color"
	"image/draw"

	"glassui/internal/glass"
	"glassui/internal/ui/theme"
)

const (
	stripeWidth  = 6
	stripePeriod = 3 * stripeWidth
	stripeAlpha  = 0x99
)

// Backdrop is the animated scene behind the glass: a vertical gradient
// through the theme's stops, crossed by diagonal stripes that drift one pixel
// per Advance.
type Backdrop struct {
	stops  []color.NRGBA
	stripe color.NRGBA
	phase  int
}

// NewBackdrop builds a backdrop painted with t.
func NewBackdrop(t theme.Theme) *Backdrop {
	b := &Backdrop{}
	b.SetTheme(t)
	return b
}

// SetTheme repaints the backdrop with t from the next frame on.
func (b *Backdrop) SetTheme(t theme.Theme) {
	if t == nil {
		return
	}
	b.stops = t.Backdrop()
	b.stripe = t.Stripe()
}

// Advance moves the stripes by one pixel.
func (b *Backdrop) Advance() {
	b.phase = (b.phase + 1) % stripePeriod
}

// Phase returns the current stripe offset.
func (b *Backdrop) Phase() int {
	return b.phase
}

// Draw implements glass.View. Coordinates are relative to r.Min, so the same
// scene comes out whether r is the whole window or a translated capture.
func (b *Backdrop) Draw(dst draw.Image, r image.Rectangle) {
	clip := r.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	rgba, fast := dst.(*image.RGBA)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		ly := y - r.Min.Y
		base := b.gradientAt(ly, r.Dy())
		for x := clip.Min.X; x < clip.Max.X; x++ {
			lx := x - r.Min.X
			c := base
			if ((lx+ly+b.phase)%stripePeriod+stripePeriod)%stripePeriod < stripeWidth {
				c = blend(base, b.stripe, stripeAlpha)
			}
			if fast {
				o := rgba.PixOffset(x, y)
				rgba.Pix[o+0] = c.R
				rgba.Pix[o+1] = c.G
				rgba.Pix[o+2] = c.B
				rgba.Pix[o+3] = 0xff
				continue
			}
			dst.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
}

func (b *Backdrop) gradientAt(y, height int) color.NRGBA {
	switch len(b.stops) {
	case 0:
		return color.NRGBA{A: 0xff}
	case 1:
		return b.stops[0]
	}
	if height <= 1 {
		return b.stops[0]
	}
	segments := len(b.stops) - 1
	// Position along the gradient in 1/256 steps per segment.
	pos := y * segments * 256 / (height - 1)
	seg := pos / 256
	if seg >= segments {
		return b.stops[segments]
	}
	if seg < 0 {
		return b.stops[0]
	}
	return blend(b.stops[seg], b.stops[seg+1], uint8(pos%256))
}

// blend mixes over into base with weight a/255. Both colours are opaque.
func blend(base, over color.NRGBA, a uint8) color.NRGBA {
	mix := func(p, q uint8) uint8 {
		return uint8((int(p)*(255-int(a)) + int(q)*int(a) + 127) / 255)
	}
	return color.NRGBA{R: mix(base.R, over.R), G: mix(base.G, over.G), B: mix(base.B, over.B), A: 0xff}
}

// Chip is a solid rounded accent block placed inside the glass.
type Chip struct {
	fill color.NRGBA
}

// NewChip returns a chip filled with c.
func NewChip(c color.NRGBA) *Chip {
	return &Chip{fill: c}
}

// Draw implements glass.View.
func (c *Chip) Draw(dst draw.Image, r image.Rectangle) {
	if r.Empty() {
		return
	}
	radius := float64(min(r.Dx(), r.Dy())) / 2
	mask := glass.RoundRect{Rect: r, Radius: radius}
	draw.DrawMask(dst, r, image.NewUniform(c.fill), image.Point{}, mask, r.Min, draw.Over)
}

// cardShade darkens the area the caption text sits on.
var cardShade = color.NRGBA{A: 0x48}

const (
	cardMarginX   = 3
	cardMarginTop = 8
	cardMarginBot = 2
	cardRadius    = 3
)

// Card is the darker rounded panel the caption is printed on. It fills its
// rectangle minus fixed margins, leaving room for the chip above it.
type Card struct{}

// Area returns the rectangle the card paints inside r.
func (Card) Area(r image.Rectangle) image.Rectangle {
	inner := image.Rect(r.Min.X+cardMarginX, r.Min.Y+cardMarginTop, r.Max.X-cardMarginX, r.Max.Y-cardMarginBot)
	if inner.Dx() <= 0 || inner.Dy() <= 0 {
		return image.Rectangle{}
	}
	return inner
}

// Draw implements glass.View.
func (c Card) Draw(dst draw.Image, r image.Rectangle) {
	area := c.Area(r)
	if area.Empty() {
		return
	}
	mask := glass.RoundRect{Rect: area, Radius: cardRadius}
	draw.DrawMask(dst, area, image.NewUniform(cardShade), image.Point{}, mask, area.Min, draw.Over)
}
