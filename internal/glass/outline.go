package glass

import (
	"image"
	"image/color"
	"math"
)

// RoundRect is a rounded-rectangle clip region. It implements image.Image as
// an alpha mask so it can be handed straight to draw.DrawMask; corner edges
// get one pixel of coverage anti-aliasing.
type RoundRect struct {
	Rect   image.Rectangle
	Radius float64
}

// ColorModel implements image.Image.
func (m RoundRect) ColorModel() color.Model { return color.AlphaModel }

// Bounds implements image.Image.
func (m RoundRect) Bounds() image.Rectangle { return m.Rect }

// At implements image.Image.
func (m RoundRect) At(x, y int) color.Color {
	return color.Alpha{A: m.coverage(x, y)}
}

// contains reports whether the pixel at x, y is at least half covered.
func (m RoundRect) contains(x, y int) bool {
	return m.coverage(x, y) >= 0x80
}

// Translate returns the same shape offset by p.
func (m RoundRect) Translate(p image.Point) RoundRect {
	return RoundRect{Rect: m.Rect.Add(p), Radius: m.Radius}
}

func (m RoundRect) coverage(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}.In(m.Rect)) {
		return 0
	}
	r := m.Radius
	half := math.Min(float64(m.Rect.Dx()), float64(m.Rect.Dy())) / 2
	if r > half {
		r = half
	}
	if r <= 0 {
		return 0xff
	}
	// Pixel centres, measured against the corner circle centres.
	px := float64(x) + 0.5
	py := float64(y) + 0.5
	left := float64(m.Rect.Min.X) + r
	right := float64(m.Rect.Max.X) - r
	top := float64(m.Rect.Min.Y) + r
	bottom := float64(m.Rect.Max.Y) - r

	var cx, cy float64
	switch {
	case px < left:
		cx = left
	case px > right:
		cx = right
	default:
		return 0xff
	}
	switch {
	case py < top:
		cy = top
	case py > bottom:
		cy = bottom
	default:
		return 0xff
	}
	d := math.Hypot(px-cx, py-cy)
	cov := r - d + 0.5
	switch {
	case cov <= 0:
		return 0
	case cov >= 1:
		return 0xff
	}
	return uint8(cov * 0xff)
}
