package glass

import (
	"image"
	"image/draw"
	"reflect"
)

// SnapshotLayer displays the processed background bitmap. It holds exactly one
// bitmap at a time; assigning a new one releases the previous to the GC.
type SnapshotLayer struct {
	bitmap *image.RGBA
	effect RenderEffect

	// effected caches effect applied to bitmap until either changes.
	effected *image.RGBA

	invalidate func()
}

// Bitmap returns the bitmap currently shown, or nil before the first refresh.
func (l *SnapshotLayer) Bitmap() *image.RGBA {
	return l.bitmap
}

// SetBitmap replaces the displayed bitmap and requests a redraw.
func (l *SnapshotLayer) SetBitmap(b *image.RGBA) {
	l.bitmap = b
	l.effected = nil
	if l.invalidate != nil {
		l.invalidate()
	}
}

// RenderEffect returns the effect applied at draw time, if any.
func (l *SnapshotLayer) RenderEffect() RenderEffect {
	return l.effect
}

// SetRenderEffect sets or, with nil, clears the draw-time effect. Setting an
// effect equal to the current one keeps the cached result.
func (l *SnapshotLayer) SetRenderEffect(e RenderEffect) {
	if sameEffect(l.effect, e) {
		return
	}
	l.effect = e
	l.effected = nil
}

// sameEffect compares effects without panicking on uncomparable dynamic types.
func sameEffect(a, b RenderEffect) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Draw paints the bitmap into r, center-cropping when the sizes differ.
func (l *SnapshotLayer) Draw(dst draw.Image, r image.Rectangle) {
	src := l.displayed()
	if src == nil || r.Empty() {
		return
	}
	if src.Bounds().Size() == r.Size() {
		draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
		return
	}
	drawCenterCrop(dst, r, src)
}

func (l *SnapshotLayer) displayed() *image.RGBA {
	if l.bitmap == nil {
		return nil
	}
	if l.effect == nil {
		return l.bitmap
	}
	if l.effected == nil {
		l.effected = l.effect.Apply(l.bitmap)
	}
	return l.effected
}

// drawCenterCrop scales src uniformly so it covers r and crops the overflow,
// sampling nearest neighbour.
func drawCenterCrop(dst draw.Image, r image.Rectangle, src *image.RGBA) {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if sw == 0 || sh == 0 {
		return
	}
	scale := float64(r.Dx()) / float64(sw)
	if s := float64(r.Dy()) / float64(sh); s > scale {
		scale = s
	}
	offX := (float64(sw)*scale - float64(r.Dx())) / 2
	offY := (float64(sh)*scale - float64(r.Dy())) / 2

	scaled := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		sy := sb.Min.Y + int((float64(y)+offY)/scale)
		if sy >= sb.Max.Y {
			sy = sb.Max.Y - 1
		}
		for x := 0; x < r.Dx(); x++ {
			sx := sb.Min.X + int((float64(x)+offX)/scale)
			if sx >= sb.Max.X {
				sx = sb.Max.X - 1
			}
			si := src.PixOffset(sx, sy)
			di := scaled.PixOffset(x, y)
			copy(scaled.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	draw.Draw(dst, r, scaled, image.Point{}, draw.Over)
}

// OverlayLayer is the static tint painted over the snapshot and below user
// content. It is never mutated after construction.
type OverlayLayer struct {
	tint image.Image
}

// Tint returns the overlay image.
func (l *OverlayLayer) Tint() image.Image {
	return l.tint
}

// Draw paints the tint over r.
func (l *OverlayLayer) Draw(dst draw.Image, r image.Rectangle) {
	if l.tint == nil || r.Empty() {
		return
	}
	draw.Draw(dst, r, l.tint, l.tint.Bounds().Min, draw.Over)
}
