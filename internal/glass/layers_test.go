package glass

import (
	"image"
	"image/color"
	"testing"
)

func halves(w, h int, left, right color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := left
			if x >= w/2 {
				c = right
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSnapshotLayerDrawsOneToOne(t *testing.T) {
	l := &SnapshotLayer{}
	l.SetBitmap(halves(4, 4, opaqueRed, opaqueGreen))

	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	l.Draw(dst, image.Rect(3, 3, 7, 7))
	if got := dst.RGBAAt(3, 3); got != opaqueRed {
		t.Errorf("left = %v", got)
	}
	if got := dst.RGBAAt(6, 6); got != opaqueGreen {
		t.Errorf("right = %v", got)
	}
	if got := dst.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("outside rect painted: %v", got)
	}
}

func TestSnapshotLayerCenterCrops(t *testing.T) {
	l := &SnapshotLayer{}
	// 4x2 stretched into 2x2 keeps the middle two columns.
	src := halves(4, 2, opaqueRed, opaqueGreen)
	src.SetRGBA(0, 0, opaqueBlue)
	src.SetRGBA(3, 0, opaqueBlue)
	l.SetBitmap(src)

	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	l.Draw(dst, dst.Bounds())
	if got := dst.RGBAAt(0, 0); got != opaqueRed {
		t.Errorf("left column = %v, want red", got)
	}
	if got := dst.RGBAAt(1, 0); got != opaqueGreen {
		t.Errorf("right column = %v, want green", got)
	}
}

func TestSnapshotLayerUpscaleCovers(t *testing.T) {
	l := &SnapshotLayer{}
	l.SetBitmap(halves(2, 2, opaqueRed, opaqueGreen))

	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	l.Draw(dst, dst.Bounds())
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if dst.RGBAAt(x, y).A != 255 {
				t.Fatalf("pixel (%d,%d) not covered", x, y)
			}
		}
	}
	if dst.RGBAAt(0, 4) != opaqueRed || dst.RGBAAt(7, 4) != opaqueGreen {
		t.Error("upscaled halves out of place")
	}
}

func TestSnapshotLayerEffectIsCached(t *testing.T) {
	var invalidated int
	l := &SnapshotLayer{invalidate: func() { invalidated++ }}
	effect := &countingEffect{}
	l.SetBitmap(halves(4, 4, opaqueRed, opaqueGreen))
	l.SetRenderEffect(effect)

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	l.Draw(dst, dst.Bounds())
	l.Draw(dst, dst.Bounds())
	if effect.applied != 1 {
		t.Fatalf("effect applied %d times, want 1", effect.applied)
	}

	l.SetBitmap(halves(4, 4, opaqueBlue, opaqueWhite))
	l.Draw(dst, dst.Bounds())
	if effect.applied != 2 {
		t.Fatalf("new bitmap should re-run the effect, applied %d", effect.applied)
	}
	if invalidated != 2 {
		t.Fatalf("invalidated %d times, want 2", invalidated)
	}

	l.SetRenderEffect(nil)
	l.Draw(dst, dst.Bounds())
	if effect.applied != 2 {
		t.Fatal("cleared effect should not run")
	}
}

type paletteEffect []color.RGBA

func (p paletteEffect) Apply(src *image.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}

func TestSameEffect(t *testing.T) {
	a, b := &countingEffect{}, &countingEffect{}
	tests := []struct {
		name string
		x, y RenderEffect
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil and set", nil, a, false},
		{"same pointer", a, a, true},
		{"different pointers", a, b, false},
		{"uncomparable type", paletteEffect{}, paletteEffect{}, false},
		{"different types", a, paletteEffect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameEffect(tt.x, tt.y); got != tt.want {
				t.Errorf("sameEffect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapshotLayerEmpty(t *testing.T) {
	l := &SnapshotLayer{}
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	l.Draw(dst, dst.Bounds())
	if dst.RGBAAt(0, 0).A != 0 {
		t.Fatal("empty layer should draw nothing")
	}
}

func TestOverlayLayerTints(t *testing.T) {
	tint := image.NewUniform(color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80})
	l := &OverlayLayer{tint: tint}
	if l.Tint() != image.Image(tint) {
		t.Fatal("Tint() should return the construction image")
	}

	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			dst.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}
	l.Draw(dst, dst.Bounds())
	got := dst.RGBAAt(1, 1)
	if got.R < 0x7e || got.R > 0x81 || got.A != 255 {
		t.Fatalf("tinted pixel = %v, want half-white over black", got)
	}

	(&OverlayLayer{}).Draw(dst, dst.Bounds())
}
