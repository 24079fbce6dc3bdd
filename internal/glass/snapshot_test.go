package glass

import (
	"image"
	"image/color"
	"testing"
)

func quadrantRoot() *quadrants {
	return &quadrants{tl: opaqueRed, tr: opaqueGreen, bl: opaqueBlue, br: opaqueWhite}
}

func TestCaptureTranslatesToViewOrigin(t *testing.T) {
	tests := []struct {
		name   string
		rootAt image.Point
		viewAt image.Point
		size   image.Point
		tl, br color.RGBA
	}{
		{name: "top right quadrant", viewAt: image.Pt(10, 0), size: image.Pt(10, 10), tl: opaqueGreen, br: opaqueGreen},
		{name: "straddles centre", viewAt: image.Pt(5, 5), size: image.Pt(10, 10), tl: opaqueRed, br: opaqueWhite},
		{name: "root offset on screen", rootAt: image.Pt(3, 7), viewAt: image.Pt(13, 17), size: image.Pt(10, 10), tl: opaqueWhite, br: opaqueWhite},
		{name: "origin", size: image.Pt(4, 4), tl: opaqueRed, br: opaqueRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := quadrantRoot()
			host := newFakeHost(root, image.Pt(20, 20))
			v := &marker{}
			host.locations[root] = tt.rootAt
			host.locations[v] = tt.viewAt

			bmp, ok := Capture(host, v, tt.size.X, tt.size.Y)
			if !ok {
				t.Fatal("Capture() reported no root")
			}
			if got := bmp.Bounds(); got != image.Rect(0, 0, tt.size.X, tt.size.Y) {
				t.Fatalf("bounds = %v", got)
			}
			if got := bmp.RGBAAt(0, 0); got != tt.tl {
				t.Errorf("top-left = %v, want %v", got, tt.tl)
			}
			if got := bmp.RGBAAt(tt.size.X-1, tt.size.Y-1); got != tt.br {
				t.Errorf("bottom-right = %v, want %v", got, tt.br)
			}
		})
	}
}

func TestCaptureStraddlingQuadrants(t *testing.T) {
	root := quadrantRoot()
	host := newFakeHost(root, image.Pt(20, 20))
	v := &marker{}
	host.locations[v] = image.Pt(5, 5)

	bmp, _ := Capture(host, v, 10, 10)
	want := map[image.Point]color.RGBA{
		{0, 0}: opaqueRed,
		{9, 0}: opaqueGreen,
		{0, 9}: opaqueBlue,
		{9, 9}: opaqueWhite,
	}
	for p, c := range want {
		if got := bmp.RGBAAt(p.X, p.Y); got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}
}

func TestCaptureBeyondRootLeavesTransparent(t *testing.T) {
	host := newFakeHost(&solid{c: opaqueRed}, image.Pt(10, 10))
	v := &marker{}
	host.locations[v] = image.Pt(8, 8)

	bmp, ok := Capture(host, v, 4, 4)
	if !ok {
		t.Fatal("Capture() reported no root")
	}
	if got := bmp.RGBAAt(1, 1); got != opaqueRed {
		t.Errorf("inside root = %v", got)
	}
	if got := bmp.RGBAAt(3, 3); got.A != 0 {
		t.Errorf("outside root = %v, want transparent", got)
	}
}

func TestCaptureUnavailable(t *testing.T) {
	v := &marker{}

	host := newFakeHost(&solid{c: opaqueRed}, image.Pt(10, 10))
	host.rootOK = false
	if _, ok := Capture(host, v, 5, 5); ok {
		t.Error("missing root should not capture")
	}

	host = newFakeHost(nil, image.Pt(10, 10))
	if _, ok := Capture(host, v, 5, 5); ok {
		t.Error("nil root should not capture")
	}

	host = newFakeHost(&solid{c: opaqueRed}, image.Pt(10, 10))
	if _, ok := Capture(host, v, 0, 5); ok {
		t.Error("empty size should not capture")
	}
}
