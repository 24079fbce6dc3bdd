package glass

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func testPattern() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: uint8((x + y) * 8), A: 255})
		}
	}
	return img
}

func TestApplyVibrancyIdentity(t *testing.T) {
	src := testPattern()
	// A translucent pixel must survive the identity too.
	src.SetRGBA(3, 3, color.RGBA{R: 40, G: 20, B: 10, A: 128})

	out := ApplyVibrancy(src, 1, 0)
	if out == src {
		t.Fatal("ApplyVibrancy must allocate a new bitmap")
	}
	for i := range src.Pix {
		if out.Pix[i] != src.Pix[i] {
			t.Fatalf("byte %d = %d, want %d", i, out.Pix[i], src.Pix[i])
		}
	}
}

func TestApplyVibrancyBrightnessLift(t *testing.T) {
	src := testPattern()
	before := append([]uint8(nil), src.Pix...)

	out := ApplyVibrancy(src, 1, 10)

	for i := 0; i < len(src.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			want := int(src.Pix[i+c]) + 10
			if want > 255 {
				want = 255
			}
			if int(out.Pix[i+c]) != want {
				t.Fatalf("pixel %d channel %d = %d, want %d", i/4, c, out.Pix[i+c], want)
			}
		}
		if out.Pix[i+3] != src.Pix[i+3] {
			t.Fatalf("pixel %d alpha changed", i/4)
		}
	}
	for i := range before {
		if src.Pix[i] != before[i] {
			t.Fatal("source bitmap was mutated")
		}
	}
}

func TestApplyVibrancyGrayscaleRed(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetRGBA(x, y, opaqueRed)
		}
	}
	out := ApplyVibrancy(src, 0, 0)

	want := uint8(math.Round(lumR * 255))
	got := out.RGBAAt(1, 1)
	if got.R != got.G || got.G != got.B {
		t.Fatalf("expected grayscale, got %v", got)
	}
	if got.R != want {
		t.Fatalf("gray level = %d, want luminance of red %d", got.R, want)
	}
	if got.A != 255 {
		t.Fatalf("alpha = %d", got.A)
	}
}

func TestApplyVibrancyOversaturationClamps(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 250, G: 20, B: 20, A: 255})
	got := ApplyVibrancy(src, 3, 6).RGBAAt(0, 0)
	if got.R != 255 {
		t.Errorf("red should clamp high, got %d", got.R)
	}
	if got.G != 0 || got.B != 0 {
		t.Errorf("green/blue should clamp at zero, got %d/%d", got.G, got.B)
	}
}

func TestApplyVibrancyOrderIsSaturateThenBrighten(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 100, G: 50, B: 0, A: 255})
	got := ApplyVibrancy(src, 0, 20).RGBAAt(0, 0)

	// brighten(saturate(px)): lift is added after graying, so every channel
	// carries the full lift.
	gray := lumR*100 + lumG*50
	want := uint8(math.Round(gray + 20))
	if got.R != want || got.G != want || got.B != want {
		t.Fatalf("got %v, want all channels %d", got, want)
	}
}

func TestPostConcatMatchesSequentialApply(t *testing.T) {
	src := testPattern()
	// Desaturation stays inside the channel range, so only the final
	// clamp and the intermediate rounding can differ.
	sat := SaturationMatrix(0.6)
	lift := BrightnessMatrix(12)

	combined := sat.PostConcat(lift).Apply(src)
	sequential := lift.Apply(sat.Apply(src))

	for i := range combined.Pix {
		d := int(combined.Pix[i]) - int(sequential.Pix[i])
		if d > 1 || d < -1 {
			t.Fatalf("byte %d: combined %d vs sequential %d", i, combined.Pix[i], sequential.Pix[i])
		}
	}
}

func TestIdentityMatrixPostConcat(t *testing.T) {
	m := VibrancyMatrix(1.25, 6)
	if got := IdentityMatrix().PostConcat(m); got != m {
		t.Fatalf("identity then m = %v, want %v", got, m)
	}
	if got := m.PostConcat(IdentityMatrix()); got != m {
		t.Fatalf("m then identity = %v, want %v", got, m)
	}
}
