package term

import (
	"image"
	"math"

	"glassui/internal/glass"
)

// DefaultBlurScale converts glass blur radii, expressed in device-independent
// units, into terminal pixels. A half-block terminal pixel covers roughly
// eight of those units.
const DefaultBlurScale = 1.0 / 8

// BoxBlur approximates a Gaussian blur with three successive box blurs.
// Edges are clamped.
type BoxBlur struct {
	Sigma float64
}

// Apply implements glass.RenderEffect.
func (b BoxBlur) Apply(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	out := image.NewRGBA(bounds)
	copy(out.Pix, src.Pix)
	if b.Sigma <= 0 || bounds.Empty() {
		return out
	}
	tmp := image.NewRGBA(bounds)
	for _, size := range boxSizes(b.Sigma, 3) {
		r := (size - 1) / 2
		if r <= 0 {
			continue
		}
		boxPass(out, tmp, r, true)
		boxPass(tmp, out, r, false)
	}
	return out
}

// boxSizes returns n odd box widths whose successive application matches a
// Gaussian of the given sigma.
func boxSizes(sigma float64, n int) []int {
	ideal := math.Sqrt(12*sigma*sigma/float64(n) + 1)
	wl := int(math.Floor(ideal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2
	mIdeal := (12*sigma*sigma - float64(n*wl*wl) - float64(4*n*wl) - float64(3*n)) / float64(-4*wl-4)
	m := int(math.Round(mIdeal))

	sizes := make([]int, n)
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// boxPass runs a running-sum box filter of radius r from src into dst along
// one axis.
func boxPass(src, dst *image.RGBA, r int, horizontal bool) {
	b := src.Bounds()
	lines, length := b.Dy(), b.Dx()
	if !horizontal {
		lines, length = b.Dx(), b.Dy()
	}
	at := func(line, i int) int {
		if i < 0 {
			i = 0
		} else if i >= length {
			i = length - 1
		}
		if horizontal {
			return src.PixOffset(b.Min.X+i, b.Min.Y+line)
		}
		return src.PixOffset(b.Min.X+line, b.Min.Y+i)
	}
	width := 2*r + 1
	for line := 0; line < lines; line++ {
		var sum [4]int
		for i := -r; i <= r; i++ {
			o := at(line, i)
			for c := 0; c < 4; c++ {
				sum[c] += int(src.Pix[o+c])
			}
		}
		for i := 0; i < length; i++ {
			o := at(line, i)
			for c := 0; c < 4; c++ {
				dst.Pix[o+c] = uint8((sum[c] + width/2) / width)
			}
			add, drop := at(line, i+r+1), at(line, i-r)
			for c := 0; c < 4; c++ {
				sum[c] += int(src.Pix[add+c]) - int(src.Pix[drop+c])
			}
		}
	}
}

// boxBlurEffector is this host's blur capability.
type boxBlurEffector struct {
	scale float64
}

func (boxBlurEffector) Supported() bool { return true }

func (e boxBlurEffector) Effect(radius float64) glass.RenderEffect {
	return BoxBlur{Sigma: radius * e.scale}
}
