package glass

import (
	"image"
	"math"
)

// Rec. 709 luminance weights used by the saturation matrix.
const (
	lumR = 0.213
	lumG = 0.715
	lumB = 0.072
)

// ColorMatrix is a 4x5 row-major colour transform. Rows produce R, G, B, A;
// columns weigh R, G, B, A and the fifth column is an additive offset on the
// 0-255 scale.
type ColorMatrix [20]float64

// IdentityMatrix returns a matrix that leaves colours unchanged.
func IdentityMatrix() ColorMatrix {
	var m ColorMatrix
	m[0], m[6], m[12], m[18] = 1, 1, 1, 1
	return m
}

// SaturationMatrix returns a matrix that scales saturation by s. 1 is the
// identity and 0 maps every colour to its luminance.
func SaturationMatrix(s float64) ColorMatrix {
	inv := 1 - s
	r, g, b := lumR*inv, lumG*inv, lumB*inv
	return ColorMatrix{
		r + s, g, b, 0, 0,
		r, g + s, b, 0, 0,
		r, g, b + s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// BrightnessMatrix returns a matrix that adds lift to R, G and B.
func BrightnessMatrix(lift float64) ColorMatrix {
	m := IdentityMatrix()
	m[4], m[9], m[14] = lift, lift, lift
	return m
}

// PostConcat returns the matrix that applies m first and then next.
func (m ColorMatrix) PostConcat(next ColorMatrix) ColorMatrix {
	var out ColorMatrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			var v float64
			for k := 0; k < 4; k++ {
				v += next[row*5+k] * m[k*5+col]
			}
			if col == 4 {
				v += next[row*5+4]
			}
			out[row*5+col] = v
		}
	}
	return out
}

// VibrancyMatrix composes the saturation adjustment with the brightness lift,
// in that order.
func VibrancyMatrix(saturation, lift float64) ColorMatrix {
	return SaturationMatrix(saturation).PostConcat(BrightnessMatrix(lift))
}

// ApplyVibrancy returns a new bitmap where every pixel is saturated and then
// brightened. src is never modified. Alpha is carried through unchanged and
// colour channels are clamped to the 8-bit range.
func ApplyVibrancy(src *image.RGBA, saturation, lift float64) *image.RGBA {
	return VibrancyMatrix(saturation, lift).Apply(src)
}

// Apply runs the RGB part of m over every pixel of src into a new bitmap.
// The alpha row is ignored; alpha is preserved as is.
//
// Pixels are premultiplied, so the offset column is scaled by alpha and the
// result is clamped to alpha. For opaque pixels this is exactly the
// unpremultiplied transform.
func (m ColorMatrix) Apply(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := src.PixOffset(b.Min.X, y)
		di := dst.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			r := float64(src.Pix[si])
			g := float64(src.Pix[si+1])
			bl := float64(src.Pix[si+2])
			a := src.Pix[si+3]
			scale := float64(a) / 255
			dst.Pix[di] = clampChannel(m[0]*r+m[1]*g+m[2]*bl+m[4]*scale, a)
			dst.Pix[di+1] = clampChannel(m[5]*r+m[6]*g+m[7]*bl+m[9]*scale, a)
			dst.Pix[di+2] = clampChannel(m[10]*r+m[11]*g+m[12]*bl+m[14]*scale, a)
			dst.Pix[di+3] = a
			si += 4
			di += 4
		}
	}
	return dst
}

func clampChannel(v float64, limit uint8) uint8 {
	if v <= 0 {
		return 0
	}
	v = math.Round(v)
	if v >= float64(limit) {
		return limit
	}
	return uint8(v)
}
