package glass

import "image"

// RenderEffect is a platform-level effect applied to a layer's bitmap when the
// layer is drawn. It must not modify src.
type RenderEffect interface {
	Apply(src *image.RGBA) *image.RGBA
}

// BlurEffector creates blur render effects on platforms that can run them.
type BlurEffector interface {
	// Supported reports whether Effect returns a usable effect.
	Supported() bool
	// Effect returns a blur of the given radius.
	Effect(radius float64) RenderEffect
}

// NoBlur is the effector for platforms without hardware blur. The snapshot
// is shown sharp with only the vibrancy pass applied.
type NoBlur struct{}

// Supported implements BlurEffector.
func (NoBlur) Supported() bool { return false }

// Effect implements BlurEffector.
func (NoBlur) Effect(float64) RenderEffect { return nil }

func blurEffectorFor(host Host) BlurEffector {
	if p, ok := host.(BlurProvider); ok {
		if e := p.BlurEffector(); e != nil && e.Supported() {
			return e
		}
	}
	return NoBlur{}
}
