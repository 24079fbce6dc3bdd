package glass

import (
	"image"
	"image/color"
	"image/draw"
)

// fakeHost is a minimal Host: a root view of a given size, fixed screen
// locations, and manual control over posted callbacks.
type fakeHost struct {
	root       View
	rootSize   image.Point
	rootOK     bool
	locations  map[View]image.Point
	observer   *fakeObserver
	pending    []func()
	invalidate int

	radius float64
	tint   image.Image
	blur   BlurEffector
	clip   bool
}

func newFakeHost(root View, size image.Point) *fakeHost {
	return &fakeHost{
		root:      root,
		rootSize:  size,
		rootOK:    true,
		locations: map[View]image.Point{},
		observer:  &fakeObserver{},
	}
}

func (h *fakeHost) Root() (View, image.Point, bool) {
	return h.root, h.rootSize, h.rootOK
}

func (h *fakeHost) LocationOnScreen(v View) image.Point { return h.locations[v] }
func (h *fakeHost) TreeObserver() TreeObserver          { return h.observer }
func (h *fakeHost) Post(fn func())                      { h.pending = append(h.pending, fn) }
func (h *fakeHost) Invalidate(View)                     { h.invalidate++ }
func (h *fakeHost) Dimension(string) float64            { return h.radius }
func (h *fakeHost) Drawable(string) image.Image         { return h.tint }

func (h *fakeHost) runPending() {
	queue := h.pending
	h.pending = nil
	for _, fn := range queue {
		fn()
	}
}

// capableHost adds blur and outline capabilities to fakeHost.
type capableHost struct {
	*fakeHost
}

func (h capableHost) BlurEffector() BlurEffector { return h.blur }
func (h capableHost) SupportsOutlineClip() bool  { return h.clip }

type fakeObserver struct {
	listeners []PreDrawListener
	added     int
}

func (o *fakeObserver) AddOnPreDrawListener(l PreDrawListener) {
	o.listeners = append(o.listeners, l)
	o.added++
}

func (o *fakeObserver) RemoveOnPreDrawListener(l PreDrawListener) {
	for i, existing := range o.listeners {
		if existing == l {
			o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
			return
		}
	}
}

func (o *fakeObserver) fire() {
	for _, l := range append([]PreDrawListener(nil), o.listeners...) {
		l.OnPreDraw()
	}
}

// solid paints a single colour.
type solid struct {
	c color.Color
}

func (s *solid) Draw(dst draw.Image, r image.Rectangle) {
	draw.Draw(dst, r, image.NewUniform(s.c), image.Point{}, draw.Src)
}

// quadrants paints a 2x2 colour grid over its whole rectangle so captures can
// be checked for translation.
type quadrants struct {
	tl, tr, bl, br color.Color
}

func (q *quadrants) Draw(dst draw.Image, r image.Rectangle) {
	mid := r.Min.Add(r.Size().Div(2))
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, mid.X, mid.Y), image.NewUniform(q.tl), image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(mid.X, r.Min.Y, r.Max.X, mid.Y), image.NewUniform(q.tr), image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, mid.Y, mid.X, r.Max.Y), image.NewUniform(q.bl), image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(mid.X, mid.Y, r.Max.X, r.Max.Y), image.NewUniform(q.br), image.Point{}, draw.Src)
}

type countingEffect struct {
	applied int
}

func (e *countingEffect) Apply(src *image.RGBA) *image.RGBA {
	e.applied++
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}

type fakeBlur struct {
	supported bool
	radii     []float64
	effect    *countingEffect
}

func (b *fakeBlur) Supported() bool { return b.supported }

func (b *fakeBlur) Effect(radius float64) RenderEffect {
	b.radii = append(b.radii, radius)
	return b.effect
}

var (
	opaqueRed   = color.RGBA{R: 255, A: 255}
	opaqueGreen = color.RGBA{G: 255, A: 255}
	opaqueBlue  = color.RGBA{B: 255, A: 255}
	opaqueWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
