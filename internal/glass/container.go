package glass

import (
	"image"
	"image/draw"

	"glassui/internal/debug"
)

// MatchParent makes a child span the container along that axis.
const MatchParent = -1

// LayoutParams positions a child inside the container.
type LayoutParams struct {
	// Offset is the child's top-left corner relative to the container.
	Offset image.Point
	// Width and Height are in pixels, or MatchParent.
	Width, Height int
}

// MatchParentParams fills the whole container.
func MatchParentParams() LayoutParams {
	return LayoutParams{Width: MatchParent, Height: MatchParent}
}

func (p LayoutParams) frame(r image.Rectangle) image.Rectangle {
	origin := r.Min.Add(p.Offset)
	w, h := p.Width, p.Height
	if w == MatchParent {
		w = r.Dx() - p.Offset.X
	}
	if h == MatchParent {
		h = r.Dy() - p.Offset.Y
	}
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}.Intersect(r)
}

type child struct {
	view   View
	params LayoutParams
}

// Container is the frosted-glass view. Its first two children are always the
// snapshot layer and the overlay layer; everything added through AddView,
// AddViewWithParams or AddViewAt sits above them in insertion order.
//
// A Container is confined to the host's UI goroutine.
type Container struct {
	host Host
	cfg  Config

	blur    BlurEffector
	clip    bool
	radius  float64
	preDraw *PreDrawFunc

	snapshot *SnapshotLayer
	overlay  *OverlayLayer

	children       []child
	internalAdding bool

	width, height int
	lastW, lastH  int
	attached      bool
}

// NewContainer builds a container on host. Options are applied over
// DefaultConfig in order; none of them is validated.
func NewContainer(host Host, opts ...Option) *Container {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Container{
		host: host,
		cfg:  cfg,
		blur: blurEffectorFor(host),
	}
	onPreDraw := PreDrawFunc(func() bool {
		if c.cfg.AutoUpdate {
			c.Refresh()
		}
		return true
	})
	c.preDraw = &onPreDraw
	if oc, ok := host.(OutlineClipper); ok && oc.SupportsOutlineClip() {
		c.clip = true
		c.radius = host.Dimension(DimenGlassRadius)
	}

	c.snapshot = &SnapshotLayer{invalidate: func() { host.Invalidate(c) }}
	c.overlay = &OverlayLayer{tint: host.Drawable(DrawableGlassOverlay)}

	c.internalAdding = true
	c.AddViewAt(c.snapshot, 0, MatchParentParams())
	c.AddViewAt(c.overlay, 1, MatchParentParams())
	c.internalAdding = false

	return c
}

// Config returns the container's configuration.
func (c *Container) Config() Config {
	return c.cfg
}

// Snapshot returns the snapshot layer.
func (c *Container) Snapshot() *SnapshotLayer {
	return c.snapshot
}

// Overlay returns the overlay layer.
func (c *Container) Overlay() *OverlayLayer {
	return c.overlay
}

// Size returns the container's current size.
func (c *Container) Size() image.Point {
	return image.Pt(c.width, c.height)
}

// Attached reports whether the container is attached to its host window.
func (c *Container) Attached() bool {
	return c.attached
}

// BlurSupported reports whether the host supplied a working blur effector.
func (c *Container) BlurSupported() bool {
	return c.blur.Supported()
}

// ChildCount returns the number of children, internal layers included.
func (c *Container) ChildCount() int {
	return len(c.children)
}

// ChildAt returns the child at index i.
func (c *Container) ChildAt(i int) View {
	return c.children[i].view
}

// AddView appends v above every existing child, filling the container.
func (c *Container) AddView(v View) {
	c.AddViewAt(v, len(c.children), MatchParentParams())
}

// AddViewWithParams appends v with the given layout.
func (c *Container) AddViewWithParams(v View, params LayoutParams) {
	c.AddViewAt(v, len(c.children), params)
}

// AddViewAt inserts v at index. External insertions are moved above the
// internal layers; see NextInsertionIndex.
func (c *Container) AddViewAt(v View, index int, params LayoutParams) {
	if v == nil {
		return
	}
	if c.internalAdding {
		c.insert(index, child{view: v, params: params})
		return
	}
	c.insert(NextInsertionIndex(index, len(c.children)), child{view: v, params: params})
	c.host.Invalidate(c)
}

func (c *Container) insert(index int, ch child) {
	if index < 0 || index > len(c.children) {
		index = len(c.children)
	}
	c.children = append(c.children, child{})
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = ch
}

// RemoveView removes a child previously added by a caller. The internal
// layers cannot be removed.
func (c *Container) RemoveView(v View) bool {
	for i := internalLayers; i < len(c.children); i++ {
		if c.children[i].view == v {
			c.children = append(c.children[:i], c.children[i+1:]...)
			c.host.Invalidate(c)
			return true
		}
	}
	return false
}

// OnAttachedToWindow subscribes to pre-draw notifications and schedules a
// first refresh once layout has settled.
func (c *Container) OnAttachedToWindow() {
	if !c.attached {
		c.host.TreeObserver().AddOnPreDrawListener(c.preDraw)
		c.attached = true
	}
	debug.Logf("glass: attached (%dx%d)", c.width, c.height)
	c.host.Post(c.Refresh)
}

// OnDetachedFromWindow drops the pre-draw subscription.
func (c *Container) OnDetachedFromWindow() {
	if !c.attached {
		return
	}
	c.host.TreeObserver().RemoveOnPreDrawListener(c.preDraw)
	c.attached = false
	debug.Log("glass: detached")
}

// OnSizeChanged records the new size and schedules a refresh when it differs
// from the old one.
func (c *Container) OnSizeChanged(w, h, oldw, oldh int) {
	c.width, c.height = w, h
	if w != oldw || h != oldh {
		c.host.Post(c.Refresh)
	}
}

// Refresh re-captures the background and reassigns the snapshot. It is a
// no-op while the container has no area, and, with AutoUpdate off, while the
// size is unchanged and a snapshot is already shown.
func (c *Container) Refresh() {
	w, h := c.width, c.height
	if w <= 0 || h <= 0 {
		debug.Logf("glass: refresh skipped, empty size %dx%d", w, h)
		return
	}
	if !c.cfg.AutoUpdate && w == c.lastW && h == c.lastH && c.snapshot.Bitmap() != nil {
		return
	}
	raw, ok := Capture(c.host, c, w, h)
	if !ok {
		debug.Log("glass: refresh skipped, host root unavailable")
		return
	}
	// Only a successful capture counts as rendered at this size.
	c.lastW, c.lastH = w, h
	out := raw
	if c.cfg.Vibrancy {
		out = ApplyVibrancy(raw, c.cfg.Saturation, c.cfg.BrightnessLift)
	}
	c.snapshot.SetBitmap(out)

	if c.blur.Supported() {
		c.snapshot.SetRenderEffect(c.blur.Effect(c.cfg.BlurRadius))
	} else {
		c.snapshot.SetRenderEffect(nil)
	}
}

// Outline returns the rounded clip region in container coordinates. ok is
// false when the host cannot clip to outlines.
func (c *Container) Outline() (RoundRect, bool) {
	if !c.clip {
		return RoundRect{}, false
	}
	return RoundRect{Rect: image.Rect(0, 0, c.width, c.height), Radius: c.radius}, true
}

// Draw paints every child in order into r, masked by the outline when the
// host supports clipping.
func (c *Container) Draw(dst draw.Image, r image.Rectangle) {
	if r.Empty() {
		return
	}
	outline, ok := c.Outline()
	if !ok {
		c.drawChildren(dst, r)
		return
	}
	layer := image.NewRGBA(r)
	c.drawChildren(layer, r)
	outline.Rect = image.Rectangle{Max: r.Size()}
	draw.DrawMask(dst, r, layer, r.Min, outline.Translate(r.Min), r.Min, draw.Over)
}

func (c *Container) drawChildren(dst draw.Image, r image.Rectangle) {
	for _, ch := range c.children {
		fr := ch.params.frame(r)
		if fr.Empty() {
			continue
		}
		ch.view.Draw(dst, fr)
	}
}
