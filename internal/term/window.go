// Package term hosts glass views in a terminal. A Window keeps a pixel view
// tree, drives its lifecycle and per-frame notifications, and hands finished
// frames to a Canvas that rasterises them into half-block cells.
package term

import (
	"fmt"
	"image"
	"image/color"

	"glassui/internal/debug"
	apperrors "glassui/internal/errors"
	"glassui/internal/glass"
)

// Attachable views are told when the window they live in is shown or hidden.
type Attachable interface {
	OnAttachedToWindow()
	OnDetachedFromWindow()
}

// Resizable views are told when their placement changes size.
type Resizable interface {
	OnSizeChanged(w, h, oldw, oldh int)
}

type windowSettings struct {
	origin       image.Point
	blur         bool
	blurScale    float64
	outlineClip  bool
	cornerRadius float64
	tint         color.Color
}

// Option configures NewWindow.
type Option func(*windowSettings)

// WithOrigin sets the window's position on screen, in pixels.
func WithOrigin(p image.Point) Option {
	return func(s *windowSettings) {
		s.origin = p
	}
}

// WithBlur toggles the blur capability the window advertises.
func WithBlur(enabled bool) Option {
	return func(s *windowSettings) {
		s.blur = enabled
	}
}

// WithBlurScale sets how many terminal pixels one blur radius unit spans.
func WithBlurScale(scale float64) Option {
	return func(s *windowSettings) {
		s.blurScale = scale
	}
}

// WithOutlineClip toggles rounded outline clipping support.
func WithOutlineClip(enabled bool) Option {
	return func(s *windowSettings) {
		s.outlineClip = enabled
	}
}

// WithCornerRadius sets the glass_radius dimension resource, in pixels.
func WithCornerRadius(r float64) Option {
	return func(s *windowSettings) {
		s.cornerRadius = r
	}
}

// WithOverlayTint sets the bg_glass_overlay drawable to a uniform colour.
func WithOverlayTint(c color.Color) Option {
	return func(s *windowSettings) {
		s.tint = c
	}
}

// Window is a glass.Host backed by an in-memory pixel frame. It is not safe
// for concurrent use; drive it from the Bubble Tea update loop.
type Window struct {
	settings windowSettings
	size     image.Point
	root     *Frame
	observer *treeObserver
	pending  []func()
	shown    bool
	dirty    bool
	last     *image.RGBA
}

var (
	_ glass.Host           = (*Window)(nil)
	_ glass.BlurProvider   = (*Window)(nil)
	_ glass.OutlineClipper = (*Window)(nil)
)

// NewWindow creates a hidden window of w×h pixels.
func NewWindow(w, h int, opts ...Option) (*Window, error) {
	if w <= 0 || h <= 0 {
		return nil, apperrors.New(apperrors.CodeInvalidGeometry, fmt.Sprintf("window size %dx%d is empty", w, h), nil)
	}
	settings := windowSettings{
		blur:        true,
		blurScale:   DefaultBlurScale,
		outlineClip: true,
		tint:        color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30},
	}
	for _, opt := range opts {
		opt(&settings)
	}
	return &Window{
		settings: settings,
		size:     image.Pt(w, h),
		root:     &Frame{},
		observer: &treeObserver{},
	}, nil
}

// Size returns the window size in pixels.
func (w *Window) Size() image.Point {
	return w.size
}

// SetBackground sets the view painted beneath every placed view.
func (w *Window) SetBackground(v glass.View) {
	w.root.background = v
	w.dirty = true
}

// SetOverlayTint changes the bg_glass_overlay drawable handed to containers
// built after this call. Existing containers keep their overlay.
func (w *Window) SetOverlayTint(c color.Color) {
	w.settings.tint = c
}

// Add places v at r (window coordinates). Resizable views get their initial
// size, and Attachable views are attached right away when the window is shown.
func (w *Window) Add(v glass.View, r image.Rectangle) {
	if v == nil || w.root.index(v) >= 0 {
		return
	}
	w.root.children = append(w.root.children, placement{view: v, rect: r})
	if rv, ok := v.(Resizable); ok {
		rv.OnSizeChanged(r.Dx(), r.Dy(), 0, 0)
	}
	if w.shown {
		if av, ok := v.(Attachable); ok {
			av.OnAttachedToWindow()
		}
	}
	w.dirty = true
}

// Remove detaches and unplaces v.
func (w *Window) Remove(v glass.View) bool {
	i := w.root.index(v)
	if i < 0 {
		return false
	}
	if w.shown {
		if av, ok := v.(Attachable); ok {
			av.OnDetachedFromWindow()
		}
	}
	w.root.children = append(w.root.children[:i], w.root.children[i+1:]...)
	w.dirty = true
	return true
}

// Placement returns where v sits in window coordinates.
func (w *Window) Placement(v glass.View) (image.Rectangle, error) {
	i := w.root.index(v)
	if i < 0 {
		return image.Rectangle{}, apperrors.New(apperrors.CodeNotPlaced, "view is not placed in this window", nil)
	}
	return w.root.children[i].rect, nil
}

// Move repositions v without changing its size.
func (w *Window) Move(v glass.View, to image.Point) error {
	i := w.root.index(v)
	if i < 0 {
		return apperrors.New(apperrors.CodeNotPlaced, "move: view is not placed in this window", nil)
	}
	r := w.root.children[i].rect
	w.root.children[i].rect = r.Add(to.Sub(r.Min))
	w.dirty = true
	return nil
}

// Resize changes v's size, keeping its top-left corner, and notifies it.
func (w *Window) Resize(v glass.View, size image.Point) error {
	i := w.root.index(v)
	if i < 0 {
		return apperrors.New(apperrors.CodeNotPlaced, "resize: view is not placed in this window", nil)
	}
	if size.X < 0 || size.Y < 0 {
		return apperrors.New(apperrors.CodeInvalidGeometry, fmt.Sprintf("resize: negative size %v", size), nil)
	}
	old := w.root.children[i].rect
	w.root.children[i].rect = image.Rectangle{Min: old.Min, Max: old.Min.Add(size)}
	if rv, ok := v.(Resizable); ok {
		rv.OnSizeChanged(size.X, size.Y, old.Dx(), old.Dy())
	}
	w.dirty = true
	return nil
}

// Show puts the window on screen and attaches every placed view.
func (w *Window) Show() {
	if w.shown {
		return
	}
	w.shown = true
	for _, p := range w.root.children {
		if av, ok := p.view.(Attachable); ok {
			av.OnAttachedToWindow()
		}
	}
	debug.Logf("term: window shown (%dx%d px, %d views)", w.size.X, w.size.Y, len(w.root.children))
}

// Hide detaches every placed view and takes the window off screen.
func (w *Window) Hide() {
	if !w.shown {
		return
	}
	for _, p := range w.root.children {
		if av, ok := p.view.(Attachable); ok {
			av.OnDetachedFromWindow()
		}
	}
	w.shown = false
	w.last = nil
	debug.Log("term: window hidden")
}

// Shown reports whether the window is on screen.
func (w *Window) Shown() bool {
	return w.shown
}

// Dirty reports whether something was invalidated since the last frame.
func (w *Window) Dirty() bool {
	return w.dirty
}

// PreDrawListeners returns the number of pre-draw subscriptions.
func (w *Window) PreDrawListeners() int {
	return w.observer.count()
}

// RunPending runs the callbacks posted so far, in order. Callbacks posted
// while draining run on the next call.
func (w *Window) RunPending() int {
	queue := w.pending
	w.pending = nil
	for _, fn := range queue {
		fn()
	}
	return len(queue)
}

// Frame dispatches the pre-draw notification and renders the whole view tree
// into a new bitmap. A hidden window yields nil. When a listener vetoes the
// frame, the previous frame is returned unchanged (nil if there is none).
func (w *Window) Frame() *image.RGBA {
	if !w.shown {
		return nil
	}
	if !w.observer.dispatchPreDraw() {
		debug.Log("term: frame skipped by a pre-draw listener")
		return w.last
	}
	img := image.NewRGBA(image.Rectangle{Max: w.size})
	w.root.Draw(img, img.Bounds())
	w.dirty = false
	w.last = img
	return img
}

// Root implements glass.Host.
func (w *Window) Root() (glass.View, image.Point, bool) {
	if !w.shown {
		return nil, image.Point{}, false
	}
	return w.root, w.size, true
}

// LocationOnScreen implements glass.Host. Views that are not placed directly
// in the window report the window origin.
func (w *Window) LocationOnScreen(v glass.View) image.Point {
	if i := w.root.index(v); i >= 0 {
		return w.settings.origin.Add(w.root.children[i].rect.Min)
	}
	return w.settings.origin
}

// TreeObserver implements glass.Host.
func (w *Window) TreeObserver() glass.TreeObserver {
	return w.observer
}

// Post implements glass.Host.
func (w *Window) Post(fn func()) {
	if fn != nil {
		w.pending = append(w.pending, fn)
	}
}

// Invalidate implements glass.Host.
func (w *Window) Invalidate(glass.View) {
	w.dirty = true
}

// Dimension implements glass.Host.
func (w *Window) Dimension(name string) float64 {
	if name == glass.DimenGlassRadius {
		return w.settings.cornerRadius
	}
	return 0
}

// Drawable implements glass.Host.
func (w *Window) Drawable(name string) image.Image {
	if name == glass.DrawableGlassOverlay && w.settings.tint != nil {
		return image.NewUniform(w.settings.tint)
	}
	return nil
}

// BlurEffector implements glass.BlurProvider.
func (w *Window) BlurEffector() glass.BlurEffector {
	if !w.settings.blur {
		return nil
	}
	return boxBlurEffector{scale: w.settings.blurScale}
}

// SupportsOutlineClip implements glass.OutlineClipper.
func (w *Window) SupportsOutlineClip() bool {
	return w.settings.outlineClip
}
