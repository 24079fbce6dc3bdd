// Package glass implements a frosted-glass container: it snapshots whatever is
// rendered behind it, runs the snapshot through a vibrancy colour matrix and an
// optional platform blur, and composites the result beneath the views that
// callers add to it.
//
// The package owns no view tree of its own. Everything it needs from the
// surrounding UI (root lookup, screen coordinates, pre-draw notifications,
// deferred execution, resources, optional capabilities) is consumed through
// the Host interface so the same container can run on any pixel host.
package glass

import (
	"image"
	"image/draw"
)

// Resource names the container looks up on its host.
const (
	// DimenGlassRadius is the corner radius of the rounded outline, in pixels.
	DimenGlassRadius = "glass_radius"
	// DrawableGlassOverlay is the static tint painted above the snapshot.
	DrawableGlassOverlay = "bg_glass_overlay"
)

// View is anything that can paint itself into a rectangle of a destination
// image. r is expressed in dst coordinates and r.Min is the view's top-left.
type View interface {
	Draw(dst draw.Image, r image.Rectangle)
}

// PreDrawListener is notified right before the host renders a frame.
// Returning false asks the host to skip the current frame.
type PreDrawListener interface {
	OnPreDraw() bool
}

// PreDrawFunc adapts an ordinary function to PreDrawListener. Use a pointer to
// it so the listener stays comparable for removal.
type PreDrawFunc func() bool

// OnPreDraw implements PreDrawListener.
func (f *PreDrawFunc) OnPreDraw() bool {
	return (*f)()
}

// TreeObserver is the host's per-frame notification hub.
type TreeObserver interface {
	AddOnPreDrawListener(l PreDrawListener)
	RemoveOnPreDrawListener(l PreDrawListener)
}

// Host is the platform a Container is mounted on.
type Host interface {
	// Root returns the top of the view hierarchy and its size. ok is false
	// while the host is not attached to a display.
	Root() (root View, size image.Point, ok bool)
	// LocationOnScreen reports the top-left corner of v in screen pixels.
	LocationOnScreen(v View) image.Point
	// TreeObserver returns the pre-draw notification hub.
	TreeObserver() TreeObserver
	// Post runs fn later on the UI goroutine, after pending layout settles.
	Post(fn func())
	// Invalidate requests a redraw of v.
	Invalidate(v View)
	// Dimension resolves a named dimension resource, in pixels.
	Dimension(name string) float64
	// Drawable resolves a named image resource. nil means none.
	Drawable(name string) image.Image
}

// BlurProvider is implemented by hosts that expose a blur render effect.
type BlurProvider interface {
	BlurEffector() BlurEffector
}

// OutlineClipper is implemented by hosts that can clip a view to an outline.
type OutlineClipper interface {
	SupportsOutlineClip() bool
}
