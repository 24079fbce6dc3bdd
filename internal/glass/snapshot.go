package glass

import "image"

// Capture renders what lies behind v into a new w×h bitmap. The whole root
// hierarchy is drawn, translated so that v's top-left corner lands on the
// bitmap origin.
//
// The root render includes v itself, so the capture also contains v's current
// children, the previous snapshot and overlay among them. The result is an
// approximation of the background behind the glass, not an occlusion-free
// capture.
//
// ok is false when the host has no root yet; callers treat that as a skip.
func Capture(host Host, v View, w, h int) (*image.RGBA, bool) {
	if w <= 0 || h <= 0 {
		return nil, false
	}
	root, size, ok := host.Root()
	if !ok || root == nil {
		return nil, false
	}

	delta := host.LocationOnScreen(v).Sub(host.LocationOnScreen(root))
	bmp := image.NewRGBA(image.Rect(0, 0, w, h))
	origin := image.Point{}.Sub(delta)
	root.Draw(bmp, image.Rectangle{Min: origin, Max: origin.Add(size)})
	return bmp, true
}
