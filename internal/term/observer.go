package term

import "glassui/internal/glass"

// treeObserver fans pre-draw notifications out to its listeners in
// subscription order.
type treeObserver struct {
	listeners []glass.PreDrawListener
}

func (o *treeObserver) AddOnPreDrawListener(l glass.PreDrawListener) {
	if l == nil {
		return
	}
	o.listeners = append(o.listeners, l)
}

func (o *treeObserver) RemoveOnPreDrawListener(l glass.PreDrawListener) {
	for i, existing := range o.listeners {
		if existing == l {
			o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
			return
		}
	}
}

// dispatchPreDraw notifies every listener and reports whether the frame
// should be drawn. Listeners added or removed during dispatch take effect on
// the next frame.
func (o *treeObserver) dispatchPreDraw() bool {
	snapshot := append([]glass.PreDrawListener(nil), o.listeners...)
	proceed := true
	for _, l := range snapshot {
		if !l.OnPreDraw() {
			proceed = false
		}
	}
	return proceed
}

func (o *treeObserver) count() int {
	return len(o.listeners)
}
