package term

import (
	"image"
	"image/draw"

	"glassui/internal/glass"
)

type placement struct {
	view glass.View
	rect image.Rectangle
}

// Frame is the window's root view: an optional background with absolutely
// placed children drawn over it in placement order.
type Frame struct {
	background glass.View
	children   []placement
}

// Draw implements glass.View.
func (f *Frame) Draw(dst draw.Image, r image.Rectangle) {
	if f.background != nil {
		f.background.Draw(dst, r)
	}
	for _, p := range f.children {
		fr := p.rect.Add(r.Min)
		if fr.Empty() {
			continue
		}
		p.view.Draw(dst, fr)
	}
}

func (f *Frame) index(v glass.View) int {
	for i, p := range f.children {
		if p.view == v {
			return i
		}
	}
	return -1
}
