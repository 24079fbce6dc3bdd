package glass

import (
	"image"
	"image/draw"
	"math/rand"
	"testing"
)

type marker struct {
	id int
}

func (m *marker) Draw(draw.Image, image.Rectangle) {}

func TestNextInsertionIndex(t *testing.T) {
	tests := []struct {
		name             string
		requested, count int
		want             int
	}{
		{"empty container appends", 0, 0, 0},
		{"one child appends", 0, 1, 1},
		{"front request lifted above layers", 0, 2, 2},
		{"index one lifted", 1, 5, 2},
		{"index two kept", 2, 5, 2},
		{"middle kept", 4, 6, 4},
		{"append at end", 6, 6, 6},
		{"negative appends", -1, 4, 4},
		{"past end clamps", 99, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextInsertionIndex(tt.requested, tt.count); got != tt.want {
				t.Errorf("NextInsertionIndex(%d, %d) = %d, want %d", tt.requested, tt.count, got, tt.want)
			}
		})
	}
}

func TestInternalLayersStayAtBottom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		host := newFakeHost(&solid{c: opaqueRed}, image.Pt(10, 10))
		c := NewContainer(host)
		n := rng.Intn(12)
		for i := 0; i < n; i++ {
			m := &marker{id: i}
			switch rng.Intn(3) {
			case 0:
				c.AddView(m)
			case 1:
				c.AddViewWithParams(m, LayoutParams{Width: 2, Height: 2})
			default:
				c.AddViewAt(m, rng.Intn(c.ChildCount()+3)-1, MatchParentParams())
			}
		}
		if c.ChildCount() != n+2 {
			t.Fatalf("trial %d: ChildCount() = %d, want %d", trial, c.ChildCount(), n+2)
		}
		if c.ChildAt(0) != View(c.Snapshot()) || c.ChildAt(1) != View(c.Overlay()) {
			t.Fatalf("trial %d: internal layers displaced", trial)
		}
	}
}

func TestAppendedChildrenKeepInsertionOrder(t *testing.T) {
	c := NewContainer(newFakeHost(&solid{c: opaqueRed}, image.Pt(4, 4)))
	a, b, d := &marker{1}, &marker{2}, &marker{3}
	c.AddView(a)
	c.AddViewWithParams(b, MatchParentParams())
	c.AddView(d)

	want := []View{c.Snapshot(), c.Overlay(), a, b, d}
	for i, v := range want {
		if c.ChildAt(i) != v {
			t.Fatalf("child %d = %v, want %v", i, c.ChildAt(i), v)
		}
	}

	front := &marker{4}
	c.AddViewAt(front, 0, MatchParentParams())
	if c.ChildAt(2) != View(front) || c.ChildAt(3) != View(a) {
		t.Fatal("index 0 request should land directly above the internal layers")
	}
}

func TestRemoveViewKeepsInternalLayers(t *testing.T) {
	host := newFakeHost(&solid{c: opaqueRed}, image.Pt(4, 4))
	c := NewContainer(host)
	m := &marker{1}
	c.AddView(m)

	if c.RemoveView(c.Snapshot()) || c.RemoveView(c.Overlay()) {
		t.Fatal("internal layers must not be removable")
	}
	if !c.RemoveView(m) {
		t.Fatal("RemoveView should remove a user child")
	}
	if c.RemoveView(m) {
		t.Fatal("second RemoveView should report false")
	}
	if c.ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d, want 2", c.ChildCount())
	}
}
