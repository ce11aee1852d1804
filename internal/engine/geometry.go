package engine

import "github.com/piwi3910/LoadPack/internal/model"

type rect struct {
	x, y, w, h float64
}

// overlaps returns true if two rectangles share interior area. Rectangles
// that only touch along an edge or at a corner do not overlap.
func (a rect) overlaps(b rect) bool {
	return a.x < b.x+b.w && b.x < a.x+a.w &&
		a.y < b.y+b.h && b.y < a.y+a.h
}

// within returns true if the rectangle lies entirely inside the container.
func (a rect) within(c model.Container) bool {
	return a.x >= 0 && a.y >= 0 &&
		a.x+a.w <= c.Width && a.y+a.h <= c.Height
}

// placedRect returns the occupied rectangle of a placed item.
func placedRect(p model.Placement) rect {
	return rect{x: p.Position.X, y: p.Position.Y, w: p.PlacedWidth(), h: p.PlacedHeight()}
}
