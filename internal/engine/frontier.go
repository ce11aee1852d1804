package engine

import (
	"cmp"
	"slices"

	"github.com/piwi3910/LoadPack/internal/model"
)

// Anchor is a candidate bottom-left corner for the next item.
type Anchor struct {
	X, Y float64
}

// frontier is the growing set of anchors for one packing run. It starts at
// the container origin and only ever grows; dead or duplicate anchors stay.
type frontier []Anchor

func newFrontier() frontier {
	return frontier{{X: 0, Y: 0}}
}

// extend records the right-edge and top-edge anchors of a committed rectangle.
func (f frontier) extend(r rect) frontier {
	return append(f,
		Anchor{X: r.x + r.w, Y: r.y}, // right
		Anchor{X: r.x, Y: r.y + r.h}, // top
	)
}

// scanOrder returns a sorted snapshot of the frontier: bottom row first,
// left to right within a row. Anchors on or beyond the container's far
// edges cannot hold any item and are skipped, as are repeated anchors.
// Neither changes which anchor an item ends up at.
func (f frontier) scanOrder(c model.Container) []Anchor {
	snapshot := make([]Anchor, 0, len(f))
	for _, a := range f {
		if a.X < c.Width && a.Y < c.Height {
			snapshot = append(snapshot, a)
		}
	}
	slices.SortStableFunc(snapshot, func(a, b Anchor) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return slices.Compact(snapshot)
}
