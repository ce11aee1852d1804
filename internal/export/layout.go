package export

import "github.com/piwi3910/LoadPack/internal/model"

// topLeftRect converts a placement from container space (origin bottom-left,
// y up) to drawing space (origin top-left, y down), in container units.
// The placement must be placed.
func topLeftRect(c model.Container, p model.Placement) (x, y, w, h float64) {
	w = p.PlacedWidth()
	h = p.PlacedHeight()
	return p.Position.X, c.Height - p.Position.Y - h, w, h
}

// placedOnly returns the placed placements, keeping their order.
func placedOnly(r model.PackResult) []model.Placement {
	out := make([]model.Placement, 0, len(r.Placements))
	for _, p := range r.Placements {
		if p.Placed() {
			out = append(out, p)
		}
	}
	return out
}
