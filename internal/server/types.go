package server

import (
	"fmt"

	"github.com/piwi3910/LoadPack/internal/generator"
	"github.com/piwi3910/LoadPack/internal/model"
)

type itemRequest struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fixed  bool    `json:"fixed"`
}

// packRequest is the body of the pack, order and compare endpoints. Items
// listed explicitly come first, followed by the expansion of Loads.
type packRequest struct {
	Container     *model.Container `json:"container"`
	Preset        string           `json:"preset"`
	Items         []itemRequest    `json:"items"`
	Loads         model.LoadList   `json:"loads"`
	AllowRotation *bool            `json:"allow_rotation"`
}

func (r packRequest) settings(defaults model.PackSettings) model.PackSettings {
	s := defaults
	if r.AllowRotation != nil {
		s.AllowRotation = *r.AllowRotation
	}
	return s
}

func (r packRequest) toItems() ([]model.Item, error) {
	if err := r.Loads.Validate(); err != nil {
		return nil, err
	}
	if len(r.Items)+r.Loads.TotalCount() > model.MaxItems {
		return nil, fmt.Errorf("%w: request expands to more than %d items", model.ErrInvalidInput, model.MaxItems)
	}

	items := make([]model.Item, 0, len(r.Items)+r.Loads.TotalCount())
	ids := make(map[string]bool, len(r.Items))
	for _, ir := range r.Items {
		it := model.NewItem(ir.Label, ir.Width, ir.Height)
		if ir.ID != "" {
			if ids[ir.ID] {
				return nil, fmt.Errorf("%w: duplicate item id %q", model.ErrInvalidInput, ir.ID)
			}
			ids[ir.ID] = true
			it.ID = ir.ID
		}
		it.Fixed = ir.Fixed
		items = append(items, it)
	}

	if len(r.Loads) > 0 {
		expanded, err := generator.FromLoads(r.Loads)
		if err != nil {
			return nil, err
		}
		items = append(items, expanded...)
	}
	return items, nil
}

type placementResponse struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Width        float64  `json:"width"`
	Height       float64  `json:"height"`
	Placed       bool     `json:"placed"`
	X            *float64 `json:"x,omitempty"`
	Y            *float64 `json:"y,omitempty"`
	Rotated      bool     `json:"rotated"`
	PlacedWidth  float64  `json:"placed_width,omitempty"`
	PlacedHeight float64  `json:"placed_height,omitempty"`
}

type packResponse struct {
	Container   model.Container     `json:"container"`
	Placements  []placementResponse `json:"placements"`
	Unplaced    []string            `json:"unplaced"`
	PlacedCount int                 `json:"placed_count"`
	UsedArea    float64             `json:"used_area"`
	WastedArea  float64             `json:"wasted_area"`
	Efficiency  float64             `json:"efficiency"`
}

func newPackResponse(r model.PackResult) packResponse {
	resp := packResponse{
		Container:   r.Container,
		Placements:  make([]placementResponse, 0, len(r.Placements)),
		Unplaced:    []string{},
		PlacedCount: r.PlacedCount(),
		UsedArea:    r.UsedArea(),
		WastedArea:  r.WastedArea(),
		Efficiency:  r.Efficiency(),
	}
	for _, p := range r.Placements {
		pr := placementResponse{
			ID:     p.Item.ID,
			Label:  p.Item.Label,
			Width:  p.Item.Width,
			Height: p.Item.Height,
			Placed: p.Placed(),
		}
		if p.Placed() {
			x, y := p.Position.X, p.Position.Y
			pr.X, pr.Y = &x, &y
			pr.Rotated = p.Rotated()
			pr.PlacedWidth = p.PlacedWidth()
			pr.PlacedHeight = p.PlacedHeight()
		} else {
			resp.Unplaced = append(resp.Unplaced, p.Item.Label)
		}
		resp.Placements = append(resp.Placements, pr)
	}
	return resp
}

type scenarioResponse struct {
	Name          string          `json:"name"`
	Container     model.Container `json:"container"`
	AllowRotation bool            `json:"allow_rotation"`
	PlacedCount   int             `json:"placed_count"`
	UnplacedCount int             `json:"unplaced_count"`
	WastedArea    float64         `json:"wasted_area"`
	Efficiency    float64         `json:"efficiency"`
}
