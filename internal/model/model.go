package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Orientation describes how an item sits in the container relative to its
// original width and height.
type Orientation int

const (
	Unrotated Orientation = iota // Original width along X
	Rotated                      // Width and height swapped
)

func (o Orientation) String() string {
	if o == Rotated {
		return "Rotated"
	}
	return "Unrotated"
}

// Item is a rectangular load to be packed. Width and Height are the original
// dimensions and never change; the orientation chosen by the packer lives in
// the Placement.
type Item struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fixed  bool    `json:"fixed,omitempty"` // Must keep its original orientation
}

func NewItem(label string, w, h float64) Item {
	return Item{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Width:  w,
		Height: h,
	}
}

// Area returns width * height.
func (it Item) Area() float64 {
	return it.Width * it.Height
}

// Validate rejects items that can never take part in a packing run.
func (it Item) Validate() error {
	if !positive(it.Width) || !positive(it.Height) {
		return invalidf("item %q: width and height must be positive and finite, got %gx%g", it.Label, it.Width, it.Height)
	}
	return nil
}

// Container is the fixed packing region. The origin is its bottom-left corner.
type Container struct {
	Label  string  `json:"label,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewContainer(w, h float64) Container {
	return Container{
		Label:  fmt.Sprintf("%gx%g", w, h),
		Width:  w,
		Height: h,
	}
}

// Area returns the container area.
func (c Container) Area() float64 {
	return c.Width * c.Height
}

func (c Container) Validate() error {
	if !positive(c.Width) || !positive(c.Height) {
		return invalidf("container width and height must be positive and finite, got %gx%g", c.Width, c.Height)
	}
	return nil
}

// Transposed returns the container with width and height swapped.
func (c Container) Transposed() Container {
	return Container{
		Label:  c.Label + " (transposed)",
		Width:  c.Height,
		Height: c.Width,
	}
}

// Position is the committed bottom-left corner and orientation of a placed item.
type Position struct {
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Orientation Orientation `json:"orientation"`
}

// Placement is the packing outcome for one item. A nil Position means the
// item could not be placed anywhere in the container.
type Placement struct {
	Item     Item      `json:"item"`
	Position *Position `json:"position,omitempty"`
}

// Placed reports whether the item was committed to a position.
func (p Placement) Placed() bool {
	return p.Position != nil
}

// Rotated reports whether the item was placed with swapped dimensions.
func (p Placement) Rotated() bool {
	return p.Position != nil && p.Position.Orientation == Rotated
}

// PlacedWidth returns the effective width considering rotation.
func (p Placement) PlacedWidth() float64 {
	if p.Rotated() {
		return p.Item.Height
	}
	return p.Item.Width
}

// PlacedHeight returns the effective height considering rotation.
func (p Placement) PlacedHeight() float64 {
	if p.Rotated() {
		return p.Item.Width
	}
	return p.Item.Height
}

// Area returns the occupied area, or 0 when unplaced.
func (p Placement) Area() float64 {
	if !p.Placed() {
		return 0
	}
	return p.PlacedWidth() * p.PlacedHeight()
}

// DisplayLabel is the item label with an "(R)" suffix when rotated.
func (p Placement) DisplayLabel() string {
	if p.Rotated() {
		return p.Item.Label + " (R)"
	}
	return p.Item.Label
}

// PackResult holds one container and the outcome for every item, in the
// order the items were packed.
type PackResult struct {
	Container  Container   `json:"container"`
	Placements []Placement `json:"placements"`
}

// UsedArea returns the total area of placed items.
func (r PackResult) UsedArea() float64 {
	var total float64
	for _, p := range r.Placements {
		total += p.Area()
	}
	return total
}

// WastedArea returns the container area not covered by placed items.
func (r PackResult) WastedArea() float64 {
	return r.Container.Area() - r.UsedArea()
}

// Efficiency returns the used area as a percentage of the container area.
func (r PackResult) Efficiency() float64 {
	ta := r.Container.Area()
	if ta == 0 {
		return 0
	}
	return (r.UsedArea() / ta) * 100.0
}

// PlacedCount returns the number of placed items.
func (r PackResult) PlacedCount() int {
	n := 0
	for _, p := range r.Placements {
		if p.Placed() {
			n++
		}
	}
	return n
}

// Unplaced returns the items that did not fit, in packing order.
func (r PackResult) Unplaced() []Item {
	var items []Item
	for _, p := range r.Placements {
		if !p.Placed() {
			items = append(items, p.Item)
		}
	}
	return items
}

// Find returns the placement for the item with the given label.
func (r PackResult) Find(label string) (Placement, bool) {
	for _, p := range r.Placements {
		if p.Item.Label == label {
			return p, true
		}
	}
	return Placement{}, false
}

// PackSettings holds packer options.
type PackSettings struct {
	AllowRotation bool `json:"allow_rotation"` // Try the 90° orientation when the original does not fit
}

func DefaultPackSettings() PackSettings {
	return PackSettings{AllowRotation: true}
}

// Project ties everything together for save/load.
type Project struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Container Container    `json:"container"`
	Loads     LoadList     `json:"loads"`
	Settings  PackSettings `json:"settings"`
	Result    *PackResult  `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		ID:        uuid.New().String()[:8],
		Name:      "Untitled",
		Container: NewContainer(DefaultContainerWidth, DefaultContainerHeight),
		Loads:     LoadList{},
		Settings:  DefaultPackSettings(),
	}
}
