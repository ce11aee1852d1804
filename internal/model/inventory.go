package model

import "github.com/google/uuid"

// ContainerPreset is a reusable, named container size.
type ContainerPreset struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewContainerPreset creates a new ContainerPreset with a generated ID.
func NewContainerPreset(name string, width, height float64) ContainerPreset {
	return ContainerPreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  width,
		Height: height,
	}
}

// ToContainer converts a preset into a Container labelled with the preset name.
func (cp ContainerPreset) ToContainer() Container {
	return Container{Label: cp.Name, Width: cp.Width, Height: cp.Height}
}

// Inventory holds the user's saved container presets.
type Inventory struct {
	Containers []ContainerPreset `json:"containers"`
}

// DefaultInventory returns an inventory populated with common load surfaces (mm
// for the pallet and freight entries).
func DefaultInventory() Inventory {
	return Inventory{
		Containers: []ContainerPreset{
			NewContainerPreset("Demo 200x100", 200, 100),
			NewContainerPreset("Euro pallet (EUR1)", 1200, 800),
			NewContainerPreset("Euro pallet (EUR2)", 1200, 1000),
			NewContainerPreset("US pallet (GMA)", 1219, 1016),
			NewContainerPreset("20ft container floor", 5898, 2352),
			NewContainerPreset("40ft container floor", 12032, 2352),
		},
	}
}

// FindContainerByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindContainerByID(id string) *ContainerPreset {
	for i := range inv.Containers {
		if inv.Containers[i].ID == id {
			return &inv.Containers[i]
		}
	}
	return nil
}

// FindContainerByName returns a pointer to the first preset with the given name, or nil.
func (inv *Inventory) FindContainerByName(name string) *ContainerPreset {
	for i := range inv.Containers {
		if inv.Containers[i].Name == name {
			return &inv.Containers[i]
		}
	}
	return nil
}

// ContainerNames returns a list of preset names for UI dropdowns.
func (inv *Inventory) ContainerNames() []string {
	names := make([]string, len(inv.Containers))
	for i, c := range inv.Containers {
		names[i] = c.Name
	}
	return names
}
