package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/LoadPack/internal/model"
)

// DefaultInventoryPath returns the default file path for the container
// inventory, ~/.loadpack/containers.json.
func DefaultInventoryPath() string {
	return filepath.Join(DefaultConfigDir(), "containers.json")
}

// SaveInventory writes the inventory to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveInventory(path string, inv model.Inventory) error {
	return writeJSON(path, inv)
}

// LoadInventory reads the inventory from the specified JSON file.
// If the file does not exist, it returns the default inventory and saves it.
func LoadInventory(path string) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			inv := model.DefaultInventory()
			if saveErr := SaveInventory(path, inv); saveErr != nil {
				return inv, saveErr
			}
			return inv, nil
		}
		return model.Inventory{}, err
	}
	var inv model.Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return model.Inventory{}, fmt.Errorf("failed to parse inventory %s: %w", path, err)
	}
	return inv, nil
}

// ImportInventory reads container presets from a JSON file and merges them
// into the existing inventory. Presets whose ID is already present are skipped.
func ImportInventory(path string, existing model.Inventory) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Inventory
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	ids := make(map[string]bool, len(existing.Containers))
	for _, c := range existing.Containers {
		ids[c.ID] = true
	}
	for _, c := range imported.Containers {
		if !ids[c.ID] {
			existing.Containers = append(existing.Containers, c)
			ids[c.ID] = true
		}
	}
	return existing, nil
}
