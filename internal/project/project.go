package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/LoadPack/internal/model"
)

// FileExtension is the extension of saved projects.
const FileExtension = ".loadpack"

// Save writes the project, including its last result, as JSON.
func Save(path string, p model.Project) error {
	if err := writeJSON(path, p); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// Load reads a project saved by Save.
func Load(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project: %w", err)
	}
	p := model.NewProject()
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project %s: %w", path, err)
	}
	if err := p.Container.Validate(); err != nil {
		return model.Project{}, fmt.Errorf("project %s: %w", path, err)
	}
	return p, nil
}
