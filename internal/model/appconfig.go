package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new runs
	DefaultContainerWidth  float64      `json:"default_container_width"`
	DefaultContainerHeight float64      `json:"default_container_height"`
	DefaultContainer       string       `json:"default_container"` // Inventory preset name; overrides width/height when set
	AllowRotation          bool         `json:"allow_rotation"`
	Random                 RandomConfig `json:"random"`

	// Application preferences
	OutputDir       string   `json:"output_dir"`
	RecentLoadFiles []string `json:"recent_load_files"`
	Theme           string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the demo defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultContainerWidth:  DefaultContainerWidth,
		DefaultContainerHeight: DefaultContainerHeight,
		AllowRotation:          true,
		Random:                 DefaultRandomConfig(),
		OutputDir:              ".",
		RecentLoadFiles:        []string{},
		Theme:                  "system",
	}
}

// Container returns the configured default container.
func (c AppConfig) Container() Container {
	return NewContainer(c.DefaultContainerWidth, c.DefaultContainerHeight)
}

// ApplyToSettings copies the packer defaults into a PackSettings struct.
func (c AppConfig) ApplyToSettings(s *PackSettings) {
	s.AllowRotation = c.AllowRotation
}

const maxRecentFiles = 10

// AddRecentLoadFile moves path to the front of the recent list, dropping
// duplicates and trimming the list to its maximum length.
func (c *AppConfig) AddRecentLoadFile(path string) {
	recent := []string{path}
	for _, p := range c.RecentLoadFiles {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentFiles {
		recent = recent[:maxRecentFiles]
	}
	c.RecentLoadFiles = recent
}
