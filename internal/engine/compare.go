package engine

import (
	"fmt"

	"github.com/piwi3910/LoadPack/internal/model"
)

// ComparisonScenario defines a named container and settings pair to compare.
type ComparisonScenario struct {
	Name      string             `json:"name"`
	Container model.Container    `json:"container"`
	Settings  model.PackSettings `json:"settings"`
}

// ComparisonResult holds the packing result and computed statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario `json:"scenario"`
	Result        model.PackResult   `json:"result"`
	PlacedCount   int                `json:"placed_count"`
	UnplacedCount int                `json:"unplaced_count"`
	WastedArea    float64            `json:"wasted_area"`
	Efficiency    float64            `json:"efficiency"`
}

// CompareScenarios packs the same items under each scenario and returns the
// results in scenario order. Each scenario gets its own ordered copy of the
// items, so scenarios do not affect each other.
func CompareScenarios(scenarios []ComparisonScenario, items []model.Item, opts ...Option) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := Run(scenario.Settings, items, scenario.Container, opts...)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}

		placed := result.PlacedCount()
		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Result:        result,
			PlacedCount:   placed,
			UnplacedCount: len(result.Placements) - placed,
			WastedArea:    result.WastedArea(),
			Efficiency:    result.Efficiency(),
		})
	}

	return results, nil
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current container and settings, varying one parameter at a time.
func BuildDefaultScenarios(c model.Container, base model.PackSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:      "Current Settings",
			Container: c,
			Settings:  base,
		},
	}

	// Flip rotation
	alt := base
	alt.AllowRotation = !base.AllowRotation
	name := "Rotation Disabled"
	if alt.AllowRotation {
		name = "Rotation Enabled"
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:      name,
		Container: c,
		Settings:  alt,
	})

	// Load the container from the other side
	if c.Width != c.Height {
		t := c.Transposed()
		scenarios = append(scenarios, ComparisonScenario{
			Name:      fmt.Sprintf("Transposed %gx%g", t.Width, t.Height),
			Container: t,
			Settings:  base,
		})
	}

	return scenarios
}

// Best returns the result with the least wasted area. Ties keep the earlier
// scenario. ok is false when results is empty.
func Best(results []ComparisonResult) (best ComparisonResult, ok bool) {
	for i, r := range results {
		if i == 0 || r.WastedArea < best.WastedArea {
			best = r
			ok = true
		}
	}
	return best, ok
}
