// Package generator builds item sets for packing runs, either random
// rectangles or expansions of a declarative load list.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/piwi3910/LoadPack/internal/model"
)

// RandomPrefix labels randomly generated items.
const RandomPrefix = "R"

// Random generates cfg.Count items with integer sides drawn uniformly from
// [cfg.MinSide, cfg.MaxSide]. When rng is nil a source seeded with cfg.Seed
// is used, so the same config always yields the same dimensions.
func Random(rng *rand.Rand, cfg model.RandomConfig) ([]model.Item, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	span := cfg.MaxSide - cfg.MinSide + 1
	items := make([]model.Item, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		w := cfg.MinSide + rng.Intn(span)
		h := cfg.MinSide + rng.Intn(span)
		items = append(items, model.NewItem(fmt.Sprintf("%s%d", RandomPrefix, i+1), float64(w), float64(h)))
	}
	return items, nil
}

// FromLoads expands every load line into Count identical items. Labels are
// the line prefix followed by a running index shared across all lines,
// starting at 1.
func FromLoads(loads model.LoadList) ([]model.Item, error) {
	if err := loads.Validate(); err != nil {
		return nil, err
	}

	items := make([]model.Item, 0, loads.TotalCount())
	idx := 1
	for _, ls := range loads {
		for i := 0; i < ls.Count; i++ {
			it := model.NewItem(fmt.Sprintf("%s%d", ls.LabelPrefix(), idx), ls.Width, ls.Height)
			it.Fixed = ls.Fixed
			items = append(items, it)
			idx++
		}
	}
	return items, nil
}

// DefaultLoads expands the demo load plan.
func DefaultLoads() []model.Item {
	items, _ := FromLoads(model.DefaultLoads())
	return items
}
