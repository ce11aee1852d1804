package model

// Default container and generator values, matching the demo load plan.
const (
	DefaultContainerWidth  = 200.0
	DefaultContainerHeight = 100.0
	DefaultRandomCount     = 100
	DefaultMinSide         = 10
	DefaultMaxSide         = 30
	DefaultSeed            = 42
	DefaultLoadPrefix      = "L"

	// MaxItems bounds the number of items one run may expand to.
	MaxItems = 10000
)

// LoadSpec is one line of a load list: Count identical items of the given size.
type LoadSpec struct {
	Prefix string  `json:"prefix,omitempty" yaml:"prefix,omitempty" toml:"prefix,omitempty"`
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
	Count  int     `json:"count" yaml:"count" toml:"count"`
	Fixed  bool    `json:"fixed,omitempty" yaml:"fixed,omitempty" toml:"fixed,omitempty"`
}

// LabelPrefix returns the prefix used for generated item labels.
func (ls LoadSpec) LabelPrefix() string {
	if ls.Prefix == "" {
		return DefaultLoadPrefix
	}
	return ls.Prefix
}

func (ls LoadSpec) Validate() error {
	if !positive(ls.Width) || !positive(ls.Height) {
		return invalidf("load %q: width and height must be positive and finite, got %gx%g", ls.LabelPrefix(), ls.Width, ls.Height)
	}
	if ls.Count <= 0 {
		return invalidf("load %q: count must be positive, got %d", ls.LabelPrefix(), ls.Count)
	}
	if ls.Count > MaxItems {
		return invalidf("load %q: count %d exceeds the limit of %d items", ls.LabelPrefix(), ls.Count, MaxItems)
	}
	return nil
}

// LoadList is an ordered set of load lines.
type LoadList []LoadSpec

// Validate checks every line and bounds the expanded item count by MaxItems.
func (ll LoadList) Validate() error {
	total := 0
	for _, ls := range ll {
		if err := ls.Validate(); err != nil {
			return err
		}
		total += ls.Count
		if total > MaxItems {
			return invalidf("load list expands to more than %d items", MaxItems)
		}
	}
	return nil
}

// TotalCount returns the number of items the list expands to.
func (ll LoadList) TotalCount() int {
	n := 0
	for _, ls := range ll {
		n += ls.Count
	}
	return n
}

// TotalArea returns the combined area of every item in the list.
func (ll LoadList) TotalArea() float64 {
	var total float64
	for _, ls := range ll {
		total += ls.Width * ls.Height * float64(ls.Count)
	}
	return total
}

// DefaultLoads returns the demo load plan: three load types of twenty each.
func DefaultLoads() LoadList {
	return LoadList{
		{Prefix: "A", Width: 30, Height: 20, Count: 20},
		{Prefix: "B", Width: 15, Height: 25, Count: 20},
		{Prefix: "C", Width: 20, Height: 10, Count: 20},
	}
}

// RandomConfig controls random item generation.
type RandomConfig struct {
	Count   int   `json:"count"`
	MinSide int   `json:"min_side"`
	MaxSide int   `json:"max_side"`
	Seed    int64 `json:"seed"`
}

func DefaultRandomConfig() RandomConfig {
	return RandomConfig{
		Count:   DefaultRandomCount,
		MinSide: DefaultMinSide,
		MaxSide: DefaultMaxSide,
		Seed:    DefaultSeed,
	}
}

func (rc RandomConfig) Validate() error {
	if rc.Count < 0 {
		return invalidf("random count must not be negative, got %d", rc.Count)
	}
	if rc.Count > MaxItems {
		return invalidf("random count %d exceeds the limit of %d items", rc.Count, MaxItems)
	}
	if rc.MinSide <= 0 || rc.MaxSide <= 0 {
		return invalidf("random sides must be positive, got %d..%d", rc.MinSide, rc.MaxSide)
	}
	if rc.MinSide > rc.MaxSide {
		return invalidf("random min side %d exceeds max side %d", rc.MinSide, rc.MaxSide)
	}
	return nil
}
