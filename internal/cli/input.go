package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadPack/internal/generator"
	"github.com/piwi3910/LoadPack/internal/model"
	"github.com/piwi3910/LoadPack/internal/project"
)

// inputOpts selects the items and the container for a packing run.
// Precedence for items: --loads, then --random, then the demo loads.
// Precedence for the container: --container, then --width/--height, then
// the config defaults.
type inputOpts struct {
	loadsPath string
	random    int
	seed      int64
	minSide   int
	maxSide   int

	container string
	width     float64
	height    float64
	noRotate  bool
}

func (o *inputOpts) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.loadsPath, "loads", "l", "", "load list file (.yaml, .toml, .json, .csv, .xlsx, .dxf)")
	f.IntVar(&o.random, "random", 0, "generate N random items instead of reading a load list")
	f.Int64Var(&o.seed, "seed", model.DefaultSeed, "random generator seed")
	f.IntVar(&o.minSide, "min-side", model.DefaultMinSide, "smallest random item side")
	f.IntVar(&o.maxSide, "max-side", model.DefaultMaxSide, "largest random item side")
	f.StringVarP(&o.container, "container", "c", "", "container preset name or ID from the inventory")
	f.Float64Var(&o.width, "width", 0, "container width (overrides the config default)")
	f.Float64Var(&o.height, "height", 0, "container height (overrides the config default)")
	f.BoolVar(&o.noRotate, "no-rotate", false, "never rotate items")
}

// items returns the items to pack along with any import warnings.
func (o *inputOpts) items(cmd *cobra.Command, cfg model.AppConfig, logger *log.Logger) ([]model.Item, error) {
	if o.loadsPath != "" {
		loads, warnings, err := project.LoadLoadList(o.loadsPath)
		if err != nil {
			return nil, err
		}
		for _, w := range warnings {
			logger.Warn(w, "file", o.loadsPath)
		}
		logger.Debug("loaded load list", "file", o.loadsPath, "lines", len(loads), "items", loads.TotalCount())
		return generator.FromLoads(loads)
	}

	if o.random > 0 {
		rc := cfg.Random
		rc.Count = o.random
		if cmd.Flags().Changed("seed") {
			rc.Seed = o.seed
		}
		if cmd.Flags().Changed("min-side") {
			rc.MinSide = o.minSide
		}
		if cmd.Flags().Changed("max-side") {
			rc.MaxSide = o.maxSide
		}
		logger.Debug("generating random items", "count", rc.Count, "min", rc.MinSide, "max", rc.MaxSide, "seed", rc.Seed)
		return generator.Random(nil, rc)
	}

	return generator.DefaultLoads(), nil
}

func (o *inputOpts) resolveContainer(cfg model.AppConfig, inventory func() (model.Inventory, error)) (model.Container, error) {
	preset := o.container
	if preset == "" && o.width == 0 && o.height == 0 {
		preset = cfg.DefaultContainer
	}

	if preset != "" {
		inv, err := inventory()
		if err != nil {
			return model.Container{}, fmt.Errorf("failed to load container inventory: %w", err)
		}
		p := inv.FindContainerByName(preset)
		if p == nil {
			p = inv.FindContainerByID(preset)
		}
		if p == nil {
			return model.Container{}, fmt.Errorf("%w: unknown container preset %q", model.ErrInvalidInput, preset)
		}
		return p.ToContainer(), nil
	}

	w, h := cfg.DefaultContainerWidth, cfg.DefaultContainerHeight
	if o.width != 0 {
		w = o.width
	}
	if o.height != 0 {
		h = o.height
	}
	c := model.NewContainer(w, h)
	return c, c.Validate()
}

func (o *inputOpts) settings(cfg model.AppConfig) model.PackSettings {
	s := model.DefaultPackSettings()
	cfg.ApplyToSettings(&s)
	if o.noRotate {
		s.AllowRotation = false
	}
	return s
}
