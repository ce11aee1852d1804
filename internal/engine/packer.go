package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/LoadPack/internal/model"
)

// Packer runs the bottom-left placement heuristic against a single container.
// A Packer holds no per-run state and may be reused.
type Packer struct {
	Settings model.PackSettings
	logger   *log.Logger
}

// Option configures a Packer.
type Option func(*Packer)

// WithLogger sets the logger that receives per-item placement decisions at
// debug level.
func WithLogger(l *log.Logger) Option {
	return func(p *Packer) {
		if l != nil {
			p.logger = l
		}
	}
}

func New(settings model.PackSettings, opts ...Option) *Packer {
	p := &Packer{
		Settings: settings,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pack places items into the container in the order given. Every item gets
// exactly one Placement in the result, in input order; items that fit
// nowhere get a nil Position. Items should normally be sequenced with Order
// first, see Run.
func (p *Packer) Pack(items []model.Item, c model.Container) (model.PackResult, error) {
	if err := c.Validate(); err != nil {
		return model.PackResult{}, err
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return model.PackResult{}, err
		}
	}

	r := newRun(c, p.Settings.AllowRotation)
	result := model.PackResult{
		Container:  c,
		Placements: make([]model.Placement, 0, len(items)),
	}
	for _, it := range items {
		pl := r.place(it)
		if pl.Placed() {
			p.logger.Debug("placed", "item", it.Label, "x", pl.Position.X, "y", pl.Position.Y, "rotated", pl.Rotated())
		} else {
			p.logger.Debug("unplaced", "item", it.Label, "w", it.Width, "h", it.Height)
		}
		result.Placements = append(result.Placements, pl)
	}

	p.logger.Info("packed",
		"container", c.Label,
		"placed", result.PlacedCount(),
		"unplaced", len(items)-result.PlacedCount(),
		"wasted", result.WastedArea(),
	)
	return result, nil
}

// Run orders items by area and packs them.
func Run(settings model.PackSettings, items []model.Item, c model.Container, opts ...Option) (model.PackResult, error) {
	return New(settings, opts...).Pack(Order(items), c)
}

// run is the mutable state of one packing pass: the committed rectangles and
// the anchor frontier they produced.
type run struct {
	container     model.Container
	allowRotation bool
	placed        []rect
	frontier      frontier
}

func newRun(c model.Container, allowRotation bool) *run {
	return &run{
		container:     c,
		allowRotation: allowRotation,
		frontier:      newFrontier(),
	}
}

// orientations returns the orientations to try for an item, original first.
// Square items and items marked Fixed only get the original orientation.
func (r *run) orientations(it model.Item) []model.Orientation {
	if r.allowRotation && !it.Fixed && it.Width != it.Height {
		return []model.Orientation{model.Unrotated, model.Rotated}
	}
	return []model.Orientation{model.Unrotated}
}

// place scans the frontier snapshot for the first anchor where the item fits,
// trying each orientation at an anchor before moving to the next one. The
// trials read the run state only; it changes on commit.
func (r *run) place(it model.Item) model.Placement {
	for _, a := range r.frontier.scanOrder(r.container) {
		for _, o := range r.orientations(it) {
			cand := candidate(it, a, o)
			if r.fits(cand) {
				r.commit(cand)
				return model.Placement{
					Item:     it,
					Position: &model.Position{X: a.X, Y: a.Y, Orientation: o},
				}
			}
		}
	}
	return model.Placement{Item: it}
}

func candidate(it model.Item, a Anchor, o model.Orientation) rect {
	if o == model.Rotated {
		return rect{x: a.X, y: a.Y, w: it.Height, h: it.Width}
	}
	return rect{x: a.X, y: a.Y, w: it.Width, h: it.Height}
}

func (r *run) fits(cand rect) bool {
	if !cand.within(r.container) {
		return false
	}
	for _, pr := range r.placed {
		if cand.overlaps(pr) {
			return false
		}
	}
	return true
}

func (r *run) commit(cand rect) {
	r.placed = append(r.placed, cand)
	r.frontier = r.frontier.extend(cand)
}
