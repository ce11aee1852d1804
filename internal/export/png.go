package export

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/piwi3910/LoadPack/internal/model"
)

// DefaultPNGScale is the number of pixels per container unit.
const DefaultPNGScale = 4.0

const pngMargin = 20.0

// ExportPNG renders the layout as a PNG image: a light green rectangle with
// a blue edge per placed item, labeled with its display label.
func ExportPNG(path string, result model.PackResult, scale float64) error {
	dc, err := renderPNG(result, scale)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	return nil
}

// WritePNG renders the layout like ExportPNG and encodes it to w.
func WritePNG(w io.Writer, result model.PackResult, scale float64) error {
	dc, err := renderPNG(result, scale)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func renderPNG(result model.PackResult, scale float64) (*gg.Context, error) {
	c := result.Container
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = DefaultPNGScale
	}

	width := int(math.Ceil(c.Width*scale + 2*pngMargin))
	height := int(math.Ceil(c.Height*scale + 3*pngMargin))
	dc := gg.NewContext(width, height)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Title
	dc.SetRGB(0, 0, 0)
	title := fmt.Sprintf("%s - wasted area %g", c.Label, result.WastedArea())
	dc.DrawStringAnchored(title, float64(width)/2, pngMargin/2, 0.5, 0.5)

	originX := pngMargin
	originY := 1.5 * pngMargin

	for _, p := range placedOnly(result) {
		x, y, w, h := topLeftRect(c, p)
		px := originX + x*scale
		py := originY + y*scale
		pw := w * scale
		ph := h * scale

		dc.DrawRectangle(px, py, pw, ph)
		dc.SetRGB255(144, 238, 144) // light green
		dc.FillPreserve()
		dc.SetRGB(0, 0, 1)
		dc.SetLineWidth(1)
		dc.Stroke()

		label := p.DisplayLabel()
		if tw, th := dc.MeasureString(label); tw < pw-2 && th < ph-2 {
			dc.SetRGB(0, 0, 0)
			dc.DrawStringAnchored(label, px+pw/2, py+ph/2, 0.5, 0.5)
		}
	}

	// Container outline
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	dc.DrawRectangle(originX, originY, c.Width*scale, c.Height*scale)
	dc.Stroke()

	return dc, nil
}
