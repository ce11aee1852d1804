// Package widgets provides the custom Fyne widgets used by the LoadPack
// viewer.
package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/LoadPack/internal/model"
)

// Item colors, cycled for visual distinction.
var itemColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// ContainerCanvas draws a packing result: the container outline with every
// placed item, origin at the bottom-left corner.
type ContainerCanvas struct {
	widget.BaseWidget
	result    model.PackResult
	maxWidth  float32
	maxHeight float32
}

func NewContainerCanvas(result model.PackResult, maxW, maxH float32) *ContainerCanvas {
	cc := &ContainerCanvas{
		result:    result,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	cc.ExtendBaseWidget(cc)
	return cc
}

func (cc *ContainerCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newContainerCanvasRenderer(cc)
}

// fitScale returns the largest scale that fits the container in the bounds.
func fitScale(c model.Container, maxW, maxH float32) float32 {
	if c.Width <= 0 || c.Height <= 0 {
		return 0
	}
	scale := maxW / float32(c.Width)
	if s := maxH / float32(c.Height); s < scale {
		scale = s
	}
	return scale
}

// screenRect converts a placement to screen coordinates, flipping y so the
// container's bottom edge is drawn at the bottom.
func screenRect(c model.Container, p model.Placement, scale float32) (x, y, w, h float32) {
	w = float32(p.PlacedWidth()) * scale
	h = float32(p.PlacedHeight()) * scale
	x = float32(p.Position.X) * scale
	y = float32(c.Height-p.Position.Y-p.PlacedHeight()) * scale
	return x, y, w, h
}

type containerCanvasRenderer struct {
	cc      *ContainerCanvas
	objects []fyne.CanvasObject
}

func newContainerCanvasRenderer(cc *ContainerCanvas) *containerCanvasRenderer {
	r := &containerCanvasRenderer{cc: cc}
	r.rebuild()
	return r
}

func (r *containerCanvasRenderer) rebuild() {
	r.objects = nil

	c := r.cc.result.Container
	scale := fitScale(c, r.cc.maxWidth, r.cc.maxHeight)
	canvasW := float32(c.Width) * scale
	canvasH := float32(c.Height) * scale

	bg := canvas.NewRectangle(color.NRGBA{R: 240, G: 240, B: 240, A: 255})
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, bg)

	for i, p := range r.cc.result.Placements {
		if !p.Placed() {
			continue
		}
		px, py, pw, ph := screenRect(c, p, scale)

		rect := canvas.NewRectangle(itemColors[i%len(itemColors)])
		rect.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		rect.StrokeWidth = 1
		rect.Resize(fyne.NewSize(pw, ph))
		rect.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, rect)

		// Label only if big enough
		if pw > 30 && ph > 16 {
			label := canvas.NewText(p.DisplayLabel(), color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(px+3, py+2))
			r.objects = append(r.objects, label)
		}
	}

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, border)
}

func (r *containerCanvasRenderer) Layout(size fyne.Size)        {}
func (r *containerCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *containerCanvasRenderer) Destroy()                     {}
func (r *containerCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *containerCanvasRenderer) MinSize() fyne.Size {
	c := r.cc.result.Container
	scale := fitScale(c, r.cc.maxWidth, r.cc.maxHeight)
	return fyne.NewSize(float32(c.Width)*scale, float32(c.Height)*scale)
}

// RenderResult creates a scrollable view of a packing result: a header,
// the drawn container, the unplaced items and the wasted area.
func RenderResult(result *model.PackResult) fyne.CanvasObject {
	if result == nil {
		return widget.NewLabel("No results yet. Add loads, then click Pack.")
	}

	c := result.Container
	header := widget.NewLabel(fmt.Sprintf(
		"%s (%g × %g): %d of %d items placed, %.1f%% efficiency",
		c.Label, c.Width, c.Height, result.PlacedCount(), len(result.Placements), result.Efficiency(),
	))
	header.TextStyle = fyne.TextStyle{Bold: true}

	items := []fyne.CanvasObject{header, NewContainerCanvas(*result, 700, 450), widget.NewSeparator()}

	if unplaced := result.Unplaced(); len(unplaced) > 0 {
		warning := widget.NewLabel(fmt.Sprintf("WARNING: %d items did not fit:", len(unplaced)))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
		for _, it := range unplaced {
			items = append(items, widget.NewLabel(fmt.Sprintf("  %s (%g × %g)", it.Label, it.Width, it.Height)))
		}
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Used area: %g | Total wasted area: %g", result.UsedArea(), result.WastedArea(),
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}
