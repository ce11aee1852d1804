// LoadPack: rectangular load planner
//
// A cross-platform desktop viewer for building load lists, packing them
// into a container and exporting the resulting layout.
//
// Build:
//   go build -o loadpack-gui ./cmd/loadpack-gui
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/LoadPack/internal/ui"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "loadpack-gui"})

	application := app.NewWithID("com.piwi3910.loadpack")
	window := application.NewWindow("LoadPack - Rectangular Load Planner")

	appUI := ui.NewApp(application, window, logger)
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
