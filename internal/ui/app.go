// Package ui provides the LoadPack desktop viewer: a load list editor with
// undo/redo, container selection, packing and result export.
package ui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/piwi3910/LoadPack/internal/engine"
	"github.com/piwi3910/LoadPack/internal/export"
	"github.com/piwi3910/LoadPack/internal/generator"
	"github.com/piwi3910/LoadPack/internal/model"
	"github.com/piwi3910/LoadPack/internal/project"
	"github.com/piwi3910/LoadPack/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app     fyne.App
	window  fyne.Window
	project model.Project
	history *History
	logger  *log.Logger
	theme   *LoadPackTheme

	config        model.AppConfig
	configPath    string
	inventory     model.Inventory
	inventoryPath string

	tabs        *container.AppTabs
	historyBtns *historyButtons

	// UI references for dynamic updates
	loadsContainer  *fyne.Container
	resultContainer *fyne.Container
	widthEntry      *widget.Entry
	heightEntry     *widget.Entry
	rotationCheck   *widget.Check
	presetSelect    *widget.Select
}

// NewApp creates the viewer, loading the app config and container presets
// from their default locations. Load failures fall back to the defaults.
func NewApp(application fyne.App, window fyne.Window, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	a := &App{
		app:           application,
		window:        window,
		history:       NewHistory(),
		logger:        logger,
		configPath:    project.DefaultConfigPath(),
		inventoryPath: project.DefaultInventoryPath(),
	}

	cfg, err := project.LoadAppConfig(a.configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = model.DefaultAppConfig()
	}
	a.config = cfg

	inv, err := project.LoadInventory(a.inventoryPath)
	if err != nil {
		logger.Warn("using default container presets", "err", err)
		inv = model.DefaultInventory()
	}
	a.inventory = inv

	a.project = a.newProject()
	a.theme = NewLoadPackTheme(cfg.Theme)
	application.Settings().SetTheme(a.theme)
	return a
}

// newProject starts a project with the demo loads and the configured
// default container.
func (a *App) newProject() model.Project {
	p := model.NewProject()
	p.Container = a.config.Container()
	if a.config.DefaultContainer != "" {
		if preset := a.inventory.FindContainerByName(a.config.DefaultContainer); preset != nil {
			p.Container = preset.ToContainer()
		}
	}
	a.config.ApplyToSettings(&p.Settings)
	return p
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recentMenu := fyne.NewMenuItem("Open Recent", nil)
	recentMenu.ChildMenu = a.buildRecentMenu()

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", func() {
			a.project = a.newProject()
			a.history.Clear()
			a.refreshAll()
		}),
		fyne.NewMenuItem("Open Project...", a.loadProject),
		fyne.NewMenuItem("Save Project...", a.saveProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Load List...", a.importLoadList),
		recentMenu,
		fyne.NewMenuItem("Save Load List...", a.saveLoadList),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", func() { a.exportResult("plan.pdf", a.exportPDF) }),
		fyne.NewMenuItem("Export PNG Layout...", func() { a.exportResult("layout.png", a.exportPNG) }),
		fyne.NewMenuItem("Export Excel Workbook...", func() { a.exportResult("plan.xlsx", a.exportXLSX) }),
		fyne.NewMenuItem("Export Labels...", func() { a.exportResult("labels.pdf", a.exportLabels) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import / Export Settings...", a.showImportExportDialog),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.undo),
		fyne.NewMenuItem("Redo", a.redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear All Loads", func() {
			a.pushHistory("Clear Loads")
			a.project.Loads = nil
			a.refreshLoadsList()
		}),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Pack", func() {
			a.runPack()
			a.tabs.SelectIndex(2)
		}),
		fyne.NewMenuItem("Generate Random Loads...", a.showRandomLoadsDialog),
		fyne.NewMenuItem("Container Presets...", a.showContainerInventoryDialog),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) buildRecentMenu() *fyne.Menu {
	var items []*fyne.MenuItem
	for _, path := range a.config.RecentLoadFiles {
		p := path
		items = append(items, fyne.NewMenuItem(filepath.Base(p), func() { a.openLoadList(p) }))
	}
	if len(items) == 0 {
		none := fyne.NewMenuItem("No recent files", nil)
		none.Disabled = true
		items = append(items, none)
	}
	return fyne.NewMenu("", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About LoadPack",
		"LoadPack: rectangular load planner\n\n"+
			"Places loads bottom-left first, rotating them when that\n"+
			"is the only way to fit, and reports the wasted area.",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	loadsTab := container.NewTabItem("Loads", a.buildLoadsPanel())
	containerTab := container.NewTabItem("Container", a.buildContainerPanel())
	resultsTab := container.NewTabItem("Results", a.buildResultsPanel())

	a.tabs = container.NewAppTabs(loadsTab, containerTab, resultsTab)
	a.tabs.SetTabLocation(container.TabLocationTop)
	return a.tabs
}

// ─── Loads Panel ───────────────────────────────────────────

func (a *App) buildLoadsPanel() fyne.CanvasObject {
	a.loadsContainer = container.NewVBox()
	a.historyBtns = newHistoryButtons(a.undo, a.redo)
	a.refreshLoadsList()

	addBtn := widget.NewButtonWithIcon("Add Load", theme.ContentAddIcon(), func() {
		a.showLoadDialog(-1)
	})
	packBtn := widget.NewButtonWithIcon("Pack", theme.MediaPlayIcon(), func() {
		a.runPack()
		a.tabs.SelectIndex(2)
	})
	packBtn.Importance = widget.HighImportance

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Load List", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			a.historyBtns.undo,
			a.historyBtns.redo,
			addBtn,
			packBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.loadsContainer),
	)
}

func (a *App) refreshLoadsList() {
	if a.loadsContainer == nil {
		return
	}
	a.historyBtns.refresh(a.history)
	a.loadsContainer.RemoveAll()

	if len(a.project.Loads) == 0 {
		a.loadsContainer.Add(widget.NewLabel("No loads added yet. Click 'Add Load' or import a load list."))
		return
	}

	bold := fyne.TextStyle{Bold: true}
	a.loadsContainer.Add(container.NewGridWithColumns(7,
		widget.NewLabelWithStyle("Prefix", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Width", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Height", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Count", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Fixed", fyne.TextAlignLeading, bold),
		widget.NewLabel(""),
		widget.NewLabel(""),
	))
	a.loadsContainer.Add(widget.NewSeparator())

	for i := range a.project.Loads {
		idx := i
		ls := a.project.Loads[idx]
		fixed := "no"
		if ls.Fixed {
			fixed = "yes"
		}
		a.loadsContainer.Add(container.NewGridWithColumns(7,
			widget.NewLabel(ls.LabelPrefix()),
			widget.NewLabel(fmt.Sprintf("%g", ls.Width)),
			widget.NewLabel(fmt.Sprintf("%g", ls.Height)),
			widget.NewLabel(fmt.Sprintf("%d", ls.Count)),
			widget.NewLabel(fixed),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showLoadDialog(idx)
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.pushHistory("Remove Load")
				a.project.Loads = append(a.project.Loads[:idx], a.project.Loads[idx+1:]...)
				a.refreshLoadsList()
			}),
		))
	}

	total := widget.NewLabel(fmt.Sprintf("%d items, total area %g", a.project.Loads.TotalCount(), a.project.Loads.TotalArea()))
	total.TextStyle = bold
	a.loadsContainer.Add(widget.NewSeparator())
	a.loadsContainer.Add(total)
}

// showLoadDialog adds a new load line (idx < 0) or edits an existing one.
func (a *App) showLoadDialog(idx int) {
	ls := model.LoadSpec{Prefix: model.DefaultLoadPrefix, Count: 1}
	title, confirm := "Add Load", "Add"
	if idx >= 0 {
		ls = a.project.Loads[idx]
		title, confirm = "Edit Load", "Save"
	}

	prefixEntry := widget.NewEntry()
	prefixEntry.SetText(ls.Prefix)
	widthEntry := widget.NewEntry()
	heightEntry := widget.NewEntry()
	if idx >= 0 {
		widthEntry.SetText(fmt.Sprintf("%g", ls.Width))
		heightEntry.SetText(fmt.Sprintf("%g", ls.Height))
	}
	countEntry := widget.NewEntry()
	countEntry.SetText(strconv.Itoa(ls.Count))
	fixedCheck := widget.NewCheck("Keep original orientation", nil)
	fixedCheck.SetChecked(ls.Fixed)

	form := dialog.NewForm(title, confirm, "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Prefix", prefixEntry),
			widget.NewFormItem("Width", widthEntry),
			widget.NewFormItem("Height", heightEntry),
			widget.NewFormItem("Count", countEntry),
			widget.NewFormItem("", fixedCheck),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			n, _ := strconv.Atoi(countEntry.Text)
			spec := model.LoadSpec{Prefix: strings.TrimSpace(prefixEntry.Text), Width: w, Height: h, Count: n, Fixed: fixedCheck.Checked}
			if err := spec.Validate(); err != nil {
				dialog.ShowError(err, a.window)
				return
			}

			a.pushHistory(title)
			if idx >= 0 {
				a.project.Loads[idx] = spec
			} else {
				a.project.Loads = append(a.project.Loads, spec)
			}
			a.refreshLoadsList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 350))
	form.Show()
}

func (a *App) showRandomLoadsDialog() {
	rc := a.config.Random
	countEntry := widget.NewEntry()
	countEntry.SetText(strconv.Itoa(max(rc.Count, 1)))
	minEntry := widget.NewEntry()
	minEntry.SetText(strconv.Itoa(rc.MinSide))
	maxEntry := widget.NewEntry()
	maxEntry.SetText(strconv.Itoa(rc.MaxSide))
	seedEntry := widget.NewEntry()
	seedEntry.SetText(strconv.FormatInt(rc.Seed, 10))

	form := dialog.NewForm("Generate Random Loads", "Generate", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Items", countEntry),
			widget.NewFormItem("Min side", minEntry),
			widget.NewFormItem("Max side", maxEntry),
			widget.NewFormItem("Seed", seedEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			rc.Count, _ = strconv.Atoi(countEntry.Text)
			rc.MinSide, _ = strconv.Atoi(minEntry.Text)
			rc.MaxSide, _ = strconv.Atoi(maxEntry.Text)
			rc.Seed, _ = strconv.ParseInt(seedEntry.Text, 10, 64)

			items, err := generator.Random(nil, rc)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.pushHistory("Random Loads")
			a.project.Loads = loadsFromItems(items, generator.RandomPrefix)
			a.refreshLoadsList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(350, 300))
	form.Show()
}

// loadsFromItems turns generated items into single-count load lines, so
// expanding them again reproduces the same labels.
func loadsFromItems(items []model.Item, prefix string) model.LoadList {
	loads := make(model.LoadList, len(items))
	for i, it := range items {
		loads[i] = model.LoadSpec{Prefix: prefix, Width: it.Width, Height: it.Height, Count: 1, Fixed: it.Fixed}
	}
	return loads
}

// ─── Container Panel ───────────────────────────────────────

func (a *App) buildContainerPanel() fyne.CanvasObject {
	a.widthEntry = widget.NewEntry()
	a.heightEntry = widget.NewEntry()
	a.widthEntry.OnSubmitted = func(string) { a.applyContainerEntries() }
	a.heightEntry.OnSubmitted = func(string) { a.applyContainerEntries() }

	a.presetSelect = widget.NewSelect(a.inventory.ContainerNames(), func(name string) {
		preset := a.inventory.FindContainerByName(name)
		if preset == nil {
			return
		}
		a.pushHistory("Select Container")
		a.project.Container = preset.ToContainer()
		a.refreshContainerEntries()
	})
	a.presetSelect.PlaceHolder = "Select a preset..."

	a.rotationCheck = widget.NewCheck("Allow 90° rotation", func(b bool) {
		a.project.Settings.AllowRotation = b
	})

	applyBtn := widget.NewButton("Apply Size", a.applyContainerEntries)
	a.refreshContainerEntries()

	return container.NewVScroll(container.NewVBox(
		widget.NewCard("Container", "", container.NewGridWithColumns(2,
			widget.NewLabel("Preset"), a.presetSelect,
			widget.NewLabel("Width"), a.widthEntry,
			widget.NewLabel("Height"), a.heightEntry,
			layout.NewSpacer(), applyBtn,
		)),
		widget.NewCard("Packing", "", a.rotationCheck),
	))
}

func (a *App) applyContainerEntries() {
	w, errW := strconv.ParseFloat(a.widthEntry.Text, 64)
	h, errH := strconv.ParseFloat(a.heightEntry.Text, 64)
	c := model.NewContainer(w, h)
	if errW != nil || errH != nil || c.Validate() != nil {
		dialog.ShowError(fmt.Errorf("container width and height must be > 0"), a.window)
		a.refreshContainerEntries()
		return
	}
	if c.Width == a.project.Container.Width && c.Height == a.project.Container.Height {
		return
	}
	a.pushHistory("Resize Container")
	a.project.Container = c
	a.presetSelect.ClearSelected()
}

func (a *App) refreshContainerEntries() {
	if a.widthEntry == nil {
		return
	}
	a.widthEntry.SetText(fmt.Sprintf("%g", a.project.Container.Width))
	a.heightEntry.SetText(fmt.Sprintf("%g", a.project.Container.Height))
	a.rotationCheck.SetChecked(a.project.Settings.AllowRotation)
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.resultContainer = container.NewStack(widgets.RenderResult(nil))
	return a.resultContainer
}

func (a *App) refreshResults() {
	if a.resultContainer == nil {
		return
	}
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(widgets.RenderResult(a.project.Result))
	a.resultContainer.Refresh()
}

func (a *App) refreshAll() {
	a.refreshLoadsList()
	a.refreshContainerEntries()
	a.refreshResults()
}

// ─── History ───────────────────────────────────────────────

func (a *App) pushHistory(label string) {
	a.history.Push(MakeSnapshot(a.project.Loads, a.project.Container, label))
	if a.historyBtns != nil {
		a.historyBtns.refresh(a.history)
	}
}

func (a *App) restore(s Snapshot) {
	a.project.Loads = s.Loads
	a.project.Container = s.Container
	a.refreshLoadsList()
	a.refreshContainerEntries()
}

func (a *App) undo() {
	if s, ok := a.history.Undo(MakeSnapshot(a.project.Loads, a.project.Container, "")); ok {
		a.restore(s)
	}
}

func (a *App) redo() {
	if s, ok := a.history.Redo(MakeSnapshot(a.project.Loads, a.project.Container, "")); ok {
		a.restore(s)
	}
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) runPack() {
	if len(a.project.Loads) == 0 {
		dialog.ShowInformation("Nothing to pack", "Add at least one load first.", a.window)
		return
	}

	items, err := generator.FromLoads(a.project.Loads)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	result, err := engine.Run(a.project.Settings, items, a.project.Container, engine.WithLogger(a.logger))
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.project.Result = &result
	a.refreshResults()
}

func (a *App) saveProject() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := project.Save(writer.URI().Path(), a.project); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName(a.project.Name + project.FileExtension)
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		proj, err := project.Load(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.project = proj
		a.history.Clear()
		a.refreshAll()
	}, a.window)
	d.Show()
}

func (a *App) importLoadList() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openLoadList(reader.URI().Path())
	}, a.window)
}

// openLoadList appends the loads from a file and records it as recent.
func (a *App) openLoadList(path string) {
	loads, warnings, err := project.LoadLoadList(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	for _, w := range warnings {
		a.logger.Warn(w, "file", path)
	}

	a.pushHistory("Import Loads")
	a.project.Loads = append(a.project.Loads, loads...)
	a.refreshLoadsList()

	a.config.AddRecentLoadFile(path)
	if err := a.saveConfig(); err != nil {
		a.logger.Warn("failed to save recent files", "err", err)
	}
	a.SetupMenus()

	dialog.ShowInformation("Import Complete",
		fmt.Sprintf("Imported %d load lines (%d items).", len(loads), loads.TotalCount()), a.window)
}

func (a *App) saveLoadList() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		if err := project.SaveLoadList(writer.URI().Path(), a.project.Loads); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("loads.yaml")
	d.Show()
}

// ─── Export ────────────────────────────────────────────────

func (a *App) exportResult(defaultName string, write func(path string) error) {
	if a.project.Result == nil {
		dialog.ShowInformation("No results", "Run Pack first before exporting.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := write(path); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

func (a *App) exportPDF(path string) error {
	return export.ExportPDF(path, *a.project.Result, a.project.Settings)
}

func (a *App) exportPNG(path string) error {
	return export.ExportPNG(path, *a.project.Result, export.DefaultPNGScale)
}

func (a *App) exportXLSX(path string) error {
	return export.ExportXLSX(path, *a.project.Result)
}

func (a *App) exportLabels(path string) error {
	return export.ExportLabels(path, *a.project.Result)
}
