package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/LoadPack/internal/model"
	"github.com/piwi3910/LoadPack/internal/project"
)

// showContainerInventoryDialog lists the container presets with add, edit,
// delete, import and export actions.
func (a *App) showContainerInventoryDialog() {
	list := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		list.RemoveAll()
		a.presetSelect.SetOptions(a.inventory.ContainerNames())

		if len(a.inventory.Containers) == 0 {
			list.Add(widget.NewLabel("No container presets defined."))
			return
		}

		bold := fyne.TextStyle{Bold: true}
		list.Add(container.NewGridWithColumns(5,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("Width", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("Height", fyne.TextAlignLeading, bold),
			widget.NewLabel(""),
			widget.NewLabel(""),
		))
		list.Add(widget.NewSeparator())

		for i := range a.inventory.Containers {
			idx := i
			c := a.inventory.Containers[idx]
			list.Add(container.NewGridWithColumns(5,
				widget.NewLabel(c.Name),
				widget.NewLabel(fmt.Sprintf("%g", c.Width)),
				widget.NewLabel(fmt.Sprintf("%g", c.Height)),
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					a.showContainerPresetDialog(idx, refreshList)
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.inventory.Containers = append(a.inventory.Containers[:idx], a.inventory.Containers[idx+1:]...)
					a.saveInventory()
					refreshList()
				}),
			))
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Add Preset", theme.ContentAddIcon(), func() {
		a.showContainerPresetDialog(-1, refreshList)
	})
	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		a.importInventory(refreshList)
	})
	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), a.exportInventory)

	content := container.NewBorder(
		container.NewHBox(addBtn, layout.NewSpacer(), importBtn, exportBtn),
		nil, nil, nil,
		container.NewVScroll(list),
	)

	d := dialog.NewCustom("Container Presets", "Close", content, a.window)
	d.Resize(fyne.NewSize(600, 450))
	d.Show()
}

// showContainerPresetDialog adds a preset (idx < 0) or edits an existing one.
func (a *App) showContainerPresetDialog(idx int, onDone func()) {
	preset := model.ContainerPreset{Name: "New Container", Width: a.project.Container.Width, Height: a.project.Container.Height}
	title := "Add Container Preset"
	if idx >= 0 {
		preset = a.inventory.Containers[idx]
		title = "Edit Container Preset"
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(preset.Name)
	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%g", preset.Width))
	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%g", preset.Height))

	form := dialog.NewForm(title, "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width", widthEntry),
			widget.NewFormItem("Height", heightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			if err := model.NewContainer(w, h).Validate(); err != nil {
				dialog.ShowError(err, a.window)
				return
			}

			if idx >= 0 {
				a.inventory.Containers[idx].Name = nameEntry.Text
				a.inventory.Containers[idx].Width = w
				a.inventory.Containers[idx].Height = h
			} else {
				a.inventory.Containers = append(a.inventory.Containers, model.NewContainerPreset(nameEntry.Text, w, h))
			}
			a.saveInventory()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 300))
	form.Show()
}

func (a *App) importInventory(onDone func()) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		merged, err := project.ImportInventory(reader.URI().Path(), a.inventory)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.inventory = merged
		a.saveInventory()
		onDone()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Inventory now contains %d container presets.", len(a.inventory.Containers)),
			a.window)
	}, a.window)
}

func (a *App) exportInventory() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := project.SaveInventory(path, a.inventory); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete", fmt.Sprintf("Inventory exported to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName("containers.json")
	d.Show()
}

// saveInventory persists the current inventory to disk.
func (a *App) saveInventory() {
	if a.inventoryPath == "" {
		return
	}
	if err := project.SaveInventory(a.inventoryPath, a.inventory); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save inventory: %w", err), a.window)
	}
}
