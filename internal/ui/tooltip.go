package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newIconButtonWithTooltip creates an icon-only button with a hover tooltip.
func newIconButtonWithTooltip(icon fyne.Resource, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon("", icon, tapped)
	btn.SetToolTip(tooltip)
	return btn
}

// historyButtons are the toolbar undo/redo buttons. Their tooltips name the
// step they would revert or reapply.
type historyButtons struct {
	undo *ttwidget.Button
	redo *ttwidget.Button
}

func newHistoryButtons(undo, redo func()) *historyButtons {
	return &historyButtons{
		undo: newIconButtonWithTooltip(theme.ContentUndoIcon(), "Nothing to undo", undo),
		redo: newIconButtonWithTooltip(theme.ContentRedoIcon(), "Nothing to redo", redo),
	}
}

func (b *historyButtons) refresh(h *History) {
	setHistoryButton(b.undo, "Undo", h.UndoLabel(), h.CanUndo())
	setHistoryButton(b.redo, "Redo", h.RedoLabel(), h.CanRedo())
}

func setHistoryButton(btn *ttwidget.Button, verb, step string, enabled bool) {
	switch {
	case !enabled:
		btn.SetToolTip("Nothing to " + strings.ToLower(verb))
		btn.Disable()
		return
	case step == "":
		btn.SetToolTip(verb)
	default:
		btn.SetToolTip(verb + ": " + step)
	}
	btn.Enable()
}
