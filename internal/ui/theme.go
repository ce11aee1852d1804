package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// LoadPackTheme wraps the default Fyne theme with compact sizing and a
// fixed light/dark variant taken from the app config.
type LoadPackTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	system  bool
}

// NewLoadPackTheme creates a theme for the config value "light", "dark" or
// "system".
func NewLoadPackTheme(name string) *LoadPackTheme {
	t := &LoadPackTheme{base: theme.DefaultTheme()}
	t.SetVariant(name)
	return t
}

// SetVariant updates the theme variant from its config name.
func (t *LoadPackTheme) SetVariant(name string) {
	t.system = false
	switch name {
	case "light":
		t.variant = theme.VariantLight
	case "dark":
		t.variant = theme.VariantDark
	default:
		t.system = true
	}
}

func (t *LoadPackTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.system {
		return t.base.Color(name, variant)
	}
	return t.base.Color(name, t.variant)
}

func (t *LoadPackTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *LoadPackTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense layout.
func (t *LoadPackTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return t.base.Size(name)
	}
}
