package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DeskTheme tightens the default theme for a small utility window
type DeskTheme struct {
	fyne.Theme
}

// NewDeskTheme creates the application theme
func NewDeskTheme() fyne.Theme {
	return &DeskTheme{Theme: theme.DefaultTheme()}
}

// Color overrides the accent colors
func (t *DeskTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	}
	return t.Theme.Color(name, variant)
}

// Size returns compact paddings
func (t *DeskTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	}
	return t.Theme.Size(name)
}
