package style

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

type target struct {
	color fyne.ThemeColorName
	size  fyne.ThemeSizeName
}

func colorOf(name fyne.ThemeColorName) target { return target{color: name} }
func sizeOf(name fyne.ThemeSizeName) target   { return target{size: name} }

var windowProperties = map[string]target{
	"background-color": colorOf(theme.ColorNameBackground),
	"color":            colorOf(theme.ColorNameForeground),
	"font-size":        sizeOf(theme.SizeNameText),
	"padding":          sizeOf(theme.SizeNamePadding),
}

// selectorProperties maps element selectors and their properties onto
// theme names. Anything not listed here is ignored.
var selectorProperties = map[string]map[string]target{
	"*":      windowProperties,
	"window": windowProperties,
	"button": {
		"background-color": colorOf(theme.ColorNameButton),
		"border-radius":    sizeOf(theme.SizeNameInputRadius),
	},
	"entry": {
		"background-color": colorOf(theme.ColorNameInputBackground),
		"border-color":     colorOf(theme.ColorNameInputBorder),
		"border-radius":    sizeOf(theme.SizeNameInputRadius),
		"border-width":     sizeOf(theme.SizeNameInputBorder),
	},
	"placeholder": {
		"color": colorOf(theme.ColorNamePlaceHolder),
	},
	"link": {
		"color": colorOf(theme.ColorNameHyperlink),
	},
	"scrollbar": {
		"background-color": colorOf(theme.ColorNameScrollBar),
		"width":            sizeOf(theme.SizeNameScrollBar),
	},
	"selection": {
		"background-color": colorOf(theme.ColorNameSelection),
		"border-radius":    sizeOf(theme.SizeNameSelectionRadius),
	},
	"separator": {
		"background-color": colorOf(theme.ColorNameSeparator),
		"width":            sizeOf(theme.SizeNameSeparatorThickness),
	},
	"header": {
		"background-color": colorOf(theme.ColorNameHeaderBackground),
		"font-size":        sizeOf(theme.SizeNameHeadingText),
	},
	"menu": {
		"background-color": colorOf(theme.ColorNameMenuBackground),
	},
	"tooltip": {
		"background-color": colorOf(theme.ColorNameOverlayBackground),
	},
}
