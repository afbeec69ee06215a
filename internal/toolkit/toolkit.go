// Package toolkit defines the application lifecycle contract between the
// bootstrap and the GUI backend.
package toolkit

import (
	"errors"

	"fyne.io/fyne/v2"

	"vide/internal/style"
)

// ErrNoDisplay is returned when there is no screen to attach windows or
// styles to.
var ErrNoDisplay = errors.New("could not connect to a display")

// Application is the handle passed to lifecycle callbacks.
type Application interface {
	Display() (Display, error)
	NewWindow(title string) fyne.Window
	Quit(code int)
}

// Display is the output target that style sources are registered on.
type Display interface {
	Name() string
	AddProvider(src style.Source, priority style.Priority)
}

// Lifecycle receives application events. OnStartup runs once before the
// first OnActivate; OnActivate runs for every activation event.
type Lifecycle interface {
	OnStartup(app Application) error
	OnActivate(app Application) error
}
