package window

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"vide/internal/logger"
	"vide/internal/toolkit"
)

const (
	Title         = "Vide"
	DefaultWidth  = 960
	DefaultHeight = 600
)

// Builder opens a new main window for every activation. The first window
// it builds is the master window; closing it ends the application.
type Builder struct {
	log logger.Logger

	mu      sync.Mutex
	windows []fyne.Window
}

func NewBuilder(log logger.Logger) *Builder {
	if log == nil {
		log = logger.Nop{}
	}
	return &Builder{log: log}
}

func (b *Builder) Build(app toolkit.Application) error {
	w := app.NewWindow(Title)
	w.Resize(fyne.NewSize(DefaultWidth, DefaultHeight))
	w.SetContent(content())

	b.mu.Lock()
	if len(b.windows) == 0 {
		w.SetMaster()
	}
	b.windows = append(b.windows, w)
	count := len(b.windows)
	b.mu.Unlock()

	w.SetOnClosed(func() { b.forget(w) })
	w.Show()

	b.log.Info("Window", "main window opened", map[string]interface{}{
		"open_windows": count,
	})
	return nil
}

func (b *Builder) forget(w fyne.Window) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, open := range b.windows {
		if open == w {
			b.windows = append(b.windows[:i], b.windows[i+1:]...)
			return
		}
	}
}

// Windows returns the windows built so far that are still open.
func (b *Builder) Windows() []fyne.Window {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]fyne.Window, len(b.windows))
	copy(out, b.windows)
	return out
}

func content() fyne.CanvasObject {
	heading := widget.NewLabelWithStyle(Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	hint := widget.NewLabelWithStyle("Open a project to start editing", fyne.TextAlignCenter, fyne.TextStyle{})
	return container.NewCenter(container.NewVBox(heading, hint))
}
