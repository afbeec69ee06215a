package fyneapp

import (
	"fyne.io/fyne/v2"

	"vide/internal/logger"
	"vide/internal/style"
	"vide/internal/toolkit"
)

// Display owns the style cascade installed as the application theme.
type Display struct {
	name     string
	settings fyne.Settings
	cascade  *style.Cascade
	log      logger.Logger
}

var _ toolkit.Display = (*Display)(nil)

func newDisplay(name string, settings fyne.Settings, log logger.Logger) *Display {
	return &Display{
		name:     name,
		settings: settings,
		cascade:  style.NewCascade(settings.Theme()),
		log:      log,
	}
}

func (d *Display) Name() string {
	return d.name
}

// AddProvider attaches src and reinstalls the cascade so open windows
// pick up the change.
func (d *Display) AddProvider(src style.Source, priority style.Priority) {
	d.cascade.Add(src, priority)
	d.settings.SetTheme(d.cascade)

	d.log.Debug("Display", "style provider registered", map[string]interface{}{
		"display":   d.name,
		"priority":  priority.String(),
		"providers": d.cascade.Len(),
	})
}

func (d *Display) Cascade() *style.Cascade {
	return d.cascade
}
