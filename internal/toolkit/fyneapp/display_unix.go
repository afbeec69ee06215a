//go:build linux || freebsd || openbsd || netbsd || dragonfly

package fyneapp

import (
	"fmt"

	"vide/internal/toolkit"
)

// resolveDisplay finds the windowing system connection. Wayland is
// preferred over X11, matching fyne's own driver selection.
func resolveDisplay(lookupEnv func(string) (string, bool)) (string, error) {
	for _, key := range []string{"WAYLAND_DISPLAY", "DISPLAY"} {
		if v, ok := lookupEnv(key); ok && v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: neither WAYLAND_DISPLAY nor DISPLAY is set", toolkit.ErrNoDisplay)
}
