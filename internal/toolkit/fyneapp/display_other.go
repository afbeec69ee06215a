//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package fyneapp

import "runtime"

// Native platforms always have their window server available.
func resolveDisplay(func(string) (string, bool)) (string, error) {
	return runtime.GOOS, nil
}
