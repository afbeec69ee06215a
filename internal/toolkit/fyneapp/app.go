// Package fyneapp runs a toolkit.Lifecycle on top of fyne.
package fyneapp

import (
	"fmt"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"vide/internal/logger"
	"vide/internal/toolkit"
)

type phase int

const (
	phaseIdle phase = iota
	phaseStarted
	phaseRunning
	phaseStopped
)

type Option func(*App)

// WithDisplayResolver replaces the platform display lookup.
func WithDisplayResolver(resolve func() (string, error)) Option {
	return func(a *App) {
		a.resolveDisplay = resolve
	}
}

// App adapts a fyne.App to toolkit.Application.
type App struct {
	fyne           fyne.App
	log            logger.Logger
	resolveDisplay func() (string, error)

	mu        sync.Mutex
	phase     phase
	lifecycle toolkit.Lifecycle
	display   *Display
	exitCode  int
}

var _ toolkit.Application = (*App)(nil)

// New creates the process application with fyne defaults.
func New(log logger.Logger, opts ...Option) *App {
	return NewWithApp(app.New(), log, opts...)
}

func NewWithApp(fyneApp fyne.App, log logger.Logger, opts ...Option) *App {
	if log == nil {
		log = logger.Nop{}
	}
	a := &App{
		fyne: fyneApp,
		log:  log,
		resolveDisplay: func() (string, error) {
			return resolveDisplay(os.LookupEnv)
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Display returns the default display, resolving it on first use.
func (a *App) Display() (toolkit.Display, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.display != nil {
		return a.display, nil
	}

	name, err := a.resolveDisplay()
	if err != nil {
		return nil, err
	}

	a.display = newDisplay(name, a.fyne.Settings(), a.log)
	a.log.Debug("Application", "display connected", map[string]interface{}{
		"display": name,
	})
	return a.display, nil
}

func (a *App) NewWindow(title string) fyne.Window {
	return a.fyne.NewWindow(title)
}

// Run delivers startup and the first activation, then blocks in the fyne
// main loop. The result is the process exit code.
func (a *App) Run(l toolkit.Lifecycle) int {
	a.mu.Lock()
	if a.phase != phaseIdle {
		a.mu.Unlock()
		a.log.Error("Application", fmt.Errorf("application already ran"), nil)
		return 1
	}
	a.lifecycle = l
	a.mu.Unlock()

	if err := l.OnStartup(a); err != nil {
		a.log.Error("Application", fmt.Errorf("startup: %w", err), nil)
		a.setPhase(phaseStopped)
		return 1
	}
	a.setPhase(phaseStarted)

	if err := l.OnActivate(a); err != nil {
		a.log.Error("Application", fmt.Errorf("activate: %w", err), nil)
		a.setPhase(phaseStopped)
		return 1
	}

	a.setPhase(phaseRunning)
	a.log.Debug("Application", "entering main loop", nil)
	a.fyne.Run()
	a.setPhase(phaseStopped)

	code := a.ExitCode()
	a.log.Info("Application", "main loop exited", map[string]interface{}{
		"exit_code": code,
	})
	return code
}

// Activate delivers another activation event. It is ignored unless
// startup has completed. fyne has no single-instance re-launch signal, so
// nothing calls this on its own; embedders deliver repeat activations
// explicitly.
func (a *App) Activate() {
	a.mu.Lock()
	ready := a.phase == phaseStarted || a.phase == phaseRunning
	l := a.lifecycle
	a.mu.Unlock()

	if !ready {
		a.log.Warning("Application", "activation before startup ignored", nil)
		return
	}

	fyne.Do(func() {
		if err := l.OnActivate(a); err != nil {
			a.log.Error("Application", fmt.Errorf("activate: %w", err), nil)
		}
	})
}

// Quit records code as the exit status and stops the main loop.
func (a *App) Quit(code int) {
	a.mu.Lock()
	a.exitCode = code
	a.mu.Unlock()

	fyne.Do(a.fyne.Quit)
}

// Shutdown stops the main loop keeping the recorded exit code.
func (a *App) Shutdown() {
	a.log.Info("Application", "shutdown requested", nil)
	fyne.Do(a.fyne.Quit)
}

func (a *App) ExitCode() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.exitCode
}

func (a *App) setPhase(p phase) {
	a.mu.Lock()
	a.phase = p
	a.mu.Unlock()
}
