// Package bootstrap wires the application lifecycle: install the
// application stylesheet on startup, build the main window on activation.
package bootstrap

import (
	"errors"
	"fmt"
	"sync"

	"vide/internal/logger"
	"vide/internal/style"
	"vide/internal/toolkit"
)

// StylesheetPath is loaded relative to the working directory.
const StylesheetPath = "assets/style.css"

var ErrNotStarted = errors.New("activation before startup")

// WindowBuilder constructs the application's windows. Whether a repeated
// activation opens a new window or reuses one is up to the builder.
type WindowBuilder interface {
	Build(app toolkit.Application) error
}

// Runner drives a Lifecycle and reports the process exit code.
type Runner interface {
	Run(l toolkit.Lifecycle) int
}

type State int

const (
	Uninitialized State = iota
	Started
	Activated
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Started:
		return "started"
	case Activated:
		return "activated"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Option func(*Bootstrap)

func WithLogger(log logger.Logger) Option {
	return func(b *Bootstrap) {
		b.log = log
	}
}

// WithStylesheet overrides StylesheetPath.
func WithStylesheet(path string) Option {
	return func(b *Bootstrap) {
		b.stylesheet = path
	}
}

type Bootstrap struct {
	builder    WindowBuilder
	log        logger.Logger
	stylesheet string

	mu       sync.Mutex
	state    State
	provider *style.Provider
}

var _ toolkit.Lifecycle = (*Bootstrap)(nil)

func New(builder WindowBuilder, opts ...Option) *Bootstrap {
	b := &Bootstrap{
		builder:    builder,
		log:        logger.Nop{},
		stylesheet: StylesheetPath,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// OnStartup registers the application stylesheet on the default display.
// A missing display is fatal. A stylesheet that fails to load is reported
// and the application continues with default styling.
func (b *Bootstrap) OnStartup(app toolkit.Application) error {
	display, err := app.Display()
	if err != nil {
		return fmt.Errorf("default display: %w", err)
	}

	provider := style.NewProvider()
	if err := provider.LoadFromPath(b.stylesheet); err != nil {
		b.log.Warning("Bootstrap", "stylesheet not applied, using default styling", map[string]interface{}{
			"path":  b.stylesheet,
			"error": err.Error(),
		})
	}
	if n := provider.Ignored(); n > 0 {
		b.log.Warning("Bootstrap", "unsupported stylesheet rules ignored", map[string]interface{}{
			"path":    b.stylesheet,
			"ignored": n,
		})
	}
	display.AddProvider(provider, style.PriorityApplication)

	b.mu.Lock()
	b.provider = provider
	b.state = Started
	b.mu.Unlock()

	b.log.Info("Bootstrap", "style provider registered", map[string]interface{}{
		"display":  display.Name(),
		"path":     b.stylesheet,
		"rules":    provider.Len(),
		"priority": style.PriorityApplication.String(),
	})
	return nil
}

// OnActivate hands window construction to the builder.
func (b *Bootstrap) OnActivate(app toolkit.Application) error {
	b.mu.Lock()
	state := b.state
	b.mu.Unlock()

	if state != Started && state != Activated {
		return fmt.Errorf("activate in state %s: %w", state, ErrNotStarted)
	}

	if err := b.builder.Build(app); err != nil {
		return fmt.Errorf("build window: %w", err)
	}

	b.mu.Lock()
	b.state = Activated
	b.mu.Unlock()
	return nil
}

// Run hands control to runner and returns its exit code.
func (b *Bootstrap) Run(runner Runner) int {
	code := runner.Run(b)

	b.mu.Lock()
	b.state = Terminated
	b.mu.Unlock()

	b.log.Debug("Bootstrap", "terminated", map[string]interface{}{
		"exit_code": code,
	})
	return code
}

func (b *Bootstrap) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Provider is the stylesheet provider registered at startup, or nil
// before startup.
func (b *Bootstrap) Provider() *style.Provider {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.provider
}
