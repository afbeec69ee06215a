package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"vide/internal/logger"
)

const componentTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Manager stops registered components when the process is signalled.
type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	mu         sync.Mutex
	done       chan struct{}
	signals    chan os.Signal
	timeout    time.Duration
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop{}
	}
	return &Manager{
		logger:  log,
		done:    make(chan struct{}),
		signals: make(chan os.Signal, 1),
		timeout: componentTimeout,
	}
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen shuts down on SIGINT or SIGTERM until Stop or Shutdown is called.
func (m *Manager) Listen() {
	signal.Notify(m.signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-m.signals:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.done:
		}
	}()
}

// Stop releases the signal handlers without shutting anything down.
func (m *Manager) Stop() {
	signal.Stop(m.signals)
	m.closeDone()
}

func (m *Manager) closeDone() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	select {
	case <-m.done:
		return false
	default:
		close(m.done)
		return true
	}
}

// Shutdown stops components in reverse registration order. Only the first
// call has any effect.
func (m *Manager) Shutdown() {
	if !m.closeDone() {
		return
	}
	signal.Stop(m.signals)

	m.mu.Lock()
	components := make([]Shutdownable, len(m.components))
	copy(components, m.components)
	m.mu.Unlock()

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})

	for i := len(components) - 1; i >= 0; i-- {
		component := components[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			component.Shutdown()
		}()

		select {
		case <-done:
		case <-time.After(m.timeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
