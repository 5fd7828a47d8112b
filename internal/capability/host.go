// Package capability registers host capability plugins. A plugin grants the
// backend access to a restricted class of host operations, such as
// filesystem access or native dialogs, on top of the Fyne application.
package capability

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
)

var (
	ErrDuplicatePlugin = errors.New("plugin already registered")
	ErrNilPlugin       = errors.New("plugin is nil")
)

// Plugin is a capability initialised against the running application
type Plugin interface {
	Name() string
	Init(app fyne.App) error
}

// Host owns the registered plugins in registration order
type Host struct {
	app     fyne.App
	plugins []Plugin
	mu      sync.RWMutex
	logger  zerolog.Logger
}

// NewHost creates a plugin host for app
func NewHost(app fyne.App, logger zerolog.Logger) *Host {
	return &Host{
		app:    app,
		logger: logger.With().Str("component", "capability").Logger(),
	}
}

// Register initialises p and adds it to the host
func (h *Host) Register(p Plugin) error {
	if p == nil {
		return ErrNilPlugin
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, existing := range h.plugins {
		if existing.Name() == p.Name() {
			return fmt.Errorf("%w: %s", ErrDuplicatePlugin, p.Name())
		}
	}

	if err := p.Init(h.app); err != nil {
		return fmt.Errorf("failed to init plugin %s: %w", p.Name(), err)
	}

	h.plugins = append(h.plugins, p)
	h.logger.Debug().Str("plugin", p.Name()).Msg("plugin registered")
	return nil
}

// Names returns plugin names in registration order
func (h *Host) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.plugins))
	for _, p := range h.plugins {
		names = append(names, p.Name())
	}
	return names
}

// Lookup returns the first registered plugin of type T
func Lookup[T Plugin](h *Host) (T, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, p := range h.plugins {
		if typed, ok := p.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}
