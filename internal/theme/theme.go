package theme

import (
	"fmt"
	"strings"
	"sync"
)

type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Light, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Store persists the selected mode between runs.
type Store interface {
	Load() (Mode, bool, error)
	Save(Mode) error
}

// Manager owns the process-wide theme flag. Readers such as the particle
// field only ever call Get or Dark.
type Manager struct {
	mu    sync.RWMutex
	mode  Mode
	set   bool
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Init applies the stored mode, defaulting to dark when nothing is stored.
func (m *Manager) Init() error {
	mode, ok := Dark, false
	var err error
	if m.store != nil {
		mode, ok, err = m.store.Load()
		if err != nil {
			return fmt.Errorf("theme: load: %w", err)
		}
	}
	if !ok {
		mode = Dark
	}

	m.mu.Lock()
	m.mode, m.set = mode, true
	m.mu.Unlock()
	return nil
}

// Get reports the active mode. An uninitialised manager reads as light.
func (m *Manager) Get() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return Light
	}
	return m.mode
}

func (m *Manager) Dark() bool { return m.Get() == Dark }

func (m *Manager) Set(mode Mode) error {
	m.mu.Lock()
	m.mode, m.set = mode, true
	m.mu.Unlock()
	if m.store == nil {
		return nil
	}
	if err := m.store.Save(mode); err != nil {
		return fmt.Errorf("theme: save: %w", err)
	}
	return nil
}

// Toggle flips between dark and light and persists the result.
func (m *Manager) Toggle() (Mode, error) {
	next := Dark
	if m.Get() == Dark {
		next = Light
	}
	return next, m.Set(next)
}
