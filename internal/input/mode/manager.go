package mode

import (
	"fmt"

	"github.com/scribeedit/scribe/internal/input/key"
)

// Manager holds the registered modes and the active one.
type Manager struct {
	modes   map[string]Mode
	current Mode
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{modes: make(map[string]Mode)}
}

// Register adds a mode, replacing any mode with the same name.
func (m *Manager) Register(mode Mode) {
	m.modes[mode.Name()] = mode
}

// Get returns a mode by name, or nil.
func (m *Manager) Get(name string) Mode {
	return m.modes[name]
}

// Current returns the active mode, or nil before the first Switch.
func (m *Manager) Current() Mode {
	return m.current
}

// CurrentName returns the active mode's name, or "".
func (m *Manager) CurrentName() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// Switch leaves the active mode and enters the named one. Switching to
// the already-active mode re-runs its Enter hook.
func (m *Manager) Switch(ed Editor, name string) error {
	next, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}

	if m.current != nil {
		m.current.Exit(ed)
	}
	m.current = next
	next.Enter(ed)
	return nil
}

// HandleKey forwards a key event to the active mode.
func (m *Manager) HandleKey(ed Editor, ev key.Event) error {
	if m.current == nil {
		return nil
	}
	return m.current.HandleKey(ed, ev)
}
