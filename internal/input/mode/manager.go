package mode

import "sync"

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Manager tracks the current mode and notifies observers of transitions.
// Safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	current   Mode
	previous  Mode
	callbacks []ChangeCallback
}

// NewManager creates a manager starting in normal mode.
func NewManager() *Manager {
	return &Manager{current: Normal}
}

// Current returns the active mode.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Previous returns the mode before the most recent switch.
func (m *Manager) Previous() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.previous
}

// Is reports whether the active mode matches.
func (m *Manager) Is(mode Mode) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current == mode
}

// Switch changes the active mode and notifies callbacks in registration
// order. Switching to the current mode is a no-op and fires no callbacks.
func (m *Manager) Switch(to Mode) {
	m.mu.Lock()
	if m.current == to {
		m.mu.Unlock()
		return
	}

	from := m.current
	m.previous = from
	m.current = to

	// Copy so callbacks run outside the lock.
	callbacks := make([]ChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		// Remove by setting to nil so other indices stay stable.
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
