// Package states implements race state management (countdown, racing).
package states

import (
	"time"

	"github.com/driftlabs/driftline/internal/engine/input"
)

// State represents a race phase.
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called once per simulation tick.
	Update(sample input.Sample, now time.Time) error
}

// Manager manages race state transitions. Changes requested during an
// Update take effect at the start of the next one.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes a pending transition and ticks the current state.
func (m *Manager) Update(sample input.Sample, now time.Time) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(sample, now)
	}
	return nil
}
