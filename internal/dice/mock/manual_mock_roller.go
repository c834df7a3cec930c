package mockdice

import (
	"sync"

	"github.com/KirkDiggler/spot-the-spy/internal/dice"
)

// ManualMockRoller implements dice.Roller with scripted results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

var _ dice.Roller = (*ManualMockRoller)(nil)

// NewManualMockRoller creates a roller that returns rolls in order, then 0
func NewManualMockRoller(rolls ...int) *ManualMockRoller {
	return &ManualMockRoller{rolls: rolls}
}

// SetRolls replaces the scripted results and rewinds
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Calls reports how many values were consumed
func (m *ManualMockRoller) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rollIndex
}

// IntN returns the next scripted value clamped into [0, n)
func (m *ManualMockRoller) IntN(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	value := 0
	if m.rollIndex < len(m.rolls) {
		value = m.rolls[m.rollIndex]
	}
	m.rollIndex++

	if value < 0 {
		return 0
	}
	if value >= n {
		return n - 1
	}
	return value
}
