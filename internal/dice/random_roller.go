package dice

import "math/rand/v2"

// randomRoller implements Roller with the runtime's concurrency safe generator
type randomRoller struct{}

// NewRandomRoller creates a new random roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// IntN implements Roller.IntN
func (r *randomRoller) IntN(n int) int {
	return rand.IntN(n)
}
