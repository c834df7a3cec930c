package dice

// Roller is the random source behind shuffles and draws. Injecting it lets
// tests pin an outcome without seeding a global generator.
type Roller interface {
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
}
