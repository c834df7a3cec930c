package locations

//go:generate mockgen -destination=mock/mock_client.go -package=mocklocations -source=interface.go

import "context"

// DrawSize is how many distinct names a draw returns
const DrawSize = 10

// Client supplies the location names for one game
type Client interface {
	// Draw returns DrawSize distinct location names in random order, or an
	// unavailable error.
	Draw(ctx context.Context) ([]string, error)
}
