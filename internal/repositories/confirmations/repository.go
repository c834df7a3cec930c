package confirmations

//go:generate mockgen -destination=mock/mock_repository.go -package=mockconfirmations -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
)

// Repository tracks the confirmation prompts that are still waiting on a host.
// Take and TakeByGame remove the entry in the same step they read it, so of two
// racing resolutions only one ever sees the confirmation.
type Repository interface {
	// Create stores a confirmation and makes it the game's current one
	Create(ctx context.Context, confirmation *entities.PendingConfirmation) error

	// Get reads a confirmation without resolving it
	Get(ctx context.Context, id string) (*entities.PendingConfirmation, error)

	// Take removes and returns the confirmation with the given id
	Take(ctx context.Context, id string) (*entities.PendingConfirmation, error)

	// TakeByGame removes and returns the game's current confirmation
	TakeByGame(ctx context.Context, gameID string) (*entities.PendingConfirmation, error)
}
