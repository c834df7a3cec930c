package games

//go:generate mockgen -destination=mock/mock_repository.go -package=mockgames -source=repository.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
)

// Repository is the session store. Every method is a single atomic unit:
// the conditional writes (join, state swaps, assignment commit, close) check
// their preconditions and mutate in the same step, so concurrent commands for
// one game cannot interleave between the check and the write.
type Repository interface {
	// Create inserts game with host as its first participant. Fails with
	// host_already_hosting when the host still has a live game.
	Create(ctx context.Context, game *entities.GameSession, host *entities.Participant) error

	// Get retrieves a game by ID
	Get(ctx context.Context, id string) (*entities.GameSession, error)

	// GetActiveByHost retrieves the host's live game
	GetActiveByHost(ctx context.Context, hostID string) (*entities.GameSession, error)

	// ListParticipants returns the roster ordered by join time
	ListParticipants(ctx context.Context, id string) (entities.Roster, error)

	// AddParticipant seats a user iff the game is open, not full and the user
	// is not already seated. Returns the roster after the insert.
	AddParticipant(ctx context.Context, id string, participant *entities.Participant) (entities.Roster, error)

	// RemoveParticipant unseats a user iff the game is open and the user is
	// seated. Returns the roster after the delete.
	RemoveParticipant(ctx context.Context, id, userID string) (entities.Roster, error)

	// SetMessages records the rendered lobby and control message handles
	SetMessages(ctx context.Context, id string, host, control entities.MessageHandle) error

	// CompareAndSwapState moves the game to `to` only if it is in `from`
	CompareAndSwapState(ctx context.Context, id string, from, to entities.SessionState) error

	// CommitAssignment moves an open game to running and stores every role and
	// the location set in one unit. Fails with conflict when the seated users
	// are not exactly the users in the assignment.
	CommitAssignment(ctx context.Context, id string, assignment *entities.Assignment, startedAt time.Time) error

	// GetLocations returns the location set of a running game
	GetLocations(ctx context.Context, id string) (*entities.LocationSet, error)

	// Close removes a game in state `from` together with its participants and
	// locations.
	Close(ctx context.Context, id string, from entities.SessionState) error

	// Ping checks the backing store is reachable
	Ping(ctx context.Context) error
}
