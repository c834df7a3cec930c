package notifications

//go:generate mockgen -destination=mock/mock_notifier.go -package=mocknotifications -source=notifier.go

import (
	"context"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
)

// Delivery kinds, used as the metrics label for failures
const (
	KindLobbyChanged  = "lobby_changed"
	KindGameStarted   = "game_started"
	KindSessionClosed = "session_closed"
	KindRemoveMessage = "remove_message"
)

// Notifier pushes game state to the chat platform. Delivery is best effort:
// a failed call never changes what the store holds.
type Notifier interface {
	// LobbyChanged re-renders the lobby message with the current roster
	LobbyChanged(ctx context.Context, handle entities.MessageHandle, view *LobbyView) error

	// GameStarted replaces the lobby message with the running prompt
	GameStarted(ctx context.Context, handle entities.MessageHandle, view *RunningView) error

	// SessionClosed replaces the game message with the closing announcement
	SessionClosed(ctx context.Context, handle entities.MessageHandle, view *ClosedView) error

	// RemoveMessage deletes a message, typically the host's control panel
	RemoveMessage(ctx context.Context, handle entities.MessageHandle) error
}

// LobbyView is what a lobby message shows
type LobbyView struct {
	GameID     string
	HostID     string
	MaxPlayers int
	Players    []string // user IDs in join order
}

// IsFull reports whether no more players can join
func (v *LobbyView) IsFull() bool {
	return len(v.Players) >= v.MaxPlayers
}

// RunningView is what the game message shows once roles are dealt
type RunningView struct {
	GameID       string
	HostID       string
	Players      []string
	FirstAskerID string
}

// ClosedView is the final state of the game message
type ClosedView struct {
	GameID string
	HostID string
	Reason entities.ConfirmationKind
}

// NewLobbyView builds the view of an open game
func NewLobbyView(game *entities.GameSession, roster entities.Roster) *LobbyView {
	return &LobbyView{
		GameID:     game.ID,
		HostID:     game.HostID,
		MaxPlayers: game.MaxPlayers,
		Players:    roster.UserIDs(),
	}
}
