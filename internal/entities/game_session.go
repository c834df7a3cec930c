package entities

import (
	"fmt"
	"time"
)

// SessionState is the lifecycle state of a game session
type SessionState string

const (
	SessionStateOpen          SessionState = "open"           // Lobby accepting joins
	SessionStateRunning       SessionState = "running"        // Roles and locations assigned
	SessionStatePendingCancel SessionState = "pending_cancel" // Host asked to cancel, awaiting confirmation
	SessionStatePendingEnd    SessionState = "pending_end"    // Host asked to end, awaiting confirmation
	SessionStateClosed        SessionState = "closed"         // Terminal
)

func (s SessionState) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known states
func (s SessionState) IsValid() bool {
	switch s {
	case SessionStateOpen, SessionStateRunning, SessionStatePendingCancel,
		SessionStatePendingEnd, SessionStateClosed:
		return true
	}
	return false
}

// IsPending reports whether the session is waiting on a host confirmation
func (s SessionState) IsPending() bool {
	return s == SessionStatePendingCancel || s == SessionStatePendingEnd
}

// ParseSessionState converts a stored value back into a SessionState
func ParseSessionState(value string) (SessionState, error) {
	state := SessionState(value)
	if !state.IsValid() {
		return "", fmt.Errorf("unknown session state %q", value)
	}
	return state, nil
}

const (
	// MinPlayers is the smallest roster that can start a game
	MinPlayers = 4

	// MaxPlayers is the largest lobby a host can open
	MaxPlayers = 10
)

// MessageHandle points at a message rendered by the notification sink. The
// game core only stores it.
type MessageHandle struct {
	ChannelID string `json:"channel_id,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

// IsZero reports whether the handle was never attached
func (h MessageHandle) IsZero() bool {
	return h.ChannelID == "" || h.MessageID == ""
}

// GameSession is one game from lobby to teardown
type GameSession struct {
	ID               string        `json:"id"`
	HostID           string        `json:"host_id"`
	MaxPlayers       int           `json:"max_players"`
	State            SessionState  `json:"state"`
	SelectedLocation string        `json:"selected_location,omitempty"`
	FirstAskerID     string        `json:"first_asker_id,omitempty"` // cosmetic, not enforced
	HostMessage      MessageHandle `json:"host_message"`
	ControlMessage   MessageHandle `json:"control_message"`
	CreatedAt        time.Time     `json:"created_at"`
	StartedAt        *time.Time    `json:"started_at,omitempty"`
}

// IsHost checks if the user is the session host
func (g *GameSession) IsHost(userID string) bool {
	return g.HostID == userID
}

// IsLive reports whether the session still counts against its host
func (g *GameSession) IsLive() bool {
	return g.State != SessionStateClosed
}

// Clone returns a deep copy safe to hand out of a store
func (g *GameSession) Clone() *GameSession {
	if g == nil {
		return nil
	}
	clone := *g
	if g.StartedAt != nil {
		started := *g.StartedAt
		clone.StartedAt = &started
	}
	return &clone
}
