package entities

import "time"

// ConfirmationKind is the destructive action awaiting host confirmation
type ConfirmationKind string

const (
	ConfirmationCancel ConfirmationKind = "cancel"
	ConfirmationEnd    ConfirmationKind = "end"
)

// PendingState is the session state held while this kind awaits an answer
func (k ConfirmationKind) PendingState() SessionState {
	if k == ConfirmationEnd {
		return SessionStatePendingEnd
	}
	return SessionStatePendingCancel
}

// PendingConfirmation links a confirmation prompt to its session so agree and
// refuse can be resolved by id.
type PendingConfirmation struct {
	ID          string           `json:"id"`
	GameID      string           `json:"game_id"`
	Kind        ConfirmationKind `json:"kind"`
	RequesterID string           `json:"requester_id"`
	PriorState  SessionState     `json:"prior_state"`
	CreatedAt   time.Time        `json:"created_at"`
}
