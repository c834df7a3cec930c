package dispatch

import (
	"github.com/KirkDiggler/spot-the-spy/internal/notifications"
	"github.com/KirkDiggler/spot-the-spy/internal/services/game"
	"github.com/KirkDiggler/spot-the-spy/internal/services/lobby"
)

// Outcome is what a command produced. At most one result field is set; when
// the command was refused Err holds the cause and Rejection the copy to show
// the requesting user.
type Outcome struct {
	Kind Kind

	Created    *lobby.CreateSessionResult
	Roster     *lobby.RosterResult
	Started    *game.StartResult
	Prompt     *game.ConfirmationPrompt
	Closed     *game.CloseResult
	Refused    *game.RefuseResult
	Disclosure *game.RoleDisclosure

	Err       error
	Rejection string
}

// Rejected reports whether the command was refused
func (o *Outcome) Rejected() bool {
	return o.Err != nil
}

// DeliveryFailures collects the notification failures of whichever result
// the command produced
func (o *Outcome) DeliveryFailures() []notifications.DeliveryFailure {
	switch {
	case o.Roster != nil:
		return o.Roster.DeliveryFailures
	case o.Started != nil:
		return o.Started.DeliveryFailures
	case o.Closed != nil:
		return o.Closed.DeliveryFailures
	default:
		return nil
	}
}
