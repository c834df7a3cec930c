package confirmations

import (
	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

func validateCreate(c *entities.PendingConfirmation) error {
	if c == nil {
		return spyerr.InvalidArgument("confirmation cannot be nil")
	}
	if c.ID == "" {
		return spyerr.InvalidArgument("confirmation ID is required")
	}
	if c.GameID == "" {
		return spyerr.InvalidArgument("game ID is required")
	}
	if c.RequesterID == "" {
		return spyerr.InvalidArgument("requester ID is required")
	}
	switch c.Kind {
	case entities.ConfirmationCancel, entities.ConfirmationEnd:
	default:
		return spyerr.InvalidArgumentf("unknown confirmation kind %q", c.Kind)
	}
	if c.PriorState != entities.SessionStateOpen && c.PriorState != entities.SessionStateRunning {
		return spyerr.InvalidArgumentf("prior state must be open or running, got %q", c.PriorState)
	}
	return nil
}

// noneForGame reports a game without a current confirmation
func noneForGame(gameID string) error {
	return spyerr.Newf(spyerr.CodeNoPendingConfirmation, "game '%s' has no pending confirmation", gameID).
		WithMeta("game_id", gameID)
}
