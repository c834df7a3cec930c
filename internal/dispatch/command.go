package dispatch

import (
	"strings"

	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

// Kind names an inbound command
type Kind string

const (
	KindCreateSession Kind = "create_session"
	KindJoin          Kind = "join"
	KindLeave         Kind = "leave"
	KindStartGame     Kind = "start_game"
	KindRequestCancel Kind = "request_cancel"
	KindRequestEnd    Kind = "request_end"
	KindConfirmAgree  Kind = "confirm_agree"
	KindConfirmRefuse Kind = "confirm_refuse"
	KindRevealRole    Kind = "reveal_role"

	// KindCancelHosted cancels whatever game the caller hosts, no game id needed
	KindCancelHosted Kind = "cancel_hosted"
)

// Command is one typed request from the interaction gateway. Deliveries may
// repeat; the services turn repeats into rejections.
type Command struct {
	Kind   Kind
	UserID string

	// GameID targets lobby and lifecycle commands
	GameID string

	// ConfirmationID targets ConfirmAgree and ConfirmRefuse
	ConfirmationID string

	// MaxPlayers is only read by CreateSession
	MaxPlayers int
}

// Validate checks the command carries the identifiers its kind needs
func (c *Command) Validate() error {
	if c == nil {
		return spyerr.InvalidArgument("command is required")
	}
	if strings.TrimSpace(c.UserID) == "" {
		return spyerr.InvalidArgument("user ID is required")
	}

	switch c.Kind {
	case KindCreateSession, KindCancelHosted:
		return nil
	case KindJoin, KindLeave, KindStartGame, KindRequestCancel, KindRequestEnd, KindRevealRole:
		if strings.TrimSpace(c.GameID) == "" {
			return spyerr.InvalidArgumentf("%s needs a game ID", c.Kind)
		}
		return nil
	case KindConfirmAgree, KindConfirmRefuse:
		if strings.TrimSpace(c.ConfirmationID) == "" {
			return spyerr.InvalidArgumentf("%s needs a confirmation ID", c.Kind)
		}
		return nil
	default:
		return spyerr.InvalidArgumentf("unknown command '%s'", c.Kind)
	}
}
