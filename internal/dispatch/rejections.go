package dispatch

import (
	"fmt"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

const (
	copyRetry    = "Something went wrong on our side. Please try again in a moment!"
	copyInternal = "Something went wrong while handling that. Please try again later."
)

// Rejection turns a refused command into the short reason shown to the user
// who sent it
func Rejection(kind Kind, err error) string {
	if err == nil {
		return ""
	}
	meta := spyerr.GetMeta(err)

	switch spyerr.GetCode(err) {
	case spyerr.CodeHostAlreadyHosting:
		return "You already have an active game running!"
	case spyerr.CodeAlreadyJoined:
		return "You've already joined this game!"
	case spyerr.CodeLobbyFull:
		return "This game is already full. You cannot join at this time!"
	case spyerr.CodeNotJoined:
		return "You haven't joined this game session yet!"
	case spyerr.CodeHostCannotLeave:
		return "The host cannot leave the game. Use the command /cancel to cancel it instead."
	case spyerr.CodeNotEnoughPlayers:
		minPlayers, ok := meta["min_players"].(int)
		if !ok {
			minPlayers = entities.MinPlayers
		}
		return fmt.Sprintf("The minimum amount of players to start the game is %d. Please make sure more players join your game!", minPlayers)
	case spyerr.CodeNotHost:
		if hostID, ok := meta["host_id"].(string); ok && hostID != "" {
			return fmt.Sprintf("You are not the host of this game. Please refer to <@%s>", hostID)
		}
		return "You are not the host of this game."
	case spyerr.CodeSessionNotFound:
		if kind == KindCancelHosted {
			return "You are not hosting a game to cancel!"
		}
		return "This game no longer exists. Use the command /start to start a new one"
	case spyerr.CodeSessionNotOpen:
		return notOpenCopy(meta)
	case spyerr.CodeNoPendingConfirmation:
		return "This confirmation is no longer pending."
	case spyerr.CodeNoRoleAssigned:
		return "You don't have a role in this game."
	case spyerr.CodeInvalidArgument:
		if kind == KindCreateSession {
			return fmt.Sprintf("A game needs between %d and %d players.", entities.MinPlayers, entities.MaxPlayers)
		}
		return "That request is not valid."
	case spyerr.CodeUnavailable, spyerr.CodeConflict:
		return copyRetry
	case spyerr.CodeInsufficientCatalogSize:
		return "There are not enough locations to start a game. Please try again later."
	default:
		return copyInternal
	}
}

func notOpenCopy(meta map[string]any) string {
	state, _ := meta["state"].(string)
	switch entities.SessionState(state) {
	case entities.SessionStateRunning:
		return "This game is already running!"
	case entities.SessionStatePendingCancel, entities.SessionStatePendingEnd:
		return "This game is waiting for the host to confirm."
	default:
		return "This game is not accepting that right now."
	}
}
