// Package discord turns Discord interactions into game commands and renders
// their outcomes.
package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/spot-the-spy/internal/discord/core"
	"github.com/KirkDiggler/spot-the-spy/internal/discord/views"
	"github.com/KirkDiggler/spot-the-spy/internal/dispatch"
	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	"github.com/KirkDiggler/spot-the-spy/internal/services/lobby"
)

// attachFailedMessage is shown when the lobby was posted but could not be
// linked to its game
const attachFailedMessage = "Your game was created but I lost track of its message. Use /cancel and start a new one."

// Handler answers the bot's slash commands and buttons
type Handler struct {
	dispatcher dispatch.Dispatcher
	lobby      lobby.Service
}

// HandlerConfig holds the handler's collaborators
type HandlerConfig struct {
	Dispatcher dispatch.Dispatcher // Required
	Lobby      lobby.Service       // Required, records where lobbies were posted
}

// NewHandler creates a new interaction handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.Dispatcher == nil {
		panic("dispatcher is required")
	}
	if cfg.Lobby == nil {
		panic("lobby service is required")
	}

	return &Handler{
		dispatcher: cfg.Dispatcher,
		lobby:      cfg.Lobby,
	}
}

// Router wires every command and button to its handler
func (h *Handler) Router() *core.Router {
	router := core.NewRouter(views.Domain)

	router.CommandFunc(CommandStart, h.handleStart)
	router.CommandFunc(CommandCancel, h.handleCancel)

	router.ComponentFunc(views.ActionJoin, h.lobbyAction(dispatch.KindJoin))
	router.ComponentFunc(views.ActionLeave, h.lobbyAction(dispatch.KindLeave))
	router.ComponentFunc(views.ActionStart, h.lobbyAction(dispatch.KindStartGame))
	router.ComponentFunc(views.ActionCancel, h.requestClose(dispatch.KindRequestCancel))
	router.ComponentFunc(views.ActionEnd, h.requestClose(dispatch.KindRequestEnd))
	router.ComponentFunc(views.ActionAgree, h.handleAgree)
	router.ComponentFunc(views.ActionRefuse, h.handleRefuse)
	router.ComponentFunc(views.ActionReveal, h.handleReveal)

	return router
}

// handleStart opens a lobby, posts it with the host's control panel and
// remembers both messages so later commands can edit them
func (h *Handler) handleStart(ic *core.InteractionContext) (*core.HandlerResult, error) {
	outcome := h.dispatcher.Dispatch(ic.Context, &dispatch.Command{
		Kind:       dispatch.KindCreateSession,
		UserID:     ic.UserID,
		MaxPlayers: ic.IntOption(OptionPlayers),
	})
	if outcome.Rejected() {
		return reject(outcome), nil
	}

	game := outcome.Created.Game
	responder := ic.Responder()

	if err := responder.Respond(views.Lobby(outcome.Created.Lobby)); err != nil {
		return nil, core.Internal(err)
	}

	original, err := responder.Original()
	if err != nil {
		return nil, core.Reply(err, attachFailedMessage)
	}
	hostMessage := handleOf(original)

	var controlMessage entities.MessageHandle
	control, followUpErr := responder.FollowUp(views.Control(game.ID, game.HostID))
	if followUpErr != nil {
		log.Warn().Err(followUpErr).
			Str("game_id", game.ID).
			Msg("failed to post control message")
	} else {
		controlMessage = handleOf(control)
	}

	if err := h.lobby.AttachMessages(ic.Context, game.ID, hostMessage, controlMessage); err != nil {
		return nil, core.Reply(err, attachFailedMessage)
	}
	if followUpErr != nil {
		return nil, core.Reply(followUpErr, "Your game was created but I could not post its controls. Use /cancel and start a new one.")
	}

	return &core.HandlerResult{StopPropagation: true}, nil
}

func (h *Handler) handleCancel(ic *core.InteractionContext) (*core.HandlerResult, error) {
	outcome := h.dispatcher.Dispatch(ic.Context, &dispatch.Command{
		Kind:   dispatch.KindCancelHosted,
		UserID: ic.UserID,
	})
	if outcome.Rejected() {
		return reject(outcome), nil
	}
	return respond(views.ConfirmationPrompt(outcome.Prompt)), nil
}

// lobbyAction handles buttons whose visible effect is an edit of the public
// message, which the notifier already made. The click only needs an ack.
func (h *Handler) lobbyAction(kind dispatch.Kind) core.HandlerFunc {
	return func(ic *core.InteractionContext) (*core.HandlerResult, error) {
		outcome, err := h.dispatchTarget(ic, kind)
		if err != nil {
			return nil, err
		}
		if outcome.Rejected() {
			return reject(outcome), nil
		}
		return respond(core.NewAcknowledgement()), nil
	}
}

func (h *Handler) requestClose(kind dispatch.Kind) core.HandlerFunc {
	return func(ic *core.InteractionContext) (*core.HandlerResult, error) {
		outcome, err := h.dispatchTarget(ic, kind)
		if err != nil {
			return nil, err
		}
		if outcome.Rejected() {
			return reject(outcome), nil
		}
		return respond(views.ConfirmationPrompt(outcome.Prompt)), nil
	}
}

func (h *Handler) handleAgree(ic *core.InteractionContext) (*core.HandlerResult, error) {
	outcome, err := h.dispatchTarget(ic, dispatch.KindConfirmAgree)
	if err != nil {
		return nil, err
	}
	if outcome.Rejected() {
		return reject(outcome), nil
	}
	return respond(views.CloseConfirmed(outcome.Closed)), nil
}

func (h *Handler) handleRefuse(ic *core.InteractionContext) (*core.HandlerResult, error) {
	outcome, err := h.dispatchTarget(ic, dispatch.KindConfirmRefuse)
	if err != nil {
		return nil, err
	}
	if outcome.Rejected() {
		return reject(outcome), nil
	}
	return respond(views.Refused(outcome.Refused)), nil
}

func (h *Handler) handleReveal(ic *core.InteractionContext) (*core.HandlerResult, error) {
	outcome, err := h.dispatchTarget(ic, dispatch.KindRevealRole)
	if err != nil {
		return nil, err
	}
	if outcome.Rejected() {
		return reject(outcome), nil
	}
	return respond(views.RoleDisclosure(outcome.Disclosure)), nil
}

// dispatchTarget runs kind against the target of the clicked button. The
// target is a game ID, or a confirmation ID for agree and refuse.
func (h *Handler) dispatchTarget(ic *core.InteractionContext, kind dispatch.Kind) (*dispatch.Outcome, error) {
	customID, err := ic.CustomID()
	if err != nil {
		return nil, core.Invalid("That button is broken, please use a fresh one.")
	}

	cmd := &dispatch.Command{
		Kind:   kind,
		UserID: ic.UserID,
	}
	switch kind {
	case dispatch.KindConfirmAgree, dispatch.KindConfirmRefuse:
		cmd.ConfirmationID = customID.Target
	default:
		cmd.GameID = customID.Target
	}

	return h.dispatcher.Dispatch(ic.Context, cmd), nil
}

func respond(response *core.Response) *core.HandlerResult {
	return &core.HandlerResult{
		Response:        response,
		StopPropagation: true,
	}
}

func reject(outcome *dispatch.Outcome) *core.HandlerResult {
	return respond(views.Rejection(outcome.Rejection))
}

func handleOf(message *discordgo.Message) entities.MessageHandle {
	return entities.MessageHandle{
		ChannelID: message.ChannelID,
		MessageID: message.ID,
	}
}
