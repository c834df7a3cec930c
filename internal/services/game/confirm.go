package game

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
	"github.com/KirkDiggler/spot-the-spy/internal/notifications"
)

// RequestCancel asks the host to confirm canceling the game
func (s *service) RequestCancel(ctx context.Context, gameID, requesterID string) (*ConfirmationPrompt, error) {
	return s.request(ctx, gameID, requesterID, entities.ConfirmationCancel)
}

// RequestEnd asks the host to confirm ending the game
func (s *service) RequestEnd(ctx context.Context, gameID, requesterID string) (*ConfirmationPrompt, error) {
	return s.request(ctx, gameID, requesterID, entities.ConfirmationEnd)
}

// request parks the game in the pending state for kind and records a prompt.
// Asking again while a prompt is outstanding replaces that prompt but keeps
// the state the game had before the first request.
func (s *service) request(ctx context.Context, gameID, requesterID string, kind entities.ConfirmationKind) (*ConfirmationPrompt, error) {
	if strings.TrimSpace(gameID) == "" || strings.TrimSpace(requesterID) == "" {
		return nil, spyerr.InvalidArgument("game ID and requester ID are required")
	}

	game, err := s.repository.Get(ctx, gameID)
	if err != nil {
		return nil, spyerr.Wrapf(err, "failed to get game '%s'", gameID).WithMeta("game_id", gameID)
	}
	if !game.IsHost(requesterID) {
		return nil, spyerr.NotHost(gameID, requesterID, game.HostID)
	}

	prior := game.State
	superseded := ""
	switch {
	case game.State == entities.SessionStateOpen || game.State == entities.SessionStateRunning:
	case game.State.IsPending():
		old, err := s.confirmations.TakeByGame(ctx, gameID)
		switch {
		case err == nil:
			prior = old.PriorState
			superseded = old.ID
		case spyerr.Is(err, spyerr.CodeNoPendingConfirmation):
			// The prompt was lost, recover the prior state from the game itself
			prior = entities.SessionStateOpen
			if game.StartedAt != nil {
				prior = entities.SessionStateRunning
			}
		default:
			return nil, spyerr.Wrap(err, "failed to replace pending confirmation").WithMeta("game_id", gameID)
		}
	default:
		return nil, spyerr.SessionNotFound(gameID)
	}

	target := kind.PendingState()
	if err := s.repository.CompareAndSwapState(ctx, gameID, game.State, target); err != nil {
		return nil, spyerr.Wrapf(err, "failed to request %s of game '%s'", kind, gameID).WithMeta("game_id", gameID)
	}

	confirmation := &entities.PendingConfirmation{
		ID:          s.idGenerator.New(),
		GameID:      gameID,
		Kind:        kind,
		RequesterID: requesterID,
		PriorState:  prior,
		CreatedAt:   s.now(),
	}
	if err := s.confirmations.Create(ctx, confirmation); err != nil {
		// Put the game back so the host is not stuck without a prompt
		if rollbackErr := s.repository.CompareAndSwapState(ctx, gameID, target, prior); rollbackErr != nil {
			log.Error().Err(rollbackErr).Str("game_id", gameID).Msg("failed to restore state after confirmation error")
		}
		return nil, spyerr.Wrap(err, "failed to record confirmation").WithMeta("game_id", gameID)
	}

	log.Info().
		Str("game_id", gameID).
		Str("confirmation_id", confirmation.ID).
		Str("kind", string(kind)).
		Str("superseded", superseded).
		Msg("confirmation requested")

	return &ConfirmationPrompt{
		ID:           confirmation.ID,
		GameID:       gameID,
		Kind:         kind,
		SupersededID: superseded,
	}, nil
}

// claim reads a confirmation and checks the caller may resolve it before
// taking it out of the store
func (s *service) claim(ctx context.Context, confirmationID, requesterID string) (*entities.PendingConfirmation, error) {
	if strings.TrimSpace(confirmationID) == "" || strings.TrimSpace(requesterID) == "" {
		return nil, spyerr.InvalidArgument("confirmation ID and requester ID are required")
	}

	pending, err := s.confirmations.Get(ctx, confirmationID)
	if err != nil {
		return nil, spyerr.Wrap(err, "failed to get confirmation").WithMeta("confirmation_id", confirmationID)
	}
	if pending.RequesterID != requesterID {
		return nil, spyerr.NotHost(pending.GameID, requesterID, pending.RequesterID)
	}

	taken, err := s.confirmations.Take(ctx, confirmationID)
	if err != nil {
		return nil, spyerr.Wrap(err, "failed to resolve confirmation").WithMeta("confirmation_id", confirmationID)
	}
	return taken, nil
}

// ConfirmAgree resolves a prompt by closing the game
func (s *service) ConfirmAgree(ctx context.Context, confirmationID, requesterID string) (*CloseResult, error) {
	pending, err := s.claim(ctx, confirmationID, requesterID)
	if err != nil {
		return nil, err
	}
	gameID := pending.GameID

	game, err := s.repository.Get(ctx, gameID)
	if err != nil {
		return nil, spyerr.Wrapf(err, "failed to get game '%s'", gameID).WithMeta("game_id", gameID)
	}
	if err := s.repository.Close(ctx, gameID, pending.Kind.PendingState()); err != nil {
		return nil, spyerr.Wrapf(err, "failed to close game '%s'", gameID).WithMeta("game_id", gameID)
	}

	s.recorder.GameClosed(string(pending.Kind))
	log.Info().
		Str("game_id", gameID).
		Str("kind", string(pending.Kind)).
		Msg("game closed")

	view := &notifications.ClosedView{
		GameID: gameID,
		HostID: game.HostID,
		Reason: pending.Kind,
	}
	batch := notifications.NewBatch(ctx, gameID, s.recorder)
	batch.Go(notifications.KindSessionClosed, game.HostMessage, func(ctx context.Context) error {
		return s.notifier.SessionClosed(ctx, game.HostMessage, view)
	})
	batch.Go(notifications.KindRemoveMessage, game.ControlMessage, func(ctx context.Context) error {
		return s.notifier.RemoveMessage(ctx, game.ControlMessage)
	})

	return &CloseResult{
		GameID:           gameID,
		HostID:           game.HostID,
		Kind:             pending.Kind,
		DeliveryFailures: batch.Wait(),
	}, nil
}

// ConfirmRefuse resolves a prompt by restoring the game's prior state
func (s *service) ConfirmRefuse(ctx context.Context, confirmationID, requesterID string) (*RefuseResult, error) {
	pending, err := s.claim(ctx, confirmationID, requesterID)
	if err != nil {
		return nil, err
	}
	gameID := pending.GameID

	err = s.repository.CompareAndSwapState(ctx, gameID, pending.Kind.PendingState(), pending.PriorState)
	if err != nil {
		return nil, spyerr.Wrapf(err, "failed to restore game '%s'", gameID).WithMeta("game_id", gameID)
	}

	log.Info().
		Str("game_id", gameID).
		Str("kind", string(pending.Kind)).
		Str("state", pending.PriorState.String()).
		Msg("confirmation refused")

	return &RefuseResult{
		GameID:        gameID,
		Kind:          pending.Kind,
		RestoredState: pending.PriorState,
	}, nil
}
