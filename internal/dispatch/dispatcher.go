package dispatch

//go:generate mockgen -destination=mock/mock_dispatcher.go -package=mockdispatch -source=dispatcher.go

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
	"github.com/KirkDiggler/spot-the-spy/internal/metrics"
	"github.com/KirkDiggler/spot-the-spy/internal/services/game"
	"github.com/KirkDiggler/spot-the-spy/internal/services/lobby"
)

// Dispatcher routes a command to the lobby or lifecycle service
type Dispatcher interface {
	// Dispatch runs cmd and reports what happened. It never returns nil; a
	// refused command comes back with Err and Rejection set.
	Dispatch(ctx context.Context, cmd *Command) *Outcome
}

type dispatcher struct {
	lobby    lobby.Service
	game     game.Service
	recorder metrics.Recorder
	now      func() time.Time
}

// Config holds configuration for the dispatcher
type Config struct {
	Lobby   lobby.Service // Required
	Game    game.Service  // Required
	Metrics metrics.Recorder
	Clock   func() time.Time
}

// New creates a new command dispatcher
func New(cfg *Config) Dispatcher {
	if cfg.Lobby == nil {
		panic("lobby service is required")
	}
	if cfg.Game == nil {
		panic("game service is required")
	}

	d := &dispatcher{
		lobby:    cfg.Lobby,
		game:     cfg.Game,
		recorder: cfg.Metrics,
		now:      cfg.Clock,
	}
	if d.recorder == nil {
		d.recorder = metrics.Noop()
	}
	if d.now == nil {
		d.now = time.Now
	}
	return d
}

func (d *dispatcher) Dispatch(ctx context.Context, cmd *Command) *Outcome {
	started := d.now()

	outcome := &Outcome{}
	err := cmd.Validate()
	if err == nil {
		outcome.Kind = cmd.Kind
		err = d.run(ctx, cmd, outcome)
	}

	result := metrics.OutcomeOK
	if err != nil {
		outcome.Err = err
		outcome.Rejection = Rejection(outcome.Kind, err)

		event := log.Error()
		result = metrics.OutcomeError
		if spyerr.IsPrecondition(err) {
			event = log.Debug()
			result = metrics.OutcomeRejected
		}
		event.Err(err).
			Str("command", string(outcome.Kind)).
			Str("code", string(spyerr.GetCode(err))).
			Msg("command refused")
	}

	label := string(outcome.Kind)
	if label == "" {
		label = "invalid"
	}
	d.recorder.CommandHandled(label, result, d.now().Sub(started))
	return outcome
}

func (d *dispatcher) run(ctx context.Context, cmd *Command, outcome *Outcome) error {
	var err error

	switch cmd.Kind {
	case KindCreateSession:
		outcome.Created, err = d.lobby.CreateSession(ctx, &lobby.CreateSessionInput{
			HostID:     cmd.UserID,
			MaxPlayers: cmd.MaxPlayers,
		})
	case KindJoin:
		outcome.Roster, err = d.lobby.Join(ctx, cmd.GameID, cmd.UserID)
	case KindLeave:
		outcome.Roster, err = d.lobby.Leave(ctx, cmd.GameID, cmd.UserID)
	case KindStartGame:
		outcome.Started, err = d.game.StartGame(ctx, cmd.GameID, cmd.UserID)
	case KindRequestCancel:
		outcome.Prompt, err = d.game.RequestCancel(ctx, cmd.GameID, cmd.UserID)
	case KindRequestEnd:
		outcome.Prompt, err = d.game.RequestEnd(ctx, cmd.GameID, cmd.UserID)
	case KindConfirmAgree:
		outcome.Closed, err = d.game.ConfirmAgree(ctx, cmd.ConfirmationID, cmd.UserID)
	case KindConfirmRefuse:
		outcome.Refused, err = d.game.ConfirmRefuse(ctx, cmd.ConfirmationID, cmd.UserID)
	case KindRevealRole:
		outcome.Disclosure, err = d.game.RevealRole(ctx, cmd.GameID, cmd.UserID)
	case KindCancelHosted:
		outcome.Prompt, err = d.cancelHosted(ctx, cmd.UserID)
	}

	return err
}

// cancelHosted resolves the caller's live game and asks to cancel it
func (d *dispatcher) cancelHosted(ctx context.Context, hostID string) (*game.ConfirmationPrompt, error) {
	active, err := d.lobby.ActiveSession(ctx, hostID)
	if err != nil {
		return nil, err
	}
	return d.game.RequestCancel(ctx, active.ID, hostID)
}
