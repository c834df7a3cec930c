package game

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
	"github.com/KirkDiggler/spot-the-spy/internal/notifications"
	"github.com/KirkDiggler/spot-the-spy/internal/services/assignment"
)

// StartGame deals roles and locations and moves the game to running. The
// roster is read, assigned and committed; if a join or leave lands in between
// the commit reports a conflict and the whole step is repeated. Starts of the
// same game run one at a time, so a losing click never reaches the catalog.
func (s *service) StartGame(ctx context.Context, gameID, requesterID string) (*StartResult, error) {
	if strings.TrimSpace(gameID) == "" || strings.TrimSpace(requesterID) == "" {
		return nil, spyerr.InvalidArgument("game ID and requester ID are required")
	}

	release, err := s.starts.claim(ctx, gameID)
	if err != nil {
		return nil, spyerr.Unavailable(err, "start abandoned while waiting").WithMeta("game_id", gameID)
	}
	defer release()

	game, err := s.repository.Get(ctx, gameID)
	if err != nil {
		return nil, spyerr.Wrapf(err, "failed to get game '%s'", gameID).WithMeta("game_id", gameID)
	}
	if !game.IsHost(requesterID) {
		return nil, spyerr.NotHost(gameID, requesterID, game.HostID)
	}
	if game.State != entities.SessionStateOpen {
		return nil, spyerr.SessionNotOpen(gameID, game.State)
	}

	var (
		draw   []string
		roster entities.Roster
	)
	for attempt := 1; ; attempt++ {
		roster, err = s.repository.ListParticipants(ctx, gameID)
		if err != nil {
			return nil, spyerr.Wrapf(err, "failed to list players of game '%s'", gameID).WithMeta("game_id", gameID)
		}
		if len(roster) < entities.MinPlayers {
			return nil, spyerr.NotEnoughPlayers(gameID, len(roster), entities.MinPlayers)
		}

		if draw == nil {
			draw, err = s.drawLocations(ctx)
			if err != nil {
				return nil, err
			}
		}

		dealt, err := s.engine.Assign(roster.UserIDs(), draw)
		if err != nil {
			return nil, spyerr.Wrap(err, "failed to assign roles").WithMeta("game_id", gameID)
		}

		startedAt := s.now()
		err = s.repository.CommitAssignment(ctx, gameID, dealt, startedAt)
		if err == nil {
			game.State = entities.SessionStateRunning
			game.StartedAt = &startedAt
			game.SelectedLocation = dealt.Locations.SelectedLocation
			game.FirstAskerID = dealt.FirstAskerID
			break
		}
		if !spyerr.IsConflict(err) || attempt >= maxStartAttempts {
			return nil, spyerr.Wrapf(err, "failed to start game '%s'", gameID).WithMeta("game_id", gameID)
		}
		log.Debug().Str("game_id", gameID).Int("attempt", attempt).Msg("roster changed during start, retrying")
	}

	players := roster.UserIDs()
	s.recorder.GameStarted(len(players))
	log.Info().
		Str("game_id", gameID).
		Str("host_id", game.HostID).
		Int("players", len(players)).
		Msg("game started")

	view := &notifications.RunningView{
		GameID:       gameID,
		HostID:       game.HostID,
		Players:      players,
		FirstAskerID: game.FirstAskerID,
	}
	batch := notifications.NewBatch(ctx, gameID, s.recorder)
	batch.Go(notifications.KindGameStarted, game.HostMessage, func(ctx context.Context) error {
		return s.notifier.GameStarted(ctx, game.HostMessage, view)
	})
	batch.Go(notifications.KindRemoveMessage, game.ControlMessage, func(ctx context.Context) error {
		return s.notifier.RemoveMessage(ctx, game.ControlMessage)
	})

	return &StartResult{
		Game:             game,
		Players:          players,
		DeliveryFailures: batch.Wait(),
	}, nil
}

// drawLocations asks the catalog for a draw and trims it to one game's worth
func (s *service) drawLocations(ctx context.Context) ([]string, error) {
	draw, err := s.catalog.Draw(ctx)
	if err != nil {
		if spyerr.IsUnavailable(err) {
			return nil, spyerr.Wrap(err, "location catalog unavailable")
		}
		return nil, spyerr.Unavailable(err, "location catalog unavailable")
	}
	if len(draw) > assignment.LocationsPerGame {
		draw = draw[:assignment.LocationsPerGame]
	}
	return draw, nil
}
