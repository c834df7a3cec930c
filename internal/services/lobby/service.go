package lobby

//go:generate mockgen -destination=mock/mock_service.go -package=mocklobby -source=service.go

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
	"github.com/KirkDiggler/spot-the-spy/internal/metrics"
	"github.com/KirkDiggler/spot-the-spy/internal/notifications"
	"github.com/KirkDiggler/spot-the-spy/internal/repositories/games"
	"github.com/KirkDiggler/spot-the-spy/internal/uuid"
)

// Service manages open lobbies: creating them and seating players
type Service interface {
	// CreateSession opens a lobby with the host as its only player
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionResult, error)

	// Join seats a player and refreshes the lobby message
	Join(ctx context.Context, gameID, userID string) (*RosterResult, error)

	// Leave unseats a player and refreshes the lobby message
	Leave(ctx context.Context, gameID, userID string) (*RosterResult, error)

	// IsHost reports whether userID hosts the game
	IsHost(ctx context.Context, gameID, userID string) (bool, error)

	// AttachMessages records where the lobby and control messages were posted
	AttachMessages(ctx context.Context, gameID string, host, control entities.MessageHandle) error

	// ActiveSession returns the game hostID is currently hosting
	ActiveSession(ctx context.Context, hostID string) (*entities.GameSession, error)
}

// CreateSessionInput contains data for opening a lobby
type CreateSessionInput struct {
	HostID     string
	MaxPlayers int
}

// CreateSessionResult is the new game and the lobby to render for it
type CreateSessionResult struct {
	Game  *entities.GameSession
	Lobby *notifications.LobbyView
}

// RosterResult is the roster after a join or leave
type RosterResult struct {
	Game             *entities.GameSession
	Roster           entities.Roster
	DeliveryFailures []notifications.DeliveryFailure
}

type service struct {
	repository  games.Repository
	notifier    notifications.Notifier
	idGenerator uuid.Generator
	recorder    metrics.Recorder
	now         func() time.Time
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository  games.Repository       // Required
	Notifier    notifications.Notifier // Required
	IDGenerator uuid.Generator         // Optional, defaults to <millis>-<suffix> ids
	Metrics     metrics.Recorder       // Optional
	Clock       func() time.Time       // Optional
}

// NewService creates a new lobby service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Notifier == nil {
		panic("notifier is required")
	}

	svc := &service{
		repository:  cfg.Repository,
		notifier:    cfg.Notifier,
		idGenerator: cfg.IDGenerator,
		recorder:    cfg.Metrics,
		now:         cfg.Clock,
	}
	if svc.idGenerator == nil {
		svc.idGenerator = uuid.NewGameIDGenerator()
	}
	if svc.recorder == nil {
		svc.recorder = metrics.Noop()
	}
	if svc.now == nil {
		svc.now = time.Now
	}

	return svc
}

// CreateSession opens a lobby with the host as its only player
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionResult, error) {
	if input == nil {
		return nil, spyerr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.HostID) == "" {
		return nil, spyerr.InvalidArgument("host ID is required")
	}
	if input.MaxPlayers < entities.MinPlayers || input.MaxPlayers > entities.MaxPlayers {
		return nil, spyerr.InvalidArgumentf("max players must be between %d and %d, got %d",
			entities.MinPlayers, entities.MaxPlayers, input.MaxPlayers).
			WithMeta("max_players", input.MaxPlayers)
	}

	now := s.now()
	game := &entities.GameSession{
		ID:         s.idGenerator.New(),
		HostID:     input.HostID,
		MaxPlayers: input.MaxPlayers,
		State:      entities.SessionStateOpen,
		CreatedAt:  now,
	}
	host := &entities.Participant{
		GameID:   game.ID,
		UserID:   input.HostID,
		Role:     entities.RoleUnassigned,
		JoinedAt: now,
	}

	if err := s.repository.Create(ctx, game, host); err != nil {
		return nil, spyerr.Wrap(err, "failed to create game").
			WithMeta("game_id", game.ID).
			WithMeta("host_id", input.HostID)
	}

	log.Info().
		Str("game_id", game.ID).
		Str("host_id", game.HostID).
		Int("max_players", game.MaxPlayers).
		Msg("lobby opened")

	return &CreateSessionResult{
		Game:  game,
		Lobby: notifications.NewLobbyView(game, entities.Roster{host}),
	}, nil
}

// Join seats a player and refreshes the lobby message
func (s *service) Join(ctx context.Context, gameID, userID string) (*RosterResult, error) {
	if err := requireIDs(gameID, userID); err != nil {
		return nil, err
	}

	roster, err := s.repository.AddParticipant(ctx, gameID, &entities.Participant{
		GameID:   gameID,
		UserID:   userID,
		Role:     entities.RoleUnassigned,
		JoinedAt: s.now(),
	})
	if err != nil {
		return nil, spyerr.Wrapf(err, "failed to join game '%s'", gameID).
			WithMeta("game_id", gameID).
			WithMeta("user_id", userID)
	}

	log.Info().Str("game_id", gameID).Str("user_id", userID).Int("players", len(roster)).Msg("player joined")

	return s.rosterChanged(ctx, gameID, roster), nil
}

// Leave unseats a player and refreshes the lobby message
func (s *service) Leave(ctx context.Context, gameID, userID string) (*RosterResult, error) {
	if err := requireIDs(gameID, userID); err != nil {
		return nil, err
	}

	roster, err := s.repository.RemoveParticipant(ctx, gameID, userID)
	if err != nil {
		return nil, spyerr.Wrapf(err, "failed to leave game '%s'", gameID).
			WithMeta("game_id", gameID).
			WithMeta("user_id", userID)
	}

	log.Info().Str("game_id", gameID).Str("user_id", userID).Int("players", len(roster)).Msg("player left")

	return s.rosterChanged(ctx, gameID, roster), nil
}

// rosterChanged pushes the new roster to the lobby message. The game is read
// after the write so the freshest message handle is used; if the game closed
// in between there is nothing left to update.
func (s *service) rosterChanged(ctx context.Context, gameID string, roster entities.Roster) *RosterResult {
	result := &RosterResult{Roster: roster}

	game, err := s.repository.Get(ctx, gameID)
	if err != nil {
		log.Warn().Err(err).Str("game_id", gameID).Msg("game vanished before lobby update")
		return result
	}
	result.Game = game

	view := notifications.NewLobbyView(game, roster)
	batch := notifications.NewBatch(ctx, gameID, s.recorder)
	batch.Go(notifications.KindLobbyChanged, game.HostMessage, func(ctx context.Context) error {
		return s.notifier.LobbyChanged(ctx, game.HostMessage, view)
	})
	result.DeliveryFailures = batch.Wait()

	return result
}

// IsHost reports whether userID hosts the game
func (s *service) IsHost(ctx context.Context, gameID, userID string) (bool, error) {
	if err := requireIDs(gameID, userID); err != nil {
		return false, err
	}

	game, err := s.repository.Get(ctx, gameID)
	if err != nil {
		return false, spyerr.Wrapf(err, "failed to get game '%s'", gameID).
			WithMeta("game_id", gameID)
	}
	return game.IsHost(userID), nil
}

// AttachMessages records where the lobby and control messages were posted
func (s *service) AttachMessages(ctx context.Context, gameID string, host, control entities.MessageHandle) error {
	if strings.TrimSpace(gameID) == "" {
		return spyerr.InvalidArgument("game ID is required")
	}
	if host.IsZero() {
		return spyerr.InvalidArgument("lobby message handle is required")
	}

	if err := s.repository.SetMessages(ctx, gameID, host, control); err != nil {
		return spyerr.Wrapf(err, "failed to attach messages to game '%s'", gameID).
			WithMeta("game_id", gameID)
	}
	return nil
}

// ActiveSession returns the game hostID is currently hosting
func (s *service) ActiveSession(ctx context.Context, hostID string) (*entities.GameSession, error) {
	if strings.TrimSpace(hostID) == "" {
		return nil, spyerr.InvalidArgument("host ID is required")
	}

	game, err := s.repository.GetActiveByHost(ctx, hostID)
	if err != nil {
		return nil, spyerr.Wrap(err, "failed to get active game").
			WithMeta("host_id", hostID)
	}
	return game, nil
}

func requireIDs(gameID, userID string) error {
	if strings.TrimSpace(gameID) == "" {
		return spyerr.InvalidArgument("game ID is required")
	}
	if strings.TrimSpace(userID) == "" {
		return spyerr.InvalidArgument("user ID is required")
	}
	return nil
}
