package game

//go:generate mockgen -destination=mock/mock_service.go -package=mockgame -source=service.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/spot-the-spy/internal/clients/locations"
	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	"github.com/KirkDiggler/spot-the-spy/internal/metrics"
	"github.com/KirkDiggler/spot-the-spy/internal/notifications"
	"github.com/KirkDiggler/spot-the-spy/internal/repositories/confirmations"
	"github.com/KirkDiggler/spot-the-spy/internal/repositories/games"
	"github.com/KirkDiggler/spot-the-spy/internal/services/assignment"
	"github.com/KirkDiggler/spot-the-spy/internal/uuid"
)

// maxStartAttempts bounds how often a start is retried when the roster
// changes between reading it and committing the assignment
const maxStartAttempts = 3

// Service drives a game from start to teardown
type Service interface {
	// StartGame deals roles and locations and moves the game to running
	StartGame(ctx context.Context, gameID, requesterID string) (*StartResult, error)

	// RequestCancel asks the host to confirm canceling the game
	RequestCancel(ctx context.Context, gameID, requesterID string) (*ConfirmationPrompt, error)

	// RequestEnd asks the host to confirm ending the game
	RequestEnd(ctx context.Context, gameID, requesterID string) (*ConfirmationPrompt, error)

	// ConfirmAgree resolves a prompt by closing the game
	ConfirmAgree(ctx context.Context, confirmationID, requesterID string) (*CloseResult, error)

	// ConfirmRefuse resolves a prompt by restoring the game's prior state
	ConfirmRefuse(ctx context.Context, confirmationID, requesterID string) (*RefuseResult, error)

	// RevealRole returns the caller's secret for a running game
	RevealRole(ctx context.Context, gameID, userID string) (*RoleDisclosure, error)
}

// StartResult describes a game that just started
type StartResult struct {
	Game             *entities.GameSession
	Players          []string
	DeliveryFailures []notifications.DeliveryFailure
}

// ConfirmationPrompt is shown privately to the host who asked to close a game
type ConfirmationPrompt struct {
	ID     string
	GameID string
	Kind   entities.ConfirmationKind

	// SupersededID is the prompt this one replaced, if any
	SupersededID string
}

// CloseResult describes a game that was torn down
type CloseResult struct {
	GameID           string
	HostID           string
	Kind             entities.ConfirmationKind
	DeliveryFailures []notifications.DeliveryFailure
}

// RefuseResult describes a prompt that was declined
type RefuseResult struct {
	GameID        string
	Kind          entities.ConfirmationKind
	RestoredState entities.SessionState
}

// RoleDisclosure is the private information one player receives
type RoleDisclosure struct {
	GameID string
	UserID string
	Role   entities.Role

	// Locations is what the role may see: every location for a Spy, three
	// for a Mole, the selected one for an Investigator.
	Locations []string

	// FellowSpies lists the other Spies, only set for a Spy
	FellowSpies []string
}

type service struct {
	repository    games.Repository
	confirmations confirmations.Repository
	engine        assignment.Engine
	catalog       locations.Client
	notifier      notifications.Notifier
	idGenerator   uuid.Generator
	recorder      metrics.Recorder
	now           func() time.Time
	starts        *gameClaims
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    games.Repository         // Required
	Confirmations confirmations.Repository // Required
	Catalog       locations.Client         // Required
	Notifier      notifications.Notifier   // Required
	Engine        assignment.Engine        // Optional, defaults to a random engine
	IDGenerator   uuid.Generator           // Optional, used for confirmation ids
	Metrics       metrics.Recorder         // Optional
	Clock         func() time.Time         // Optional
}

// NewService creates a new game lifecycle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Confirmations == nil {
		panic("confirmation repository is required")
	}
	if cfg.Catalog == nil {
		panic("location catalog is required")
	}
	if cfg.Notifier == nil {
		panic("notifier is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		confirmations: cfg.Confirmations,
		catalog:       cfg.Catalog,
		notifier:      cfg.Notifier,
		engine:        cfg.Engine,
		idGenerator:   cfg.IDGenerator,
		recorder:      cfg.Metrics,
		now:           cfg.Clock,
		starts:        newGameClaims(),
	}
	if svc.engine == nil {
		svc.engine = assignment.NewEngine(nil)
	}
	if svc.idGenerator == nil {
		svc.idGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.recorder == nil {
		svc.recorder = metrics.Noop()
	}
	if svc.now == nil {
		svc.now = time.Now
	}

	return svc
}
