package services

import (
	"github.com/KirkDiggler/spot-the-spy/internal/clients/locations"
	"github.com/KirkDiggler/spot-the-spy/internal/metrics"
	"github.com/KirkDiggler/spot-the-spy/internal/notifications"
	"github.com/KirkDiggler/spot-the-spy/internal/repositories/confirmations"
	"github.com/KirkDiggler/spot-the-spy/internal/repositories/games"
	"github.com/KirkDiggler/spot-the-spy/internal/services/assignment"
	gameService "github.com/KirkDiggler/spot-the-spy/internal/services/game"
	lobbyService "github.com/KirkDiggler/spot-the-spy/internal/services/lobby"
)

// Provider holds all service instances
type Provider struct {
	LobbyService lobbyService.Service
	GameService  gameService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	GameRepository         games.Repository
	ConfirmationRepository confirmations.Repository
	Catalog                locations.Client       // Required
	Notifier               notifications.Notifier // Required
	Engine                 assignment.Engine
	Metrics                metrics.Recorder
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	gameRepo := cfg.GameRepository
	if gameRepo == nil {
		gameRepo = games.NewInMemoryRepository()
	}

	confirmationRepo := cfg.ConfirmationRepository
	if confirmationRepo == nil {
		confirmationRepo = confirmations.NewInMemoryRepository()
	}

	lobby := lobbyService.NewService(&lobbyService.ServiceConfig{
		Repository: gameRepo,
		Notifier:   cfg.Notifier,
		Metrics:    cfg.Metrics,
	})

	game := gameService.NewService(&gameService.ServiceConfig{
		Repository:    gameRepo,
		Confirmations: confirmationRepo,
		Catalog:       cfg.Catalog,
		Notifier:      cfg.Notifier,
		Engine:        cfg.Engine,
		Metrics:       cfg.Metrics,
	})

	return &Provider{
		LobbyService: lobby,
		GameService:  game,
	}
}
