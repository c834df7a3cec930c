package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/spot-the-spy/internal/clients/locations"
	"github.com/KirkDiggler/spot-the-spy/internal/config"
	"github.com/KirkDiggler/spot-the-spy/internal/dice"
	"github.com/KirkDiggler/spot-the-spy/internal/repositories/confirmations"
	"github.com/KirkDiggler/spot-the-spy/internal/repositories/games"
)

// loadConfig parses the environment and configures the global logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := setupLogging(cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(cfg config.LogConfig) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL '%s': %w", cfg.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return nil
}

// store bundles the repositories of the configured backend
type store struct {
	Games         games.Repository
	Confirmations confirmations.Repository

	// Redis is set when the backend is Redis, and shared with the rate limiter
	Redis redis.UniversalClient

	closers []func() error
}

func (s *store) Close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			log.Warn().Err(err).Msg("failed to close store")
		}
	}
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis store")

		return &store{
			Games: games.NewRedisRepository(&games.RedisRepoConfig{
				Client:    client,
				KeyPrefix: cfg.Redis.KeyPrefix,
			}),
			Confirmations: confirmations.NewRedisRepository(&confirmations.RedisRepoConfig{
				Client:    client,
				KeyPrefix: cfg.Redis.KeyPrefix,
			}),
			Redis:   client,
			closers: []func() error{client.Close},
		}, nil

	case config.StoreSQLite:
		db, err := openMigratedSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.SQLite.Path).Msg("using sqlite store")

		// Prompts only live for a few seconds, so they stay in process
		return &store{
			Games:         games.NewSQLiteRepository(db),
			Confirmations: confirmations.NewInMemoryRepository(),
			closers:       []func() error{db.Close},
		}, nil

	default:
		log.Warn().Msg("using in-memory store, games are lost on restart")
		return &store{
			Games:         games.NewInMemoryRepository(),
			Confirmations: confirmations.NewInMemoryRepository(),
		}, nil
	}
}

func openMigratedSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := games.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := games.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// newCatalog picks the remote catalog when a URL is configured and the
// static one otherwise
func newCatalog(cfg config.CatalogConfig) (locations.Client, error) {
	if cfg.URL != "" {
		log.Info().Str("url", cfg.URL).Msg("drawing locations from remote catalog")
		return locations.NewHTTP(&locations.HTTPConfig{
			URL:     cfg.URL,
			Timeout: cfg.Timeout,
		})
	}

	catalog, err := locations.LoadCatalogFile(cfg.File)
	if err != nil {
		return nil, err
	}
	return locations.NewStatic(&locations.StaticConfig{
		Catalog: catalog,
		Theme:   cfg.Theme,
		Roller:  dice.NewRandomRoller(),
	})
}
