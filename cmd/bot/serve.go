package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/spot-the-spy/internal/config"
	"github.com/KirkDiggler/spot-the-spy/internal/discord/core"
	"github.com/KirkDiggler/spot-the-spy/internal/discord/middleware"
	"github.com/KirkDiggler/spot-the-spy/internal/dispatch"
	"github.com/KirkDiggler/spot-the-spy/internal/handlers/discord"
	"github.com/KirkDiggler/spot-the-spy/internal/metrics"
	discordnotifier "github.com/KirkDiggler/spot-the-spy/internal/notifications/discord"
	"github.com/KirkDiggler/spot-the-spy/internal/ops"
	"github.com/KirkDiggler/spot-the-spy/internal/services"
)

func newServeCommand() *cobra.Command {
	var registerCommands bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Connect to Discord and run the bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.RequireDiscord(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, registerCommands)
		},
	}

	cmd.Flags().BoolVar(&registerCommands, "register-commands", true, "Overwrite the slash commands before connecting")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, registerCommands bool) error {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	catalog, err := newCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.NewPrometheus(registry)
	if err != nil {
		return err
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	provider := services.NewProvider(&services.ProviderConfig{
		GameRepository:         st.Games,
		ConfirmationRepository: st.Confirmations,
		Catalog:                catalog,
		Notifier:               discordnotifier.NewNotifier(dg),
		Metrics:                recorder,
	})

	dispatcher := dispatch.New(&dispatch.Config{
		Lobby:   provider.LobbyService,
		Game:    provider.GameService,
		Metrics: recorder,
	})

	handler := discord.NewHandler(&discord.HandlerConfig{
		Dispatcher: dispatcher,
		Lobby:      provider.LobbyService,
	})

	pipeline := core.NewPipeline()
	pipeline.Use(
		middleware.RecoveryMiddleware(),
		middleware.LoggingMiddleware(),
	)
	if cfg.RateLimit.Requests > 0 {
		var limits middleware.RateLimitStore = middleware.NewMemoryRateLimitStore()
		if st.Redis != nil {
			limits = middleware.NewRedisRateLimitStore(st.Redis, cfg.Redis.KeyPrefix)
		}
		pipeline.Use(middleware.UserRateLimitMiddleware(cfg.RateLimit.Requests, cfg.RateLimit.Window, limits))
	}
	pipeline.Register(handler.Router().Build())

	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if err := pipeline.Execute(ctx, s, i); err != nil {
			log.Error().Err(err).Str("interaction_id", i.ID).Msg("failed to answer interaction")
		}
	})
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("connected to discord")
	})

	if err := dg.Open(); err != nil {
		return err
	}
	defer func() {
		if err := dg.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close discord connection")
		}
	}()

	if registerCommands {
		if _, err := discord.RegisterCommands(ctx, dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
			return err
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return ops.Serve(groupCtx, cfg.Ops.Addr, ops.Router(ops.RouterOptions{
			Store:             st.Games,
			Gatherer:          registry,
			RequestsPerMinute: 120,
		}))
	})

	log.Info().Msg("bot is running, press CTRL-C to exit")
	<-groupCtx.Done()
	log.Info().Msg("shutting down")

	return group.Wait()
}
