package middleware

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/spot-the-spy/internal/discord/core"
)

// LoggingMiddleware logs each interaction with how long its handler took
func LoggingMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			start := time.Now()
			result, err := next.Handle(ctx)

			event := log.Debug()
			if err != nil {
				event = log.Warn().Err(err)
			}
			withInteraction(event, ctx).
				Dur("duration", time.Since(start)).
				Msg("interaction handled")

			return result, err
		})
	}
}

// withInteraction adds the fields that identify an interaction
func withInteraction(event *zerolog.Event, ctx *core.InteractionContext) *zerolog.Event {
	event = event.
		Str("user_id", ctx.UserID).
		Str("guild_id", ctx.GuildID)

	if ctx.IsCommand() {
		return event.Str("interaction_type", "command").Str("command", ctx.CommandName())
	}
	if ctx.IsComponent() {
		event = event.Str("interaction_type", "component")
		if parsed, err := ctx.CustomID(); err == nil {
			return event.Str("action", parsed.Action).Str("target", parsed.Target)
		}
		return event.Str("custom_id", ctx.RawCustomID())
	}
	return event
}
