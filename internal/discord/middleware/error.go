package middleware

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/spot-the-spy/internal/discord/core"
)

// RecoveryMiddleware turns a panicking handler into an ephemeral apology
func RecoveryMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error().
						Str("panic", fmt.Sprint(r)).
						Str("user_id", ctx.UserID).
						Str("command", ctx.CommandName()).
						Str("custom_id", ctx.RawCustomID()).
						Msg("panic recovered in handler")

					result = &core.HandlerResult{
						Response: core.NewEphemeralResponse("An unexpected error occurred. Please try again later."),
					}
					err = nil
				}
			}()

			return next.Handle(ctx)
		})
	}
}
