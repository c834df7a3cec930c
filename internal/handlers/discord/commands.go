package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

// Slash command names and options
const (
	CommandStart  = "start"
	CommandCancel = "cancel"

	OptionPlayers = "players"
)

// CommandAPI is the part of *discordgo.Session used to manage slash commands
type CommandAPI interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Commands returns the slash commands the bot answers
func Commands() []*discordgo.ApplicationCommand {
	minPlayers := float64(entities.MinPlayers)

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandStart,
			Description: "Start a new game of Spot the Spy",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        OptionPlayers,
					Description: fmt.Sprintf("Maximum number of players (%d-%d)", entities.MinPlayers, entities.MaxPlayers),
					Required:    true,
					MinValue:    &minPlayers,
					MaxValue:    float64(entities.MaxPlayers),
				},
			},
		},
		{
			Name:        CommandCancel,
			Description: "Cancel the game you are hosting",
		},
	}
}

// RegisterCommands replaces the application's commands in guildID, or the
// global commands when guildID is empty. Overwriting makes it safe to run on
// every deploy.
func RegisterCommands(ctx context.Context, api CommandAPI, appID, guildID string) ([]*discordgo.ApplicationCommand, error) {
	if appID == "" {
		return nil, spyerr.InvalidArgument("application ID is required")
	}

	registered, err := api.ApplicationCommandBulkOverwrite(appID, guildID, Commands(), discordgo.WithContext(ctx))
	if err != nil {
		return nil, spyerr.Unavailable(err, "failed to register commands").
			WithMeta("guild_id", guildID)
	}

	for _, cmd := range registered {
		log.Info().
			Str("command", cmd.Name).
			Str("command_id", cmd.ID).
			Str("guild_id", guildID).
			Msg("registered command")
	}
	return registered, nil
}

// DeleteCommands removes every command the application registered in guildID
func DeleteCommands(ctx context.Context, api CommandAPI, appID, guildID string) error {
	if appID == "" {
		return spyerr.InvalidArgument("application ID is required")
	}

	_, err := api.ApplicationCommandBulkOverwrite(appID, guildID, []*discordgo.ApplicationCommand{}, discordgo.WithContext(ctx))
	if err != nil {
		return spyerr.Unavailable(err, "failed to delete commands").
			WithMeta("guild_id", guildID)
	}

	log.Info().Str("guild_id", guildID).Msg("deleted commands")
	return nil
}
