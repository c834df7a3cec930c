package main

import (
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spot-the-spy/internal/config"
	"github.com/KirkDiggler/spot-the-spy/internal/handlers/discord"
)

func newCommandsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "Manage the bot's slash commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "register",
		Short: "Overwrite the slash commands in DISCORD_GUILD_ID, or globally",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dg, err := commandSession()
			if err != nil {
				return err
			}
			_, err = discord.RegisterCommands(cmd.Context(), dg, cfg.Discord.AppID, cfg.Discord.GuildID)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Remove every slash command of the application",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dg, err := commandSession()
			if err != nil {
				return err
			}
			return discord.DeleteCommands(cmd.Context(), dg, cfg.Discord.AppID, cfg.Discord.GuildID)
		},
	})

	return cmd
}

// commandSession creates a REST-only session, no gateway connection is needed
// to manage commands
func commandSession() (*config.Config, *discordgo.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.RequireDiscord(); err != nil {
		return nil, nil, err
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, nil, err
	}
	return cfg, dg, nil
}
