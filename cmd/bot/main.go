package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	// A missing .env file is fine, the environment may already be set
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env file")
	}

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "spot-the-spy",
		Short:         "Discord bot for the Spot the Spy party game",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newCommandsCommand())
	cmd.AddCommand(newMigrateCommand())
	return cmd
}
