package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the SQLite store migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if path == "" {
				path = cfg.SQLite.Path
			}

			db, err := openMigratedSQLite(cmd.Context(), path)
			if err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("sqlite store is up to date")
			return db.Close()
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "SQLite database file, defaults to SQLITE_PATH")
	return cmd
}
