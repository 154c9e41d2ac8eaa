package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sitesettings/sitesettings/internal/daemon"
	"github.com/sitesettings/sitesettings/internal/db/migrations"
)

func init() { //nolint: gochecknoinits
	migrateCmd.Flags().BoolVar(&rollback, "rollback", false, "Revert the last applied migration instead")

	rootCmd.AddCommand(migrateCmd)
}

var (
	rollback bool

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if rollback {
				if err := daemon.Rollback(&cfg); err != nil {
					return err
				}

				log.Info().Msg("last migration reverted")

				return nil
			}

			if _, err := daemon.Open(&cfg); err != nil {
				return err
			}

			log.Info().Int("migrations", len(migrations.List())).Msg("database is up to date")

			return nil
		},
	}
)
