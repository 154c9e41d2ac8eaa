package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sitesettings/sitesettings/internal/daemon"
	"github.com/sitesettings/sitesettings/internal/db/controller/user"
)

func init() { //nolint: gochecknoinits
	userAddCmd.Flags().StringVarP(&newUsername, "username", "u", "", "Login name of the new user")
	userAddCmd.Flags().StringVarP(&newPassword, "password", "p", "", "Password of the new user")
	userAddCmd.Flags().StringVarP(&newEmail, "email", "e", "", "Email address of the new user")

	_ = userAddCmd.MarkFlagRequired("username")
	_ = userAddCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)
}

var (
	newUsername string
	newPassword string
	newEmail    string

	userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage admin panel accounts",
	}

	userAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Create a new active user",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			db, err := daemon.Open(&cfg)
			if err != nil {
				return err
			}

			u, err := user.Create(db, newUsername, newPassword, newEmail)
			if err != nil {
				return err
			}

			log.Info().Uint64("id", u.ID).Str("username", u.Username).Msg("user created")

			return nil
		},
	}
)
