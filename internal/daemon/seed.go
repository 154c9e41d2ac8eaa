package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/config"
	"github.com/sitesettings/sitesettings/internal/db/controller/user"
)

// seed creates the configured admin account when the user table is empty.
func seed(cfg *config.Config, db *gorm.DB) error {
	count, err := user.Count(db)
	if err != nil {
		return err
	}

	if count > 0 || cfg.Admin.Username == "" {
		return nil
	}

	u, err := user.Create(db, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email)
	if err != nil {
		return err
	}

	log.Warn().Str("username", u.Username).Msg("created initial admin account, change its password")

	return nil
}
