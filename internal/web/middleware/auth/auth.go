package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/db/controller/user"
	"github.com/sitesettings/sitesettings/internal/db/models"
	"github.com/sitesettings/sitesettings/internal/web/handler"
	"github.com/sitesettings/sitesettings/internal/web/handler/login"
	"github.com/sitesettings/sitesettings/internal/web/session"
)

// New returns the middleware. Paths starting with one of publicPrefixes pass without a session.
func New(db *gorm.DB, publicPrefixes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := strings.ToLower(c.Path())

		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(p, prefix) {
				return c.Next()
			}
		}

		isLoginPage := strings.HasPrefix(p, login.Path)

		u := resolve(db, c.Cookies(session.CookieName))
		if u == nil {
			if isLoginPage {
				return c.Next()
			}

			return c.Redirect(login.Path)
		}

		if isLoginPage {
			return c.Redirect(handler.HomePath)
		}

		c.Locals(handler.LocalsUser, u)

		return c.Next()
	}
}

// resolve returns the active user of the session or nil.
func resolve(db *gorm.DB, sessionID string) *models.User {
	var data session.Data
	if err := data.Read(sessionID); err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			log.Error().Err(err).Msg("failed to read session")
		}

		return nil
	}

	u, err := user.GetByID(db, data.UserID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			log.Error().Err(err).Uint64("user_id", data.UserID).Msg("failed to load session user")
		}

		return nil
	}

	if !u.Active {
		return nil
	}

	return u
}
