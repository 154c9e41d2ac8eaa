// Package logout ends the session of the signed in user.
package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/sitesettings/sitesettings/internal/web/handler/login"
	"github.com/sitesettings/sitesettings/internal/web/session"
)

// Path is the path of the logout route.
const Path = "/logout"

// Service is the logout handler service.
type Service struct{}

// Handler is the logout handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the logout routes.
func (s *Service) Init(app fiber.Router) {
	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)
}

// Logout handles user logout by clearing the session.
func (s *Service) Logout(c *fiber.Ctx) error {
	if sessionID := c.Cookies(session.CookieName); sessionID != "" {
		if err := session.Delete(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	c.ClearCookie(session.CookieName)

	return c.Redirect(login.Path)
}
