// Package login provides the username and password sign in page.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/config"
	"github.com/sitesettings/sitesettings/internal/db/controller/user"
	"github.com/sitesettings/sitesettings/internal/db/models"
	"github.com/sitesettings/sitesettings/internal/web/handler"
	"github.com/sitesettings/sitesettings/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	template = "login"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the login handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the login handler.
func (s *Service) Init(app fiber.Router, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(template, fiber.Map{
		"Title": s.cfg.Title,
	})
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(models.User)

	if err := c.BodyParser(form); err != nil {
		return s.fail(c, fiber.StatusBadRequest, "Invalid form data")
	}

	u, err := s.authenticate(form.Username, form.Password)
	if err != nil {
		log.Info().Err(err).Str("username", form.Username).Str("ip", c.IP()).Msg("login failed")

		return s.fail(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")

		return s.fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	userSession := &session.Data{UserID: u.ID}
	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return s.fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   s.cfg.Webserver.CookieSecure && !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	log.Info().Str("username", u.Username).Msg("user logged in")

	return c.Redirect(handler.HomePath)
}

func (s *Service) authenticate(username, password string) (*models.User, error) {
	u, err := user.GetByUsername(s.db, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if !u.Active {
		return nil, ErrInactiveUser
	}

	if !u.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).Render(template, fiber.Map{
		"Title": s.cfg.Title,
		"Error": msg,
	})
}
