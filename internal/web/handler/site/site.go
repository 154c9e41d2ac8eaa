// Package site renders the public home page of a user from their settings.
package site

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/config"
	"github.com/sitesettings/sitesettings/internal/db/controller/sitepage"
	"github.com/sitesettings/sitesettings/internal/db/controller/user"
	"github.com/sitesettings/sitesettings/internal/web/handler"
)

const (
	// Prefix is the public path every site lives under.
	Prefix = "/site/"

	template = "site/home"
)

// URL returns the public address of the user's site.
func URL(baseURL, username string) string {
	return strings.TrimRight(baseURL, "/") + Prefix + url.PathEscape(username)
}

// Domain returns URL without its scheme, as shown on the general settings page.
func Domain(baseURL, username string) string {
	u := URL(baseURL, username)
	if i := strings.Index(u, "://"); i >= 0 {
		return u[i+3:]
	}

	return u
}

// Service is the public site handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	db      *gorm.DB
	fileURL func(ref string) string
}

// Handler is the public site handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers GET /site/:username. fileURL resolves logo and favicon references.
func (s *Service) Init(app fiber.Router, cfg *config.Config, db *gorm.DB, fileURL func(ref string) string) error {
	if app == nil || cfg == nil || db == nil || fileURL == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.db = db
	s.fileURL = fileURL

	app.Get(Prefix+":username", s.Get)

	return nil
}

// Get renders the page or answers 404 while it is switched off or has no company name.
func (s *Service) Get(c *fiber.Ctx) error {
	u, err := user.GetByUsername(s.db, c.Params("username"))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return fiber.ErrNotFound
		}

		log.Error().Err(err).Msg("failed to load site owner")

		return fiber.ErrInternalServerError
	}

	if !u.Active {
		return fiber.ErrNotFound
	}

	var content sitepage.Content
	if err = content.Load(s.db, u.ID); err != nil {
		log.Error().Err(err).Uint64("owner", u.ID).Msg("failed to load site settings")

		return fiber.ErrInternalServerError
	}

	if !content.Published() {
		return fiber.ErrNotFound
	}

	return c.Render(template, fiber.Map{
		"Title":      content.CompanyName,
		"Content":    &content,
		"LogoURL":    s.resolve(content.Logo),
		"FaviconURL": s.resolve(content.Favicon),
	})
}

func (s *Service) resolve(ref string) string {
	if ref == "" {
		return ""
	}

	return s.fileURL(ref)
}
