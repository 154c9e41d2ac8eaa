// Package homepage serves the form editing the home page settings of the signed in user.
package homepage

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/config"
	"github.com/sitesettings/sitesettings/internal/db/controller/setting"
	"github.com/sitesettings/sitesettings/internal/db/controller/sitepage"
	"github.com/sitesettings/sitesettings/internal/db/models"
	"github.com/sitesettings/sitesettings/internal/settings"
	"github.com/sitesettings/sitesettings/internal/web/handler"
	"github.com/sitesettings/sitesettings/internal/web/handler/settings/form"
	"github.com/sitesettings/sitesettings/internal/web/handler/site"
	"github.com/sitesettings/sitesettings/internal/web/navigation"
)

const (
	// Path is the path to the home page settings.
	Path = "/settings/home-page"

	template = "settings/home-page"
)

// Service is the home page settings handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the home page settings handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the home page settings handler.
func (s *Service) Init(app fiber.Router, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get renders the form with the stored values.
func (s *Service) Get(c *fiber.Ctx) error {
	u, ok := handler.CurrentUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	values, err := setting.LoadPayloads(s.db, u.ID, settings.GroupHomePage)
	if err != nil {
		log.Error().Err(err).Uint64("owner", u.ID).Msg("failed to load home page settings")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load settings")
	}

	return s.render(c, u, values, nil, fiber.Map{})
}

// Post validates and stores the whole form. Nothing is stored when any field is invalid.
func (s *Service) Post(c *fiber.Ctx) error {
	u, ok := handler.CurrentUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	entries, err := form.Parse(settings.GroupHomePage, func(key string) string { return c.FormValue(key) })
	if err != nil {
		return err
	}

	if err = setting.UpsertMany(s.db, u.ID, settings.GroupHomePage, entries); err != nil {
		if errors.Is(err, settings.ErrValidation) {
			log.Debug().Err(err).Uint64("owner", u.ID).Msg("home page settings rejected")

			return s.render(c.Status(fiber.StatusBadRequest), u, entries, form.Messages(err), fiber.Map{
				"Error": "Please correct the highlighted fields.",
			})
		}

		log.Error().Err(err).Uint64("owner", u.ID).Msg("failed to save home page settings")

		return s.render(c.Status(fiber.StatusInternalServerError), u, entries, nil, fiber.Map{
			"Error": "Failed to save settings",
		})
	}

	log.Info().Str("username", u.Username).Msg("home page settings saved")

	return s.render(c, u, entries, nil, fiber.Map{
		"Success": "Settings saved successfully",
	})
}

func (s *Service) render(c *fiber.Ctx, u *models.User, values map[settings.Name]any,
	messages map[settings.Name]string, data fiber.Map,
) error {
	f, err := form.Build(settings.GroupHomePage, values, messages, nil)
	if err != nil {
		return err
	}

	content := sitepage.FromHomePage(values)
	homePageURL := site.URL(s.cfg.Webserver.URL, u.Username)

	data["Title"] = s.cfg.Title
	data["Form"] = f
	data["Navigation"] = navigation.ForSettings("home-page")
	data["CurrentUser"] = u
	data["HomePageURL"] = homePageURL

	if content.CompanyName != "" {
		data["Preview"] = &content
	}

	// link only to what is stored
	if _, failed := data["Error"]; !failed && content.Published() {
		data["SiteURL"] = homePageURL
	}

	return c.Render(template, data, handler.BaseLayout)
}
