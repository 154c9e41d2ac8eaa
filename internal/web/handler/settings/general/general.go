// Package general serves the form editing the general settings (logo, favicon) of the signed in user.
package general

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/config"
	"github.com/sitesettings/sitesettings/internal/db/controller/setting"
	"github.com/sitesettings/sitesettings/internal/db/models"
	"github.com/sitesettings/sitesettings/internal/settings"
	"github.com/sitesettings/sitesettings/internal/upload"
	"github.com/sitesettings/sitesettings/internal/web/handler"
	"github.com/sitesettings/sitesettings/internal/web/handler/settings/form"
	"github.com/sitesettings/sitesettings/internal/web/handler/site"
	"github.com/sitesettings/sitesettings/internal/web/navigation"
)

const (
	// Path is the path to the general settings.
	Path = "/settings/general"

	template = "settings/general"
)

// FileStore keeps the uploaded files.
type FileStore interface {
	Save(fh *multipart.FileHeader) (string, error)
	Remove(ref string) error
	URL(ref string) string
}

// Domains is the read-only domain section of the form.
type Domains struct {
	// System is the public page address assigned from the username, without scheme.
	System string
	// Custom is a domain pointed at the page through DNS. Setting one up is done by support,
	// so the form only ever shows it.
	Custom string
}

// Service is the general settings handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	db    *gorm.DB
	files FileStore
}

// Handler is the general settings handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the general settings handler.
func (s *Service) Init(app fiber.Router, cfg *config.Config, db *gorm.DB, files FileStore) error {
	if app == nil || cfg == nil || db == nil || files == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.db = db
	s.files = files

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get renders the form with the stored files.
func (s *Service) Get(c *fiber.Ctx) error {
	u, ok := handler.CurrentUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	values, err := setting.LoadPayloads(s.db, u.ID, settings.GroupGeneral)
	if err != nil {
		log.Error().Err(err).Uint64("owner", u.ID).Msg("failed to load general settings")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load settings")
	}

	return s.render(c, u, values, nil, fiber.Map{})
}

// Post stores new uploads and removals. A file field left empty keeps its current file.
func (s *Service) Post(c *fiber.Ctx) error {
	u, ok := handler.CurrentUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	current, err := setting.LoadPayloads(s.db, u.ID, settings.GroupGeneral)
	if err != nil {
		log.Error().Err(err).Uint64("owner", u.ID).Msg("failed to load general settings")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load settings")
	}

	fields, err := settings.FieldsOf(settings.GroupGeneral)
	if err != nil {
		return err
	}

	var (
		entries  = make(map[settings.Name]any, len(fields))
		messages = make(map[settings.Name]string)
		stored   []string // new files, dropped again when saving fails
		replaced []string // old files, dropped once saving succeeded
	)

	for _, f := range fields {
		old, _ := current[f.Key].(string)

		if fh, errFile := c.FormFile(string(f.Key)); errFile == nil && fh.Size > 0 {
			ref, errSave := s.files.Save(fh)
			if errSave != nil {
				log.Debug().Err(errSave).Str("field", string(f.Key)).Msg("upload rejected")
				messages[f.Key] = uploadMessage(errSave)

				continue
			}

			stored = append(stored, ref)
			entries[f.Key] = ref
		} else if form.Checked(c.FormValue(form.RemovePrefix + string(f.Key))) {
			entries[f.Key] = nil
		} else {
			continue
		}

		if old != "" {
			replaced = append(replaced, old)
		}
	}

	if len(messages) > 0 {
		s.removeFiles(stored)

		return s.render(c.Status(fiber.StatusBadRequest), u, current, messages, fiber.Map{
			"Error": "Please correct the highlighted fields.",
		})
	}

	if err = setting.UpsertMany(s.db, u.ID, settings.GroupGeneral, entries); err != nil {
		s.removeFiles(stored)

		if errors.Is(err, settings.ErrValidation) {
			return s.render(c.Status(fiber.StatusBadRequest), u, current, form.Messages(err), fiber.Map{
				"Error": "Please correct the highlighted fields.",
			})
		}

		log.Error().Err(err).Uint64("owner", u.ID).Msg("failed to save general settings")

		return s.render(c.Status(fiber.StatusInternalServerError), u, current, nil, fiber.Map{
			"Error": "Failed to save settings",
		})
	}

	s.removeFiles(replaced)

	for name, v := range entries {
		current[name] = v
	}

	log.Info().Str("username", u.Username).Int("changed", len(entries)).Msg("general settings saved")

	return s.render(c, u, current, nil, fiber.Map{
		"Success": "Settings saved successfully",
	})
}

func (s *Service) removeFiles(refs []string) {
	for _, ref := range refs {
		if err := s.files.Remove(ref); err != nil {
			log.Warn().Err(err).Str("file", ref).Msg("failed to remove file")
		}
	}
}

func (s *Service) render(c *fiber.Ctx, u *models.User, values map[settings.Name]any,
	messages map[settings.Name]string, data fiber.Map,
) error {
	f, err := form.Build(settings.GroupGeneral, values, messages, s.files.URL)
	if err != nil {
		return err
	}

	data["Title"] = s.cfg.Title
	data["Form"] = f
	data["Navigation"] = navigation.ForSettings("general")
	data["CurrentUser"] = u
	data["Domains"] = Domains{System: site.Domain(s.cfg.Webserver.URL, u.Username)}

	return c.Render(template, data, handler.BaseLayout)
}

func uploadMessage(err error) string {
	switch {
	case errors.Is(err, upload.ErrExtension):
		return "Only PNG, JPG, GIF, SVG, ICO and WEBP images are allowed."
	case errors.Is(err, upload.ErrTooLarge):
		return "The file is too large."
	case errors.Is(err, upload.ErrEmpty):
		return "The file is empty."
	default:
		return "The file could not be stored."
	}
}
