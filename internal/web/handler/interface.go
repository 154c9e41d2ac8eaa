// Package handler holds what the page handlers share.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/config"
	"github.com/sitesettings/sitesettings/internal/db/models"
)

// ErrNilDependency is returned by Init when app, cfg or db is nil.
var ErrNilDependency = errors.New(ErrNilACDFatalLogMsg)

// Service is the interface for a web handler service.
type Service interface {
	Init(app fiber.Router, cfg *config.Config, db *gorm.DB) error
}

// CurrentUser returns the user the auth middleware resolved for this request.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	u, ok := c.Locals(LocalsUser).(*models.User)

	return u, ok && u != nil
}
