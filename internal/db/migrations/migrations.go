// Package migrations holds the ordered schema migrations of the settings database.
package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/db/migrations/internal/m20221214083707"
)

// List returns all migrations in the order they must be applied.
func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID:       m20221214083707.ID,
			Migrate:  m20221214083707.Migrate,
			Rollback: m20221214083707.Rollback,
		},
	}
}

// Migrate applies every pending migration.
func Migrate(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, List()).Migrate() //nolint:wrapcheck
}

// RollbackLast reverts the most recently applied migration.
func RollbackLast(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, List()).RollbackLast() //nolint:wrapcheck
}
