// Package m20221214083707 creates the users and settings tables.
package m20221214083707

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ID identifies this migration in the migrations table.
const ID = "20221214083707"

// User is the users table as created by this migration.
type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Active    bool
	Username  string `gorm:"unique;size:100;not null"`
	Email     string `gorm:"size:255;not null"`
	Password  string `gorm:"size:255"`
	FirstName string `gorm:"size:100"`
	LastName  string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

// Setting is the settings table as created by this migration.
type Setting struct {
	ID               uint64         `gorm:"primaryKey"`
	UploadedByUserID *uint64        `gorm:"column:uploaded_by_user_id;uniqueIndex:idx_settings_owner_group_name"`
	UploadedBy       *User          `gorm:"foreignKey:UploadedByUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Group            string         `gorm:"column:group;size:100;not null;uniqueIndex:idx_settings_owner_group_name"`
	Name             string         `gorm:"column:name;size:100;not null;uniqueIndex:idx_settings_owner_group_name"`
	Payload          datatypes.JSON `gorm:"column:payload"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Setting) TableName() string {
	return "settings"
}

func Migrate(tx *gorm.DB) error {
	return tx.AutoMigrate(&User{}, &Setting{})
}

func Rollback(tx *gorm.DB) error {
	return tx.Migrator().DropTable(&Setting{}, &User{})
}
