// Package models contains database model definitions.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// Setting is a single site setting value owned by a user.
// The triple (UploadedByUserID, Group, Name) is unique.
type Setting struct {
	// ID is the unique identifier for the setting row.
	ID uint64 `gorm:"primaryKey"`
	// UploadedByUserID is the owner of the value. It is cleared, not cascaded, when the owner is deleted.
	UploadedByUserID *uint64 `gorm:"column:uploaded_by_user_id;uniqueIndex:idx_settings_owner_group_name"`
	// UploadedBy is the owning user (enforced with a foreign key constraint).
	UploadedBy *User `gorm:"foreignKey:UploadedByUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	// Group is the namespace the setting belongs to (e.g. "home_page").
	Group string `gorm:"column:group;size:100;not null;uniqueIndex:idx_settings_owner_group_name"`
	// Name is the setting key inside its group.
	Name string `gorm:"column:name;size:100;not null;uniqueIndex:idx_settings_owner_group_name"`
	// Payload is the JSON encoded value, NULL when unset.
	Payload datatypes.JSON `gorm:"column:payload"`
	// CreatedAt is the timestamp when the setting was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the setting was last written (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Setting model.
func (Setting) TableName() string {
	return "settings"
}
