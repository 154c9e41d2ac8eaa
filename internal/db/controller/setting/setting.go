// Package setting provides owner scoped read and write access to site settings.
//
// Every write is checked against the settings schema before the database is touched:
// a value is never persisted for a name outside its group or failing its field constraints.
// Concurrent writes to the same key are last-write-wins.
package setting

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sitesettings/sitesettings/internal/db/models"
	"github.com/sitesettings/sitesettings/internal/settings"
)

const (
	ownerColumn = "uploaded_by_user_id"
	groupColumn = "group"
	nameColumn  = "name"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrOwnerEmpty is returned when no owner id is given.
	ErrOwnerEmpty = errors.New("setting owner cannot be empty")
	// ErrPersistence wraps every failure reported by the database.
	ErrPersistence = errors.New("settings persistence failed")
)

func persistenceError(err error) error {
	if err == nil || errors.Is(err, ErrPersistence) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

func checkCall(db *gorm.DB, ownerID uint64) error {
	if db == nil {
		return ErrDBNil
	}

	if ownerID == 0 {
		return ErrOwnerEmpty
	}

	return nil
}

// LoadGroup returns all settings of the owner in the group keyed by name.
// Settings never saved by the owner are absent from the result.
func LoadGroup(db *gorm.DB, ownerID uint64, group settings.Group) (map[settings.Name]models.Setting, error) {
	if err := checkCall(db, ownerID); err != nil {
		return nil, err
	}

	if !group.Valid() {
		return nil, fmt.Errorf("%w: %q", settings.ErrUnknownGroup, group)
	}

	var rows []models.Setting

	result := db.Where(map[string]any{
		ownerColumn: ownerID,
		groupColumn: string(group),
	}).Find(&rows)
	if result.Error != nil {
		return nil, persistenceError(result.Error)
	}

	out := make(map[settings.Name]models.Setting, len(rows))
	for _, row := range rows {
		out[settings.Name(row.Name)] = row
	}

	return out, nil
}

// Upsert stores payload for the owner's setting, creating the row on first save
// and overwriting its payload afterwards.
//
// It fails with settings.ErrUnknownSetting for an undeclared name and with a
// *settings.ValidationError when the name belongs to another group or the payload
// is rejected by the field constraints.
func Upsert(db *gorm.DB, ownerID uint64, group settings.Group, name settings.Name, payload any) (*models.Setting, error) {
	if err := checkCall(db, ownerID); err != nil {
		return nil, err
	}

	if err := settings.CheckMembership(group, name); err != nil {
		return nil, err
	}

	if err := settings.Validate(name, payload); err != nil {
		return nil, err
	}

	data, err := encodePayload(payload)
	if err != nil {
		return nil, err
	}

	return upsert(db, ownerID, group, name, data)
}

// UpsertMany validates all entries and then writes them in a single transaction.
// Nothing is written when any entry is invalid or any write fails.
func UpsertMany(db *gorm.DB, ownerID uint64, group settings.Group, entries map[settings.Name]any) error {
	if err := checkCall(db, ownerID); err != nil {
		return err
	}

	if err := settings.ValidateGroup(group, entries); err != nil {
		return err
	}

	fields, err := settings.FieldsOf(group)
	if err != nil {
		return err
	}

	encoded := make(map[settings.Name][]byte, len(entries))

	for name, payload := range entries {
		if encoded[name], err = encodePayload(payload); err != nil {
			return err
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// schema order keeps lock acquisition stable across concurrent saves
		for _, f := range fields {
			data, ok := encoded[f.Key]
			if !ok {
				continue
			}

			if _, errUpsert := upsert(tx, ownerID, group, f.Key, data); errUpsert != nil {
				return errUpsert
			}
		}

		return nil
	})

	return persistenceError(err)
}

// upsert writes the row with one INSERT .. ON CONFLICT statement: overlapping first saves of a key
// resolve to the last write.
func upsert(db *gorm.DB, ownerID uint64, group settings.Group, name settings.Name, data []byte) (*models.Setting, error) {
	owner := ownerID
	row := models.Setting{
		UploadedByUserID: &owner,
		Group:            string(group),
		Name:             string(name),
		Payload:          data,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: ownerColumn}, {Name: groupColumn}, {Name: nameColumn}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, persistenceError(err)
	}

	// the returned id is not reliable after the update branch on every engine
	var setting models.Setting

	result := db.Where(map[string]any{
		ownerColumn: ownerID,
		groupColumn: string(group),
		nameColumn:  string(name),
	}).Limit(1).Find(&setting)
	if result.Error != nil {
		return nil, persistenceError(result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, persistenceError(gorm.ErrRecordNotFound)
	}

	return &setting, nil
}
