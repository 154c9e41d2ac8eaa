package user

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/db/controller/setting"
	"github.com/sitesettings/sitesettings/internal/db/migrations"
	"github.com/sitesettings/sitesettings/internal/db/models"
	"github.com/sitesettings/sitesettings/internal/settings"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, migrations.Migrate(db), "failed to migrate test database")

	return db
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		username      string
		password      string
		expectedError error
	}{
		{name: "nil database", username: "a", password: "b", expectedError: ErrDBNil},
		{name: "empty username", dbParam: db, username: "  ", password: "b", expectedError: ErrUsernameEmpty},
		{name: "empty password", dbParam: db, username: "a", expectedError: ErrPasswordEmpty},
		{name: "created", dbParam: db, username: "alice", password: "secret"},
		{name: "duplicate", dbParam: db, username: "alice", password: "other", expectedError: ErrUserExists},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := Create(tc.dbParam, tc.username, tc.password, "alice@example.com")
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, u)

				return
			}

			require.NoError(t, err)
			assert.NotZero(t, u.ID)
			assert.True(t, u.Active)
			assert.NotEqual(t, tc.password, u.Password)
			assert.True(t, u.VerifyPassword(tc.password))
		})
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, "bob", "secret", "")
	require.NoError(t, err)

	byID, err := GetByID(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", byID.Username)

	byName, err := GetByUsername(db, "bob")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = GetByUsername(db, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = GetByID(nil, 1)
	assert.ErrorIs(t, err, ErrDBNil)

	count, err := Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDelete_KeepsSettingsWithoutOwner(t *testing.T) {
	db := setupTestDB(t)

	owner := models.User{ID: 42, Active: true, Username: "owner42"}
	require.NoError(t, db.Create(&owner).Error)

	rows, err := setting.LoadGroup(db, 42, settings.GroupHomePage)
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.NoError(t, setting.UpsertMany(db, 42, settings.GroupHomePage, map[settings.Name]any{
		settings.NameCompanyName: "Acme",
	}))

	rows, err = setting.LoadGroup(db, 42, settings.GroupHomePage)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	payload, err := setting.Payload(rows[settings.NameCompanyName])
	require.NoError(t, err)
	assert.Equal(t, "Acme", payload)

	require.NoError(t, Delete(db, 42))

	var orphan models.Setting
	require.NoError(t, db.Where("name = ?", string(settings.NameCompanyName)).First(&orphan).Error)
	assert.Nil(t, orphan.UploadedByUserID)

	payload, err = setting.Payload(orphan)
	require.NoError(t, err)
	assert.Equal(t, "Acme", payload)

	rows, err = setting.LoadGroup(db, 42, settings.GroupHomePage)
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.ErrorIs(t, Delete(db, 42), ErrUserNotFound)
}
