// Package user manages the accounts that own settings.
package user

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrUsernameEmpty is returned when a user is created without username.
	ErrUsernameEmpty = errors.New("username cannot be empty")
	// ErrPasswordEmpty is returned when a user is created without password.
	ErrPasswordEmpty = errors.New("password cannot be empty")
	// ErrUserExists is returned when the username is already taken.
	ErrUserExists = errors.New("username already exists")
	// ErrUserNotFound is returned when no user matches.
	ErrUserNotFound = errors.New("user not found")
)

// Create stores a new active user with an argon2id hashed password.
func Create(db *gorm.DB, username, password, email string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameEmpty
	}

	if password == "" {
		return nil, ErrPasswordEmpty
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}

	if count > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUserExists, username)
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := models.User{
		Active:   true,
		Username: username,
		Email:    strings.TrimSpace(email),
		Password: hash,
	}

	if err = db.Create(&u).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

// GetByID returns the user with the given id.
func GetByID(db *gorm.DB, id uint64) (*models.User, error) {
	return first(db, "id = ?", id)
}

// GetByUsername returns the user with the given username.
func GetByUsername(db *gorm.DB, username string) (*models.User, error) {
	return first(db, "username = ?", username)
}

func first(db *gorm.DB, query string, arg any) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User

	if err := db.Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &u, nil
}

// Count returns the number of stored users.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	err := db.Model(&models.User{}).Count(&count).Error

	return count, err
}

// Delete removes the user. Settings owned by the user stay in place without owner.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// the foreign key does the same, not every engine enforces it
		if err := tx.Model(&models.Setting{}).
			Where("uploaded_by_user_id = ?", id).
			Update("uploaded_by_user_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return nil
	})
}
