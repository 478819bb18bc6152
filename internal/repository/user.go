package repository

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/database"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/models"
)

// CreateUser registers a new account. Usernames are matched exactly
// (case-sensitive); a duplicate yields ErrDuplicateUsername.
func CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	var existing models.User
	err := database.DB.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := database.DB.WithContext(ctx).Create(user).Error; err != nil {
		// The unique index catches a race between the pre-check and
		// the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair. Both unknown username
// and wrong password come back as the same ErrInvalidCredentials.
func Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := database.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserByID loads a user for the session loader middleware.
func GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := database.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
