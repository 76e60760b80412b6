package store

import (
	"errors"                      // Error inspection
	"shop_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// GetUserByEmail resolves a user by email on the given handle (plain DB or
// open transaction)
func GetUserByEmail(tx *gorm.DB, email string) (*domain.User, error) {
	var user domain.User // User record
	if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound // Unknown email
		}
		return nil, err // Store failure
	}
	return &user, nil
}

// CreateUser inserts a new user
func CreateUser(tx *gorm.DB, user *domain.User) error {
	return tx.Create(user).Error
}
