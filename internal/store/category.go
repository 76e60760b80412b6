package store

import (
	"errors"                      // Error inspection
	"fmt"                         // Category code formatting
	"shop_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// CreateCategory inserts a category and derives its sequential code from the
// row's own auto-increment id (C001, C002, ...). Deriving from the new id in
// the same transaction avoids the read-last-then-increment race that two
// concurrent creations would otherwise hit.
func CreateCategory(tx *gorm.DB, category *domain.Category) error {
	if err := tx.Create(category).Error; err != nil {
		return err // Store failure
	}
	category.Code = fmt.Sprintf("C%03d", category.ID)
	return tx.Model(category).UpdateColumn("code", category.Code).Error
}

// GetCategoryByID fetches one category
func GetCategoryByID(tx *gorm.DB, id uint) (*domain.Category, error) {
	var category domain.Category // Category record
	if err := tx.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound // Unknown category id
		}
		return nil, err // Store failure
	}
	return &category, nil
}

// ListCategories returns all categories ordered by id
func ListCategories(tx *gorm.DB) ([]domain.Category, error) {
	var categories []domain.Category
	if err := tx.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateCategory saves category name and description. The code is immutable.
func UpdateCategory(tx *gorm.DB, category *domain.Category) error {
	return tx.Model(category).Updates(map[string]any{
		"name":        category.Name,
		"description": category.Description,
	}).Error
}

// DeleteCategory removes a category row
func DeleteCategory(tx *gorm.DB, id uint) error {
	res := tx.Delete(&domain.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound // Unknown category id
	}
	return nil
}
