package service

import (
	"shop_system/internal/domain" // Importing domain models
	"shop_system/internal/store"  // Repository functions

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CategoryService owns the catalog categories
type CategoryService struct {
	db *gorm.DB // Database handle
}

// NewCategoryService creates a CategoryService
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// Create inserts a category; the sequential code is derived inside the
// insert transaction from the new row's auto-increment id
func (s *CategoryService) Create(name, description string) (*domain.Category, error) {
	category := &domain.Category{Name: name, Description: description}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return store.CreateCategory(tx, category)
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"category_id": category.ID,   // New category id
		"code":        category.Code, // Generated code
	}).Info("Category created")
	return category, nil
}

// List returns all categories
func (s *CategoryService) List() ([]domain.Category, error) {
	return store.ListCategories(s.db)
}

// Get returns one category
func (s *CategoryService) Get(id uint) (*domain.Category, error) {
	return store.GetCategoryByID(s.db, id)
}

// Update sets name and description of an existing category
func (s *CategoryService) Update(id uint, name, description string) (*domain.Category, error) {
	category, err := store.GetCategoryByID(s.db, id)
	if err != nil {
		return nil, err // Category not found or store failure
	}
	category.Name = name               // New name
	category.Description = description // New description
	if err := store.UpdateCategory(s.db, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category
func (s *CategoryService) Delete(id uint) error {
	return store.DeleteCategory(s.db, id)
}
