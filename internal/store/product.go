package store

import (
	"errors"                      // Error inspection
	"shop_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// GetProductByID fetches a product with its images
func GetProductByID(tx *gorm.DB, id uint) (*domain.Product, error) {
	var product domain.Product // Product record
	if err := tx.Preload("Images").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound // Unknown product id
		}
		return nil, err // Store failure
	}
	return &product, nil
}

// ListProducts returns all products with their images
func ListProducts(tx *gorm.DB) ([]domain.Product, error) {
	var products []domain.Product
	if err := tx.Preload("Images").Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListProductsByCategory returns all products of one category
func ListProductsByCategory(tx *gorm.DB, categoryID uint) ([]domain.Product, error) {
	var products []domain.Product
	if err := tx.Preload("Images").Where("category_id = ?", categoryID).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct inserts a product together with its image rows
func CreateProduct(tx *gorm.DB, product *domain.Product) error {
	return tx.Create(product).Error
}

// UpdateProduct saves mutable product fields (name, description, price,
// stock, category). Images are replaced wholesale when provided.
func UpdateProduct(tx *gorm.DB, product *domain.Product) error {
	return tx.Save(product).Error
}

// DeleteProduct removes a product row
func DeleteProduct(tx *gorm.DB, id uint) error {
	res := tx.Delete(&domain.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound // Unknown product id
	}
	return nil
}
