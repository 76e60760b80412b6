package service

import (
	"shop_system/internal/domain" // Importing domain models
	"shop_system/internal/store"  // Repository functions

	"github.com/shopspring/decimal" // Fixed-point decimal for money
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // GORM ORM library
)

// ProductService owns the catalog products. Stock mutations outside admin
// edits go through the inventory ledger, not through here.
type ProductService struct {
	db *gorm.DB // Database handle
}

// NewProductService creates a ProductService
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// Create inserts a product under an existing category
func (s *ProductService) Create(name, description string, price decimal.Decimal, stock int, categoryID uint, imageURLs []string) (*domain.Product, error) {
	if _, err := store.GetCategoryByID(s.db, categoryID); err != nil {
		return nil, err // Category not found or store failure
	}
	product := &domain.Product{
		Name:        name,        // Product name
		Description: description, // Product description
		Price:       price,       // Unit price
		Stock:       stock,       // Initial stock
		CategoryID:  categoryID,  // Owning category
	}
	for _, url := range imageURLs {
		product.Images = append(product.Images, domain.ProductImage{URL: url})
	}
	if err := store.CreateProduct(s.db, product); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"product_id":  product.ID, // New product id
		"category_id": categoryID, // Owning category
		"stock":       stock,      // Initial stock
	}).Info("Product created")
	return product, nil
}

// List returns all products, optionally filtered by category (categoryID 0
// means no filter)
func (s *ProductService) List(categoryID uint) ([]domain.Product, error) {
	if categoryID != 0 {
		return store.ListProductsByCategory(s.db, categoryID)
	}
	return store.ListProducts(s.db)
}

// Get returns one product with its images
func (s *ProductService) Get(id uint) (*domain.Product, error) {
	return store.GetProductByID(s.db, id)
}

// Update saves product fields; a non-empty imageURLs replaces the image set
func (s *ProductService) Update(id uint, name, description string, price decimal.Decimal, stock int, categoryID uint, imageURLs []string) (*domain.Product, error) {
	product, err := store.GetProductByID(s.db, id)
	if err != nil {
		return nil, err // Product not found or store failure
	}
	if categoryID != 0 && categoryID != product.CategoryID {
		if _, err := store.GetCategoryByID(s.db, categoryID); err != nil {
			return nil, err // Category not found or store failure
		}
		product.CategoryID = categoryID // Move to the new category
	}
	product.Name = name               // New name
	product.Description = description // New description
	product.Price = price             // New unit price
	product.Stock = stock             // Admin stock override
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(imageURLs) > 0 {
			// Replace the image set wholesale
			if err := tx.Where("product_id = ?", product.ID).Delete(&domain.ProductImage{}).Error; err != nil {
				return err
			}
			product.Images = nil
			for _, url := range imageURLs {
				product.Images = append(product.Images, domain.ProductImage{ProductID: product.ID, URL: url})
			}
		}
		return store.UpdateProduct(tx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product
func (s *ProductService) Delete(id uint) error {
	return store.DeleteProduct(s.db, id)
}
