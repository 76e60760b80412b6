package domain

import "github.com/shopspring/decimal" // Fixed-point decimal for money

// Product Model
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                 // Primary key
	Name        string          `gorm:"not null" json:"name"`                 // Product name
	Description string          `json:"description"`                          // Product description
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"` // Unit price
	Stock       int             `gorm:"not null;default:0" json:"stock"`      // Stock quantity, never negative
	CategoryID  uint            `gorm:"index" json:"categoryId"`              // Foreign key to Category
	Images      []ProductImage  `gorm:"constraint:OnDelete:CASCADE;" json:"images"` // Product image URLs
}

// ProductImage Model
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"` // Primary key
	ProductID uint   `gorm:"index" json:"-"`       // Foreign key to Product
	URL       string `gorm:"not null" json:"url"`  // Image URL at the external asset store
}
