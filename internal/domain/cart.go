package domain

import "github.com/shopspring/decimal" // Fixed-point decimal for money

// CartItem Model. At most one row per (user, product) pair.
type CartItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                                 // Primary key
	UserID    uint            `gorm:"uniqueIndex:idx_cart_user_product" json:"userId"`      // Owning user
	ProductID uint            `gorm:"uniqueIndex:idx_cart_user_product" json:"productId"`   // Product in the cart
	Quantity  int             `gorm:"not null" json:"quantity"`                             // Aggregated quantity
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`             // Line total, not unit price
	CreatedAt int64           `gorm:"autoCreateTime:milli" json:"-"`                        // Timestamp of creation in milliseconds
	UpdatedAt int64           `gorm:"autoUpdateTime:milli" json:"-"`                        // Timestamp of last update in milliseconds
}

// CartLine is a cart row joined with product display fields for listing
type CartLine struct {
	CartID    uint            `json:"cartId"`    // Cart row id
	ProductID uint            `json:"productId"` // Product id
	Name      string          `json:"name"`      // Product name
	Quantity  int             `json:"quantity"`  // Quantity in the cart
	Price     decimal.Decimal `json:"price"`     // Line total
	Stock     int             `json:"stock"`     // Current product stock
	Image     string          `json:"image"`     // First product image URL, if any
}
