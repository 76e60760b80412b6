package domain

import (
	"time" // Delivery date and timestamps

	"github.com/shopspring/decimal" // Fixed-point decimal for money
)

// Order statuses. Pending -> Cancelled is the only transition.
const (
	OrderPending   = "Pending"   // Initial status
	OrderCancelled = "Cancelled" // Terminal status
)

// Order Model. One product per order; immutable except status.
type Order struct {
	ID           uint            `gorm:"primaryKey" json:"id"`                           // Primary key
	UserID       uint            `gorm:"index;not null" json:"userId"`                   // Owning user
	ProductID    uint            `gorm:"index;not null" json:"productId"`                // Ordered product
	Quantity     int             `gorm:"not null" json:"quantity"`                       // Ordered quantity
	TotalAmount  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"totalAmount"` // Unit price x quantity, frozen at order time
	Status       string          `gorm:"default:Pending" json:"status"`                  // Pending or Cancelled
	Address      string          `json:"address"`                                        // Shipping address
	City         string          `json:"city"`                                           // Shipping city
	Zipcode      string          `json:"zipcode"`                                        // Shipping zipcode
	DeliveryDate time.Time       `json:"deliveryDate"`                                   // Requested delivery date
	CourierName  string          `json:"courierName"`                                    // Courier name
	CreatedAt    time.Time       `json:"createdAt"`                                      // Timestamp of creation
	UpdatedAt    time.Time       `json:"updatedAt"`                                      // Timestamp of last update
}

// ShippingDetails carries the shipping fields of a new order
type ShippingDetails struct {
	Address      string    // Shipping address
	City         string    // Shipping city
	Zipcode      string    // Shipping zipcode
	DeliveryDate time.Time // Requested delivery date
	CourierName  string    // Courier name
}

// OrderView is an order joined with user email and product name for listing
type OrderView struct {
	ID           uint            `json:"id"`           // Order id
	Email        string          `json:"email"`        // Owner email
	ProductID    uint            `json:"productId"`    // Ordered product
	ProductName  string          `json:"productName"`  // Product name
	Quantity     int             `json:"quantity"`     // Ordered quantity
	TotalAmount  decimal.Decimal `json:"totalAmount"`  // Frozen total
	Status       string          `json:"status"`       // Pending or Cancelled
	Address      string          `json:"address"`      // Shipping address
	City         string          `json:"city"`         // Shipping city
	Zipcode      string          `json:"zipcode"`      // Shipping zipcode
	DeliveryDate time.Time       `json:"deliveryDate"` // Requested delivery date
	CourierName  string          `json:"courierName"`  // Courier name
	CreatedAt    time.Time       `json:"createdAt"`    // Timestamp of creation
}
