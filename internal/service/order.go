package service

import (
	"shop_system/internal/domain" // Importing domain models
	"shop_system/internal/store"  // Repository functions

	"github.com/shopspring/decimal" // Fixed-point decimal for money
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // GORM ORM library
)

// OrderService coordinates stock reservation and order persistence
type OrderService struct {
	db *gorm.DB // Database handle; transactions are opened per workflow
}

// NewOrderService creates an OrderService
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// PlaceOrder reserves stock for the product and records a Pending order as
// one atomic unit. The conditional stock decrement and the order insert share
// a transaction, so a failed insert rolls the decrement back and the stock
// floor at zero holds under concurrent placements.
func (s *OrderService) PlaceOrder(email string, productID uint, quantity int, shipping domain.ShippingDetails) (*domain.Order, error) {
	user, err := store.GetUserByEmail(s.db, email) // Resolve user identity
	if err != nil {
		return nil, err // User not found or store failure
	}
	product, err := store.GetProductByID(s.db, productID) // Resolve product
	if err != nil {
		return nil, err // Product not found or store failure
	}
	order := &domain.Order{
		UserID:    user.ID,    // Owner
		ProductID: product.ID, // Single product per order
		Quantity:  quantity,   // Ordered quantity
		// Unit price x quantity, frozen at order time
		TotalAmount:  product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Status:       domain.OrderPending,  // Initial status
		Address:      shipping.Address,     // Shipping address
		City:         shipping.City,        // Shipping city
		Zipcode:      shipping.Zipcode,     // Shipping zipcode
		DeliveryDate: shipping.DeliveryDate, // Requested delivery date
		CourierName:  shipping.CourierName, // Courier name
	}
	// Reserve and insert atomically
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := store.ReserveStock(tx, product.ID, quantity); err != nil {
			return err // Rolls back with no mutation
		}
		return store.CreateOrder(tx, order) // Failure rolls the decrement back
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":    user.ID,     // Owner
			"product_id": productID,   // Ordered product
			"quantity":   quantity,    // Requested quantity
			"error":      err.Error(), // Error message
		}).Warn("Order placement failed")
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":      user.ID,           // Owner
		"order_id":     order.ID,          // New order id
		"product_id":   productID,         // Ordered product
		"quantity":     quantity,          // Ordered quantity
		"total_amount": order.TotalAmount, // Frozen total
	}).Info("Order placed")
	return order, nil
}

// CancelOrder flips a Pending order to Cancelled. Cancelled is terminal and
// stock is not restored on cancellation.
func (s *OrderService) CancelOrder(email string, orderID uint) error {
	user, err := store.GetUserByEmail(s.db, email) // Resolve user identity
	if err != nil {
		return err // User not found or store failure
	}
	order, err := store.GetUserOrder(s.db, user.ID, orderID) // Order scoped to owner
	if err != nil {
		return err // Order not found or store failure
	}
	if order.Status == domain.OrderCancelled {
		return domain.ErrAlreadyCancelled // Terminal status
	}
	if err := store.UpdateOrderStatus(s.db, order.ID, domain.OrderCancelled); err != nil {
		return err // Store failure
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID, // Owner
		"order_id": orderID, // Cancelled order
	}).Info("Order cancelled")
	return nil
}

// ListOrders returns the user's flattened orders, failing when there are none
func (s *OrderService) ListOrders(email string) ([]domain.OrderView, error) {
	user, err := store.GetUserByEmail(s.db, email) // Resolve user identity
	if err != nil {
		return nil, err // User not found or store failure
	}
	views, err := store.ListOrderViews(s.db, user.ID)
	if err != nil {
		return nil, err // Store failure
	}
	if len(views) == 0 {
		return nil, domain.ErrNoOrders // Empty listing is a NotFound, unlike the cart
	}
	return views, nil
}

// GetOrder returns one flattened order scoped to the user
func (s *OrderService) GetOrder(email string, orderID uint) (*domain.OrderView, error) {
	user, err := store.GetUserByEmail(s.db, email) // Resolve user identity
	if err != nil {
		return nil, err // User not found or store failure
	}
	return store.GetOrderView(s.db, user.ID, orderID)
}

// ListAllOrders returns every flattened order (admin), failing when empty
func (s *OrderService) ListAllOrders() ([]domain.OrderView, error) {
	views, err := store.ListAllOrderViews(s.db)
	if err != nil {
		return nil, err // Store failure
	}
	if len(views) == 0 {
		return nil, domain.ErrNoOrders // Empty listing is a NotFound
	}
	return views, nil
}
