package store

import (
	"errors"                      // Error inspection
	"shop_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// CreateOrder inserts a new order row
func CreateOrder(tx *gorm.DB, order *domain.Order) error {
	return tx.Create(order).Error
}

// GetUserOrder fetches one order scoped to its owner
func GetUserOrder(tx *gorm.DB, userID, orderID uint) (*domain.Order, error) {
	var order domain.Order // Order record
	if err := tx.Where("user_id = ?", userID).First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound // Absent or not owned
		}
		return nil, err // Store failure
	}
	return &order, nil
}

// UpdateOrderStatus sets the status of one order
func UpdateOrderStatus(tx *gorm.DB, orderID uint, status string) error {
	res := tx.Model(&domain.Order{}).Where("id = ?", orderID).Update("status", status)
	if res.Error != nil {
		return res.Error // Store failure
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound // Unknown order id
	}
	return nil
}

// orderViewSelect flattens orders with the owner email and product name
const orderViewSelect = "orders.id, users.email, orders.product_id, products.name AS product_name, orders.quantity, orders.total_amount, orders.status, orders.address, orders.city, orders.zipcode, orders.delivery_date, orders.courier_name, orders.created_at"

// orderViewQuery builds the flattened order projection
func orderViewQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&domain.Order{}).
		Select(orderViewSelect).
		Joins("JOIN users ON users.id = orders.user_id").
		Joins("JOIN products ON products.id = orders.product_id")
}

// ListOrderViews returns the flattened orders of one user, newest first
func ListOrderViews(tx *gorm.DB, userID uint) ([]domain.OrderView, error) {
	var views []domain.OrderView
	err := orderViewQuery(tx).
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err // Store failure
	}
	return views, nil
}

// GetOrderView returns one flattened order scoped to its owner
func GetOrderView(tx *gorm.DB, userID, orderID uint) (*domain.OrderView, error) {
	var views []domain.OrderView
	err := orderViewQuery(tx).
		Where("orders.user_id = ? AND orders.id = ?", userID, orderID).
		Scan(&views).Error
	if err != nil {
		return nil, err // Store failure
	}
	if len(views) == 0 {
		return nil, domain.ErrOrderNotFound // Absent or not owned
	}
	return &views[0], nil
}

// ListAllOrderViews returns every flattened order, newest first
func ListAllOrderViews(tx *gorm.DB) ([]domain.OrderView, error) {
	var views []domain.OrderView
	err := orderViewQuery(tx).
		Order("orders.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err // Store failure
	}
	return views, nil
}

// GetOrderByID fetches one order regardless of owner (admin paths)
func GetOrderByID(tx *gorm.DB, orderID uint) (*domain.Order, error) {
	var order domain.Order
	if err := tx.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}
