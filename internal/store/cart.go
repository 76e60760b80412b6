package store

import (
	"errors"                      // Error inspection
	"shop_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// GetCartItem fetches the single cart row for a (user, product) pair
func GetCartItem(tx *gorm.DB, userID, productID uint) (*domain.CartItem, error) {
	var item domain.CartItem // Cart row
	if err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartItemNotFound // No row for the pair
		}
		return nil, err // Store failure
	}
	return &item, nil
}

// CreateCartItem inserts a new cart row
func CreateCartItem(tx *gorm.DB, item *domain.CartItem) error {
	return tx.Create(item).Error
}

// SaveCartItem persists an updated cart row
func SaveCartItem(tx *gorm.DB, item *domain.CartItem) error {
	return tx.Save(item).Error
}

// DeleteCartItem removes a cart row scoped to its owner. Rows belonging to
// another user are treated as not found.
func DeleteCartItem(tx *gorm.DB, userID, cartItemID uint) error {
	res := tx.Where("user_id = ?", userID).Delete(&domain.CartItem{}, cartItemID)
	if res.Error != nil {
		return res.Error // Store failure
	}
	if res.RowsAffected == 0 {
		return domain.ErrCartItemNotFound // Absent or not owned
	}
	return nil
}

// ListCartLines returns the user's cart rows joined with product display
// fields. An empty cart yields an empty slice, never an error.
func ListCartLines(tx *gorm.DB, userID uint) ([]domain.CartLine, error) {
	lines := []domain.CartLine{} // Empty slice, not nil, so it serializes as []
	err := tx.Model(&domain.CartItem{}).
		Select("cart_items.id AS cart_id, cart_items.product_id, products.name, cart_items.quantity, cart_items.price, products.stock, COALESCE((SELECT url FROM product_images WHERE product_images.product_id = products.id ORDER BY product_images.id LIMIT 1), '') AS image").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err // Store failure
	}
	return lines, nil
}
