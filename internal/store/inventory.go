package store

import (
	"errors"                      // Error inspection
	"shop_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// ReserveStock atomically decrements a product's stock by quantity, keeping
// the stock floor at zero. The decrement is a single conditional UPDATE
// (stock = stock - ? WHERE stock >= ?), so two concurrent reservations
// against the same product can never jointly oversell: the row update
// serializes at the database and the condition re-checks stock at write time.
//
// Must be called on the same transaction handle as the dependent insert
// (order or cart row) so a failed downstream step rolls the decrement back.
func ReserveStock(tx *gorm.DB, productID uint, quantity int) error {
	res := tx.Model(&domain.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error // Store failure
	}
	if res.RowsAffected == 0 {
		// Either the product is missing or the stock ran out; re-read to tell
		// the two apart and report the exact available count.
		var product domain.Product
		if err := tx.Select("stock").First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProductNotFound // Unknown product id
			}
			return err // Store failure
		}
		return &domain.InsufficientStockError{Available: product.Stock}
	}
	return nil
}

// ReleaseStock increments a product's stock by quantity. Used by cart
// quantity-decrease paths only; order cancellation never restores stock.
func ReleaseStock(tx *gorm.DB, productID uint, quantity int) error {
	res := tx.Model(&domain.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if res.Error != nil {
		return res.Error // Store failure
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound // Unknown product id
	}
	return nil
}
