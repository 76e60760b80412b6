package service

import (
	"errors"                      // Error inspection
	"shop_system/internal/domain" // Importing domain models
	"shop_system/internal/store"  // Repository functions

	"github.com/shopspring/decimal" // Fixed-point decimal for money
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // GORM ORM library
)

// CartService owns the per-(user, product) cart rows. Adding to the cart
// only checks stock, it never reserves it: inventory is decremented at order
// placement, so a cart is a soft hold with no availability guarantee.
type CartService struct {
	db *gorm.DB // Database handle; transactions are opened per mutation
}

// NewCartService creates a CartService
func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// AddItem adds quantity of a product to the user's cart. A first add creates
// the row with price = unit x quantity; later adds extend the same row
// additively (quantity += requested, price += unit-at-this-add x requested),
// the stored price is not recomputed from scratch.
func (s *CartService) AddItem(email string, productID uint, quantity int) (*domain.CartItem, error) {
	user, err := store.GetUserByEmail(s.db, email) // Resolve user identity
	if err != nil {
		return nil, err // User not found or store failure
	}
	var item *domain.CartItem // Resulting cart row
	// The row read-modify-write runs inside a transaction; the unique
	// (user_id, product_id) index backstops concurrent first adds.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		product, err := store.GetProductByID(tx, productID) // Resolve product
		if err != nil {
			return err // Product not found or store failure
		}
		if quantity > product.Stock {
			return &domain.InsufficientStockError{Available: product.Stock}
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(quantity))) // Unit price at time of this add
		existing, err := store.GetCartItem(tx, user.ID, productID)
		if errors.Is(err, domain.ErrCartItemNotFound) {
			item = &domain.CartItem{
				UserID:    user.ID,    // Owner
				ProductID: productID,  // Product in the cart
				Quantity:  quantity,   // Requested quantity
				Price:     lineTotal,  // Line total for the first add
			}
			return store.CreateCartItem(tx, item)
		}
		if err != nil {
			return err // Store failure
		}
		existing.Quantity += quantity                 // Additive quantity
		existing.Price = existing.Price.Add(lineTotal) // Additive price, not recomputed
		item = existing
		return store.SaveCartItem(tx, existing)
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":    user.ID,       // Owner
		"product_id": productID,     // Product in the cart
		"quantity":   item.Quantity, // Aggregated quantity
		"price":      item.Price,    // Aggregated line total
	}).Info("Cart item added")
	return item, nil
}

// UpdateQuantity sets an existing cart row to an absolute quantity and
// recomputes the price from the current unit price. Note the asymmetry with
// AddItem, which accumulates price additively; both behaviors are deliberate.
func (s *CartService) UpdateQuantity(email string, productID uint, newQuantity int) (*domain.CartItem, error) {
	user, err := store.GetUserByEmail(s.db, email) // Resolve user identity
	if err != nil {
		return nil, err // User not found or store failure
	}
	var item *domain.CartItem // Resulting cart row
	err = s.db.Transaction(func(tx *gorm.DB) error {
		product, err := store.GetProductByID(tx, productID) // Resolve product
		if err != nil {
			return err // Product not found or store failure
		}
		existing, err := store.GetCartItem(tx, user.ID, productID)
		if err != nil {
			return err // Cart row required
		}
		if newQuantity > product.Stock {
			return &domain.InsufficientStockError{Available: product.Stock}
		}
		existing.Quantity = newQuantity // Absolute set, not additive
		// Recompute from the current unit price
		existing.Price = product.Price.Mul(decimal.NewFromInt(int64(newQuantity)))
		item = existing
		return store.SaveCartItem(tx, existing)
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":    user.ID,       // Owner
		"product_id": productID,     // Product in the cart
		"quantity":   item.Quantity, // New quantity
		"price":      item.Price,    // Recomputed line total
	}).Info("Cart quantity updated")
	return item, nil
}

// RemoveItem deletes a cart row scoped to its owner
func (s *CartService) RemoveItem(email string, cartItemID uint) error {
	user, err := store.GetUserByEmail(s.db, email) // Resolve user identity
	if err != nil {
		return err // User not found or store failure
	}
	if err := store.DeleteCartItem(s.db, user.ID, cartItemID); err != nil {
		return err // Not found or store failure
	}
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,    // Owner
		"cart_id": cartItemID, // Removed row
	}).Info("Cart item removed")
	return nil
}

// ListItems returns the user's cart joined with product display fields. An
// empty cart is an empty list, never an error, unlike the order listings.
func (s *CartService) ListItems(email string) ([]domain.CartLine, error) {
	user, err := store.GetUserByEmail(s.db, email) // Resolve user identity
	if err != nil {
		return nil, err // User not found or store failure
	}
	return store.ListCartLines(s.db, user.ID)
}
