package domain

import (
	"errors" // Sentinel errors
	"fmt"    // Error message formatting
)

// Sentinel errors for the API error taxonomy. The messages are part of the
// HTTP contract and are returned to clients verbatim.
var (
	ErrUserNotFound     = errors.New("User not found")          // Unknown email
	ErrProductNotFound  = errors.New("Product not found")       // Unknown product id
	ErrCategoryNotFound = errors.New("Category not found")      // Unknown category id
	ErrOrderNotFound    = errors.New("Order not found")         // Unknown order id for the user
	ErrCartItemNotFound = errors.New("Cart item not found")     // Unknown cart row for the user
	ErrNoOrders         = errors.New("No orders found")         // Empty order listing
	ErrAlreadyCancelled = errors.New("Order is already cancelled") // Cancel on a cancelled order
)

// InsufficientStockError reports a failed stock reservation together with the
// quantity still available. The message format is observable by clients and
// must stay exactly "Only {available} items left in stock".
type InsufficientStockError struct {
	Available int // Remaining stock at the time of the check
}

// Error renders the client-visible message
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Only %d items left in stock", e.Available)
}
