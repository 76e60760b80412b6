package service

import (
	"errors"
	"sync"
	"testing"

	"shop_system/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderReservesStockAndFreezesTotal(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, 100, 10)
	svc := NewOrderService(db)

	order, err := svc.PlaceOrder(user.Email, product.ID, 3, shipping())
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, 3, order.Quantity)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(300)), "total should be 300, got %s", order.TotalAmount)
	assert.Equal(t, 7, productStock(t, db, product.ID))

	// The total stays frozen even if the unit price changes afterwards
	require.NoError(t, db.Model(&domain.Product{}).Where("id = ?", product.ID).Update("price", decimal.NewFromInt(999)).Error)
	var persisted domain.Order
	require.NoError(t, db.First(&persisted, order.ID).Error)
	assert.True(t, persisted.TotalAmount.Equal(decimal.NewFromInt(300)))
}

func TestPlaceOrderInsufficientStockLeavesStockUnchanged(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, 100, 3)
	svc := NewOrderService(db)

	_, err := svc.PlaceOrder(user.Email, product.ID, 5, shipping())
	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Only 3 items left in stock", err.Error())
	assert.Equal(t, 3, productStock(t, db, product.ID))

	// No order row was persisted
	var count int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderUnknownUserAndProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, 100, 3)
	svc := NewOrderService(db)

	_, err := svc.PlaceOrder("nobody@example.com", product.ID, 1, shipping())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.PlaceOrder(user.Email, 9999, 1, shipping())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestConcurrentPlacementsNeverOversell(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, 100, 5)
	svc := NewOrderService(db)

	// Two placements of 3 against stock 5: together they exceed stock, so
	// exactly one may succeed.
	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.PlaceOrder(user.Email, product.ID, 3, shipping())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, failed int
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			var stockErr *domain.InsufficientStockError
			require.True(t, errors.As(err, &stockErr), "unexpected error: %v", err)
			failed++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, productStock(t, db, product.ID))
}

func TestCancelOrderIsTerminalAndKeepsStock(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, 100, 10)
	svc := NewOrderService(db)

	order, err := svc.PlaceOrder(user.Email, product.ID, 4, shipping())
	require.NoError(t, err)
	stockAfterPlacement := productStock(t, db, product.ID)
	require.Equal(t, 6, stockAfterPlacement)

	require.NoError(t, svc.CancelOrder(user.Email, order.ID))
	var persisted domain.Order
	require.NoError(t, db.First(&persisted, order.ID).Error)
	assert.Equal(t, domain.OrderCancelled, persisted.Status)

	// Cancellation does not restore stock
	assert.Equal(t, stockAfterPlacement, productStock(t, db, product.ID))

	// Cancelled is terminal
	assert.ErrorIs(t, svc.CancelOrder(user.Email, order.ID), domain.ErrAlreadyCancelled)
}

func TestCancelOrderScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	product := seedProduct(t, db, 100, 10)
	svc := NewOrderService(db)

	order, err := svc.PlaceOrder(alice.Email, product.ID, 1, shipping())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.CancelOrder(bob.Email, order.ID), domain.ErrOrderNotFound)
	assert.ErrorIs(t, svc.CancelOrder("nobody@example.com", order.ID), domain.ErrUserNotFound)
}

func TestListOrdersEmptyIsNotFound(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	svc := NewOrderService(db)

	_, err := svc.ListOrders(user.Email)
	assert.ErrorIs(t, err, domain.ErrNoOrders)

	_, err = svc.ListAllOrders()
	assert.ErrorIs(t, err, domain.ErrNoOrders)
}

func TestListOrdersFlattensUserAndProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, 150, 10)
	svc := NewOrderService(db)

	placed, err := svc.PlaceOrder(user.Email, product.ID, 2, shipping())
	require.NoError(t, err)

	views, err := svc.ListOrders(user.Email)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, placed.ID, views[0].ID)
	assert.Equal(t, user.Email, views[0].Email)
	assert.Equal(t, product.Name, views[0].ProductName)
	assert.True(t, views[0].TotalAmount.Equal(decimal.NewFromInt(300)))

	view, err := svc.GetOrder(user.Email, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, view.ID)

	_, err = svc.GetOrder(user.Email, 9999)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestStockAccountingAcrossSequence(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, 100, 10)
	svc := NewOrderService(db)

	first, err := svc.PlaceOrder(user.Email, product.ID, 2, shipping())
	require.NoError(t, err)
	_, err = svc.PlaceOrder(user.Email, product.ID, 3, shipping())
	require.NoError(t, err)
	require.NoError(t, svc.CancelOrder(user.Email, first.ID))

	// stock = initial - sum of successful order quantities; cancellations do
	// not add back
	assert.Equal(t, 10-2-3, productStock(t, db, product.ID))
}
