package service

import (
	"errors"
	"testing"

	"shop_system/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemAccumulatesAdditively(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, 100, 20)
	svc := NewCartService(db)

	first, err := svc.AddItem(user.Email, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)
	assert.True(t, first.Price.Equal(decimal.NewFromInt(200)))

	second, err := svc.AddItem(user.Email, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same (user, product) pair must share one row")
	assert.Equal(t, 5, second.Quantity)
	assert.True(t, second.Price.Equal(decimal.NewFromInt(500)), "price accumulates additively, got %s", second.Price)

	// Exactly one row exists for the pair
	var count int64
	require.NoError(t, db.Model(&domain.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddItemKeepsHistoricUnitPrice(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, 100, 20)
	svc := NewCartService(db)

	_, err := svc.AddItem(user.Email, product.ID, 2)
	require.NoError(t, err)

	// Unit price changes between adds; the earlier slice of the line total
	// is not recomputed
	require.NoError(t, db.Model(&domain.Product{}).Where("id = ?", product.ID).Update("price", decimal.NewFromInt(150)).Error)

	item, err := svc.AddItem(user.Email, product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(350)), "200 + 150, got %s", item.Price)
}

func TestUpdateQuantityRecomputesFromCurrentPrice(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, 100, 20)
	svc := NewCartService(db)

	_, err := svc.AddItem(user.Email, product.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(user.Email, product.ID, 3)
	require.NoError(t, err)

	// Absolute set: quantity 2, price recomputed as 2 x current unit price
	item, err := svc.UpdateQuantity(user.Email, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(200)), "recomputed, not additive, got %s", item.Price)
}

func TestUpdateQuantityRequiresExistingRow(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, 100, 20)
	svc := NewCartService(db)

	_, err := svc.UpdateQuantity(user.Email, product.ID, 2)
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestCartStockChecksDoNotReserve(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, 100, 5)
	svc := NewCartService(db)

	// Adding more than stock fails with the exact-count message
	_, err := svc.AddItem(user.Email, product.ID, 6)
	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Only 5 items left in stock", err.Error())

	// A successful add checks stock but never decrements it
	_, err = svc.AddItem(user.Email, product.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, productStock(t, db, product.ID))

	// The absolute update validates against stock too
	_, err = svc.UpdateQuantity(user.Email, product.ID, 9)
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 5, stockErr.Available)
}

func TestRemoveItemScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	product := seedProduct(t, db, 100, 20)
	svc := NewCartService(db)

	item, err := svc.AddItem(alice.Email, product.ID, 2)
	require.NoError(t, err)

	// Another user cannot remove the row
	assert.ErrorIs(t, svc.RemoveItem(bob.Email, item.ID), domain.ErrCartItemNotFound)

	require.NoError(t, svc.RemoveItem(alice.Email, item.ID))
	assert.ErrorIs(t, svc.RemoveItem(alice.Email, item.ID), domain.ErrCartItemNotFound)
}

func TestListItemsJoinsProductFieldsAndAllowsEmpty(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	svc := NewCartService(db)

	// An empty cart is an empty list, not an error
	lines, err := svc.ListItems(user.Email)
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)

	product := seedProduct(t, db, 100, 20)
	require.NoError(t, db.Create(&domain.ProductImage{ProductID: product.ID, URL: "https://cdn.example.com/p.jpg"}).Error)
	item, err := svc.AddItem(user.Email, product.ID, 2)
	require.NoError(t, err)

	lines, err = svc.ListItems(user.Email)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, item.ID, lines[0].CartID)
	assert.Equal(t, product.ID, lines[0].ProductID)
	assert.Equal(t, product.Name, lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 20, lines[0].Stock)
	assert.Equal(t, "https://cdn.example.com/p.jpg", lines[0].Image)
	assert.True(t, lines[0].Price.Equal(decimal.NewFromInt(200)))

	// Unknown users still 404
	_, err = svc.ListItems("nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
