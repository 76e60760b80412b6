package store

import (
	"testing" // Go testing package

	"shop_system/internal/domain" // Importing domain models

	"github.com/glebarez/sqlite"    // Pure Go SQLite driver for tests
	"github.com/shopspring/decimal" // Fixed-point decimal for money
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/logger" // GORM logger control
)

// newTestDB opens an in-memory database with the full schema. A single
// connection serializes concurrent transactions in tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Product{},
		&domain.ProductImage{},
		&domain.CartItem{},
		&domain.Order{},
	))
	return db
}

// seedProduct inserts a product with the given price and stock
func seedProduct(t *testing.T, db *gorm.DB, price int64, stock int) *domain.Product {
	t.Helper()
	category := domain.Category{Name: "Electronics"}
	require.NoError(t, CreateCategory(db, &category))
	product := domain.Product{
		Name:       "Headphones",
		Price:      decimal.NewFromInt(price),
		Stock:      stock,
		CategoryID: category.ID,
	}
	require.NoError(t, CreateProduct(db, &product))
	return &product
}

// seedUser inserts a customer user
func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	user := domain.User{Name: "Test User", Email: email, Password: "x", Role: "customer"}
	require.NoError(t, CreateUser(db, &user))
	return &user
}
