package service

import (
	"io"      // Discarding log output in tests
	"testing" // Go testing package

	"shop_system/internal/domain" // Importing domain models

	"github.com/glebarez/sqlite"    // Pure Go SQLite driver for tests
	"github.com/shopspring/decimal" // Fixed-point decimal for money
	"github.com/sirupsen/logrus"    // Logging library
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/logger" // GORM logger control
)

func init() {
	logrus.SetOutput(io.Discard) // Keep workflow logs out of test output
}

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

// seedUser inserts a customer and returns it
func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	user := domain.User{Name: "Test User", Email: email, Password: "x", Role: "customer"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// seedProduct inserts a product with the given unit price and stock
func seedProduct(t *testing.T, db *gorm.DB, price int64, stock int) *domain.Product {
	t.Helper()
	category := domain.Category{Name: "Electronics", Code: "C001"}
	require.NoError(t, db.Create(&category).Error)
	product := domain.Product{
		Name:       "Headphones",
		Price:      decimal.NewFromInt(price),
		Stock:      stock,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

// productStock re-reads the current stock of one product
func productStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var product domain.Product
	require.NoError(t, db.First(&product, id).Error)
	return product.Stock
}

// shipping returns a filled shipping details value for order tests
func shipping() domain.ShippingDetails {
	return domain.ShippingDetails{
		Address:     "12 Main St",
		City:        "Springfield",
		Zipcode:     "12345",
		CourierName: "DHL",
	}
}
