package api

import (
	"bytes"         // Request bodies
	"encoding/json" // JSON encoding/decoding
	"io"            // Discarding log output in tests
	"net/http/httptest"
	"testing"

	"shop_system/internal/domain"  // Importing domain models
	"shop_system/internal/service" // Workflow layer

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/glebarez/sqlite"    // Pure Go SQLite driver for tests
	"github.com/shopspring/decimal" // Fixed-point decimal for money
	"github.com/sirupsen/logrus"    // Logging library
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/logger" // GORM logger control
)

func init() {
	gin.SetMode(gin.TestMode)    // Quiet router in tests
	logrus.SetOutput(io.Discard) // Keep workflow logs out of test output
}

// newTestDB opens an in-memory database with the full schema
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

// newTestRouter wires the public surface without auth middleware or Redis;
// the handlers under test take their identity from the request itself
func newTestRouter(db *gorm.DB) *gin.Engine {
	orderSvc := service.NewOrderService(db)
	cartSvc := service.NewCartService(db)

	r := gin.New()
	r.POST("/user", RegisterHandler(db))
	r.GET("/user", LoginHandler(db, "test-secret"))
	r.POST("/order/placeOrder", PlaceOrderHandler(orderSvc))
	r.GET("/order/getOrdersByEmail/:email", GetOrdersByEmailHandler(orderSvc))
	r.GET("/order/getOrderById/:email/:orderId", GetOrderByIdHandler(orderSvc))
	r.PUT("/order/cancelOrder/:email/:orderId", CancelOrderHandler(orderSvc))
	r.POST("/cart/addCart", AddCartHandler(cartSvc))
	r.PUT("/cart/updateCartQuantity", UpdateCartQuantityHandler(cartSvc))
	r.DELETE("/cart/removeCartItem/:email/:cartId", RemoveCartItemHandler(cartSvc))
	r.GET("/cart/getallCart", GetAllCartHandler(cartSvc))
	return r
}

// seedUser inserts a customer
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

// doJSON performs a request with an optional JSON body and decodes the
// JSON response into a generic map
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}
