package main

import (
	"context"                        // context package is needed for Redis operations
	"log"                            // log package is needed for logging
	"shop_system/internal/api"       // Custom package for API handlers
	"shop_system/internal/config"    // Custom package for configuration
	"shop_system/internal/middleware" // Custom package for middleware
	"shop_system/internal/service"   // Custom package for the workflow layer

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Workflow services over the shared DB handle
	orderSvc := service.NewOrderService(db)       // Order workflow
	cartSvc := service.NewCartService(db)         // Cart store
	categorySvc := service.NewCategoryService(db) // Category catalog
	productSvc := service.NewProductService(db)   // Product catalog

	// Inject the Redis client for handler-side caching
	injectRedis := func(c *gin.Context) {
		c.Set("redisClient", redisClient)
		c.Next()
	}

	// Auth routes
	r.POST("/user", api.RegisterHandler(db))            // Registration endpoint
	r.GET("/user", api.LoginHandler(db, cfg.JWTSecret)) // Login endpoint

	// Cart routes (protected by JWT)
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), injectRedis)
	cartGroup.POST("/addCart", api.AddCartHandler(cartSvc))                           // Add-to-cart endpoint
	cartGroup.PUT("/updateCartQuantity", api.UpdateCartQuantityHandler(cartSvc))      // Absolute quantity update endpoint
	cartGroup.DELETE("/removeCartItem/:email/:cartId", api.RemoveCartItemHandler(cartSvc)) // Cart row removal endpoint
	cartGroup.GET("/getallCart", api.GetAllCartHandler(cartSvc))                      // Cart listing endpoint

	// Order routes (protected by JWT)
	orderGroup := r.Group("/order")
	orderGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), injectRedis)
	orderGroup.POST("/placeOrder", api.PlaceOrderHandler(orderSvc))                      // Order placement endpoint
	orderGroup.GET("/getOrdersByEmail/:email", api.GetOrdersByEmailHandler(orderSvc))    // Per-user order listing endpoint
	orderGroup.GET("/getOrderById/:email/:orderId", api.GetOrderByIdHandler(orderSvc))   // Single order endpoint
	orderGroup.PUT("/cancelOrder/:email/:orderId", api.CancelOrderHandler(orderSvc))     // Order cancellation endpoint
	// Admin-only listing of every order
	orderGroup.GET("/getAllOrders", middleware.AdminOnlyMiddleware(db), api.GetAllOrdersHandler(orderSvc))

	// Category routes (public reads, admin writes)
	categoryGroup := r.Group("/category")
	categoryGroup.Use(injectRedis)
	categoryGroup.GET("/getall", api.ListCategoriesHandler(categorySvc)) // Category listing endpoint
	categoryAdmin := categoryGroup.Group("")
	categoryAdmin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	categoryAdmin.POST("/create", api.CreateCategoryHandler(categorySvc))      // Category creation endpoint
	categoryAdmin.PUT("/update/:id", api.UpdateCategoryHandler(categorySvc))   // Category update endpoint
	categoryAdmin.DELETE("/delete/:id", api.DeleteCategoryHandler(categorySvc)) // Category deletion endpoint

	// Product routes (public reads, admin writes)
	productGroup := r.Group("/product")
	productGroup.Use(injectRedis)
	productGroup.GET("/getall", api.ListProductsHandler(productSvc)) // Product listing endpoint
	productGroup.GET("/get/:id", api.GetProductHandler(productSvc))  // Single product endpoint
	productAdmin := productGroup.Group("")
	productAdmin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	productAdmin.POST("/create", api.CreateProductHandler(productSvc))      // Product creation endpoint
	productAdmin.PUT("/update/:id", api.UpdateProductHandler(productSvc))   // Product update endpoint
	productAdmin.DELETE("/delete/:id", api.DeleteProductHandler(productSvc)) // Product deletion endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
