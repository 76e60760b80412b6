package api

import (
	"context"                      // Context for Redis operations
	"net/http"                     // HTTP status codes
	"shop_system/internal/domain"  // Importing domain models
	"shop_system/internal/service" // Workflow layer
	"shop_system/internal/utils"   // Utility functions
	"strconv"                      // String conversion
	"time"                         // Cache TTL

	"github.com/gin-gonic/gin" // Gin web framework
)

// cartCacheKey builds the per-user cart listing cache key
func cartCacheKey(email string) string {
	return "cart:user:" + email
}

// CartRequest represents an add-to-cart or update-quantity request
type CartRequest struct {
	Email     string `json:"email" binding:"required"`         // Owner email
	ProductID uint   `json:"productId" binding:"required"`     // Product in the cart
	Quantity  int    `json:"quantity" binding:"required,gt=0"` // Requested quantity
}

// AddCartHandler adds a quantity of one product to the user's cart. Stock is
// only checked here; it is reserved at order placement.
func AddCartHandler(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CartRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		item, err := svc.AddItem(req.Email, req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, err) // Not found or insufficient stock
			return
		}
		// Invalidate the user's cart listing cache
		if rdb := cacheClient(c); rdb != nil {
			_ = utils.DeleteCache(context.Background(), rdb, cartCacheKey(req.Email))
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart", "cartItem": item})
	}
}

// UpdateCartQuantityHandler sets an existing cart row to an absolute quantity
func UpdateCartQuantityHandler(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CartRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		item, err := svc.UpdateQuantity(req.Email, req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, err) // Not found or insufficient stock
			return
		}
		// Invalidate the user's cart listing cache
		if rdb := cacheClient(c); rdb != nil {
			_ = utils.DeleteCache(context.Background(), rdb, cartCacheKey(req.Email))
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully", "cartItem": item})
	}
}

// RemoveCartItemHandler deletes one cart row scoped to its owner
func RemoveCartItemHandler(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Owner email from the path
		// Parse the cart row id from the path
		cartID, err := strconv.ParseUint(c.Param("cartId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item id"})
			return
		}
		if err := svc.RemoveItem(email, uint(cartID)); err != nil {
			respondError(c, err) // Absent or not owned
			return
		}
		// Invalidate the user's cart listing cache
		if rdb := cacheClient(c); rdb != nil {
			_ = utils.DeleteCache(context.Background(), rdb, cartCacheKey(email))
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed successfully"})
	}
}

// GetAllCartHandler lists the user's cart joined with product display fields.
// An empty cart is a 200 with an empty list, never a 404.
func GetAllCartHandler(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email") // Owner email from the query string
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
			return
		}
		ctx := context.Background() // Context for Redis operations
		rdb := cacheClient(c)       // Redis client, if injected
		// Try the cache first
		if rdb != nil {
			var cached []domain.CartLine
			if found, err := utils.GetCache(ctx, rdb, cartCacheKey(email), &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{"cartItems": cached, "cached": true})
				return
			}
		}
		lines, err := svc.ListItems(email)
		if err != nil {
			respondError(c, err) // Only the user lookup can 404 here
			return
		}
		// Cache the listing for 60 seconds
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, cartCacheKey(email), lines, 60*time.Second)
		}
		// Return the listing, empty or not
		c.JSON(http.StatusOK, gin.H{"cartItems": lines, "cached": false})
	}
}
