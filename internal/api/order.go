package api

import (
	"context"                      // Context for Redis operations
	"net/http"                     // HTTP status codes
	"shop_system/internal/domain"  // Importing domain models
	"shop_system/internal/service" // Workflow layer
	"shop_system/internal/utils"   // Utility functions
	"strconv"                      // String conversion
	"time"                         // Delivery date parsing

	"github.com/gin-gonic/gin" // Gin web framework
)

// allOrdersCacheKey caches the admin order listing for a short TTL
const allOrdersCacheKey = "orders:all"

// PlaceOrderRequest represents an order placement request
type PlaceOrderRequest struct {
	Email        string `json:"email" binding:"required"`          // Owner email
	ProductID    uint   `json:"productId" binding:"required"`      // Ordered product
	Quantity     int    `json:"quantity" binding:"required,gt=0"`  // Ordered quantity
	Address      string `json:"address" binding:"required"`        // Shipping address
	City         string `json:"city" binding:"required"`           // Shipping city
	Zipcode      string `json:"zipcode" binding:"required"`        // Shipping zipcode
	DeliveryDate string `json:"deliveryDate" binding:"required"`   // ISO-8601 delivery date
	CourierName  string `json:"courierName" binding:"required"`    // Courier name
}

// parseDeliveryDate accepts an ISO-8601 date, with or without a time part
func parseDeliveryDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil // Full timestamp
	}
	return time.Parse("2006-01-02", value) // Date only
}

// PlaceOrderHandler reserves stock and records a Pending order
func PlaceOrderHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		// Parse the delivery date before touching the store
		deliveryDate, err := parseDeliveryDate(req.DeliveryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid delivery date"})
			return
		}
		// Run the reservation workflow
		order, err := svc.PlaceOrder(req.Email, req.ProductID, req.Quantity, domain.ShippingDetails{
			Address:      req.Address,      // Shipping address
			City:         req.City,         // Shipping city
			Zipcode:      req.Zipcode,      // Shipping zipcode
			DeliveryDate: deliveryDate,     // Requested delivery date
			CourierName:  req.CourierName,  // Courier name
		})
		if err != nil {
			respondError(c, err) // Map the error taxonomy to HTTP
			return
		}
		// Invalidate the admin order listing cache
		if rdb := cacheClient(c); rdb != nil {
			_ = utils.DeleteCache(context.Background(), rdb, allOrdersCacheKey)
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
	}
}

// GetOrdersByEmailHandler returns the flattened orders of one user
func GetOrdersByEmailHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Owner email from the path
		views, err := svc.ListOrders(email)
		if err != nil {
			respondError(c, err) // 404 when the user has no orders
			return
		}
		// Return the flattened listing
		c.JSON(http.StatusOK, gin.H{"message": "Orders fetched successfully", "orderData": views})
	}
}

// GetOrderByIdHandler returns one flattened order scoped to its owner
func GetOrderByIdHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Owner email from the path
		// Parse the order id from the path
		orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
			return
		}
		view, err := svc.GetOrder(email, uint(orderID))
		if err != nil {
			respondError(c, err) // User or order not found
			return
		}
		// Return the flattened order
		c.JSON(http.StatusOK, gin.H{"message": "Order fetched successfully", "order": view})
	}
}

// CancelOrderHandler flips a Pending order to Cancelled. Stock is not
// restored on cancellation.
func CancelOrderHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Owner email from the path
		// Parse the order id from the path
		orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
			return
		}
		if err := svc.CancelOrder(email, uint(orderID)); err != nil {
			respondError(c, err) // Not found or already cancelled
			return
		}
		// Invalidate the admin order listing cache
		if rdb := cacheClient(c); rdb != nil {
			_ = utils.DeleteCache(context.Background(), rdb, allOrdersCacheKey)
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
	}
}

// GetAllOrdersHandler returns every flattened order (admin only)
func GetAllOrdersHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		rdb := cacheClient(c)       // Redis client, if injected
		// Try the cache first
		if rdb != nil {
			var cached []domain.OrderView
			if found, err := utils.GetCache(ctx, rdb, allOrdersCacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{"message": "Orders fetched successfully", "orderData": cached, "cached": true})
				return
			}
		}
		views, err := svc.ListAllOrders()
		if err != nil {
			respondError(c, err) // 404 when there are no orders at all
			return
		}
		// Cache the listing for 60 seconds
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, allOrdersCacheKey, views, 60*time.Second)
		}
		// Return the flattened listing
		c.JSON(http.StatusOK, gin.H{"message": "Orders fetched successfully", "orderData": views, "cached": false})
	}
}
