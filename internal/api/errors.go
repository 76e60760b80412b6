package api

import (
	"errors"                      // Error inspection
	"net/http"                    // HTTP status codes
	"shop_system/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// respondError maps the service error taxonomy onto the HTTP contract:
// insufficient stock and conflicts are 400, missing entities are 404, and
// anything unexpected is a generic 500 with the detail logged server-side.
func respondError(c *gin.Context, err error) {
	var stockErr *domain.InsufficientStockError // Carries the available count
	switch {
	case errors.As(err, &stockErr):
		// Business-rule violation with the exact-count message
		c.JSON(http.StatusBadRequest, gin.H{"message": stockErr.Error()})
	case errors.Is(err, domain.ErrAlreadyCancelled):
		// Conflict on a terminal order status
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCartItemNotFound),
		errors.Is(err, domain.ErrNoOrders):
		// Missing entity or empty order listing
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		// Unexpected store/transport failure; detail stays server-side
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(), // Request route
			"error": err.Error(),  // Error message
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
	}
}

// cacheClient returns the Redis client injected by the route group
// middleware, or nil when none was injected (e.g. in handler tests)
func cacheClient(c *gin.Context) *redis.Client {
	if v, ok := c.Get("redisClient"); ok {
		if rdb, ok := v.(*redis.Client); ok {
			return rdb
		}
	}
	return nil
}
