package api

import (
	"context"                      // Context for Redis operations
	"net/http"                     // HTTP status codes
	"shop_system/internal/domain"  // Importing domain models
	"shop_system/internal/service" // Workflow layer
	"shop_system/internal/utils"   // Utility functions
	"strconv"                      // String conversion
	"time"                         // Cache TTL

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Fixed-point decimal for money
)

// productsCacheKey caches the unfiltered product listing
const productsCacheKey = "products:all"

// productCacheKey builds the per-product cache key
func productCacheKey(id uint) string {
	return "product:" + strconv.Itoa(int(id))
}

// invalidateProductCache drops the listing and per-product cache entries
func invalidateProductCache(c *gin.Context) {
	if rdb := cacheClient(c); rdb != nil {
		ctx := context.Background()                               // Context for Redis operations
		_ = utils.DeleteCache(ctx, rdb, productsCacheKey)         // Listing cache
		_ = utils.DeleteCacheByPattern(ctx, rdb, "product:*")     // Per-product cache
	}
}

// ProductRequest represents a product create/update request
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`       // Product name must be provided
	Description string          `json:"description"`                   // Optional description
	Price       decimal.Decimal `json:"price"`                         // Unit price, validated below
	Stock       int             `json:"stock" binding:"gte=0"`         // Initial stock, never negative
	CategoryID  uint            `json:"categoryId" binding:"required"` // Owning category
	Images      []string        `json:"images"`                        // Image URLs at the asset store
}

// CreateProductHandler creates a catalog product (admin only)
func CreateProductHandler(svc *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		// The unit price must be strictly positive
		if !req.Price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be greater than zero"})
			return
		}
		product, err := svc.Create(req.Name, req.Description, req.Price, req.Stock, req.CategoryID, req.Images)
		if err != nil {
			respondError(c, err) // Category not found or store failure
			return
		}
		invalidateProductCache(c) // Drop stale catalog cache
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
	}
}

// ListProductsHandler returns all products, optionally filtered by category
// (public; the unfiltered listing is cached)
func ListProductsHandler(svc *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categoryID uint // Zero means no filter
		if raw := c.Query("category"); raw != "" {
			v, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category id"})
				return
			}
			categoryID = uint(v) // Filter by this category
		}
		ctx := context.Background() // Context for Redis operations
		rdb := cacheClient(c)       // Redis client, if injected
		// Only the unfiltered listing is cached
		if rdb != nil && categoryID == 0 {
			var cached []domain.Product
			if found, err := utils.GetCache(ctx, rdb, productsCacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{"products": cached, "cached": true})
				return
			}
		}
		products, err := svc.List(categoryID)
		if err != nil {
			respondError(c, err) // Store failure
			return
		}
		// Cache the unfiltered listing for 60 seconds
		if rdb != nil && categoryID == 0 {
			_ = utils.SetCache(ctx, rdb, productsCacheKey, products, 60*time.Second)
		}
		// Return the listing
		c.JSON(http.StatusOK, gin.H{"products": products, "cached": false})
	}
}

// GetProductHandler returns one product with its images (public, cached)
func GetProductHandler(svc *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the product id from the path
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
			return
		}
		ctx := context.Background() // Context for Redis operations
		rdb := cacheClient(c)       // Redis client, if injected
		// Try the cache first
		if rdb != nil {
			var cached domain.Product
			if found, err := utils.GetCache(ctx, rdb, productCacheKey(uint(id)), &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{"product": cached, "cached": true})
				return
			}
		}
		product, err := svc.Get(uint(id))
		if err != nil {
			respondError(c, err) // Product not found or store failure
			return
		}
		// Cache the product for 60 seconds
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, productCacheKey(product.ID), product, 60*time.Second)
		}
		// Return the product
		c.JSON(http.StatusOK, gin.H{"product": product, "cached": false})
	}
}

// UpdateProductHandler updates a catalog product (admin only)
func UpdateProductHandler(svc *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the product id from the path
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
			return
		}
		var req ProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		// The unit price must be strictly positive
		if !req.Price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be greater than zero"})
			return
		}
		product, err := svc.Update(uint(id), req.Name, req.Description, req.Price, req.Stock, req.CategoryID, req.Images)
		if err != nil {
			respondError(c, err) // Product/category not found or store failure
			return
		}
		invalidateProductCache(c) // Drop stale catalog cache
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
	}
}

// DeleteProductHandler removes a catalog product (admin only)
func DeleteProductHandler(svc *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the product id from the path
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			respondError(c, err) // Product not found or store failure
			return
		}
		invalidateProductCache(c) // Drop stale catalog cache
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
