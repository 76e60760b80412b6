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

// categoriesCacheKey caches the public category listing
const categoriesCacheKey = "categories:all"

// CategoryRequest represents a category create/update request
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"` // Category name must be provided
	Description string `json:"description"`             // Optional description
}

// CreateCategoryHandler creates a category with a generated sequential code
func CreateCategoryHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		category, err := svc.Create(req.Name, req.Description)
		if err != nil {
			respondError(c, err) // Store failure
			return
		}
		// Invalidate the category listing cache
		if rdb := cacheClient(c); rdb != nil {
			_ = utils.DeleteCache(context.Background(), rdb, categoriesCacheKey)
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "category": category})
	}
}

// ListCategoriesHandler returns all categories (public, cached)
func ListCategoriesHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		rdb := cacheClient(c)       // Redis client, if injected
		// Try the cache first
		if rdb != nil {
			var cached []domain.Category
			if found, err := utils.GetCache(ctx, rdb, categoriesCacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{"categories": cached, "cached": true})
				return
			}
		}
		categories, err := svc.List()
		if err != nil {
			respondError(c, err) // Store failure
			return
		}
		// Cache the listing for 60 seconds
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, categoriesCacheKey, categories, 60*time.Second)
		}
		// Return the listing
		c.JSON(http.StatusOK, gin.H{"categories": categories, "cached": false})
	}
}

// UpdateCategoryHandler updates name and description of a category
func UpdateCategoryHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the category id from the path
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category id"})
			return
		}
		var req CategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		category, err := svc.Update(uint(id), req.Name, req.Description)
		if err != nil {
			respondError(c, err) // Category not found or store failure
			return
		}
		// Invalidate the category listing cache
		if rdb := cacheClient(c); rdb != nil {
			_ = utils.DeleteCache(context.Background(), rdb, categoriesCacheKey)
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "category": category})
	}
}

// DeleteCategoryHandler removes a category
func DeleteCategoryHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the category id from the path
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category id"})
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			respondError(c, err) // Category not found or store failure
			return
		}
		// Invalidate the category listing cache
		if rdb := cacheClient(c); rdb != nil {
			_ = utils.DeleteCache(context.Background(), rdb, categoriesCacheKey)
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
