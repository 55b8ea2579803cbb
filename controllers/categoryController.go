package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lakshmi-store/lakshmi-api/initializers"
	"github.com/lakshmi-store/lakshmi-api/models"
	"gorm.io/gorm"
)

// GetCategories lists active categories for the storefront.
func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if result := initializers.DB.Where("is_active = ?", true).Order("name asc").Find(&categories); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"categories": categories})
}

// GetCategoryProducts returns a category by slug with its active products.
func GetCategoryProducts(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var category models.Category
	if err := initializers.DB.Where("slug = ? AND is_active = ?", slug, true).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "category not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "failed to fetch category")
		}
		return
	}

	var products []models.Product
	if result := initializers.DB.
		Where("category_id = ? AND is_active = ?", category.ID, true).
		Find(&products); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"category": category, "products": products})
}

// Admin category management

func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func UpdateCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch category", err)
		}
		return
	}

	var updateData struct {
		Name        string `json:"name" binding:"required"`
		Slug        string `json:"slug" binding:"required"`
		Description string `json:"description"`
		ImageUrl    string `json:"imageUrl"`
		IsActive    *bool  `json:"isActive"`
	}
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updates := map[string]any{
		"name":        updateData.Name,
		"slug":        updateData.Slug,
		"description": updateData.Description,
		"image_url":   updateData.ImageUrl,
	}
	if updateData.IsActive != nil {
		updates["is_active"] = *updateData.IsActive
	}

	if err := initializers.DB.Model(&category).Updates(updates).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update category", err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func DeleteCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.Category{}, categoryId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete category", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Category deleted successfully."})
}
