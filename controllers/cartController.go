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

// loadCartItems fetches the user's cart rows joined with their product
// snapshot. Derived values are recomputed from scratch on every load.
func loadCartItems(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error
	return items, err
}

func cartSummary(items []models.CartItem) (itemCount int, totalAmount float64) {
	for _, item := range items {
		itemCount += item.Quantity
		totalAmount += float64(item.Quantity) * item.Product.CashPrice
	}
	return itemCount, totalAmount
}

func sendCartResponse(ctx *gin.Context, items []models.CartItem) {
	itemCount, totalAmount := cartSummary(items)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items":       items,
		"itemCount":   itemCount,
		"totalAmount": totalAmount,
	})
}

func GetCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	items, err := loadCartItems(initializers.DB, userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	sendCartResponse(ctx, items)
}

// AddToCart inserts a new cart row, or merges into an existing row when the
// same product, size and color is already present. Identical variant keys
// never produce duplicate rows.
func AddToCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Please sign in to add items to cart")
		return
	}

	var input struct {
		ProductID uint   `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	var existing models.CartItem
	err := initializers.DB.
		Where("user_id = ? AND product_id = ? AND size = ? AND color = ?",
			userID, input.ProductID, input.Size, input.Color).
		First(&existing).Error

	if err == nil {
		applyCartQuantity(ctx, userID, existing, existing.Quantity+input.Quantity)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch cart item")
		return
	}

	if input.Quantity <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Quantity must be positive")
		return
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Size:      input.Size,
		Color:     input.Color,
	}
	if err := initializers.DB.Create(&item).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	reloadCart(ctx, userID)
}

// applyCartQuantity persists a new quantity, deleting the row when the
// quantity drops to zero or below.
func applyCartQuantity(ctx *gin.Context, userID uint, item models.CartItem, newQuantity int) {
	if newQuantity <= 0 {
		if err := initializers.DB.Delete(&item).Error; err != nil {
			log.Println("Delete error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove cart item")
			return
		}
	} else {
		if err := initializers.DB.Model(&item).Update("quantity", newQuantity).Error; err != nil {
			log.Println("Update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart item")
			return
		}
	}

	reloadCart(ctx, userID)
}

func reloadCart(ctx *gin.Context, userID uint) {
	items, err := loadCartItems(initializers.DB, userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to reload cart")
		return
	}
	sendCartResponse(ctx, items)
}

func UpdateCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse itemId")
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var item models.CartItem
	if err := initializers.DB.Where("id = ? AND user_id = ?", itemId, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	applyCartQuantity(ctx, userID, item, input.Quantity)
}

func RemoveCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse itemId")
		return
	}

	result := initializers.DB.Where("id = ? AND user_id = ?", itemId, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		log.Println("Delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove cart item")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		return
	}

	reloadCart(ctx, userID)
}

// ClearCart deletes every row for the user. The response is the known empty
// cart, no reload round trip.
func ClearCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	if err := initializers.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		log.Println("Delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items":       []models.CartItem{},
		"itemCount":   0,
		"totalAmount": 0.0,
	})
}
