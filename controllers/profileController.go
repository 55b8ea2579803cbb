package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakshmi-store/lakshmi-api/initializers"
	"github.com/lakshmi-store/lakshmi-api/models"
)

// UpdateProfile lets a customer edit their own name, phone and address.
// Approval status and lease balance are admin-only and never touched here.
func UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	var updateData struct {
		FullName    string `json:"fullName" binding:"required,min=2"`
		PhoneNumber string `json:"phoneNumber" binding:"required,min=10"`
		Address     string `json:"address" binding:"required,min=5"`
	}
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	result := initializers.DB.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"full_name":    updateData.FullName,
			"phone_number": updateData.PhoneNumber,
			"address":      updateData.Address,
		})
	if result.Error != nil {
		log.Println("Profile update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to update profile")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, msgProfileNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
