package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lakshmi-store/lakshmi-api/initializers"
	"github.com/lakshmi-store/lakshmi-api/models"
)

// GetMyLeases returns the customer's lease agreements with their originating
// order. Backfilled past customers have leases with no order attached.
func GetMyLeases(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	var leases []models.LeaseAgreement
	result := initializers.DB.
		Preload("Order").
		Where("customer_id = ?", userID).
		Order("created_at desc").
		Find(&leases)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch lease agreements")
		return
	}

	var profile models.Profile
	overallBalance := 0.0
	if err := initializers.DB.Where("user_id = ?", userID).First(&profile).Error; err == nil {
		overallBalance = profile.OverallLeaseBalance
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"leases":              leases,
		"overallLeaseBalance": overallBalance,
	})
}

// GetLeasePayments lists recorded payments for one agreement. Payments are
// not written anywhere today; the admin record-payment flow only adjusts the
// profile aggregate, so this usually returns an empty list.
func GetLeasePayments(ctx *gin.Context) {
	leaseId, err := strconv.Atoi(ctx.Param("leaseId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse leaseId")
		return
	}

	var payments []models.LeasePayment
	result := initializers.DB.
		Where("lease_agreement_id = ?", leaseId).
		Order("payment_date desc").
		Find(&payments)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch lease payments")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"payments": payments})
}
