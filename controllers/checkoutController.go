package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lakshmi-store/lakshmi-api/initializers"
	"github.com/lakshmi-store/lakshmi-api/models"
	"github.com/lakshmi-store/lakshmi-api/utils"
	"gorm.io/gorm"
)

var (
	errEmptyCart          = errors.New("cart is empty")
	errLeaseNotApproved   = errors.New("lease payments require admin approval")
	errMissingAddress     = errors.New("delivery address is required")
	errBadPaymentType     = errors.New("payment type must be cash or lease")
	errProfileNotLoaded   = errors.New("profile not found")
	errUnavailableProduct = errors.New("an item in your cart is no longer available")
)

type placeOrderInput struct {
	PaymentType     string `json:"paymentType" binding:"required"`
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
}

// generateOrderReference builds a unique human-scannable order reference.
func generateOrderReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// GetCheckoutQuote returns the cash total, the lease schedule for the current
// cart and whether the customer is eligible to choose lease financing.
func GetCheckoutQuote(ctx *gin.Context) {
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

	_, totalAmount := cartSummary(items)
	quote := utils.QuoteLease(totalAmount)

	var profile models.Profile
	leaseEligible := false
	if err := initializers.DB.Where("user_id = ?", userID).First(&profile).Error; err == nil {
		leaseEligible = profile.ApprovalStatus == models.ApprovalApproved
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cashTotal":     quote.CashTotal,
		"leaseTotal":    quote.LeaseTotal,
		"monthlyAmount": quote.MonthlyAmount,
		"leaseEligible": leaseEligible,
	})
}

// placeOrder runs the whole checkout sequence in one transaction: order row,
// item rows with captured unit prices, the lease agreement and balance
// increment when financing, then the cart wipe. A failure anywhere rolls
// everything back.
func placeOrder(db *gorm.DB, userID uint, input placeOrderInput) (*models.Order, error) {
	paymentType := strings.ToLower(input.PaymentType)
	if paymentType != models.PaymentTypeCash && paymentType != models.PaymentTypeLease {
		return nil, errBadPaymentType
	}
	if strings.TrimSpace(input.DeliveryAddress) == "" {
		return nil, errMissingAddress
	}

	items, err := loadCartItems(db, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errEmptyCart
	}

	// A product deleted while sitting in a cart preloads as a zero value and
	// would price the line at zero. Refuse rather than sell for free.
	for _, item := range items {
		if item.Product.ID == 0 {
			return nil, errUnavailableProduct
		}
	}

	var profile models.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errProfileNotLoaded
		}
		return nil, err
	}

	// Server-side gate: holds even when the client UI is bypassed.
	if paymentType == models.PaymentTypeLease && profile.ApprovalStatus != models.ApprovalApproved {
		return nil, errLeaseNotApproved
	}

	_, totalAmount := cartSummary(items)

	order := models.Order{
		Reference:       generateOrderReference(),
		CustomerID:      userID,
		OrderDate:       time.Now(),
		PaymentType:     paymentType,
		Status:          models.OrderStatusPending,
		TotalAmount:     totalAmount,
		DeliveryAddress: input.DeliveryAddress,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range items {
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.Product.CashPrice,
				Size:      item.Size,
				Color:     item.Color,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		if paymentType == models.PaymentTypeLease {
			quote := utils.QuoteLease(totalAmount)
			nextPayment := time.Now().AddDate(0, 0, utils.LeaseGracePeriod)
			orderID := order.ID
			lease := models.LeaseAgreement{
				CustomerID:       userID,
				OrderID:          &orderID,
				TotalAmount:      quote.LeaseTotal,
				MonthlyAmount:    quote.MonthlyAmount,
				RemainingBalance: quote.LeaseTotal,
				NextPaymentDate:  &nextPayment,
				Status:           models.LeaseStatusActive,
				IsSettled:        false,
			}
			if err := tx.Create(&lease).Error; err != nil {
				return err
			}

			// Atomic increment, no read-then-write race.
			if err := tx.Model(&models.Profile{}).
				Where("user_id = ?", userID).
				Update("overall_lease_balance", gorm.Expr("overall_lease_balance + ?", quote.LeaseTotal)).Error; err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func PlaceOrder(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	var input placeOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	order, err := placeOrder(initializers.DB, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, errLeaseNotApproved):
			sendErrorResponse(ctx, http.StatusForbidden, err.Error())
		case errors.Is(err, errEmptyCart), errors.Is(err, errMissingAddress),
			errors.Is(err, errBadPaymentType), errors.Is(err, errUnavailableProduct):
			sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		default:
			log.Println("Error placing order:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":   "Order placed successfully.",
		"orderId":   order.ID,
		"reference": order.Reference,
	})
}
