package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lakshmi-store/lakshmi-api/initializers"
	"github.com/lakshmi-store/lakshmi-api/models"
	"github.com/lakshmi-store/lakshmi-api/utils"
	"gorm.io/gorm"
)

// GetCustomers lists customer profiles for the admin console, newest first,
// with optional search on name or phone.
func GetCustomers(ctx *gin.Context) {
	query := initializers.DB.Order("created_at desc")

	if search := ctx.Query("search"); search != "" {
		query = query.Where("full_name LIKE ? OR phone_number LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var customers []models.Profile
	if result := query.Find(&customers); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch customers")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"customers": customers})
}

// SetApprovalStatus moves a profile to approved or rejected. There is no
// transition guard: a rejected customer can later be approved.
func SetApprovalStatus(ctx *gin.Context) {
	customerId, err := strconv.Atoi(ctx.Param("customerId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse customerId")
		return
	}

	var input struct {
		Status string `json:"status" binding:"required,oneof=approved rejected"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	result := initializers.DB.Model(&models.Profile{}).
		Where("id = ?", customerId).
		Update("approval_status", input.Status)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update customer")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Customer not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Customer " + input.Status})
}

// RecordPayment reduces a customer's overall lease balance, floored at zero.
// Excess payment is silently absorbed. Only the profile aggregate moves;
// individual lease agreements are untouched.
func RecordPayment(ctx *gin.Context) {
	customerId, err := strconv.Atoi(ctx.Param("customerId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse customerId")
		return
	}

	var input struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Please enter a valid payment amount")
		return
	}

	var newBalance float64
	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("id = ?", customerId).First(&profile).Error; err != nil {
			return err
		}
		newBalance = math.Max(0, profile.OverallLeaseBalance-input.Amount)
		return tx.Model(&profile).Update("overall_lease_balance", newBalance).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Customer not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to record payment")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":    "Payment recorded successfully",
		"newBalance": newBalance,
	})
}

type pastCustomerInput struct {
	FullName        string  `json:"fullName" binding:"required,min=2"`
	PhoneNumber     string  `json:"phoneNumber" binding:"required,min=10"`
	Password        string  `json:"password" binding:"required,min=6"`
	Address         string  `json:"address"`
	LeaseBalance    float64 `json:"leaseBalance" binding:"gte=0"`
	MonthlyAmount   float64 `json:"monthlyAmount" binding:"gte=0"`
	NextPaymentDate string  `json:"nextPaymentDate"`
}

// AddPastCustomer backfills an existing offline customer: a login identity,
// an approved profile carrying the outstanding balance, and optionally a
// lease agreement with no originating order. Runs entirely server side, so
// the acting admin's session is never replaced by the new user's.
func AddPastCustomer(ctx *gin.Context) {
	var input pastCustomerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var existing models.User
	result := initializers.DB.Where("phone = ?", input.PhoneNumber).Find(&existing)
	if result.Error != nil {
		log.Println("Database error during user check:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected > 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgPhoneAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	var nextPayment *time.Time
	if input.NextPaymentDate != "" {
		parsed, parseErr := time.Parse("2006-01-02", input.NextPaymentDate)
		if parseErr != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "nextPaymentDate must be YYYY-MM-DD")
			return
		}
		nextPayment = &parsed
	}

	user := models.User{
		Phone:    input.PhoneNumber,
		Email:    syntheticEmail(input.PhoneNumber),
		Password: hashedPassword,
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := models.Profile{
			UserID:              user.ID,
			FullName:            input.FullName,
			PhoneNumber:         input.PhoneNumber,
			Address:             input.Address,
			ApprovalStatus:      models.ApprovalApproved,
			OverallLeaseBalance: input.LeaseBalance,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		if err := tx.Create(&models.UserRole{UserID: user.ID, Role: models.RoleCustomer}).Error; err != nil {
			return err
		}

		if input.LeaseBalance > 0 {
			monthly := input.MonthlyAmount
			if monthly == 0 {
				monthly = input.LeaseBalance / utils.LeaseTermMonths
			}
			lease := models.LeaseAgreement{
				CustomerID:       user.ID,
				OrderID:          nil, // past customer, no order reference
				TotalAmount:      input.LeaseBalance,
				MonthlyAmount:    monthly,
				RemainingBalance: input.LeaseBalance,
				NextPaymentDate:  nextPayment,
				Status:           models.LeaseStatusActive,
			}
			if err := tx.Create(&lease).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Println("Past customer creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add past customer")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Past customer added successfully. They can log in with their phone number and the password you set.",
		"userId":  user.ID,
	})
}

// GetAnalytics aggregates the dashboard metrics in one response.
func GetAnalytics(ctx *gin.Context) {
	db := initializers.DB

	var totalOrders, pendingOrders int64
	db.Model(&models.Order{}).Count(&totalOrders)
	db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&pendingOrders)

	var totalCustomers, pendingApprovals int64
	db.Model(&models.Profile{}).Where("approval_status = ?", models.ApprovalApproved).Count(&totalCustomers)
	db.Model(&models.Profile{}).Where("approval_status = ?", models.ApprovalPending).Count(&pendingApprovals)

	var totalRevenue, totalLeaseBalance float64
	db.Model(&models.Order{}).Select("COALESCE(SUM(total_amount), 0)").Scan(&totalRevenue)
	db.Model(&models.Profile{}).Select("COALESCE(SUM(overall_lease_balance), 0)").Scan(&totalLeaseBalance)

	var activeProducts int64
	db.Model(&models.Product{}).Where("is_active = ?", true).Count(&activeProducts)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"totalOrders":       totalOrders,
		"pendingOrders":     pendingOrders,
		"totalCustomers":    totalCustomers,
		"pendingApprovals":  pendingApprovals,
		"totalRevenue":      totalRevenue,
		"totalLeaseBalance": totalLeaseBalance,
		"activeProducts":    activeProducts,
	})
}
