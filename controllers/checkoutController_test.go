package controllers

import (
	"net/http"
	"testing"

	"github.com/lakshmi-store/lakshmi-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCash(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	user := seedCustomer(t, db, "9876543210", models.ApprovalPending)
	product := seedProduct(t, db, "Silk Saree", 500)
	token := signTestToken(t, user.ID, models.RoleCustomer)

	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2}).Error)

	recorder := doRequest(t, server, http.MethodPost, "/checkout", token, jsonBody{
		"paymentType":     "cash",
		"deliveryAddress": "12 Test Street",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var order models.Order
	require.NoError(t, db.Preload("OrderItems").Where("customer_id = ?", user.ID).First(&order).Error)
	assert.Equal(t, models.PaymentTypeCash, order.PaymentType)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, float64(1000), order.TotalAmount)
	assert.NotEmpty(t, order.Reference)

	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, float64(500), order.OrderItems[0].UnitPrice)
	assert.Equal(t, 2, order.OrderItems[0].Quantity)

	var leaseCount int64
	db.Model(&models.LeaseAgreement{}).Where("customer_id = ?", user.ID).Count(&leaseCount)
	assert.Equal(t, int64(0), leaseCount, "cash orders never create a lease agreement")

	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.Equal(t, int64(0), cartCount, "cart must be empty after order placement")
}

func TestPlaceOrderLeaseApproved(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	user := seedCustomer(t, db, "9876543210", models.ApprovalApproved)
	product := seedProduct(t, db, "Silk Saree", 500)
	token := signTestToken(t, user.ID, models.RoleCustomer)

	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2}).Error)

	recorder := doRequest(t, server, http.MethodPost, "/checkout", token, jsonBody{
		"paymentType":     "lease",
		"deliveryAddress": "12 Test Street",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var order models.Order
	require.NoError(t, db.Where("customer_id = ?", user.ID).First(&order).Error)
	assert.Equal(t, models.PaymentTypeLease, order.PaymentType)
	assert.Equal(t, float64(1000), order.TotalAmount)

	var lease models.LeaseAgreement
	require.NoError(t, db.Where("customer_id = ?", user.ID).First(&lease).Error)
	assert.InDelta(t, 1100, lease.TotalAmount, 0.001)
	assert.InDelta(t, 1100.0/12, lease.MonthlyAmount, 0.001)
	assert.InDelta(t, 1100, lease.RemainingBalance, 0.001)
	assert.Equal(t, models.LeaseStatusActive, lease.Status)
	assert.False(t, lease.IsSettled)
	require.NotNil(t, lease.OrderID)
	assert.Equal(t, order.ID, *lease.OrderID)
	assert.NotNil(t, lease.NextPaymentDate)

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.InDelta(t, 1100, profile.OverallLeaseBalance, 0.001,
		"overall lease balance must grow by the lease total")
}

func TestPlaceOrderLeaseRejectedWithoutApproval(t *testing.T) {
	for _, status := range []string{models.ApprovalPending, models.ApprovalRejected} {
		t.Run(status, func(t *testing.T) {
			db := setupTestDB(t)
			server := setupRouter()

			user := seedCustomer(t, db, "9876543210", status)
			product := seedProduct(t, db, "Silk Saree", 500)
			token := signTestToken(t, user.ID, models.RoleCustomer)

			require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}).Error)

			recorder := doRequest(t, server, http.MethodPost, "/checkout", token, jsonBody{
				"paymentType":     "lease",
				"deliveryAddress": "12 Test Street",
			})
			assert.Equal(t, http.StatusForbidden, recorder.Code)

			var orderCount int64
			db.Model(&models.Order{}).Where("customer_id = ? AND payment_type = ?",
				user.ID, models.PaymentTypeLease).Count(&orderCount)
			assert.Equal(t, int64(0), orderCount,
				"an unapproved customer must never produce a lease order")

			var cartCount int64
			db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
			assert.Equal(t, int64(1), cartCount, "cart survives a rejected checkout")
		})
	}
}

func TestPlaceOrderRejectsRemovedProduct(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	user := seedCustomer(t, db, "9876543210", models.ApprovalApproved)
	product := seedProduct(t, db, "Silk Saree", 500)
	token := signTestToken(t, user.ID, models.RoleCustomer)

	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2}).Error)
	require.NoError(t, db.Delete(&product).Error)

	recorder := doRequest(t, server, http.MethodPost, "/checkout", token, jsonBody{
		"paymentType":     "cash",
		"deliveryAddress": "12 Test Street",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code,
		"a cart line without a live product must not price at zero")

	var orderCount int64
	db.Model(&models.Order{}).Where("customer_id = ?", user.ID).Count(&orderCount)
	assert.Equal(t, int64(0), orderCount)
}

func TestPlaceOrderValidation(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	user := seedCustomer(t, db, "9876543210", models.ApprovalApproved)
	token := signTestToken(t, user.ID, models.RoleCustomer)

	// Empty cart
	recorder := doRequest(t, server, http.MethodPost, "/checkout", token, jsonBody{
		"paymentType":     "cash",
		"deliveryAddress": "12 Test Street",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	product := seedProduct(t, db, "Kurta", 250)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}).Error)

	// Unknown payment type
	recorder = doRequest(t, server, http.MethodPost, "/checkout", token, jsonBody{
		"paymentType":     "credit",
		"deliveryAddress": "12 Test Street",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// Whitespace-only address
	recorder = doRequest(t, server, http.MethodPost, "/checkout", token, jsonBody{
		"paymentType":     "cash",
		"deliveryAddress": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCheckoutQuote(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	user := seedCustomer(t, db, "9876543210", models.ApprovalApproved)
	product := seedProduct(t, db, "Silk Saree", 500)
	token := signTestToken(t, user.ID, models.RoleCustomer)

	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2}).Error)

	recorder := doRequest(t, server, http.MethodGet, "/checkout/quote", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, float64(1000), body["cashTotal"])
	assert.InDelta(t, 1100, body["leaseTotal"].(float64), 0.001)
	assert.InDelta(t, 91.6666, body["monthlyAmount"].(float64), 0.001)
	assert.Equal(t, true, body["leaseEligible"])
}
