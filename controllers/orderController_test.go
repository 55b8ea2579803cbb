package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lakshmi-store/lakshmi-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, customerID uint, status string) models.Order {
	t.Helper()

	order := models.Order{
		Reference:       generateOrderReference(),
		CustomerID:      customerID,
		OrderDate:       time.Now(),
		PaymentType:     models.PaymentTypeCash,
		Status:          status,
		TotalAmount:     750,
		DeliveryAddress: "12 Test Street",
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}

func TestUpdateOrderStatusAllowedTransition(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	customer := seedCustomer(t, db, "9876543210", models.ApprovalApproved)
	admin := seedCustomer(t, db, "9000000001", models.ApprovalApproved)
	token := signTestToken(t, admin.ID, models.RoleAdmin)

	order := seedOrder(t, db, customer.ID, models.OrderStatusPending)

	recorder := doRequest(t, server, http.MethodPatch,
		fmt.Sprintf("/admin/orders/%d/status", order.ID), token,
		jsonBody{"status": "processing"})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var updated models.Order
	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)
}

func TestUpdateOrderStatusRejectsSkippedStep(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	customer := seedCustomer(t, db, "9876543210", models.ApprovalApproved)
	admin := seedCustomer(t, db, "9000000001", models.ApprovalApproved)
	token := signTestToken(t, admin.ID, models.RoleAdmin)

	order := seedOrder(t, db, customer.ID, models.OrderStatusPending)

	recorder := doRequest(t, server, http.MethodPatch,
		fmt.Sprintf("/admin/orders/%d/status", order.ID), token,
		jsonBody{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var updated models.Order
	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, updated.Status, "a rejected transition must not change the row")
}

func TestUpdateOrderStatusTerminalStates(t *testing.T) {
	for _, terminal := range []string{models.OrderStatusDelivered, models.OrderStatusCancelled} {
		t.Run(terminal, func(t *testing.T) {
			db := setupTestDB(t)
			server := setupRouter()

			customer := seedCustomer(t, db, "9876543210", models.ApprovalApproved)
			admin := seedCustomer(t, db, "9000000001", models.ApprovalApproved)
			token := signTestToken(t, admin.ID, models.RoleAdmin)

			order := seedOrder(t, db, customer.ID, terminal)

			recorder := doRequest(t, server, http.MethodPatch,
				fmt.Sprintf("/admin/orders/%d/status", order.ID), token,
				jsonBody{"status": "pending"})
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestUpdateOrderStatusRequiresAdmin(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	customer := seedCustomer(t, db, "9876543210", models.ApprovalApproved)
	token := signTestToken(t, customer.ID, models.RoleCustomer)

	order := seedOrder(t, db, customer.ID, models.OrderStatusPending)

	recorder := doRequest(t, server, http.MethodPatch,
		fmt.Sprintf("/admin/orders/%d/status", order.ID), token,
		jsonBody{"status": "processing"})
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestGetMyOrdersScopedToCustomer(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	alice := seedCustomer(t, db, "9876543210", models.ApprovalApproved)
	bob := seedCustomer(t, db, "9876543211", models.ApprovalApproved)
	seedOrder(t, db, alice.ID, models.OrderStatusPending)
	other := seedOrder(t, db, bob.ID, models.OrderStatusPending)

	token := signTestToken(t, alice.ID, models.RoleCustomer)

	recorder := doRequest(t, server, http.MethodGet, "/orders", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	orders := body["orders"].([]any)
	require.Len(t, orders, 1)

	recorder = doRequest(t, server, http.MethodGet, fmt.Sprintf("/orders/%d", other.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code, "another customer's order must look like it does not exist")
}

func TestGetUndeliveredOrdersCount(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter()

	customer := seedCustomer(t, db, "9876543210", models.ApprovalApproved)
	admin := seedCustomer(t, db, "9000000001", models.ApprovalApproved)
	token := signTestToken(t, admin.ID, models.RoleAdmin)

	seedOrder(t, db, customer.ID, models.OrderStatusPending)
	seedOrder(t, db, customer.ID, models.OrderStatusShipped)
	seedOrder(t, db, customer.ID, models.OrderStatusDelivered)
	seedOrder(t, db, customer.ID, models.OrderStatusCancelled)

	recorder := doRequest(t, server, http.MethodGet, "/admin/orders/undelivered-count", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, float64(2), body["undeliveredOrderCount"])
}
