package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Lakshmi Store API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create customer account
- POST "/auth/login" - Sign in with phone number and password
- GET "/auth/me" - Get the signed-in customer's profile
- GET "/geocode/reverse" - Resolve coordinates to an address

CATALOG
- GET "/categories" - List active categories
- GET "/categories/:slug/products" - Products in a category
- GET "/products" - List products (pagination and search)
- GET "/products/:id" - Get product by ID

CART
- GET "/cart" - Get the cart with item count and total
- POST "/cart" - Add an item (merges identical variants)
- PUT "/cart/:itemId" - Update an item's quantity
- DELETE "/cart/:itemId" - Remove an item
- DELETE "/cart" - Clear the cart

CHECKOUT & ORDERS
- GET "/checkout/quote" - Cash total and lease schedule for the cart
- POST "/checkout" - Place an order (cash or lease)
- GET "/orders" - The customer's orders
- GET "/orders/:orderId" - Order detail
- GET "/leases" - The customer's lease agreements

ADMIN (requires admin role)
- GET "/admin/customers" - List customers
- PATCH "/admin/customers/:customerId/approval" - Approve or reject
- POST "/admin/customers/:customerId/payments" - Record a payment
- POST "/admin/customers" - Add a past customer with lease history
- GET "/admin/analytics" - Dashboard metrics
- GET "/admin/orders" - All orders
- PATCH "/admin/orders/:orderId/status" - Update order status
- GET "/admin/orders/undelivered-count" - Undelivered order count
- POST "/admin/products" and related - Product management
- POST "/admin/categories" and related - Category management
- GET "/admin/leases/:leaseId/payments" - Payments for a lease`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
