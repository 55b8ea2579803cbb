package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lakshmi-store/lakshmi-api/initializers"
	"github.com/lakshmi-store/lakshmi-api/middlewares"
	"github.com/lakshmi-store/lakshmi-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

type jsonBody = map[string]any

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", testJWTSecret)
	os.Exit(m.Run())
}

// setupTestDB points the package-level DB at a fresh in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.UserRole{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.LeaseAgreement{},
		&models.LeasePayment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	initializers.DB = db
	return db
}

func setupRouter() *gin.Engine {
	server := gin.New()

	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", GetCart)
		cart.POST("", AddToCart)
		cart.PUT("/:itemId", UpdateCartItem)
		cart.DELETE("/:itemId", RemoveCartItem)
		cart.DELETE("", ClearCart)
	}

	checkout := server.Group("/checkout", middlewares.RequireAuth())
	{
		checkout.GET("/quote", GetCheckoutQuote)
		checkout.POST("", PlaceOrder)
	}

	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.GET("", GetMyOrders)
		orders.GET("/:orderId", GetMyOrder)
	}

	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/customers", GetCustomers)
		admin.POST("/customers", AddPastCustomer)
		admin.PATCH("/customers/:customerId/approval", SetApprovalStatus)
		admin.POST("/customers/:customerId/payments", RecordPayment)
		admin.PATCH("/orders/:orderId/status", UpdateOrderStatus)
		admin.GET("/orders/undelivered-count", GetUndeliveredOrders)
		admin.GET("/analytics", GetAnalytics)
		admin.DELETE("/products/:id", DeleteProduct)
	}

	server.GET("/products", GetProducts)

	auth := server.Group("/auth")
	{
		auth.POST("/signup", Signup)
		auth.POST("/login", Login)
	}
	server.GET("/me", middlewares.RequireAuth(), GetMe)

	return server
}

func signTestToken(t *testing.T, userID uint, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(userID),
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func doRequest(t *testing.T, server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func seedCustomer(t *testing.T, db *gorm.DB, phone, approvalStatus string) models.User {
	t.Helper()

	user := models.User{Phone: phone, Email: phone + "@lakshmi.app", Password: "hashed"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	profile := models.Profile{
		UserID:         user.ID,
		FullName:       "Test Customer",
		PhoneNumber:    phone,
		Address:        "12 Test Street",
		ApprovalStatus: approvalStatus,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	if err := db.Create(&models.UserRole{UserID: user.ID, Role: models.RoleCustomer}).Error; err != nil {
		t.Fatalf("failed to seed role: %v", err)
	}
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, cashPrice float64) models.Product {
	t.Helper()

	product := models.Product{
		Name:          name,
		CashPrice:     cashPrice,
		StockQuantity: 100,
		IsActive:      true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}
