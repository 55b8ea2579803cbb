package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lakshmi-store/lakshmi-api/controllers"
	"github.com/lakshmi-store/lakshmi-api/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/customers", controllers.GetCustomers)
		admin.POST("/customers", controllers.AddPastCustomer)
		admin.PATCH("/customers/:customerId/approval", controllers.SetApprovalStatus)
		admin.POST("/customers/:customerId/payments", controllers.RecordPayment)

		admin.GET("/orders", controllers.GetOrders)
		admin.PATCH("/orders/:orderId/status", controllers.UpdateOrderStatus)
		admin.GET("/orders/undelivered-count", controllers.GetUndeliveredOrders)

		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.POST("/products/:id/images", controllers.UploadProductImages)

		admin.POST("/categories", controllers.CreateCategory)
		admin.PUT("/categories/:id", controllers.UpdateCategory)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)

		admin.GET("/leases/:leaseId/payments", controllers.GetLeasePayments)
		admin.GET("/analytics", controllers.GetAnalytics)
	}
}
