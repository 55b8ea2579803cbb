package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lakshmi-store/lakshmi-api/controllers"
	"github.com/lakshmi-store/lakshmi-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	checkout := server.Group("/checkout", middlewares.RequireAuth())
	{
		checkout.GET("/quote", controllers.GetCheckoutQuote)
		checkout.POST("", controllers.PlaceOrder)
	}

	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.GET("", controllers.GetMyOrders)
		orders.GET("/:orderId", controllers.GetMyOrder)
	}

	server.GET("/leases", middlewares.RequireAuth(), controllers.GetMyLeases)
}
