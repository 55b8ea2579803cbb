package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lakshmi-store/lakshmi-api/controllers"
	"github.com/lakshmi-store/lakshmi-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("", controllers.AddToCart)
		cart.PUT("/:itemId", controllers.UpdateCartItem)
		cart.DELETE("/:itemId", controllers.RemoveCartItem)
		cart.DELETE("", controllers.ClearCart)
	}
}
