package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lakshmi-store/lakshmi-api/controllers"
	"github.com/lakshmi-store/lakshmi-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middlewares.RequireAuth(), controllers.GetMe)
	}

	server.GET("/geocode/reverse", controllers.ReverseGeocode)

	profile := server.Group("/profile", middlewares.RequireAuth())
	{
		profile.GET("", controllers.GetMe)
		profile.PUT("", controllers.UpdateProfile)
	}
}
