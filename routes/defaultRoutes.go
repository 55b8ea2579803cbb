package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lakshmi-store/lakshmi-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
