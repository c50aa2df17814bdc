package routes

import (
	"busmate/internal/controllers"
	"busmate/internal/middleware"
	"busmate/internal/models"

	"github.com/gin-gonic/gin"
)

func OperatorRoutes(r *gin.Engine) {
	operator := r.Group("/operator")
	operator.Use(middleware.RequireAuthWithRole(models.RoleBusOperator))
	{
		operator.GET("/profile", controllers.GetOperatorProfile)
	}
}
