package routes

import (
	"busmate/internal/controllers"
	"busmate/internal/middleware"
	"busmate/internal/models"

	"github.com/gin-gonic/gin"
)

func PassengerRoutes(r *gin.Engine) {
	passenger := r.Group("/passenger")
	passenger.Use(middleware.RequireAuthWithRole(models.RolePassenger))
	{
		passenger.GET("/profile", controllers.GetPassengerProfile)
	}
}
