package routes

import (
	"busmate/internal/controllers"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", controllers.SignupPassenger)
		auth.POST("/operator/signup", controllers.SignupOperator)
		auth.POST("/login", controllers.LoginUser)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}
}
