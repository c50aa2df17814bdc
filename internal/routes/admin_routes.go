package routes

import (
	"busmate/internal/controllers"
	"busmate/internal/middleware"

	"github.com/gin-gonic/gin"
)

// AdminRoutes exposes the read-only account diagnostics. Any signed-in
// account may read them; they carry no credentials.
func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth())
	{
		admin.GET("/accounts", controllers.ListAccounts)
		admin.GET("/accounts/count", controllers.CountAccounts)
	}
}
