package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	PassengerRoutes(r)
	OperatorRoutes(r)
	AdminRoutes(r)

	return r
}
