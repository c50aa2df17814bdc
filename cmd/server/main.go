package main

import (
	"log"
	"net/http"
	"os"

	"busmate/internal/config"
	"busmate/internal/logger"
	"busmate/internal/middleware"
	"busmate/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Open the account store
	config.InitDB()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚍 BusMate server running at :%s", port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
