package main

import (
	"fmt"
	"log"
	"os"

	"solar-dispatch/internal/api/handlers"
	"solar-dispatch/internal/api/middleware"
	"solar-dispatch/internal/api/store"

	"github.com/gin-gonic/gin"
)

const maxStoredRuns = 32

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	runs := store.NewRunStore(maxStoredRuns)
	simulateHandler := handlers.NewSimulateHandler(runs)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.GET("/runs/:id", simulateHandler.GetRun)
		api.GET("/runs/:id/days/:date", simulateHandler.GetRunDay)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
