// main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/icutrack/icu-api/config"
	"github.com/icutrack/icu-api/endpoint"
	"github.com/icutrack/icu-api/middleware"
	"github.com/icutrack/icu-api/model"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectMySQL()
	if err != nil {
		log.Fatalf("Error connecting to MySQL: %v", err)
	}
	db.AutoMigrate(&model.Patient{}, &model.User{})

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	// Create a Gin router with default middleware
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.EndpointCallLogger())

	// Plaintext health banner for uptime probes
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, fmt.Sprintf("%s is running", cfg.AppName))
	})

	api := router.Group("/api")
	api.GET("/patients", endpoint.ListPatients)
	api.POST("/patients", endpoint.CreatePatient)
	api.POST("/login", endpoint.Login)
	api.GET("/health/db", middleware.AdminTokenRequired(cfg.AdminToken), endpoint.DatabaseHealth)

	admin := api.Group("/admin", middleware.AdminTokenRequired(cfg.AdminToken))
	admin.POST("/seed-users", endpoint.SeedUsers)
	admin.PATCH("/users/:username", endpoint.AdminUpdateUser)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
