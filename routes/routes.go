package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vehicle-registry-api/config"
	"vehicle-registry-api/controllers"
	"vehicle-registry-api/middleware"
	"vehicle-registry-api/repositories"
	"vehicle-registry-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Repositories and services
	users := repositories.NewUserRepository(db)
	vehicles := repositories.NewVehicleRepository(db)
	stats := repositories.NewStatsRepository(db)
	tokens := services.NewTokenService(cfg.JWTSecret)

	// Controllers
	authController := controllers.NewAuthController(users, tokens, emailService)
	vehicleController := controllers.NewVehicleController(vehicles, stats)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (register and login are public, rate limited)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(30, 10))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		profile := protected.Group("/auth")
		{
			profile.GET("/profile", authController.GetProfile)
			profile.PUT("/profile", authController.UpdateProfile)
		}

		vehicleRoutes := protected.Group("/vehicles")
		{
			vehicleRoutes.POST("", vehicleController.CreateVehicle)
			vehicleRoutes.GET("", vehicleController.GetVehicles)
			vehicleRoutes.GET("/stats", vehicleController.GetStatistics)
			vehicleRoutes.GET("/:id", vehicleController.GetVehicle)
			vehicleRoutes.PUT("/:id", vehicleController.UpdateVehicle)
			vehicleRoutes.DELETE("/:id", vehicleController.DeleteVehicle)
		}
	}
}

// SetupCORS allows browser clients from any origin.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
