package routes

import (
	"net/http"
	"restaurant-platform/internal/config"
	"restaurant-platform/internal/delivery/http/handler"
	"restaurant-platform/internal/infrastructure/database/postgres"
	"restaurant-platform/internal/infrastructure/mail"
	"restaurant-platform/internal/logger"
	"restaurant-platform/internal/middleware"
	"restaurant-platform/internal/usecase/admin"
	"restaurant-platform/internal/usecase/restaurant"
	"restaurant-platform/internal/usecase/user"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	mailer := mail.NewSMTPMailer(&cfg.SMTP)

	userRepository := postgres.NewUserRepository(db)
	verificationRepository := postgres.NewVerificationRepository(db)
	userService := user.NewService(userRepository, verificationRepository, mailer, cfg)
	userHandler := handler.NewUserHandler(userService)

	restaurantRepository := postgres.NewRestaurantRepository(db)
	categoryRepository := postgres.NewCategoryRepository(db)
	restaurantService := restaurant.NewService(restaurantRepository, categoryRepository)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)

	adminRepository := postgres.NewAdminRepository(db)
	adminService := admin.NewService(adminRepository)
	adminHandler := handler.NewAdminHandler(adminService)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)
		restaurantHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterProfileRoutes(protected)

			// Owner routes
			owner := protected.Group("")
			owner.Use(middleware.OwnerOnly())
			{
				restaurantHandler.RegisterOwnerRoutes(owner)
			}

			adminGroup := protected.Group("")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterAdminRoutes(adminGroup)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
