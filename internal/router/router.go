// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/craftloom/handloom-backend/internal/config"
	"github.com/craftloom/handloom-backend/internal/handlers"
	"github.com/craftloom/handloom-backend/internal/middleware"
	"github.com/craftloom/handloom-backend/internal/models"
	"github.com/craftloom/handloom-backend/internal/services"
	"github.com/craftloom/handloom-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	productService := services.NewProductService(db)
	reviewService := services.NewReviewService(db)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage service")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	adminHandler := handlers.NewAdminHandler(reviewService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", middleware.Authenticate(), authHandler.Profile)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/reviews", reviewHandler.ListProductReviews)

			protected := products.Group("")
			protected.Use(middleware.Authenticate())
			{
				protected.POST("", middleware.RequireRole(models.RoleArtisan), productHandler.CreateProduct)
				protected.PUT("/:id", middleware.RequireRole(models.RoleArtisan, models.RoleAdmin), productHandler.UpdateProduct)
				protected.DELETE("/:id", middleware.RequireRole(models.RoleArtisan, models.RoleAdmin), productHandler.DeleteProduct)
				protected.POST("/:id/reviews", middleware.RequireRole(models.RoleBuyer), reviewHandler.CreateReview)
			}
		}

		// User routes
		users := api.Group("/users")
		users.Use(middleware.Authenticate())
		{
			users.GET("/profile", userHandler.GetProfile)
			users.PUT("/profile", userHandler.UpdateProfile)
			users.GET("", middleware.RequireRole(models.RoleAdmin), userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Review routes
		reviews := api.Group("/reviews")
		reviews.Use(middleware.Authenticate())
		{
			reviews.PUT("/:id", reviewHandler.UpdateReview)
			reviews.DELETE("/:id", reviewHandler.DeleteReview)
			reviews.POST("/:id/helpful", reviewHandler.VoteHelpful)
			reviews.POST("/:id/unhelpful", reviewHandler.VoteUnhelpful)
		}

		// Upload routes
		uploads := api.Group("/uploads")
		uploads.Use(middleware.Authenticate(), middleware.UploadRateLimit())
		{
			uploads.POST("/images", uploadHandler.UploadImages)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.Authenticate(), middleware.RequireRole(models.RoleAdmin))
		{
			adminReviews := admin.Group("/reviews")
			{
				adminReviews.GET("", adminHandler.ListReviews)
				adminReviews.PUT("/:id/approve", adminHandler.ApproveReview)
				adminReviews.PUT("/:id/reject", adminHandler.RejectReview)
				adminReviews.POST("/:id/response", adminHandler.RespondToReview)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
