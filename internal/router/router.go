// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/carbonwise/carbonwise-backend/internal/config"
	"github.com/carbonwise/carbonwise-backend/internal/handlers"
	"github.com/carbonwise/carbonwise-backend/internal/middleware"
	"github.com/carbonwise/carbonwise-backend/internal/openfoodfacts"
	"github.com/carbonwise/carbonwise-backend/internal/repository"
	"github.com/carbonwise/carbonwise-backend/internal/services"
	"github.com/carbonwise/carbonwise-backend/internal/storage"
	"github.com/carbonwise/carbonwise-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// External clients
	offTimeout := time.Duration(cfg.OpenFoodFacts.Timeout) * time.Second
	productSource := openfoodfacts.NewClient(cfg.OpenFoodFacts.BaseURL, offTimeout)
	imageSource := openfoodfacts.NewImageClient(cfg.OpenFoodFacts.ImageBaseURL, offTimeout)

	var imageCache services.ImageCache
	if s3Cache, err := storage.NewS3ImageCache(cfg); err != nil {
		logrus.WithError(err).Warn("Image cache unavailable, continuing without it")
	} else {
		imageCache = s3Cache
	}

	// Repositories
	productRepo := repository.NewProductRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// Initialize services
	notificationService := services.NewNotificationService(cfg)
	productStore := services.NewProductStore(productRepo, productSource)
	imageResolver := services.NewImageResolver(imageSource, imageCache)
	recommendationService := services.NewRecommendationService(productStore, productRepo, imageResolver, cfg.Recommend)
	historyService := services.NewHistoryService(historyRepo, productStore, cfg.History.Window)
	authService := services.NewAuthService(db, cfg)
	friendService := services.NewFriendService(db, historyService, notificationService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(recommendationService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	userHandler := handlers.NewUserHandler(historyService)
	friendHandler := handlers.NewFriendHandler(friendService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product lookup with recommendations
		products := v1.Group("/products")
		{
			products.GET("/:barcode", middleware.OptionalAuth(), middleware.LookupRateLimit(), productHandler.GetProduct)
		}

		// Scan history routes
		history := v1.Group("/history")
		history.Use(middleware.AuthRequired())
		{
			history.POST("", historyHandler.AddToHistory)
			history.GET("", historyHandler.GetHistory)
			history.GET("/ecoscore", historyHandler.GetEcoscoreAverage)
			history.DELETE("/:scan_id", historyHandler.RemoveFromHistory)
		}

		// User routes
		users := v1.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("/:id/ecoscore", userHandler.GetUserEcoscore)
			users.PUT("/me/device", authHandler.UpdateDeviceToken)
		}

		// Friend routes
		friends := v1.Group("/friends")
		friends.Use(middleware.AuthRequired())
		{
			friends.GET("", friendHandler.ListFriends)
			friends.GET("/scores", friendHandler.GetFriendScores)
			friends.POST("/requests", friendHandler.SendRequest)
			friends.PUT("/requests/:id/accept", friendHandler.AcceptRequest)
			friends.DELETE("/:id", friendHandler.RemoveFriend)
		}
	}

	return r
}
