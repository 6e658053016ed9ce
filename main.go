package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"linkhop/internal/cache"
	"linkhop/internal/config"
	"linkhop/internal/controllers"
	"linkhop/internal/database"
	"linkhop/internal/jwt"
	"linkhop/internal/middleware"
	"linkhop/internal/repository"
	"linkhop/internal/service"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(logLevel).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, continuing without miss cache")
			cacheClient = nil
		} else {
			logger.Info().Msg("connected to Redis cache")
		}
	}

	// Initialize repository
	linkRepo := repository.NewLinkRepository(db)

	// Initialize JWT service for admin tokens
	jwtService := jwt.NewJWTService(
		cfg.AdminJWTSecret,
		time.Duration(cfg.AdminJWTTTLHours)*time.Hour,
	)

	// Initialize services
	resolverService := service.NewResolverService(linkRepo, cacheClient, logger)
	syncService := service.NewSyncService(linkRepo, logger)
	diagnosticService := service.NewDiagnosticService(linkRepo, logger)

	// Initialize controllers
	redirectController := controllers.NewRedirectController(resolverService, cfg.HomeURL)
	adminController := controllers.NewAdminController(syncService, diagnosticService)
	diagnosticController := controllers.NewDiagnosticController(diagnosticService, cfg.TestTrackingCode)
	qrcodeController := controllers.NewQRCodeController(cfg.BaseURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	redirectRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRedirectRPS), cfg.RateLimitRedirectBurst)

	// Create a Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Redirect endpoints with lenient rate limiting
	router.GET("/s", redirectRateLimiter.LimitMiddleware(), redirectController.RedirectQuery)
	router.GET("/s/:code", redirectRateLimiter.LimitMiddleware(), redirectController.Redirect)

	// QR code generation
	router.GET("/qrcode/:code", generalRateLimiter.LimitMiddleware(), qrcodeController.GenerateQRCode)

	// Diagnostic click tester - manual verification only, not production traffic
	router.GET("/test-tracking", generalRateLimiter.LimitMiddleware(), diagnosticController.TestTracking)

	// Admin routes - require a bearer token
	admin := router.Group("/admin")
	admin.Use(generalRateLimiter.LimitMiddleware())
	admin.Use(middleware.AuthMiddleware(jwtService))
	{
		admin.POST("/sync-short-links", adminController.SyncShortLinks)
		admin.GET("/sync-short-links", adminController.SyncStatus)
		admin.GET("/links/:code", adminController.GetLinkStats)
	}

	logger.Info().Msg("server starting on :8080")
	if err := router.Run(":8080"); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
