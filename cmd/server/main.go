package main

import (
	"fmt"
	"log"
	"net/http"

	"renegaderace/internal/config"
	handlers "renegaderace/internal/handlers/shared"
	"renegaderace/internal/middleware"
	"renegaderace/internal/repositories/mongodb"
	"renegaderace/internal/services"
	"renegaderace/pkg/cache"
	"renegaderace/pkg/database"
	appLogger "renegaderace/pkg/logger"
	"renegaderace/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logr, err := appLogger.NewLogger(&appLogger.Config{
		Level:  appLogger.LogLevel(cfg.App.LogLevel),
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Connect to MongoDB
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		logr.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	// Run index migrations
	migrator := database.NewMigrator(db.Database)
	if err := migrator.Up(); err != nil {
		logr.WithError(err).Fatal("Failed to run migrations")
	}

	// Connect to Redis. The repositories tolerate a nil cache, so a missing
	// Redis only costs the read-through path.
	var cacheService services.CacheService
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logr.WithError(err).Warn("Redis unavailable, running without cache")
	} else {
		cacheService = redisCache
		defer redisCache.Close()
	}

	// Repositories
	userRepo := mongodb.NewUserRepository(db.Database, cacheService)
	trackRepo := mongodb.NewTrackRepository(db.Database)
	vehicleRepo := mongodb.NewVehicleRepository(db.Database, cacheService)
	reservationRepo := mongodb.NewReservationRepository(db.Database)
	favoriteRepo := mongodb.NewFavoriteRepository(db.Database)
	messagingRepo := mongodb.NewMessagingRepository(db.Database)
	teamRepo := mongodb.NewTeamRepository(db.Database)

	// Services
	userService := services.NewUserService(userRepo, logr)
	catalogService := services.NewCatalogService(vehicleRepo, trackRepo, userRepo, logr)
	reservationService := services.NewReservationService(reservationRepo, vehicleRepo, userRepo, logr)
	favoriteService := services.NewFavoriteService(favoriteRepo, vehicleRepo, trackRepo, logr)
	messagingService := services.NewMessagingService(messagingRepo, userRepo, vehicleRepo, logr)
	teamService := services.NewTeamService(teamRepo, userRepo, logr)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	messagingHandler := handlers.NewMessagingHandler(messagingService)
	teamHandler := handlers.NewTeamHandler(teamService)

	// Initialize Gin router
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(logr.GetLogrusLogger()))

	// API routes
	jwtSecret := cfg.Security.JWTSecret
	v1 := router.Group("/api/v1")
	{
		routes.SetupUserRoutes(v1, userHandler, jwtSecret)
		routes.SetupCatalogRoutes(v1, catalogHandler, jwtSecret)
		routes.SetupReservationRoutes(v1, reservationHandler, jwtSecret)
		routes.SetupFavoriteRoutes(v1, favoriteHandler, jwtSecret)
		routes.SetupMessagingRoutes(v1, messagingHandler, jwtSecret)
		routes.SetupTeamRoutes(v1, teamHandler, jwtSecret)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
		cacheStatus := "disabled"
		if redisCache != nil {
			cacheStatus = "ok"
			if err := redisCache.Ping(c.Request.Context()); err != nil {
				cacheStatus = "unavailable"
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
			"cache":   cacheStatus,
		})
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logr.WithField("addr", addr).Info("Starting server")
	if err := http.ListenAndServe(addr, router); err != nil {
		logr.WithError(err).Fatal("Server stopped")
	}
}
