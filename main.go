// File: /main.go
package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"fitcircle-api/config"
	"fitcircle-api/database"
	"fitcircle-api/logger"
	"fitcircle-api/middleware"
	"fitcircle-api/realtime"
	"fitcircle-api/routes"
	"fitcircle-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Notification hub, optionally bridged across instances via redis
	hub := realtime.NewHub(log)
	go hub.Run()

	var publisher services.EventPublisher
	if cfg.RedisAddr != "" {
		bridge, err := realtime.NewRedisBridge(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer bridge.Close()
		go bridge.Listen(context.Background(), hub)
		publisher = bridge
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(logger.GinMiddleware(log))
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, hub, publisher, log)

	// Start server
	log.Info().Str("port", cfg.Port).Msg("starting FitCircle API server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
