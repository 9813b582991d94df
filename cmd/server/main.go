package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amanchougule09/Smart-Weather-Travel-Planner/internal/api"
	"github.com/amanchougule09/Smart-Weather-Travel-Planner/internal/config"
	"github.com/amanchougule09/Smart-Weather-Travel-Planner/internal/services"
	"github.com/amanchougule09/Smart-Weather-Travel-Planner/pkg/client"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting Smart Weather & Travel Planner")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	if cfg.Weather.APIKey == "" {
		logger.Warn("OPENWEATHER_API_KEY is not set; weather lookups will fail")
	}

	// Upstream clients
	weatherClient := client.NewOpenWeatherClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout, logger)
	geoClient := client.NewNominatimClient(cfg.Geocoding.BaseURL, cfg.Geocoding.Timeout, logger)
	routeClient := client.NewOSRMClient(cfg.Routing.BaseURL, cfg.Routing.Timeout, logger)

	// Services
	weatherSvc := services.NewWeatherService(weatherClient, cfg.Weather.DefaultCity, logger)
	placeSvc := services.NewPlaceService(geoClient, logger)
	routeSvc := services.NewRouteService(routeClient, logger)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	// Setup handlers and routes
	handler := api.NewHandler(weatherSvc, placeSvc, routeSvc, logger)
	api.SetupRoutes(app, handler, logger)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown Fiber app
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	// Default to 500 status code
	code := fiber.StatusInternalServerError

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"ok":    false,
		"error": err.Error(),
	})
}
