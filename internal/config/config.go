package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}

	Weather struct {
		APIKey      string
		BaseURL     string
		Timeout     time.Duration
		DefaultCity string
	}

	Geocoding struct {
		BaseURL string
		Timeout time.Duration
	}

	Routing struct {
		BaseURL string
		Timeout time.Duration
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("FIBER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("FIBER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("FIBER_WRITE_TIMEOUT", "10s"))

	// Weather provider configuration
	cfg.Weather.APIKey = getEnv("OPENWEATHER_API_KEY", "")
	cfg.Weather.BaseURL = getEnv("OPENWEATHER_URL", "https://api.openweathermap.org/data/2.5")
	cfg.Weather.Timeout = parseDuration(getEnv("OPENWEATHER_TIMEOUT", "10s"))
	cfg.Weather.DefaultCity = getEnv("DEFAULT_CITY", "Sangli")

	// Geocoding provider configuration
	cfg.Geocoding.BaseURL = getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	cfg.Geocoding.Timeout = parseDuration(getEnv("NOMINATIM_TIMEOUT", "10s"))

	// Routing provider configuration
	cfg.Routing.BaseURL = getEnv("OSRM_URL", "https://router.project-osrm.org")
	cfg.Routing.Timeout = parseDuration(getEnv("OSRM_TIMEOUT", "12s"))

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}
