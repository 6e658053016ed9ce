package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrConfiguration marks required configuration that is missing at startup.
// Fatal: nothing works until the environment is corrected.
var ErrConfiguration = errors.New("configuration error")

type Config struct {
	DatabaseURL            string
	RedisURL               string
	BaseURL                string  // Public base URL of this service (for QR codes)
	HomeURL                string  // Fallback redirect target for misses and failures
	AdminJWTSecret         string  // Secret for admin bearer tokens
	AdminJWTTTLHours       int     // Admin token lifetime in hours
	TestTrackingCode       string  // Well-known code the diagnostic endpoint increments
	LogLevel               string  // zerolog level name
	RateLimitRPS           float64 // Rate limit for admin/diagnostic endpoints (requests per second)
	RateLimitBurst         int     // Burst size for admin/diagnostic endpoints
	RateLimitRedirectRPS   float64 // Rate limit for the redirect path (more lenient)
	RateLimitRedirectBurst int     // Burst size for the redirect path
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		RedisURL:               getEnv("REDIS_URL", ""),
		BaseURL:                getEnv("BASE_URL", "http://localhost:8080"),
		HomeURL:                getEnv("HOME_URL", "/"),
		AdminJWTSecret:         getEnv("ADMIN_JWT_SECRET", ""),
		AdminJWTTTLHours:       getEnvInt("ADMIN_JWT_TTL_HOURS", 24),
		TestTrackingCode:       getEnv("TEST_TRACKING_CODE", "test123"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RateLimitRPS:           getEnvFloat("RATE_LIMIT_RPS", 5.0),
		RateLimitBurst:         getEnvInt("RATE_LIMIT_BURST", 10),
		RateLimitRedirectRPS:   getEnvFloat("RATE_LIMIT_REDIRECT_RPS", 30.0),
		RateLimitRedirectBurst: getEnvInt("RATE_LIMIT_REDIRECT_BURST", 60),
	}
}

// Validate reports missing required settings. DATABASE_URL has no sane
// default; ADMIN_JWT_SECRET is required because the sync endpoint must never
// run unauthenticated.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("%w: DATABASE_URL is required", ErrConfiguration)
	}
	if c.AdminJWTSecret == "" {
		return fmt.Errorf("%w: ADMIN_JWT_SECRET is required", ErrConfiguration)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
