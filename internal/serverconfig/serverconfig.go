// Package serverconfig loads API server configuration from environment
// variables and an optional .env file.
package serverconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the API server
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Stripe StripeConfig
	Upload UploadConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// StripeConfig holds the checkout boundary configuration. An empty
// SecretKey puts checkout in demo mode.
type StripeConfig struct {
	SecretKey      string
	MonthlyPriceID string
	YearlyPriceID  string
	Origin         string
}

// UploadConfig bounds incoming export uploads
type UploadConfig struct {
	MaxBytes int64
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	maxBytes, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "10485760"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Stripe: StripeConfig{
			SecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
			MonthlyPriceID: getEnv("STRIPE_MONTHLY_PRICE_ID", "price_monthly"),
			YearlyPriceID:  getEnv("STRIPE_YEARLY_PRICE_ID", "price_yearly"),
			Origin:         getEnv("CHECKOUT_ORIGIN", "https://etsyprofit.io"),
		},
		Upload: UploadConfig{
			MaxBytes: maxBytes,
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
