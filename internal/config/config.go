package config

import (
	"fmt"
	"os"

	"github.com/bozhidarvelkov/pixelmorph/internal/shared"
)

type Config struct {
	DatabaseURL         string
	ServerAddr          string
	FrontendBaseURL     string
	AllowedOrigin       string
	ClerkJWKSURL        string
	StripeSecretKey     string
	StripeWebhookSecret string
	CloudinaryCloudName string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		ServerAddr:          getEnv("SERVER_ADDR", ":8080"),
		FrontendBaseURL:     getEnv("FE_BASE_URL", "http://localhost:3000"),
		AllowedOrigin:       getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		ClerkJWKSURL:        os.Getenv("CLERK_JWKS_URL"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", "demo"),
	}

	required := []struct {
		name  string
		value string
	}{
		{"DATABASE_URL", cfg.DatabaseURL},
		{"CLERK_JWKS_URL", cfg.ClerkJWKSURL},
		{"STRIPE_SECRET_KEY", cfg.StripeSecretKey},
		{"STRIPE_WEBHOOK_SECRET", cfg.StripeWebhookSecret},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%w: %s is not set", shared.ErrorConfiguration, r.name)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
