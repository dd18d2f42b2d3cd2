package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DatabaseURL string

	// Object storage (S3-compatible)
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Region    string
	S3Bucket    string
	S3UseSSL    bool

	// Auth
	JWTSecret          string
	AccessTokenMinutes int

	// Stripe
	StripeSecretKey string

	// SMTP
	SMTPHost    string
	SMTPPort    string
	SMTPFrom    string
	SMTPPass    string
	FrontendURL string

	// Server
	Port        string
	Environment string
	CORSOrigin  string
	LogLevel    string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),

		S3Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Region:    getEnv("S3_REGION", "us-east-2"),
		S3Bucket:    getEnv("S3_BUCKET", "studio-media"),
		S3UseSSL:    getEnvBool("S3_USE_SSL", false),

		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTokenMinutes: getEnvInt("JWT_ACCESS_TOKEN_MINUTES", 15),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
		SMTPFrom:    getEnv("SMTP_FROM", "hello@example.com"),
		SMTPPass:    getEnv("SMTP_PASSWORD", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:5173"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.S3AccessKey == "" {
		return fmt.Errorf("S3_ACCESS_KEY is required")
	}
	if c.S3SecretKey == "" {
		return fmt.Errorf("S3_SECRET_KEY is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
	}
	return defaultValue
}
