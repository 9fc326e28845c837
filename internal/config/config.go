package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DatabaseConfig holds PostgreSQL connection settings.
// URL, when set, takes precedence over the individual parts.
type DatabaseConfig struct {
	URL                string `envconfig:"DATABASE_URL"`
	Host               string `envconfig:"DB_HOST"`
	Port               string `envconfig:"DB_PORT" default:"5432"`
	User               string `envconfig:"DB_USER"`
	Password           string `envconfig:"DB_PASSWORD"`
	Name               string `envconfig:"DB_NAME"`
	SSLMode            string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns       int    `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns       int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetimeSec int    `envconfig:"DB_CONN_MAX_LIFETIME_SEC" default:"300"`
}

// AuthConfig holds bearer token settings. An empty secret is allowed at
// startup; token routes then answer with a misconfiguration error.
type AuthConfig struct {
	Secret    string        `envconfig:"ACCESS_TOKEN_SECRET"`
	TokenTTL  time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"1h"`
	RateRPS   int           `envconfig:"RATE_LIMIT_RPS" default:"5"`
	RateBurst int           `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

// PaymentConfig holds payment gateway settings.
type PaymentConfig struct {
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
	Currency        string `envconfig:"PAYMENT_CURRENCY" default:"usd"`
}

// MinIOConfig holds object storage settings for uploaded images.
// Uploads are disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint  string `envconfig:"MINIO_ENDPOINT"`
	AccessKey string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey string `envconfig:"MINIO_SECRET_KEY"`
	Bucket    string `envconfig:"MINIO_BUCKET" default:"scholarstream"`
	UseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

// AppConfig is the centralized configuration struct for the application.
type AppConfig struct {
	AppHost     string `envconfig:"APP_HOST" default:"localhost:5000"`
	Port        string `envconfig:"PORT" default:"5000"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty   bool   `envconfig:"LOG_PRETTY" default:"false"`
	CORSOrigins string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173"`

	Database DatabaseConfig
	Auth     AuthConfig
	Payment  PaymentConfig
	MinIO    MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file is picked up by importing _ "github.com/joho/godotenv/autoload" in main;
// real environment variables take precedence.
func Load() (*AppConfig, error) {
	var c AppConfig
	// Nested fields resolve to their bare tag name (DB_HOST, not DATABASE_DB_HOST)
	// through envconfig's alt-name fallback.
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// AllowedOrigins returns CORSOrigins normalised for the fiber cors middleware.
func (c *AppConfig) AllowedOrigins() string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}
