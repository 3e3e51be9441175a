package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Identity IdentityConfig
	Webhooks WebhooksConfig
	Checkout CheckoutConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// IdentityConfig points at the external identity provider. JWTSecret is the
// provider's shared HS256 secret used to verify access tokens locally.
type IdentityConfig struct {
	BaseURL        string
	APIKey         string
	JWTSecret      string
	RequestTimeout time.Duration
	ResetRedirect  string
}

// WebhooksConfig points at the automation backend that owns transactions,
// limits, spend aggregation and subscription state
type WebhooksConfig struct {
	BaseURL            string
	TransactionsPath   string
	DeletionPath       string
	LimitsReadPath     string
	LimitsWritePath    string
	SpendPath          string
	SubscriptionPath   string
	CRMPath            string
	RequestTimeout     time.Duration
	BreakerMaxFailures int
	BreakerResetAfter  time.Duration
}

// CheckoutConfig describes the external payment gateway page
type CheckoutConfig struct {
	PaymentURL  string
	DefaultPlan string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "granazap_user"),
			Password:        getEnv("DB_PASSWORD", "granazap_password"),
			Name:            getEnv("DB_NAME", "granazap_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Identity: IdentityConfig{
			BaseURL:        getEnv("IDENTITY_BASE_URL", "http://localhost:9999"),
			APIKey:         getEnv("IDENTITY_API_KEY", ""),
			JWTSecret:      getEnv("IDENTITY_JWT_SECRET", ""),
			RequestTimeout: getDurationEnv("IDENTITY_REQUEST_TIMEOUT", 5*time.Second),
			ResetRedirect:  getEnv("IDENTITY_RESET_REDIRECT", "http://localhost:3000/#/reset-password"),
		},
		Webhooks: WebhooksConfig{
			BaseURL:            getEnv("WEBHOOKS_BASE_URL", "http://localhost:5678"),
			TransactionsPath:   getEnv("WEBHOOKS_TRANSACTIONS_PATH", "/webhook/transactions"),
			DeletionPath:       getEnv("WEBHOOKS_DELETION_PATH", "/webhook/transactions/delete"),
			LimitsReadPath:     getEnv("WEBHOOKS_LIMITS_READ_PATH", "/webhook/limits"),
			LimitsWritePath:    getEnv("WEBHOOKS_LIMITS_WRITE_PATH", "/webhook/limits/save"),
			SpendPath:          getEnv("WEBHOOKS_SPEND_PATH", "/webhook/spend-by-category"),
			SubscriptionPath:   getEnv("WEBHOOKS_SUBSCRIPTION_PATH", "/webhook/subscription-status"),
			CRMPath:            getEnv("WEBHOOKS_CRM_PATH", "/webhook/crm-contact"),
			RequestTimeout:     getDurationEnv("WEBHOOKS_REQUEST_TIMEOUT", 10*time.Second),
			BreakerMaxFailures: getIntEnv("WEBHOOKS_BREAKER_MAX_FAILURES", 5),
			BreakerResetAfter:  getDurationEnv("WEBHOOKS_BREAKER_RESET_AFTER", 30*time.Second),
		},
		Checkout: CheckoutConfig{
			PaymentURL:  getEnv("CHECKOUT_PAYMENT_URL", "https://payfast.example.com/140026"),
			DefaultPlan: getEnv("CHECKOUT_DEFAULT_PLAN", "plano-completo"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if config.Identity.JWTSecret == "" {
		if config.IsProduction() {
			log.Fatal("IDENTITY_JWT_SECRET must be set in production environments")
		}
		log.Println("Development environment: IDENTITY_JWT_SECRET not set, session verification will reject all tokens")
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// EndpointURL joins the webhook base URL with one of the configured paths
func (c *WebhooksConfig) EndpointURL(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + path
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
