// Package config provides configuration management for the bag pricing service.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Scrap provider names accepted by SCRAP_PROVIDER.
const (
	ScrapProviderTable      = "table"
	ScrapProviderPredictive = "predictive"
)

// ErrMissingJWTSecret is returned when JWT authentication is enabled without a key.
var ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY is required when JWT_ENABLED is true")

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig
	Cache   CacheConfig
	Auth    AuthConfig
	Pricing PricingConfig
	Log     LogConfig
	Audit   AuditConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// CacheConfig holds result cache configuration. A zero Size disables caching;
// more than one shard selects the sharded cache.
type CacheConfig struct {
	Size   int
	TTL    time.Duration
	Shards int
}

// AuthConfig holds authentication configuration. JWT takes precedence over
// API keys when both are enabled.
type AuthConfig struct {
	Enabled       bool
	APIKeys       []string
	JWTEnabled    bool
	JWTSecretKey  string
	JWTIssuer     string
	TokenTTL      time.Duration
	EconomistRole string
}

// PricingConfig holds pricing engine configuration.
type PricingConfig struct {
	// ConfigFile is an optional JSON file with the startup pricing configuration.
	ConfigFile     string
	HistorySize    int
	ScrapProvider  string
	ScrapModelPath string
	// Breaker settings for the predictive provider; it falls back to the table.
	BreakerFailureThreshold int
	BreakerSuccessThreshold int
	BreakerTimeout          time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// AuditConfig holds audit trail configuration.
type AuditConfig struct {
	// File receives audit entries as JSON lines; empty means stderr.
	File       string
	Workers    int
	BufferSize int
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			RateLimit:         getEnvInt("RATE_LIMIT", 100),
			RateWindow:        getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			EnableIdempotency: getEnvBool("IDEMPOTENCY_ENABLED", true),
			CORSOrigins:       parseList(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:       getEnv("SWAGGER_USER", ""),
			SwaggerPass:       getEnv("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Size:   getEnvInt("CACHE_SIZE", 1000),
			TTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
			Shards: getEnvInt("CACHE_SHARDS", 1),
		},
		Auth: AuthConfig{
			Enabled:       getEnvBool("AUTH_ENABLED", false),
			APIKeys:       parseList(os.Getenv("API_KEYS")),
			JWTEnabled:    getEnvBool("JWT_ENABLED", false),
			JWTSecretKey:  getEnv("JWT_SECRET_KEY", ""),
			JWTIssuer:     getEnv("JWT_ISSUER", "bag-pricing-service"),
			TokenTTL:      getEnvDuration("JWT_TOKEN_TTL", 8*time.Hour),
			EconomistRole: getEnv("ECONOMIST_ROLE", "economist"),
		},
		Pricing: PricingConfig{
			ConfigFile:              getEnv("PRICING_CONFIG_FILE", ""),
			HistorySize:             getEnvInt("CONFIG_HISTORY_SIZE", 50),
			ScrapProvider:           strings.ToLower(getEnv("SCRAP_PROVIDER", ScrapProviderTable)),
			ScrapModelPath:          getEnv("SCRAP_MODEL_PATH", ""),
			BreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			BreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			BreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Audit: AuditConfig{
			File:       getEnv("AUDIT_LOG_FILE", ""),
			Workers:    getEnvInt("AUDIT_WORKERS", 4),
			BufferSize: getEnvInt("AUDIT_BUFFER_SIZE", 1000),
		},
	}
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	if c.Auth.JWTEnabled && c.Auth.JWTSecretKey == "" {
		return ErrMissingJWTSecret
	}
	switch c.Pricing.ScrapProvider {
	case ScrapProviderTable, ScrapProviderPredictive:
	default:
		return errors.New("SCRAP_PROVIDER must be one of: table, predictive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseList splits a comma-separated value, dropping blanks.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	return result
}
