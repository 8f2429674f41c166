package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
)

var envKeys = []string{
	"PORT", "RATE_LIMIT", "RATE_WINDOW", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "IDEMPOTENCY_ENABLED",
	"CORS_ORIGINS", "SWAGGER_USER", "SWAGGER_PASS", "CACHE_SIZE", "CACHE_TTL", "CACHE_SHARDS",
	"AUTH_ENABLED", "API_KEYS", "JWT_ENABLED", "JWT_SECRET_KEY", "JWT_ISSUER", "JWT_TOKEN_TTL",
	"ECONOMIST_ROLE", "PRICING_CONFIG_FILE", "CONFIG_HISTORY_SIZE", "SCRAP_PROVIDER", "SCRAP_MODEL_PATH",
	"CIRCUIT_BREAKER_FAILURE_THRESHOLD", "CIRCUIT_BREAKER_SUCCESS_THRESHOLD", "CIRCUIT_BREAKER_TIMEOUT",
	"LOG_LEVEL", "LOG_PRETTY", "AUDIT_LOG_FILE", "AUDIT_WORKERS", "AUDIT_BUFFER_SIZE",
}

// clearEnv unsets every key Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		clearEnv(t)

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.True(t, cfg.Server.EnableIdempotency)
		assert.Nil(t, cfg.Server.CORSOrigins)
		assert.Equal(t, 1000, cfg.Cache.Size)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, 1, cfg.Cache.Shards)
		assert.False(t, cfg.Auth.Enabled)
		assert.False(t, cfg.Auth.JWTEnabled)
		assert.Nil(t, cfg.Auth.APIKeys)
		assert.Equal(t, "economist", cfg.Auth.EconomistRole)
		assert.Equal(t, ScrapProviderTable, cfg.Pricing.ScrapProvider)
		assert.Equal(t, 50, cfg.Pricing.HistorySize)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Empty(t, cfg.Audit.File)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("loads values from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT", "50")
		t.Setenv("RATE_WINDOW", "30s")
		t.Setenv("CACHE_SIZE", "500")
		t.Setenv("CACHE_SHARDS", "8")
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("API_KEYS", " key1 , key2 ,, ")
		t.Setenv("CORS_ORIGINS", "https://pricing.example.com")
		t.Setenv("JWT_ENABLED", "true")
		t.Setenv("JWT_SECRET_KEY", "s3cret")
		t.Setenv("SCRAP_PROVIDER", "Predictive")
		t.Setenv("SCRAP_MODEL_PATH", "/models/scrap.onnx")
		t.Setenv("LOG_PRETTY", "true")
		t.Setenv("AUDIT_LOG_FILE", "/var/log/audit.jsonl")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 500, cfg.Cache.Size)
		assert.Equal(t, 8, cfg.Cache.Shards)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, []string{"key1", "key2"}, cfg.Auth.APIKeys)
		assert.Equal(t, []string{"https://pricing.example.com"}, cfg.Server.CORSOrigins)
		assert.True(t, cfg.Auth.JWTEnabled)
		assert.Equal(t, ScrapProviderPredictive, cfg.Pricing.ScrapProvider)
		assert.Equal(t, "/models/scrap.onnx", cfg.Pricing.ScrapModelPath)
		assert.True(t, cfg.Log.Pretty)
		assert.Equal(t, "/var/log/audit.jsonl", cfg.Audit.File)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RATE_LIMIT", "invalid")
		t.Setenv("AUTH_ENABLED", "invalid")
		t.Setenv("RATE_WINDOW", "invalid")

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"jwt without secret", func(c *Config) { c.Auth.JWTEnabled = true }, ErrMissingJWTSecret},
		{"unknown scrap provider", func(c *Config) { c.Pricing.ScrapProvider = "oracle" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg := Load()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricing.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPricingConfig(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := LoadPricingConfig("")
		require.NoError(t, err)
		assert.Equal(t, model.DefaultPricingConfig(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeFile(t, `{"material_price_bopp": 186, "material_price_cpp": 186, "box_cost": 23.2, "feature_rates": {"glue": 0.003}, "note": "ignored"}`)

		cfg, err := LoadPricingConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 186.0, cfg.MaterialPriceBOPP)
		assert.Equal(t, 23.2, cfg.BoxCost)
		assert.Equal(t, model.DefaultPricingConfig().K2MarginDivisor, cfg.K2MarginDivisor)
		assert.Equal(t, map[string]float64{model.RateGlue: 0.003}, cfg.FeatureRates)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPricingConfig(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := LoadPricingConfig(writeFile(t, `{"density": `))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadPricingConfig(writeFile(t, `{"density": -1}`))
		assert.True(t, model.IsValidationError(err))
	})
}
