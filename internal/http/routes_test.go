package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/bag-pricing-service/internal/service"
)

func TestNewPricingRoutes(t *testing.T) {
	handler := NewPricingHandler(newPricingService(t), nil)
	routes := NewPricingRoutes(handler)

	require.NotNil(t, routes)
	assert.Same(t, handler, routes.Handler())
}

func TestPricingRoutes_RegisterRoutes(t *testing.T) {
	router := gin.New()
	NewPricingRoutes(NewPricingHandler(newPricingService(t), nil)).RegisterRoutes(router.Group("/api"), &RouterConfig{})

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /api/config",
		"POST /api/config",
		"PUT /api/config",
		"GET /api/config/history",
		"POST /api/calculate",
		"POST /api/preview_table",
		"POST /api/export_excel",
	} {
		assert.True(t, registered[route], route)
	}
}

func TestPricingRoutes_EconomistRoleOnlyWithTokens(t *testing.T) {
	tokens, err := service.NewTokenService(service.TokenConfig{SecretKey: "routes-secret"})
	require.NoError(t, err)

	tests := []struct {
		name           string
		cfg            RouterConfig
		expectedStatus int
	}{
		// Without claims in the context RequireRole rejects the request.
		{"role enforced under jwt", RouterConfig{TokenService: tokens, EconomistRole: "economist"}, http.StatusUnauthorized},
		{"no role configured", RouterConfig{TokenService: tokens}, http.StatusBadRequest},
		{"no jwt", RouterConfig{EconomistRole: "economist"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			NewPricingRoutes(NewPricingHandler(newPricingService(t), nil)).RegisterRoutes(router.Group("/api"), &tt.cfg)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/config", nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
