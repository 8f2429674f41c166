// Package app provides router configuration.
package app

import (
	"github.com/guttosm/bag-pricing-service/config"
	"github.com/guttosm/bag-pricing-service/internal/http"
	"github.com/guttosm/bag-pricing-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health checks and router configuration.
func InitializeRouter(services *ServiceComponents, audit service.AuditWriter, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("pricing_config", http.ActiveConfigChecker(services.Pricing))
	if services.ScrapGuard != nil {
		healthHandler.RegisterCircuitBreaker("scrap_provider", services.ScrapGuard.Breaker())
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		EconomistRole:     cfg.Auth.EconomistRole,
		AuditWriter:       audit,
	}
	if cfg.Auth.Enabled {
		routerCfg.APIKeys = cfg.Auth.APIKeys
	}
	if services.Tokens != nil {
		routerCfg.TokenService = services.Tokens
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
