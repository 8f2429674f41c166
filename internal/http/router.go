package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/bag-pricing-service/internal/metrics"
	"github.com/guttosm/bag-pricing-service/internal/middleware"
	"github.com/guttosm/bag-pricing-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	// APIKeys, when non-empty and TokenService is nil, protect /api with
	// X-API-Key authentication.
	APIKeys []string
	// TokenService, when set, protects /api with bearer JWT authentication.
	TokenService service.TokenService
	// EconomistRole is the role required to replace the configuration under
	// JWT authentication.
	EconomistRole string
	AuditWriter   service.AuditWriter
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: middleware.DefaultRequestTimeout,
		EconomistRole:  "economist",
	}
}

// Router is the configured gin engine plus the middleware state that must be
// released on shutdown.
type Router struct {
	*gin.Engine
	limiter     *middleware.ShardedRateLimiter
	idempotency middleware.IdempotencyConfig
}

// Stop releases the rate limiter and idempotency cache goroutines.
func (r *Router) Stop() {
	if r.limiter != nil {
		r.limiter.Stop()
	}
	if r.idempotency.Cache != nil {
		r.idempotency.Cache.Stop()
	}
}

// NewRouter creates and configures the Gin router for the pricing service.
func NewRouter(pricing service.PricingService, healthHandler *HealthHandler, cfg RouterConfig) *Router {
	r := &Router{Engine: gin.New()}

	r.configureGlobalMiddleware(&cfg)
	registerInfrastructureRoutes(r.Engine, healthHandler, &cfg)

	api := r.Group("/api")
	r.configureAPIMiddleware(api, &cfg)

	handler := NewPricingHandler(pricing, cfg.AuditWriter)
	NewPricingRoutes(handler).RegisterRoutes(api, &cfg)

	return r
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func (r *Router) configureGlobalMiddleware(cfg *RouterConfig) {
	r.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group. Authentication
// runs before rate limiting so that authenticated callers are limited per
// subject.
func (r *Router) configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.Timeout(cfg.RequestTimeout))

	switch {
	case cfg.TokenService != nil:
		api.Use(middleware.JWTAuth(cfg.TokenService))
	case len(cfg.APIKeys) > 0:
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}

	if cfg.RateLimit > 0 {
		r.limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		api.Use(r.limiter.UserRateLimit())
	}

	if cfg.EnableIdempotency {
		r.idempotency = middleware.DefaultIdempotencyConfig()
		api.Use(middleware.Idempotency(r.idempotency))
	}
}
