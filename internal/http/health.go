package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bag-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/bag-pricing-service/internal/service"
)

// HealthChecker defines the interface for health check operations.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckerFunc adapts a function to HealthChecker.
type HealthCheckerFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// ActiveConfigChecker reports whether the active pricing configuration is
// still valid.
func ActiveConfigChecker(pricing service.PricingService) HealthChecker {
	return HealthCheckerFunc(func(ctx context.Context) error {
		active := pricing.GetConfig(ctx)
		return active.Config.Validate()
	})
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterChecker registers a readiness check under name.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker reports the state of cb in readiness output. The
// breakers guard dependencies with a fallback, so an open circuit does not
// fail readiness.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[name] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK if the service is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Returns OK if the active pricing configuration is usable. Circuit breaker states are listed for information.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	status := http.StatusOK
	checks := make(map[string]interface{}, len(h.checkers)+len(h.circuitBreakers))

	for name, checker := range h.checkers {
		if err := checker.Check(c.Request.Context()); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks[name] = "ok"
		}
	}

	for name, cb := range h.circuitBreakers {
		checks[name+"_circuit"] = cb.GetStats()
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	c.JSON(status, gin.H{
		"status": map[bool]string{true: "ok", false: "degraded"}[status == http.StatusOK],
		"checks": checks,
	})
}
