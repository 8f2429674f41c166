package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/bag-pricing-service/internal/middleware"
)

// RouteGroup is a set of endpoints mounted under the /api group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// PricingRoutes registers the configuration and pricing endpoints.
type PricingRoutes struct {
	handler *PricingHandler
}

// NewPricingRoutes creates a new PricingRoutes instance.
func NewPricingRoutes(handler *PricingHandler) *PricingRoutes {
	return &PricingRoutes{handler: handler}
}

// RegisterRoutes registers the routes on rg. When JWT authentication is on
// and an economist role is configured, configuration writes require it.
func (r *PricingRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	writeConfig := []gin.HandlerFunc{r.handler.UpdateConfig}
	if cfg.TokenService != nil && cfg.EconomistRole != "" {
		writeConfig = append([]gin.HandlerFunc{middleware.RequireRole(cfg.EconomistRole)}, writeConfig...)
	}

	rg.GET("/config", r.handler.GetConfig)
	rg.POST("/config", writeConfig...)
	rg.PUT("/config", writeConfig...)
	rg.GET("/config/history", r.handler.ConfigHistory)

	rg.POST("/calculate", r.handler.Calculate)
	rg.POST("/preview_table", r.handler.PreviewTable)
	rg.POST("/export_excel", r.handler.ExportExcel)
}

// Handler returns the underlying pricing handler.
func (r *PricingRoutes) Handler() *PricingHandler {
	return r.handler
}

var _ RouteGroup = (*PricingRoutes)(nil)
