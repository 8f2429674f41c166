// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/guttosm/bag-pricing-service/config"
	"github.com/guttosm/bag-pricing-service/internal/http"
	"github.com/guttosm/bag-pricing-service/internal/service"
)

// App holds the wired application and the resources released by Close.
type App struct {
	Router  *http.Router
	Pricing *service.PricingServiceImpl
	audit   *AuditComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	// Logger first; every other component logs through it.
	InitializeLogger(cfg.Log)

	audit, err := InitializeAudit(cfg.Audit)
	if err != nil {
		return nil, err
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		_ = audit.Close()
		return nil, err
	}

	routerComponents := InitializeRouter(services, audit.Writer, cfg)
	router := http.NewRouter(services.Pricing, routerComponents.HealthHandler, routerComponents.Config)

	return &App{
		Router:  router,
		Pricing: services.Pricing,
		audit:   audit,
	}, nil
}

// Close stops background goroutines and flushes the audit trail.
func (a *App) Close() error {
	a.Router.Stop()
	a.Pricing.Stop()
	return a.audit.Close()
}
