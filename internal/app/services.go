// Package app provides service initialization.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/bag-pricing-service/config"
	"github.com/guttosm/bag-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/bag-pricing-service/internal/pricing"
	"github.com/guttosm/bag-pricing-service/internal/repository"
	"github.com/guttosm/bag-pricing-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Pricing *service.PricingServiceImpl
	// Tokens is nil unless JWT authentication is enabled.
	Tokens service.TokenService
	// ScrapGuard is nil when the table scrap provider is used directly.
	ScrapGuard *service.GuardedScrapProvider
}

// InitializeServices loads the startup pricing configuration and builds the
// business services around it.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	initial, err := config.LoadPricingConfig(cfg.Pricing.ConfigFile)
	if err != nil {
		return nil, err
	}
	repo := repository.NewPricingConfigRepository(initial, cfg.Pricing.HistorySize)

	components := &ServiceComponents{}
	var opts []service.Option

	if cfg.Pricing.ScrapProvider == config.ScrapProviderPredictive {
		components.ScrapGuard = service.NewGuardedScrapProvider(
			pricing.NewPredictiveScrapProvider(cfg.Pricing.ScrapModelPath),
			pricing.NewTableScrapProvider(),
			circuitbreaker.Config{
				Name:             "scrap_provider",
				FailureThreshold: cfg.Pricing.BreakerFailureThreshold,
				SuccessThreshold: cfg.Pricing.BreakerSuccessThreshold,
				Timeout:          cfg.Pricing.BreakerTimeout,
			},
		)
		opts = append(opts, service.WithScrapProvider(components.ScrapGuard))
	}

	switch {
	case cfg.Cache.Size > 0 && cfg.Cache.Shards > 1:
		opts = append(opts, service.WithShardedCache(cfg.Cache.Size, cfg.Cache.TTL, cfg.Cache.Shards))
	case cfg.Cache.Size > 0:
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}
	components.Pricing = service.NewPricingService(repo, opts...)

	if cfg.Auth.JWTEnabled {
		tokens, err := service.NewTokenService(service.TokenConfig{
			SecretKey: cfg.Auth.JWTSecretKey,
			TTL:       cfg.Auth.TokenTTL,
			Issuer:    cfg.Auth.JWTIssuer,
		})
		if err != nil {
			components.Pricing.Stop()
			return nil, fmt.Errorf("token service: %w", err)
		}
		components.Tokens = tokens
	}

	log.Info().
		Int("config_version", repo.GetActive(context.Background()).Version).
		Str("scrap_provider", cfg.Pricing.ScrapProvider).
		Bool("cache", cfg.Cache.Size > 0).
		Bool("jwt", components.Tokens != nil).
		Msg("services initialized")

	return components, nil
}
