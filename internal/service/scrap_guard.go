package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/bag-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/bag-pricing-service/internal/domain/model"
	"github.com/guttosm/bag-pricing-service/internal/metrics"
	"github.com/guttosm/bag-pricing-service/internal/pricing"
)

// GuardedScrapProvider asks the primary provider for a scrap rate through a
// circuit breaker and answers from the fallback whenever the primary fails or
// the circuit is open.
type GuardedScrapProvider struct {
	primary  pricing.ScrapRateProvider
	fallback pricing.ScrapRateProvider
	breaker  *circuitbreaker.CircuitBreaker
}

// NewGuardedScrapProvider wraps primary. A nil fallback uses the table provider.
func NewGuardedScrapProvider(primary, fallback pricing.ScrapRateProvider, cfg circuitbreaker.Config) *GuardedScrapProvider {
	if fallback == nil {
		fallback = pricing.NewTableScrapProvider()
	}
	return &GuardedScrapProvider{
		primary:  primary,
		fallback: fallback,
		breaker:  circuitbreaker.New(cfg),
	}
}

// ScrapRate implements pricing.ScrapRateProvider.
func (g *GuardedScrapProvider) ScrapRate(quantity int, bagType model.BagType) (float64, error) {
	var rate float64
	err := g.breaker.Execute(context.Background(), func() error {
		r, err := g.primary.ScrapRate(quantity, bagType)
		if err != nil {
			return err
		}
		rate = r
		return nil
	})
	if err == nil {
		return rate, nil
	}

	if !errors.Is(err, circuitbreaker.ErrCircuitOpen) && !errors.Is(err, circuitbreaker.ErrProbeInFlight) {
		log.Warn().
			Err(err).
			Str("circuit_breaker", g.breaker.Name()).
			Int("quantity", quantity).
			Msg("Scrap rate provider failed, using fallback")
	}
	metrics.RecordScrapFallback(g.breaker.Name())
	return g.fallback.ScrapRate(quantity, bagType)
}

// Breaker exposes the circuit breaker for health reporting.
func (g *GuardedScrapProvider) Breaker() *circuitbreaker.CircuitBreaker {
	return g.breaker
}
