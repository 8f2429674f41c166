// Package service contains the business logic for the bag pricing service.
package service

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
	"github.com/guttosm/bag-pricing-service/internal/export"
	"github.com/guttosm/bag-pricing-service/internal/metrics"
	"github.com/guttosm/bag-pricing-service/internal/pricing"
	"github.com/guttosm/bag-pricing-service/internal/repository"
	"github.com/guttosm/bag-pricing-service/internal/service/cache"
)

// PricingService defines the pricing operations exposed to the HTTP layer.
type PricingService interface {
	GetConfig(ctx context.Context) model.ConfigVersion
	UpdateConfig(ctx context.Context, cfg model.PricingConfig, updatedBy string) (model.ConfigVersion, error)
	ConfigHistory(ctx context.Context, limit int) []model.ConfigVersion
	Calculate(ctx context.Context, order model.OrderInput) (model.CalculationResult, error)
	Preview(ctx context.Context, order model.OrderInput) (export.Row, error)
	Export(ctx context.Context, order model.OrderInput) ([]byte, error)
}

// Option configures a PricingServiceImpl.
type Option func(*PricingServiceImpl)

// PricingServiceImpl prices orders against the active configuration held by
// the repository.
type PricingServiceImpl struct {
	repo     repository.PricingConfigRepositoryInterface
	provider pricing.ScrapRateProvider
	cache    cache.Cache
}

// NewPricingService creates a pricing service backed by repo. Without options
// it uses the table scrap provider and no result cache.
func NewPricingService(repo repository.PricingConfigRepositoryInterface, opts ...Option) *PricingServiceImpl {
	s := &PricingServiceImpl{
		repo:     repo,
		provider: pricing.NewTableScrapProvider(),
	}
	for _, opt := range opts {
		opt(s)
	}
	metrics.ActiveConfigVersion.Set(float64(repo.GetActive(context.Background()).Version))
	return s
}

// WithScrapProvider replaces the scrap rate provider.
func WithScrapProvider(p pricing.ScrapRateProvider) Option {
	return func(s *PricingServiceImpl) {
		if p != nil {
			s.provider = p
		}
	}
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *PricingServiceImpl) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithShardedCache enables a sharded result cache.
func WithShardedCache(capacity int, ttl time.Duration, shards int) Option {
	return func(s *PricingServiceImpl) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, shards)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *PricingServiceImpl) {
		s.cache = c
	}
}

// GetConfig returns the active configuration version.
func (s *PricingServiceImpl) GetConfig(ctx context.Context) model.ConfigVersion {
	return s.repo.GetActive(ctx)
}

// UpdateConfig validates cfg and makes it the active configuration. Cached
// results of older versions are dropped.
func (s *PricingServiceImpl) UpdateConfig(ctx context.Context, cfg model.PricingConfig, updatedBy string) (model.ConfigVersion, error) {
	if cfg.FeatureRates == nil {
		cfg.FeatureRates = model.DefaultFeatureRates()
	}
	if err := cfg.Validate(); err != nil {
		metrics.RecordConfigUpdate("invalid", 0)
		return model.ConfigVersion{}, err
	}

	saved, err := s.repo.Save(ctx, cfg, updatedBy)
	if err != nil {
		metrics.RecordConfigUpdate("error", 0)
		return model.ConfigVersion{}, err
	}
	if s.cache != nil {
		s.cache.Clear()
	}

	metrics.RecordConfigUpdate("success", saved.Version)
	log.Ctx(ctx).Info().
		Int("version", saved.Version).
		Str("updated_by", updatedBy).
		Msg("pricing configuration replaced")
	return saved, nil
}

// ConfigHistory returns up to limit configuration versions, newest first.
func (s *PricingServiceImpl) ConfigHistory(ctx context.Context, limit int) []model.ConfigVersion {
	return s.repo.List(ctx, limit)
}

// Calculate prices order against the active configuration. The configuration
// is read once, so a concurrent update never mixes two versions within one
// calculation.
func (s *PricingServiceImpl) Calculate(ctx context.Context, order model.OrderInput) (model.CalculationResult, error) {
	active := s.repo.GetActive(ctx)
	return s.calculate(ctx, active, order)
}

func (s *PricingServiceImpl) calculate(ctx context.Context, active model.ConfigVersion, order model.OrderInput) (model.CalculationResult, error) {
	var key uint64
	if s.cache != nil {
		key = cacheKey(active.Version, order)
		if result, ok := s.cache.Get(key); ok {
			return result, nil
		}
	}

	result, err := s.run(ctx, order, active.Config)
	if err != nil {
		return model.CalculationResult{}, err
	}

	if s.cache != nil {
		s.cache.Set(key, result)
	}
	return result, nil
}

// CalculateWith prices order against an explicit configuration. It does not
// touch the cache.
func (s *PricingServiceImpl) CalculateWith(order model.OrderInput, cfg model.PricingConfig) (model.CalculationResult, error) {
	return s.run(context.Background(), order, cfg)
}

func (s *PricingServiceImpl) run(ctx context.Context, order model.OrderInput, cfg model.PricingConfig) (model.CalculationResult, error) {
	start := time.Now()
	result, err := pricing.NewDefaultPipeline(s.provider).Calculate(order, &cfg)
	status := "success"
	if err != nil {
		status = "error"
		logCalculationError(ctx, order, err)
	}
	metrics.RecordPriceCalculation(time.Since(start), string(order.ProductType), status)
	return result, err
}

// Preview prices order and projects it onto the cost-sheet row.
func (s *PricingServiceImpl) Preview(ctx context.Context, order model.OrderInput) (export.Row, error) {
	active := s.repo.GetActive(ctx)
	result, err := s.calculate(ctx, active, order)
	if err != nil {
		return export.Row{}, err
	}
	return export.BuildRow(order, result, active.Config), nil
}

// Export prices order and renders the cost-sheet row as an xlsx workbook.
func (s *PricingServiceImpl) Export(ctx context.Context, order model.OrderInput) ([]byte, error) {
	row, err := s.Preview(ctx, order)
	if err != nil {
		metrics.RecordExport("error")
		return nil, err
	}
	data, err := export.WriteXLSX([]export.Row{row})
	if err != nil {
		metrics.RecordExport("error")
		return nil, err
	}
	metrics.RecordExport("success")
	return data, nil
}

// Stop releases the cache goroutines.
func (s *PricingServiceImpl) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// CacheMetrics returns the cache counters, or false when caching is disabled
// or the cache does not report metrics.
func (s *PricingServiceImpl) CacheMetrics() (cache.Metrics, bool) {
	if m, ok := s.cache.(cache.CacheWithMetrics); ok {
		return m.Metrics(), true
	}
	return cache.Metrics{}, false
}

func logCalculationError(ctx context.Context, order model.OrderInput, err error) {
	logger := log.Ctx(ctx)
	var rateErr *pricing.MissingFeatureRateError
	event := logger.Error()
	if errors.As(err, &rateErr) {
		event = logger.Warn().Str("feature_rate", rateErr.Key)
	}
	event.Err(err).
		Str("product_type", string(order.ProductType)).
		Int("quantity", order.Quantity).
		Msg("price calculation failed")
}

// cacheKey fingerprints a configuration version and an order.
func cacheKey(version int, o model.OrderInput) uint64 {
	var buf [8]byte
	d := xxhash.New()

	writeUint := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	writeFloat := func(v float64) { writeUint(math.Float64bits(v)) }
	writeString := func(v string) {
		writeUint(uint64(len(v)))
		_, _ = d.WriteString(v)
	}
	writeBool := func(v bool) {
		if v {
			writeUint(1)
		} else {
			writeUint(0)
		}
	}

	writeUint(uint64(version))
	writeString(string(o.ProductKind))
	writeString(string(o.ProductType))
	writeFloat(o.Width)
	writeFloat(o.Fold)
	writeFloat(o.Length)
	writeFloat(o.Flap)
	writeFloat(o.Thickness)
	writeUint(uint64(o.Quantity))
	writeBool(o.Features.IsWicket)
	writeBool(o.Features.GlueTape)
	writeBool(o.Features.DeadTape)
	writeBool(o.Features.Clips)
	writeString(strings.ToLower(o.Features.Euroslot))
	return d.Sum64()
}
