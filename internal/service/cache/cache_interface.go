// Package cache defines the result cache contract used by the pricing service.
package cache

import "github.com/guttosm/bag-pricing-service/internal/domain/model"

// Cache stores calculation results by a 64-bit request fingerprint.
type Cache interface {
	Get(key uint64) (model.CalculationResult, bool)
	Set(key uint64, value model.CalculationResult)
	Invalidate(key uint64)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
