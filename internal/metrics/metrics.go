// Package metrics provides Prometheus metrics collection for the bag pricing service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PriceCalculationsTotal counts pricing pipeline runs by bag type and outcome.
	PriceCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_calculations_total",
			Help: "Total number of bag price calculations",
		},
		[]string{"product_type", "status"},
	)

	// PriceCalculationDuration tracks pipeline run duration.
	PriceCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "price_calculation_duration_seconds",
			Help:    "Bag price calculation duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// ConfigUpdatesTotal counts pricing configuration update attempts.
	ConfigUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_config_updates_total",
			Help: "Total number of pricing configuration updates",
		},
		[]string{"status"},
	)

	// ActiveConfigVersion is the version number of the active pricing configuration.
	ActiveConfigVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pricing_config_active_version",
			Help: "Version of the active pricing configuration",
		},
	)

	// ExportsTotal counts generated spreadsheet exports.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_exports_total",
			Help: "Total number of calculation exports",
		},
		[]string{"status"},
	)

	// ScrapFallbacksTotal counts scrap rates answered by the fallback provider.
	ScrapFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrap_rate_fallbacks_total",
			Help: "Total number of scrap rates served by the fallback provider",
		},
		[]string{"provider"},
	)

	// RateLimitedTotal counts requests rejected by the API rate limiter.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"client_kind"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(c.Request.Method, path, statusCode).Inc()
	}
}

// RecordPriceCalculation records one pricing pipeline run.
func RecordPriceCalculation(duration time.Duration, productType, status string) {
	PriceCalculationDuration.Observe(duration.Seconds())
	PriceCalculationsTotal.WithLabelValues(productType, status).Inc()
}

// RecordConfigUpdate records a configuration update attempt. The active
// version gauge is only moved on success.
func RecordConfigUpdate(status string, version int) {
	ConfigUpdatesTotal.WithLabelValues(status).Inc()
	if status == "success" {
		ActiveConfigVersion.Set(float64(version))
	}
}

// RecordExport records an export attempt.
func RecordExport(status string) {
	ExportsTotal.WithLabelValues(status).Inc()
}

// RecordScrapFallback records a scrap rate served by the fallback of provider.
func RecordScrapFallback(provider string) {
	ScrapFallbacksTotal.WithLabelValues(provider).Inc()
}

// RecordRateLimited records a rejected request; kind is "user" or "ip".
func RecordRateLimited(kind string) {
	RateLimitedTotal.WithLabelValues(kind).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
