package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
	"github.com/guttosm/bag-pricing-service/internal/export"
	"github.com/guttosm/bag-pricing-service/internal/metrics"
	"github.com/guttosm/bag-pricing-service/internal/mocks"
	"github.com/guttosm/bag-pricing-service/internal/pricing"
	"github.com/guttosm/bag-pricing-service/internal/repository"
	"github.com/guttosm/bag-pricing-service/internal/testutil"
)

func newService(t *testing.T, opts ...Option) *PricingServiceImpl {
	t.Helper()
	repo := repository.NewPricingConfigRepository(testutil.EconomistConfig(), 10)
	svc := NewPricingService(repo, opts...)
	t.Cleanup(svc.Stop)
	return svc
}

func TestNewPricingService(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		validate func(*testing.T, *PricingServiceImpl)
	}{
		{
			name: "table provider and no cache by default",
			validate: func(t *testing.T, svc *PricingServiceImpl) {
				assert.IsType(t, &pricing.TableScrapProvider{}, svc.provider)
				assert.Nil(t, svc.cache)
			},
		},
		{
			name:    "custom scrap provider",
			options: []Option{WithScrapProvider(pricing.NewPredictiveScrapProvider("m.bin"))},
			validate: func(t *testing.T, svc *PricingServiceImpl) {
				assert.IsType(t, &pricing.PredictiveScrapProvider{}, svc.provider)
			},
		},
		{
			name:    "nil scrap provider ignored",
			options: []Option{WithScrapProvider(nil)},
			validate: func(t *testing.T, svc *PricingServiceImpl) {
				assert.NotNil(t, svc.provider)
			},
		},
		{
			name:    "ttl cache",
			options: []Option{WithCache(100, time.Minute)},
			validate: func(t *testing.T, svc *PricingServiceImpl) {
				assert.IsType(t, &ttlCache{}, svc.cache)
			},
		},
		{
			name:    "sharded cache",
			options: []Option{WithShardedCache(100, time.Minute, 4)},
			validate: func(t *testing.T, svc *PricingServiceImpl) {
				assert.IsType(t, &ShardedCache{}, svc.cache)
			},
		},
		{
			name:    "zero capacity disables cache",
			options: []Option{WithCache(0, time.Minute)},
			validate: func(t *testing.T, svc *PricingServiceImpl) {
				assert.Nil(t, svc.cache)
				_, ok := svc.CacheMetrics()
				assert.False(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, newService(t, tt.options...))
		})
	}
}

func TestPricingService_Calculate(t *testing.T) {
	svc := newService(t)

	result, err := svc.Calculate(context.Background(), testutil.Order(20, 30, 30, 40000))
	require.NoError(t, err)
	assert.Equal(t, 2.13, result.FinalPrice)
	assert.Equal(t, 0.8609, result.VariableCost)
}

func TestPricingService_CalculateWith(t *testing.T) {
	svc := newService(t)

	cfg := testutil.EconomistConfig()
	cfg.K3MarginMultiplier = 2
	result, err := svc.CalculateWith(testutil.Order(20, 30, 30, 40000), cfg)
	require.NoError(t, err)

	active, err := svc.Calculate(context.Background(), testutil.Order(20, 30, 30, 40000))
	require.NoError(t, err)
	assert.Greater(t, result.FinalPrice, active.FinalPrice)
}

func TestPricingService_CalculateErrors(t *testing.T) {
	t.Run("provider failure", func(t *testing.T) {
		provider := new(mocks.MockScrapRateProvider)
		provider.On("ScrapRate", 40000, model.BagTypeBOPP).Return(0.0, pricing.ErrProviderNotTrained)

		svc := newService(t, WithScrapProvider(provider))
		_, err := svc.Calculate(context.Background(), testutil.Order(20, 30, 30, 40000))

		assert.ErrorIs(t, err, pricing.ErrProviderNotTrained)
		provider.AssertExpectations(t)
	})

	t.Run("missing feature rate", func(t *testing.T) {
		svc := newService(t)
		cfg := testutil.EconomistConfig()
		cfg.FeatureRates = map[string]float64{model.RateGlue: 0.003}
		_, err := svc.UpdateConfig(context.Background(), cfg, "economist")
		require.NoError(t, err)

		order := testutil.Order(20, 30, 30, 40000)
		order.Features.IsWicket = true
		_, err = svc.Calculate(context.Background(), order)

		var rateErr *pricing.MissingFeatureRateError
		require.ErrorAs(t, err, &rateErr)
		assert.Equal(t, model.RateClips, rateErr.Key)
	})
}

func TestPricingService_ScrapProviderReceivesOrder(t *testing.T) {
	provider := new(mocks.MockScrapRateProvider)
	provider.On("ScrapRate", 150000, model.BagTypeCPP).Return(0.07, nil).Once()

	svc := newService(t, WithScrapProvider(provider))
	order := testutil.Order(30, 50, 40, 150000)
	order.ProductType = model.BagTypeCPP

	result, err := svc.Calculate(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, 7.0, result.ScrapRatePercent)
	provider.AssertExpectations(t)
}

func TestPricingService_Cache(t *testing.T) {
	provider := new(mocks.MockScrapRateProvider)
	provider.On("ScrapRate", mock.Anything, mock.Anything).Return(0.15, nil)

	svc := newService(t, WithScrapProvider(provider), WithCache(10, time.Minute))
	ctx := context.Background()
	order := testutil.Order(20, 30, 30, 40000)

	first, err := svc.Calculate(ctx, order)
	require.NoError(t, err)
	second, err := svc.Calculate(ctx, order)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	provider.AssertNumberOfCalls(t, "ScrapRate", 1)

	m, ok := svc.CacheMetrics()
	require.True(t, ok)
	assert.Equal(t, int64(1), m.Hits)

	_, err = svc.UpdateConfig(ctx, testutil.EconomistConfig(), "economist")
	require.NoError(t, err)
	_, err = svc.Calculate(ctx, order)
	require.NoError(t, err)
	provider.AssertNumberOfCalls(t, "ScrapRate", 2)
}

func TestPricingService_CacheInterface(t *testing.T) {
	c := new(mocks.MockCache)
	c.On("Get", mock.AnythingOfType("uint64")).Return(model.CalculationResult{FinalPrice: 9.99}, true).Once()
	c.On("Stop").Return()

	svc := newService(t, WithCacheInterface(c))
	result, err := svc.Calculate(context.Background(), testutil.Order(20, 30, 30, 40000))

	require.NoError(t, err)
	assert.Equal(t, 9.99, result.FinalPrice)
	c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestPricingService_UpdateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.PricingConfig)
		updatedBy string
		wantErr   bool
		version   int
	}{
		{"valid replacement", func(c *model.PricingConfig) { c.MaterialPriceBOPP = 250 }, "economist", false, 2},
		{"nil rates default to zero", func(c *model.PricingConfig) { c.FeatureRates = nil }, "economist", false, 2},
		{"zero density rejected", func(c *model.PricingConfig) { c.Density = 0 }, "economist", true, 1},
		{"unknown rate rejected", func(c *model.PricingConfig) { c.FeatureRates["foil"] = 1 }, "economist", true, 1},
		{"missing author rejected", func(*model.PricingConfig) {}, "", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)
			ctx := context.Background()
			cfg := testutil.EconomistConfig()
			tt.mutate(&cfg)

			saved, err := svc.UpdateConfig(ctx, cfg, tt.updatedBy)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.updatedBy, saved.CreatedBy)
			}
			assert.Equal(t, tt.version, svc.GetConfig(ctx).Version)
		})
	}
}

func TestPricingService_UpdateConfigSaveError(t *testing.T) {
	ctx := context.Background()
	active := model.ConfigVersion{Version: 3, Config: testutil.EconomistConfig(), CreatedBy: "economist"}
	saveErr := errors.New("history store unavailable")

	repo := new(mocks.MockPricingConfigRepository)
	repo.On("GetActive", mock.Anything).Return(active)
	repo.On("Save", ctx, mock.AnythingOfType("model.PricingConfig"), "anna").Return(model.ConfigVersion{}, saveErr).Once()

	c := new(mocks.MockCache)
	c.On("Stop").Return()

	svc := NewPricingService(repo, WithCacheInterface(c))
	t.Cleanup(svc.Stop)

	errorsBefore := promtestutil.ToFloat64(metrics.ConfigUpdatesTotal.WithLabelValues("error"))

	cfg := testutil.EconomistConfig()
	cfg.MaterialPriceBOPP = 250
	saved, err := svc.UpdateConfig(ctx, cfg, "anna")

	require.ErrorIs(t, err, saveErr)
	assert.Zero(t, saved.Version)
	assert.Equal(t, 3, svc.GetConfig(ctx).Version)
	assert.Equal(t, errorsBefore+1, promtestutil.ToFloat64(metrics.ConfigUpdatesTotal.WithLabelValues("error")))
	assert.Equal(t, float64(3), promtestutil.ToFloat64(metrics.ActiveConfigVersion))
	c.AssertNotCalled(t, "Clear")
	repo.AssertExpectations(t)
}

func TestPricingService_UpdateConfigDefaultsRates(t *testing.T) {
	svc := newService(t)
	cfg := testutil.EconomistConfig()
	cfg.FeatureRates = nil

	saved, err := svc.UpdateConfig(context.Background(), cfg, "economist")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultFeatureRates(), saved.Config.FeatureRates)
}

func TestPricingService_ConfigHistory(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := svc.UpdateConfig(ctx, testutil.EconomistConfig(), "economist")
		require.NoError(t, err)
	}

	history := svc.ConfigHistory(ctx, 2)
	require.Len(t, history, 2)
	assert.Equal(t, 4, history[0].Version)
	assert.Equal(t, 3, history[1].Version)
}

func TestPricingService_UpdateDoesNotTearCalculations(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	order := testutil.Order(20, 30, 30, 40000)

	a := testutil.EconomistConfig()
	b := testutil.EconomistConfig()
	b.MaterialPriceBOPP = 400
	b.K3MarginMultiplier = 3

	priceA, err := svc.CalculateWith(order, a)
	require.NoError(t, err)
	priceB, err := svc.CalculateWith(order, b)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			cfg := a
			if i%2 == 0 {
				cfg = b
			}
			_, _ = svc.UpdateConfig(ctx, cfg.Clone(), "economist")
		}(i)
		go func() {
			defer wg.Done()
			r, err := svc.Calculate(ctx, order)
			assert.NoError(t, err)
			assert.Contains(t, []float64{priceA.FinalPrice, priceB.FinalPrice}, r.FinalPrice)
		}()
	}
	wg.Wait()
}

func TestPricingService_Preview(t *testing.T) {
	svc := newService(t)

	row, err := svc.Preview(context.Background(), testutil.Order(20, 30, 30, 40000))
	require.NoError(t, err)
	assert.Equal(t, "Пакет BOPP 20x30 30мкм", row.Product)
	assert.Equal(t, 2.13, row.TotalCost)
	assert.Equal(t, 0.3743, row.FixedCosts)
}

func TestPricingService_Export(t *testing.T) {
	svc := newService(t)

	data, err := svc.Export(context.Background(), testutil.Order(20, 30, 30, 40000))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Пакет BOPP 20x30 30мкм", rows[1][2])
}

func TestPricingService_ExportPropagatesErrors(t *testing.T) {
	svc := newService(t, WithScrapProvider(pricing.NewPredictiveScrapProvider("m.bin")))

	data, err := svc.Export(context.Background(), testutil.Order(20, 30, 30, 40000))
	assert.ErrorIs(t, err, pricing.ErrProviderNotTrained)
	assert.Nil(t, data)
}

func TestCacheKey(t *testing.T) {
	base := testutil.Order(20, 30, 30, 40000)

	changed := []func(*model.OrderInput){
		func(o *model.OrderInput) { o.Width = 21 },
		func(o *model.OrderInput) { o.Fold = 1 },
		func(o *model.OrderInput) { o.Flap = 1 },
		func(o *model.OrderInput) { o.Quantity = 40001 },
		func(o *model.OrderInput) { o.ProductType = model.BagTypeCPP },
		func(o *model.OrderInput) { o.Features.IsWicket = true },
		func(o *model.OrderInput) { o.Features.GlueTape = true },
		func(o *model.OrderInput) { o.Features.Euroslot = "pvd" },
	}

	key := cacheKey(1, base)
	assert.Equal(t, key, cacheKey(1, base))
	assert.NotEqual(t, key, cacheKey(2, base))

	for i, mutate := range changed {
		o := base
		mutate(&o)
		assert.NotEqual(t, key, cacheKey(1, o), "mutation %d", i)
	}

	schemed := base
	schemed.PrintScheme = "4+0"
	assert.Equal(t, key, cacheKey(1, schemed), "print scheme does not affect the price")

	upper, lower := base, base
	upper.Features.Euroslot = "PVD"
	lower.Features.Euroslot = "pvd"
	assert.Equal(t, cacheKey(1, lower), cacheKey(1, upper))
}
