// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
	"github.com/guttosm/bag-pricing-service/internal/export"
)

type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) GetConfig(ctx context.Context) model.ConfigVersion {
	args := m.Called(ctx)
	return args.Get(0).(model.ConfigVersion)
}

func (m *MockPricingService) UpdateConfig(ctx context.Context, cfg model.PricingConfig, updatedBy string) (model.ConfigVersion, error) {
	args := m.Called(ctx, cfg, updatedBy)
	return args.Get(0).(model.ConfigVersion), args.Error(1)
}

func (m *MockPricingService) ConfigHistory(ctx context.Context, limit int) []model.ConfigVersion {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.ConfigVersion)
}

func (m *MockPricingService) Calculate(ctx context.Context, order model.OrderInput) (model.CalculationResult, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(model.CalculationResult), args.Error(1)
}

func (m *MockPricingService) Preview(ctx context.Context, order model.OrderInput) (export.Row, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(export.Row), args.Error(1)
}

func (m *MockPricingService) Export(ctx context.Context, order model.OrderInput) ([]byte, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
