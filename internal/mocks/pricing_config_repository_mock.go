// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
)

type MockPricingConfigRepository struct {
	mock.Mock
}

func (m *MockPricingConfigRepository) GetActive(ctx context.Context) model.ConfigVersion {
	args := m.Called(ctx)
	return args.Get(0).(model.ConfigVersion)
}

func (m *MockPricingConfigRepository) Save(ctx context.Context, cfg model.PricingConfig, createdBy string) (model.ConfigVersion, error) {
	args := m.Called(ctx, cfg, createdBy)
	return args.Get(0).(model.ConfigVersion), args.Error(1)
}

func (m *MockPricingConfigRepository) List(ctx context.Context, limit int) []model.ConfigVersion {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.ConfigVersion)
}
