package repository

import (
	"context"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
)

// PricingConfigRepositoryInterface defines the interface for pricing configuration storage.
type PricingConfigRepositoryInterface interface {
	GetActive(ctx context.Context) model.ConfigVersion
	Save(ctx context.Context, cfg model.PricingConfig, createdBy string) (model.ConfigVersion, error)
	List(ctx context.Context, limit int) []model.ConfigVersion
}

var _ PricingConfigRepositoryInterface = (*PricingConfigRepository)(nil)
