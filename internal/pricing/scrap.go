package pricing

import "github.com/guttosm/bag-pricing-service/internal/domain/model"

// ScrapTier is one row of the quantity table. MaxQuantity is inclusive;
// zero marks the open-ended last tier.
type ScrapTier struct {
	MaxQuantity int
	Rate        float64
}

// DefaultScrapTiers is the production scrap table. Runs below 30,000 are not
// covered by the source table and take the 15% of the lowest documented tier.
var DefaultScrapTiers = []ScrapTier{
	{MaxQuantity: 30000, Rate: 0.15},
	{MaxQuantity: 50000, Rate: 0.15},
	{MaxQuantity: 100000, Rate: 0.13},
	{MaxQuantity: 300000, Rate: 0.07},
	{MaxQuantity: 0, Rate: 0.06},
}

// TableScrapProvider looks the scrap rate up in a quantity tier table.
// The rate does not depend on the bag type.
type TableScrapProvider struct {
	tiers []ScrapTier
}

// NewTableScrapProvider returns a provider backed by DefaultScrapTiers.
func NewTableScrapProvider() *TableScrapProvider {
	return &TableScrapProvider{tiers: DefaultScrapTiers}
}

// ScrapRate returns the rate of the first tier whose upper bound is >= quantity.
func (p *TableScrapProvider) ScrapRate(quantity int, _ model.BagType) (float64, error) {
	for _, tier := range p.tiers {
		if tier.MaxQuantity == 0 || quantity <= tier.MaxQuantity {
			return tier.Rate, nil
		}
	}
	return p.tiers[len(p.tiers)-1].Rate, nil
}

// PredictiveScrapProvider is the placeholder for a model trained on
// historical runs, artwork complexity and machine state.
type PredictiveScrapProvider struct {
	ModelPath string
}

// NewPredictiveScrapProvider returns a provider bound to a model file.
func NewPredictiveScrapProvider(modelPath string) *PredictiveScrapProvider {
	return &PredictiveScrapProvider{ModelPath: modelPath}
}

// ScrapRate always fails with ErrProviderNotTrained.
func (p *PredictiveScrapProvider) ScrapRate(int, model.BagType) (float64, error) {
	return 0, ErrProviderNotTrained
}
