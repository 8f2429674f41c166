package pricing

import (
	"strings"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
)

const (
	// boxBatchSize is the number of bags packed into one box.
	boxBatchSize = 2000.0
	// smallWidthLimit is the widest bag (cm) still paid at the small-bag salary rate.
	smallWidthLimit = 25.0
)

// GeometryStep computes the bag weight in grams:
//
//	((width + fold) * (length + flap/2) * thickness * 2 * density) / 10000
//
// The factor 2 accounts for the two film layers of a bag.
type GeometryStep struct{}

// Name returns the step name used in errors and logs.
func (GeometryStep) Name() string { return "geometry" }

// Execute computes the bag weight from its dimensions and film density.
func (GeometryStep) Execute(c *Context) error {
	o := c.Order
	weight := ((o.Width + o.Fold) * (o.Length + o.Flap/2) * o.Thickness * 2 * c.Config.Density) / 10000
	c.SetWeight(weight)
	return nil
}

// ScrapStep stores the scrap fraction reported by the injected provider.
type ScrapStep struct {
	Provider ScrapRateProvider
}

// NewScrapStep returns a scrap step bound to provider.
func NewScrapStep(provider ScrapRateProvider) *ScrapStep {
	return &ScrapStep{Provider: provider}
}

// Name returns the step name used in errors and logs.
func (*ScrapStep) Name() string { return "scrap" }

// Execute asks the provider for the scrap rate of the run size.
func (s *ScrapStep) Execute(c *Context) error {
	rate, err := s.Provider.ScrapRate(c.Order.Quantity, c.Order.ProductType)
	if err != nil {
		return err
	}
	c.SetScrapRate(rate)
	return nil
}

// LaborCostStep passes the electricity rate through and selects the salary
// rate by wicket style and width tier.
type LaborCostStep struct{}

// Name returns the step name used in errors and logs.
func (LaborCostStep) Name() string { return "labor" }

// Execute records the electricity cost and selects the salary rate.
func (LaborCostStep) Execute(c *Context) error {
	c.SetElectricity(c.Config.ElectricityRate)
	c.SetSalaryRate(SelectSalaryRate(c.Config, c.Order.Features.IsWicket, c.Order.Width))
	return nil
}

// SelectSalaryRate returns the salary rate for a bag. Widths up to and including
// 25 cm use the small-bag rate.
func SelectSalaryRate(cfg *model.PricingConfig, isWicket bool, width float64) float64 {
	small := width <= smallWidthLimit
	switch {
	case isWicket && small:
		return cfg.SalaryWicketSmall
	case isWicket:
		return cfg.SalaryWicketLarge
	case small:
		return cfg.SalaryStdSmall
	default:
		return cfg.SalaryStdLarge
	}
}

// MaterialCostStep aggregates material, scrap, electricity, labor, box and
// feature costs into the variable cost.
type MaterialCostStep struct{}

// Name returns the step name used in errors and logs.
func (MaterialCostStep) Name() string { return "material" }

// Execute sums the per-bag costs into the variable cost.
func (MaterialCostStep) Execute(c *Context) error {
	if err := c.Require(Weight | ScrapRate | Electricity | SalaryRate); err != nil {
		return err
	}
	cfg := c.Config
	weight := c.Weight()
	pricePerKg := cfg.MaterialPrice(c.Order.ProductType)

	materialBaseCost := weight * pricePerKg / 1000
	// Explicit conversions keep products rounded before they are summed, so
	// no platform fuses them into multiply-add instructions.
	scrapCost := float64((weight / 1000) * c.ScrapRate() * (pricePerKg - cfg.ScrapReturnPrice))
	laborCost := float64(c.SalaryRate() * cfg.K1SalaryCoeff)
	boxUnitCost := BoxUnitCost(cfg)

	optionsCost, err := FeatureOptionsCost(cfg, c.Order)
	if err != nil {
		return err
	}

	vc := materialBaseCost + scrapCost + c.Electricity() + laborCost + boxUnitCost + optionsCost

	c.SetMaterialBaseCost(materialBaseCost)
	c.SetScrapCost(scrapCost)
	c.SetLaborCost(laborCost)
	c.SetOptionsCost(optionsCost)
	c.SetVariableCost(vc)
	return nil
}

// BoxUnitCost is the packaging cost share of a single bag.
func BoxUnitCost(cfg *model.PricingConfig) float64 {
	return cfg.BoxCost / boxBatchSize
}

// FeatureOptionsCost sums the feature charges of an order. Tape and euroslot rates
// are per cm of width; wicket bags always carry two clips per 200 bags.
func FeatureOptionsCost(cfg *model.PricingConfig, o model.OrderInput) (float64, error) {
	var total float64
	add := func(key string, factor float64) error {
		rate, ok := cfg.FeatureRate(key)
		if !ok {
			return &MissingFeatureRateError{Key: key}
		}
		total += float64(rate * factor)
		return nil
	}

	f := o.Features
	switch {
	case f.GlueTape:
		if err := add(model.RateGlue, o.Width); err != nil {
			return 0, err
		}
	case f.DeadTape:
		if err := add(model.RateDeadGlue, o.Width); err != nil {
			return 0, err
		}
	}

	switch {
	case strings.EqualFold(f.Euroslot, model.EuroslotPVD):
		if err := add(model.RateEuroslotPVD, o.Width); err != nil {
			return 0, err
		}
	case strings.EqualFold(f.Euroslot, model.EuroslotBOPP):
		if err := add(model.RateEuroslotBOPP, o.Width); err != nil {
			return 0, err
		}
	}

	if f.IsWicket {
		rate, ok := cfg.FeatureRate(model.RateClips)
		if !ok {
			return 0, &MissingFeatureRateError{Key: model.RateClips}
		}
		total += (rate * 2) / 200
	}
	return total, nil
}

// PricingStep is the terminal step:
//
//	overhead    = rop * weight / 1000
//	final_price = (VC/k2 + VC + overhead) * k3
//
// Overhead is added before the k3 multiplier.
type PricingStep struct{}

// Name returns the step name used in errors and logs.
func (PricingStep) Name() string { return "pricing" }

// Execute applies overhead and margins and stores the result.
func (PricingStep) Execute(c *Context) error {
	required := VariableCost | Weight | ScrapRate | MaterialBaseCost | ScrapCost |
		LaborCost | OptionsCost | Electricity | SalaryRate
	if err := c.Require(required); err != nil {
		return err
	}
	cfg := c.Config
	vc := c.VariableCost()
	weight := c.Weight()

	overheadCost := cfg.ROPOverhead * weight / 1000
	priceBeforeMargin := (vc / cfg.K2MarginDivisor) + vc + overheadCost
	finalPrice := priceBeforeMargin * cfg.K3MarginMultiplier

	return c.SetResult(model.CalculationResult{
		WeightGrams:      Round(weight, 4),
		ScrapRatePercent: Round(c.ScrapRate()*100, 2),
		MaterialCost:     Round(c.MaterialBaseCost(), 4),
		ScrapCost:        Round(c.ScrapCost(), 4),
		LaborCost:        Round(c.LaborCost(), 4),
		OverheadCost:     Round(overheadCost, 4),
		OptionsCost:      Round(c.OptionsCost(), 4),
		VariableCost:     Round(vc, 4),
		FinalPrice:       Round(finalPrice, 2),
		Details: model.Details{
			Electricity:  c.Electricity(),
			SalaryRate:   c.SalaryRate(),
			BoxComponent: BoxUnitCost(cfg),
		},
	})
}
