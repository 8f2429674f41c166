package model

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Feature rate keys. The set is fixed; rates for other keys are rejected.
const (
	RateGlue         = "glue"
	RateDeadGlue     = "dead_glue"
	RateEuroslotPVD  = "euroslot_pvd"
	RateEuroslotBOPP = "euroslot_bopp"
	RateClips        = "clips"
)

// FeatureRateKeys lists every accepted feature_rates key.
var FeatureRateKeys = []string{RateGlue, RateDeadGlue, RateEuroslotPVD, RateEuroslotBOPP, RateClips}

// PricingConfig holds the economist-tunable pricing parameters.
// It is treated as an immutable value: updates replace it as a whole.
type PricingConfig struct {
	// Density is the film density in g/cm³.
	Density float64 `json:"density" example:"0.91"`
	// MaterialPriceBOPP is the BOPP film price per kg.
	MaterialPriceBOPP float64 `json:"material_price_bopp" example:"200"`
	// MaterialPriceCPP is the CPP film price per kg.
	MaterialPriceCPP float64 `json:"material_price_cpp" example:"220"`
	// K1SalaryCoeff scales the selected salary rate into labor cost.
	K1SalaryCoeff float64 `json:"k1_salary_coeff" example:"3.6"`
	// BoxCost is the price of one box holding 2000 bags.
	BoxCost float64 `json:"box_cost" example:"50"`
	// ScrapReturnPrice is the buy-back price per kg of scrap.
	ScrapReturnPrice float64 `json:"scrap_return_price" example:"10"`
	// K2MarginDivisor derives the fixed-cost share from variable cost.
	K2MarginDivisor float64 `json:"k2_margin_divisor" example:"2.3"`
	// K3MarginMultiplier is the final margin multiplier.
	K3MarginMultiplier float64 `json:"k3_margin_multiplier" example:"1.7"`
	// ROPOverhead is the fixed overhead per kg.
	ROPOverhead float64 `json:"rop_overhead" example:"6"`
	// FeatureRates maps feature keys to per-cm (or per-piece for clips) rates.
	FeatureRates map[string]float64 `json:"feature_rates"`

	ElectricityRate   float64 `json:"electricity_rate" example:"0.0095"`
	SalaryStdSmall    float64 `json:"salary_std_small" example:"0.04"`
	SalaryStdLarge    float64 `json:"salary_std_large" example:"0.053"`
	SalaryWicketSmall float64 `json:"salary_wicket_small" example:"0.075"`
	SalaryWicketLarge float64 `json:"salary_wicket_large" example:"0.078"`
}

// DefaultFeatureRates returns a rate map with every key set to zero.
func DefaultFeatureRates() map[string]float64 {
	rates := make(map[string]float64, len(FeatureRateKeys))
	for _, k := range FeatureRateKeys {
		rates[k] = 0
	}
	return rates
}

// DefaultPricingConfig returns the configuration the service starts with
// when no configuration file is provided.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		Density:            0.91,
		MaterialPriceBOPP:  200.0,
		MaterialPriceCPP:   220.0,
		K1SalaryCoeff:      3.6,
		BoxCost:            50.0,
		ScrapReturnPrice:   10.0,
		K2MarginDivisor:    2.3,
		K3MarginMultiplier: 1.7,
		ROPOverhead:        6.0,
		FeatureRates: map[string]float64{
			RateGlue:         0.5,
			RateDeadGlue:     0.3,
			RateEuroslotPVD:  1.5,
			RateEuroslotBOPP: 1.2,
			RateClips:        2.0,
		},
		ElectricityRate:   0.0095,
		SalaryStdSmall:    0.04,
		SalaryStdLarge:    0.053,
		SalaryWicketSmall: 0.075,
		SalaryWicketLarge: 0.078,
	}
}

// MaterialPrice returns the per-kg film price for the bag family.
func (c *PricingConfig) MaterialPrice(t BagType) float64 {
	if t == BagTypeBOPP {
		return c.MaterialPriceBOPP
	}
	return c.MaterialPriceCPP
}

// FeatureRate looks up a feature rate. ok is false if the key is not configured.
func (c *PricingConfig) FeatureRate(key string) (rate float64, ok bool) {
	rate, ok = c.FeatureRates[key]
	return rate, ok
}

// Clone returns a deep copy so callers cannot alias the rate map.
func (c PricingConfig) Clone() PricingConfig {
	if c.FeatureRates != nil {
		rates := make(map[string]float64, len(c.FeatureRates))
		for k, v := range c.FeatureRates {
			rates[k] = v
		}
		c.FeatureRates = rates
	}
	return c
}

// Validate checks the configuration before it is made active.
func (c *PricingConfig) Validate() error {
	checks := []struct {
		field string
		value float64
		gtZero bool
	}{
		{"density", c.Density, true},
		{"k2_margin_divisor", c.K2MarginDivisor, true},
		{"k3_margin_multiplier", c.K3MarginMultiplier, true},
		{"material_price_bopp", c.MaterialPriceBOPP, false},
		{"material_price_cpp", c.MaterialPriceCPP, false},
		{"k1_salary_coeff", c.K1SalaryCoeff, false},
		{"box_cost", c.BoxCost, false},
		{"scrap_return_price", c.ScrapReturnPrice, false},
		{"rop_overhead", c.ROPOverhead, false},
		{"electricity_rate", c.ElectricityRate, false},
		{"salary_std_small", c.SalaryStdSmall, false},
		{"salary_std_large", c.SalaryStdLarge, false},
		{"salary_wicket_small", c.SalaryWicketSmall, false},
		{"salary_wicket_large", c.SalaryWicketLarge, false},
	}
	for _, chk := range checks {
		if math.IsNaN(chk.value) || math.IsInf(chk.value, 0) {
			return &ValidationError{Field: chk.field, Message: "must be a finite number"}
		}
		if chk.gtZero && chk.value <= 0 {
			return &ValidationError{Field: chk.field, Message: "must be greater than 0"}
		}
		if !chk.gtZero && chk.value < 0 {
			return &ValidationError{Field: chk.field, Message: "must be greater than or equal to 0"}
		}
	}

	unknown := make([]string, 0)
	for k, v := range c.FeatureRates {
		if !isFeatureRateKey(k) {
			unknown = append(unknown, k)
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return &ValidationError{Field: "feature_rates." + k, Message: "must be a finite number >= 0"}
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &ValidationError{Field: "feature_rates", Message: fmt.Sprintf("unknown keys %v", unknown)}
	}
	return nil
}

func isFeatureRateKey(k string) bool {
	for _, known := range FeatureRateKeys {
		if k == known {
			return true
		}
	}
	return false
}

// ConfigVersion is one entry of the in-memory configuration history.
type ConfigVersion struct {
	Version   int           `json:"version" example:"3"`
	Config    PricingConfig `json:"config"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"created_at"`
	CreatedBy string        `json:"created_by,omitempty" example:"economist"`
}
