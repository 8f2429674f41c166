// Package testutil provides shared fixtures for tests.
package testutil

import "github.com/guttosm/bag-pricing-service/internal/domain/model"

// EconomistConfig returns the reference configuration supplied by the
// economist together with the acceptance test cases.
func EconomistConfig() model.PricingConfig {
	return model.PricingConfig{
		Density:            0.91,
		MaterialPriceBOPP:  186.0,
		MaterialPriceCPP:   186.0,
		K1SalaryCoeff:      3.6,
		BoxCost:            23.20,
		ScrapReturnPrice:   10.0,
		K2MarginDivisor:    2.3,
		K3MarginMultiplier: 1.7,
		ROPOverhead:        6.0,
		FeatureRates: map[string]float64{
			model.RateGlue:         0.003,
			model.RateDeadGlue:     0.0207,
			model.RateEuroslotPVD:  0.0137,
			model.RateEuroslotBOPP: 0.0012,
			model.RateClips:        0.8,
		},
		ElectricityRate:   0.0095,
		SalaryStdSmall:    0.04,
		SalaryStdLarge:    0.053,
		SalaryWicketSmall: 0.075,
		SalaryWicketLarge: 0.078,
	}
}

// Order returns a plain BOPP order that passes validation.
func Order(width, length, thickness float64, quantity int) model.OrderInput {
	return model.OrderInput{
		ProductKind: model.ProductKindBag,
		ProductType: model.BagTypeBOPP,
		Width:       width,
		Length:      length,
		Thickness:   thickness,
		Quantity:    quantity,
		PrintScheme: model.DefaultPrintScheme,
	}
}
