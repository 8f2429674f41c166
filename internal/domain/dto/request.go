// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/guttosm/bag-pricing-service/internal/domain/model"
)

// FeaturesRequest carries the optional bag features of an order.
//
// @Description Optional bag features
type FeaturesRequest struct {
	// IsWicket marks a wicket bag. Wicket bags always carry clips.
	IsWicket bool `json:"is_wicket" example:"false"`
	// GlueTape adds a resealable glue flap. Mutually exclusive with DeadTape.
	GlueTape bool `json:"glue_tape" example:"true"`
	// DeadTape adds a permanent tape. Mutually exclusive with GlueTape.
	DeadTape bool `json:"dead_tape" example:"false"`
	// Euroslot is the die-cut hanger variant: "pvd", "bopp" or empty.
	Euroslot *string `json:"euroslot" example:"pvd"`
	// Clips is ignored unless IsWicket is set.
	Clips bool `json:"clips" example:"false"`
} // @name FeaturesRequest

// OrderRequest represents the JSON request body of the calculate, preview and
// export endpoints. Unknown fields are rejected.
//
// @Description Bag order to price. Dimensions in cm, thickness in microns.
// @Example {"product_type": "BOPP", "width": 20, "length": 30, "flap": 4, "thickness": 25, "quantity": 50000}
type OrderRequest struct {
	// ProductKind defaults to "bag".
	ProductKind string `json:"product_kind" example:"bag"`
	// ProductType is the film family.
	ProductType string `json:"product_type" binding:"required,oneof=BOPP CPP" example:"BOPP" enums:"BOPP,CPP"`
	// Width in cm.
	Width float64 `json:"width" binding:"required,gt=0" example:"20"`
	// Fold is the side gusset in cm.
	Fold float64 `json:"fold" binding:"gte=0" example:"0"`
	// Length in cm.
	Length float64 `json:"length" binding:"required,gt=0" example:"30"`
	// Flap in cm.
	Flap float64 `json:"flap" binding:"gte=0" example:"4"`
	// Thickness in microns.
	Thickness float64 `json:"thickness" binding:"required,gt=0" example:"25"`
	// Quantity is the run size in pieces.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"50000" minimum:"1"`
	// PrintScheme is free text; defaults to "б/печати".
	PrintScheme string `json:"print_scheme" example:"1+0"`
	// Features are optional extras.
	Features FeaturesRequest `json:"features"`
} // @name OrderRequest

// ToModel validates the request and converts it into a domain order.
func (r *OrderRequest) ToModel() (model.OrderInput, error) {
	var euroslot string
	if r.Features.Euroslot != nil {
		euroslot = *r.Features.Euroslot
	}
	features, err := model.NewFeatures(r.Features.IsWicket, r.Features.GlueTape, r.Features.DeadTape, euroslot, r.Features.Clips)
	if err != nil {
		return model.OrderInput{}, err
	}
	return model.NewOrderInput(model.OrderInput{
		ProductKind: model.ProductKind(r.ProductKind),
		ProductType: model.BagType(r.ProductType),
		Width:       r.Width,
		Fold:        r.Fold,
		Length:      r.Length,
		Flap:        r.Flap,
		Thickness:   r.Thickness,
		Quantity:    r.Quantity,
		PrintScheme: r.PrintScheme,
		Features:    features,
	})
}

// UpdatePricingConfigRequest replaces the whole pricing configuration.
// Material prices and box cost are required; omitted coefficients take their
// standard values. An omitted feature_rates map sets every rate to zero; a
// supplied map is taken as is, so keys left out of it stay unconfigured.
//
// @Description Full pricing configuration replacement
type UpdatePricingConfigRequest struct {
	Density            *float64           `json:"density" example:"0.91"`
	MaterialPriceBOPP  *float64           `json:"material_price_bopp" binding:"required" example:"186"`
	MaterialPriceCPP   *float64           `json:"material_price_cpp" binding:"required" example:"186"`
	K1SalaryCoeff      *float64           `json:"k1_salary_coeff" example:"3.6"`
	BoxCost            *float64           `json:"box_cost" binding:"required" example:"23.2"`
	ScrapReturnPrice   *float64           `json:"scrap_return_price" example:"10"`
	K2MarginDivisor    *float64           `json:"k2_margin_divisor" example:"2.3"`
	K3MarginMultiplier *float64           `json:"k3_margin_multiplier" example:"1.7"`
	ROPOverhead        *float64           `json:"rop_overhead" example:"6"`
	FeatureRates       map[string]float64 `json:"feature_rates"`
	ElectricityRate    *float64           `json:"electricity_rate" example:"0.0095"`
	SalaryStdSmall     *float64           `json:"salary_std_small" example:"0.04"`
	SalaryStdLarge     *float64           `json:"salary_std_large" example:"0.053"`
	SalaryWicketSmall  *float64           `json:"salary_wicket_small" example:"0.075"`
	SalaryWicketLarge  *float64           `json:"salary_wicket_large" example:"0.078"`
} // @name UpdatePricingConfigRequest

// ToModel fills omitted fields with their standard values. The result is not
// validated; the service does that before activation.
func (r *UpdatePricingConfigRequest) ToModel() model.PricingConfig {
	cfg := model.DefaultPricingConfig()
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.Density, r.Density)
	set(&cfg.MaterialPriceBOPP, r.MaterialPriceBOPP)
	set(&cfg.MaterialPriceCPP, r.MaterialPriceCPP)
	set(&cfg.K1SalaryCoeff, r.K1SalaryCoeff)
	set(&cfg.BoxCost, r.BoxCost)
	set(&cfg.ScrapReturnPrice, r.ScrapReturnPrice)
	set(&cfg.K2MarginDivisor, r.K2MarginDivisor)
	set(&cfg.K3MarginMultiplier, r.K3MarginMultiplier)
	set(&cfg.ROPOverhead, r.ROPOverhead)
	set(&cfg.ElectricityRate, r.ElectricityRate)
	set(&cfg.SalaryStdSmall, r.SalaryStdSmall)
	set(&cfg.SalaryStdLarge, r.SalaryStdLarge)
	set(&cfg.SalaryWicketSmall, r.SalaryWicketSmall)
	set(&cfg.SalaryWicketLarge, r.SalaryWicketLarge)

	if r.FeatureRates == nil {
		cfg.FeatureRates = model.DefaultFeatureRates()
	} else {
		cfg.FeatureRates = make(map[string]float64, len(r.FeatureRates))
		for k, v := range r.FeatureRates {
			cfg.FeatureRates[k] = v
		}
	}
	return cfg
}
