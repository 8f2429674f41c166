package model

// Details carries unrounded intermediates used for debugging and export.
type Details struct {
	Electricity  float64 `json:"electricity" example:"0.0095"`
	SalaryRate   float64 `json:"salary_rate" example:"0.04"`
	BoxComponent float64 `json:"box_component" example:"0.025"`
}

// CalculationResult is the per-unit cost breakdown of one order.
// Weight is in grams; every monetary field is per single bag.
//
// @Description Per-unit cost breakdown and final price
type CalculationResult struct {
	WeightGrams      float64 `json:"weight_grams" example:"3.276"`
	ScrapRatePercent float64 `json:"scrap_rate_percent" example:"15"`
	MaterialCost     float64 `json:"material_cost" example:"0.6552"`
	ScrapCost        float64 `json:"scrap_cost" example:"0.0934"`
	LaborCost        float64 `json:"labor_cost" example:"0.144"`
	OverheadCost     float64 `json:"overhead_cost" example:"0.0197"`
	OptionsCost      float64 `json:"options_cost" example:"0"`
	VariableCost     float64 `json:"variable_cost" example:"0.9271"`
	FinalPrice       float64 `json:"final_price" example:"2.27"`
	Details          Details `json:"details"`
}
