package pricing

import (
	"strings"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
)

// Intermediate identifies one value a step writes into the Context.
// Values are bit flags so a set of them can be required at once.
type Intermediate uint16

// Intermediates written by the default steps.
const (
	Weight Intermediate = 1 << iota
	ScrapRate
	Electricity
	SalaryRate
	MaterialBaseCost
	ScrapCost
	LaborCost
	OptionsCost
	VariableCost
)

var intermediateNames = []struct {
	key  Intermediate
	name string
}{
	{Weight, "weight"},
	{ScrapRate, "scrap_rate"},
	{Electricity, "electricity"},
	{SalaryRate, "salary_rate"},
	{MaterialBaseCost, "material_base_cost"},
	{ScrapCost, "scrap_cost"},
	{LaborCost, "labor_cost"},
	{OptionsCost, "options_cost"},
	{VariableCost, "variable_cost"},
}

// String returns the snake_case name(s) of the intermediate set.
func (i Intermediate) String() string {
	names := make([]string, 0, 1)
	for _, n := range intermediateNames {
		if i&n.key != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Context accumulates intermediates for one pricing request. It is created by
// the pipeline, filled step by step and discarded once the result is taken.
// A Context is never shared between goroutines.
type Context struct {
	Order  model.OrderInput
	Config *model.PricingConfig

	weight           float64
	scrapRate        float64
	electricity      float64
	salaryRate       float64
	materialBaseCost float64
	scrapCost        float64
	laborCost        float64
	optionsCost      float64
	variableCost     float64

	written Intermediate
	result  *model.CalculationResult
}

// NewContext wraps an order and the active configuration.
func NewContext(order model.OrderInput, cfg *model.PricingConfig) *Context {
	return &Context{Order: order, Config: cfg}
}

// Require returns a MissingDependencyError for the first key in keys that has
// not been written yet.
func (c *Context) Require(keys Intermediate) error {
	missing := keys &^ c.written
	if missing == 0 {
		return nil
	}
	for _, n := range intermediateNames {
		if missing&n.key != 0 {
			return &MissingDependencyError{Key: n.key}
		}
	}
	return &MissingDependencyError{Key: missing}
}

// Has reports whether every key in keys was written.
func (c *Context) Has(keys Intermediate) bool {
	return c.written&keys == keys
}

// SetWeight records the bag weight in grams.
func (c *Context) SetWeight(v float64) { c.weight = v; c.written |= Weight }

// SetScrapRate records the scrap fraction.
func (c *Context) SetScrapRate(v float64) { c.scrapRate = v; c.written |= ScrapRate }

// SetElectricity records the electricity cost per bag.
func (c *Context) SetElectricity(v float64) { c.electricity = v; c.written |= Electricity }

// SetSalaryRate records the base salary rate per bag.
func (c *Context) SetSalaryRate(v float64) { c.salaryRate = v; c.written |= SalaryRate }

// SetMaterialBaseCost records the film cost per bag.
func (c *Context) SetMaterialBaseCost(v float64) { c.materialBaseCost = v; c.written |= MaterialBaseCost }

// SetScrapCost records the net scrap cost per bag.
func (c *Context) SetScrapCost(v float64) { c.scrapCost = v; c.written |= ScrapCost }

// SetLaborCost records the labor cost per bag.
func (c *Context) SetLaborCost(v float64) { c.laborCost = v; c.written |= LaborCost }

// SetOptionsCost records the feature charges per bag.
func (c *Context) SetOptionsCost(v float64) { c.optionsCost = v; c.written |= OptionsCost }

// SetVariableCost records the variable cost per bag.
func (c *Context) SetVariableCost(v float64) { c.variableCost = v; c.written |= VariableCost }

// Weight returns the bag weight in grams, or zero before it is written.
func (c *Context) Weight() float64 { return c.weight }

// ScrapRate returns the scrap fraction, or zero before it is written.
func (c *Context) ScrapRate() float64 { return c.scrapRate }

// Electricity returns the electricity cost per bag, or zero before it is written.
func (c *Context) Electricity() float64 { return c.electricity }

// SalaryRate returns the base salary rate per bag, or zero before it is written.
func (c *Context) SalaryRate() float64 { return c.salaryRate }

// MaterialBaseCost returns the film cost per bag, or zero before it is written.
func (c *Context) MaterialBaseCost() float64 { return c.materialBaseCost }

// ScrapCost returns the net scrap cost per bag, or zero before it is written.
func (c *Context) ScrapCost() float64 { return c.scrapCost }

// LaborCost returns the labor cost per bag, or zero before it is written.
func (c *Context) LaborCost() float64 { return c.laborCost }

// OptionsCost returns the feature charges per bag, or zero before it is written.
func (c *Context) OptionsCost() float64 { return c.optionsCost }

// VariableCost returns the variable cost per bag, or zero before it is written.
func (c *Context) VariableCost() float64 { return c.variableCost }

// SetResult stores the terminal result. Only the terminal step calls it.
func (c *Context) SetResult(r model.CalculationResult) error {
	if c.result != nil {
		return ErrResultAlreadySet
	}
	c.result = &r
	return nil
}

// Result returns the terminal result, or nil when no step produced one.
func (c *Context) Result() *model.CalculationResult {
	return c.result
}
