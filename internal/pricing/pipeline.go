package pricing

import "github.com/guttosm/bag-pricing-service/internal/domain/model"

// Pipeline runs its steps strictly in order over a fresh Context.
// It holds no per-request state and may be reused, but callers usually
// build one per request.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a pipeline with the given steps, executed in order.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// NewDefaultPipeline assembles the five production steps around a scrap provider.
func NewDefaultPipeline(provider ScrapRateProvider) *Pipeline {
	return NewPipeline(
		GeometryStep{},
		NewScrapStep(provider),
		LaborCostStep{},
		MaterialCostStep{},
		PricingStep{},
	)
}

// Steps returns the names of the configured steps, in execution order.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

// Calculate prices one order against cfg. The first failing step aborts the
// run with a *StepError; a run that ends without a terminal result returns
// ErrIncompletePipeline.
func (p *Pipeline) Calculate(order model.OrderInput, cfg *model.PricingConfig) (model.CalculationResult, error) {
	c := NewContext(order, cfg)
	for _, step := range p.steps {
		if err := step.Execute(c); err != nil {
			return model.CalculationResult{}, &StepError{Step: step.Name(), Err: err}
		}
	}
	result := c.Result()
	if result == nil {
		return model.CalculationResult{}, ErrIncompletePipeline
	}
	return *result, nil
}
