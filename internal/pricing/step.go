// Package pricing implements the bag cost pipeline: geometry, scrap rate,
// labor and electricity, variable cost and the final price.
package pricing

import "github.com/guttosm/bag-pricing-service/internal/domain/model"

// Step is one unit of work of the pricing pipeline. It reads intermediates
// written by earlier steps from the Context and writes its own.
type Step interface {
	Name() string
	Execute(c *Context) error
}

// ScrapRateProvider returns the expected defect fraction (0.15 for 15%) for a
// production run.
type ScrapRateProvider interface {
	ScrapRate(quantity int, bagType model.BagType) (float64, error)
}
