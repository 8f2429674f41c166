package pricing

import (
	"math"
	"strconv"
)

// Round rounds x to places decimals, half to even on the exact binary value
// of x (strconv conversions are correctly rounded).
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return r
}
