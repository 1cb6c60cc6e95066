package aggregators

import (
	"math"

	"github.com/go-tabula/tabula"
)

// Max returns the Aggregator which finds the greatest of a column's row values
func Max() tabula.Aggregator {
	return &extremum{kind: tabula.MaxAggregation, seed: math.Inf(-1), better: func(v, best float64) bool { return v > best }}
}

// Min returns the Aggregator which finds the least of a column's row values
func Min() tabula.Aggregator {
	return &extremum{kind: tabula.MinAggregation, seed: math.Inf(1), better: func(v, best float64) bool { return v < best }}
}

type extremum struct {
	kind   tabula.AggregationKind
	seed   float64
	better func(v, best float64) bool
}

// Kind returns the summary operation this Aggregator performs
func (a *extremum) Kind() tabula.AggregationKind {
	return a.kind
}

// Aggregate reduces to the best row value. An empty column leaves the
// infinite seed untouched, which collapses to NaN before display.
func (a *extremum) Aggregate(rows map[int]interface{}) string {
	values, err := coerce(rows)
	if err != nil {
		return tabula.ErrorSentinel
	}
	best := a.seed
	for _, v := range values {
		if a.better(v, best) {
			best = v
		}
	}
	if math.IsInf(best, 0) {
		return tabula.FormatNumber(math.NaN())
	}
	return tabula.FormatNumber(best)
}
