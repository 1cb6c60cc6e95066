package aggregators

import "github.com/go-tabula/tabula"

// None returns the Aggregator which produces no summary
func None() tabula.Aggregator {
	return &none{}
}

type none struct{}

// Kind returns the summary operation this Aggregator performs
func (a *none) Kind() tabula.AggregationKind {
	return tabula.NoneAggregation
}

// Aggregate produces an empty display: a None column has no summary row
func (a *none) Aggregate(rows map[int]interface{}) string {
	return ""
}
