package tabula

import "fmt"

// AggregationKind names a summary operation over a Column's row values
type AggregationKind string

const (
	// NoneAggregation indicates that a column produces no summary
	NoneAggregation AggregationKind = "None"
	// SumAggregation indicates that a column summarizes as a numeric sum
	SumAggregation AggregationKind = "Sum"
	// AverageAggregation indicates that a column summarizes as an arithmetic mean
	AverageAggregation AggregationKind = "Average"
	// MinAggregation indicates that a column summarizes as its least value
	MinAggregation AggregationKind = "Min"
	// MaxAggregation indicates that a column summarizes as its greatest value
	MaxAggregation AggregationKind = "Max"
)

// AggregationKindFromName translates a selector name to an AggregationKind
func AggregationKindFromName(name string) (AggregationKind, error) {
	switch AggregationKind(name) {
	case NoneAggregation, SumAggregation, AverageAggregation, MinAggregation, MaxAggregation:
		return AggregationKind(name), nil
	default:
		return NoneAggregation, fmt.Errorf("Unknown aggregation %s", name)
	}
}

// An Aggregator reduces a Column's materialized row values to a single
// summary value for display. Aggregators are stateless: each call to
// Aggregate computes the summary from scratch.
type Aggregator interface {
	Kind() AggregationKind                     // Kind returns the summary operation this Aggregator performs
	Aggregate(rows map[int]interface{}) string // Aggregate reduces row values to a display value
}
