// Package aggregators provides the built-in Aggregators which reduce a
// column's row values to a single summary value. All reducers coerce row
// values to numbers; a value which cannot be coerced collapses the whole
// summary to the error sentinel rather than panicking.
package aggregators

import (
	"github.com/go-tabula/tabula"
)

// FromName resolves an aggregation selector name to an Aggregator
func FromName(name string) (tabula.Aggregator, error) {
	kind, err := tabula.AggregationKindFromName(name)
	if err != nil {
		return nil, err
	}
	switch kind {
	case tabula.SumAggregation:
		return Sum(), nil
	case tabula.AverageAggregation:
		return Average(), nil
	case tabula.MinAggregation:
		return Min(), nil
	case tabula.MaxAggregation:
		return Max(), nil
	default:
		return None(), nil
	}
}

// coerce converts every row value to a float64, in no particular order
func coerce(rows map[int]interface{}) ([]float64, error) {
	values := make([]float64, 0, len(rows))
	for _, v := range rows {
		f, err := tabula.ToFloat64(v)
		if err != nil {
			return nil, err
		}
		values = append(values, f)
	}
	return values, nil
}
