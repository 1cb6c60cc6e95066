package aggregators

import "github.com/go-tabula/tabula"

// Sum returns the Aggregator which sums a column's row values
func Sum() tabula.Aggregator {
	return &sum{}
}

type sum struct{}

// Kind returns the summary operation this Aggregator performs
func (a *sum) Kind() tabula.AggregationKind {
	return tabula.SumAggregation
}

// Aggregate sums all row values. An empty column sums to 0.
func (a *sum) Aggregate(rows map[int]interface{}) string {
	values, err := coerce(rows)
	if err != nil {
		return tabula.ErrorSentinel
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return tabula.FormatNumber(total)
}
