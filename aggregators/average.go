package aggregators

import "github.com/go-tabula/tabula"

// Average returns the Aggregator which averages a column's row values
func Average() tabula.Aggregator {
	return &average{}
}

type average struct{}

// Kind returns the summary operation this Aggregator performs
func (a *average) Kind() tabula.AggregationKind {
	return tabula.AverageAggregation
}

// Aggregate divides the sum of all row values by the row count. An empty
// column divides zero by zero, which displays as NaN rather than raising.
func (a *average) Aggregate(rows map[int]interface{}) string {
	values, err := coerce(rows)
	if err != nil {
		return tabula.ErrorSentinel
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return tabula.FormatNumber(total / float64(len(values)))
}
