package aggregators

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tabula/tabula"
)

func TestSum(t *testing.T) {
	result := Sum().Aggregate(map[int]interface{}{0: 10, 1: 20, 2: 12})
	require.Equal(t, "42", result)
}

func TestSumEmpty(t *testing.T) {
	require.Equal(t, "0", Sum().Aggregate(map[int]interface{}{}))
}

func TestSumCoercesStrings(t *testing.T) {
	result := Sum().Aggregate(map[int]interface{}{0: "10", 1: 20.5})
	require.Equal(t, "30.5", result)
}

func TestSumNonNumeric(t *testing.T) {
	result := Sum().Aggregate(map[int]interface{}{0: 10, 1: "ERROR"})
	require.Equal(t, tabula.ErrorSentinel, result)
}

func TestAverage(t *testing.T) {
	result := Average().Aggregate(map[int]interface{}{0: 2, 1: 4})
	require.Equal(t, "3", result)
}

func TestAverageEmptyIsNaN(t *testing.T) {
	require.Equal(t, "NaN", Average().Aggregate(map[int]interface{}{}))
}

func TestMax(t *testing.T) {
	result := Max().Aggregate(map[int]interface{}{0: 5, 1: -3, 2: 4})
	require.Equal(t, "5", result)
}

func TestMaxEmptyIsNaN(t *testing.T) {
	// the -Inf seed never leaks to the caller
	require.Equal(t, "NaN", Max().Aggregate(map[int]interface{}{}))
}

func TestMin(t *testing.T) {
	result := Min().Aggregate(map[int]interface{}{0: 5, 1: -3, 2: 4})
	require.Equal(t, "-3", result)
}

func TestMinEmptyIsNaN(t *testing.T) {
	require.Equal(t, "NaN", Min().Aggregate(map[int]interface{}{}))
}

func TestNone(t *testing.T) {
	require.Equal(t, "", None().Aggregate(map[int]interface{}{0: 1}))
	require.Equal(t, tabula.NoneAggregation, None().Kind())
}

func TestFromName(t *testing.T) {
	agg, err := FromName("Sum")
	require.Nil(t, err)
	require.Equal(t, tabula.SumAggregation, agg.Kind())

	agg, err = FromName("None")
	require.Nil(t, err)
	require.Equal(t, tabula.NoneAggregation, agg.Kind())

	_, err = FromName("Median")
	require.NotNil(t, err)
}
