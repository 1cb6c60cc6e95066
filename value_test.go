package tabula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tabula/tabula/errors"
)

func TestFormatValue(t *testing.T) {
	require.Equal(t, "10", FormatValue(10))
	require.Equal(t, "10", FormatValue(10.0))
	require.Equal(t, "1.5", FormatValue(1.5))
	require.Equal(t, "hello", FormatValue("hello"))
	require.Equal(t, "NaN", FormatValue(math.NaN()))
}

func TestFormatNumberAvoidsExponentNotation(t *testing.T) {
	require.Equal(t, "1000000", FormatNumber(1e6))
}

func TestToFloat64(t *testing.T) {
	f, err := ToFloat64("  42 ")
	require.Nil(t, err)
	require.Equal(t, 42.0, f)

	f, err = ToFloat64(1.5)
	require.Nil(t, err)
	require.Equal(t, 1.5, f)

	_, err = ToFloat64("ERROR")
	require.NotNil(t, err)
	require.IsType(t, errors.NotNumericError{}, err)
}

func TestParsePosition(t *testing.T) {
	pos, err := ParsePosition("12")
	require.Nil(t, err)
	require.Equal(t, 12, pos)

	_, err = ParsePosition("-1")
	require.NotNil(t, err)
	_, err = ParsePosition("twelve")
	require.NotNil(t, err)
}

func TestColumnTypeFromName(t *testing.T) {
	typ, err := ColumnTypeFromName("calculated")
	require.Nil(t, err)
	require.Equal(t, CalculatedColumnType, typ)

	_, err = ColumnTypeFromName("widget")
	require.NotNil(t, err)
}

func TestAggregationKindFromName(t *testing.T) {
	kind, err := AggregationKindFromName("Average")
	require.Nil(t, err)
	require.Equal(t, AverageAggregation, kind)

	_, err = AggregationKindFromName("Median")
	require.NotNil(t, err)
}
