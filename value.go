package tabula

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-tabula/tabula/errors"
)

// FormatValue converts a cell value to its display string. Numeric values
// are rendered without exponent notation; NaN renders as "NaN".
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return FormatNumber(val)
	case float32:
		return FormatNumber(float64(val))
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatNumber converts a float to its display string, trimming a trailing
// zero fraction so whole results render as integers
func FormatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToFloat64 coerces a cell value to a float64, parsing strings numerically.
// Values which cannot be coerced produce a NotNumericError.
func ToFloat64(v interface{}) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case uint64:
		return float64(val), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, errors.NotNumericError{Value: val}
		}
		return f, nil
	default:
		return 0, errors.NotNumericError{Value: fmt.Sprintf("%v", v)}
	}
}
