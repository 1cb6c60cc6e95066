package errors

import (
	"fmt"
	"strings"
)

// UnknownVariableError occurs when an expression references a variable with
// no entry in the substitution map
type UnknownVariableError struct{ Name string }

// Error returns a textual representation of this UnknownVariableError
func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("Variable %s is not bound to a value", e.Name)
}

// EvalError occurs when the math evaluator rejects a substituted expression
type EvalError struct {
	Expression string
	Cause      error
}

// Error returns a textual representation of this EvalError
func (e EvalError) Error() string {
	return fmt.Sprintf("Unable to evaluate %q: %v", e.Expression, e.Cause)
}

// Unwrap returns the underlying evaluator error
func (e EvalError) Unwrap() error {
	return e.Cause
}

// NoResultError occurs when the math evaluator yields no usable result,
// such as for an empty expression
type NoResultError struct{ Expression string }

// Error returns a textual representation of this NoResultError
func (e NoResultError) Error() string {
	return fmt.Sprintf("Expression %q produced no result", e.Expression)
}

// NoCalculationError occurs when a row fill is attempted on a column with
// no expression
type NoCalculationError struct{ Column string }

// Error returns a textual representation of this NoCalculationError
func (e NoCalculationError) Error() string {
	return fmt.Sprintf("Column %s has no calculation", e.Column)
}

// NoSuchColumnError occurs when a name lookup matches no column in a Table
type NoSuchColumnError struct{ Name string }

// Error returns a textual representation of this NoSuchColumnError
func (e NoSuchColumnError) Error() string {
	return fmt.Sprintf("No column named %s", e.Name)
}

// CycleError occurs when calculated columns form a dependency cycle. Every
// cell of each member column fails with this error.
type CycleError struct{ Columns []string }

// Error returns a textual representation of this CycleError
func (e CycleError) Error() string {
	return fmt.Sprintf("Calculated columns form a dependency cycle: %s", strings.Join(e.Columns, ", "))
}

// NotNumericError occurs when a cell value cannot be coerced to a number
// during aggregation
type NotNumericError struct{ Value string }

// Error returns a textual representation of this NotNumericError
func (e NotNumericError) Error() string {
	return fmt.Sprintf("Value %q is not numeric", e.Value)
}

// BadPositionError occurs when a raw-data key is not a non-negative integer
type BadPositionError struct{ Key string }

// Error returns a textual representation of this BadPositionError
func (e BadPositionError) Error() string {
	return fmt.Sprintf("Position key %q is not a non-negative integer", e.Key)
}
