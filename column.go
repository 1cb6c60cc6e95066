package tabula

// ErrorSentinel is the display value a failed cell presents to callers.
// Failures never cross the engine boundary as panics; they collapse to
// this sentinel at the presentation accessors.
const ErrorSentinel = "ERROR"

// A Column is the unit of data within a Table: identity, type, an associated
// Calculation (empty expression for non-calculated columns), an Aggregator,
// and a sparse mapping from row index to materialized value. Identity fields
// are fixed at construction; editing a column means constructing a new one.
type Column interface {
	Name() string             // Name returns the name of this Column, used as its variable-reference key
	ID() string               // ID returns the stable identifier of this Column
	Type() ColumnType         // Type returns the ColumnType of this Column
	Calculation() Calculation // Calculation returns the Calculation associated with this Column
	Aggregator() Aggregator   // Aggregator returns the Aggregator associated with this Column
	Clone() Column            // Clone returns a copy of this Column with no materialized rows

	// SetRows replaces the materialized row mapping wholesale
	SetRows(rows map[int]interface{})
	// FillRow evaluates this Column's Calculation against the supplied
	// variables and stores the result at rowIndex, overwriting any existing
	// value. A failed evaluation stores the error sentinel and returns the
	// underlying typed error.
	FillRow(rowIndex int, variables map[string]interface{}) error
	// FailRow records a failed cell at rowIndex without evaluating: the
	// error sentinel is stored as the value and cause is retained as the
	// typed failure. Used when a cell cannot be evaluated at all, such as
	// membership in a dependency cycle.
	FailRow(rowIndex int, cause error)
	// Value returns the materialized value at rowIndex and whether one is set
	Value(rowIndex int) (interface{}, bool)
	// RowError returns the typed failure recorded at rowIndex, or nil
	RowError(rowIndex int) error
	// GetValue returns the stored value at rowIndex converted to a string,
	// or an empty string when unset. It never panics.
	GetValue(rowIndex int) string
	// GetAggregation returns this Column's summary over its current rows,
	// formatted with the operation's display name, or an empty string when
	// this Column does not aggregate.
	GetAggregation() string
}
