package tabula

// A Table owns an ordered list of Columns plus raw input data, and
// orchestrates the compile pass which materializes every row of every
// Column. Column list position determines which raw-data slot each Column
// is bound to. A Table is intended for exclusive use by one logical caller;
// it performs no internal locking.
type Table interface {
	AddColumn(col Column) // AddColumn appends a Column, binding it to the next raw-data position
	Columns() []Column    // Columns returns the ordered Column list
	NumColumns() int      // NumColumns returns the number of Columns
	MaxRow() int          // MaxRow returns the greatest populated row index observed by the last Compile

	// Compile (re)derives all computed state from current inputs: assigns raw
	// rows to non-calculated Columns, determines the row extent, and fills
	// every row of every calculated Column in dependency order. It is
	// idempotent and safe to re-run after any change to columns or data.
	// Per-cell failures are collected into the returned error for diagnostics
	// but never prevent the rest of the table from compiling; callers which
	// only render may ignore it.
	Compile() error

	// GetValue returns the display value for a cell. When rowIndex exceeds
	// the current row extent it returns the column's aggregation display
	// instead, rendering the summary as one extra row at the bottom of the
	// table.
	GetValue(rowIndex int, colIndex int) string
	// GetRowsToRender returns the number of display rows: the row extent
	// plus one, plus an extra aggregation row when any Column aggregates.
	GetRowsToRender() int
}
