package table

import (
	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/columns"
)

// DefaultColumns returns the initial column set for a new, empty table: one
// time column and two data columns. Each call constructs fresh Columns, so
// no state is shared between tables.
func DefaultColumns() []tabula.Column {
	return []tabula.Column{
		columns.CreateTimeColumn("Time"),
		columns.CreateDataColumn("Data 1"),
		columns.CreateDataColumn("Data 2"),
	}
}
