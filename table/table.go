// Package table implements Tables and their compile pipeline. A Table binds
// an ordered list of Columns to raw input data by position, then materializes
// every cell: raw rows are assigned to non-calculated columns wholesale, and
// calculated columns are filled row by row from their siblings' values.
package table

import (
	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/logging"
)

type table struct {
	raw     tabula.RawData
	columns []tabula.Column
	maxRow  int
	hasAgg  bool
	log     *logging.Logger
}

// CreateTable is a factory for Tables over canonical RawData
func CreateTable(raw tabula.RawData) tabula.Table {
	return &table{
		raw: raw,
		log: logging.CreateLogger(logging.WarnLevel),
	}
}

// CreateTableFromSource loads a DataSource and constructs a Table over its data
func CreateTableFromSource(source tabula.DataSource) (tabula.Table, error) {
	raw, err := source.Load()
	if err != nil {
		return nil, err
	}
	return CreateTable(raw), nil
}

// AddColumn appends a Column, binding it to the next raw-data position
func (t *table) AddColumn(col tabula.Column) {
	t.columns = append(t.columns, col)
}

// Columns returns the ordered Column list
func (t *table) Columns() []tabula.Column {
	return t.columns
}

// NumColumns returns the number of Columns
func (t *table) NumColumns() int {
	return len(t.columns)
}

// MaxRow returns the greatest populated row index observed by the last Compile
func (t *table) MaxRow() int {
	return t.maxRow
}

// GetValue returns the display value for a cell. A row index beyond the
// current row extent renders the column's aggregation display, presenting
// the summary as one extra row at the bottom of the table.
func (t *table) GetValue(rowIndex int, colIndex int) string {
	if colIndex < 0 || colIndex >= len(t.columns) {
		return ""
	}
	col := t.columns[colIndex]
	if rowIndex > t.maxRow {
		return col.GetAggregation()
	}
	return col.GetValue(rowIndex)
}

// GetRowsToRender returns the number of display rows, reserving one extra
// row for aggregation summaries when any Column aggregates
func (t *table) GetRowsToRender() int {
	if t.hasAgg {
		return t.maxRow + 2
	}
	return t.maxRow + 1
}
