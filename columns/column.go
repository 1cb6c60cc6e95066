// Package columns implements Columns and their construction from
// caller-supplied definitions. Column identity (name, id, type, expression,
// aggregation) is fixed at construction; editing a column means building a
// new one.
package columns

import (
	uuid "github.com/gofrs/uuid"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/aggregators"
	"github.com/go-tabula/tabula/errors"
	"github.com/go-tabula/tabula/eval"
)

type column struct {
	name string
	id   string
	typ  tabula.ColumnType
	calc tabula.Calculation
	agg  tabula.Aggregator
	rows map[int]interface{}
	errs map[int]error
}

// CreateColumn is a factory for Columns. An empty id is replaced with a
// generated one; a nil agg means no aggregation.
func CreateColumn(name string, id string, typ tabula.ColumnType, expression string, agg tabula.Aggregator) tabula.Column {
	if id == "" {
		id = uuid.Must(uuid.NewV4()).String()
	}
	if agg == nil {
		agg = aggregators.None()
	}
	return &column{
		name: name,
		id:   id,
		typ:  typ,
		calc: eval.CreateCalculation(expression),
		agg:  agg,
		rows: make(map[int]interface{}),
		errs: make(map[int]error),
	}
}

// CreateTimeColumn returns a new time Column with a generated id
func CreateTimeColumn(name string) tabula.Column {
	return CreateColumn(name, "", tabula.TimeColumnType, "", nil)
}

// CreateDataColumn returns a new data Column with a generated id
func CreateDataColumn(name string) tabula.Column {
	return CreateColumn(name, "", tabula.DataColumnType, "", nil)
}

// CreateCalculatedColumn returns a new calculated Column with a generated id
func CreateCalculatedColumn(name string, expression string, agg tabula.Aggregator) tabula.Column {
	return CreateColumn(name, "", tabula.CalculatedColumnType, expression, agg)
}

// Name returns the name of this Column
func (c *column) Name() string {
	return c.name
}

// ID returns the stable identifier of this Column
func (c *column) ID() string {
	return c.id
}

// Type returns the ColumnType of this Column
func (c *column) Type() tabula.ColumnType {
	return c.typ
}

// Calculation returns the Calculation associated with this Column
func (c *column) Calculation() tabula.Calculation {
	return c.calc
}

// Aggregator returns the Aggregator associated with this Column
func (c *column) Aggregator() tabula.Aggregator {
	return c.agg
}

// Clone returns a copy of this Column with the same identity and no
// materialized rows
func (c *column) Clone() tabula.Column {
	return CreateColumn(c.name, c.id, c.typ, c.calc.Expression(), c.agg)
}

// SetRows replaces the materialized row mapping wholesale
func (c *column) SetRows(rows map[int]interface{}) {
	replaced := make(map[int]interface{}, len(rows))
	for idx, v := range rows {
		replaced[idx] = v
	}
	c.rows = replaced
	c.errs = make(map[int]error)
}

// FillRow evaluates this Column's expression against the supplied variables
// and stores the result at rowIndex, overwriting any existing value. On
// failure the error sentinel is stored so dependent columns and aggregations
// observe the failed cell, and the typed error is returned.
func (c *column) FillRow(rowIndex int, variables map[string]interface{}) error {
	if c.calc.Expression() == "" {
		err := errors.NoCalculationError{Column: c.name}
		c.FailRow(rowIndex, err)
		return err
	}
	result, err := eval.Evaluate(c.calc.Expression(), variables)
	if err != nil {
		c.FailRow(rowIndex, err)
		return err
	}
	c.rows[rowIndex] = result
	delete(c.errs, rowIndex)
	return nil
}

// FailRow records a failed cell at rowIndex without evaluating
func (c *column) FailRow(rowIndex int, cause error) {
	c.rows[rowIndex] = tabula.ErrorSentinel
	c.errs[rowIndex] = cause
}

// Value returns the materialized value at rowIndex and whether one is set
func (c *column) Value(rowIndex int) (interface{}, bool) {
	v, ok := c.rows[rowIndex]
	return v, ok
}

// RowError returns the typed failure recorded at rowIndex, or nil
func (c *column) RowError(rowIndex int) error {
	return c.errs[rowIndex]
}

// GetValue returns the stored value at rowIndex converted to a string, or an
// empty string when unset
func (c *column) GetValue(rowIndex int) string {
	v, ok := c.rows[rowIndex]
	if !ok {
		return ""
	}
	return tabula.FormatValue(v)
}

// GetAggregation returns this Column's summary over its current rows,
// formatted with the operation's display name
func (c *column) GetAggregation() string {
	if c.agg.Kind() == tabula.NoneAggregation {
		return ""
	}
	return string(c.agg.Kind()) + ": " + c.agg.Aggregate(c.rows)
}
