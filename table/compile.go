package table

import (
	"github.com/hashicorp/go-multierror"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
	"github.com/go-tabula/tabula/logging"
)

// Compile (re)derives all computed state from current inputs. Raw rows are
// assigned to columns by position, the row extent is recomputed, and every
// calculated column is filled for every row from 0 through the extent.
// Calculated columns evaluate in dependency order, so a column referencing a
// later-declared calculated sibling sees fresh values; columns stuck on a
// dependency cycle fail every cell with the error sentinel instead.
//
// Per-cell failures never stop the pass: they are recorded in the affected
// cells, logged, and collected into the returned error for diagnostics.
func (t *table) Compile() error {
	t.maxRow = 0
	for i, col := range t.columns {
		rows, ok := t.raw[i]
		if !ok {
			continue
		}
		col.SetRows(rows)
		for idx := range rows {
			if idx > t.maxRow {
				t.maxRow = idx
			}
		}
	}

	t.hasAgg = false
	for _, col := range t.columns {
		if col.Aggregator().Kind() != tabula.NoneAggregation {
			t.hasAgg = true
			break
		}
	}

	byName := make(map[string]int, len(t.columns))
	for i, col := range t.columns {
		byName[col.Name()] = i
	}

	order, stuck := t.resolveOrder(byName)

	var errs *multierror.Error
	if len(stuck) > 0 {
		names := make([]string, 0, len(stuck))
		for _, i := range stuck {
			names = append(names, t.columns[i].Name())
		}
		cause := errors.CycleError{Columns: names}
		t.log.Logf(logging.WarnLevel, "%v", cause)
		errs = multierror.Append(errs, cause)
		for _, i := range stuck {
			col := t.columns[i]
			for row := 0; row <= t.maxRow; row++ {
				col.FailRow(row, cause)
			}
		}
	}

	for _, i := range order {
		col := t.columns[i]
		expected := col.Calculation().ExpectedVariables()
		for row := 0; row <= t.maxRow; row++ {
			variables := make(map[string]interface{}, len(expected))
			for _, name := range expected {
				si, ok := byName[name]
				if !ok {
					// no matching sibling: omitted here, surfaces as an
					// unknown-variable failure at evaluation time
					continue
				}
				if v, set := t.columns[si].Value(row); set {
					variables[name] = v
				}
			}
			if err := col.FillRow(row, variables); err != nil {
				t.log.Logf(logging.WarnLevel, "Column %s row %d: %v", col.Name(), row, err)
				errs = multierror.Append(errs, err)
			}
		}
	}
	return errs.ErrorOrNil()
}

// resolveOrder orders calculated columns so each evaluates after the
// calculated siblings it references. Columns which can never become ready,
// because they sit on a dependency cycle or downstream of one, are returned
// separately as stuck.
func (t *table) resolveOrder(byName map[string]int) (order []int, stuck []int) {
	var calculated []int
	indegree := make(map[int]int)
	dependents := make(map[int][]int)
	for i, col := range t.columns {
		if col.Type() != tabula.CalculatedColumnType {
			continue
		}
		calculated = append(calculated, i)
		for _, name := range col.Calculation().ExpectedVariables() {
			si, ok := byName[name]
			if !ok || t.columns[si].Type() != tabula.CalculatedColumnType {
				continue
			}
			dependents[si] = append(dependents[si], i)
			indegree[i]++
		}
	}

	order = make([]int, 0, len(calculated))
	done := make(map[int]bool, len(calculated))
	for len(order) < len(calculated) {
		progressed := false
		// scan in list order so independent columns keep a stable evaluation order
		for _, i := range calculated {
			if done[i] || indegree[i] > 0 {
				continue
			}
			done[i] = true
			order = append(order, i)
			for _, d := range dependents[i] {
				indegree[d]--
			}
			progressed = true
		}
		if !progressed {
			break
		}
	}
	for _, i := range calculated {
		if !done[i] {
			stuck = append(stuck, i)
		}
	}
	return order, stuck
}
