// Package memory provides a DataSource over a caller-supplied two-level
// mapping: outer key = stringified column position, inner key = stringified
// row position (sparse gaps allowed), value = string or number.
package memory

import (
	"github.com/go-tabula/tabula"
)

// DataSource is a buffer containing raw data which a Table will bind to its
// Columns by position
type DataSource struct {
	data map[string]map[string]interface{}
}

// CreateDataSource is a factory for in-memory DataSources
func CreateDataSource(data map[string]map[string]interface{}) *DataSource {
	return &DataSource{data: data}
}

// Load converts the source's data to canonical RawData
func (ds *DataSource) Load() (tabula.RawData, error) {
	raw := make(tabula.RawData, len(ds.data))
	for colKey, rows := range ds.data {
		col, err := tabula.ParsePosition(colKey)
		if err != nil {
			return nil, err
		}
		inner := make(map[int]interface{}, len(rows))
		for rowKey, val := range rows {
			row, err := tabula.ParsePosition(rowKey)
			if err != nil {
				return nil, err
			}
			inner[row] = val
		}
		raw[col] = inner
	}
	return raw, nil
}
