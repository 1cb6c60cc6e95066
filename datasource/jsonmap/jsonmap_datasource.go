// Package jsonmap provides a DataSource over the JSON form of the raw-data
// mapping: an object of stringified column positions, each holding an object
// of stringified row positions to string or number values.
package jsonmap

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/go-tabula/tabula"
)

// DataSource parses raw data from a JSON document
type DataSource struct {
	doc []byte
}

// CreateDataSource is a factory for JSON DataSources
func CreateDataSource(doc []byte) *DataSource {
	return &DataSource{doc: doc}
}

// Load converts the source's data to canonical RawData. Numbers stay
// numeric; strings stay strings.
func (ds *DataSource) Load() (tabula.RawData, error) {
	parsed := gjson.ParseBytes(ds.doc)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("Raw data document is not a JSON object")
	}
	raw := make(tabula.RawData)
	var firstErr error
	parsed.ForEach(func(colKey, rows gjson.Result) bool {
		col, err := tabula.ParsePosition(colKey.String())
		if err != nil {
			firstErr = err
			return false
		}
		if !rows.IsObject() {
			firstErr = fmt.Errorf("Column %d rows are not a JSON object", col)
			return false
		}
		inner := make(map[int]interface{})
		rows.ForEach(func(rowKey, val gjson.Result) bool {
			row, err := tabula.ParsePosition(rowKey.String())
			if err != nil {
				firstErr = err
				return false
			}
			switch val.Type {
			case gjson.Number:
				inner[row] = val.Float()
			case gjson.String:
				inner[row] = val.String()
			default:
				inner[row] = val.Value()
			}
			return true
		})
		if firstErr != nil {
			return false
		}
		raw[col] = inner
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return raw, nil
}
