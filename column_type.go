package tabula

import "fmt"

// ColumnType describes the role of a Column within a Table
type ColumnType string

const (
	// TimeColumnType indicates that a column holds timestamp data
	TimeColumnType ColumnType = "time"
	// DataColumnType indicates that a column holds raw input data
	DataColumnType ColumnType = "data"
	// CalculatedColumnType indicates that a column derives its values from an expression
	CalculatedColumnType ColumnType = "calculated"
	// UnsetColumnType indicates that a column has not been assigned a role
	UnsetColumnType ColumnType = "unset"
)

// ColumnTypeFromName translates a type tag to a ColumnType
func ColumnTypeFromName(name string) (ColumnType, error) {
	switch ColumnType(name) {
	case TimeColumnType, DataColumnType, CalculatedColumnType, UnsetColumnType:
		return ColumnType(name), nil
	default:
		return UnsetColumnType, fmt.Errorf("Unknown column type %s", name)
	}
}
