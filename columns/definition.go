package columns

import (
	"github.com/mitchellh/mapstructure"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/aggregators"
)

// Definition describes a column as supplied by a caller, typically decoded
// from a loosely-typed map. Zero values fall back to sensible defaults: an
// unset type, no aggregation, a generated id.
type Definition struct {
	Name        string `mapstructure:"name"`
	Type        string `mapstructure:"type"`
	ID          string `mapstructure:"id"`
	Expression  string `mapstructure:"expression"`
	Aggregation string `mapstructure:"aggregation"`
}

// FromDefinition builds a Column from a Definition, resolving the type tag
// and aggregation selector names
func FromDefinition(def Definition) (tabula.Column, error) {
	typ := tabula.UnsetColumnType
	if def.Type != "" {
		var err error
		typ, err = tabula.ColumnTypeFromName(def.Type)
		if err != nil {
			return nil, err
		}
	}
	agg := aggregators.None()
	if def.Aggregation != "" {
		var err error
		agg, err = aggregators.FromName(def.Aggregation)
		if err != nil {
			return nil, err
		}
	}
	return CreateColumn(def.Name, def.ID, typ, def.Expression, agg), nil
}

// FromMap decodes a loosely-typed definition map into a Definition and
// builds the matching Column
func FromMap(def map[string]interface{}) (tabula.Column, error) {
	var decoded Definition
	if err := mapstructure.Decode(def, &decoded); err != nil {
		return nil, err
	}
	return FromDefinition(decoded)
}
