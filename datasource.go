package tabula

import (
	"strconv"

	"github.com/go-tabula/tabula/errors"
)

// RawData is the canonical in-memory form of a Table's input: column
// position to sparse row index to value. Values are strings or numbers as
// supplied by the source. Column positions absent from the mapping have no
// raw rows.
type RawData map[int]map[int]interface{}

// A DataSource produces RawData for a Table from some external
// representation of the two-level position mapping.
type DataSource interface {
	Load() (RawData, error) // Load converts the source's data to canonical RawData
}

// ParsePosition parses a stringified column or row position. Keys which are
// not non-negative integers produce a BadPositionError.
func ParsePosition(key string) (int, error) {
	pos, err := strconv.Atoi(key)
	if err != nil || pos < 0 {
		return 0, errors.BadPositionError{Key: key}
	}
	return pos, nil
}
