package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
)

func TestLoad(t *testing.T) {
	ds := CreateDataSource(map[string]map[string]interface{}{
		"0": {"0": 10, "1": "20"},
		"1": {"5": 1.5},
	})
	raw, err := ds.Load()
	require.Nil(t, err)
	require.Equal(t, tabula.RawData{
		0: {0: 10, 1: "20"},
		1: {5: 1.5},
	}, raw)
}

func TestLoadEmpty(t *testing.T) {
	raw, err := CreateDataSource(map[string]map[string]interface{}{}).Load()
	require.Nil(t, err)
	require.Empty(t, raw)
}

func TestLoadBadColumnKey(t *testing.T) {
	_, err := CreateDataSource(map[string]map[string]interface{}{
		"first": {"0": 1},
	}).Load()
	require.NotNil(t, err)
	require.IsType(t, errors.BadPositionError{}, err)
}

func TestLoadNegativeRowKey(t *testing.T) {
	_, err := CreateDataSource(map[string]map[string]interface{}{
		"0": {"-1": 1},
	}).Load()
	require.NotNil(t, err)
	require.IsType(t, errors.BadPositionError{}, err)
}
