package jsonmap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
)

func TestLoad(t *testing.T) {
	raw, err := CreateDataSource([]byte(`{"0": {"0": 10, "1": 20}, "1": {"0": 100, "1": 200}}`)).Load()
	require.Nil(t, err)
	require.Equal(t, tabula.RawData{
		0: {0: 10.0, 1: 20.0},
		1: {0: 100.0, 1: 200.0},
	}, raw)
}

func TestLoadPreservesStrings(t *testing.T) {
	raw, err := CreateDataSource([]byte(`{"0": {"0": "10:30", "2": 1.5}}`)).Load()
	require.Nil(t, err)
	require.Equal(t, "10:30", raw[0][0])
	require.Equal(t, 1.5, raw[0][2])
}

func TestLoadNotAnObject(t *testing.T) {
	_, err := CreateDataSource([]byte(`[1, 2]`)).Load()
	require.NotNil(t, err)
}

func TestLoadBadPositionKey(t *testing.T) {
	_, err := CreateDataSource([]byte(`{"density": {"0": 1}}`)).Load()
	require.NotNil(t, err)
	require.IsType(t, errors.BadPositionError{}, err)
}

func TestLoadFeedsTable(t *testing.T) {
	// the canonical source format round-trips into compiled cells
	raw, err := CreateDataSource([]byte(`{"0": {"0": 10}, "1": {"0": 100}}`)).Load()
	require.Nil(t, err)
	require.Equal(t, 10.0, raw[0][0])
	require.Equal(t, 100.0, raw[1][0])
}
