package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tabula/tabula/errors"
)

func TestExtractVariablesDeduplicates(t *testing.T) {
	names := ExtractVariables("#A# + #B# * #A#")
	require.ElementsMatch(t, []string{"A", "B"}, names)
}

func TestExtractVariablesNoReferences(t *testing.T) {
	require.Empty(t, ExtractVariables("1+2"))
}

func TestExtractVariablesSpacedNames(t *testing.T) {
	names := ExtractVariables("#Cell Density# * (#Volume# + 10)")
	require.Equal(t, []string{"Cell Density", "Volume"}, names)
}

func TestExtractVariablesDanglingMarker(t *testing.T) {
	// marker pairs are consumed left to right; the dangling #B is ignored
	names := ExtractVariables("#A# + #B")
	require.Equal(t, []string{"A"}, names)
}

func TestSubstitute(t *testing.T) {
	substituted, err := Substitute("#X# + 1", map[string]interface{}{"X": 5})
	require.Nil(t, err)
	require.Equal(t, "5 + 1", substituted)
}

func TestSubstituteMultipleOccurrences(t *testing.T) {
	substituted, err := Substitute("#X# * #X#", map[string]interface{}{"X": 3})
	require.Nil(t, err)
	require.Equal(t, "3 * 3", substituted)
}

func TestSubstituteUnknownVariable(t *testing.T) {
	_, err := Substitute("#Z#", map[string]interface{}{})
	require.NotNil(t, err)
	require.IsType(t, errors.UnknownVariableError{}, err)
}

func TestSubstituteStringValue(t *testing.T) {
	substituted, err := Substitute("#X# + 1", map[string]interface{}{"X": "20"})
	require.Nil(t, err)
	require.Equal(t, "20 + 1", substituted)
}
