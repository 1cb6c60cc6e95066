package eval

import (
	"github.com/go-tabula/tabula"
)

type calculation struct {
	expression string
	variables  []string
}

// CreateCalculation is a factory for Calculations, deriving the expected
// variable set from the expression
func CreateCalculation(expression string) tabula.Calculation {
	return &calculation{
		expression: expression,
		variables:  ExtractVariables(expression),
	}
}

// Expression returns the expression string of this Calculation
func (c *calculation) Expression() string {
	return c.expression
}

// ExpectedVariables returns the distinct variable names referenced by the
// expression of this Calculation
func (c *calculation) ExpectedVariables() []string {
	names := make([]string, len(c.variables))
	copy(names, c.variables)
	return names
}
