package tabula

// A Calculation is an immutable pairing of an expression string with the set
// of variable names the expression references. The expected variables are
// derived from the expression at construction time and never mutated
// independently of it.
type Calculation interface {
	Expression() string          // Expression returns the expression string
	ExpectedVariables() []string // ExpectedVariables returns the distinct variable names referenced by the expression
}
