// Package eval implements the expression machinery behind calculated
// columns: variable-reference extraction, substitution, and arithmetic
// evaluation via expr-lang. Failures are returned as typed errors from the
// errors package; collapsing them to a display sentinel is the caller's
// concern.
package eval

import (
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
)

// Global cache for compiled programs. No boundary.
var (
	programCacheLock sync.RWMutex
	programCache     = make(map[string]*vm.Program)
)

func compileCached(src string) (*vm.Program, error) {
	programCacheLock.RLock()
	program, ok := programCache[src]
	programCacheLock.RUnlock()
	if ok {
		return program, nil
	}
	program, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	programCacheLock.Lock()
	programCache[src] = program
	programCacheLock.Unlock()
	return program, nil
}

// Evaluate substitutes variables into an expression, evaluates the resulting
// arithmetic string, and returns the result converted to a string. Evaluation
// is all-or-nothing: any failure (unknown variable, malformed expression,
// evaluator rejection, no result) returns a typed error and no partial value.
func Evaluate(expression string, variables map[string]interface{}) (string, error) {
	substituted, err := Substitute(expression, variables)
	if err != nil {
		return "", err
	}
	program, err := compileCached(substituted)
	if err != nil {
		return "", errors.EvalError{Expression: substituted, Cause: err}
	}
	result, err := expr.Run(program, map[string]interface{}{})
	if err != nil {
		return "", errors.EvalError{Expression: substituted, Cause: err}
	}
	if result == nil {
		return "", errors.NoResultError{Expression: expression}
	}
	return tabula.FormatValue(result), nil
}
