package eval

import (
	"regexp"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
)

// variablePattern matches one #name# variable reference. Marker pairs are
// consumed left to right without overlap; a dangling marker is left verbatim
// for the math evaluator to reject.
var variablePattern = regexp.MustCompile(`#([^#]*)#`)

// ExtractVariables scans an expression for #name# delimited variable
// references and returns the distinct names found, in order of first
// appearance. An expression with no references yields an empty slice.
func ExtractVariables(expression string) []string {
	matches := variablePattern.FindAllStringSubmatch(expression, -1)
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		if !seen[match[1]] {
			seen[match[1]] = true
			names = append(names, match[1])
		}
	}
	return names
}

// Substitute replaces every #name# reference in an expression with the string
// form of variables[name]. A reference with no entry in variables is an
// UnknownVariableError, not a silent zero.
func Substitute(expression string, variables map[string]interface{}) (string, error) {
	var firstErr error
	substituted := variablePattern.ReplaceAllStringFunc(expression, func(match string) string {
		name := match[1 : len(match)-1]
		val, ok := variables[name]
		if !ok {
			if firstErr == nil {
				firstErr = errors.UnknownVariableError{Name: name}
			}
			return match
		}
		return tabula.FormatValue(val)
	})
	if firstErr != nil {
		return "", firstErr
	}
	return substituted, nil
}
