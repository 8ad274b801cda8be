package validate

import (
	"fmt"

	"github.com/forgelang/forge/internal/ast"
)

// DefaultMaxNesting is the nesting-depth ceiling applied when a
// ComplexityLimitValidator is built with zero MaxNesting (spec §4.2.4).
const DefaultMaxNesting = 50

// ComplexityLimitValidator bounds structural nesting depth, reusing
// ast.Walk's depth accounting (one level per List, Quote-family member,
// Macro body, or MacroCall argument list; spec §4.2.4). This is unrelated
// to the expander's depth counter, which counts nested macro calls.
type ComplexityLimitValidator struct {
	MaxNesting int
}

// NewComplexityLimitValidator returns a validator with the given ceiling,
// or DefaultMaxNesting if max is zero.
func NewComplexityLimitValidator(max int) *ComplexityLimitValidator {
	if max == 0 {
		max = DefaultMaxNesting
	}
	return &ComplexityLimitValidator{MaxNesting: max}
}

// Validate implements Validator. It reports one error for each term that
// is the first past the nesting ceiling on its path, and does not descend
// below a reported term; sibling subtrees that both cross the ceiling each
// yield an error.
func (v *ComplexityLimitValidator) Validate(term ast.Term) []*Error {
	var errs []*Error
	ast.Walk(term, 0, func(t ast.Term, depth int) bool {
		if depth > v.MaxNesting {
			errs = append(errs, &Error{
				Rule:    "ComplexityLimits",
				Message: fmt.Sprintf("nesting depth %d exceeds the limit of %d", depth, v.MaxNesting),
				Context: t.String(),
				Help:    "flatten the expression or raise --max-nesting",
			})
			return false
		}
		return true
	})
	return errs
}
