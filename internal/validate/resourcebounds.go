package validate

import (
	"fmt"

	"github.com/forgelang/forge/internal/ast"
)

// ResourceBoundsValidator flags a `define` whose body is itself a direct
// call back to the name being defined, e.g. `(define f (f 1))` — one level
// only, no descent into the body's children (spec §4.2.2 disclaims "deeper
// termination analysis"). This is a shape-level approximation of
// non-termination, not a full termination proof.
type ResourceBoundsValidator struct{}

// NewResourceBoundsValidator returns a ready-to-use validator.
func NewResourceBoundsValidator() *ResourceBoundsValidator { return &ResourceBoundsValidator{} }

// Validate implements Validator.
func (v *ResourceBoundsValidator) Validate(term ast.Term) []*Error {
	var errs []*Error
	v.check(term, &errs)
	return errs
}

func (v *ResourceBoundsValidator) check(term ast.Term, errs *[]*Error) {
	l, ok := term.(*ast.List)
	if !ok {
		for _, c := range ast.Children(term) {
			v.check(c, errs)
		}
		return
	}
	if head, ok := ast.AsSymbol(firstOf(l.Elements)); ok && head == "define" && len(l.Elements) == 3 {
		name, ok := ast.AsSymbol(l.Elements[1])
		if ok && unconditionallySelfCalls(l.Elements[2], name) {
			*errs = append(*errs, &Error{
				Rule:    "ResourceBounds",
				Message: fmt.Sprintf("define %q recurses unconditionally with no guard", name),
				Context: l.String(),
				Help:    fmt.Sprintf("guard the recursive call to %q with an if/cond so it can terminate", name),
			})
		}
	}
	for _, c := range l.Elements {
		v.check(c, errs)
	}
}

func firstOf(elements []ast.Term) ast.Term {
	if len(elements) == 0 {
		return nil
	}
	return elements[0]
}

// unconditionallySelfCalls reports whether body is itself a direct call to
// name, one level deep, no recursion into children (spec §4.2.2 disclaims
// "deeper termination analysis"; matches original_source/src/validator.rs's
// is_immediate_self_call).
func unconditionallySelfCalls(body ast.Term, name string) bool {
	l, ok := body.(*ast.List)
	if !ok {
		return false
	}
	head, _ := ast.AsSymbol(firstOf(l.Elements))
	return head == name
}
