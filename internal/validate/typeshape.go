package validate

import (
	"fmt"

	"github.com/forgelang/forge/internal/ast"
)

var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true}
var comparisonOps = map[string]bool{"<": true, ">": true, "<=": true, ">=": true, "=": true}

// TypeShapeValidator performs local, shape-only inference over arithmetic
// and comparison heads (spec §4.2.1).
type TypeShapeValidator struct {
	// ForbidBareQuoteHoles flags an Unquote/Splice that is not nested under
	// a Quasiquote ancestor. Resolves Open Question (b): the expander stays
	// tolerant, but validation may forbid it (see DESIGN.md).
	ForbidBareQuoteHoles bool
}

// NewTypeShapeValidator returns a validator with default settings.
func NewTypeShapeValidator() *TypeShapeValidator { return &TypeShapeValidator{ForbidBareQuoteHoles: true} }

// Validate implements Validator.
func (v *TypeShapeValidator) Validate(term ast.Term) []*Error {
	var errs []*Error
	v.check(term, false, &errs)
	return errs
}

// check recursively validates term, inferring types along the way.
// inQuasiquote tracks whether the current term is nested under a
// Quasiquote, for the bare-quote-hole check (Open Question (b)).
func (v *TypeShapeValidator) check(term ast.Term, inQuasiquote bool, errs *[]*Error) {
	switch n := term.(type) {
	case *ast.List:
		if len(n.Elements) > 0 {
			if op, ok := ast.AsSymbol(n.Elements[0]); ok {
				v.checkOperation(op, n.Elements[1:], errs)
			}
		}
		for _, e := range n.Elements {
			v.check(e, inQuasiquote, errs)
		}
	case *ast.Quote:
		v.check(n.Child, inQuasiquote, errs)
	case *ast.Quasiquote:
		v.check(n.Child, true, errs)
	case *ast.Unquote:
		if v.ForbidBareQuoteHoles && !inQuasiquote {
			*errs = append(*errs, &Error{
				Rule:    "TypeSafety",
				Message: "unquote outside quasiquote",
				Context: n.String(),
				Help:    "wrap the enclosing template in a quasiquote, or remove the unquote",
			})
		}
		v.check(n.Child, inQuasiquote, errs)
	case *ast.Splice:
		if v.ForbidBareQuoteHoles && !inQuasiquote {
			*errs = append(*errs, &Error{
				Rule:    "TypeSafety",
				Message: "splice outside quasiquote",
				Context: n.String(),
				Help:    "wrap the enclosing template in a quasiquote, or remove the splice",
			})
		}
		v.check(n.Child, inQuasiquote, errs)
	case *ast.Macro:
		v.check(n.Body, inQuasiquote, errs)
	case *ast.MacroCall:
		for _, a := range n.Args {
			v.check(a, inQuasiquote, errs)
		}
	}
}

func (v *TypeShapeValidator) checkOperation(op string, args []ast.Term, errs *[]*Error) {
	switch {
	case arithmeticOps[op]:
		for _, arg := range args {
			t := v.infer(arg)
			if t != TNumber && t != TUnknown && t != TAny {
				*errs = append(*errs, &Error{
					Rule:    "TypeSafety",
					Message: fmt.Sprintf("arithmetic operator %q requires numeric operands, got %s", op, t),
					Context: arg.String(),
					Help:    fmt.Sprintf("pass a Number to %q, or wrap the operand in an explicit conversion", op),
				})
			}
		}
	case comparisonOps[op]:
		if len(args) == 2 {
			lt, rt := v.infer(args[0]), v.infer(args[1])
			if !compatible(lt, rt) {
				*errs = append(*errs, &Error{
					Rule:    "TypeSafety",
					Message: fmt.Sprintf("comparison %q requires compatible types, got %s and %s", op, lt, rt),
					Context: fmt.Sprintf("%s vs %s", args[0], args[1]),
					Help:    "make both operands the same inferred type",
				})
			}
		}
	}
}

// infer computes the shape-only inferred type of term (spec §4.2.1).
func (v *TypeShapeValidator) infer(term ast.Term) InferredType {
	switch n := term.(type) {
	case ast.Number:
		return TNumber
	case ast.String:
		return TString
	case ast.Bool:
		return TBool
	case ast.Nil:
		// Open Question (a): Nil is treated as a Symbol per spec §9(a).
		return TSymbol
	case ast.Symbol:
		return TUnknown
	case ast.Gensym:
		// Open Question (a) resolved: Gensym behaves like Symbol in the
		// lattice (see DESIGN.md).
		return TUnknown
	case *ast.List:
		if len(n.Elements) == 0 {
			return TList
		}
		if op, ok := ast.AsSymbol(n.Elements[0]); ok {
			switch {
			case arithmeticOps[op]:
				return TNumber
			case comparisonOps[op]:
				return TBool
			case op == "if" && len(n.Elements) == 4:
				return v.infer(n.Elements[2])
			default:
				return TUnknown
			}
		}
		return TList
	case *ast.Quote, *ast.Quasiquote:
		return TAny
	default:
		return TUnknown
	}
}

func compatible(a, b InferredType) bool {
	if a == TUnknown || b == TUnknown || a == TAny || b == TAny {
		return true
	}
	return a == b
}
