package macro

import "github.com/forgelang/forge/internal/ast"

// bindings maps a parameter name to the argument term it is bound to.
type bindings map[string]ast.Term

// bindParameters implements spec §4.3.4: plain positional binding, or
// &rest-aware binding when the sentinel appears in the parameter sequence.
func bindParameters(def *Definition, args []ast.Term) (bindings, *Error) {
	restIdx := -1
	for i, p := range def.Parameters {
		if p == ast.RestParam {
			restIdx = i
			break
		}
	}

	if restIdx == -1 {
		if len(args) != len(def.Parameters) {
			return nil, &Error{
				Kind:     ParameterCountMismatch,
				Name:     def.Name,
				Expected: len(def.Parameters),
				Actual:   len(args),
			}
		}
		b := make(bindings, len(args))
		for i, p := range def.Parameters {
			b[p] = args[i]
		}
		return b, nil
	}

	if restIdx != len(def.Parameters)-2 {
		if restIdx == len(def.Parameters)-1 {
			return nil, &Error{
				Kind:    InvalidPattern,
				Pattern: ast.RestParam,
				Reason:  "must be followed by a parameter name",
			}
		}
		return nil, &Error{
			Kind:    InvalidPattern,
			Pattern: ast.RestParam + " name",
			Reason:  "Parameters cannot appear after &rest parameter",
		}
	}

	fixed := def.Parameters[:restIdx]
	restName := def.Parameters[restIdx+1]
	k := len(fixed)
	if len(args) < k {
		return nil, &Error{
			Kind:     ParameterCountMismatch,
			Name:     def.Name,
			Expected: k,
			Actual:   len(args),
		}
	}

	b := make(bindings, k+1)
	for i, p := range fixed {
		b[p] = args[i]
	}
	b[restName] = &ast.List{Elements: append([]ast.Term{}, args[k:]...)}
	return b, nil
}
