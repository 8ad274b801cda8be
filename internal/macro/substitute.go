package macro

import "github.com/forgelang/forge/internal/ast"

// substitute implements spec §4.3.7: parameter bindings replace matching
// Symbols everywhere except inside Quote, where names are literal.
func substitute(term ast.Term, b bindings) (ast.Term, *Error) {
	switch n := term.(type) {
	case ast.Symbol:
		if v, ok := b[string(n)]; ok {
			return v, nil
		}
		return n, nil
	case *ast.List:
		elems := make([]ast.Term, len(n.Elements))
		for i, c := range n.Elements {
			s, err := substitute(c, b)
			if err != nil {
				return nil, err
			}
			elems[i] = s
		}
		return &ast.List{Elements: elems}, nil
	case *ast.Quote:
		return n, nil
	case *ast.Quasiquote:
		// A Quasiquote substituted as part of a macro body is the template
		// for code to splice in, not data to keep quoted: the wrapper is
		// dropped once its holes are resolved (matches
		// original_source/src/macro_expander.rs's substitute_parameters,
		// which returns expand_quasiquote_with_substitution's result
		// directly rather than re-wrapping it).
		return substituteQuasiquote(n.Child, b)
	case *ast.Unquote:
		s, err := substitute(n.Child, b)
		if err != nil {
			return nil, err
		}
		return &ast.Unquote{Child: s}, nil
	case *ast.Splice:
		s, err := substitute(n.Child, b)
		if err != nil {
			return nil, err
		}
		return &ast.Splice{Child: s}, nil
	case *ast.Macro:
		body, err := substitute(n.Body, b)
		if err != nil {
			return nil, err
		}
		return &ast.Macro{Name: n.Name, Parameters: n.Parameters, Body: body}, nil
	case *ast.MacroCall:
		args := make([]ast.Term, len(n.Args))
		for i, a := range n.Args {
			s, err := substitute(a, b)
			if err != nil {
				return nil, err
			}
			args[i] = s
		}
		return &ast.MacroCall{Name: n.Name, Args: args}, nil
	default:
		return term, nil
	}
}

// substituteQuasiquote substitutes and flattens a quasiquote template in
// one pass (spec §4.3.7, "its template is first substituted, then
// re-flattened"): an Unquote node is replaced by its substituted payload,
// and a Splice element is replaced by the elements of its substituted
// payload, which must itself be a List.
func substituteQuasiquote(term ast.Term, b bindings) (ast.Term, *Error) {
	switch n := term.(type) {
	case *ast.Unquote:
		return substitute(n.Child, b)
	case *ast.List:
		var elems []ast.Term
		for _, c := range n.Elements {
			if sp, ok := c.(*ast.Splice); ok {
				sub, err := substitute(sp.Child, b)
				if err != nil {
					return nil, err
				}
				l, ok := sub.(*ast.List)
				if !ok {
					return nil, &Error{Kind: ExpansionError, Message: "Splice must expand to a list"}
				}
				elems = append(elems, l.Elements...)
				continue
			}
			sub, err := substituteQuasiquote(c, b)
			if err != nil {
				return nil, err
			}
			elems = append(elems, sub)
		}
		return &ast.List{Elements: elems}, nil
	default:
		return term, nil
	}
}
