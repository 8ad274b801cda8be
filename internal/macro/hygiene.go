package macro

import "github.com/forgelang/forge/internal/ast"

// builtinForms names the forms spec §4.3.6 excludes from hygiene renaming,
// alongside bound parameters and other registered macros.
var builtinForms = map[string]bool{
	"let": true, "if": true, "define": true, "lambda": true,
	"quote": true, "quasiquote": true, "unquote": true, "unquote-splicing": true,
	"+": true, "-": true, "*": true, "/": true,
	"=": true, "<": true, ">": true, "<=": true, ">=": true,
	"and": true, "or": true, "not": true,
	"list": true, "car": true, "cdr": true, "cons": true,
	"set!": true, "begin": true, "progn": true,
}

// renameMap maps an introduced symbol name to the fresh Gensym id minted
// for it.
type renameMap map[string]ast.Gensym

// computeRenames walks body and mints a fresh gensym for every Symbol that
// is introduced by the macro: not a bound parameter, not a built-in form,
// not a registered macro name, and not inside a Quote (or an
// Unquote/Splice payload within a Quasiquote) (spec §4.3.6).
func (e *Expander) computeRenames(body ast.Term, params bindings) renameMap {
	renames := renameMap{}
	e.collectIntroduced(body, params, false, renames)
	return renames
}

func (e *Expander) collectIntroduced(term ast.Term, params bindings, inHole bool, renames renameMap) {
	switch n := term.(type) {
	case ast.Symbol:
		name := string(n)
		if inHole {
			return
		}
		if _, isParam := params[name]; isParam {
			return
		}
		if builtinForms[name] {
			return
		}
		if _, isMacro := e.registry.Lookup(name); isMacro {
			return
		}
		if _, already := renames[name]; already {
			return
		}
		renames[name] = ast.Gensym(e.nextGensym(name))
	case *ast.List:
		for _, c := range n.Elements {
			e.collectIntroduced(c, params, inHole, renames)
		}
	case *ast.Quote:
		// Quote subtrees are skipped entirely.
	case *ast.Quasiquote:
		e.collectIntroducedInQuasiquote(n.Child, params, renames)
	case *ast.Unquote:
		e.collectIntroduced(n.Child, params, inHole, renames)
	case *ast.Splice:
		e.collectIntroduced(n.Child, params, inHole, renames)
	case *ast.Macro:
		e.collectIntroduced(n.Body, params, inHole, renames)
	case *ast.MacroCall:
		for _, a := range n.Args {
			e.collectIntroduced(a, params, inHole, renames)
		}
	}
}

// collectIntroducedInQuasiquote descends a quasiquote template, renaming
// ordinary Symbols but skipping Unquote/Splice payloads (those come from
// the caller, not the macro body).
func (e *Expander) collectIntroducedInQuasiquote(term ast.Term, params bindings, renames renameMap) {
	switch n := term.(type) {
	case *ast.Unquote:
		return
	case *ast.Splice:
		return
	case *ast.List:
		for _, c := range n.Elements {
			e.collectIntroducedInQuasiquote(c, params, renames)
		}
	case ast.Symbol:
		e.collectIntroduced(n, params, false, renames)
	default:
		e.collectIntroduced(term, params, false, renames)
	}
}

// applyRenames rewrites body, replacing every qualifying Symbol occurrence
// with its Gensym, skipping Quote subtrees and skipping Unquote/Splice
// payloads inside a Quasiquote.
func applyRenames(term ast.Term, renames renameMap) ast.Term {
	return renameTerm(term, renames, false)
}

func renameTerm(term ast.Term, renames renameMap, inHole bool) ast.Term {
	switch n := term.(type) {
	case ast.Symbol:
		if inHole {
			return n
		}
		if g, ok := renames[string(n)]; ok {
			return g
		}
		return n
	case *ast.List:
		elems := make([]ast.Term, len(n.Elements))
		for i, c := range n.Elements {
			elems[i] = renameTerm(c, renames, inHole)
		}
		return &ast.List{Elements: elems}
	case *ast.Quote:
		return &ast.Quote{Child: n.Child}
	case *ast.Quasiquote:
		return &ast.Quasiquote{Child: renameQuasiquote(n.Child, renames)}
	case *ast.Unquote:
		return &ast.Unquote{Child: renameTerm(n.Child, renames, inHole)}
	case *ast.Splice:
		return &ast.Splice{Child: renameTerm(n.Child, renames, inHole)}
	case *ast.Macro:
		return &ast.Macro{Name: n.Name, Parameters: n.Parameters, Body: renameTerm(n.Body, renames, inHole)}
	case *ast.MacroCall:
		args := make([]ast.Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = renameTerm(a, renames, inHole)
		}
		return &ast.MacroCall{Name: n.Name, Args: args}
	default:
		return term
	}
}

func renameQuasiquote(term ast.Term, renames renameMap) ast.Term {
	switch n := term.(type) {
	case *ast.Unquote, *ast.Splice:
		return n
	case *ast.List:
		elems := make([]ast.Term, len(n.Elements))
		for i, c := range n.Elements {
			elems[i] = renameQuasiquote(c, renames)
		}
		return &ast.List{Elements: elems}
	default:
		return renameTerm(term, renames, false)
	}
}
