package ast

import "github.com/samber/lo"

// IsAtom reports whether t is a leaf term: Number, String, Bool, Nil,
// Symbol, or Gensym.
func IsAtom(t Term) bool {
	switch t.(type) {
	case Number, String, Bool, Nil, Symbol, Gensym:
		return true
	default:
		return false
	}
}

// IsList reports whether t is a List.
func IsList(t Term) bool {
	_, ok := t.(*List)
	return ok
}

// IsMacro reports whether t is a Macro definition.
func IsMacro(t Term) bool {
	_, ok := t.(*Macro)
	return ok
}

// IsMacroCall reports whether t is an explicit MacroCall.
func IsMacroCall(t Term) bool {
	_, ok := t.(*MacroCall)
	return ok
}

// IsQuoteFamily reports whether t is one of Quote, Quasiquote, Unquote, or
// Splice.
func IsQuoteFamily(t Term) bool {
	switch t.(type) {
	case *Quote, *Quasiquote, *Unquote, *Splice:
		return true
	default:
		return false
	}
}

// AsSymbol returns t's name and true if t is a Symbol, else "", false.
func AsSymbol(t Term) (string, bool) {
	if s, ok := t.(Symbol); ok {
		return string(s), true
	}
	return "", false
}

// AsList returns t's elements and true if t is a List.
func AsList(t Term) ([]Term, bool) {
	if l, ok := t.(*List); ok {
		return l.Elements, true
	}
	return nil, false
}

// AsMacro returns t's name, parameters, and body if t is a Macro.
func AsMacro(t Term) (name string, params []string, body Term, ok bool) {
	if m, isMacro := t.(*Macro); isMacro {
		return m.Name, m.Parameters, m.Body, true
	}
	return "", nil, nil, false
}

// AsMacroCall returns t's name and arguments if t is a MacroCall.
func AsMacroCall(t Term) (name string, args []Term, ok bool) {
	if c, isCall := t.(*MacroCall); isCall {
		return c.Name, c.Args, true
	}
	return "", nil, false
}

// HeadSymbol returns the head symbol of a non-empty List, e.g. the operator
// or macro name a call is spelled with.
func HeadSymbol(t Term) (string, bool) {
	elems, ok := AsList(t)
	if !ok || len(elems) == 0 {
		return "", false
	}
	return AsSymbol(elems[0])
}

// IsNil reports whether t is the Nil marker.
func IsNil(t Term) bool {
	_, ok := t.(Nil)
	return ok
}

// PruneNil returns elements with every direct Nil child removed: the same
// pruning the expander applies when macro definitions expand to Nil and
// enclosing Lists drop them (spec §4.3.2). The expander performs that
// filtering inline and does not call PruneNil.
func PruneNil(elements []Term) []Term {
	return lo.Filter(elements, func(t Term, _ int) bool {
		return !IsNil(t)
	})
}
