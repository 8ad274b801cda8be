package ast

// Children returns the immediate child terms of t, in traversal order. Atoms
// return nil. This is the single place that knows each variant's shape, so
// validators and the expander can share one notion of "descend."
func Children(t Term) []Term {
	switch n := t.(type) {
	case *List:
		return n.Elements
	case *Quote:
		return []Term{n.Child}
	case *Quasiquote:
		return []Term{n.Child}
	case *Unquote:
		return []Term{n.Child}
	case *Splice:
		return []Term{n.Child}
	case *Macro:
		return []Term{n.Body}
	case *MacroCall:
		return n.Args
	default:
		return nil
	}
}

// Walk calls visit(t, depth) for t and, unless visit returns false, for
// every descendant. depth starts at the value passed in and increases by one
// per List, Quote-family member, Macro body, or MacroCall argument list
// (spec §4.2.4's nesting-depth rule), matching the set of variants
// Children descends into.
func Walk(t Term, depth int, visit func(Term, int) bool) {
	if !visit(t, depth) {
		return
	}
	childDepth := depth
	switch t.(type) {
	case *List, *Quote, *Quasiquote, *Unquote, *Splice, *Macro, *MacroCall:
		childDepth = depth + 1
	}
	for _, c := range Children(t) {
		Walk(c, childDepth, visit)
	}
}
