package macro

import "github.com/forgelang/forge/internal/ast"

// DefaultMaxDepth bounds nested macro expansion when an Expander is built
// with zero maxDepth (spec §4.3.1).
const DefaultMaxDepth = 100

// Expander holds the per-translation-unit expansion state: the macro
// registry, the depth counter, and the gensym counter (spec §4.3.1). It
// owns exclusive access to all three for the duration of ExpandAll (spec
// §5, "Shared resource policy").
type Expander struct {
	registry      *Registry
	depth         int
	maxDepth      int
	gensymCounter int
}

// NewExpander returns an Expander with the default depth bound.
func NewExpander() *Expander {
	return &Expander{registry: NewRegistry(), maxDepth: DefaultMaxDepth}
}

// NewExpanderWithMaxDepth returns an Expander bounded at maxDepth, or at
// DefaultMaxDepth if maxDepth is zero.
func NewExpanderWithMaxDepth(maxDepth int) *Expander {
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Expander{registry: NewRegistry(), maxDepth: maxDepth}
}

// Registry exposes the expander's macro registry, e.g. for introspection
// tooling (SPEC §C).
func (e *Expander) Registry() *Registry { return e.registry }

// ExpandAll is the top-level contract (spec §4.3.2): reset the depth
// counter and expand term.
func (e *Expander) ExpandAll(term ast.Term) (ast.Term, *Error) {
	e.depth = 0
	return e.expandExpression(term)
}

func (e *Expander) expandExpression(term ast.Term) (ast.Term, *Error) {
	switch t := term.(type) {
	case *ast.Macro:
		if t.Name == "" {
			return nil, &Error{Kind: MalformedDefinition, Name: t.Name, Reason: "macro name must not be empty"}
		}
		if t.Body == nil {
			return nil, &Error{Kind: MalformedDefinition, Name: t.Name, Reason: "macro body must not be empty"}
		}
		e.registry.Define(t.Name, t.Parameters, t.Body)
		return ast.Nil{}, nil

	case *ast.MacroCall:
		return e.enterMacroCall(t.Name, t.Args)

	case *ast.List:
		if len(t.Elements) == 0 {
			return t, nil
		}
		if head, ok := ast.AsSymbol(t.Elements[0]); ok {
			if _, isMacro := e.registry.Lookup(head); isMacro {
				return e.enterMacroCall(head, t.Elements[1:])
			}
		}
		var out []ast.Term
		for _, c := range t.Elements {
			ex, err := e.expandExpression(c)
			if err != nil {
				return nil, err
			}
			if !ast.IsNil(ex) {
				out = append(out, ex)
			}
		}
		return &ast.List{Elements: out}, nil

	case *ast.Quote:
		return t, nil

	case *ast.Quasiquote:
		inner, err := e.expandQuasiquote(t.Child)
		if err != nil {
			return nil, err
		}
		return &ast.Quasiquote{Child: inner}, nil

	case *ast.Unquote:
		inner, err := e.expandExpression(t.Child)
		if err != nil {
			return nil, err
		}
		return &ast.Unquote{Child: inner}, nil

	case *ast.Splice:
		inner, err := e.expandExpression(t.Child)
		if err != nil {
			return nil, err
		}
		return &ast.Splice{Child: inner}, nil

	default:
		return term, nil
	}
}

// enterMacroCall guards depth (spec §4.3.3 step 1, §4.3.8's "depth++ on
// entering BINDING") around a single macro-call expansion.
func (e *Expander) enterMacroCall(name string, args []ast.Term) (ast.Term, *Error) {
	if e.depth > e.maxDepth {
		return nil, &Error{Kind: MaxDepthExceeded, Name: name, Depth: e.depth}
	}
	e.depth++
	result, err := e.expandMacroCall(name, args)
	e.depth--
	return result, err
}

// expandMacroCall is the single-call expansion pipeline: bind, rename,
// substitute, recurse (spec §4.3.3 steps 2-6).
func (e *Expander) expandMacroCall(name string, args []ast.Term) (ast.Term, *Error) {
	def, ok := e.registry.Lookup(name)
	if !ok {
		return nil, &Error{Kind: UndefinedMacro, Name: name}
	}

	b, err := bindParameters(def, args)
	if err != nil {
		return nil, err
	}

	renames := e.computeRenames(def.Body, b)
	renamed := applyRenames(def.Body, renames)

	substituted, serr := substitute(renamed, b)
	if serr != nil {
		return nil, serr
	}

	return e.expandExpression(substituted)
}

// expandQuasiquote implements spec §4.3.5 for a bare (non-substituting)
// expansion pass: Unquote is replaced by its expanded payload; Splice
// elements are flattened in; everything else is copied structurally.
func (e *Expander) expandQuasiquote(term ast.Term) (ast.Term, *Error) {
	switch n := term.(type) {
	case *ast.Unquote:
		return e.expandExpression(n.Child)
	case *ast.List:
		var out []ast.Term
		for _, el := range n.Elements {
			if sp, ok := el.(*ast.Splice); ok {
				ex, err := e.expandExpression(sp.Child)
				if err != nil {
					return nil, err
				}
				l, ok := ex.(*ast.List)
				if !ok {
					return nil, &Error{Kind: ExpansionError, Message: "Splice must expand to a list"}
				}
				out = append(out, l.Elements...)
				continue
			}
			ex, err := e.expandQuasiquote(el)
			if err != nil {
				return nil, err
			}
			out = append(out, ex)
		}
		return &ast.List{Elements: out}, nil
	default:
		return term, nil
	}
}
