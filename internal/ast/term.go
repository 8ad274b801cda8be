// Package ast defines the tagged-variant term language that every later
// pipeline stage (transforms, validators, the macro expander, the lowerer)
// operates on.
package ast

import "fmt"

// Term is the sum type every node in a parsed program satisfies. A Term owns
// its children exclusively: the tree is never shared and never cyclic.
type Term interface {
	fmt.Stringer
	// isTerm is unexported so Term cannot be implemented outside this package.
	isTerm()
}

// Number is a 64-bit float literal.
type Number float64

func (Number) isTerm()          {}
func (n Number) String() string { return fmt.Sprintf("%v", float64(n)) }

// String is a string literal.
type String string

func (String) isTerm()          {}
func (s String) String() string { return fmt.Sprintf("%q", string(s)) }

// Bool is a boolean literal.
type Bool bool

func (Bool) isTerm()          {}
func (b Bool) String() string { return fmt.Sprintf("%v", bool(b)) }

// Nil is the unit/absence marker. It is also what a Macro definition
// expands to, and what enclosing Lists drop after expansion.
type Nil struct{}

func (Nil) isTerm()        {}
func (Nil) String() string { return "nil" }

// Symbol is a name reference or operator.
type Symbol string

func (Symbol) isTerm()          {}
func (s Symbol) String() string { return string(s) }

// Gensym is an identifier produced by hygienic renaming. It is kept distinct
// from Symbol so later passes can recognize a renamed identifier by shape
// alone, with no side table.
type Gensym string

func (Gensym) isTerm()          {}
func (g Gensym) String() string { return string(g) }

// List is an ordered sequence of terms: an application or form.
type List struct {
	Elements []Term
}

func (*List) isTerm() {}
func (l *List) String() string {
	s := "("
	for i, e := range l.Elements {
		if i > 0 {
			s += " "
		}
		s += e.String()
	}
	return s + ")"
}

// Quote suppresses evaluation and expansion of its single child.
type Quote struct{ Child Term }

func (*Quote) isTerm()          {}
func (q *Quote) String() string { return "'" + q.Child.String() }

// Quasiquote is a template: its child is copied structurally except at
// Unquote/Splice sites.
type Quasiquote struct{ Child Term }

func (*Quasiquote) isTerm()          {}
func (q *Quasiquote) String() string { return "`" + q.Child.String() }

// Unquote is a hole in a Quasiquote template substituted from binding
// context.
type Unquote struct{ Child Term }

func (*Unquote) isTerm()          {}
func (u *Unquote) String() string { return "," + u.Child.String() }

// Splice is a hole in a Quasiquote template that must yield a List; its
// elements are interpolated into the surrounding List.
type Splice struct{ Child Term }

func (*Splice) isTerm()          {}
func (s *Splice) String() string { return ",@" + s.Child.String() }

// RestParam is the sentinel that marks the rest-collecting position in a
// Macro's parameter-name sequence (spec §4.3.4, §9).
const RestParam = "&rest"

// Macro is a definition form introducing a macro into the expander registry.
type Macro struct {
	Name       string
	Parameters []string
	Body       Term
}

func (*Macro) isTerm() {}
func (m *Macro) String() string {
	s := fmt.Sprintf("(defmacro %s (", m.Name)
	for i, p := range m.Parameters {
		if i > 0 {
			s += " "
		}
		s += p
	}
	return s + ") " + m.Body.String() + ")"
}

// MacroCall is the explicit call variant; a List with a symbolic head naming
// a registered macro is the normal form and is semantically equivalent.
type MacroCall struct {
	Name string
	Args []Term
}

func (*MacroCall) isTerm() {}
func (c *MacroCall) String() string {
	s := "(" + c.Name
	for _, a := range c.Args {
		s += " " + a.String()
	}
	return s + ")"
}
