// Package lowerer turns fully-expanded terms into output text (spec §6,
// "Lowerer interface"). Grounded on original_source/src/compiler.rs's
// RustCompiler — same per-form dispatch (arithmetic/comparison/if/let/
// list), retargeted at plain infix text instead of Rust source, and split
// into two tiers selected by --target (SPEC_FULL §B.5).
package lowerer

import (
	"fmt"
	"strings"

	"github.com/forgelang/forge/internal/ast"
)

// Error is a lower-stage failure. The core treats it as opaque (spec §7:
// "Lower: opaque from the core's perspective"), so it carries only a
// message.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Lowerer renders a fully-expanded term sequence to text.
type Lowerer interface {
	Lower(terms []ast.Term) (string, error)
}

// rejectUnexpanded enforces spec §6's precondition: the lowerer receives
// only fully expanded terms.
func rejectUnexpanded(t ast.Term) *Error {
	switch n := t.(type) {
	case *ast.Macro:
		return &Error{Message: fmt.Sprintf("lowerer received an unexpanded macro definition: %s", n.Name)}
	case *ast.MacroCall:
		return &Error{Message: fmt.Sprintf("lowerer received an unexpanded macro call: %s", n.Name)}
	case *ast.Unquote:
		return &Error{Message: "lowerer received an unresolved unquote"}
	case *ast.Splice:
		return &Error{Message: "lowerer received an unresolved splice"}
	case *ast.Quasiquote:
		return &Error{Message: "lowerer received an unresolved quasiquote"}
	case *ast.List:
		for _, c := range n.Elements {
			if err := rejectUnexpanded(c); err != nil {
				return err
			}
		}
	case *ast.Quote:
		// Quote data is opaque and may legitimately still contain these
		// shapes; it is never itself rejected.
	}
	return nil
}

var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true}
var comparisonOps = map[string]string{"=": "==", "<": "<", ">": ">", "<=": "<=", ">=": ">="}
var builtinHeads = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"=": true, "<": true, ">": true, "<=": true, ">=": true,
	"if": true, "let": true, "list": true,
}

func isBuiltinForm(t ast.Term) bool {
	head, ok := ast.HeadSymbol(t)
	return ok && builtinHeads[head]
}
