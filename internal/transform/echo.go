package transform

import (
	"strings"
	"sync"

	"github.com/forgelang/forge/internal/ast"
)

// Echo is the built-in reference transform: it captures a textual
// rendering of the term it's applied to without altering the tree (spec
// §4.1). Output() exposes the capture, matching
// original_source/src/transform.rs's EchoTransform.GetOutput (§C).
type Echo struct {
	mu     sync.Mutex
	output strings.Builder
}

// NewEcho returns a fresh Echo transform with no captured output yet.
func NewEcho() *Echo { return &Echo{} }

func (e *Echo) Name() string { return "echo" }

// Apply renders term into the captured output and leaves it unchanged.
func (e *Echo) Apply(term ast.Term) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.render(term, 0)
	return nil
}

// Output returns everything captured so far.
func (e *Echo) Output() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.output.String()
}

func (e *Echo) render(t ast.Term, indent int) {
	prefix := strings.Repeat("  ", indent)
	switch n := t.(type) {
	case *ast.List:
		e.output.WriteString(prefix + "List[\n")
		for _, c := range n.Elements {
			e.render(c, indent+1)
		}
		e.output.WriteString(prefix + "]\n")
	case *ast.Quote:
		e.output.WriteString(prefix + "Quote(\n")
		e.render(n.Child, indent+1)
		e.output.WriteString(prefix + ")\n")
	case *ast.Quasiquote:
		e.output.WriteString(prefix + "Quasiquote(\n")
		e.render(n.Child, indent+1)
		e.output.WriteString(prefix + ")\n")
	case *ast.Unquote:
		e.output.WriteString(prefix + "Unquote(\n")
		e.render(n.Child, indent+1)
		e.output.WriteString(prefix + ")\n")
	case *ast.Splice:
		e.output.WriteString(prefix + "Splice(\n")
		e.render(n.Child, indent+1)
		e.output.WriteString(prefix + ")\n")
	case *ast.Macro:
		e.output.WriteString(prefix + "Macro(" + n.Name + ")\n")
		e.render(n.Body, indent+1)
	case *ast.MacroCall:
		e.output.WriteString(prefix + "MacroCall(" + n.Name + ")\n")
		for _, a := range n.Args {
			e.render(a, indent+1)
		}
	default:
		e.output.WriteString(prefix + t.String() + "\n")
	}
}
