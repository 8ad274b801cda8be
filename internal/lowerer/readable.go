package lowerer

import (
	"strconv"
	"strings"

	"github.com/forgelang/forge/internal/ast"
)

// Readable renders terms as indented, fully-parenthesized text intended for
// humans rather than round-tripping. It is the tier selected for targets
// satisfying the >=2.0.0 constraint (SPEC_FULL §B.5).
type Readable struct{}

// Lower implements Lowerer.
func (Readable) Lower(terms []ast.Term) (string, error) {
	lines := make([]string, len(terms))
	for i, t := range terms {
		if err := rejectUnexpanded(t); err != nil {
			return "", err
		}
		lines[i] = renderReadable(t, 0)
	}
	return strings.Join(lines, "\n"), nil
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

func renderReadable(t ast.Term, depth int) string {
	switch n := t.(type) {
	case ast.Number:
		return strconv.FormatFloat(float64(n), 'g', -1, 64)
	case ast.String:
		return `"` + strings.ReplaceAll(string(n), `"`, `\"`) + `"`
	case ast.Bool:
		return strconv.FormatBool(bool(n))
	case ast.Nil:
		return "nil"
	case ast.Symbol:
		return string(n)
	case ast.Gensym:
		return strings.ReplaceAll(string(n), "#", "_")
	case *ast.Quote:
		return "(quote " + renderReadable(n.Child, depth) + ")"
	case *ast.Quasiquote:
		return "(quasiquote " + renderReadable(n.Child, depth) + ")"
	case *ast.Unquote:
		return "(unquote " + renderReadable(n.Child, depth) + ")"
	case *ast.Splice:
		return "(unquote-splicing " + renderReadable(n.Child, depth) + ")"
	case *ast.List:
		return renderReadableList(n.Elements, depth)
	case *ast.Macro:
		return "(defmacro " + n.Name + " (" + strings.Join(n.Parameters, " ") + ") " + renderReadable(n.Body, depth) + ")"
	case *ast.MacroCall:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = renderReadable(a, depth)
		}
		return "(" + n.Name + " " + strings.Join(parts, " ") + ")"
	default:
		return ""
	}
}

func renderReadableList(elements []ast.Term, depth int) string {
	if len(elements) == 0 {
		return "()"
	}
	head, isHead := ast.AsSymbol(elements[0])
	args := elements[1:]

	if isHead && arithmeticOps[head] && len(args) > 0 {
		rendered := make([]string, len(args))
		for i, a := range args {
			rendered[i] = renderReadable(a, depth)
		}
		if len(rendered) == 1 && head == "-" {
			return "(- " + rendered[0] + ")"
		}
		return "(" + strings.Join(rendered, " "+head+" ") + ")"
	}
	if isHead && len(args) == 2 {
		if op, ok := comparisonOps[head]; ok {
			return "(" + renderReadable(args[0], depth) + " " + op + " " + renderReadable(args[1], depth) + ")"
		}
	}
	if isHead && head == "if" && len(args) == 3 {
		inner := depth + 1
		return "(if " + renderReadable(args[0], depth) + "\n" +
			indent(inner) + "then " + renderReadable(args[1], inner) + "\n" +
			indent(inner) + "else " + renderReadable(args[2], inner) + ")"
	}
	if isHead && head == "let" && len(args) == 2 {
		inner := depth + 1
		return "(let " + renderReadable(args[0], depth) + "\n" +
			indent(inner) + renderReadable(args[1], inner) + ")"
	}
	if isHead && head == "list" {
		rendered := make([]string, len(args))
		for i, a := range args {
			rendered[i] = renderReadable(a, depth)
		}
		return "[" + strings.Join(rendered, ", ") + "]"
	}

	rendered := make([]string, len(elements))
	for i, e := range elements {
		rendered[i] = renderReadable(e, depth)
	}
	return "(" + strings.Join(rendered, " ") + ")"
}
