package lowerer

import (
	"strconv"
	"strings"

	"github.com/forgelang/forge/internal/ast"
)

// Compact renders terms as tight single-line infix text. It is the tier
// selected for targets below the 2.0.0 constraint (SPEC_FULL §B.5).
type Compact struct{}

// Lower implements Lowerer.
func (Compact) Lower(terms []ast.Term) (string, error) {
	lines := make([]string, len(terms))
	for i, t := range terms {
		if err := rejectUnexpanded(t); err != nil {
			return "", err
		}
		lines[i] = renderCompact(t)
	}
	return strings.Join(lines, "\n"), nil
}

func renderCompact(t ast.Term) string {
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
		return "'" + renderCompact(n.Child)
	case *ast.Quasiquote:
		return "`" + renderCompact(n.Child)
	case *ast.Unquote:
		return "," + renderCompact(n.Child)
	case *ast.Splice:
		return ",@" + renderCompact(n.Child)
	case *ast.List:
		return renderCompactList(n.Elements)
	case *ast.Macro:
		return "(defmacro " + n.Name + " (...) ...)"
	case *ast.MacroCall:
		return "(" + n.Name + " ...)"
	default:
		return ""
	}
}

func renderCompactList(elements []ast.Term) string {
	if len(elements) == 0 {
		return "()"
	}
	head, isHead := ast.AsSymbol(elements[0])
	args := elements[1:]

	if isHead && arithmeticOps[head] && len(args) > 0 {
		rendered := make([]string, len(args))
		for i, a := range args {
			rendered[i] = renderCompact(a)
		}
		if len(rendered) == 1 && head == "-" {
			return "(-" + rendered[0] + ")"
		}
		return "(" + strings.Join(rendered, " "+head+" ") + ")"
	}
	if isHead && len(args) == 2 {
		if op, ok := comparisonOps[head]; ok {
			return "(" + renderCompact(args[0]) + " " + op + " " + renderCompact(args[1]) + ")"
		}
	}
	if isHead && head == "if" && len(args) == 3 {
		return "(if " + renderCompact(args[0]) + " " + renderCompact(args[1]) + " " + renderCompact(args[2]) + ")"
	}
	if isHead && head == "list" {
		rendered := make([]string, len(args))
		for i, a := range args {
			rendered[i] = renderCompact(a)
		}
		return "[" + strings.Join(rendered, ", ") + "]"
	}

	rendered := make([]string, len(elements))
	for i, e := range elements {
		rendered[i] = renderCompact(e)
	}
	return "(" + strings.Join(rendered, " ") + ")"
}
