package lowerer

import (
	"strings"
	"testing"

	"github.com/forgelang/forge/internal/ast"
)

func doubleExpanded() ast.Term {
	return &ast.List{Elements: []ast.Term{ast.Symbol("*"), ast.Number(5), ast.Number(2)}}
}

func TestCompactSimpleExpansion(t *testing.T) {
	out, err := Compact{}.Lower([]ast.Term{doubleExpanded()})
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if !strings.Contains(out, "(5 * 2)") {
		t.Errorf("got %q, want substring (5 * 2)", out)
	}
}

func TestCompactNestedExpansion(t *testing.T) {
	term := &ast.List{Elements: []ast.Term{ast.Symbol("*"), doubleExpanded(), ast.Number(2)}}
	out, err := Compact{}.Lower([]ast.Term{term})
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if !strings.Contains(out, "((5 * 2) * 2)") {
		t.Errorf("got %q, want substring ((5 * 2) * 2)", out)
	}
}

func TestCompactSplice(t *testing.T) {
	term := &ast.List{Elements: []ast.Term{
		ast.Symbol("+"), ast.Number(1), ast.Number(2), ast.Number(3), ast.Number(4), ast.Number(5),
	}}
	out, err := Compact{}.Lower([]ast.Term{term})
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if !strings.Contains(out, "(1 + 2 + 3 + 4 + 5)") {
		t.Errorf("got %q", out)
	}
}

func TestCompactRejectsUnexpandedMacroCall(t *testing.T) {
	term := &ast.MacroCall{Name: "double", Args: []ast.Term{ast.Number(5)}}
	_, err := Compact{}.Lower([]ast.Term{term})
	if err == nil {
		t.Fatal("expected rejection of unexpanded MacroCall")
	}
}

func TestCompactRejectsUnresolvedQuasiquote(t *testing.T) {
	term := &ast.Quasiquote{Child: &ast.Unquote{Child: ast.Symbol("x")}}
	_, err := Compact{}.Lower([]ast.Term{term})
	if err == nil {
		t.Fatal("expected rejection of unresolved quasiquote")
	}
}

func TestCompactAllowsQuotedDataWithMacroShapes(t *testing.T) {
	// Quoted data is never expanded, so a quoted MacroCall-shaped list is fine.
	term := &ast.Quote{Child: &ast.List{Elements: []ast.Term{ast.Symbol("double"), ast.Number(5)}}}
	_, err := Compact{}.Lower([]ast.Term{term})
	if err != nil {
		t.Errorf("quoted data should not be rejected: %v", err)
	}
}

func TestReadableIfFormatting(t *testing.T) {
	term := &ast.List{Elements: []ast.Term{ast.Symbol("if"), ast.Bool(true), ast.Number(1), ast.Number(2)}}
	out, err := Readable{}.Lower([]ast.Term{term})
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if !strings.Contains(out, "then") || !strings.Contains(out, "else") {
		t.Errorf("got %q, want then/else markers", out)
	}
}

func TestCompactAndReadableAgreeOnAtoms(t *testing.T) {
	for _, term := range []ast.Term{ast.Number(3.5), ast.String("hi"), ast.Bool(false), ast.Nil{}, ast.Symbol("x")} {
		c, err := Compact{}.Lower([]ast.Term{term})
		if err != nil {
			t.Fatalf("Compact.Lower: %v", err)
		}
		r, err := Readable{}.Lower([]ast.Term{term})
		if err != nil {
			t.Fatalf("Readable.Lower: %v", err)
		}
		if c != r {
			t.Errorf("atom rendering diverged: compact %q vs readable %q", c, r)
		}
	}
}
