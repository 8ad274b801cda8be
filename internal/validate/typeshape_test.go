package validate

import (
	"testing"

	"github.com/forgelang/forge/internal/ast"
)

func sym(s string) ast.Term { return ast.Symbol(s) }

func TestTypeShapeArithmeticRejectsNonNumber(t *testing.T) {
	v := NewTypeShapeValidator()
	term := &ast.List{Elements: []ast.Term{sym("+"), ast.Number(1), ast.String("oops")}}
	errs := v.Validate(term)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Rule != "TypeSafety" {
		t.Errorf("Rule = %q, want TypeSafety", errs[0].Rule)
	}
}

func TestTypeShapeArithmeticAcceptsUnknown(t *testing.T) {
	v := NewTypeShapeValidator()
	term := &ast.List{Elements: []ast.Term{sym("+"), sym("x"), ast.Number(2)}}
	if errs := v.Validate(term); len(errs) != 0 {
		t.Errorf("want no errors for symbol operand, got %v", errs)
	}
}

func TestTypeShapeComparisonMismatch(t *testing.T) {
	v := NewTypeShapeValidator()
	term := &ast.List{Elements: []ast.Term{sym("<"), ast.Number(1), ast.String("nope")}}
	if errs := v.Validate(term); len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestTypeShapeDescendsIntoMacroBody(t *testing.T) {
	v := NewTypeShapeValidator()
	bad := &ast.List{Elements: []ast.Term{sym("+"), ast.Bool(true), ast.Number(1)}}
	m := &ast.Macro{Name: "m", Parameters: nil, Body: bad}
	if errs := v.Validate(m); len(errs) != 1 {
		t.Fatalf("want 1 error surfaced from macro body, got %v", errs)
	}
}

func TestTypeShapeBareUnquoteFlagged(t *testing.T) {
	v := NewTypeShapeValidator()
	term := &ast.Unquote{Child: sym("x")}
	if errs := v.Validate(term); len(errs) != 1 {
		t.Fatalf("want 1 error for bare unquote, got %v", errs)
	}
}

func TestTypeShapeUnquoteInsideQuasiquoteAllowed(t *testing.T) {
	v := NewTypeShapeValidator()
	term := &ast.Quasiquote{Child: &ast.Unquote{Child: sym("x")}}
	if errs := v.Validate(term); len(errs) != 0 {
		t.Errorf("want no errors, got %v", errs)
	}
}
