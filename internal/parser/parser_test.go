package parser

import (
	"reflect"
	"testing"

	"github.com/forgelang/forge/internal/ast"
	"github.com/forgelang/forge/internal/lexer"
)

func parseSrc(t *testing.T, src string) []ast.Term {
	t.Helper()
	tokens, lexErr := lexer.Tokenize(src)
	if lexErr != nil {
		t.Fatalf("Tokenize: %v", lexErr)
	}
	terms, err := Parse(tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return terms
}

func TestParseAtom(t *testing.T) {
	got := parseSrc(t, "42")
	want := []ast.Term{ast.Number(42)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseSimpleList(t *testing.T) {
	got := parseSrc(t, "(+ 1 2)")
	want := []ast.Term{&ast.List{Elements: []ast.Term{ast.Symbol("+"), ast.Number(1), ast.Number(2)}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseNestedList(t *testing.T) {
	got := parseSrc(t, "(* (+ 1 2) 3)")
	want := []ast.Term{&ast.List{Elements: []ast.Term{
		ast.Symbol("*"),
		&ast.List{Elements: []ast.Term{ast.Symbol("+"), ast.Number(1), ast.Number(2)}},
		ast.Number(3),
	}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDefmacro(t *testing.T) {
	got := parseSrc(t, "(defmacro double (x) `(* ,x 2))")
	m, ok := got[0].(*ast.Macro)
	if !ok {
		t.Fatalf("got %T, want *ast.Macro", got[0])
	}
	if m.Name != "double" || len(m.Parameters) != 1 || m.Parameters[0] != "x" {
		t.Errorf("got %+v", m)
	}
	if _, ok := m.Body.(*ast.Quasiquote); !ok {
		t.Errorf("body should be a Quasiquote, got %T", m.Body)
	}
}

func TestParseDefmacroWithRest(t *testing.T) {
	got := parseSrc(t, "(defmacro m (first &rest r) first)")
	m := got[0].(*ast.Macro)
	want := []string{"first", ast.RestParam, "r"}
	if !reflect.DeepEqual(m.Parameters, want) {
		t.Errorf("got %v, want %v", m.Parameters, want)
	}
}

func TestParseShortFormReaderMarkers(t *testing.T) {
	got := parseSrc(t, "'x `(a ,b ,@c)")
	if _, ok := got[0].(*ast.Quote); !ok {
		t.Errorf("got %T, want *ast.Quote", got[0])
	}
	qq, ok := got[1].(*ast.Quasiquote)
	if !ok {
		t.Fatalf("got %T, want *ast.Quasiquote", got[1])
	}
	l := qq.Child.(*ast.List)
	if _, ok := l.Elements[1].(*ast.Unquote); !ok {
		t.Errorf("got %T, want *ast.Unquote", l.Elements[1])
	}
	if _, ok := l.Elements[2].(*ast.Splice); !ok {
		t.Errorf("got %T, want *ast.Splice", l.Elements[2])
	}
}

func TestParseFunctionStyleQuoteForms(t *testing.T) {
	got := parseSrc(t, "(quote x) (quasiquote y) (unquote z) (unquote-splicing w)")
	if _, ok := got[0].(*ast.Quote); !ok {
		t.Errorf("got %T, want *ast.Quote", got[0])
	}
	if _, ok := got[1].(*ast.Quasiquote); !ok {
		t.Errorf("got %T, want *ast.Quasiquote", got[1])
	}
	if _, ok := got[2].(*ast.Unquote); !ok {
		t.Errorf("got %T, want *ast.Unquote", got[2])
	}
	if _, ok := got[3].(*ast.Splice); !ok {
		t.Errorf("got %T, want *ast.Splice", got[3])
	}
}

func TestUnexpectedRightParen(t *testing.T) {
	tokens, _ := lexer.Tokenize(")")
	_, err := Parse(tokens)
	if err == nil || err.Kind != "UnexpectedRightParen" {
		t.Fatalf("got %v, want UnexpectedRightParen", err)
	}
}

func TestUnclosedList(t *testing.T) {
	tokens, _ := lexer.Tokenize("(+ 1 2")
	_, err := Parse(tokens)
	if err == nil || err.Kind != "UnclosedList" {
		t.Fatalf("got %v, want UnclosedList", err)
	}
}

func TestMalformedDefmacroMissingBody(t *testing.T) {
	tokens, _ := lexer.Tokenize("(defmacro f (a))")
	_, err := Parse(tokens)
	if err == nil || err.Kind != "MalformedDefinition" {
		t.Fatalf("got %v, want MalformedDefinition", err)
	}
}
