package forge

import (
	"strings"
	"testing"

	"github.com/forgelang/forge/internal/config"
)

func TestRunSimpleMacroExpansion(t *testing.T) {
	p := New(config.New())
	src := "(defmacro double (x) `(* ,x 2)) (double 5)"
	res, err := p.Run(src)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(res.Output, "(5 * 2)") {
		t.Errorf("got %q, want substring (5 * 2)", res.Output)
	}
	if res.SessionID == "" {
		t.Error("expected a non-empty session id")
	}
}

func TestRunArityErrorProducesDiagnostic(t *testing.T) {
	p := New(config.New())
	src := "(defmacro f (a b) a) (f 1)"
	res, err := p.Run(src)
	if err == nil {
		t.Fatal("expected an arity error")
	}
	if len(res.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(res.Diagnostics))
	}
	if !strings.Contains(res.Diagnostics[0].Render(), "f") {
		t.Errorf("diagnostic should mention macro name f: %s", res.Diagnostics[0].Render())
	}
}

func TestRunTypeSafetyValidation(t *testing.T) {
	p := New(config.New(config.WithValidateSafety(true)))
	res, err := p.Run(`(+ "hello" 42)`)
	if err == nil {
		t.Fatal("expected a TypeSafety validation error")
	}
	if len(res.Diagnostics) == 0 || res.Diagnostics[0].Rule != "TypeSafety" {
		t.Errorf("got %+v, want a TypeSafety diagnostic", res.Diagnostics)
	}
}

func TestRunReadableTargetTier(t *testing.T) {
	p := New(config.New(config.WithTarget(">=2.0.0")))
	res, err := p.Run("(if true 1 2)")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(res.Output, "then") {
		t.Errorf("got %q, want readable-tier then/else formatting", res.Output)
	}
}

func TestNamesOfReportsRegisteredMacros(t *testing.T) {
	names, err := NamesOf("(defmacro double (x) `(* ,x 2)) (defmacro triple (x) `(* ,x 3))")
	if err != nil {
		t.Fatalf("NamesOf: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("got %v, want 2 names", names)
	}
}
