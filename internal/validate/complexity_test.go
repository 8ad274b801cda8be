package validate

import (
	"testing"

	"github.com/forgelang/forge/internal/ast"
)

func nestedList(depth int) ast.Term {
	var t ast.Term = sym("leaf")
	for i := 0; i < depth; i++ {
		t = &ast.List{Elements: []ast.Term{t}}
	}
	return t
}

func TestComplexityLimitAllowsWithinBound(t *testing.T) {
	v := NewComplexityLimitValidator(5)
	if errs := v.Validate(nestedList(5)); len(errs) != 0 {
		t.Errorf("want no errors at the boundary, got %v", errs)
	}
}

func TestComplexityLimitFlagsBeyondBound(t *testing.T) {
	v := NewComplexityLimitValidator(5)
	errs := v.Validate(nestedList(6))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Rule != "ComplexityLimits" {
		t.Errorf("Rule = %q, want ComplexityLimits", errs[0].Rule)
	}
}

func TestComplexityLimitDefaultsWhenZero(t *testing.T) {
	v := NewComplexityLimitValidator(0)
	if v.MaxNesting != DefaultMaxNesting {
		t.Errorf("MaxNesting = %d, want default %d", v.MaxNesting, DefaultMaxNesting)
	}
}
