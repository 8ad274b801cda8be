package validate

import (
	"testing"

	"github.com/forgelang/forge/internal/ast"
)

func TestFFIRestrictionsFlagsUnlistedCall(t *testing.T) {
	v := NewFFIRestrictionsValidator(nil)
	term := &ast.List{Elements: []ast.Term{sym("ffi-malloc"), ast.Number(8)}}
	errs := v.Validate(term)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Rule != "FFIRestrictions" {
		t.Errorf("Rule = %q, want FFIRestrictions", errs[0].Rule)
	}
}

func TestFFIRestrictionsAllowsListedCall(t *testing.T) {
	v := NewFFIRestrictionsValidator([]string{"rust-unsafe-read"})
	term := &ast.List{Elements: []ast.Term{sym("rust-unsafe-read"), sym("ptr")}}
	if errs := v.Validate(term); len(errs) != 0 {
		t.Errorf("want no errors for allow-listed call, got %v", errs)
	}
}

func TestFFIRestrictionsIgnoresUnrestrictedHeads(t *testing.T) {
	v := NewFFIRestrictionsValidator(nil)
	term := &ast.List{Elements: []ast.Term{sym("+"), ast.Number(1), ast.Number(2)}}
	if errs := v.Validate(term); len(errs) != 0 {
		t.Errorf("want no errors, got %v", errs)
	}
}
