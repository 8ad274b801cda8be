package validate

import (
	"fmt"
	"strings"

	"github.com/forgelang/forge/internal/ast"
)

// restrictedPrefixes names the head-symbol prefixes that require explicit
// allow-listing (spec §4.2.3): unsafe Rust interop and generic FFI calls.
var restrictedPrefixes = []string{"rust-unsafe", "ffi-"}

// FFIRestrictionsValidator flags any List whose head symbol carries a
// restricted prefix and is not present in Allowed (spec §4.2.3).
type FFIRestrictionsValidator struct {
	Allowed map[string]bool
}

// NewFFIRestrictionsValidator returns a validator permitting only the given
// head symbols to use restricted-prefix forms.
func NewFFIRestrictionsValidator(allowed []string) *FFIRestrictionsValidator {
	m := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		m[a] = true
	}
	return &FFIRestrictionsValidator{Allowed: m}
}

// Validate implements Validator.
func (v *FFIRestrictionsValidator) Validate(term ast.Term) []*Error {
	var errs []*Error
	ast.Walk(term, 0, func(t ast.Term, _ int) bool {
		if head, ok := ast.HeadSymbol(t); ok && v.restricted(head) && !v.Allowed[head] {
			errs = append(errs, &Error{
				Rule:    "FFIRestrictions",
				Message: fmt.Sprintf("call to restricted form %q is not in the FFI allow-list", head),
				Context: t.String(),
				Help:    fmt.Sprintf("add %q to --ffi-allow, or avoid the restricted call", head),
			})
		}
		return true
	})
	return errs
}

func (v *FFIRestrictionsValidator) restricted(head string) bool {
	for _, p := range restrictedPrefixes {
		if strings.HasPrefix(head, p) {
			return true
		}
	}
	return false
}
