package validate

import "github.com/forgelang/forge/internal/ast"

// Composite runs a set of named, independently-configured Validators and
// aggregates every error without short-circuiting (spec §4.2, "Composite
// semantics": "validate_all(term) returns either success or a non-empty
// collection of errors from each constituent that objected").
type Composite struct {
	validators []Validator
}

// NewComposite returns a Composite running vs, in the given order. Order
// only affects the ordering of the aggregated error slice, never which
// errors are reported.
func NewComposite(vs ...Validator) *Composite {
	return &Composite{validators: vs}
}

// ValidateAll runs every constituent validator against term and returns the
// concatenation of their errors, in constituent order. A nil/empty result
// means term passed every enabled rule.
func (c *Composite) ValidateAll(term ast.Term) []*Error {
	var errs []*Error
	for _, v := range c.validators {
		errs = append(errs, v.Validate(term)...)
	}
	return errs
}

// Add appends another validator to the composite's run order.
func (c *Composite) Add(v Validator) {
	c.validators = append(c.validators, v)
}
