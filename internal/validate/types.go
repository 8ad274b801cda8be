// Package validate implements the composite validator suite that gates
// expansion (spec §4.2): type-shape, resource-bounds, FFI-restriction, and
// complexity-limit rules, each independent and aggregated by a composite.
// Grounded on original_source/src/validator.rs.
package validate

import "github.com/forgelang/forge/internal/ast"

// InferredType is the shape-only inference lattice (spec §4.2.1). Unknown
// and Any are compatible with every other type.
type InferredType int

const (
	TNumber InferredType = iota
	TString
	TBool
	TList
	TSymbol
	TUnknown
	TAny
)

func (t InferredType) String() string {
	switch t {
	case TNumber:
		return "Number"
	case TString:
		return "String"
	case TBool:
		return "Bool"
	case TList:
		return "List"
	case TSymbol:
		return "Symbol"
	case TAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// Error is a validation rule violation: a rule tag, a human message, and an
// optional contextual rendering of the offending sub-term (spec §4.2,
// "Composite semantics").
type Error struct {
	Rule    string
	Message string
	Context string
	Help    string
}

func (e *Error) Error() string {
	if e.Context != "" {
		return e.Rule + ": " + e.Message + "\n  Context: " + e.Context
	}
	return e.Rule + ": " + e.Message
}

// Validator is the shared single-method contract every rule implements
// (spec §4.2, "Validator composition" design note).
type Validator interface {
	Validate(term ast.Term) []*Error
}
