// Package transform implements the ordered, named rewriter registry that
// runs between parsing and validation (spec §4.1). Grounded on
// original_source/src/transform.rs's ASTTransform/TransformRegistry.
package transform

import (
	"fmt"

	"github.com/forgelang/forge/internal/ast"
)

// Error distinguishes the two ways a transform can fail (spec §4.1, §7).
type Error struct {
	Transform string
	Kind      string // "TransformFailed" or "InvalidAst"
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Transform, e.Kind, e.Message)
}

// Transform is a named tree rewriter. Apply may mutate term arbitrarily; it
// must leave the tree well-formed (every parent owns its children, Splice
// and Unquote only ever appear inside a Quasiquote).
type Transform interface {
	Name() string
	Apply(term ast.Term) error
}

// Registry holds an ordered, named sequence of Transforms and applies them
// in registration order, short-circuiting on the first failure (spec §4.1,
// §7).
type Registry struct {
	transforms []Transform
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends t to the end of the registration order.
func (r *Registry) Register(t Transform) {
	r.transforms = append(r.transforms, t)
}

// ApplyAll runs every registered transform, in order, against term. The
// first transform to fail aborts the remainder; the error names the
// offending transform.
func (r *Registry) ApplyAll(term ast.Term) error {
	for _, t := range r.transforms {
		if err := t.Apply(term); err != nil {
			if te, ok := err.(*Error); ok {
				if te.Transform == "" {
					te.Transform = t.Name()
				}
				return te
			}
			return &Error{Transform: t.Name(), Kind: "TransformFailed", Message: err.Error()}
		}
	}
	return nil
}

// Count returns the number of registered transforms.
func (r *Registry) Count() int { return len(r.transforms) }

// Names returns the registered transforms' names, in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.transforms))
	for i, t := range r.transforms {
		names[i] = t.Name()
	}
	return names
}
