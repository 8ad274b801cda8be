package macro

import (
	"sort"

	"github.com/forgelang/forge/internal/ast"
)

// Definition is a registered macro: its name, parameter-name sequence
// (possibly containing the ast.RestParam sentinel), and unexpanded body.
type Definition struct {
	Name       string
	Parameters []string
	Body       ast.Term
}

// Registry maps macro names to definitions (spec §4.3.1).
type Registry struct {
	macros map[string]*Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{macros: make(map[string]*Definition)}
}

// Define installs a macro definition, replacing any prior definition of the
// same name.
func (r *Registry) Define(name string, parameters []string, body ast.Term) {
	r.macros[name] = &Definition{Name: name, Parameters: parameters, Body: body}
}

// Lookup returns the definition registered under name, if any.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	d, ok := r.macros[name]
	return d, ok
}

// Names returns every registered macro name, sorted, for introspection
// tooling that needs deterministic output across runs (e.g. `forgec
// macros`).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.macros))
	for n := range r.macros {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Count reports how many macros are currently registered.
func (r *Registry) Count() int { return len(r.macros) }
