// Package forge wires the lexer, parser, transform registry, validator
// composite, macro expander, and lowerer into the single end-to-end
// pipeline spec.md describes (§2, "System overview"). Grounded on
// thsfranca-vex's top-level transpiler orchestration, which wires its own
// ANTLR/macro/analysis/codegen stages behind one entry point the same way.
package forge

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/forgelang/forge/internal/ast"
	"github.com/forgelang/forge/internal/config"
	"github.com/forgelang/forge/internal/diagnostics"
	"github.com/forgelang/forge/internal/lexer"
	"github.com/forgelang/forge/internal/lowerer"
	"github.com/forgelang/forge/internal/macro"
	"github.com/forgelang/forge/internal/parser"
	"github.com/forgelang/forge/internal/transform"
	"github.com/forgelang/forge/internal/validate"
)

// Pipeline runs one compilation unit through every core stage. Each Run
// mints a fresh uuid session id (SPEC_FULL §B.2) threaded into every
// diagnostic it produces, so concurrent batch runs (SPEC_FULL §B.1) can be
// told apart in interleaved output.
type Pipeline struct {
	cfg        *config.Config
	transforms *transform.Registry
}

// New builds a Pipeline from cfg, registering each built-in transform named
// in cfg.EnabledTransform, in order (currently only "echo" is built in).
// Names that match no built-in transform are ignored.
func New(cfg *config.Config) *Pipeline {
	reg := transform.NewRegistry()
	for _, name := range cfg.EnabledTransform {
		if name == "echo" {
			reg.Register(transform.NewEcho())
		}
	}
	return &Pipeline{cfg: cfg, transforms: reg}
}

// Result is everything a Run produces: the lowered text on success, or the
// rendered diagnostics on failure.
type Result struct {
	SessionID   string
	Output      string
	Diagnostics []diagnostics.Diagnostic
}

// Run lexes, parses, transforms, validates, expands, and lowers src,
// returning either the rendered output or a non-empty diagnostic set.
func (p *Pipeline) Run(src string) (*Result, error) {
	sessionID := uuid.NewString()

	tokens, lexErr := lexer.Tokenize(src)
	if lexErr != nil {
		d := diagnostics.New(diagnostics.StageLex, lexErr.Kind, lexErr.Error(), lexErr.Help()).WithSession(sessionID)
		return &Result{SessionID: sessionID, Diagnostics: []diagnostics.Diagnostic{d}}, fmt.Errorf("%s", d.Render())
	}

	terms, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		d := diagnostics.New(diagnostics.StageParse, parseErr.Kind, parseErr.Error(), parseErr.Help()).WithSession(sessionID)
		return &Result{SessionID: sessionID, Diagnostics: []diagnostics.Diagnostic{d}}, fmt.Errorf("%s", d.Render())
	}

	// Transforms, validation, and macro expansion all run per top-level
	// term, mirroring original_source/src/main.rs's compile_lisp: one
	// registry.apply_all / composite validate_all / expander.expand_all
	// call per expr, never batched into one synthetic wrapper list (doing
	// so would make per-term transforms like Echo see one combined term
	// instead of one capture per top-level form).
	transformed := make([]ast.Term, len(terms))
	for i, t := range terms {
		if err := p.transforms.ApplyAll(t); err != nil {
			d := diagnostics.New(diagnostics.StageTransform, "TransformFailed", err.Error(), "fix or remove the failing transform").WithSession(sessionID)
			return &Result{SessionID: sessionID, Diagnostics: []diagnostics.Diagnostic{d}}, fmt.Errorf("%s", d.Render())
		}
		transformed[i] = t
	}

	if p.cfg.ValidateSafety {
		composite := p.buildValidators()
		for _, t := range transformed {
			if errs := composite.ValidateAll(t); len(errs) > 0 {
				ds := make([]diagnostics.Diagnostic, len(errs))
				for i, e := range errs {
					ds[i] = diagnostics.New(diagnostics.StageValidate, e.Rule, e.Message, e.Help).WithContext(e.Context).WithSession(sessionID)
				}
				return &Result{SessionID: sessionID, Diagnostics: ds}, fmt.Errorf("%s", diagnostics.RenderAll(ds))
			}
		}
	}

	expander := macro.NewExpanderWithMaxDepth(p.cfg.MaxDepth)
	expandedList := make([]ast.Term, 0, len(transformed))
	for _, t := range transformed {
		expanded, macroErr := expander.ExpandAll(t)
		if macroErr != nil {
			d := diagnostics.New(diagnostics.StageExpand, string(macroErr.Kind), macroErr.Error(), macroErr.Help()).WithSession(sessionID)
			return &Result{SessionID: sessionID, Diagnostics: []diagnostics.Diagnostic{d}}, fmt.Errorf("%s", d.Render())
		}
		if !ast.IsNil(expanded) {
			expandedList = append(expandedList, expanded)
		}
	}

	low := p.selectLowerer()
	out, lowerErr := low.Lower(expandedList)
	if lowerErr != nil {
		d := diagnostics.New(diagnostics.StageLower, "LowerFailed", lowerErr.Error(), "ensure the input reached the lowerer fully expanded").WithSession(sessionID)
		return &Result{SessionID: sessionID, Diagnostics: []diagnostics.Diagnostic{d}}, fmt.Errorf("%s", d.Render())
	}

	return &Result{SessionID: sessionID, Output: out}, nil
}

func (p *Pipeline) buildValidators() *validate.Composite {
	c := validate.NewComposite()
	if p.cfg.ValidatorEnabled("type-safety") {
		c.Add(validate.NewTypeShapeValidator())
	}
	if p.cfg.ValidatorEnabled("resource-bounds") {
		c.Add(validate.NewResourceBoundsValidator())
	}
	if p.cfg.ValidatorEnabled("ffi") {
		c.Add(validate.NewFFIRestrictionsValidator(p.cfg.FFIAllow))
	}
	if p.cfg.ValidatorEnabled("complexity") {
		c.Add(validate.NewComplexityLimitValidator(p.cfg.MaxNesting))
	}
	return c
}

func (p *Pipeline) selectLowerer() lowerer.Lowerer {
	if p.cfg.TargetsReadable() {
		return lowerer.Readable{}
	}
	return lowerer.Compact{}
}

// NamesOf parses src and registers its macro definitions without expanding
// any call sites, returning the registered names for introspection tooling
// such as `forgec macros <file>` (SPEC_FULL §C).
func NamesOf(src string) ([]string, error) {
	tokens, lexErr := lexer.Tokenize(src)
	if lexErr != nil {
		return nil, lexErr
	}
	terms, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		return nil, parseErr
	}
	expander := macro.NewExpander()
	for _, t := range terms {
		if _, ok := t.(*ast.Macro); ok {
			if _, err := expander.ExpandAll(t); err != nil {
				return nil, err
			}
		}
	}
	return expander.Registry().Names(), nil
}
