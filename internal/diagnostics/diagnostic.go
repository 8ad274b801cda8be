// Package diagnostics renders pipeline errors the way spec §7 requires:
// a one-line headline naming the rule/kind and key data, followed by a
// short "Help:" remediation line. Adapted from
// thsfranca-vex/internal/transpiler/diagnostics (Diagnostic/Code/catalog
// shape), renaming its "Suggestion" field to the spec's "Help".
package diagnostics

import (
	"fmt"
	"strings"
)

// Stage identifies which pipeline stage produced a diagnostic.
type Stage string

const (
	StageLex       Stage = "lex"
	StageParse     Stage = "parse"
	StageTransform Stage = "transform"
	StageValidate  Stage = "validate"
	StageExpand    Stage = "expand"
	StageLower     Stage = "lower"
)

// Diagnostic is a rendered, structured pipeline error.
type Diagnostic struct {
	Stage     Stage
	Rule      string // rule/kind tag, e.g. "TypeSafety" or "MaxDepthExceeded"
	Headline  string // one line naming the rule and key data
	Help      string // remediation hint, rendered with a "Help:" prefix
	Context   string // optional rendering of the offending sub-term
	SessionID string // set by callers that want cross-output attribution
}

// New builds a Diagnostic. headline should already include the rule's key
// data (names, counts, depths) per spec §7.
func New(stage Stage, rule, headline, help string) Diagnostic {
	return Diagnostic{Stage: stage, Rule: rule, Headline: headline, Help: help}
}

// WithContext attaches a rendering of the offending sub-term.
func (d Diagnostic) WithContext(ctx string) Diagnostic {
	d.Context = ctx
	return d
}

// WithSession attaches a session id for cross-output attribution (§B.2).
func (d Diagnostic) WithSession(id string) Diagnostic {
	d.SessionID = id
	return d
}

// Error satisfies the error interface so a Diagnostic can be returned and
// compared directly.
func (d Diagnostic) Error() string { return d.Render() }

// Render produces the full user-visible text: headline, optional context,
// then the Help: line.
func (d Diagnostic) Render() string {
	var b strings.Builder
	if d.SessionID != "" {
		fmt.Fprintf(&b, "[%s] ", d.SessionID)
	}
	fmt.Fprintf(&b, "%s: %s", d.Rule, d.Headline)
	if d.Context != "" {
		fmt.Fprintf(&b, "\n  Context: %s", d.Context)
	}
	if d.Help != "" {
		fmt.Fprintf(&b, "\nHelp: %s", d.Help)
	}
	return b.String()
}

// RenderAll joins several diagnostics' renderings with blank-line
// separation, for the validator's "report all at once" aggregation (spec
// §4.2, composite semantics).
func RenderAll(ds []Diagnostic) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.Render()
	}
	return strings.Join(parts, "\n\n")
}
