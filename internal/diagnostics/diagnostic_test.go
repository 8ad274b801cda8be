package diagnostics

import (
	"strings"
	"testing"
)

func TestRenderIncludesHeadlineAndHelp(t *testing.T) {
	d := New(StageExpand, "MaxDepthExceeded", "expansion of 'i' exceeded depth 100", "lower the macro's recursion or raise --max-depth")
	got := d.Render()
	if !strings.Contains(got, "MaxDepthExceeded") || !strings.Contains(got, "depth 100") {
		t.Errorf("Render() missing headline data: %s", got)
	}
	if !strings.Contains(got, "Help: lower the macro's recursion") {
		t.Errorf("Render() missing Help: line: %s", got)
	}
}

func TestRenderWithSessionPrefixesID(t *testing.T) {
	d := New(StageValidate, "TypeSafety", "arithmetic operand mismatch", "use a Number-typed operand").WithSession("sess-1")
	got := d.Render()
	if !strings.Contains(got, "[sess-1]") {
		t.Errorf("Render() missing session prefix: %s", got)
	}
}

func TestRenderAllJoinsDiagnostics(t *testing.T) {
	ds := []Diagnostic{
		New(StageValidate, "TypeSafety", "a", "help a"),
		New(StageValidate, "ComplexityLimits", "b", "help b"),
	}
	got := RenderAll(ds)
	if !strings.Contains(got, "TypeSafety") || !strings.Contains(got, "ComplexityLimits") {
		t.Errorf("RenderAll() missing entries: %s", got)
	}
}
