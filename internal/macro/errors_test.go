package macro

import (
	"strings"
	"testing"
)

func TestErrorRenderingNamesKeyData(t *testing.T) {
	cases := []struct {
		err  *Error
		want []string
	}{
		{&Error{Kind: UndefinedMacro, Name: "foo"}, []string{"foo"}},
		{&Error{Kind: ParameterCountMismatch, Name: "f", Expected: 2, Actual: 1}, []string{"f", "2", "1"}},
		{&Error{Kind: MaxDepthExceeded, Name: "i", Depth: 100}, []string{"i", "100"}},
		{&Error{Kind: InvalidPattern, Pattern: "&rest", Reason: "must be followed by a parameter name"}, []string{"&rest", "must be followed"}},
	}
	for _, c := range cases {
		msg := c.err.Error()
		for _, want := range c.want {
			if !strings.Contains(msg, want) {
				t.Errorf("Error() = %q, want substring %q", msg, want)
			}
		}
		if c.err.Help() == "" {
			t.Errorf("Help() empty for kind %s", c.err.Kind)
		}
	}
}
