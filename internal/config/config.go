// Package config aggregates the knobs that gate core behavior: expansion
// and nesting bounds, the FFI allow-list, which validators/transforms run,
// and the output target tier (SPEC_FULL §A.3). Flags are read first, then
// overridden by environment variables via github.com/spf13/cast, the same
// coercion library Tangerg-lynx's document writers use for metadata
// lookups — grounded on that usage, retargeted at env-var parsing here.
package config

import (
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cast"
)

// Defaults mirror the expander's and complexity validator's own fallbacks
// (spec §4.3.1, §4.2.4), so a zero-value Config still behaves sensibly.
const (
	DefaultMaxDepth   = 100
	DefaultMaxNesting = 50
)

// Config is the resolved set of knobs for one compilation run.
type Config struct {
	MaxDepth         int
	MaxNesting       int
	FFIAllow         []string
	EnabledValidate  []string // "type-safety", "resource-bounds", "ffi", "complexity"
	EnabledTransform []string
	ValidateSafety   bool
	Target           *semver.Constraints
}

// Option mutates a Config being built; flags map onto Options in cmd/forgec.
type Option func(*Config)

// WithMaxDepth overrides the expander's depth bound.
func WithMaxDepth(n int) Option { return func(c *Config) { c.MaxDepth = n } }

// WithMaxNesting overrides the complexity validator's nesting bound.
func WithMaxNesting(n int) Option { return func(c *Config) { c.MaxNesting = n } }

// WithFFIAllow sets the FFI restriction allow-list.
func WithFFIAllow(names []string) Option { return func(c *Config) { c.FFIAllow = names } }

// WithValidateSafety turns on the `--validate-safety` validators.
func WithValidateSafety(on bool) Option { return func(c *Config) { c.ValidateSafety = on } }

// WithTransforms sets which named transforms run, in order.
func WithTransforms(names []string) Option { return func(c *Config) { c.EnabledTransform = names } }

// WithTarget parses a semver constraint string (e.g. ">=2.0.0") selecting
// the lowerer tier (SPEC_FULL §B.5).
func WithTarget(constraint string) Option {
	return func(c *Config) {
		if constraint == "" {
			return
		}
		if parsed, err := semver.NewConstraint(constraint); err == nil {
			c.Target = parsed
		}
	}
}

// New builds a Config from defaults, applies opts (typically sourced from
// CLI flags), then lets FORGE_MAX_DEPTH / FORGE_MAX_NESTING / FORGE_TARGET
// environment variables override the result (SPEC_FULL §A.3).
func New(opts ...Option) *Config {
	c := &Config{MaxDepth: DefaultMaxDepth, MaxNesting: DefaultMaxNesting}
	for _, opt := range opts {
		opt(c)
	}
	applyEnv(c)
	return c
}

func applyEnv(c *Config) {
	if v, ok := os.LookupEnv("FORGE_MAX_DEPTH"); ok {
		if n, err := cast.ToIntE(v); err == nil {
			c.MaxDepth = n
		}
	}
	if v, ok := os.LookupEnv("FORGE_MAX_NESTING"); ok {
		if n, err := cast.ToIntE(v); err == nil {
			c.MaxNesting = n
		}
	}
	if v, ok := os.LookupEnv("FORGE_TARGET"); ok && v != "" {
		if parsed, err := semver.NewConstraint(v); err == nil {
			c.Target = parsed
		}
	}
}

// TargetsReadable reports whether the configured target constraint is
// satisfied by the 2.0.0 readable-tier boundary (SPEC_FULL §B.5): with no
// target set, the compact tier is used by default.
func (c *Config) TargetsReadable() bool {
	if c.Target == nil {
		return false
	}
	v := semver.MustParse("2.0.0")
	return c.Target.Check(v)
}

// ValidatorEnabled reports whether the named validator rule should run.
// An empty EnabledValidate list means "all of them" (the default).
func (c *Config) ValidatorEnabled(name string) bool {
	if len(c.EnabledValidate) == 0 {
		return true
	}
	for _, n := range c.EnabledValidate {
		if n == name {
			return true
		}
	}
	return false
}
