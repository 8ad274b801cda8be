package main

import (
	"flag"
	"strings"

	"github.com/forgelang/forge/internal/config"
)

// compileFlags holds the knobs shared by the run and watch subcommands.
type compileFlags struct {
	output         *string
	transforms     *string
	validateSafety *bool
	maxDepth       *int
	maxNesting     *int
	ffiAllow       *string
	target         *string
	verbose        *bool
}

func bindCompileFlags(fs *flag.FlagSet) *compileFlags {
	return &compileFlags{
		output:         fs.String("o", "", "Write output to this file instead of stdout"),
		transforms:     fs.String("transforms", "", "Comma-separated list of transforms to run"),
		validateSafety: fs.Bool("validate-safety", false, "Run the type-shape, resource-bounds, FFI, and complexity validators"),
		maxDepth:       fs.Int("max-depth", config.DefaultMaxDepth, "Maximum macro expansion depth"),
		maxNesting:     fs.Int("max-nesting", config.DefaultMaxNesting, "Maximum structural nesting depth"),
		ffiAllow:       fs.String("ffi-allow", "", "Comma-separated list of allowed restricted-FFI heads"),
		target:         fs.String("target", "", "Semver constraint selecting the output tier, e.g. >=2.0.0"),
		verbose:        fs.Bool("verbose", false, "Enable verbose diagnostics"),
	}
}

func (f *compileFlags) config() *config.Config {
	opts := []config.Option{
		config.WithMaxDepth(*f.maxDepth),
		config.WithMaxNesting(*f.maxNesting),
		config.WithValidateSafety(*f.validateSafety),
		config.WithTarget(*f.target),
	}
	if *f.transforms != "" {
		opts = append(opts, config.WithTransforms(splitCSV(*f.transforms)))
	}
	if *f.ffiAllow != "" {
		opts = append(opts, config.WithFFIAllow(splitCSV(*f.ffiAllow)))
	}
	return config.New(opts...)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
