package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/forgelang/forge/internal/config"
	"github.com/forgelang/forge/pkg/forge"
)

// runCommand compiles one or more source files. Multiple files are
// compiled concurrently, one Pipeline per file so each gets its own macro
// expander and session id; each goroutine owns its own slot in outputs and
// errs, so a failure on one file never cancels or hides the others — every
// non-nil error is reported before the process exits non-zero (SPEC_FULL
// §A.5), which an errgroup.Group (first-error-only) cannot do.
func runCommand(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cf := bindCompileFlags(fs)
	fs.Parse(args)

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: run requires at least one input file\n\n")
		printUsage()
		os.Exit(1)
	}
	if *cf.output != "" && len(files) > 1 {
		fmt.Fprintf(os.Stderr, "Error: -o cannot be used with more than one input file\n")
		os.Exit(1)
	}

	cfg := cf.config()
	outputs := make([]string, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		i, file := i, file
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := compileFile(file, cfg, *cf.verbose)
			if err != nil {
				errs[i] = err
				return
			}
			outputs[i] = out
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *cf.output != "" {
		if err := os.WriteFile(*cf.output, []byte(outputs[0]), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *cf.output, err)
			os.Exit(1)
		}
		return
	}
	for _, out := range outputs {
		fmt.Println(out)
	}
}

// compileFile reads and runs one source file through a fresh Pipeline,
// so every call gets its own macro expander and session id.
func compileFile(file string, cfg *config.Config, verbose bool) (string, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("%s: %w", file, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "compiling %s\n", file)
	}
	res, err := forge.New(cfg).Run(string(src))
	if err != nil {
		return "", fmt.Errorf("%s: %w", file, err)
	}
	return res.Output, nil
}
