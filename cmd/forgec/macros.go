package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/forgelang/forge/pkg/forge"
)

// macrosCommand lists the macro names a file defines, without expanding
// any call sites — the introspection surface SPEC_FULL §C adds on top of
// pkg/forge.NamesOf.
func macrosCommand(args []string) {
	fs := flag.NewFlagSet("macros", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: macros requires exactly one input file\n")
		os.Exit(1)
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}

	names, err := forge.NamesOf(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(names) == 0 {
		fmt.Println("(no macros defined)")
		return
	}
	for _, n := range names {
		fmt.Println(n)
	}
}
