package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/forgelang/forge/internal/ast"
	"github.com/forgelang/forge/internal/lexer"
	"github.com/forgelang/forge/internal/lowerer"
	"github.com/forgelang/forge/internal/parser"
)

// toIRCommand parses a file and emits its stable IR encoding
// (internal/ast.ToIR), the serialization interop format SPEC_FULL §A.5
// describes for tools that want the AST without re-parsing source.
func toIRCommand(args []string) {
	fs := flag.NewFlagSet("to-ir", flag.ExitOnError)
	output := fs.String("o", "", "Write the IR document to this file instead of stdout")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: to-ir requires exactly one input file\n")
		os.Exit(1)
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}

	tokens, lexErr := lexer.Tokenize(string(src))
	if lexErr != nil {
		fmt.Fprintln(os.Stderr, lexErr.Error())
		os.Exit(1)
	}
	terms, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, parseErr.Error())
		os.Exit(1)
	}

	doc, err := ast.ToIR(terms)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding IR: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, doc, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *output, err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(string(doc))
}

// fromIRCommand decodes an IR document previously produced by to-ir and
// lowers it directly, skipping lex/parse/expand. The lowerer itself
// rejects documents that still carry Macro/MacroCall/Unquote/Splice terms
// (spec §7), so this doubles as a validity check on hand-edited IR.
func fromIRCommand(args []string) {
	fs := flag.NewFlagSet("from-ir", flag.ExitOnError)
	readable := fs.Bool("readable", false, "Use the readable lowering tier instead of compact")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: from-ir requires exactly one input file\n")
		os.Exit(1)
	}

	doc, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}

	terms, err := ast.FromIR(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding IR: %v\n", err)
		os.Exit(1)
	}

	var low lowerer.Lowerer = lowerer.Compact{}
	if *readable {
		low = lowerer.Readable{}
	}
	out, lowerErr := low.Lower(terms)
	if lowerErr != nil {
		fmt.Fprintf(os.Stderr, "Error lowering IR: %v\n", lowerErr)
		os.Exit(1)
	}
	fmt.Println(out)
}
