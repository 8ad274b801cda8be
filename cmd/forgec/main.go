// Command forgec is the compiler driver: it lexes, parses, transforms,
// validates, expands, and lowers source files through pkg/forge, and
// exposes the ancillary ast IR and macro-introspection commands the
// pipeline was built to support. Structured the way
// thsfranca-vex/cmd/vex-transpiler dispatches subcommands off os.Args[1]
// into one flag.FlagSet-per-command function.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runCommand(os.Args[2:])
	case "to-ir":
		toIRCommand(os.Args[2:])
	case "from-ir":
		fromIRCommand(os.Args[2:])
	case "macros":
		macrosCommand(os.Args[2:])
	case "watch":
		watchCommand(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "forgec - the macro-expansion compiler driver\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  forgec run <file...> [-o <file>] [-transforms csv] [-validate-safety]\n")
	fmt.Fprintf(os.Stderr, "             [-max-depth n] [-max-nesting n] [-ffi-allow csv] [-target constraint] [-verbose]\n")
	fmt.Fprintf(os.Stderr, "  forgec to-ir <file> [-o <file>]\n")
	fmt.Fprintf(os.Stderr, "  forgec from-ir <file.ir.json>\n")
	fmt.Fprintf(os.Stderr, "  forgec macros <file>\n")
	fmt.Fprintf(os.Stderr, "  forgec watch <file...> [flags as run]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  run      Compile one or more source files\n")
	fmt.Fprintf(os.Stderr, "  to-ir    Parse a file and emit its stable IR encoding\n")
	fmt.Fprintf(os.Stderr, "  from-ir  Decode an IR document and lower it\n")
	fmt.Fprintf(os.Stderr, "  macros   List the macro names a file defines\n")
	fmt.Fprintf(os.Stderr, "  watch    Recompile source files whenever they change\n")
}
