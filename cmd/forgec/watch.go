package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/forgelang/forge/internal/config"
)

// watchCommand recompiles each given file whenever fsnotify reports a
// write or create event for it, printing the result (or error) to stdout/stderr and
// otherwise running forever until interrupted.
func watchCommand(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	cf := bindCompileFlags(fs)
	fs.Parse(args)

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: watch requires at least one input file\n\n")
		printUsage()
		os.Exit(1)
	}
	cfg := cf.config()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting watcher: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	for _, file := range files {
		if err := watcher.Add(file); err != nil {
			fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", file, err)
			os.Exit(1)
		}
		compileAndReport(file, cfg, *cf.verbose)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				compileAndReport(event.Name, cfg, *cf.verbose)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", watchErr)
		}
	}
}

func compileAndReport(file string, cfg *config.Config, verbose bool) {
	out, err := compileFile(file, cfg, verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(out)
}
