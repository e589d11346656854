// cmd/sourcecc/main.go
package main

import (
	"fmt"
	"os"

	"sourcecc/internal/compiler"
	"sourcecc/internal/config"
	cerrors "sourcecc/internal/errors"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		showUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "--help", "-h", "help":
		showUsage()
		return
	case "--version", "-version", "version":
		showVersion()
		return
	}

	debug := false
	var files []string
	for _, a := range args {
		switch a {
		case "-debug", "-v", "--debug":
			debug = true
		default:
			files = append(files, a)
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "sourcecc: no input files")
		showUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(".sourcecc.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "sourcecc: reading .sourcecc.toml: %v\n", err)
		os.Exit(1)
	}

	sink := cerrors.NewWriterSink(os.Stderr)
	if enabled, set := cfg.ColorEnabled(); set {
		sink.Color = enabled
	}

	status := 0
	for _, path := range files {
		c := compiler.New(sink)
		c.Debug = debug
		if err := c.Run(path); err != nil {
			status = 1
			continue
		}
		fmt.Printf("%s: ok (%d symbols, %d types)\n", path, c.Prog.Symbols.Len(), c.Prog.Types.Len())
	}
	os.Exit(status)
}

func showUsage() {
	fmt.Println("sourcecc - front-end for a small imperative language")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sourcecc [flags] <file> [file...]   Lex, parse, resolve, and complete types for each file")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -debug, -v       Emit phase trace diagnostics")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  sourcecc main.src")
	fmt.Println("  sourcecc -debug a.src b.src")
}

func showVersion() {
	fmt.Printf("sourcecc v%s\n", version)
}
