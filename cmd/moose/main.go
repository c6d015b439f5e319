// Command moose is the CLI entry point for the Moose language: it reads a
// source file (or stdin), runs it through the lex/parse/check/evaluate
// pipeline, and prints compile diagnostics or a runtime panic's stack
// trace to stderr.
//
// It uses hand-rolled os.Args dispatch (no flag framework), a top-level
// recover() guard that re-panics under DEBUG=1 for a real Go stack trace
// and otherwise prints a generic "this is a bug" message, and
// go-isatty-gated ANSI coloring of diagnostic/panic output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/moose-lang/moose/internal/builtins"
	"github.com/moose-lang/moose/internal/checker"
	"github.com/moose-lang/moose/internal/config"
	"github.com/moose-lang/moose/internal/evaluator"
	"github.com/moose-lang/moose/internal/lexer"
	"github.com/moose-lang/moose/internal/object"
	"github.com/moose-lang/moose/internal/parser"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if os.Getenv("MOOSE_TEST_MODE") == "1" {
		config.IsTestMode = true
	}

	if len(os.Args) >= 2 && (os.Args[1] == "-help" || os.Args[1] == "--help" || os.Args[1] == "help") {
		printUsage()
		return
	}

	source, path, err := readSource(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	colorize := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	os.Exit(run(source, path, colorize))
}

// run lexes, parses, checks and evaluates source, returning the process
// exit code. Expected failures (syntax errors, type errors, a Moose
// runtime panic) are reported through that exit code; main's recover()
// guard still surrounds this call and only sees internal Go panics.
func run(source, path string, colorize bool) int {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		printSyntaxErrors(errs, colorize)
		return 1
	}

	c := checker.New()
	builtins.SeedTypes(c.Root())
	diags := c.Check(program)
	if diags.HasErrors() {
		printDiagnostics(diags, colorize)
		return 1
	}

	eval := evaluator.New()
	_, p2 := eval.Run(program)
	if p2 != nil {
		printPanic(p2, colorize)
		return 1
	}
	return 0
}

func printSyntaxErrors(errs []string, colorize bool) {
	header := "Syntax errors:"
	if colorize {
		header = "\033[31m" + header + "\033[0m"
	}
	fmt.Fprintln(os.Stderr, header)
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "- %s\n", e)
	}
}

func printDiagnostics(diags *checker.Diagnostics, colorize bool) {
	header := "Type errors:"
	if colorize {
		header = "\033[31m" + header + "\033[0m"
	}
	fmt.Fprintln(os.Stderr, header)
	for _, d := range diags.List() {
		fmt.Fprintf(os.Stderr, "- %d:%d: %s\n", d.Line, d.Column, d.Message)
	}
}

func printPanic(p *object.Panic, colorize bool) {
	msg := p.Format()
	if colorize {
		msg = "\033[31m" + msg + "\033[0m"
	}
	fmt.Fprintln(os.Stderr, msg)
}

func printUsage() {
	fmt.Printf("Usage: moose <file>\n   or: %s <file>\n   or: pipe source on stdin\n", filepathBase(os.Args[0]))
}

func filepathBase(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' || p[i] == '\\' {
			return p[i+1:]
		}
	}
	return p
}

// readSource returns the program source and the path it came from (empty
// for stdin), reading a named file if one was given or stdin when piped.
func readSource(args []string) (string, string, error) {
	if len(args) >= 2 {
		path := args[1]
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		return string(data), path, nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", "", fmt.Errorf("usage: %s <file> or pipe source on stdin", args[0])
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return string(data), "", nil
}
