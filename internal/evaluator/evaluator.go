// Package evaluator implements the tree-walking evaluator: statement
// and expression dispatch plus the call protocol. It walks a checked
// Program against a runtime internal/object.Environment, mirroring the
// shape internal/checker walks the same Program against an
// internal/scope.Scope.
package evaluator

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/builtins"
	"github.com/moose-lang/moose/internal/object"
)

// Evaluator owns the global runtime Environment a Program is evaluated
// against.
type Evaluator struct {
	global *object.Environment
}

// New creates an Evaluator with a fresh global environment seeded with
// every built-in operator.
func New() *Evaluator {
	env := object.NewEnvironment()
	builtins.SeedRuntime(env)
	return &Evaluator{global: env}
}

// Global returns the evaluator's global environment.
func (e *Evaluator) Global() *object.Environment { return e.global }

// signal is the internal, non-panic return-control-flow carrier: a
// Return statement never escapes as a Go panic, it's threaded up as an
// ordinary value and caught by the nearest enclosing call frame
// (invokeUserFunc), exactly like object.Panic is threaded up rather
// than raised as a real panic/recover.
type signal struct {
	value object.Object
}

// Run registers every top-level class/function/operator (the runtime
// twin of checker.exploreProgram) and then evaluates program's
// statements in order for their side effects, discarding each statement's
// value except the last (a convenience for a REPL/CLI caller). The
// caller is expected to have already
// type-checked program with internal/checker and rejected it on any
// diagnostic before calling Run.
func (e *Evaluator) Run(program *ast.Program) (object.Object, *object.Panic) {
	e.Explore(program)
	result, sig, p := e.evalStatementsIn(program.Statements, e.global)
	if p != nil {
		return nil, p
	}
	if sig != nil {
		return sig.value, nil
	}
	return result, nil
}
