package checker

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/scope"
	"github.com/moose-lang/moose/internal/types"
)

// Checker walks a Program twice: once to register every top-level
// function/operator/class signature (so forward references resolve),
// once to fully type-check statements and expressions.
type Checker struct {
	root  *scope.Scope
	diags *Diagnostics

	expectedReturn types.Type
	currentClass   *scope.ClassScope
}

func New() *Checker {
	return &Checker{root: scope.New(), diags: &Diagnostics{}}
}

// Root exposes the global Scope so callers can seed the built-in operator
// signatures (builtins.SeedTypes) before Check. The evaluator does not
// use it; it builds its own Environment.
func (c *Checker) Root() *scope.Scope { return c.root }

func (c *Checker) Check(program *ast.Program) *Diagnostics {
	c.exploreProgram(program)
	for _, stmt := range program.Statements {
		c.checkStatement(stmt, c.root)
	}
	return c.diags
}
