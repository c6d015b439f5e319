package checker_test

import (
	"testing"

	"github.com/moose-lang/moose/internal/builtins"
	"github.com/moose-lang/moose/internal/checker"
	"github.com/moose-lang/moose/internal/lexer"
	"github.com/moose-lang/moose/internal/parser"
)

func check(t *testing.T, src string) *checker.Diagnostics {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	c := checker.New()
	builtins.SeedTypes(c.Root())
	return c.Check(program)
}

func TestCheckerAcceptsWellTypedProgram(t *testing.T) {
	diags := check(t, `a: Int = 5; b = a.toString()`)
	if diags.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", diags.List())
	}
}

func TestCheckerRejectsImmutableReassignment(t *testing.T) {
	diags := check(t, `a = 1; a = 2`)
	if !diags.HasErrors() {
		t.Errorf("expected a diagnostic for reassigning an immutable variable")
	}
}

func TestCheckerAllowsMutableReassignment(t *testing.T) {
	diags := check(t, `mut a = 1; a = 2`)
	if diags.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", diags.List())
	}
}

func TestCheckerDetectsOverloadAmbiguity(t *testing.T) {
	diags := check(t, `
function f(a: Int) -> Void { }
function f(a: Float) -> Void { }
f(nil)
`)
	if !diags.HasErrors() {
		t.Errorf("expected an ambiguity diagnostic calling f(nil) against two overloads")
	}
}

func TestCheckerDetectsUndefinedVariable(t *testing.T) {
	diags := check(t, `b = a + 1`)
	if !diags.HasErrors() {
		t.Errorf("expected a diagnostic for an undefined variable")
	}
}

func TestCheckerFlattensClassInheritance(t *testing.T) {
	diags := check(t, `
class A { x: Int }
class B < A { y: Int }
b = B(1, 2)
result = b.x + b.y
`)
	if diags.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", diags.List())
	}
}

func TestCheckerDetectsInheritanceCycle(t *testing.T) {
	diags := check(t, `
class A < B { x: Int }
class B < A { y: Int }
`)
	if !diags.HasErrors() {
		t.Errorf("expected a diagnostic for a cyclic inheritance chain")
	}
}

func TestCheckerAllowsMethodBodyPropertyAccess(t *testing.T) {
	diags := check(t, `
class Counter {
	mut n: Int
	function bump(d: Int) -> Int { n = n + d; return n }
	function reset() -> Void { n = 0 }
}
`)
	if diags.HasErrors() {
		t.Errorf("method bodies must see flattened properties by bare name, got: %v", diags.List())
	}
}

func TestCheckerRejectsBlockLocalForwardReference(t *testing.T) {
	diags := check(t, `
{
	g()
	function g() -> Void { }
}
`)
	if !diags.HasErrors() {
		t.Errorf("a nested declaration only takes effect once reached; calling it earlier must fail")
	}
}

func TestCheckerDetectsPropertyShadowing(t *testing.T) {
	diags := check(t, `
class A { x: Int }
class B < A { x: Int }
`)
	if !diags.HasErrors() {
		t.Errorf("expected a diagnostic for a subclass property shadowing an inherited one")
	}
}
