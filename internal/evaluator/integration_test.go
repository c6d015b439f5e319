package evaluator_test

// End-to-end scenarios: each one lexes,
// parses, type-checks and evaluates a small program and asserts on the
// final global environment or the panic it raises, the same pipeline
// cmd/moose's run() drives.

import (
	"testing"

	"github.com/moose-lang/moose/internal/builtins"
	"github.com/moose-lang/moose/internal/checker"
	"github.com/moose-lang/moose/internal/evaluator"
	"github.com/moose-lang/moose/internal/lexer"
	"github.com/moose-lang/moose/internal/object"
	"github.com/moose-lang/moose/internal/parser"
)

// run lexes, parses, checks and evaluates src, failing the test on any
// syntax or type error. It returns the evaluator so callers can inspect
// the final global environment, plus any runtime panic.
func run(t *testing.T, src string) (*evaluator.Evaluator, *object.Panic) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}

	c := checker.New()
	builtins.SeedTypes(c.Root())
	diags := c.Check(program)
	if diags.HasErrors() {
		t.Fatalf("unexpected type errors: %v", diags.List())
	}

	eval := evaluator.New()
	_, p2 := eval.Run(program)
	return eval, p2
}

func TestScenario1_ToStringConversion(t *testing.T) {
	eval, p := run(t, `a: Int = 5; b = a.toString()`)
	if p != nil {
		t.Fatalf("unexpected panic: %v", p.Format())
	}
	a, _ := eval.Global().Get("a")
	b, _ := eval.Global().Get("b")
	if a.(*object.Integer).Value != 5 {
		t.Errorf("a = %v, want 5", a.Inspect())
	}
	if b.(*object.String).Value != "5" {
		t.Errorf("b = %v, want \"5\"", b.Inspect())
	}
}

func TestScenario2_MutableReassignment(t *testing.T) {
	eval, p := run(t, `mut a = 1; a = a + 2`)
	if p != nil {
		t.Fatalf("unexpected panic: %v", p.Format())
	}
	a, _ := eval.Global().Get("a")
	if a.(*object.Integer).Value != 3 {
		t.Errorf("a = %v, want 3", a.Inspect())
	}
}

func TestScenario3_TupleDestructuring(t *testing.T) {
	eval, p := run(t, `(a, b) = (1, 2); c = a + b`)
	if p != nil {
		t.Fatalf("unexpected panic: %v", p.Format())
	}
	c, _ := eval.Global().Get("c")
	if c.(*object.Integer).Value != 3 {
		t.Errorf("c = %v, want 3", c.Inspect())
	}
}

func TestScenario4_ClassInheritance(t *testing.T) {
	eval, p := run(t, `
class A { x: Int }
class B < A { y: Int }
b = B(1, 2)
result = b.x + b.y
`)
	if p != nil {
		t.Fatalf("unexpected panic: %v", p.Format())
	}
	result, _ := eval.Global().Get("result")
	if result.(*object.Integer).Value != 3 {
		t.Errorf("result = %v, want 3", result.Inspect())
	}
}

func TestScenario5_ListIndexingAndOutOfBounds(t *testing.T) {
	eval, p := run(t, `l = [10, 20, 30]; last = l[-1]`)
	if p != nil {
		t.Fatalf("unexpected panic: %v", p.Format())
	}
	last, _ := eval.Global().Get("last")
	if last.(*object.Integer).Value != 30 {
		t.Errorf("l[-1] = %v, want 30", last.Inspect())
	}

	_, p2 := run(t, `l = [10, 20, 30]; bad = l[3]`)
	if p2 == nil {
		t.Fatalf("expected an OutOfBounds panic indexing l[3]")
	}
	if p2.Kind != object.OutOfBounds {
		t.Errorf("panic kind = %v, want OutOfBounds", p2.Kind)
	}
	if p2.Length != 3 || p2.Index != 3 {
		t.Errorf("panic length/index = %d/%d, want 3/3", p2.Length, p2.Index)
	}
}

func TestScenario6_UserOperatorShadowsBuiltin(t *testing.T) {
	eval, p := run(t, `
infix +(a: Int, b: Int) -> Int { return a - b }
result = 1 + 2
`)
	if p != nil {
		t.Fatalf("unexpected panic: %v", p.Format())
	}
	result, _ := eval.Global().Get("result")
	if result.(*object.Integer).Value != -1 {
		t.Errorf("result = %v, want -1 (user overload should shadow the built-in +)", result.Inspect())
	}
}

func TestPostfixOperatorInvocation(t *testing.T) {
	eval, p := run(t, `
postfix !(n: Int) -> Int {
	if (n < 2) { return 1 }
	return n * (n - 1)!
}
result = 4!
`)
	if p != nil {
		t.Fatalf("unexpected panic: %v", p.Format())
	}
	result, _ := eval.Global().Get("result")
	if result.(*object.Integer).Value != 24 {
		t.Errorf("4! = %v, want 24", result.Inspect())
	}
}

func TestMethodBodySeesPropertiesByBareName(t *testing.T) {
	eval, p := run(t, `
class Counter {
	mut n: Int
	function bump(d: Int) -> Int { n = n + d; return n }
}
c = Counter(1)
first = c.bump(2)
second = c.bump(3)
`)
	if p != nil {
		t.Fatalf("unexpected panic: %v", p.Format())
	}
	first, _ := eval.Global().Get("first")
	second, _ := eval.Global().Get("second")
	if first.(*object.Integer).Value != 3 {
		t.Errorf("first bump = %v, want 3", first.Inspect())
	}
	if second.(*object.Integer).Value != 6 {
		t.Errorf("second bump = %v, want 6 (state must persist on the instance)", second.Inspect())
	}
}

func TestNilLiteralOperandBindsAsTypedNil(t *testing.T) {
	eval, p := run(t, `y = nil + 1`)
	if p != nil {
		t.Fatalf("unexpected panic: %v", p.Format())
	}
	y, _ := eval.Global().Get("y")
	iv, ok := y.(*object.Integer)
	if !ok || !iv.IsNil {
		t.Errorf("nil + 1 = %v, want an Int-typed nil (nil propagation through the built-in +)", y.Inspect())
	}
}

func TestGlobalEnvironmentRestoredAfterCalls(t *testing.T) {
	eval, p := run(t, `
class Box {
	v: Int
	function get() -> Int { return v }
}
b = Box(7)
x = b.get() + b.v
`)
	if p != nil {
		t.Fatalf("unexpected panic: %v", p.Format())
	}
	if eval.Global().Closed() {
		t.Errorf("global environment left closed after member-access evaluation")
	}

	eval2, p2 := run(t, `l = [1]; bad = l[5]`)
	if p2 == nil {
		t.Fatalf("expected an OutOfBounds panic")
	}
	if eval2.Global().Closed() {
		t.Errorf("global environment left closed after a propagating panic")
	}
}

func TestIndexingIntoNilPanics(t *testing.T) {
	_, p := run(t, `l: [Int] = nil; bad = l[0]`)
	if p == nil {
		t.Fatalf("expected a NilUsage panic indexing into a nil list")
	}
	if p.Kind != object.NilUsage {
		t.Errorf("panic kind = %v, want NilUsage", p.Kind)
	}
}
