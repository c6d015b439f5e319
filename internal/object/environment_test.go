package object

import (
	"testing"

	"github.com/moose-lang/moose/internal/types"
)

func TestDefineAndGetVar(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", &Integer{Value: 5}, true)
	v, ok := env.Get("a")
	if !ok {
		t.Fatalf("expected to find a")
	}
	if iv, ok := v.(*Integer); !ok || iv.Value != 5 {
		t.Errorf("Get(a) = %v, want Integer(5)", v)
	}
	mut, ok := env.IsMut("a")
	if !ok || !mut {
		t.Errorf("expected a to be mutable")
	}
}

func TestAssignWalksOutwardUnlessClosed(t *testing.T) {
	parent := NewEnvironment()
	parent.Define("x", &Integer{Value: 1}, true)
	child := NewEnclosedEnvironment(parent)

	if !child.Assign("x", &Integer{Value: 2}) {
		t.Fatalf("expected Assign to find x in parent")
	}
	v, _ := parent.Get("x")
	if v.(*Integer).Value != 2 {
		t.Errorf("expected parent's x mutated to 2, got %v", v)
	}

	child.SetClosed(true)
	if child.Assign("x", &Integer{Value: 3}) {
		t.Errorf("expected Assign to fail to reach parent once closed")
	}
}

func TestWithClosedRestoresOnReturnedFunc(t *testing.T) {
	env := NewEnvironment()
	if env.Closed() {
		t.Fatalf("fresh environment should start open")
	}
	restore := env.WithClosed(true)
	if !env.Closed() {
		t.Fatalf("expected closed after WithClosed(true)")
	}
	restore()
	if env.Closed() {
		t.Errorf("expected closed flag restored to false")
	}
}

func TestResolveFunctionAmbiguityAndShadowing(t *testing.T) {
	global := NewEnvironment()
	global.DefineFunction(&Function{Name: "f", Params: []Param{{Name: "a", Type: types.Integer{}}}, ReturnType: types.Void{}})
	global.DefineFunction(&Function{Name: "f", Params: []Param{{Name: "a", Type: types.Float{}}}, ReturnType: types.Void{}})

	if _, err := global.ResolveFunction("f", []types.Type{types.Nil{}}); err == nil {
		t.Errorf("expected ambiguity resolving f(nil) against two overloads")
	}

	child := NewEnclosedEnvironment(global)
	if !child.HasFunction("f", []types.Type{types.Integer{}}) {
		t.Errorf("expected child to see f via parent chain")
	}
	child.SetClosed(true)
	if child.HasFunction("f", []types.Type{types.Integer{}}) {
		t.Errorf("expected closed child to not see f")
	}
}

func TestClassTemplateAncestry(t *testing.T) {
	env := NewEnvironment()
	env.AddClassTemplate("Animal", "")
	env.AddClassTemplate("Dog", "Animal")

	if !env.IsAncestor("Animal", "Dog") {
		t.Errorf("expected Animal ancestor of Dog")
	}
	if env.IsAncestor("Dog", "Animal") {
		t.Errorf("did not expect Dog ancestor of Animal")
	}
}

func TestMeLookupStopsAtOwnerClassBoundary(t *testing.T) {
	global := NewEnvironment()
	instanceEnv := NewEnclosedEnvironment(global)
	inst := &ClassInstance{ClassName: "Foo", Env: instanceEnv}
	instanceEnv.SetMe(inst)

	block := NewEnclosedEnvironment(instanceEnv)
	me, ok := block.Me()
	if !ok || me != Object(inst) {
		t.Errorf("expected nested block to inherit enclosing method's me")
	}

	// A nested method body (its own ownerClass) should not inherit an
	// outer me even if one is set further up the chain.
	nestedMethodEnv := NewEnclosedEnvironment(instanceEnv)
	nestedMethodEnv.SetOwnerClass(&ClassTemplate{Name: "Bar"})
	if _, ok := nestedMethodEnv.Me(); ok {
		t.Errorf("expected a nested method body to not inherit the outer me")
	}
}
