package builtins

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/object"
	"github.com/moose-lang/moose/internal/scope"
	"github.com/moose-lang/moose/internal/types"
)

// OpSpec is one built-in global operator overload — seeded into both the
// checker's Scope (as a signature) and the evaluator's Environment (as a
// callable), from the same data so the two can never drift apart.
type OpSpec struct {
	Name     string
	Position ast.Position
	Params   []types.Type
	Return   types.Type
	Fn       object.BuiltinFn
}

var operatorSpecs = buildOperatorSpecs()

// SeedTypes registers every built-in operator signature into the
// type-checking global scope's builtin table, kept apart from user
// declarations so a same-signature user overload shadows it instead of
// colliding into a duplicate-overload error.
func SeedTypes(s *scope.Scope) {
	for _, spec := range operatorSpecs {
		s.AddBuiltinOperator(spec.Name, spec.Position, spec.Params, spec.Return)
	}
}

// SeedRuntime registers every built-in operator's callable into the
// runtime global environment.
func SeedRuntime(env *object.Environment) {
	for _, spec := range operatorSpecs {
		env.DefineBuiltinOperator(&object.BuiltinOperator{
			Name: spec.Name, Position: spec.Position, Params: spec.Params, ReturnType: spec.Return, Fn: spec.Fn,
		})
	}
}

func buildOperatorSpecs() []OpSpec {
	var specs []OpSpec
	add := func(s OpSpec) { specs = append(specs, s) }

	I, F, B, S := types.Integer{}, types.Float{}, types.Bool{}, types.String{}

	add(OpSpec{Name: "+", Position: ast.Infix, Params: []types.Type{I, I}, Return: I, Fn: addInt})
	add(OpSpec{Name: "+", Position: ast.Infix, Params: []types.Type{F, F}, Return: F, Fn: addFloat})
	add(OpSpec{Name: "+", Position: ast.Infix, Params: []types.Type{S, S}, Return: S, Fn: addString})

	add(OpSpec{Name: "-", Position: ast.Infix, Params: []types.Type{I, I}, Return: I, Fn: subInt})
	add(OpSpec{Name: "-", Position: ast.Infix, Params: []types.Type{F, F}, Return: F, Fn: subFloat})

	add(OpSpec{Name: "*", Position: ast.Infix, Params: []types.Type{I, I}, Return: I, Fn: mulInt})
	add(OpSpec{Name: "*", Position: ast.Infix, Params: []types.Type{F, F}, Return: F, Fn: mulFloat})

	add(OpSpec{Name: "/", Position: ast.Infix, Params: []types.Type{I, I}, Return: I, Fn: divInt})
	add(OpSpec{Name: "/", Position: ast.Infix, Params: []types.Type{F, F}, Return: F, Fn: divFloat})

	add(OpSpec{Name: "%", Position: ast.Infix, Params: []types.Type{I, I}, Return: I, Fn: modInt})

	add(OpSpec{Name: "<", Position: ast.Infix, Params: []types.Type{I, I}, Return: B, Fn: ltInt})
	add(OpSpec{Name: "<", Position: ast.Infix, Params: []types.Type{F, F}, Return: B, Fn: ltFloat})
	add(OpSpec{Name: ">", Position: ast.Infix, Params: []types.Type{I, I}, Return: B, Fn: gtInt})
	add(OpSpec{Name: ">", Position: ast.Infix, Params: []types.Type{F, F}, Return: B, Fn: gtFloat})
	add(OpSpec{Name: "<=", Position: ast.Infix, Params: []types.Type{I, I}, Return: B, Fn: leInt})
	add(OpSpec{Name: "<=", Position: ast.Infix, Params: []types.Type{F, F}, Return: B, Fn: leFloat})
	add(OpSpec{Name: ">=", Position: ast.Infix, Params: []types.Type{I, I}, Return: B, Fn: geInt})
	add(OpSpec{Name: ">=", Position: ast.Infix, Params: []types.Type{F, F}, Return: B, Fn: geFloat})

	add(OpSpec{Name: "==", Position: ast.Infix, Params: []types.Type{I, I}, Return: B, Fn: eqInt})
	add(OpSpec{Name: "==", Position: ast.Infix, Params: []types.Type{F, F}, Return: B, Fn: eqFloat})
	add(OpSpec{Name: "==", Position: ast.Infix, Params: []types.Type{B, B}, Return: B, Fn: eqBool})
	add(OpSpec{Name: "==", Position: ast.Infix, Params: []types.Type{S, S}, Return: B, Fn: eqString})
	add(OpSpec{Name: "!=", Position: ast.Infix, Params: []types.Type{I, I}, Return: B, Fn: neInt})
	add(OpSpec{Name: "!=", Position: ast.Infix, Params: []types.Type{F, F}, Return: B, Fn: neFloat})
	add(OpSpec{Name: "!=", Position: ast.Infix, Params: []types.Type{B, B}, Return: B, Fn: neBool})
	add(OpSpec{Name: "!=", Position: ast.Infix, Params: []types.Type{S, S}, Return: B, Fn: neString})

	add(OpSpec{Name: "&&", Position: ast.Infix, Params: []types.Type{B, B}, Return: B, Fn: andBool})
	add(OpSpec{Name: "||", Position: ast.Infix, Params: []types.Type{B, B}, Return: B, Fn: orBool})

	add(OpSpec{Name: "-", Position: ast.Prefix, Params: []types.Type{I}, Return: I, Fn: negInt})
	add(OpSpec{Name: "-", Position: ast.Prefix, Params: []types.Type{F}, Return: F, Fn: negFloat})
	add(OpSpec{Name: "!", Position: ast.Prefix, Params: []types.Type{B}, Return: B, Fn: notBool})

	return specs
}
