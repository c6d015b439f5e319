package object

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/dispatch"
	"github.com/moose-lang/moose/internal/scope"
	"github.com/moose-lang/moose/internal/types"
)

func (e *Environment) DefineOperator(op *Operator) {
	e.ops[op.Position][op.Name] = append(e.ops[op.Position][op.Name], op)
}

func (e *Environment) DefineBuiltinOperator(op *BuiltinOperator) {
	e.opsB[op.Position][op.Name] = append(e.opsB[op.Position][op.Name], op)
}

func (e *Environment) userOperatorCandidates(name string, pos ast.Position) []FuncValue {
	own := e.ops[pos][name]
	out := make([]FuncValue, 0, len(own))
	for _, f := range own {
		out = append(out, f)
	}
	return out
}

func (e *Environment) builtinOperatorCandidates(name string, pos ast.Position) []FuncValue {
	builtin := e.opsB[pos][name]
	out := make([]FuncValue, 0, len(builtin))
	for _, f := range builtin {
		out = append(out, f)
	}
	return out
}

// ResolveOperator mirrors ResolveFunction, keyed additionally by
// fixity. A user-declared overload is
// tried before this environment's built-in table, so a user operator
// with the same signature as a built-in shadows it rather than colliding
// into ambiguity — mirroring
// scope.Scope.resolveOperator's same two-table precedence at check time.
func (e *Environment) ResolveOperator(name string, pos ast.Position, argTypes []types.Type) (FuncValue, error) {
	if match, kind := dispatch.ResolveOne(e.userOperatorCandidates(name, pos), argTypes, e); kind == dispatch.Found {
		return match, nil
	} else if kind == dispatch.Ambiguous {
		return nil, &scope.AmbiguityError{Name: name}
	}
	if match, kind := dispatch.ResolveOne(e.builtinOperatorCandidates(name, pos), argTypes, e); kind == dispatch.Found {
		return match, nil
	} else if kind == dispatch.Ambiguous {
		return nil, &scope.AmbiguityError{Name: name}
	}
	if e.closed || e.parent == nil {
		return nil, &scope.NotFoundError{Kind: "operator", Name: name}
	}
	return e.parent.ResolveOperator(name, pos, argTypes)
}

func (e *Environment) HasOperator(name string, pos ast.Position, argTypes []types.Type) bool {
	_, err := e.ResolveOperator(name, pos, argTypes)
	return err == nil
}
