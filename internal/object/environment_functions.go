package object

import (
	"github.com/moose-lang/moose/internal/dispatch"
	"github.com/moose-lang/moose/internal/scope"
	"github.com/moose-lang/moose/internal/types"
)

// DefineFunction registers a user-defined function overload in THIS
// environment. Unlike scope.AddFunction at check time, the
// runtime never rejects a duplicate signature — the checker already did.
func (e *Environment) DefineFunction(fn *Function) {
	e.funcs[fn.Name] = append(e.funcs[fn.Name], fn)
}

// DefineBuiltinFunction registers a native function, used by the builtins
// package to seed the global environment.
func (e *Environment) DefineBuiltinFunction(fn *BuiltinFunction) {
	e.builtin[fn.Name] = append(e.builtin[fn.Name], fn)
}

// candidates collects this environment's OWN user + builtin overloads of
// name into one dispatch.Candidate slice.
func (e *Environment) candidates(name string) []FuncValue {
	own := e.funcs[name]
	builtin := e.builtin[name]
	out := make([]FuncValue, 0, len(own)+len(builtin))
	for _, f := range own {
		out = append(out, f)
	}
	for _, f := range builtin {
		out = append(out, f)
	}
	return out
}

// ResolveFunction finds the unique applicable overload of name for
// argTypes, walking outward through non-closed environments.
func (e *Environment) ResolveFunction(name string, argTypes []types.Type) (FuncValue, error) {
	match, kind := dispatch.ResolveOne(e.candidates(name), argTypes, e)
	switch kind {
	case dispatch.Found:
		return match, nil
	case dispatch.Ambiguous:
		return nil, &scope.AmbiguityError{Name: name}
	default:
		if e.closed || e.parent == nil {
			return nil, &scope.NotFoundError{Kind: "function", Name: name}
		}
		return e.parent.ResolveFunction(name, argTypes)
	}
}

// HasFunction reports whether some overload of name, declared anywhere in
// the reachable (closed-respecting) chain, matches argTypes.
func (e *Environment) HasFunction(name string, argTypes []types.Type) bool {
	_, err := e.ResolveFunction(name, argTypes)
	return err == nil
}

// FunctionOverloads returns this environment's own overloads of name,
// irrespective of arity — used when a method is read as a value rather
// than called, where dispatch can only
// apply once the unknown call-site argument types are known.
func (e *Environment) FunctionOverloads(name string) []FuncValue {
	return e.candidates(name)
}
