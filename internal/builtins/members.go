// Package builtins provides the primitive member functions and global
// operators. Member functions live in one package-level table that
// LookupMember consults both at check time and when evaluating a call.
// Global operators are seeded into the checker's Scope by SeedTypes and
// into the runtime Environment by SeedRuntime. Member functions are keyed by a primitive "receiver kind" string, since
// Moose's members are invoked as `5.toString()` / `"12".parseInt()`.
package builtins

import (
	"github.com/moose-lang/moose/internal/dispatch"
	"github.com/moose-lang/moose/internal/object"
	"github.com/moose-lang/moose/internal/types"
)

// Entry is one overload of a primitive member function.
type Entry struct {
	Kind   string // "Integer", "Float", "Bool", "String", "List"
	Name   string
	Params []types.Type
	Return types.Type
	Fn     object.BuiltinFn
}

func (e *Entry) ParamTypes() []types.Type { return e.Params }

// ReceiverKind maps a runtime/static type to the member table key it owns,
// or reports false for types with no built-in members (Tuple, Function,
// user classes — those go through class-method dispatch instead).
func ReceiverKind(t types.Type) (string, bool) {
	switch t.(type) {
	case types.Integer:
		return "Integer", true
	case types.Float:
		return "Float", true
	case types.Bool:
		return "Bool", true
	case types.String:
		return "String", true
	case types.List:
		return "List", true
	default:
		return "", false
	}
}

var memberTable = buildMemberTable()

// LookupMember resolves the unique applicable overload of a primitive
// member name for argTypes.
func LookupMember(kind, name string, argTypes []types.Type) (*Entry, dispatch.ErrKind) {
	return dispatch.ResolveOne(memberTable[kind][name], argTypes, nil)
}

func buildMemberTable() map[string]map[string][]*Entry {
	t := map[string]map[string][]*Entry{
		"Integer": {}, "Float": {}, "Bool": {}, "String": {}, "List": {},
	}
	add := func(e *Entry) { t[e.Kind][e.Name] = append(t[e.Kind][e.Name], e) }

	noArgs := []types.Type{}

	add(&Entry{Kind: "Integer", Name: "toBool", Params: noArgs, Return: types.Bool{}, Fn: intToBool})
	add(&Entry{Kind: "Integer", Name: "toFloat", Params: noArgs, Return: types.Float{}, Fn: intToFloat})
	add(&Entry{Kind: "Integer", Name: "toString", Params: noArgs, Return: types.String{}, Fn: intToString})
	add(&Entry{Kind: "Integer", Name: "toInt", Params: noArgs, Return: types.Integer{}, Fn: intToInt})

	add(&Entry{Kind: "Float", Name: "toBool", Params: noArgs, Return: types.Bool{}, Fn: floatToBool})
	add(&Entry{Kind: "Float", Name: "toFloat", Params: noArgs, Return: types.Float{}, Fn: floatToFloat})
	add(&Entry{Kind: "Float", Name: "toString", Params: noArgs, Return: types.String{}, Fn: floatToString})
	add(&Entry{Kind: "Float", Name: "toInt", Params: noArgs, Return: types.Integer{}, Fn: floatToInt})

	add(&Entry{Kind: "Bool", Name: "toBool", Params: noArgs, Return: types.Bool{}, Fn: boolToBool})
	add(&Entry{Kind: "Bool", Name: "toString", Params: noArgs, Return: types.String{}, Fn: boolToString})
	add(&Entry{Kind: "Bool", Name: "toInt", Params: noArgs, Return: types.Integer{}, Fn: boolToInt})

	add(&Entry{Kind: "String", Name: "toString", Params: noArgs, Return: types.String{}, Fn: stringToString})
	add(&Entry{Kind: "String", Name: "length", Params: noArgs, Return: types.Integer{}, Fn: stringLength})
	// parseInt/parseFloat/parseBool each return a 2-tuple of (parsed value
	// or nil, error message or nil). The Int-returning parse uses the
	// (Int, String) tuple shape, matching its contents.
	add(&Entry{Kind: "String", Name: "parseInt", Params: noArgs, Return: types.Tuple{Elements: []types.Type{types.Integer{}, types.String{}}}, Fn: strParseInt})
	add(&Entry{Kind: "String", Name: "parseFloat", Params: noArgs, Return: types.Tuple{Elements: []types.Type{types.Float{}, types.String{}}}, Fn: strParseFloat})
	add(&Entry{Kind: "String", Name: "parseBool", Params: noArgs, Return: types.Tuple{Elements: []types.Type{types.Bool{}, types.String{}}}, Fn: strParseBool})

	add(&Entry{Kind: "List", Name: "length", Params: noArgs, Return: types.Integer{}, Fn: listLength})

	return t
}
