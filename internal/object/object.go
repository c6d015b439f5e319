// Package object implements Moose's runtime Value representation and its
// Environment — the value-side twin of internal/scope. The Object
// interface and the Environment are co-located because the
// Environment's payload IS Object.
package object

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/types"
)

type ObjectType string

const (
	INTEGER_OBJ          ObjectType = "INTEGER"
	FLOAT_OBJ            ObjectType = "FLOAT"
	BOOL_OBJ             ObjectType = "BOOL"
	STRING_OBJ           ObjectType = "STRING"
	NIL_OBJ              ObjectType = "NIL"
	TUPLE_OBJ            ObjectType = "TUPLE"
	LIST_OBJ             ObjectType = "LIST"
	FUNCTION_OBJ         ObjectType = "FUNCTION"
	BUILTIN_FUNCTION_OBJ ObjectType = "BUILTIN_FUNCTION"
	OPERATOR_OBJ         ObjectType = "OPERATOR"
	BUILTIN_OPERATOR_OBJ ObjectType = "BUILTIN_OPERATOR"
	CLASS_INSTANCE_OBJ   ObjectType = "CLASS_INSTANCE"
	VOID_OBJ             ObjectType = "VOID"
)

// Object is the interface every runtime value implements.
type Object interface {
	Type() ObjectType
	Inspect() string
	RuntimeType() types.Type
}

// FuncValue is any callable runtime object (Function, BuiltinFunction,
// Operator, BuiltinOperator) — the dispatch.Candidate used by
// Environment's multi-dispatch resolution.
type FuncValue interface {
	Object
	ParamTypes() []types.Type
	Result() types.Type
}

// OpValue is a FuncValue with a fixity — used for the Environment's
// (name, position)-keyed operator overload tables.
type OpValue interface {
	FuncValue
	Fixity() ast.Position
}
