package object

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/types"
)

// Param is one bound parameter name/type pair for a user-defined
// function/operator value.
type Param struct {
	Name string
	Type types.Type
}

func paramTypes(params []Param) []types.Type {
	out := make([]types.Type, len(params))
	for i, p := range params {
		out[i] = p.Type
	}
	return out
}

// Function is a user-defined function value: name, signature, parameter
// names, its body, and the environment it closed over at definition
// time.
type Function struct {
	Name       string
	Params     []Param
	ReturnType types.Type
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) RuntimeType() types.Type {
	pts := make([]types.ParamType, len(f.Params))
	for i, p := range f.Params {
		pts[i] = types.ParamType{Type: p.Type}
	}
	return types.Function{Params: pts, ReturnType: f.ReturnType}
}
func (f *Function) Inspect() string      { return "function " + f.Name }
func (f *Function) ParamTypes() []types.Type { return paramTypes(f.Params) }
func (f *Function) Result() types.Type       { return f.ReturnType }

// BuiltinFn is the native Go closure backing a BuiltinFunction/Operator.
// It returns a Panic instead of a Go error so it composes
// with the evaluator's panic-as-value propagation.
type BuiltinFn func(args []Object) (Object, *Panic)

// BuiltinFunction is a native function seeded by the builtins package.
type BuiltinFunction struct {
	Name       string
	Params     []types.Type
	ReturnType types.Type
	Fn         BuiltinFn
}

func (b *BuiltinFunction) Type() ObjectType { return BUILTIN_FUNCTION_OBJ }
func (b *BuiltinFunction) RuntimeType() types.Type {
	pts := make([]types.ParamType, len(b.Params))
	for i, p := range b.Params {
		pts[i] = types.ParamType{Type: p}
	}
	return types.Function{Params: pts, ReturnType: b.ReturnType}
}
func (b *BuiltinFunction) Inspect() string          { return "builtin function " + b.Name }
func (b *BuiltinFunction) ParamTypes() []types.Type { return b.Params }
func (b *BuiltinFunction) Result() types.Type       { return b.ReturnType }

// Operator is a user-defined operator value: identical shape to Function
// plus the fixity it was declared with.
type Operator struct {
	Name       string
	Position   ast.Position
	Params     []Param
	ReturnType types.Type
	Body       *ast.BlockStatement
	Env        *Environment
}

func (o *Operator) Type() ObjectType { return OPERATOR_OBJ }
func (o *Operator) RuntimeType() types.Type {
	pts := make([]types.ParamType, len(o.Params))
	for i, p := range o.Params {
		pts[i] = types.ParamType{Type: p.Type}
	}
	return types.Function{Params: pts, ReturnType: o.ReturnType}
}
func (o *Operator) Inspect() string          { return string(o.Position) + " operator " + o.Name }
func (o *Operator) ParamTypes() []types.Type { return paramTypes(o.Params) }
func (o *Operator) Result() types.Type       { return o.ReturnType }
func (o *Operator) Fixity() ast.Position     { return o.Position }

// BuiltinOperator is a native global operator (e.g. the built-in `+`).
type BuiltinOperator struct {
	Name       string
	Position   ast.Position
	Params     []types.Type
	ReturnType types.Type
	Fn         BuiltinFn
}

func (b *BuiltinOperator) Type() ObjectType { return BUILTIN_OPERATOR_OBJ }
func (b *BuiltinOperator) RuntimeType() types.Type {
	pts := make([]types.ParamType, len(b.Params))
	for i, p := range b.Params {
		pts[i] = types.ParamType{Type: p}
	}
	return types.Function{Params: pts, ReturnType: b.ReturnType}
}
func (b *BuiltinOperator) Inspect() string          { return string(b.Position) + " builtin operator " + b.Name }
func (b *BuiltinOperator) ParamTypes() []types.Type { return b.Params }
func (b *BuiltinOperator) Result() types.Type       { return b.ReturnType }
func (b *BuiltinOperator) Fixity() ast.Position     { return b.Position }

// ClassInstance is a constructed object: its name plus the instance
// environment holding its properties and rebound methods. IsNil
// represents a nil value of this class's type.
type ClassInstance struct {
	ClassName string
	Env       *Environment
	IsNil     bool
}

func (c *ClassInstance) Type() ObjectType        { return CLASS_INSTANCE_OBJ }
func (c *ClassInstance) RuntimeType() types.Type { return types.Class{Name: c.ClassName} }
func (c *ClassInstance) Inspect() string {
	if c.IsNil {
		return "nil"
	}
	return "<" + c.ClassName + " instance>"
}
