package evaluator

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/object"
	"github.com/moose-lang/moose/internal/types"
)

// resolveType is the runtime twin of checker.resolveType: it turns a
// parsed TypeExpr into a types.Type so Environment's overload tables can
// be keyed the same way scope's are. Unlike the checker's version it
// never reports a diagnostic for an unknown class name — the checker
// already rejected the program if one existed.
func resolveType(te *ast.TypeExpr) types.Type {
	if te == nil {
		return types.Void{}
	}
	switch {
	case te.IsList:
		return types.List{Element: resolveType(te.Element)}
	case te.IsTuple:
		elems := make([]types.Type, len(te.Elements))
		for i, el := range te.Elements {
			elems[i] = resolveType(el)
		}
		return types.Tuple{Elements: elems}
	case te.IsFunc:
		params := make([]types.ParamType, len(te.Params))
		for i, p := range te.Params {
			params[i] = types.ParamType{Type: resolveType(p)}
		}
		return types.Function{Params: params, ReturnType: resolveType(te.Return)}
	default:
		return resolveNamedType(te.Name)
	}
}

func resolveNamedType(name string) types.Type {
	switch name {
	case "Int":
		return types.Integer{}
	case "Float":
		return types.Float{}
	case "Bool":
		return types.Bool{}
	case "String":
		return types.String{}
	case "Void":
		return types.Void{}
	case "Nil":
		return types.Nil{}
	default:
		return types.Class{Name: name}
	}
}

func toParams(defs []*ast.VariableDefinition) []object.Param {
	out := make([]object.Param, len(defs))
	for i, d := range defs {
		out[i] = object.Param{Name: d.Name, Type: resolveType(d.DeclaredType)}
	}
	return out
}

func functionValue(s *ast.FunctionStatement, env *object.Environment) *object.Function {
	return &object.Function{
		Name:       s.Name,
		Params:     toParams(s.Params),
		ReturnType: resolveType(s.ReturnType),
		Body:       s.Body,
		Env:        env,
	}
}

func operatorValue(s *ast.OperationStatement, env *object.Environment) *object.Operator {
	return &object.Operator{
		Name:       s.Name,
		Position:   s.Position,
		Params:     toParams(s.Params),
		ReturnType: resolveType(s.ReturnType),
		Body:       s.Body,
		Env:        env,
	}
}
