package checker

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/types"
)

// resolveType converts a parsed TypeExpr into a types.Type, reporting an
// unknown-class diagnostic when a bare name isn't a primitive and isn't a
// registered class. A nil TypeExpr (missing annotation, e.g. no return
// type) resolves to Void.
func (c *Checker) resolveType(te *ast.TypeExpr) types.Type {
	if te == nil {
		return types.Void{}
	}
	switch {
	case te.IsList:
		return types.List{Element: c.resolveType(te.Element)}
	case te.IsTuple:
		elems := make([]types.Type, len(te.Elements))
		for i, e := range te.Elements {
			elems[i] = c.resolveType(e)
		}
		return types.Tuple{Elements: elems}
	case te.IsFunc:
		params := make([]types.ParamType, len(te.Params))
		for i, p := range te.Params {
			params[i] = types.ParamType{Type: c.resolveType(p)}
		}
		return types.Function{Params: params, ReturnType: c.resolveType(te.Return)}
	default:
		return c.resolveNamedType(te, te.Name)
	}
}

func (c *Checker) resolveNamedType(node ast.Node, name string) types.Type {
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
		if !c.root.HasClass(name) {
			c.diags.Add(node, "unknown type '%s'", name)
		}
		return types.Class{Name: name}
	}
}
