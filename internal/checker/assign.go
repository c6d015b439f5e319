package checker

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/scope"
	"github.com/moose-lang/moose/internal/types"
)

func (c *Checker) checkAssign(stmt *ast.AssignStatement, s *scope.Scope) {
	valueType := c.checkExpr(stmt.Value, s)

	switch target := stmt.Target.(type) {
	case *ast.Identifier:
		c.assignIdentifier(target, stmt, valueType, s)
	case *ast.Tuple:
		c.assignTuple(target, stmt, valueType, s)
	case *ast.IndexExpression:
		c.assignIndex(target, valueType, s)
	case *ast.Dereferer:
		c.assignDereferer(target, valueType, s)
	default:
		c.diags.Add(stmt, "invalid assignment target")
	}
}

// assignIdentifier checks an assignment whose target is a plain name:
// an explicit `mut`/type annotation always declares a fresh binding in the
// current scope; otherwise an existing reachable binding is mutated (and
// retyped if it was still untyped nil), falling back to an inferred fresh
// declaration when no such binding exists.
func (c *Checker) assignIdentifier(target *ast.Identifier, stmt *ast.AssignStatement, valueType types.Type, s *scope.Scope) {
	if stmt.Mutable || stmt.DeclaredType != nil {
		t := valueType
		if stmt.DeclaredType != nil {
			t = c.resolveType(stmt.DeclaredType)
			if !types.SuperOf(t, s, valueType) {
				c.diags.Add(stmt, "cannot assign %s to declared type %s", valueType.String(), t.String())
			}
		}
		if err := s.AddVar(target.Value, t, stmt.Mutable); err != nil {
			c.diags.AddErr(stmt, err)
		}
		target.SetMooseType(t)
		return
	}

	if existing, ok := s.TypeOf(target.Value); ok {
		if mut, _ := s.IsMut(target.Value); !mut {
			if _, wasNil := existing.(types.Nil); !wasNil {
				c.diags.Add(stmt, "cannot assign to immutable variable '%s'", target.Value)
			}
		}
		if _, wasNil := existing.(types.Nil); wasNil {
			s.Retype(target.Value, valueType)
			target.SetMooseType(valueType)
			return
		}
		if !types.SuperOf(existing, s, valueType) {
			c.diags.Add(stmt, "cannot assign %s to variable '%s' of type %s", valueType.String(), target.Value, existing.String())
		}
		target.SetMooseType(existing)
		return
	}

	if err := s.AddVar(target.Value, valueType, false); err != nil {
		c.diags.AddErr(stmt, err)
	}
	target.SetMooseType(valueType)
}

func (c *Checker) assignTuple(target *ast.Tuple, stmt *ast.AssignStatement, valueType types.Type, s *scope.Scope) {
	tt, ok := valueType.(types.Tuple)
	if !ok || len(tt.Elements) != len(target.Elements) {
		c.diags.Add(stmt, "cannot destructure %s into a %d-element tuple", valueType.String(), len(target.Elements))
		return
	}
	for i, elem := range target.Elements {
		ident, ok := elem.(*ast.Identifier)
		if !ok {
			c.diags.Add(elem, "tuple destructuring targets must be simple names")
			continue
		}
		sub := &ast.AssignStatement{Token: stmt.Token, Mutable: stmt.Mutable}
		c.assignIdentifier(ident, sub, tt.Elements[i], s)
	}
	target.SetMooseType(valueType)
}

func (c *Checker) assignIndex(target *ast.IndexExpression, valueType types.Type, s *scope.Scope) {
	leftType := c.checkExpr(target.Left, s)
	idxType := c.checkExpr(target.Index, s)
	if _, ok := idxType.(types.Integer); !ok {
		c.diags.Add(target.Index, "list index must be Int, got %s", idxType.String())
	}
	lst, ok := leftType.(types.List)
	if !ok {
		c.diags.Add(target.Left, "cannot index into non-list type %s", leftType.String())
		return
	}
	if !types.SuperOf(lst.Element, s, valueType) {
		c.diags.Add(target, "cannot assign %s into a list of %s", valueType.String(), lst.Element.String())
	}
	target.SetMooseType(lst.Element)
}

func (c *Checker) assignDereferer(target *ast.Dereferer, valueType types.Type, s *scope.Scope) {
	objType := c.checkExpr(target.Object, s)
	member, ok := target.Member.(*ast.Identifier)
	if !ok {
		c.diags.Add(target, "dereferer assignment target must be a simple member name")
		return
	}
	cls, ok := objType.(types.Class)
	if !ok {
		c.diags.Add(target, "cannot assign member of non-class type %s", objType.String())
		return
	}
	classScope, ok := s.FindClass(cls.Name)
	if !ok {
		c.diags.Add(target, "unknown class '%s'", cls.Name)
		return
	}
	for _, p := range classScope.Properties {
		if p.Name != member.Value {
			continue
		}
		if !p.Mutable {
			c.diags.Add(target, "cannot assign to immutable property '%s'", member.Value)
		}
		if !types.SuperOf(p.Type, s, valueType) {
			c.diags.Add(target, "cannot assign %s to property '%s' of type %s", valueType.String(), member.Value, p.Type.String())
		}
		target.SetMooseType(p.Type)
		return
	}
	c.diags.Add(target, "class '%s' has no property named '%s'", cls.Name, member.Value)
}
