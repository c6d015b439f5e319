package checker

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/builtins"
	"github.com/moose-lang/moose/internal/config"
	"github.com/moose-lang/moose/internal/dispatch"
	"github.com/moose-lang/moose/internal/scope"
	"github.com/moose-lang/moose/internal/types"
)

func (c *Checker) checkExpr(expr ast.Expression, s *scope.Scope) types.Type {
	var t types.Type
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		t = types.Integer{}
	case *ast.FloatLiteral:
		t = types.Float{}
	case *ast.StringLiteral:
		t = types.String{}
	case *ast.Boolean:
		t = types.Bool{}
	case *ast.NilLiteral:
		t = types.Nil{}
	case *ast.Identifier:
		t = c.checkIdentifier(e, s)
	case *ast.Tuple:
		elems := make([]types.Type, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = c.checkExpr(el, s)
		}
		t = types.Tuple{Elements: elems}
	case *ast.List:
		t = c.checkList(e, s)
	case *ast.Is:
		t = c.checkIs(e, s)
	case *ast.PrefixExpression:
		t = c.checkPrefix(e, s)
	case *ast.InfixExpression:
		t = c.checkInfix(e, s)
	case *ast.PostfixExpression:
		t = c.checkPostfix(e, s)
	case *ast.CallExpression:
		t = c.checkCall(e, s)
	case *ast.Dereferer:
		t = c.checkDerefererRead(e, s)
	case *ast.IndexExpression:
		t = c.checkIndexRead(e, s)
	case *ast.Me:
		t = c.checkMe(e, s)
	default:
		c.diags.Add(expr, "unsupported expression")
		t = types.Void{}
	}
	expr.SetMooseType(t)
	return t
}

func (c *Checker) checkIdentifier(e *ast.Identifier, s *scope.Scope) types.Type {
	if e.Value == config.GlobalAccessor {
		return types.Void{}
	}
	t, ok := s.TypeOf(e.Value)
	if !ok {
		c.diags.Add(e, "undefined variable '%s'", e.Value)
		return types.Nil{}
	}
	return t
}

func (c *Checker) checkList(e *ast.List, s *scope.Scope) types.Type {
	if len(e.Elements) == 0 {
		return types.List{Element: types.Nil{}}
	}
	first := c.checkExpr(e.Elements[0], s)
	for _, el := range e.Elements[1:] {
		t := c.checkExpr(el, s)
		if !types.SuperOf(first, s, t) {
			c.diags.Add(el, "list element type %s doesn't match list of %s", t.String(), first.String())
		}
	}
	return types.List{Element: first}
}

func (c *Checker) checkIs(e *ast.Is, s *scope.Scope) types.Type {
	c.checkExpr(e.Expression, s)
	c.resolveNamedType(e, e.TypeName)
	return types.Bool{}
}

func (c *Checker) checkPrefix(e *ast.PrefixExpression, s *scope.Scope) types.Type {
	rightType := c.checkExpr(e.Right, s)
	ret, err := s.OperatorReturnType(e.Operator, ast.Prefix, []types.Type{rightType})
	if err != nil {
		c.diags.AddErr(e, err)
		return types.Void{}
	}
	return ret
}

func (c *Checker) checkInfix(e *ast.InfixExpression, s *scope.Scope) types.Type {
	leftType := c.checkExpr(e.Left, s)
	rightType := c.checkExpr(e.Right, s)
	ret, err := s.OperatorReturnType(e.Operator, ast.Infix, []types.Type{leftType, rightType})
	if err != nil {
		c.diags.AddErr(e, err)
		return types.Void{}
	}
	return ret
}

func (c *Checker) checkPostfix(e *ast.PostfixExpression, s *scope.Scope) types.Type {
	leftType := c.checkExpr(e.Left, s)
	ret, err := s.OperatorReturnType(e.Operator, ast.Postfix, []types.Type{leftType})
	if err != nil {
		c.diags.AddErr(e, err)
		return types.Void{}
	}
	return ret
}

func (c *Checker) checkMe(e *ast.Me, s *scope.Scope) types.Type {
	if c.currentClass == nil {
		c.diags.Add(e, "'me' used outside a method body")
		return types.Void{}
	}
	return types.Class{Name: c.currentClass.Name}
}

func (c *Checker) checkIndexRead(e *ast.IndexExpression, s *scope.Scope) types.Type {
	leftType := c.checkExpr(e.Left, s)
	idxType := c.checkExpr(e.Index, s)
	if _, ok := idxType.(types.Integer); !ok {
		c.diags.Add(e.Index, "list index must be Int, got %s", idxType.String())
	}
	lst, ok := leftType.(types.List)
	if !ok {
		c.diags.Add(e.Left, "cannot index into non-list type %s", leftType.String())
		return types.Void{}
	}
	return lst.Element
}

// checkDerefererRead handles `object.member` read as a value (not as a
// call): the reserved `global` accessor bypasses class-member lookup
// entirely and reaches straight into the global Scope; otherwise
// member must be a property, or an unambiguous single-overload method
// read as a value.
func (c *Checker) checkDerefererRead(e *ast.Dereferer, s *scope.Scope) types.Type {
	if ident, ok := e.Object.(*ast.Identifier); ok && ident.Value == config.GlobalAccessor {
		member, ok := e.Member.(*ast.Identifier)
		if !ok {
			c.diags.Add(e, "member must be a simple name")
			return types.Void{}
		}
		t, ok := s.Global().TypeOf(member.Value)
		if !ok {
			c.diags.Add(e, "undefined global '%s'", member.Value)
			return types.Nil{}
		}
		return t
	}

	objType := c.checkExpr(e.Object, s)
	member, ok := e.Member.(*ast.Identifier)
	if !ok {
		c.diags.Add(e, "member must be a simple name")
		return types.Void{}
	}
	cls, ok := objType.(types.Class)
	if !ok {
		if kind, isPrim := builtins.ReceiverKind(objType); isPrim {
			e.IsBuiltinMember = true
			entry, errKind := builtins.LookupMember(kind, member.Value, nil)
			switch errKind {
			case dispatch.Found:
				return entry.Return
			case dispatch.Ambiguous:
				c.diags.Add(e, "'%s' is overloaded on %s — call it directly instead of reading it as a value", member.Value, kind)
			default:
				c.diags.Add(e, "%s has no member named '%s'", kind, member.Value)
			}
			return types.Void{}
		}
		c.diags.Add(e, "cannot access member of non-class type %s", objType.String())
		return types.Void{}
	}
	classScope, ok := s.FindClass(cls.Name)
	if !ok {
		c.diags.Add(e, "unknown class '%s'", cls.Name)
		return types.Void{}
	}
	for _, p := range classScope.Properties {
		if p.Name == member.Value {
			return p.Type
		}
	}
	if sigs, ok := classScope.Methods[member.Value]; ok {
		if len(sigs) == 1 {
			return sigs[0].Type()
		}
		if len(sigs) > 1 {
			c.diags.Add(e, "'%s' is overloaded on class '%s' — call it directly instead of reading it as a value", member.Value, cls.Name)
			return types.Void{}
		}
	}
	c.diags.Add(e, "class '%s' has no property or method named '%s'", cls.Name, member.Value)
	return types.Void{}
}

func (c *Checker) checkCall(e *ast.CallExpression, s *scope.Scope) types.Type {
	argTypes := make([]types.Type, len(e.Arguments))
	for i, a := range e.Arguments {
		argTypes[i] = c.checkExpr(a, s)
	}

	if der, ok := e.Function.(*ast.Dereferer); ok {
		return c.checkMethodCall(e, der, argTypes, s)
	}

	if ident, ok := e.Function.(*ast.Identifier); ok {
		if s.HasClass(ident.Value) {
			e.IsConstructor = true
			return c.checkConstructorCall(e, ident.Value, argTypes, s)
		}
		ret, err := s.ReturnType(ident.Value, argTypes)
		if err != nil {
			c.diags.AddErr(e, err)
			return types.Void{}
		}
		return ret
	}

	fnType := c.checkExpr(e.Function, s)
	fn, ok := fnType.(types.Function)
	if !ok {
		c.diags.Add(e, "cannot call a value of type %s", fnType.String())
		return types.Void{}
	}
	if len(fn.Params) != len(argTypes) {
		c.diags.Add(e, "expected %d arguments, got %d", len(fn.Params), len(argTypes))
		return fn.ReturnType
	}
	for i, p := range fn.Params {
		if !types.SuperOf(p.Type, s, argTypes[i]) {
			c.diags.Add(e.Arguments[i], "argument %d: expected %s, got %s", i, p.Type.String(), argTypes[i].String())
		}
	}
	return fn.ReturnType
}

func (c *Checker) checkMethodCall(e *ast.CallExpression, der *ast.Dereferer, argTypes []types.Type, s *scope.Scope) types.Type {
	if ident, ok := der.Object.(*ast.Identifier); ok && ident.Value == config.GlobalAccessor {
		member, ok := der.Member.(*ast.Identifier)
		if !ok {
			c.diags.Add(e, "member must be a simple name")
			return types.Void{}
		}
		ret, err := s.Global().ReturnType(member.Value, argTypes)
		if err != nil {
			c.diags.AddErr(e, err)
			return types.Void{}
		}
		return ret
	}

	objType := c.checkExpr(der.Object, s)
	member, ok := der.Member.(*ast.Identifier)
	if !ok {
		c.diags.Add(e, "member must be a simple name")
		return types.Void{}
	}
	cls, ok := objType.(types.Class)
	if !ok {
		if kind, isPrim := builtins.ReceiverKind(objType); isPrim {
			e.IsBuiltinMember = true
			der.IsBuiltinMember = true
			entry, errKind := builtins.LookupMember(kind, member.Value, argTypes)
			switch errKind {
			case dispatch.Found:
				return entry.Return
			case dispatch.Ambiguous:
				c.diags.Add(e, "ambiguous call to '%s' on %s", member.Value, kind)
			default:
				c.diags.Add(e, "%s has no method '%s' matching these arguments", kind, member.Value)
			}
			return types.Void{}
		}
		c.diags.Add(e, "cannot call method on non-class type %s", objType.String())
		return types.Void{}
	}
	classScope, ok := s.FindClass(cls.Name)
	if !ok {
		c.diags.Add(e, "unknown class '%s'", cls.Name)
		return types.Void{}
	}
	match, kind := dispatch.ResolveOne(classScope.Methods[member.Value], argTypes, s)
	switch kind {
	case dispatch.Found:
		return match.ReturnType
	case dispatch.Ambiguous:
		c.diags.Add(e, "ambiguous call to '%s' on class '%s'", member.Value, cls.Name)
	default:
		c.diags.Add(e, "class '%s' has no method '%s' matching these arguments", cls.Name, member.Value)
	}
	return types.Void{}
}

// checkConstructorCall resolves `ClassName(args)`: the
// default constructor binds positional arguments to the class's
// (flattened) properties in declaration order, e.g. `class A { x: Int };
// class B < A { y: Int }; B(1, 2)` binds x=1, y=2.
// A class that also declares a method literally named after itself uses
// that method as an explicit overloaded constructor instead — dispatched
// by argument types exactly like any other overload — letting a class
// validate or transform its constructor arguments.
func (c *Checker) checkConstructorCall(e *ast.CallExpression, className string, argTypes []types.Type, s *scope.Scope) types.Type {
	classScope, _ := s.FindClass(className)
	if ctors := classScope.Methods[className]; len(ctors) > 0 {
		_, kind := dispatch.ResolveOne(ctors, argTypes, s)
		switch kind {
		case dispatch.Found:
			return types.Class{Name: className}
		case dispatch.Ambiguous:
			c.diags.Add(e, "ambiguous constructor call for class '%s'", className)
		default:
			c.diags.Add(e, "class '%s' has no constructor matching these arguments", className)
		}
		return types.Class{Name: className}
	}

	if len(argTypes) != len(classScope.Properties) {
		c.diags.Add(e, "class '%s' takes %d constructor argument(s), got %d", className, len(classScope.Properties), len(argTypes))
		return types.Class{Name: className}
	}
	for i, prop := range classScope.Properties {
		if !types.SuperOf(prop.Type, s, argTypes[i]) {
			c.diags.Add(e.Arguments[i], "constructor argument %d: expected %s for property '%s', got %s", i, prop.Type.String(), prop.Name, argTypes[i].String())
		}
	}
	return types.Class{Name: className}
}
