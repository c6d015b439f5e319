package checker

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/classflat"
	"github.com/moose-lang/moose/internal/scope"
	"github.com/moose-lang/moose/internal/types"
)

// exploreProgram performs the global-exploration pass: it
// registers every top-level class, function, and operator BEFORE any body
// is checked, so mutually forward-referencing top-level declarations
// resolve regardless of source order. Declarations inside nested blocks
// are not hoisted: checkStatement installs each one when it is reached.
func (c *Checker) exploreProgram(program *ast.Program) {
	for _, stmt := range program.Statements {
		if cs, ok := stmt.(*ast.ClassStatement); ok {
			if _, err := c.root.AddClass(cs.Name, cs.SuperClass); err != nil {
				c.diags.AddErr(cs, err)
			}
		}
	}
	for _, stmt := range program.Statements {
		switch s := stmt.(type) {
		case *ast.FunctionStatement:
			c.exploreFunction(c.root, s)
		case *ast.OperationStatement:
			c.exploreOperation(c.root, s)
		case *ast.ClassStatement:
			c.exploreClassBody(c.root, s)
		}
	}
	for _, err := range classflat.FlattenAll(c.root, c.root.Classes()) {
		c.diags.Add(program, "%s", err.Error())
	}
}

func (c *Checker) exploreFunction(s *scope.Scope, stmt *ast.FunctionStatement) {
	params := c.paramTypes(stmt.Params)
	ret := c.resolveType(stmt.ReturnType)
	if err := s.AddFunction(stmt.Name, params, ret); err != nil {
		c.diags.AddErr(stmt, err)
	}
}

func (c *Checker) exploreOperation(s *scope.Scope, stmt *ast.OperationStatement) {
	params := c.paramTypes(stmt.Params)
	ret := c.resolveType(stmt.ReturnType)
	if err := s.AddOperator(stmt.Name, stmt.Position, params, ret); err != nil {
		c.diags.AddErr(stmt, err)
	}
}

// exploreClassBody populates a (already AddClass-registered) ClassScope's
// own properties/methods/operators. Called once per class, either at
// global scope (exploreProgram) or by checkStatement when a nested class
// declaration is reached.
func (c *Checker) exploreClassBody(s *scope.Scope, stmt *ast.ClassStatement) {
	cs, ok := s.FindClass(stmt.Name)
	if !ok {
		return
	}
	for _, prop := range stmt.Properties {
		cs.Properties = append(cs.Properties, scope.PropertyDecl{
			Name: prop.Name, Type: c.resolveType(prop.DeclaredType), Mutable: prop.Mutable,
		})
	}
	for _, m := range stmt.Methods {
		params := c.paramTypes(m.Params)
		ret := c.resolveType(m.ReturnType)
		cs.Methods[m.Name] = append(cs.Methods[m.Name], scope.FuncSig{Name: m.Name, Params: params, ReturnType: ret})
	}
	for _, op := range stmt.Operators {
		params := c.paramTypes(op.Params)
		ret := c.resolveType(op.ReturnType)
		if cs.Operators[op.Position] == nil {
			cs.Operators[op.Position] = make(map[string][]scope.FuncSig)
		}
		cs.Operators[op.Position][op.Name] = append(cs.Operators[op.Position][op.Name], scope.FuncSig{
			Name: op.Name, Position: op.Position, Params: params, ReturnType: ret,
		})
	}
}

func (c *Checker) paramTypes(params []*ast.VariableDefinition) []types.Type {
	out := make([]types.Type, len(params))
	for i, p := range params {
		out[i] = c.resolveType(p.DeclaredType)
	}
	return out
}
