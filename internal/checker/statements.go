package checker

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/classflat"
	"github.com/moose-lang/moose/internal/scope"
	"github.com/moose-lang/moose/internal/types"
)

func (c *Checker) checkStatement(stmt ast.Statement, s *scope.Scope) {
	switch st := stmt.(type) {
	case *ast.AssignStatement:
		c.checkAssign(st, s)
	case *ast.ExpressionStatement:
		c.checkExpr(st.Expression, s)
	case *ast.ReturnStatement:
		c.checkReturn(st, s)
	case *ast.BlockStatement:
		c.checkBlock(st, s)
	case *ast.IfStatement:
		c.checkIf(st, s)
	case *ast.FunctionStatement:
		// At global scope exploreProgram already registered the
		// signature; a nested declaration installs here, when reached,
		// exactly like the evaluator's evalStatement.
		if !s.IsGlobal() {
			c.exploreFunction(s, st)
		}
		c.checkFunctionBody(s, st.Params, st.ReturnType, st.Body, nil)
	case *ast.OperationStatement:
		if !s.IsGlobal() {
			c.exploreOperation(s, st)
		}
		c.checkFunctionBody(s, st.Params, st.ReturnType, st.Body, nil)
	case *ast.ClassStatement:
		if !s.IsGlobal() {
			if _, err := s.AddClass(st.Name, st.SuperClass); err != nil {
				c.diags.AddErr(st, err)
			}
			c.exploreClassBody(s, st)
			if cs, ok := s.FindClass(st.Name); ok {
				if err := classflat.Flatten(s, cs); err != nil {
					c.diags.Add(st, "%s", err.Error())
				}
			}
		}
		c.checkClassBody(s, st)
	}
}

// checkBlock opens a new scope for a standalone block and checks its
// statements in order. Nested declarations are NOT hoisted: they take
// effect at the statement that declares them, matching the evaluator's
// install-on-reach behavior so a program never type-checks against a
// binding the runtime hasn't created yet.
func (c *Checker) checkBlock(block *ast.BlockStatement, parent *scope.Scope) *scope.Scope {
	inner := scope.NewEnclosed(parent)
	for _, stmt := range block.Statements {
		c.checkStatement(stmt, inner)
	}
	return inner
}

// checkStatementsIn checks a block's statements directly in s, WITHOUT
// opening a further nested scope — used for function/method/if bodies,
// which already got their own fresh scope from the caller.
func (c *Checker) checkStatementsIn(block *ast.BlockStatement, s *scope.Scope) {
	for _, stmt := range block.Statements {
		c.checkStatement(stmt, s)
	}
}

func (c *Checker) checkIf(stmt *ast.IfStatement, s *scope.Scope) {
	condType := c.checkExpr(stmt.Condition, s)
	if _, ok := condType.(types.Bool); !ok {
		c.diags.Add(stmt.Condition, "if condition must be Bool, got %s", condType.String())
	}
	cons := scope.NewEnclosed(s)
	c.checkStatementsIn(stmt.Consequence, cons)
	if stmt.Alternative != nil {
		alt := scope.NewEnclosed(s)
		c.checkStatementsIn(stmt.Alternative, alt)
	}
}

func (c *Checker) checkReturn(stmt *ast.ReturnStatement, s *scope.Scope) {
	var got types.Type = types.Void{}
	if stmt.ReturnValue != nil {
		got = c.checkExpr(stmt.ReturnValue, s)
	}
	if c.expectedReturn == nil {
		c.diags.Add(stmt, "return statement outside a function/operator body")
		return
	}
	if _, isVoid := c.expectedReturn.(types.Void); isVoid {
		return
	}
	if !types.SuperOf(c.expectedReturn, s, got) {
		c.diags.Add(stmt, "return type mismatch: expected %s, got %s", c.expectedReturn.String(), got.String())
	}
}

// checkFunctionBody type-checks a function/operator/constructor body in a
// fresh scope with params bound, tracking the expected return type for
// nested ReturnStatements. ownerClass is non-nil when checking a method
// or operator declared inside a class (so `me` resolves).
func (c *Checker) checkFunctionBody(parent *scope.Scope, params []*ast.VariableDefinition, retTE *ast.TypeExpr, body *ast.BlockStatement, ownerClass *scope.ClassScope) {
	fnScope := scope.NewEnclosed(parent)
	for _, p := range params {
		if err := fnScope.AddVar(p.Name, c.resolveType(p.DeclaredType), p.Mutable); err != nil {
			c.diags.AddErr(p, err)
		}
	}
	ret := c.resolveType(retTE)

	prevReturn, prevClass := c.expectedReturn, c.currentClass
	c.expectedReturn = ret
	if ownerClass != nil {
		c.currentClass = ownerClass
	}
	c.checkStatementsIn(body, fnScope)
	c.expectedReturn, c.currentClass = prevReturn, prevClass
}

// checkClassBody checks every method/operator body against a scope
// that mirrors the instance environment the runtime rebinds their
// closures to: the class's flattened properties and sibling members are
// reachable by bare name. Flattening has already run, so the tables are
// duplicate-free and the add calls below cannot fail.
func (c *Checker) checkClassBody(s *scope.Scope, stmt *ast.ClassStatement) {
	cs, ok := s.FindClass(stmt.Name)
	if !ok {
		return
	}
	classScope := scope.NewEnclosed(s)
	classScope.SetOwnerClass(cs)
	for _, p := range cs.Properties {
		_ = classScope.AddVar(p.Name, p.Type, p.Mutable)
	}
	for _, sigs := range cs.Methods {
		for _, sig := range sigs {
			_ = classScope.AddFunction(sig.Name, sig.Params, sig.ReturnType)
		}
	}
	for pos, byName := range cs.Operators {
		for _, sigs := range byName {
			for _, sig := range sigs {
				_ = classScope.AddOperator(sig.Name, pos, sig.Params, sig.ReturnType)
			}
		}
	}
	for _, m := range stmt.Methods {
		c.checkFunctionBody(classScope, m.Params, m.ReturnType, m.Body, cs)
	}
	for _, op := range stmt.Operators {
		c.checkFunctionBody(classScope, op.Params, op.ReturnType, op.Body, cs)
	}
}
