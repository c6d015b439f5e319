package evaluator

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/object"
)

// evalStatement dispatches one statement. It returns the
// statement's value (an ExpressionStatement's value; for a Block or an
// If, the value of the last statement it ran; every other kind yields
// object.Void{} as a harmless placeholder), a non-nil
// signal when a Return was hit inside it, and any Panic.
func (e *Evaluator) evalStatement(stmt ast.Statement, env *object.Environment) (object.Object, *signal, *object.Panic) {
	switch st := stmt.(type) {
	case *ast.AssignStatement:
		if p := e.evalAssign(st, env); p != nil {
			return nil, nil, p
		}
		return object.Void{}, nil, nil

	case *ast.ExpressionStatement:
		v, p := e.evalExpression(st.Expression, env)
		if p != nil {
			return nil, nil, p
		}
		return v, nil, nil

	case *ast.ReturnStatement:
		return e.evalReturn(st, env)

	case *ast.BlockStatement:
		return e.evalBlock(st, env)

	case *ast.IfStatement:
		return e.evalIf(st, env)

	case *ast.FunctionStatement:
		// At global scope this is a no-op: Explore already registered it
		// before any statement ran.
		if !env.IsGlobal() {
			env.DefineFunction(functionValue(st, env))
		}
		return object.Void{}, nil, nil

	case *ast.OperationStatement:
		if !env.IsGlobal() {
			env.DefineOperator(operatorValue(st, env))
		}
		return object.Void{}, nil, nil

	case *ast.ClassStatement:
		e.evalClassStatement(st, env)
		return object.Void{}, nil, nil

	default:
		return nil, nil, object.NewPanic(object.Generic, "unsupported statement").WithFrame(stmt)
	}
}

// evalStatementsIn runs stmts directly in env, without pushing a fresh
// child (used both for a function/operator call frame, which already IS
// the fresh child, and for the top-level Program). Execution stops at the
// first Return signal or Panic.
func (e *Evaluator) evalStatementsIn(stmts []ast.Statement, env *object.Environment) (object.Object, *signal, *object.Panic) {
	var result object.Object = object.Void{}
	for _, stmt := range stmts {
		v, sig, p := e.evalStatement(stmt, env)
		if p != nil {
			return nil, nil, p
		}
		if sig != nil {
			return v, sig, nil
		}
		result = v
	}
	return result, nil, nil
}

// evalBlock pushes a fresh child environment and runs the block's
// statements in it.
func (e *Evaluator) evalBlock(block *ast.BlockStatement, parent *object.Environment) (object.Object, *signal, *object.Panic) {
	inner := object.NewEnclosedEnvironment(parent)
	return e.evalStatementsIn(block.Statements, inner)
}

func (e *Evaluator) evalReturn(stmt *ast.ReturnStatement, env *object.Environment) (object.Object, *signal, *object.Panic) {
	if stmt.ReturnValue == nil {
		return object.Void{}, &signal{value: object.Void{}}, nil
	}
	val, p := e.evalExpression(stmt.ReturnValue, env)
	if p != nil {
		return nil, nil, p.WithFrame(stmt)
	}
	return object.Void{}, &signal{value: val}, nil
}

func (e *Evaluator) evalIf(stmt *ast.IfStatement, env *object.Environment) (object.Object, *signal, *object.Panic) {
	condVal, p := e.evalExpression(stmt.Condition, env)
	if p != nil {
		return nil, nil, p.WithFrame(stmt)
	}
	b, ok := condVal.(*object.Bool)
	if !ok {
		return nil, nil, object.NewPanic(object.Generic, "if condition did not evaluate to Bool").WithFrame(stmt)
	}
	if b.IsNil {
		return nil, nil, object.NewNilUsage("if condition").WithFrame(stmt)
	}
	if b.Value {
		return e.evalBlock(stmt.Consequence, env)
	}
	if stmt.Alternative != nil {
		return e.evalBlock(stmt.Alternative, env)
	}
	return object.Void{}, nil, nil
}

// evalClassStatement handles a class declaration reached at a non-global
// scope: registered and filled right here, lazily. At
// global scope it's a no-op — Explore already did this before the first
// statement ran.
func (e *Evaluator) evalClassStatement(stmt *ast.ClassStatement, env *object.Environment) {
	if env.IsGlobal() {
		return
	}
	env.AddClassTemplate(stmt.Name, stmt.SuperClass)
	e.fillClassTemplate(env, stmt)
}
