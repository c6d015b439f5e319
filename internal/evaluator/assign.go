package evaluator

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/object"
)

// evalAssign evaluates the right-hand side once and dispatches on the
// target's AST shape.
func (e *Evaluator) evalAssign(stmt *ast.AssignStatement, env *object.Environment) *object.Panic {
	val, p := e.evalExpression(stmt.Value, env)
	if p != nil {
		return p.WithFrame(stmt)
	}
	switch target := stmt.Target.(type) {
	case *ast.Identifier:
		e.assignIdentifierTarget(target, stmt, val, env)
		return nil
	case *ast.Tuple:
		return e.assignTupleTarget(target, stmt, val, env)
	case *ast.IndexExpression:
		return e.assignIndexTarget(target, val, env)
	case *ast.Dereferer:
		return e.assignFieldTarget(target, val, env)
	default:
		return object.NewPanic(object.Generic, "invalid assignment target").WithFrame(stmt)
	}
}

// assignIdentifierTarget mirrors checker.assignIdentifier's two paths: a
// `mut` or explicitly-typed assignment always declares fresh in the
// current environment (possibly shadowing an outer binding of the same
// name); a plain `a = v` tries to mutate an existing reachable binding
// first, falling back to a fresh immutable declaration only if none is
// found. A nil value is retyped to the target's checker-resolved type
// before being stored.
func (e *Evaluator) assignIdentifierTarget(target *ast.Identifier, stmt *ast.AssignStatement, val object.Object, env *object.Environment) {
	if object.IsNilValue(val) {
		val = object.NilValueOf(target.MooseType())
	}
	if stmt.Mutable || stmt.DeclaredType != nil {
		env.Define(target.Value, val, stmt.Mutable)
		return
	}
	if env.Assign(target.Value, val) {
		return
	}
	env.Define(target.Value, val, false)
}

func (e *Evaluator) assignTupleTarget(target *ast.Tuple, stmt *ast.AssignStatement, val object.Object, env *object.Environment) *object.Panic {
	tup, ok := val.(*object.Tuple)
	if !ok || len(tup.Elements) != len(target.Elements) {
		return object.NewPanic(object.Generic, "cannot destructure value into tuple target").WithFrame(target)
	}
	// Mirrors checker.assignTuple's synthetic per-element AssignStatement:
	// only Mutable carries over, never the tuple's own DeclaredType.
	elemStmt := &ast.AssignStatement{Token: stmt.Token, Mutable: stmt.Mutable}
	for i, el := range target.Elements {
		ident, ok := el.(*ast.Identifier)
		if !ok {
			return object.NewPanic(object.Generic, "tuple assignment targets must be simple names").WithFrame(el)
		}
		e.assignIdentifierTarget(ident, elemStmt, tup.Elements[i], env)
	}
	return nil
}

func (e *Evaluator) assignIndexTarget(target *ast.IndexExpression, val object.Object, env *object.Environment) *object.Panic {
	leftVal, p := e.evalExpression(target.Left, env)
	if p != nil {
		return p.WithFrame(target)
	}
	idxVal, p2 := e.evalExpression(target.Index, env)
	if p2 != nil {
		return p2.WithFrame(target)
	}
	lst, ok := leftVal.(*object.List)
	if !ok || lst.IsNil {
		return object.NewNilUsage("list").WithFrame(target)
	}
	idx, ok := idxVal.(*object.Integer)
	if !ok || idx.IsNil {
		return object.NewNilUsage("index").WithFrame(target)
	}
	n := len(lst.Elements)
	i := int(idx.Value)
	real := i
	if real < 0 {
		real += n
	}
	if real < 0 || real >= n {
		return object.NewOutOfBounds(n, i).WithFrame(target)
	}
	if object.IsNilValue(val) {
		val = object.NilValueOf(target.MooseType())
	}
	lst.Elements[real] = val
	return nil
}

// assignFieldTarget assigns `object.field = value`: evaluate the object once, switch to its
// instance environment with closed set, update the property binding in
// place, and always restore.
func (e *Evaluator) assignFieldTarget(target *ast.Dereferer, val object.Object, env *object.Environment) *object.Panic {
	objVal, p := e.evalExpression(target.Object, env)
	if p != nil {
		return p.WithFrame(target)
	}
	inst, ok := objVal.(*object.ClassInstance)
	if !ok || inst.IsNil {
		return object.NewNilUsage("object").WithFrame(target)
	}
	member, ok := target.Member.(*ast.Identifier)
	if !ok {
		return object.NewPanic(object.Generic, "member must be a simple name").WithFrame(target)
	}
	if object.IsNilValue(val) {
		val = object.NilValueOf(target.MooseType())
	}
	restore := inst.Env.WithClosed(true)
	defer restore()
	if inst.Env.Assign(member.Value, val) {
		return nil
	}
	inst.Env.Define(member.Value, val, true)
	return nil
}
