package evaluator

import (
	"fmt"

	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/builtins"
	"github.com/moose-lang/moose/internal/config"
	"github.com/moose-lang/moose/internal/dispatch"
	"github.com/moose-lang/moose/internal/object"
	"github.com/moose-lang/moose/internal/scope"
	"github.com/moose-lang/moose/internal/types"
)

// panicFromLookupErr translates the scope package's lookup errors
// (reused by object.Environment's own ResolveFunction/ResolveOperator, so
// the type-checking and runtime sides share one vocabulary) into the
// runtime's Panic-as-value representation.
func panicFromLookupErr(err error) *object.Panic {
	switch v := err.(type) {
	case *scope.AmbiguityError:
		return object.NewAmbiguity(v.Name)
	case *scope.NotFoundError:
		return object.NewNotFound(v.Kind, v.Name)
	default:
		return object.NewPanic(object.Generic, err.Error())
	}
}

// evalCall evaluates every argument once (left to right, in the
// caller's own environment) before any dispatch happens, then routes to
// a constructor, a method call, a named function, or a first-class
// function value depending on what Function resolved to.
func (e *Evaluator) evalCall(ce *ast.CallExpression, env *object.Environment) (object.Object, *object.Panic) {
	args := make([]object.Object, len(ce.Arguments))
	argTypes := make([]types.Type, len(ce.Arguments))
	for i, a := range ce.Arguments {
		v, p := e.evalExpression(a, env)
		if p != nil {
			return nil, p.WithFrame(ce)
		}
		args[i] = v
		argTypes[i] = a.MooseType()
	}

	if ce.IsConstructor {
		ident := ce.Function.(*ast.Identifier)
		return e.evalConstructorCall(ident.Value, args, argTypes, env, ce)
	}

	if der, ok := ce.Function.(*ast.Dereferer); ok {
		return e.evalMethodCall(der, args, argTypes, env, ce)
	}

	if ident, ok := ce.Function.(*ast.Identifier); ok {
		fn, err := env.ResolveFunction(ident.Value, argTypes)
		if err != nil {
			return nil, panicFromLookupErr(err).WithFrame(ce)
		}
		return e.callFuncValue(fn, args, ce)
	}

	fnVal, p := e.evalExpression(ce.Function, env)
	if p != nil {
		return nil, p.WithFrame(ce)
	}
	fn, ok := fnVal.(object.FuncValue)
	if !ok {
		return nil, object.NewPanic(object.Generic, "cannot call a non-function value").WithFrame(ce)
	}
	return e.callFuncValue(fn, args, ce)
}

// evalConstructorCall constructs a class instance: when the class
// declares a method named after itself, that method is resolved by
// argument types like any other overload and invoked on a freshly
// instantiated (nil-defaulted) instance; otherwise positional arguments
// bind directly to the flattened properties in declaration order.
func (e *Evaluator) evalConstructorCall(className string, args []object.Object, argTypes []types.Type, env *object.Environment, node ast.Node) (object.Object, *object.Panic) {
	ct, ok := env.FindClassTemplate(className)
	if !ok {
		return nil, object.NewNotFound("class", className).WithFrame(node)
	}
	object.FlattenTemplate(env.Global(), ct)

	if len(ct.Methods[className]) > 0 {
		instance, p := object.Instantiate(env.Global(), ct, nil, e.evalInitExpr)
		if p != nil {
			return nil, p.WithFrame(node)
		}
		restore := instance.Env.WithClosed(true)
		fn, err := instance.Env.ResolveFunction(className, argTypes)
		restore()
		if err != nil {
			return nil, panicFromLookupErr(err).WithFrame(node)
		}
		if _, p := e.callFuncValue(fn, args, node); p != nil {
			return nil, p
		}
		return instance, nil
	}

	if len(args) != len(ct.PropertyOrder) {
		return nil, object.NewPanic(object.Generic, fmt.Sprintf(
			"class '%s' takes %d constructor argument(s), got %d", className, len(ct.PropertyOrder), len(args),
		)).WithFrame(node)
	}
	instance, p := object.Instantiate(env.Global(), ct, args, e.evalInitExpr)
	if p != nil {
		return nil, p.WithFrame(node)
	}
	return instance, nil
}

func (e *Evaluator) evalInitExpr(expr ast.Expression, env *object.Environment) (object.Object, *object.Panic) {
	return e.evalExpression(expr, env)
}

// evalMethodCall handles a call whose callee is a member access:
// `global.f(...)`, a primitive built-in member call, or a class
// instance method call.
func (e *Evaluator) evalMethodCall(der *ast.Dereferer, args []object.Object, argTypes []types.Type, env *object.Environment, node ast.Node) (object.Object, *object.Panic) {
	if ident, ok := der.Object.(*ast.Identifier); ok && ident.Value == config.GlobalAccessor {
		member, ok := der.Member.(*ast.Identifier)
		if !ok {
			return nil, object.NewPanic(object.Generic, "member must be a simple name").WithFrame(node)
		}
		g := env.Global()
		fn, err := g.ResolveFunction(member.Value, argTypes)
		if err != nil {
			return nil, panicFromLookupErr(err).WithFrame(node)
		}
		return e.callFuncValue(fn, args, node)
	}

	objVal, p := e.evalExpression(der.Object, env)
	if p != nil {
		return nil, p.WithFrame(node)
	}
	member, ok := der.Member.(*ast.Identifier)
	if !ok {
		return nil, object.NewPanic(object.Generic, "member must be a simple name").WithFrame(node)
	}

	if der.IsBuiltinMember {
		if object.IsNilValue(objVal) {
			return nil, object.NewNilUsage(member.Value).WithFrame(node)
		}
		kind, _ := builtins.ReceiverKind(objVal.RuntimeType())
		entry, errKind := builtins.LookupMember(kind, member.Value, argTypes)
		if errKind != dispatch.Found {
			return nil, object.NewNotFound("member", member.Value).WithFrame(node)
		}
		full := make([]object.Object, 0, len(args)+1)
		full = append(full, objVal)
		full = append(full, args...)
		res, bp := entry.Fn(full)
		if bp != nil {
			return nil, bp.WithFrame(node)
		}
		return res, nil
	}

	inst, ok := objVal.(*object.ClassInstance)
	if !ok {
		return nil, object.NewPanic(object.Generic, "cannot call a method on a non-class value").WithFrame(node)
	}
	if inst.IsNil {
		return nil, object.NewNilUsage(member.Value).WithFrame(node)
	}
	restore := inst.Env.WithClosed(true)
	fn, err := inst.Env.ResolveFunction(member.Value, argTypes)
	restore()
	if err != nil {
		return nil, panicFromLookupErr(err).WithFrame(node)
	}
	return e.callFuncValue(fn, args, node)
}

// retypeNilArgs replaces a raw nil-literal argument with a typed nil of
// the callee's declared parameter type, mirroring invokeUserFunc's own
// parameter binding — a built-in's native closure asserts its operand's
// concrete value shape, so a bare object.Nil must arrive as e.g. a
// nil-slotted Integer.
func retypeNilArgs(args []object.Object, params []types.Type) []object.Object {
	for i, a := range args {
		if _, raw := a.(object.Nil); raw {
			args[i] = object.NilValueOf(params[i])
		}
	}
	return args
}

// callFuncValue invokes any resolved FuncValue. Built-ins are native
// Go closures with no Environment of their own to switch into —
// activating a closure and clearing its closed flag only matters for a
// body written in Moose itself, so that happens exclusively in the
// *Function/*Operator cases below.
func (e *Evaluator) callFuncValue(fn object.FuncValue, args []object.Object, node ast.Node) (object.Object, *object.Panic) {
	switch v := fn.(type) {
	case *object.BuiltinFunction:
		res, p := v.Fn(retypeNilArgs(args, v.Params))
		if p != nil {
			return nil, p.WithFrame(node)
		}
		return res, nil
	case *object.BuiltinOperator:
		res, p := v.Fn(retypeNilArgs(args, v.Params))
		if p != nil {
			return nil, p.WithFrame(node)
		}
		return res, nil
	case *object.Function:
		return e.invokeUserFunc(v.Env, v.Params, v.Body, args, node)
	case *object.Operator:
		return e.invokeUserFunc(v.Env, v.Params, v.Body, args, node)
	default:
		return nil, object.NewPanic(object.Generic, "uncallable value").WithFrame(node)
	}
}

// invokeUserFunc runs a user-defined function/operator's call
// protocol: activate the callee's captured
// closure, clear closed, push a fresh frame, bind parameters (retyping a
// nil argument to its declared type), run the body, and unconditionally
// restore the closure's closed flag on every exit path — including a
// propagating Panic.
func (e *Evaluator) invokeUserFunc(closure *object.Environment, params []object.Param, body *ast.BlockStatement, args []object.Object, node ast.Node) (object.Object, *object.Panic) {
	restore := closure.WithClosed(false)
	defer restore()

	callEnv := object.NewEnclosedEnvironment(closure)
	for i, prm := range params {
		val := args[i]
		if object.IsNilValue(val) {
			val = object.NilValueOf(prm.Type)
		}
		callEnv.Define(prm.Name, val, true)
	}

	_, sig, p := e.evalStatementsIn(body.Statements, callEnv)
	if p != nil {
		return nil, p.WithFrame(node)
	}
	if sig != nil {
		return sig.value, nil
	}
	return object.Void{}, nil
}
