package evaluator

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/builtins"
	"github.com/moose-lang/moose/internal/config"
	"github.com/moose-lang/moose/internal/dispatch"
	"github.com/moose-lang/moose/internal/object"
	"github.com/moose-lang/moose/internal/types"
)

// evalExpression dispatches one expression.
func (e *Evaluator) evalExpression(expr ast.Expression, env *object.Environment) (object.Object, *object.Panic) {
	switch ex := expr.(type) {
	case *ast.IntegerLiteral:
		return &object.Integer{Value: ex.Value}, nil
	case *ast.FloatLiteral:
		return &object.Float{Value: ex.Value}, nil
	case *ast.StringLiteral:
		return &object.String{Value: ex.Value}, nil
	case *ast.Boolean:
		return &object.Bool{Value: ex.Value}, nil
	case *ast.NilLiteral:
		return object.Nil{}, nil
	case *ast.Identifier:
		return e.evalIdentifier(ex, env)
	case *ast.Tuple:
		return e.evalTuple(ex, env)
	case *ast.List:
		return e.evalList(ex, env)
	case *ast.Is:
		return e.evalIs(ex, env)
	case *ast.PrefixExpression:
		return e.evalPrefix(ex, env)
	case *ast.InfixExpression:
		return e.evalInfix(ex, env)
	case *ast.PostfixExpression:
		return e.evalPostfix(ex, env)
	case *ast.CallExpression:
		return e.evalCall(ex, env)
	case *ast.Dereferer:
		return e.evalDereferer(ex, env)
	case *ast.IndexExpression:
		return e.evalIndex(ex, env)
	case *ast.Me:
		return e.evalMe(ex, env)
	default:
		return nil, object.NewPanic(object.Generic, "unsupported expression").WithFrame(expr)
	}
}

func (e *Evaluator) evalIdentifier(ident *ast.Identifier, env *object.Environment) (object.Object, *object.Panic) {
	if ident.Value == config.GlobalAccessor {
		// Only meaningful as the receiver of a Dereferer; the checker
		// accepts a bare `global` as Void, so mirror that here.
		return object.Void{}, nil
	}
	if val, ok := env.Get(ident.Value); ok {
		return val, nil
	}
	return nil, object.NewNotFound("variable", ident.Value).WithFrame(ident)
}

func (e *Evaluator) evalTuple(t *ast.Tuple, env *object.Environment) (object.Object, *object.Panic) {
	elems := make([]object.Object, len(t.Elements))
	elemTypes := make([]types.Type, len(t.Elements))
	for i, el := range t.Elements {
		v, p := e.evalExpression(el, env)
		if p != nil {
			return nil, p.WithFrame(t)
		}
		elems[i] = v
		elemTypes[i] = el.MooseType()
	}
	return &object.Tuple{ElemTypes: elemTypes, Elements: elems}, nil
}

func (e *Evaluator) evalList(l *ast.List, env *object.Environment) (object.Object, *object.Panic) {
	elems := make([]object.Object, len(l.Elements))
	for i, el := range l.Elements {
		v, p := e.evalExpression(el, env)
		if p != nil {
			return nil, p.WithFrame(l)
		}
		elems[i] = v
	}
	elemType := types.Type(types.Nil{})
	if lt, ok := l.MooseType().(types.List); ok {
		elemType = lt.Element
	}
	return &object.List{ElemType: elemType, Elements: elems}, nil
}

// evalIs evaluates `expr is T`: a class instance checks its
// runtime class's ancestor chain; any other value compares its printable
// type form against the named type.
func (e *Evaluator) evalIs(is *ast.Is, env *object.Environment) (object.Object, *object.Panic) {
	val, p := e.evalExpression(is.Expression, env)
	if p != nil {
		return nil, p.WithFrame(is)
	}
	if inst, ok := val.(*object.ClassInstance); ok {
		return &object.Bool{Value: env.IsAncestor(is.TypeName, inst.ClassName)}, nil
	}
	return &object.Bool{Value: val.RuntimeType().String() == is.TypeName}, nil
}

// withArgsUnclosed temporarily clears env's closed flag so operand
// expressions see enclosing lexical scopes even while resolving an
// operator from within a member-access context.
func withArgsUnclosed(env *object.Environment) func() {
	return env.WithClosed(false)
}

func (e *Evaluator) evalPrefix(pe *ast.PrefixExpression, env *object.Environment) (object.Object, *object.Panic) {
	restore := withArgsUnclosed(env)
	right, p := e.evalExpression(pe.Right, env)
	restore()
	if p != nil {
		return nil, p.WithFrame(pe)
	}
	fn, err := env.ResolveOperator(pe.Operator, ast.Prefix, []types.Type{pe.Right.MooseType()})
	if err != nil {
		return nil, panicFromLookupErr(err).WithFrame(pe)
	}
	return e.callFuncValue(fn, []object.Object{right}, pe)
}

func (e *Evaluator) evalInfix(inf *ast.InfixExpression, env *object.Environment) (object.Object, *object.Panic) {
	restore := withArgsUnclosed(env)
	left, p := e.evalExpression(inf.Left, env)
	if p != nil {
		restore()
		return nil, p.WithFrame(inf)
	}
	right, p2 := e.evalExpression(inf.Right, env)
	restore()
	if p2 != nil {
		return nil, p2.WithFrame(inf)
	}
	argTypes := []types.Type{inf.Left.MooseType(), inf.Right.MooseType()}
	fn, err := env.ResolveOperator(inf.Operator, ast.Infix, argTypes)
	if err != nil {
		return nil, panicFromLookupErr(err).WithFrame(inf)
	}
	return e.callFuncValue(fn, []object.Object{left, right}, inf)
}

func (e *Evaluator) evalPostfix(pe *ast.PostfixExpression, env *object.Environment) (object.Object, *object.Panic) {
	restore := withArgsUnclosed(env)
	left, p := e.evalExpression(pe.Left, env)
	restore()
	if p != nil {
		return nil, p.WithFrame(pe)
	}
	fn, err := env.ResolveOperator(pe.Operator, ast.Postfix, []types.Type{pe.Left.MooseType()})
	if err != nil {
		return nil, panicFromLookupErr(err).WithFrame(pe)
	}
	return e.callFuncValue(fn, []object.Object{left}, pe)
}

func (e *Evaluator) evalIndex(ie *ast.IndexExpression, env *object.Environment) (object.Object, *object.Panic) {
	leftVal, p := e.evalExpression(ie.Left, env)
	if p != nil {
		return nil, p.WithFrame(ie)
	}
	idxVal, p2 := e.evalExpression(ie.Index, env)
	if p2 != nil {
		return nil, p2.WithFrame(ie)
	}
	lst, ok := leftVal.(*object.List)
	if !ok || lst.IsNil {
		return nil, object.NewNilUsage("list").WithFrame(ie)
	}
	idx, ok := idxVal.(*object.Integer)
	if !ok || idx.IsNil {
		return nil, object.NewNilUsage("index").WithFrame(ie)
	}
	n := len(lst.Elements)
	i := int(idx.Value)
	real := i
	if real < 0 {
		real += n
	}
	if real < 0 || real >= n {
		return nil, object.NewOutOfBounds(n, i).WithFrame(ie)
	}
	return lst.Elements[real], nil
}

func (e *Evaluator) evalMe(m *ast.Me, env *object.Environment) (object.Object, *object.Panic) {
	if val, ok := env.Me(); ok {
		return val, nil
	}
	return nil, object.NewPanic(object.Generic, "'me' used outside a method body").WithFrame(m)
}

// evalDereferer reads `object.member` as a value, not a call: the
// reserved `global` accessor bypasses instance-environment lookup
// entirely; otherwise the object is evaluated once, nil-checked,
// and — for a class instance — the member is looked up with the
// environment temporarily switched to the instance's own and closed set,
// always restored afterward.
func (e *Evaluator) evalDereferer(d *ast.Dereferer, env *object.Environment) (object.Object, *object.Panic) {
	if ident, ok := d.Object.(*ast.Identifier); ok && ident.Value == config.GlobalAccessor {
		member, ok := d.Member.(*ast.Identifier)
		if !ok {
			return nil, object.NewPanic(object.Generic, "member must be a simple name").WithFrame(d)
		}
		g := env.Global()
		if val, ok := g.Get(member.Value); ok {
			return val, nil
		}
		return nil, object.NewNotFound("global", member.Value).WithFrame(d)
	}

	objVal, p := e.evalExpression(d.Object, env)
	if p != nil {
		return nil, p.WithFrame(d)
	}
	member, ok := d.Member.(*ast.Identifier)
	if !ok {
		return nil, object.NewPanic(object.Generic, "member must be a simple name").WithFrame(d)
	}

	if inst, ok := objVal.(*object.ClassInstance); ok {
		if inst.IsNil {
			return nil, object.NewNilUsage(member.Value).WithFrame(d)
		}
		restore := inst.Env.WithClosed(true)
		val, found := inst.Env.Get(member.Value)
		fns := inst.Env.FunctionOverloads(member.Value)
		restore()
		if found {
			return val, nil
		}
		if len(fns) == 1 {
			return fns[0], nil
		}
		return nil, object.NewNotFound("member", member.Value).WithFrame(d)
	}

	if object.IsNilValue(objVal) {
		return nil, object.NewNilUsage(member.Value).WithFrame(d)
	}
	kind, isPrim := builtins.ReceiverKind(objVal.RuntimeType())
	if !isPrim {
		return nil, object.NewPanic(object.Generic, "cannot access member of non-class value").WithFrame(d)
	}
	entry, errKind := builtins.LookupMember(kind, member.Value, nil)
	if errKind != dispatch.Found {
		return nil, object.NewNotFound("member", member.Value).WithFrame(d)
	}
	res, bp := entry.Fn([]object.Object{objVal})
	if bp != nil {
		return nil, bp.WithFrame(d)
	}
	return res, nil
}
