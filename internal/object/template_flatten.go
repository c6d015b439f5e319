package object

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/dispatch"
)

// FlattenTemplate merges ct's superclass chain into ct itself, the runtime twin of
// classflat.Flatten: own properties/methods/operators win over inherited
// ones of the identical signature, everything else is just unioned in.
// Idempotent and cycle-guarded exactly like the type-side pass — the
// checker already rejected inheritance cycles and property/override
// conflicts, so this never needs to report an error.
func FlattenTemplate(root *Environment, ct *ClassTemplate) {
	if ct.Flattened {
		return
	}
	if ct.IsFlattening() {
		return
	}
	ct.SetFlattening(true)
	defer ct.SetFlattening(false)

	if ct.SuperClassName != "" {
		if super, ok := root.FindClassTemplate(ct.SuperClassName); ok {
			FlattenTemplate(root, super)

			merged := make([]string, 0, len(super.PropertyOrder)+len(ct.PropertyOrder))
			merged = append(merged, super.PropertyOrder...)
			merged = append(merged, ct.PropertyOrder...)
			ct.PropertyOrder = merged
			for name, expr := range super.PropertyInit {
				if _, ok := ct.PropertyInit[name]; !ok {
					ct.PropertyInit[name] = expr
				}
			}
			for name, mut := range super.PropertyMut {
				if _, ok := ct.PropertyMut[name]; !ok {
					ct.PropertyMut[name] = mut
				}
			}
			for name, t := range super.PropertyTypes {
				if _, ok := ct.PropertyTypes[name]; !ok {
					ct.PropertyTypes[name] = t
				}
			}

			ct.Methods = mergeMethodTables(super.Methods, ct.Methods)
			for pos := range ct.Operators {
				ct.Operators[pos] = mergeOperatorTables(super.Operators[pos], ct.Operators[pos])
			}
		}
	}

	ct.Flattened = true
}

func mergeMethodTables(inherited, own map[string][]*Function) map[string][]*Function {
	out := make(map[string][]*Function, len(inherited)+len(own))
	for name, fns := range inherited {
		cp := make([]*Function, len(fns))
		copy(cp, fns)
		out[name] = cp
	}
	for name, fns := range own {
		for _, fn := range fns {
			out[name] = replaceOrAppendFn(out[name], fn)
		}
	}
	return out
}

func replaceOrAppendFn(existing []*Function, fn *Function) []*Function {
	for i, e := range existing {
		if dispatch.EqualSignature(e.ParamTypes(), fn.ParamTypes()) {
			existing[i] = fn
			return existing
		}
	}
	return append(existing, fn)
}

func mergeOperatorTables(inherited, own map[string][]*Operator) map[string][]*Operator {
	out := make(map[string][]*Operator, len(inherited)+len(own))
	for name, ops := range inherited {
		cp := make([]*Operator, len(ops))
		copy(cp, ops)
		out[name] = cp
	}
	for name, ops := range own {
		for _, op := range ops {
			out[name] = replaceOrAppendOp(out[name], op)
		}
	}
	return out
}

func replaceOrAppendOp(existing []*Operator, op *Operator) []*Operator {
	for i, e := range existing {
		if dispatch.EqualSignature(e.ParamTypes(), op.ParamTypes()) {
			existing[i] = op
			return existing
		}
	}
	return append(existing, op)
}

// Instantiate builds a new ClassInstance of ct: a fresh instance
// environment holding every (flattened) property, initialized from its
// declared initializer expression evaluated in that environment, plus
// every method/operator rebound as a closure over the instance
// environment.
// When ct declares no method literally named after itself, positional is
// bound directly onto the flattened PropertyOrder — the default
// constructor path, each positional argument binding to the
// corresponding property name; the explicit-constructor-method case
// is invoked by the evaluator's call protocol after instantiation
// returns, so positional is nil there.
// evalInit evaluates a property initializer expression in env and
// returns its value, or a Panic; it is supplied by the evaluator package
// to avoid an import cycle (object cannot import evaluator).
func Instantiate(root *Environment, ct *ClassTemplate, positional []Object, evalInit func(expr ast.Expression, env *Environment) (Object, *Panic)) (*ClassInstance, *Panic) {
	FlattenTemplate(root, ct)

	instanceEnv := NewEnclosedEnvironment(root)
	instance := &ClassInstance{ClassName: ct.Name, Env: instanceEnv}
	instanceEnv.SetMe(instance)
	instanceEnv.SetOwnerClass(ct)

	for i, name := range ct.PropertyOrder {
		if positional != nil {
			instanceEnv.Define(name, positional[i], ct.PropertyMut[name])
			continue
		}
		expr := ct.PropertyInit[name]
		var val Object
		if expr != nil {
			v, p := evalInit(expr, instanceEnv)
			if p != nil {
				return nil, p
			}
			val = v
		} else {
			val = NilValueOf(ct.PropertyTypes[name])
		}
		instanceEnv.Define(name, val, ct.PropertyMut[name])
	}

	for _, fns := range ct.Methods {
		for _, fn := range fns {
			bound := &Function{Name: fn.Name, Params: fn.Params, ReturnType: fn.ReturnType, Body: fn.Body, Env: instanceEnv}
			instanceEnv.DefineFunction(bound)
		}
	}
	for _, ops := range ct.Operators {
		for _, fns := range ops {
			for _, fn := range fns {
				bound := &Operator{Name: fn.Name, Position: fn.Position, Params: fn.Params, ReturnType: fn.ReturnType, Body: fn.Body, Env: instanceEnv}
				instanceEnv.DefineOperator(bound)
			}
		}
	}

	return instance, nil
}
