package evaluator

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/object"
)

// Explore is the runtime twin of checker.exploreProgram: it registers
// every top-level class name first (so a forward superclass reference
// resolves), then fills in function/operator/class
// bodies. Flattening itself stays lazy — object.Instantiate calls
// FlattenTemplate on first use, idempotently.
func (e *Evaluator) Explore(program *ast.Program) {
	g := e.global
	for _, stmt := range program.Statements {
		if cs, ok := stmt.(*ast.ClassStatement); ok {
			g.AddClassTemplate(cs.Name, cs.SuperClass)
		}
	}
	for _, stmt := range program.Statements {
		switch s := stmt.(type) {
		case *ast.FunctionStatement:
			g.DefineFunction(functionValue(s, g))
		case *ast.OperationStatement:
			g.DefineOperator(operatorValue(s, g))
		case *ast.ClassStatement:
			e.fillClassTemplate(g, s)
		}
	}
}

// fillClassTemplate populates an already-registered ClassTemplate's
// properties/methods/operators from its declaration body. Shared between
// the global-exploration pass and a nested (non-global) class statement,
// which registers and fills its template inline at the point it
// executes.
func (e *Evaluator) fillClassTemplate(env *object.Environment, stmt *ast.ClassStatement) {
	ct, ok := env.FindClassTemplate(stmt.Name)
	if !ok {
		return
	}
	for _, prop := range stmt.Properties {
		ct.PropertyOrder = append(ct.PropertyOrder, prop.Name)
		ct.PropertyMut[prop.Name] = prop.Mutable
		ct.PropertyTypes[prop.Name] = resolveType(prop.DeclaredType)
	}
	for _, m := range stmt.Methods {
		ct.Methods[m.Name] = append(ct.Methods[m.Name], functionValue(m, env))
	}
	for _, op := range stmt.Operators {
		ct.Operators[op.Position][op.Name] = append(ct.Operators[op.Position][op.Name], operatorValue(op, env))
	}
}
