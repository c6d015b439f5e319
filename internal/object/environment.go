package object

import (
	"fmt"

	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/types"
)

// binding is a variable's current runtime value plus its mutability
// (mirroring scope.VarDecl).
type binding struct {
	Value   Object
	Mutable bool
}

// ClassTemplate is the runtime registry entry for a declared class:
// its own properties/methods/operators, populated by a
// construction-time flatten step mirroring classflat.Flatten but over
// Object-level defaults and closures instead of types.
type ClassTemplate struct {
	Name           string
	SuperClassName string

	PropertyOrder []string
	PropertyInit  map[string]ast.Expression // nil entries mean "no initializer"
	PropertyMut   map[string]bool
	PropertyTypes map[string]types.Type

	Methods   map[string][]*Function
	Operators map[ast.Position]map[string][]*Operator

	Flattened  bool
	flattening bool
}

func (c *ClassTemplate) IsFlattening() bool   { return c.flattening }
func (c *ClassTemplate) SetFlattening(v bool) { c.flattening = v }

func newClassTemplate(name, super string) *ClassTemplate {
	return &ClassTemplate{
		Name:           name,
		SuperClassName: super,
		PropertyInit:   make(map[string]ast.Expression),
		PropertyMut:    make(map[string]bool),
		PropertyTypes:  make(map[string]types.Type),
		Methods:        make(map[string][]*Function),
		Operators:      map[ast.Position]map[string][]*Operator{ast.Prefix: {}, ast.Infix: {}, ast.Postfix: {}},
	}
}

// Environment is a node in the runtime scope tree: the value-side twin of
// scope.Scope.
type Environment struct {
	parent *Environment

	vars    map[string]*binding
	funcs   map[string][]*Function
	builtin map[string][]*BuiltinFunction
	ops     map[ast.Position]map[string][]*Operator
	opsB    map[ast.Position]map[string][]*BuiltinOperator
	classes map[string]*ClassTemplate

	closed     bool
	ownerClass *ClassTemplate
	me         Object // bound `Me` value inside a method body, nil elsewhere
}

func NewEnvironment() *Environment {
	return &Environment{
		vars:    make(map[string]*binding),
		funcs:   make(map[string][]*Function),
		builtin: make(map[string][]*BuiltinFunction),
		ops:     map[ast.Position]map[string][]*Operator{ast.Prefix: {}, ast.Infix: {}, ast.Postfix: {}},
		opsB:    map[ast.Position]map[string][]*BuiltinOperator{ast.Prefix: {}, ast.Infix: {}, ast.Postfix: {}},
		classes: make(map[string]*ClassTemplate),
	}
}

func NewEnclosedEnvironment(parent *Environment) *Environment {
	e := NewEnvironment()
	e.parent = parent
	return e
}

func (e *Environment) Parent() *Environment { return e.parent }
func (e *Environment) IsGlobal() bool       { return e.parent == nil }
func (e *Environment) Closed() bool         { return e.closed }
func (e *Environment) SetClosed(v bool)     { e.closed = v }

// WithClosed mirrors scope.Scope.WithClosed: save/restore the closed flag
// so callers can `defer env.WithClosed(true)()` across every exit path,
// including a propagating Panic or Return.
func (e *Environment) WithClosed(v bool) func() {
	prev := e.closed
	e.closed = v
	return func() { e.closed = prev }
}

// Global walks to the outermost environment, bypassing closed — backs the
// reserved "global" accessor.
func (e *Environment) Global() *Environment {
	cur := e
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Me returns the `me` value bound for the environment whose body is a
// method/constructor, searching outward only through environments that
// don't themselves own a class (so a nested block inherits it, but a
// nested method body does not).
func (e *Environment) Me() (Object, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.me != nil {
			return cur.me, true
		}
		if cur.ownerClass != nil {
			return nil, false
		}
	}
	return nil, false
}

func (e *Environment) SetMe(obj Object) { e.me = obj }

func (e *Environment) NearestClassTemplate() *ClassTemplate {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.ownerClass != nil {
			return cur.ownerClass
		}
	}
	return nil
}

func (e *Environment) SetOwnerClass(c *ClassTemplate) { e.ownerClass = c }

func (e *Environment) String() string {
	if e.IsGlobal() {
		return "<global environment>"
	}
	return fmt.Sprintf("<environment closed=%v>", e.closed)
}
