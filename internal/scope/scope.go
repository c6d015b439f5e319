// Package scope implements Moose's type-checking Scope: a linked tree
// of name tables (variables, function/operator overload sets, and
// nested class scopes) with a closed-shadowing flag. Overloads resolve
// by nominal subtyping (internal/dispatch), not unification.
package scope

import (
	"fmt"

	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/types"
)

// VarDecl is a variable's recorded type and mutability.
type VarDecl struct {
	Type    types.Type
	Mutable bool
}

// FuncSig is one overload of a function or operator.
type FuncSig struct {
	Name       string
	Position   ast.Position // "" for plain functions
	Params     []types.Type
	ReturnType types.Type
}

func (f FuncSig) ParamTypes() []types.Type { return f.Params }

// Type renders a FuncSig as a types.Function, used wherever an overload
// needs to be treated as a first-class value's type (e.g. a Dereferer
// reading an unambiguous single-overload method without calling it).
func (f FuncSig) Type() types.Type {
	params := make([]types.ParamType, len(f.Params))
	for i, p := range f.Params {
		params[i] = types.ParamType{Type: p}
	}
	return types.Function{Params: params, ReturnType: f.ReturnType}
}

// ClassScope is the type-side registry entry for a declared class.
// Properties/Methods hold only the class's OWN members until
// classflat.Flatten folds the inherited ones in. SuperClassName is
// never nulled out — the declared ancestor name stays immutable for
// subtype checks (types.Ancestry) even after flattening; completion is
// tracked by Flattened instead.
type ClassScope struct {
	Name           string
	SuperClassName string
	Properties     []PropertyDecl
	Methods        map[string][]FuncSig
	Operators      map[ast.Position]map[string][]FuncSig

	Flattened  bool
	flattening bool // cycle guard for classflat.Flatten
}

// PropertyDecl is one class field.
type PropertyDecl struct {
	Name    string
	Type    types.Type
	Mutable bool
}

func newClassScope(name, super string) *ClassScope {
	return &ClassScope{
		Name:           name,
		SuperClassName: super,
		Methods:        make(map[string][]FuncSig),
		Operators:      make(map[ast.Position]map[string][]FuncSig),
	}
}

// IsFlattening reports whether this class is mid-flatten, letting
// classflat detect inheritance cycles.
func (c *ClassScope) IsFlattening() bool    { return c.flattening }
func (c *ClassScope) SetFlattening(v bool)  { c.flattening = v }

// Scope is a node in the type-checking scope tree.
type Scope struct {
	parent *Scope

	vars       map[string]VarDecl
	funcs      map[string][]FuncSig
	ops        map[ast.Position]map[string][]FuncSig
	opsBuiltin map[ast.Position]map[string][]FuncSig
	classes    map[string]*ClassScope

	closed     bool
	ownerClass *ClassScope
}

func New() *Scope {
	return &Scope{
		vars:       make(map[string]VarDecl),
		funcs:      make(map[string][]FuncSig),
		ops:        map[ast.Position]map[string][]FuncSig{ast.Prefix: {}, ast.Infix: {}, ast.Postfix: {}},
		opsBuiltin: map[ast.Position]map[string][]FuncSig{ast.Prefix: {}, ast.Infix: {}, ast.Postfix: {}},
		classes:    make(map[string]*ClassScope),
	}
}

func NewEnclosed(parent *Scope) *Scope {
	s := New()
	s.parent = parent
	return s
}

func (s *Scope) Parent() *Scope   { return s.parent }
func (s *Scope) IsGlobal() bool   { return s.parent == nil }
func (s *Scope) Closed() bool     { return s.closed }
func (s *Scope) SetClosed(v bool) { s.closed = v }

// WithClosed sets the closed flag and returns a restore func, so
// callers can `defer scope.WithClosed(true)()` to keep the toggle
// LIFO-paired on every exit path.
func (s *Scope) WithClosed(v bool) func() {
	prev := s.closed
	s.closed = v
	return func() { s.closed = prev }
}

// Global walks to the outermost scope, bypassing the closed flag — the
// reserved "global" accessor.
func (s *Scope) Global() *Scope {
	cur := s
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// NearestClassScope returns the ClassScope whose body directly encloses
// this scope, if any. The evaluator/checker set this when entering a
// class member's body.
func (s *Scope) NearestClassScope() *ClassScope {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.ownerClass != nil {
			return cur.ownerClass
		}
	}
	return nil
}

// SetOwnerClass marks this scope as the body of the given class (used for
// `me` resolution and NearestClassScope).
func (s *Scope) SetOwnerClass(c *ClassScope) { s.ownerClass = c }

func (s *Scope) String() string {
	if s.IsGlobal() {
		return "<global scope>"
	}
	return fmt.Sprintf("<scope closed=%v>", s.closed)
}
