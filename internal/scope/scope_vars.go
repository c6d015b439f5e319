package scope

import "github.com/moose-lang/moose/internal/types"

// AddVar registers a variable declaration. Two variables of the same
// name AND identical type in one scope is an error; redeclaring the
// same name with a DIFFERENT type (e.g. a nil-typed var later retyped)
// replaces the existing entry.
func (s *Scope) AddVar(name string, t types.Type, mutable bool) error {
	if existing, ok := s.vars[name]; ok && existing.Type.Equal(t) {
		return &DuplicateVarError{Name: name}
	}
	s.vars[name] = VarDecl{Type: t, Mutable: mutable}
	return nil
}

// TypeOf looks up a variable's type, honoring the closed flag.
func (s *Scope) TypeOf(name string) (types.Type, bool) {
	if decl, ok := s.vars[name]; ok {
		return decl.Type, true
	}
	if s.closed || s.parent == nil {
		return nil, false
	}
	return s.parent.TypeOf(name)
}

// IsMut reports a variable's mutability.
func (s *Scope) IsMut(name string) (bool, bool) {
	if decl, ok := s.vars[name]; ok {
		return decl.Mutable, true
	}
	if s.closed || s.parent == nil {
		return false, false
	}
	return s.parent.IsMut(name)
}

// Retype updates an already-declared variable's recorded type in
// place, searching the same closed-respecting chain as TypeOf. Returns
// false if no such variable is reachable.
func (s *Scope) Retype(name string, t types.Type) bool {
	if decl, ok := s.vars[name]; ok {
		s.vars[name] = VarDecl{Type: t, Mutable: decl.Mutable}
		return true
	}
	if s.closed || s.parent == nil {
		return false
	}
	return s.parent.Retype(name, t)
}

// DuplicateVarError reports invariant (i) violations.
type DuplicateVarError struct{ Name string }

func (e *DuplicateVarError) Error() string {
	return "variable '" + e.Name + "' is already declared with this type in this scope"
}
