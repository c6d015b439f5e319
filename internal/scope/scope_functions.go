package scope

import (
	"github.com/moose-lang/moose/internal/dispatch"
	"github.com/moose-lang/moose/internal/types"
)

// AddFunction registers a function overload, refusing an exact-equal
// signature already present in this scope.
func (s *Scope) AddFunction(name string, params []types.Type, ret types.Type) error {
	for _, f := range s.funcs[name] {
		if dispatch.EqualSignature(f.Params, params) {
			return &DuplicateOverloadError{Name: name}
		}
	}
	s.funcs[name] = append(s.funcs[name], FuncSig{Name: name, Params: params, ReturnType: ret})
	return nil
}

// HasFunction reports whether some overload of name matches argTypes.
// When includeEnclosing is false, only this scope's own overloads are
// considered, ignoring the closed/parent chain entirely.
func (s *Scope) HasFunction(name string, argTypes []types.Type, includeEnclosing bool) bool {
	if !includeEnclosing {
		_, kind := dispatch.ResolveOne(s.funcs[name], argTypes, s)
		return kind == dispatch.Found
	}
	_, err := s.resolveFunction(name, argTypes)
	return err == nil
}

// TypeOfFunction resolves the unique applicable overload and returns its
// full Function type.
func (s *Scope) TypeOfFunction(name string, argTypes []types.Type) (types.Type, error) {
	sig, err := s.resolveFunction(name, argTypes)
	if err != nil {
		return nil, err
	}
	return funcSigType(sig), nil
}

// ReturnType resolves the unique applicable overload and returns its
// return type.
func (s *Scope) ReturnType(name string, argTypes []types.Type) (types.Type, error) {
	sig, err := s.resolveFunction(name, argTypes)
	if err != nil {
		return nil, err
	}
	return sig.ReturnType, nil
}

func (s *Scope) resolveFunction(name string, argTypes []types.Type) (FuncSig, error) {
	match, kind := dispatch.ResolveOne(s.funcs[name], argTypes, s)
	switch kind {
	case dispatch.Found:
		return match, nil
	case dispatch.Ambiguous:
		return FuncSig{}, &AmbiguityError{Name: name}
	default: // NoMatch
		if s.closed || s.parent == nil {
			return FuncSig{}, &NotFoundError{Kind: "function", Name: name}
		}
		return s.parent.resolveFunction(name, argTypes)
	}
}

func funcSigType(sig FuncSig) types.Type {
	params := make([]types.ParamType, len(sig.Params))
	for i, p := range sig.Params {
		params[i] = types.ParamType{Type: p}
	}
	return types.Function{Params: params, ReturnType: sig.ReturnType}
}

// DuplicateOverloadError reports invariant (ii) violations.
type DuplicateOverloadError struct{ Name string }

func (e *DuplicateOverloadError) Error() string {
	return "an overload of '" + e.Name + "' with this exact signature is already declared"
}

// AmbiguityError reports a call matched by two or more overloads in a
// single scope level.
type AmbiguityError struct{ Name string }

func (e *AmbiguityError) Error() string {
	return "ambiguous call to '" + e.Name + "': more than one overload matches"
}

// NotFoundError reports a lookup that matched nothing before the scope
// chain ran out (closed scope or global reached).
type NotFoundError struct {
	Kind string // "function", "operator", "variable", "class"
	Name string
}

func (e *NotFoundError) Error() string {
	return e.Kind + " '" + e.Name + "' not found"
}
