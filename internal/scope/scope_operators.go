package scope

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/dispatch"
	"github.com/moose-lang/moose/internal/types"
)

// AddOperator registers a user-declared operator overload keyed by (name,
// position), refusing an exact-equal signature already declared by the
// user in this same scope. A signature that only
// duplicates a built-in (seeded separately via AddBuiltinOperator) is not
// rejected — it's a deliberate user override, resolved in the user's
// favor by resolveOperator below.
func (s *Scope) AddOperator(name string, pos ast.Position, params []types.Type, ret types.Type) error {
	for _, f := range s.ops[pos][name] {
		if dispatch.EqualSignature(f.Params, params) {
			return &DuplicateOverloadError{Name: name}
		}
	}
	if s.ops[pos] == nil {
		s.ops[pos] = make(map[string][]FuncSig)
	}
	s.ops[pos][name] = append(s.ops[pos][name], FuncSig{Name: name, Position: pos, Params: params, ReturnType: ret})
	return nil
}

// AddBuiltinOperator seeds a built-in operator signature into its own
// table, kept apart from user declarations so a user overload with an
// identical signature shadows it instead of colliding into an ambiguity
// error.
func (s *Scope) AddBuiltinOperator(name string, pos ast.Position, params []types.Type, ret types.Type) {
	if s.opsBuiltin[pos] == nil {
		s.opsBuiltin[pos] = make(map[string][]FuncSig)
	}
	s.opsBuiltin[pos][name] = append(s.opsBuiltin[pos][name], FuncSig{Name: name, Position: pos, Params: params, ReturnType: ret})
}

func (s *Scope) HasOperator(name string, pos ast.Position, argTypes []types.Type, includeEnclosing bool) bool {
	if !includeEnclosing {
		_, kind := dispatch.ResolveOne(s.ops[pos][name], argTypes, s)
		return kind == dispatch.Found
	}
	_, err := s.resolveOperator(name, pos, argTypes)
	return err == nil
}

func (s *Scope) TypeOfOperator(name string, pos ast.Position, argTypes []types.Type) (types.Type, error) {
	sig, err := s.resolveOperator(name, pos, argTypes)
	if err != nil {
		return nil, err
	}
	return funcSigType(sig), nil
}

func (s *Scope) OperatorReturnType(name string, pos ast.Position, argTypes []types.Type) (types.Type, error) {
	sig, err := s.resolveOperator(name, pos, argTypes)
	if err != nil {
		return nil, err
	}
	return sig.ReturnType, nil
}

// resolveOperator tries this scope's user-declared overloads first and
// only falls back to its built-in table when no user overload matches —
// a user declaration with the same signature as a built-in always wins
// rather than colliding into ambiguity. Each
// table is still its own single-scope-level ambiguity check: two
// user overloads (or two built-ins) matching the same call is still an
// error, just never a user-vs-built-in collision.
func (s *Scope) resolveOperator(name string, pos ast.Position, argTypes []types.Type) (FuncSig, error) {
	if match, kind := dispatch.ResolveOne(s.ops[pos][name], argTypes, s); kind == dispatch.Found {
		return match, nil
	} else if kind == dispatch.Ambiguous {
		return FuncSig{}, &AmbiguityError{Name: name}
	}
	if match, kind := dispatch.ResolveOne(s.opsBuiltin[pos][name], argTypes, s); kind == dispatch.Found {
		return match, nil
	} else if kind == dispatch.Ambiguous {
		return FuncSig{}, &AmbiguityError{Name: name}
	}
	if s.closed || s.parent == nil {
		return FuncSig{}, &NotFoundError{Kind: "operator", Name: name}
	}
	return s.parent.resolveOperator(name, pos, argTypes)
}
