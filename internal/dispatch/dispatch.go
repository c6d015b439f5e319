// Package dispatch implements the multi-dispatch overload-resolution
// algorithm shared by the type-checking scope (internal/scope) and the
// runtime environment (internal/object): given a name's registered
// overloads in one scope level and a call's argument types, pick the
// unique applicable signature or report ambiguity. A small Candidate
// interface lets scope.FuncSig (type side) and object.Function /
// object.BuiltinFunction (value side) share the one algorithm.
package dispatch

import "github.com/moose-lang/moose/internal/types"

// Candidate is anything with a fixed-arity parameter-type signature that
// can be matched against call-site argument types.
type Candidate interface {
	ParamTypes() []types.Type
}

// Matches reports whether candidate signature params is applicable to
// a call with argument types args: arity must be equal, and for every
// index i either args[i] is Nil or params[i] is a supertype of args[i].
func Matches(params []types.Type, args []types.Type, ancestry types.Ancestry) bool {
	if len(params) != len(args) {
		return false
	}
	for i := range params {
		if _, isNil := args[i].(types.Nil); isNil {
			continue
		}
		if !types.SuperOf(params[i], ancestry, args[i]) {
			return false
		}
	}
	return true
}

// ErrKind distinguishes "nothing matched here" from "more than one
// candidate matched here" so callers can decide whether to keep walking
// outward or stop immediately (ambiguity is never resolved by widening
// the search — it is reported as soon as it occurs in a single scope
// level).
type ErrKind int

const (
	NoMatch ErrKind = iota
	Ambiguous
	Found
)

// ResolveOne finds the applicable candidate among those registered for a
// name at a SINGLE scope level. The caller is responsible for
// walking to the parent scope when ResolveOne returns NoMatch and the
// scope isn't closed.
func ResolveOne[T Candidate](candidates []T, args []types.Type, ancestry types.Ancestry) (T, ErrKind) {
	var zero T
	var match T
	found := 0
	for _, c := range candidates {
		if Matches(c.ParamTypes(), args, ancestry) {
			match = c
			found++
			if found > 1 {
				return zero, Ambiguous
			}
		}
	}
	if found == 0 {
		return zero, NoMatch
	}
	return match, Found
}

// EqualSignature reports whether two candidates have structurally equal
// parameter-type lists (used to reject exact-duplicate overloads on
// registration).
func EqualSignature(a, b []types.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
