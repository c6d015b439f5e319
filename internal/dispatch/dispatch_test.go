package dispatch

import (
	"testing"

	"github.com/moose-lang/moose/internal/types"
)

type fakeSig struct {
	params []types.Type
}

func (f fakeSig) ParamTypes() []types.Type { return f.params }

type noAncestry struct{}

func (noAncestry) IsAncestor(ancestor, descendant string) bool { return ancestor == descendant }

func TestMatchesArityAndNilWidening(t *testing.T) {
	params := []types.Type{types.Integer{}, types.String{}}
	if Matches(params, []types.Type{types.Integer{}}, noAncestry{}) {
		t.Errorf("mismatched arity should never match")
	}
	if !Matches(params, []types.Type{types.Nil{}, types.String{}}, noAncestry{}) {
		t.Errorf("a Nil argument should match any declared parameter type")
	}
	if Matches(params, []types.Type{types.Bool{}, types.String{}}, noAncestry{}) {
		t.Errorf("an incompatible non-nil argument should not match")
	}
}

func TestResolveOneFoundNoMatchAmbiguous(t *testing.T) {
	candidates := []fakeSig{
		{params: []types.Type{types.Integer{}}},
	}
	if _, kind := ResolveOne(candidates, []types.Type{types.Integer{}}, noAncestry{}); kind != Found {
		t.Errorf("expected Found for a single matching candidate")
	}
	if _, kind := ResolveOne(candidates, []types.Type{types.Bool{}}, noAncestry{}); kind != NoMatch {
		t.Errorf("expected NoMatch for an incompatible argument")
	}

	ambiguous := []fakeSig{
		{params: []types.Type{types.Integer{}}},
		{params: []types.Type{types.Float{}}},
	}
	if _, kind := ResolveOne(ambiguous, []types.Type{types.Nil{}}, noAncestry{}); kind != Ambiguous {
		t.Errorf("expected Ambiguous when a Nil argument matches two overloads at once")
	}
}

func TestEqualSignature(t *testing.T) {
	a := []types.Type{types.Integer{}, types.Bool{}}
	b := []types.Type{types.Integer{}, types.Bool{}}
	c := []types.Type{types.Integer{}, types.String{}}
	if !EqualSignature(a, b) {
		t.Errorf("expected structurally-equal signatures to be equal")
	}
	if EqualSignature(a, c) {
		t.Errorf("expected differing signatures to be unequal")
	}
	if EqualSignature(a, []types.Type{types.Integer{}}) {
		t.Errorf("expected differing arity to be unequal")
	}
}
