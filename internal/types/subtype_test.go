package types

import "testing"

// classChain is a trivial Ancestry fake for test purposes: a map from
// class name to its immediate superclass name (empty string for root).
type classChain map[string]string

func (c classChain) IsAncestor(ancestor, descendant string) bool {
	for cur := descendant; ; {
		if cur == ancestor {
			return true
		}
		parent, ok := c[cur]
		if !ok || parent == "" {
			return false
		}
		cur = parent
	}
}

func TestSuperOfNilIsUniversalSubtype(t *testing.T) {
	chain := classChain{}
	if !SuperOf(Integer{}, chain, Nil{}) {
		t.Errorf("Nil should satisfy superOf for any declared type")
	}
	if !SuperOf(Class{Name: "Animal"}, chain, Nil{}) {
		t.Errorf("Nil should satisfy superOf for class types too")
	}
}

func TestSuperOfClassAncestry(t *testing.T) {
	chain := classChain{"Dog": "Animal", "Puppy": "Dog"}
	if !SuperOf(Class{Name: "Animal"}, chain, Class{Name: "Puppy"}) {
		t.Errorf("Animal should be superOf transitively-descended Puppy")
	}
	if SuperOf(Class{Name: "Puppy"}, chain, Class{Name: "Animal"}) {
		t.Errorf("Puppy should not be superOf its own ancestor Animal")
	}
	if !SuperOf(Class{Name: "Animal"}, chain, Class{Name: "Animal"}) {
		t.Errorf("a class should be superOf itself")
	}
}

func TestSuperOfCovariantTuplesAndLists(t *testing.T) {
	chain := classChain{"Dog": "Animal"}
	supT := Tuple{Elements: []Type{Class{Name: "Animal"}, Integer{}}}
	subT := Tuple{Elements: []Type{Class{Name: "Dog"}, Integer{}}}
	if !SuperOf(supT, chain, subT) {
		t.Errorf("tuple of supertypes should be superOf tuple of subtypes")
	}

	supL := List{Element: Class{Name: "Animal"}}
	subL := List{Element: Class{Name: "Dog"}}
	if !SuperOf(supL, chain, subL) {
		t.Errorf("list should be covariant on element type")
	}
}

func TestSuperOfFunctionIsInvariant(t *testing.T) {
	chain := classChain{"Dog": "Animal"}
	f1 := Function{Params: []ParamType{{Type: Class{Name: "Animal"}}}, ReturnType: Integer{}}
	f2 := Function{Params: []ParamType{{Type: Class{Name: "Dog"}}}, ReturnType: Integer{}}
	if SuperOf(f1, chain, f2) {
		t.Errorf("function types must be invariant, widened params should not satisfy superOf")
	}
	if !SuperOf(f1, chain, f1) {
		t.Errorf("identical function types should satisfy superOf")
	}
}

func TestSuperOfMismatchedShapes(t *testing.T) {
	chain := classChain{}
	if SuperOf(Tuple{Elements: []Type{Integer{}}}, chain, Integer{}) {
		t.Errorf("a tuple should not be superOf a non-tuple")
	}
	if SuperOf(List{Element: Integer{}}, chain, List{Element: String{}}) {
		t.Errorf("list of Int should not be superOf a list of String")
	}
}
