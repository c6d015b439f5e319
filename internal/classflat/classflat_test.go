package classflat

import (
	"testing"

	"github.com/moose-lang/moose/internal/scope"
	"github.com/moose-lang/moose/internal/types"
)

func TestFlattenMergesInheritedProperties(t *testing.T) {
	root := scope.New()
	animal, err := root.AddClass("Animal", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	animal.Properties = []scope.PropertyDecl{{Name: "x", Type: types.Integer{}}}

	dog, err := root.AddClass("Dog", "Animal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dog.Properties = []scope.PropertyDecl{{Name: "y", Type: types.Integer{}}}

	if err := Flatten(root, dog); err != nil {
		t.Fatalf("unexpected flatten error: %v", err)
	}
	if !dog.Flattened {
		t.Fatalf("expected dog.Flattened to be true")
	}
	if len(dog.Properties) != 2 || dog.Properties[0].Name != "x" || dog.Properties[1].Name != "y" {
		t.Errorf("expected [x, y] in inherited-then-own order, got %+v", dog.Properties)
	}
}

func TestFlattenRejectsShadowedProperty(t *testing.T) {
	root := scope.New()
	animal, _ := root.AddClass("Animal", "")
	animal.Properties = []scope.PropertyDecl{{Name: "x", Type: types.Integer{}}}
	dog, _ := root.AddClass("Dog", "Animal")
	dog.Properties = []scope.PropertyDecl{{Name: "x", Type: types.Integer{}}}

	if err := Flatten(root, dog); err == nil {
		t.Errorf("expected error when subclass property shadows an inherited one")
	}
}

func TestFlattenRejectsChangedReturnTypeOverride(t *testing.T) {
	root := scope.New()
	animal, _ := root.AddClass("Animal", "")
	animal.Methods["speak"] = []scope.FuncSig{{Name: "speak", Params: nil, ReturnType: types.Integer{}}}
	dog, _ := root.AddClass("Dog", "Animal")
	dog.Methods["speak"] = []scope.FuncSig{{Name: "speak", Params: nil, ReturnType: types.String{}}}

	if err := Flatten(root, dog); err == nil {
		t.Errorf("expected error when an override changes the return type")
	}
}

func TestFlattenAllowsSameSignatureSameReturnOverride(t *testing.T) {
	root := scope.New()
	animal, _ := root.AddClass("Animal", "")
	animal.Methods["speak"] = []scope.FuncSig{{Name: "speak", Params: nil, ReturnType: types.Integer{}}}
	dog, _ := root.AddClass("Dog", "Animal")
	dog.Methods["speak"] = []scope.FuncSig{{Name: "speak", Params: nil, ReturnType: types.Integer{}}}

	if err := Flatten(root, dog); err != nil {
		t.Fatalf("expected a same-return override to be allowed, got %v", err)
	}
	if len(dog.Methods["speak"]) != 1 {
		t.Errorf("expected override to replace inherited method, not add alongside it")
	}
}

func TestFlattenDetectsInheritanceCycle(t *testing.T) {
	root := scope.New()
	a, _ := root.AddClass("A", "B")
	b, _ := root.AddClass("B", "A")

	errs := FlattenAll(root, map[string]*scope.ClassScope{"A": a, "B": b})
	if len(errs) == 0 {
		t.Errorf("expected at least one cycle error from FlattenAll")
	}
}

func TestFlattenIsIdempotent(t *testing.T) {
	root := scope.New()
	animal, _ := root.AddClass("Animal", "")
	animal.Properties = []scope.PropertyDecl{{Name: "x", Type: types.Integer{}}}

	if err := Flatten(root, animal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Flatten(root, animal); err != nil {
		t.Fatalf("second flatten call should be a no-op, got error: %v", err)
	}
	if len(animal.Properties) != 1 {
		t.Errorf("expected flatten to not duplicate properties on repeat calls, got %+v", animal.Properties)
	}
}
