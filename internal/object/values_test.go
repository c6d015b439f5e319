package object

import (
	"testing"

	"github.com/moose-lang/moose/internal/types"
)

func TestIsNilValue(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
		want bool
	}{
		{"bare nil", Nil{}, true},
		{"nil integer", &Integer{IsNil: true}, true},
		{"non-nil integer", &Integer{Value: 5}, false},
		{"nil list", &List{IsNil: true}, true},
		{"non-nil empty list", &List{Elements: []Object{}}, false},
		{"nil class instance", &ClassInstance{IsNil: true}, true},
		{"void", Void{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNilValue(tt.obj); got != tt.want {
				t.Errorf("IsNilValue(%v) = %v, want %v", tt.obj, got, tt.want)
			}
		})
	}
}

func TestNilValueOfScalarsListsAndTuples(t *testing.T) {
	if iv := NilValueOf(types.Integer{}); !IsNilValue(iv) || iv.(*Integer).IsNil != true {
		t.Errorf("NilValueOf(Integer) should be a nil-flagged Integer")
	}
	lv := NilValueOf(types.List{Element: types.String{}}).(*List)
	if !lv.IsNil || !lv.ElemType.Equal(types.String{}) {
		t.Errorf("NilValueOf(List) should be a nil list carrying its element type")
	}
	tv := NilValueOf(types.Tuple{Elements: []types.Type{types.Integer{}, types.Bool{}}}).(*Tuple)
	if len(tv.Elements) != 2 {
		t.Fatalf("expected 2-element nil tuple, got %d", len(tv.Elements))
	}
	for i, e := range tv.Elements {
		if !IsNilValue(e) {
			t.Errorf("tuple component %d should be nil", i)
		}
	}
}

func TestInspectFormsAndRuntimeTypes(t *testing.T) {
	i := &Integer{Value: 42}
	if i.Inspect() != "42" {
		t.Errorf("Integer.Inspect() = %s, want 42", i.Inspect())
	}
	if !i.RuntimeType().Equal(types.Integer{}) {
		t.Errorf("Integer.RuntimeType() should equal types.Integer{}")
	}

	niled := &Integer{IsNil: true}
	if niled.Inspect() != "nil" {
		t.Errorf("nil Integer.Inspect() = %s, want nil", niled.Inspect())
	}

	lst := &List{ElemType: types.Integer{}, Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}}}
	if lst.Inspect() != "[1, 2]" {
		t.Errorf("List.Inspect() = %s, want [1, 2]", lst.Inspect())
	}

	tup := &Tuple{ElemTypes: []types.Type{types.Integer{}, types.String{}}, Elements: []Object{&Integer{Value: 1}, &String{Value: "a"}}}
	if tup.Inspect() != "(1, a)" {
		t.Errorf("Tuple.Inspect() = %s, want (1, a)", tup.Inspect())
	}
}
