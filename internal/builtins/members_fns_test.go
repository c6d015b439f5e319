package builtins

import (
	"testing"

	"github.com/moose-lang/moose/internal/object"
)

func TestIntToStringParseIntRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 9223372036854775807, -9223372036854775808} {
		str, panic1 := intToString([]object.Object{&object.Integer{Value: n}})
		if panic1 != nil {
			t.Fatalf("unexpected panic: %v", panic1)
		}
		back, panic2 := strParseInt([]object.Object{str})
		if panic2 != nil {
			t.Fatalf("unexpected panic: %v", panic2)
		}
		tup := back.(*object.Tuple)
		val := tup.Elements[0].(*object.Integer)
		errSlot := tup.Elements[1].(*object.String)
		if val.IsNil || val.Value != n {
			t.Errorf("round trip for %d produced %v", n, val)
		}
		if !errSlot.IsNil {
			t.Errorf("expected nil error slot for a well-formed integer, got %q", errSlot.Value)
		}
	}
}

func TestBoolToStringParseBoolRoundTrip(t *testing.T) {
	for _, b := range []bool{true, false} {
		str, _ := boolToString([]object.Object{&object.Bool{Value: b}})
		back, _ := strParseBool([]object.Object{str})
		tup := back.(*object.Tuple)
		val := tup.Elements[0].(*object.Bool)
		if val.IsNil || val.Value != b {
			t.Errorf("round trip for %v produced %v", b, val)
		}
	}
}

func TestBoolToIntAndBack(t *testing.T) {
	one, _ := boolToInt([]object.Object{&object.Bool{Value: true}})
	if one.(*object.Integer).Value != 1 {
		t.Errorf("true.toInt() = %v, want 1", one)
	}
	zero, _ := boolToInt([]object.Object{&object.Bool{Value: false}})
	if zero.(*object.Integer).Value != 0 {
		t.Errorf("false.toInt() = %v, want 0", zero)
	}
}

func TestParseIntFailureMessage(t *testing.T) {
	result, panic1 := strParseInt([]object.Object{&object.String{Value: "not-a-number"}})
	if panic1 != nil {
		t.Fatalf("unexpected panic: %v", panic1)
	}
	tup := result.(*object.Tuple)
	val := tup.Elements[0].(*object.Integer)
	errSlot := tup.Elements[1].(*object.String)
	if !val.IsNil {
		t.Errorf("expected a nil value slot for an unparseable string")
	}
	want := "Cannot parse 'not-a-number' to an Int."
	if errSlot.IsNil || errSlot.Value != want {
		t.Errorf("errSlot = %q, want %q", errSlot.Value, want)
	}
}

func TestNilReceiverPropagatesThroughConversions(t *testing.T) {
	result, panic1 := intToString([]object.Object{&object.Integer{IsNil: true}})
	if panic1 != nil {
		t.Fatalf("unexpected panic: %v", panic1)
	}
	if !object.IsNilValue(result) {
		t.Errorf("expected a nil Integer receiver to propagate to a nil String")
	}

	tupResult, _ := strParseInt([]object.Object{&object.String{IsNil: true}})
	tup := tupResult.(*object.Tuple)
	for i, e := range tup.Elements {
		if !object.IsNilValue(e) {
			t.Errorf("element %d of a nil-receiver parseInt tuple should be nil", i)
		}
	}
}

func TestListLength(t *testing.T) {
	lst := &object.List{Elements: []object.Object{&object.Integer{Value: 1}, &object.Integer{Value: 2}, &object.Integer{Value: 3}}}
	result, _ := listLength([]object.Object{lst})
	if result.(*object.Integer).Value != 3 {
		t.Errorf("length = %v, want 3", result)
	}
}
