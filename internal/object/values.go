package object

import (
	"strconv"
	"strings"

	"github.com/moose-lang/moose/internal/types"
)

// Scalar values carry an IsNil slot because Moose permits a typed nil:
// `a: Int = nil` is an Integer value with IsNil set, not a separate
// untyped Nil object.

type Integer struct {
	Value int64
	IsNil bool
}

func (i *Integer) Type() ObjectType        { return INTEGER_OBJ }
func (i *Integer) RuntimeType() types.Type { return types.Integer{} }
func (i *Integer) Inspect() string {
	if i.IsNil {
		return "nil"
	}
	return strconv.FormatInt(i.Value, 10)
}

type Float struct {
	Value float64
	IsNil bool
}

func (f *Float) Type() ObjectType        { return FLOAT_OBJ }
func (f *Float) RuntimeType() types.Type { return types.Float{} }
func (f *Float) Inspect() string {
	if f.IsNil {
		return "nil"
	}
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

type Bool struct {
	Value bool
	IsNil bool
}

func (b *Bool) Type() ObjectType        { return BOOL_OBJ }
func (b *Bool) RuntimeType() types.Type { return types.Bool{} }
func (b *Bool) Inspect() string {
	if b.IsNil {
		return "nil"
	}
	return strconv.FormatBool(b.Value)
}

type String struct {
	Value string
	IsNil bool
}

func (s *String) Type() ObjectType        { return STRING_OBJ }
func (s *String) RuntimeType() types.Type { return types.String{} }
func (s *String) Inspect() string {
	if s.IsNil {
		return "nil"
	}
	return s.Value
}

// Nil is the raw, not-yet-retyped nil literal. Evaluating the bare
// `nil` literal produces this; once assigned it becomes a typed-nil
// scalar/tuple/list/instance instead.
type Nil struct{}

func (Nil) Type() ObjectType        { return NIL_OBJ }
func (Nil) RuntimeType() types.Type { return types.Nil{} }
func (Nil) Inspect() string        { return "nil" }

// Tuple is a fixed-arity product value. ElemTypes lets a nil tuple
// reconstruct a nil value per component.
type Tuple struct {
	ElemTypes []types.Type
	Elements  []Object
}

func (t *Tuple) Type() ObjectType { return TUPLE_OBJ }
func (t *Tuple) RuntimeType() types.Type {
	elems := make([]types.Type, len(t.ElemTypes))
	copy(elems, t.ElemTypes)
	return types.Tuple{Elements: elems}
}
func (t *Tuple) Inspect() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.Inspect()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// List is a homogeneous, mutable-length sequence value. IsNil represents
// a nil value of List type (as opposed to an empty, non-nil list).
type List struct {
	ElemType types.Type
	Elements []Object
	IsNil    bool
}

func (l *List) Type() ObjectType        { return LIST_OBJ }
func (l *List) RuntimeType() types.Type { return types.List{Element: l.ElemType} }
func (l *List) Inspect() string {
	if l.IsNil {
		return "nil"
	}
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// NilValueOf constructs the nil-propagation value for t: a
// typed-nil scalar, a nil list, a tuple whose every component is itself
// nil, or a nil class instance.
func NilValueOf(t types.Type) Object {
	switch tt := t.(type) {
	case types.Integer:
		return &Integer{IsNil: true}
	case types.Float:
		return &Float{IsNil: true}
	case types.Bool:
		return &Bool{IsNil: true}
	case types.String:
		return &String{IsNil: true}
	case types.List:
		return &List{ElemType: tt.Element, IsNil: true}
	case types.Tuple:
		elems := make([]Object, len(tt.Elements))
		for i, e := range tt.Elements {
			elems[i] = NilValueOf(e)
		}
		return &Tuple{ElemTypes: tt.Elements, Elements: elems}
	case types.Class:
		return &ClassInstance{ClassName: tt.Name, IsNil: true}
	default:
		return Nil{}
	}
}

// Void is the value of a function/operator body that falls off the end
// without a Return statement.
type Void struct{}

func (Void) Type() ObjectType        { return VOID_OBJ }
func (Void) RuntimeType() types.Type { return types.Void{} }
func (Void) Inspect() string        { return "void" }

// IsNilValue reports whether obj represents a nil value of any shape
// (used by the evaluator when deciding whether an Identifier assignment
// needs retyping, and by Index/Dereferer nil-receiver panics).
func IsNilValue(obj Object) bool {
	switch v := obj.(type) {
	case Nil:
		return true
	case *Integer:
		return v.IsNil
	case *Float:
		return v.IsNil
	case *Bool:
		return v.IsNil
	case *String:
		return v.IsNil
	case *List:
		return v.IsNil
	case *ClassInstance:
		return v.IsNil
	default:
		return false
	}
}
