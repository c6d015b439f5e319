// Package types implements Moose's Type tagged union: equality,
// printable form, and the SuperOf subtype predicate. Moose has no type
// inference and no generics, only nominal subtyping.
package types

import "strings"

// Type is the interface every Moose type case implements.
type Type interface {
	// String returns the printable form used by `is` and error messages.
	String() string
	// Equal reports structural equality.
	Equal(other Type) bool
}

// Integer, Float, Bool, String, Void are the primitive scalar types.
type Integer struct{}
type Float struct{}
type Bool struct{}
type String struct{}
type Void struct{}

// Nil is the universal subtype of every declared type.
type Nil struct{}

func (Integer) String() string { return "Int" }
func (Float) String() string   { return "Float" }
func (Bool) String() string    { return "Bool" }
func (String) String() string  { return "String" }
func (Void) String() string    { return "Void" }
func (Nil) String() string     { return "Nil" }

func (Integer) Equal(o Type) bool { _, ok := o.(Integer); return ok }
func (Float) Equal(o Type) bool   { _, ok := o.(Float); return ok }
func (Bool) Equal(o Type) bool    { _, ok := o.(Bool); return ok }
func (String) Equal(o Type) bool  { _, ok := o.(String); return ok }
func (Void) Equal(o Type) bool    { _, ok := o.(Void); return ok }
func (Nil) Equal(o Type) bool     { _, ok := o.(Nil); return ok }

// Tuple is a fixed-arity product type.
type Tuple struct {
	Elements []Type
}

func (t Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t Tuple) Equal(o Type) bool {
	ot, ok := o.(Tuple)
	if !ok || len(ot.Elements) != len(t.Elements) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equal(ot.Elements[i]) {
			return false
		}
	}
	return true
}

// List is a homogeneous sequence type.
type List struct {
	Element Type
}

func (l List) String() string { return "[" + l.Element.String() + "]" }
func (l List) Equal(o Type) bool {
	ol, ok := o.(List)
	return ok && l.Element.Equal(ol.Element)
}

// ParamType is a function/operator parameter's declared type. The
// mutability flag at a call site is irrelevant to matching.
type ParamType struct {
	Type Type
}

// Function is the type of a function or operator value. Function types
// are invariant: they are compared structurally, never via
// superOf.
type Function struct {
	Params     []ParamType
	ReturnType Type
}

func (f Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Type.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + f.ReturnType.String()
}

func (f Function) Equal(o Type) bool {
	of, ok := o.(Function)
	if !ok || len(of.Params) != len(f.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Type.Equal(of.Params[i].Type) {
			return false
		}
	}
	return f.ReturnType.Equal(of.ReturnType)
}

// Class is a nominal type naming a declared class. Its position in the
// inheritance chain is tracked out-of-band by the scope/classflat
// packages (a bare Class value only carries the name).
type Class struct {
	Name string
}

func (c Class) String() string { return c.Name }
func (c Class) Equal(o Type) bool {
	oc, ok := o.(Class)
	return ok && oc.Name == c.Name
}
