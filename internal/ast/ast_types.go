package ast

import "github.com/moose-lang/moose/internal/token"

// TypeExpr is the parsed form of a type annotation (`Int`, `[Int]`,
// `(Int, String)`, `(Int) -> Bool`, or a class name). The checker resolves
// a TypeExpr into a types.Type; kept as its own small AST shape (rather
// than reusing types.Type directly) because a class-name annotation isn't
// resolvable until the class registry exists.
type TypeExpr struct {
	Token    token.Token
	Name     string      // primitive ("Int", "Float", ...) or class name
	Elements []*TypeExpr // Tuple component types
	Element  *TypeExpr   // List element type
	Params   []*TypeExpr // Function parameter types
	Return   *TypeExpr   // Function return type
	IsTuple  bool
	IsList   bool
	IsFunc   bool
}

func (t *TypeExpr) Tok() token.Token { return t.Token }
func (t *TypeExpr) String() string {
	switch {
	case t.IsTuple:
		s := "("
		for i, e := range t.Elements {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + ")"
	case t.IsList:
		return "[" + t.Element.String() + "]"
	case t.IsFunc:
		s := "("
		for i, p := range t.Params {
			if i > 0 {
				s += ", "
			}
			s += p.String()
		}
		return s + ") -> " + t.Return.String()
	default:
		return t.Name
	}
}
