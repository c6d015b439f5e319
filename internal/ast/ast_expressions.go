package ast

import "github.com/moose-lang/moose/internal/token"

type Identifier struct {
	baseExpr
	Token token.Token
	Value string
}

func (e *Identifier) Tok() token.Token { return e.Token }
func (e *Identifier) String() string   { return e.Value }
func (*Identifier) expressionNode()    {}

type IntegerLiteral struct {
	baseExpr
	Token token.Token
	Value int64
}

func (e *IntegerLiteral) Tok() token.Token { return e.Token }
func (e *IntegerLiteral) String() string   { return e.Token.Literal }
func (*IntegerLiteral) expressionNode()    {}

type FloatLiteral struct {
	baseExpr
	Token token.Token
	Value float64
}

func (e *FloatLiteral) Tok() token.Token { return e.Token }
func (e *FloatLiteral) String() string   { return e.Token.Literal }
func (*FloatLiteral) expressionNode()    {}

type StringLiteral struct {
	baseExpr
	Token token.Token
	Value string
}

func (e *StringLiteral) Tok() token.Token { return e.Token }
func (e *StringLiteral) String() string   { return e.Token.Literal }
func (*StringLiteral) expressionNode()    {}

type Boolean struct {
	baseExpr
	Token token.Token
	Value bool
}

func (e *Boolean) Tok() token.Token { return e.Token }
func (e *Boolean) String() string   { return e.Token.Literal }
func (*Boolean) expressionNode()    {}

type NilLiteral struct {
	baseExpr
	Token token.Token
}

func (e *NilLiteral) Tok() token.Token { return e.Token }
func (e *NilLiteral) String() string   { return "nil" }
func (*NilLiteral) expressionNode()    {}

type Tuple struct {
	baseExpr
	Token    token.Token
	Elements []Expression
}

func (e *Tuple) Tok() token.Token { return e.Token }
func (e *Tuple) String() string   { return "tuple" }
func (*Tuple) expressionNode()    {}

type List struct {
	baseExpr
	Token    token.Token
	Elements []Expression
}

func (e *List) Tok() token.Token { return e.Token }
func (e *List) String() string   { return "list" }
func (*List) expressionNode()    {}

// Is evaluates `expr is T`.
type Is struct {
	baseExpr
	Token      token.Token
	Expression Expression
	TypeName   string
}

func (e *Is) Tok() token.Token { return e.Token }
func (e *Is) String() string   { return e.Expression.String() + " is " + e.TypeName }
func (*Is) expressionNode()    {}

// CallExpression is `callee(args...)`. IsConstructor is set by the
// checker once Function resolves to a class name rather than a function.
// IsBuiltinMember is set when Function is a Dereferer whose object resolves
// to a primitive type, so the call dispatches through internal/builtins
// rather than a class's method table.
type CallExpression struct {
	baseExpr
	Token           token.Token
	Function        Expression
	Arguments       []Expression
	IsConstructor   bool
	IsBuiltinMember bool
}

func (e *CallExpression) Tok() token.Token { return e.Token }
func (e *CallExpression) String() string   { return "call " + e.Function.String() }
func (*CallExpression) expressionNode()    {}

// Dereferer is member access `object.member`. IsBuiltinMember
// is set by the checker when Object resolves to a primitive type rather than
// a class instance.
type Dereferer struct {
	baseExpr
	Token           token.Token
	Object          Expression
	Member          Expression
	IsBuiltinMember bool
}

func (e *Dereferer) Tok() token.Token { return e.Token }
func (e *Dereferer) String() string   { return e.Object.String() + "." + e.Member.String() }
func (*Dereferer) expressionNode()    {}

type IndexExpression struct {
	baseExpr
	Token token.Token
	Left  Expression
	Index Expression
}

func (e *IndexExpression) Tok() token.Token { return e.Token }
func (e *IndexExpression) String() string   { return e.Left.String() + "[" + e.Index.String() + "]" }
func (*IndexExpression) expressionNode()    {}

// Me refers to the current class instance.
type Me struct {
	baseExpr
	Token token.Token
}

func (e *Me) Tok() token.Token { return e.Token }
func (e *Me) String() string   { return "me" }
func (*Me) expressionNode()    {}

type PrefixExpression struct {
	baseExpr
	Token    token.Token
	Operator string
	Right    Expression
}

func (e *PrefixExpression) Tok() token.Token { return e.Token }
func (e *PrefixExpression) String() string   { return e.Operator + e.Right.String() }
func (*PrefixExpression) expressionNode()    {}

type InfixExpression struct {
	baseExpr
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *InfixExpression) Tok() token.Token { return e.Token }
func (e *InfixExpression) String() string {
	return e.Left.String() + " " + e.Operator + " " + e.Right.String()
}
func (*InfixExpression) expressionNode() {}

type PostfixExpression struct {
	baseExpr
	Token    token.Token
	Left     Expression
	Operator string
}

func (e *PostfixExpression) Tok() token.Token { return e.Token }
func (e *PostfixExpression) String() string   { return e.Left.String() + e.Operator }
func (*PostfixExpression) expressionNode()    {}
