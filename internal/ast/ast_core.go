// Package ast defines the AST node kinds consumed by the checker and
// the evaluator.
package ast

import (
	"github.com/moose-lang/moose/internal/token"
	"github.com/moose-lang/moose/internal/types"
)

// Node is the root of every AST node. Every node carries the token that
// introduced it, used for panic-trace frames and compile-error positions.
type Node interface {
	Tok() token.Token
	String() string
}

// Statement nodes appear directly inside a Program or a Block.
type Statement interface {
	Node
	statementNode()
}

// Expression nodes produce a Value when evaluated, and carry the type the
// checker inferred for them (read by the evaluator when resolving
// overloads).
type Expression interface {
	Node
	expressionNode()
	SetMooseType(t types.Type)
	MooseType() types.Type
}

// baseExpr factors the MooseType slot so every concrete expression node
// doesn't repeat the boilerplate.
type baseExpr struct {
	Type types.Type
}

func (b *baseExpr) SetMooseType(t types.Type) { b.Type = t }
func (b *baseExpr) MooseType() types.Type     { return b.Type }

// Program is the root node: a sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Tok() token.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].Tok()
	}
	return token.Token{}
}
func (p *Program) String() string { return "Program" }
