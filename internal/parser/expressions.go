package parser

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/token"
)

// parseGroupedOrTuple handles `(expr)` (grouping) and `(a, b, ...)` (a
// Tuple literal, also reused as a tuple-destructuring assignment target).
func (p *Parser) parseGroupedOrTuple() ast.Expression {
	tok := p.curToken
	p.nextToken()

	if p.curIs(token.RPAREN) {
		return &ast.Tuple{Token: tok}
	}

	first := p.parseExpression(LOWEST)

	if p.peekIs(token.COMMA) {
		elems := []ast.Expression{first}
		for p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			elems = append(elems, p.parseExpression(LOWEST))
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return &ast.Tuple{Token: tok, Elements: elems}
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return first
}

func (p *Parser) parseListLiteral() ast.Expression {
	tok := p.curToken
	list := &ast.List{Token: tok}
	if p.peekIs(token.RBRACKET) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list.Elements = append(list.Elements, p.parseExpression(LOWEST))
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list.Elements = append(list.Elements, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return list
}

func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Function: fn}
	expr.Arguments = p.parseExpressionList(token.RPAREN)
	return expr
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression
	if p.peekIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.curToken, Left: left}
	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return expr
}

func (p *Parser) parseDereferer(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	member := p.parseExpression(DOT)
	return &ast.Dereferer{Token: tok, Object: left, Member: member}
}

func (p *Parser) parseIs(left ast.Expression) ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.Is{Token: tok, Expression: left, TypeName: p.curToken.Literal}
}
