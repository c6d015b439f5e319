package parser

import (
	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.CLASS:
		return p.parseClassStatement()
	case token.FUNCTION:
		return p.parseFunctionStatement()
	case token.PREFIX, token.INFIX, token.POSTFIX:
		return p.parseOperationStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseSimpleStatement()
	}
}

// parseSimpleStatement parses either an assignment (identifier/tuple/
// index/dereferer target) or a bare expression statement, with an
// optional leading `mut`.
func (p *Parser) parseSimpleStatement() ast.Statement {
	tok := p.curToken
	mutable := false
	if p.curIs(token.MUT) {
		mutable = true
		p.nextToken()
	}

	expr := p.parseExpression(LOWEST)

	var declared *ast.TypeExpr
	if p.peekIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		declared = p.parseTypeExpr()
	}

	if p.peekIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		value := p.parseExpression(LOWEST)
		p.consumeOptionalSemi()
		return &ast.AssignStatement{Token: tok, Target: expr, DeclaredType: declared, Mutable: mutable, Value: value}
	}

	if mutable || declared != nil {
		p.errorf(tok, "expected '=' after declaration")
	}

	p.consumeOptionalSemi()
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

func (p *Parser) consumeOptionalSemi() {
	if p.peekIs(token.SEMI) {
		p.nextToken()
	}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken
	stmt := &ast.ReturnStatement{Token: tok}
	if p.peekIs(token.SEMI) || p.peekIs(token.RBRACE) {
		p.nextToken()
		return stmt
	}
	p.nextToken()
	stmt.ReturnValue = p.parseExpression(LOWEST)
	p.consumeOptionalSemi()
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	cons := p.parseBlockStatement()

	stmt := &ast.IfStatement{Token: tok, Condition: cond, Consequence: cons}
	if p.peekIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		stmt.Alternative = p.parseBlockStatement()
	}
	return stmt
}

func (p *Parser) parseParamList() []*ast.VariableDefinition {
	var params []*ast.VariableDefinition
	if p.peekIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseOneParam())
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseOneParam())
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseOneParam() *ast.VariableDefinition {
	tok := p.curToken
	mutable := false
	if p.curIs(token.MUT) {
		mutable = true
		p.nextToken()
	}
	name := p.curToken.Literal
	var declared *ast.TypeExpr
	if p.peekIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		declared = p.parseTypeExpr()
	}
	return &ast.VariableDefinition{Token: tok, Name: name, DeclaredType: declared, Mutable: mutable}
}

func (p *Parser) parseFunctionStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParamList()

	var ret *ast.TypeExpr
	if p.peekIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		ret = p.parseTypeExpr()
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	return &ast.FunctionStatement{Token: tok, Name: name, Params: params, ReturnType: ret, Body: body}
}

var operatorSymbols = map[token.Type]bool{
	token.PLUS: true, token.MINUS: true, token.ASTERISK: true, token.SLASH: true,
	token.PERCENT: true, token.LT: true, token.GT: true, token.LE: true, token.GE: true,
	token.EQ: true, token.NOT_EQ: true, token.AND: true, token.OR: true, token.BANG: true,
}

func (p *Parser) parseOperationStatement() ast.Statement {
	tok := p.curToken
	var pos ast.Position
	switch tok.Type {
	case token.PREFIX:
		pos = ast.Prefix
	case token.INFIX:
		pos = ast.Infix
	case token.POSTFIX:
		pos = ast.Postfix
	}
	p.nextToken()
	if !operatorSymbols[p.curToken.Type] {
		p.errorf(p.curToken, "expected an operator symbol, got %s", p.curToken.Type)
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParamList()

	var ret *ast.TypeExpr
	if p.peekIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		ret = p.parseTypeExpr()
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	return &ast.OperationStatement{Token: tok, Name: name, Position: pos, Params: params, ReturnType: ret, Body: body}
}

func (p *Parser) parseClassStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal

	super := ""
	if p.peekIs(token.LT) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		super = p.curToken.Literal
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()

	stmt := &ast.ClassStatement{Token: tok, Name: name, SuperClass: super}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		switch p.curToken.Type {
		case token.FUNCTION:
			if fn, ok := p.parseFunctionStatement().(*ast.FunctionStatement); ok {
				stmt.Methods = append(stmt.Methods, fn)
			}
		case token.PREFIX, token.INFIX, token.POSTFIX:
			if op, ok := p.parseOperationStatement().(*ast.OperationStatement); ok {
				stmt.Operators = append(stmt.Operators, op)
			}
		case token.IDENT, token.MUT:
			stmt.Properties = append(stmt.Properties, p.parsePropertyDecl())
		default:
			p.errorf(p.curToken, "unexpected token %s in class body", p.curToken.Type)
		}
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parsePropertyDecl() *ast.VariableDefinition {
	tok := p.curToken
	mutable := false
	if p.curIs(token.MUT) {
		mutable = true
		p.nextToken()
	}
	name := p.curToken.Literal
	var declared *ast.TypeExpr
	if p.expectPeek(token.COLON) {
		p.nextToken()
		declared = p.parseTypeExpr()
	}
	p.consumeOptionalSemi()
	return &ast.VariableDefinition{Token: tok, Name: name, DeclaredType: declared, Mutable: mutable}
}

// parseTypeExpr parses a type annotation: a primitive/class name, a tuple
// `(T, U)`, a list `[T]`, or a function type `(T, U) -> R`.
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	tok := p.curToken
	switch {
	case p.curIs(token.LBRACKET):
		p.nextToken()
		elem := p.parseTypeExpr()
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		return &ast.TypeExpr{Token: tok, IsList: true, Element: elem}
	case p.curIs(token.LPAREN):
		var elems []*ast.TypeExpr
		if !p.peekIs(token.RPAREN) {
			p.nextToken()
			elems = append(elems, p.parseTypeExpr())
			for p.peekIs(token.COMMA) {
				p.nextToken()
				p.nextToken()
				elems = append(elems, p.parseTypeExpr())
			}
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		if p.peekIs(token.ARROW) {
			p.nextToken()
			p.nextToken()
			ret := p.parseTypeExpr()
			return &ast.TypeExpr{Token: tok, IsFunc: true, Params: elems, Return: ret}
		}
		return &ast.TypeExpr{Token: tok, IsTuple: true, Elements: elems}
	default:
		return &ast.TypeExpr{Token: tok, Name: p.curToken.Literal}
	}
}
