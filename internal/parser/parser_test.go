package parser_test

import (
	"testing"

	"github.com/moose-lang/moose/internal/ast"
	"github.com/moose-lang/moose/internal/lexer"
	"github.com/moose-lang/moose/internal/parser"
)

func parseOne(t *testing.T, src string) ast.Statement {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected exactly 1 statement for %q, got %d", src, len(program.Statements))
	}
	return program.Statements[0]
}

func TestParseSimpleAssignment(t *testing.T) {
	stmt, ok := parseOne(t, "a = 5").(*ast.AssignStatement)
	if !ok {
		t.Fatalf("expected *ast.AssignStatement")
	}
	ident, ok := stmt.Target.(*ast.Identifier)
	if !ok || ident.Value != "a" {
		t.Errorf("target = %#v, want Identifier(a)", stmt.Target)
	}
	if _, ok := stmt.Value.(*ast.IntegerLiteral); !ok {
		t.Errorf("expected an integer literal value")
	}
}

func TestParseInfixPrecedence(t *testing.T) {
	stmt := parseOne(t, "a = 5 + 2 * 10").(*ast.AssignStatement)
	infix, ok := stmt.Value.(*ast.InfixExpression)
	if !ok || infix.Operator != "+" {
		t.Fatalf("expected top-level + infix, got %#v", stmt.Value)
	}
	right, ok := infix.Right.(*ast.InfixExpression)
	if !ok || right.Operator != "*" {
		t.Errorf("expected * to bind tighter than +, got right=%#v", infix.Right)
	}
}

func TestParseTupleLiteralAndDestructureTarget(t *testing.T) {
	stmt := parseOne(t, "(a, b) = (1, 2)").(*ast.AssignStatement)
	target, ok := stmt.Target.(*ast.Tuple)
	if !ok || len(target.Elements) != 2 {
		t.Fatalf("expected a 2-element tuple target, got %#v", stmt.Target)
	}
	value, ok := stmt.Value.(*ast.Tuple)
	if !ok || len(value.Elements) != 2 {
		t.Fatalf("expected a 2-element tuple value, got %#v", stmt.Value)
	}
}

func TestParseIndexWithNegativeIndex(t *testing.T) {
	stmt := parseOne(t, "a = l[-1]").(*ast.AssignStatement)
	idx, ok := stmt.Value.(*ast.IndexExpression)
	if !ok {
		t.Fatalf("expected an index expression, got %#v", stmt.Value)
	}
	if _, ok := idx.Left.(*ast.Identifier); !ok {
		t.Errorf("expected index target to be an identifier")
	}
	if _, ok := idx.Index.(*ast.PrefixExpression); !ok {
		t.Errorf("expected -1 to parse as a prefix expression index, got %#v", idx.Index)
	}
}

func TestParseDereferer(t *testing.T) {
	stmt := parseOne(t, "a = b.x").(*ast.AssignStatement)
	deref, ok := stmt.Value.(*ast.Dereferer)
	if !ok {
		t.Fatalf("expected a dereferer expression, got %#v", stmt.Value)
	}
	if obj, ok := deref.Object.(*ast.Identifier); !ok || obj.Value != "b" {
		t.Errorf("expected dereferer object to be identifier b, got %#v", deref.Object)
	}
}

func TestParseClassWithSuperclassAndProperty(t *testing.T) {
	stmt, ok := parseOne(t, "class Dog < Animal { x: Int }").(*ast.ClassStatement)
	if !ok {
		t.Fatalf("expected *ast.ClassStatement")
	}
	if stmt.Name != "Dog" || stmt.SuperClass != "Animal" {
		t.Errorf("class = %q < %q, want Dog < Animal", stmt.Name, stmt.SuperClass)
	}
	if len(stmt.Properties) != 1 || stmt.Properties[0].Name != "x" {
		t.Errorf("expected one property named x, got %#v", stmt.Properties)
	}
}

func TestParsePostfixInvocation(t *testing.T) {
	stmt := parseOne(t, "a = b!").(*ast.AssignStatement)
	post, ok := stmt.Value.(*ast.PostfixExpression)
	if !ok {
		t.Fatalf("expected a postfix expression, got %#v", stmt.Value)
	}
	if post.Operator != "!" {
		t.Errorf("operator = %q, want !", post.Operator)
	}
	if left, ok := post.Left.(*ast.Identifier); !ok || left.Value != "b" {
		t.Errorf("expected postfix operand to be identifier b, got %#v", post.Left)
	}

	// A trailing operator inside a larger expression still binds postfix.
	stmt2 := parseOne(t, "a = b! + c").(*ast.AssignStatement)
	infix, ok := stmt2.Value.(*ast.InfixExpression)
	if !ok || infix.Operator != "+" {
		t.Fatalf("expected top-level + infix, got %#v", stmt2.Value)
	}
	if _, ok := infix.Left.(*ast.PostfixExpression); !ok {
		t.Errorf("expected b! to parse as the left operand, got %#v", infix.Left)
	}
}

func TestParsePostfixOperatorDeclaration(t *testing.T) {
	stmt, ok := parseOne(t, "postfix !(n: Int) -> Int { return n }").(*ast.OperationStatement)
	if !ok {
		t.Fatalf("expected *ast.OperationStatement")
	}
	if stmt.Name != "!" || stmt.Position != ast.Postfix {
		t.Errorf("operator = %q position %v, want ! postfix", stmt.Name, stmt.Position)
	}
}

func TestParseInfixOperatorDeclaration(t *testing.T) {
	stmt, ok := parseOne(t, "infix +(a: Int, b: Int) -> Int { return a - b }").(*ast.OperationStatement)
	if !ok {
		t.Fatalf("expected *ast.OperationStatement")
	}
	if stmt.Name != "+" || stmt.Position != ast.Infix {
		t.Errorf("operator = %q position %v, want + infix", stmt.Name, stmt.Position)
	}
	if len(stmt.Params) != 2 {
		t.Errorf("expected 2 params, got %d", len(stmt.Params))
	}
}
