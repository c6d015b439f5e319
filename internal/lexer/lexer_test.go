package lexer

import (
	"testing"

	"github.com/moose-lang/moose/internal/token"
)

func TestNextTokenBasics(t *testing.T) {
	input := `mut a: Int = 5
class Dog < Animal { x: Int }
if true { return nil }
infix +(a, b) { }
"hi" 3.14
`
	want := []struct {
		typ     token.Type
		literal string
	}{
		{token.MUT, "mut"},
		{token.IDENT, "a"},
		{token.COLON, ":"},
		{token.IDENT, "Int"},
		{token.ASSIGN, "="},
		{token.INT, "5"},
		{token.CLASS, "class"},
		{token.IDENT, "Dog"},
		{token.LT, "<"},
		{token.IDENT, "Animal"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.COLON, ":"},
		{token.IDENT, "Int"},
		{token.RBRACE, "}"},
		{token.IF, "if"},
		{token.TRUE, "true"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.NIL, "nil"},
		{token.RBRACE, "}"},
		{token.INFIX, "infix"},
		{token.PLUS, "+"},
		{token.LPAREN, "("},
		{token.IDENT, "a"},
		{token.COMMA, ","},
		{token.IDENT, "b"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.STRING, "hi"},
		{token.FLOAT, "3.14"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w.typ || tok.Literal != w.literal {
			t.Fatalf("token %d: got {%s %q}, want {%s %q}", i, tok.Type, tok.Literal, w.typ, w.literal)
		}
	}
}

func TestNextTokenTracksLineAndColumn(t *testing.T) {
	l := New("a\nb")
	first := l.NextToken()
	if first.Line != 1 {
		t.Errorf("expected first token on line 1, got %d", first.Line)
	}
	second := l.NextToken()
	if second.Line != 2 {
		t.Errorf("expected second token on line 2, got %d", second.Line)
	}
}
