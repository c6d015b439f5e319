package object

import (
	"strings"
	"testing"

	"github.com/moose-lang/moose/internal/token"
)

type fakeNode struct {
	tok  token.Token
	desc string
}

func (f fakeNode) Tok() token.Token { return f.tok }
func (f fakeNode) String() string   { return f.desc }

func TestPanicTraceAccumulatesInnermostFirst(t *testing.T) {
	p := NewPanic(Generic, "boom")
	inner := fakeNode{tok: token.Token{Line: 3, Column: 5}, desc: "inner"}
	outer := fakeNode{tok: token.Token{Line: 1, Column: 1}, desc: "outer"}

	p.WithFrame(inner)
	p.WithFrame(outer)

	formatted := p.Format()
	innerIdx := strings.Index(formatted, "inner")
	outerIdx := strings.Index(formatted, "outer")
	if innerIdx == -1 || outerIdx == -1 || innerIdx > outerIdx {
		t.Errorf("expected innermost frame (pushed first) to print before the outer one, got:\n%s", formatted)
	}
}

func TestNewOutOfBoundsCarriesLengthAndIndex(t *testing.T) {
	p := NewOutOfBounds(3, 3)
	if p.Kind != OutOfBounds || p.Length != 3 || p.Index != 3 {
		t.Errorf("NewOutOfBounds(3, 3) = %+v, want Kind=OutOfBounds Length=3 Index=3", p)
	}
}
