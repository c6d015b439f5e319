package object

import (
	"fmt"
	"strings"

	"github.com/moose-lang/moose/internal/ast"
)

// Kind enumerates the runtime panic exit codes.
type Kind string

const (
	NilUsage    Kind = "NilUsage"
	OutOfBounds Kind = "OutOfBounds"
	Ambiguity   Kind = "Ambiguity"
	NotFound    Kind = "NotFound"
	Generic     Kind = "Generic"
)

// Frame is one entry in a panic's accumulated stack trace: each
// AST-visiting call site that rethrows a panic pushes its node. Frames
// travel as ordinary return values through Eval rather than unwinding
// via a real Go panic/recover — the internal return-signal and panic
// control flow never leaks out of its owning call as a Go-level panic.
type Frame struct {
	Line   int
	Column int
	Desc   string
}

// Panic is a runtime error value: not a Go panic, an
// ordinary Object-adjacent value threaded up the evaluator's call chain
// until the outermost `run` call formats it.
type Panic struct {
	Kind    Kind
	Message string
	Length  int // OutOfBounds
	Index   int // OutOfBounds
	Trace   []Frame
}

func NewPanic(kind Kind, message string) *Panic {
	return &Panic{Kind: kind, Message: message}
}

func NewOutOfBounds(length, index int) *Panic {
	return &Panic{
		Kind:    OutOfBounds,
		Message: fmt.Sprintf("index %d out of bounds for length %d", index, length),
		Length:  length,
		Index:   index,
	}
}

func NewNilUsage(what string) *Panic {
	return &Panic{Kind: NilUsage, Message: "use of nil " + what}
}

func NewNotFound(kind, name string) *Panic {
	return &Panic{Kind: NotFound, Message: kind + " '" + name + "' not found"}
}

func NewAmbiguity(name string) *Panic {
	return &Panic{Kind: Ambiguity, Message: "ambiguous call to '" + name + "'"}
}

// WithFrame appends a trace frame for the given node and returns the same
// Panic, so call sites can write `return nil, p.WithFrame(node)`.
func (p *Panic) WithFrame(node ast.Node) *Panic {
	tok := node.Tok()
	p.Trace = append(p.Trace, Frame{Line: tok.Line, Column: tok.Column, Desc: node.String()})
	return p
}

func (p *Panic) Error() string { return p.Format() }

// Format renders the panic and its trace, innermost frame first.
func (p *Panic) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "panic: %s", p.Message)
	if len(p.Trace) > 0 {
		b.WriteString("\nstack trace:")
		for _, f := range p.Trace {
			fmt.Fprintf(&b, "\n  at %d:%d in %s", f.Line, f.Column, f.Desc)
		}
	}
	return b.String()
}
