// Package checker implements Moose's type checker: global exploration
// (forward-reference registration of top-level functions/operators/
// classes) followed by a full AST walk that annotates every Expression's
// MooseType and collects Diagnostics. Overloads resolve by nominal
// subtyping via internal/dispatch + internal/scope.
package checker

import (
	"fmt"
	"strings"

	"github.com/moose-lang/moose/internal/ast"
)

// Diagnostic is one compile-time error, positioned at the token of the
// node that produced it.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

// Diagnostics collects Diagnostic values for one Check run.
type Diagnostics struct {
	items []Diagnostic
}

func (d *Diagnostics) Add(node ast.Node, format string, args...interface{}) {
	tok := node.Tok()
	d.items = append(d.items, Diagnostic{Line: tok.Line, Column: tok.Column, Message: fmt.Sprintf(format, args...)})
}

func (d *Diagnostics) AddErr(node ast.Node, err error) {
	if err == nil {
		return
	}
	d.Add(node, "%s", err.Error())
}

func (d *Diagnostics) HasErrors() bool    { return len(d.items) > 0 }
func (d *Diagnostics) List() []Diagnostic { return d.items }

func (d *Diagnostics) Error() string {
	lines := make([]string, len(d.items))
	for i, it := range d.items {
		lines[i] = fmt.Sprintf("%d:%d: %s", it.Line, it.Column, it.Message)
	}
	return strings.Join(lines, "\n")
}
