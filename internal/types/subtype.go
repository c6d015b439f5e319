package types

// Ancestry answers class-inheritance questions without types depending on
// the scope or classflat packages (which own the inheritance chains).
type Ancestry interface {
	// IsAncestor reports whether `ancestor` appears in `descendant`'s
	// superclass chain (or ancestor == descendant).
	IsAncestor(ancestor, descendant string) bool
}

// SuperOf reports whether self is a supertype of t: self.SuperOf(t)
// holds when t == self, self is a class ancestor of t, or t is Nil.
//
// Tuples and lists are covariant on their element types (structural,
// recursing through SuperOf); function types are invariant (struct
// equality only).
func SuperOf(self Type, ancestry Ancestry, t Type) bool {
	if _, isNil := t.(Nil); isNil {
		return true
	}
	switch s := self.(type) {
	case Class:
		if tc, ok := t.(Class); ok {
			return ancestry.IsAncestor(s.Name, tc.Name)
		}
		return false
	case Tuple:
		tt, ok := t.(Tuple)
		if !ok || len(tt.Elements) != len(s.Elements) {
			return false
		}
		for i := range s.Elements {
			if !SuperOf(s.Elements[i], ancestry, tt.Elements[i]) {
				return false
			}
		}
		return true
	case List:
		tl, ok := t.(List)
		if !ok {
			return false
		}
		return SuperOf(s.Element, ancestry, tl.Element)
	case Function:
		// Invariant: only structural equality, no widening.
		return s.Equal(t)
	default:
		return self.Equal(t)
	}
}
