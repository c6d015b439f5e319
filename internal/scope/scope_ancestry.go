package scope

// IsAncestor implements types.Ancestry: ancestor is a (reflexive)
// superclass of descendant if walking descendant's declared
// SuperClassName chain reaches ancestor.
func (s *Scope) IsAncestor(ancestor, descendant string) bool {
	if ancestor == descendant {
		return true
	}
	seen := make(map[string]bool)
	cur := descendant
	for {
		cs, ok := s.FindClass(cur)
		if !ok {
			return false
		}
		if cs.SuperClassName == "" {
			return false
		}
		if cs.SuperClassName == ancestor {
			return true
		}
		if seen[cs.SuperClassName] {
			return false // cycle; classflat should already have rejected this
		}
		seen[cs.SuperClassName] = true
		cur = cs.SuperClassName
	}
}
