package object

// AddClassTemplate registers a new class template in THIS environment
// (the runtime twin of scope.AddClass).
func (e *Environment) AddClassTemplate(name, superClassName string) *ClassTemplate {
	ct := newClassTemplate(name, superClassName)
	e.classes[name] = ct
	return ct
}

// FindClassTemplate looks up a class template, honoring the closed flag.
func (e *Environment) FindClassTemplate(name string) (*ClassTemplate, bool) {
	if ct, ok := e.classes[name]; ok {
		return ct, true
	}
	if e.closed || e.parent == nil {
		return nil, false
	}
	return e.parent.FindClassTemplate(name)
}

// Classes returns this environment's OWN class templates — used to drive
// a full flatten pass over every top-level class after global exploration
// (mirrors scope.Scope.Classes).
func (e *Environment) Classes() map[string]*ClassTemplate { return e.classes }

// IsAncestor implements types.Ancestry over the runtime class registry
// (mirrors scope.Scope.IsAncestor) so the evaluator's `is`/superOf checks
// share the exact same walk as the checker's.
func (e *Environment) IsAncestor(ancestor, descendant string) bool {
	if ancestor == descendant {
		return true
	}
	seen := make(map[string]bool)
	cur := descendant
	for {
		ct, ok := e.FindClassTemplate(cur)
		if !ok {
			return false
		}
		if ct.SuperClassName == "" {
			return false
		}
		if ct.SuperClassName == ancestor {
			return true
		}
		if seen[ct.SuperClassName] {
			return false
		}
		seen[ct.SuperClassName] = true
		cur = ct.SuperClassName
	}
}
