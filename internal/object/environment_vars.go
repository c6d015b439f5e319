package object

// Define binds name to value in THIS environment, unconditionally
// overwriting any existing binding of the same name in this
// environment — unlike scope.AddVar there is no
// same-type duplicate error at runtime, since a re-executed declaration
// (e.g. a loop body) is expected to rebind.
func (e *Environment) Define(name string, value Object, mutable bool) {
	e.vars[name] = &binding{Value: value, Mutable: mutable}
}

// Get looks up a variable's current value, honoring the closed flag.
func (e *Environment) Get(name string) (Object, bool) {
	if b, ok := e.vars[name]; ok {
		return b.Value, true
	}
	if e.closed || e.parent == nil {
		return nil, false
	}
	return e.parent.Get(name)
}

// IsMut reports a variable's mutability, honoring the closed flag.
func (e *Environment) IsMut(name string) (bool, bool) {
	if b, ok := e.vars[name]; ok {
		return b.Mutable, true
	}
	if e.closed || e.parent == nil {
		return false, false
	}
	return e.parent.IsMut(name)
}

// Assign mutates the value of an already-declared variable in place,
// searching outward through the environment chain (honoring closed) for
// the environment that owns it — the assignment path for a name that
// already exists. Returns false if no such binding is
// found anywhere in the reachable chain.
func (e *Environment) Assign(name string, value Object) bool {
	if b, ok := e.vars[name]; ok {
		b.Value = value
		return true
	}
	if e.closed || e.parent == nil {
		return false
	}
	return e.parent.Assign(name, value)
}
