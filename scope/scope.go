/*
Package scope implements the lexically scoped environment used by the
evaluator: a mapping from identifier name to (value, mutable-flag) with
an optional outer link, per §3/§4.6.
*/
package scope

import "github.com/monkeylang/monk/objects"

type binding struct {
	value   objects.Object
	mutable bool
}

// Environment is one frame of the lexical scope chain.
type Environment struct {
	store map[string]binding
	outer *Environment
}

// NewEnvironment creates a root environment with no outer link.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]binding)}
}

// NewEnclosedEnvironment creates a new frame whose outer is env. The
// evaluator uses it for function calls only (blocks run in the current
// frame): the new frame's outer is the function's captured closure
// environment, not necessarily the caller's environment.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]binding), outer: outer}
}

// Get looks up name, walking outward through enclosing frames.
func (e *Environment) Get(name string) (objects.Object, bool) {
	b, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return b.value, ok
}

// Set defines name in the current frame only, per the given mutability.
// A redefinition in the same frame replaces the prior binding (shadows
// it), the usual `let`/`const` declaration behavior.
func (e *Environment) Set(name string, val objects.Object, mutable bool) objects.Object {
	e.store[name] = binding{value: val, mutable: mutable}
	return val
}

// Assign walks outward to find the frame holding name and updates it in
// place. It reports ok=false when no frame holds the name, and
// immutable=true (with ok=false) when the holding frame's binding is
// not mutable.
func (e *Environment) Assign(name string, val objects.Object) (ok bool, immutable bool) {
	if b, found := e.store[name]; found {
		if !b.mutable {
			return false, true
		}
		e.store[name] = binding{value: val, mutable: true}
		return true, false
	}
	if e.outer != nil {
		return e.outer.Assign(name, val)
	}
	return false, false
}
