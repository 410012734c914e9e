/*
File    : go-lotus/scope/scope.go
Project : Lotus Interpreter
*/

// Package scope implements the lexically scoped environment of the Lotus
// interpreter: a chain of frames mapping identifier names to runtime
// values. Declarations bind in the innermost frame; reads walk outward;
// reassignment mutates the nearest frame that already binds the name.
package scope

import "github.com/multipixels/go-lotus/objects"

// Scope is a single environment frame plus a link to its outer frame.
// A stack of frames realizes lexical scope.
type Scope struct {
	store map[string]objects.LotusObject
	outer *Scope
}

// NewScope creates a frame nested inside the given outer frame. Pass nil
// for the outermost (program) frame.
func NewScope(outer *Scope) *Scope {
	return &Scope{
		store: make(map[string]objects.LotusObject),
		outer: outer,
	}
}

// LookUp returns the value bound to the name, walking the outer chain.
func (s *Scope) LookUp(name string) (objects.LotusObject, bool) {
	obj, ok := s.store[name]
	if !ok && s.outer != nil {
		return s.outer.LookUp(name)
	}
	return obj, ok
}

// LookUpLocal consults only this frame.
func (s *Scope) LookUpLocal(name string) (objects.LotusObject, bool) {
	obj, ok := s.store[name]
	return obj, ok
}

// Bind stores the value in this frame. Used by declarations and by
// iteration-variable binding; callers are responsible for checking local
// shadows first.
func (s *Scope) Bind(name string, obj objects.LotusObject) {
	s.store[name] = obj
}

// Reassign mutates the nearest enclosing frame that already binds the
// name. It reports whether a binding was found; callers are expected to
// pre-check with LookUp.
func (s *Scope) Reassign(name string, obj objects.LotusObject) bool {
	if _, ok := s.store[name]; ok {
		s.store[name] = obj
		return true
	}
	if s.outer != nil {
		return s.outer.Reassign(name, obj)
	}
	return false
}
