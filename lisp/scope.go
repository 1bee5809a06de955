package lisp

import "fmt"

// Scope is a flat set of variable bindings.  Names are unique and the last
// Put for a name wins.
type Scope struct {
	values []Value
	index  map[string]int
}

// NewScope creates and initializes a new Scope that has initial capacity to
// hold n bindings.
func NewScope(n int) *Scope {
	return &Scope{
		values: make([]Value, 0, n),
		index:  make(map[string]int, n),
	}
}

// Len returns the number of names bound.
func (s *Scope) Len() int {
	return len(s.values)
}

// Get returns the value bound to name.
func (s *Scope) Get(name string) (Value, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.values[i], true
}

// Put binds name to v.  If name was previously bound its entry will be
// updated.  Otherwise Put creates a new binding.
func (s *Scope) Put(name string, v Value) {
	i, ok := s.index[name]
	if ok {
		s.values[i] = v
		return
	}
	s.index[name] = len(s.values)
	s.values = append(s.values, v)
}

func (s *Scope) extend(n int) *Scope {
	cp := NewScope(len(s.values) + n)
	cp.values = append(cp.values, s.values...)
	for k, v := range s.index {
		cp.index[k] = v
	}
	return cp
}

// Extend returns a copy of s overlaid with bindings that zip names with vals.
// s itself is not modified.  Extend returns an error if names and vals have
// unequal lengths.
func (s *Scope) Extend(names []string, vals []Value) (*Scope, error) {
	if len(names) != len(vals) {
		return nil, fmt.Errorf("variable and value lists have unequal lengths")
	}
	cp := s.extend(len(names))
	for i, name := range names {
		cp.Put(name, vals[i])
	}
	return cp, nil
}
