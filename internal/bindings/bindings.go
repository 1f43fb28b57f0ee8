// Package bindings maps free identifier names to parameter slots.
//
// A Set is the single source of truth for three things that must agree:
// the declared parameter count of a compiled function, the slot each
// identifier resolves to during code generation, and the order of the
// argument vector at call time. Deriving all three from one ordered
// collection is what makes parameter order deterministic.
package bindings

import (
	"errors"
	"fmt"
)

// ErrUnbound reports an identifier that is not present in the Set.
var ErrUnbound = errors.New("unbound identifier")

// Set is an ordered, deduplicated collection of identifier names.
// Insertion order is the parameter order; duplicates keep their first
// position. A Set is immutable after New.
type Set struct {
	names []string
	index map[string]int
}

// New builds a Set from names in order, dropping repeated names.
func New(names ...string) *Set {
	s := &Set{index: make(map[string]int, len(names))}
	for _, name := range names {
		if _, ok := s.index[name]; ok {
			continue
		}
		s.index[name] = len(s.names)
		s.names = append(s.names, name)
	}
	return s
}

// Index returns the zero-based parameter slot for name.
func (s *Set) Index(name string) (int, error) {
	idx, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnbound, name)
	}
	return idx, nil
}

// Contains reports whether name is bound.
func (s *Set) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len is the number of bound names, and therefore the function arity.
func (s *Set) Len() int {
	return len(s.names)
}

// Names returns the bound names in parameter order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Args orders a name→value map into the positional argument vector the
// compiled function expects. Every bound name must be present in values.
func (s *Set) Args(values map[string]float64) ([]float64, error) {
	args := make([]float64, len(s.names))
	for i, name := range s.names {
		v, ok := values[name]
		if !ok {
			return nil, fmt.Errorf("missing value for parameter %q", name)
		}
		args[i] = v
	}
	return args, nil
}
