package workflow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates the requested workflow name is not registered.
// This is a caller bug (bad name from the CLI or a stale reference), not
// a retryable condition.
var ErrNotFound = errors.New("workflow not found")

// Store is a read-only collection of validated workflow definitions.
//
// Every definition passes [Definition.Validate] on the way in, so
// consumers can rely on structural invariants (unique step IDs,
// satisfiable inputs) without re-checking. Insertion order is preserved
// by [Store.List].
type Store struct {
	byName map[string]Definition
	order  []string
}

// NewStore creates a [Store] containing the given definitions.
//
// Each definition is validated; the first invalid one aborts
// construction. Names are keyed case-insensitively and must be unique.
func NewStore(defs ...Definition) (*Store, error) {
	s := &Store{
		byName: make(map[string]Definition, len(defs)),
		order:  make([]string, 0, len(defs)),
	}
	for _, d := range defs {
		if err := s.register(d); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// register validates and adds a definition. The Store type exposes no
// public mutation: registration happens only during construction, in
// [NewStore], keeping the store read-only once shared.
func (s *Store) register(d Definition) error {
	if err := d.Validate(); err != nil {
		return err
	}

	key := strings.ToLower(strings.TrimSpace(d.Name))
	if _, exists := s.byName[key]; exists {
		return fmt.Errorf("workflow %q: duplicate name", d.Name)
	}
	s.byName[key] = d
	s.order = append(s.order, key)
	return nil
}

// Get returns the definition registered under the given name.
//
// Lookup is case-insensitive. Returns [ErrNotFound] (wrapped with the
// name) if no such workflow is registered.
func (s *Store) Get(name string) (Definition, error) {
	d, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return d, nil
}

// List returns all definitions in insertion order.
func (s *Store) List() []Definition {
	out := make([]Definition, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byName[key])
	}
	return out
}
