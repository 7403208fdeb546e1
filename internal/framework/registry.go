package framework

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for framework lookup.
var (
	// ErrNotFound indicates the requested framework acronym is not
	// registered. This is a caller bug (bad workflow definition or typo);
	// it is never retried.
	ErrNotFound = errors.New("framework not found")

	// ErrUnknownCategory indicates a category filter or framework
	// definition used a value outside the closed [Category] set.
	ErrUnknownCategory = errors.New("unknown framework category")
)

// Registry is a read-only collection of frameworks keyed by acronym.
//
// A Registry is populated once via [NewRegistry] and never mutated, so it
// may be shared by any number of concurrent workflow runs without
// synchronisation. Insertion order is preserved by [Registry.List].
type Registry struct {
	byAcronym map[string]Framework
	order     []string
}

// NewRegistry creates a [Registry] from the given frameworks.
//
// Acronyms are keyed case-insensitively and must be unique. Every
// framework must carry an acronym, at least one component, and a valid
// [Category].
func NewRegistry(frameworks ...Framework) (*Registry, error) {
	r := &Registry{
		byAcronym: make(map[string]Framework, len(frameworks)),
		order:     make([]string, 0, len(frameworks)),
	}

	for _, f := range frameworks {
		if f.Acronym == "" {
			return nil, fmt.Errorf("framework %q: acronym is required", f.Name)
		}
		if len(f.Components) == 0 {
			return nil, fmt.Errorf("framework %q: at least one component is required", f.Acronym)
		}
		if !f.Category.Valid() {
			return nil, fmt.Errorf("framework %q: %w: %q", f.Acronym, ErrUnknownCategory, f.Category)
		}

		key := normalizeAcronym(f.Acronym)
		if _, exists := r.byAcronym[key]; exists {
			return nil, fmt.Errorf("framework %q: duplicate acronym", f.Acronym)
		}
		r.byAcronym[key] = f
		r.order = append(r.order, key)
	}

	return r, nil
}

// Get returns the framework registered under the given acronym.
//
// Lookup is case-insensitive. Returns [ErrNotFound] (wrapped with the
// acronym) if no such framework is registered.
func (r *Registry) Get(acronym string) (Framework, error) {
	f, ok := r.byAcronym[normalizeAcronym(acronym)]
	if !ok {
		return Framework{}, fmt.Errorf("%w: %s", ErrNotFound, acronym)
	}
	return f, nil
}

// List returns all registered frameworks in insertion order.
func (r *Registry) List() []Framework {
	out := make([]Framework, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byAcronym[key])
	}
	return out
}

// ListByCategory returns the frameworks in the given category, insertion
// order preserved. Returns [ErrUnknownCategory] for a category outside the
// closed set; a valid category never yields an empty result in the default
// registry.
func (r *Registry) ListByCategory(c Category) ([]Framework, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}

	var out []Framework
	for _, key := range r.order {
		if f := r.byAcronym[key]; f.Category == c {
			out = append(out, f)
		}
	}
	return out, nil
}

func normalizeAcronym(acronym string) string {
	return strings.ToUpper(strings.TrimSpace(acronym))
}
