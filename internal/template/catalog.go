package template

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for template lookup.
var (
	// ErrNotFound indicates the requested template name is not in the
	// catalog. This is a caller bug, not a retryable condition.
	ErrNotFound = errors.New("template not found")

	// ErrUnknownArea indicates a practice area outside the closed
	// [PracticeArea] set.
	ErrUnknownArea = errors.New("unknown practice area")
)

// Catalog is a read-only collection of templates keyed by name.
//
// Populated once via [NewCatalog] and never mutated; safe for concurrent
// use by many workflow runs. Insertion order is preserved by
// [Catalog.List].
type Catalog struct {
	byName map[string]Template
	order  []string
}

// NewCatalog creates a [Catalog] from the given templates.
//
// Names are keyed case-insensitively and must be unique. Every template
// must carry a name, a non-empty body and a valid practice area.
func NewCatalog(templates ...Template) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]Template, len(templates)),
		order:  make([]string, 0, len(templates)),
	}

	for _, t := range templates {
		if t.Name == "" {
			return nil, fmt.Errorf("template %q: name is required", t.Title)
		}
		if strings.TrimSpace(t.Body) == "" {
			return nil, fmt.Errorf("template %q: body is required", t.Name)
		}
		if !t.PracticeArea.Valid() {
			return nil, fmt.Errorf("template %q: %w: %q", t.Name, ErrUnknownArea, t.PracticeArea)
		}

		key := strings.ToLower(strings.TrimSpace(t.Name))
		if _, exists := c.byName[key]; exists {
			return nil, fmt.Errorf("template %q: duplicate name", t.Name)
		}
		c.byName[key] = t
		c.order = append(c.order, key)
	}

	return c, nil
}

// Get returns the template registered under the given name.
//
// Lookup is case-insensitive. Returns [ErrNotFound] (wrapped with the
// name) if no such template exists.
func (c *Catalog) Get(name string) (Template, error) {
	t, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return t, nil
}

// List returns all templates in insertion order.
func (c *Catalog) List() []Template {
	out := make([]Template, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.byName[key])
	}
	return out
}

// ListByArea returns the templates for the given practice area, insertion
// order preserved. Returns [ErrUnknownArea] for an area outside the
// closed set.
func (c *Catalog) ListByArea(a PracticeArea) ([]Template, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArea, a)
	}

	var out []Template
	for _, key := range c.order {
		if t := c.byName[key]; t.PracticeArea == a {
			out = append(out, t)
		}
	}
	return out, nil
}
