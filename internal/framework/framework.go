// Package framework provides the registry of prompting frameworks for lexflow.
//
// A prompting framework is a named, structured template describing how to
// organise a prompt's components (RICE, ABCDE, 7Ps and so on), adapted for
// South African legal practice. Frameworks are inert data: they are defined
// once, registered into a [Registry] at startup, and never mutated.
//
// Key types:
//   - [Framework] - a framework definition with ordered [Component] entries
//   - [Registry] - read-only lookup by acronym, built with [NewRegistry]
//   - [Category] - the closed set of framework categories
//
// [DefaultRegistry] returns the built-in framework set. Tests construct
// small registries with [NewRegistry] instead of sharing package state.
package framework

import (
	"fmt"
	"sort"
	"strings"
)

// Category classifies a framework by the kind of prompting technique it applies.
type Category string

// The closed set of framework categories. Categories are fixed at design
// time; [Category.Valid] rejects anything outside this set.
const (
	CategoryStructural   Category = "structural"
	CategoryIterative    Category = "iterative"
	CategoryReasoning    Category = "reasoning"
	CategoryVerification Category = "verification"
	CategorySpecialized  Category = "specialized"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryStructural,
	CategoryIterative,
	CategoryReasoning,
	CategoryVerification,
	CategorySpecialized,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStructural, CategoryIterative, CategoryReasoning,
		CategoryVerification, CategorySpecialized:
		return true
	}
	return false
}

// Component is a single ordered element of a framework.
//
// Label is the section marker rendered into the prompt (e.g. "ROLE"),
// Guidance tells the practitioner what belongs in that section, and
// Example shows a filled-in SA legal instance.
type Component struct {
	Label    string
	Guidance string
	Example  string
}

// Framework is an immutable prompting framework definition.
//
// Components are ordered; rendering preserves that order. Adaptations list
// the South African practice adjustments layered onto the source framework.
type Framework struct {
	// Name is the full expansion of the acronym.
	Name string

	// Acronym is the registry key (e.g. "RICE"). Lookup is case-insensitive.
	Acronym string

	Category    Category
	Description string
	Components  []Component

	// Adaptations are SA-specific usage notes appended to rendered prompts.
	Adaptations []string

	// BestFor lists the work products this framework suits.
	BestFor []string

	// Difficulty is "Beginner", "Intermediate" or "Advanced".
	Difficulty string

	// Source credits the bar association or publication the framework
	// originates from.
	Source string
}

// Render produces concrete prompt text from the framework skeleton.
//
// Each component is emitted as a bracketed section with its guidance, and
// every supplied input is appended under a "Matter Material" heading so the
// framework sections can reference it. Inputs are emitted in sorted name
// order so rendering is deterministic for identical input maps.
func (f Framework) Render(inputs map[string]string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s (%s)\n\n", f.Name, f.Acronym)
	if f.Description != "" {
		b.WriteString(f.Description)
		b.WriteString("\n\n")
	}

	for _, c := range f.Components {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", strings.ToUpper(c.Label), c.Guidance)
	}

	if len(inputs) > 0 {
		b.WriteString("## Matter Material\n\n")
		names := make([]string, 0, len(inputs))
		for name := range inputs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "### %s\n%s\n\n", name, inputs[name])
		}
	}

	if len(f.Adaptations) > 0 {
		b.WriteString("## South African Practice Notes\n")
		for _, a := range f.Adaptations {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
