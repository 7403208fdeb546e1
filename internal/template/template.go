// Package template provides the catalog of practice-area prompt templates.
//
// A template is a prompt skeleton for a specific document or analysis type
// (letter of demand, unfair dismissal analysis, ...) with named
// placeholders. Bodies are Go text/template strings executed against a
// map of input values, so `{{.client_name}}` substitutes the "client_name"
// input. Missing inputs fail the render rather than silently producing
// placeholder text.
//
// Key types:
//   - [Template] - an immutable template definition
//   - [Catalog] - read-only lookup by name, built with [NewCatalog]
//   - [PracticeArea] - the closed set of SA practice areas
//
// [DefaultCatalog] returns the built-in template set.
package template

import (
	"fmt"
	"strings"
	texttemplate "text/template"
)

// PracticeArea classifies a template by SA legal practice area.
//
// The practice area also scopes ethics guidelines: some risk rules apply
// only to particular areas (criminal, family) where confidentiality and
// privilege concerns are heightened.
type PracticeArea string

// The closed set of practice areas.
const (
	AreaConstitutional PracticeArea = "constitutional"
	AreaCriminal       PracticeArea = "criminal"
	AreaCivil          PracticeArea = "civil"
	AreaCommercial     PracticeArea = "commercial"
	AreaLabour         PracticeArea = "labour"
	AreaFamily         PracticeArea = "family"
	AreaProperty       PracticeArea = "property"
	AreaTax            PracticeArea = "tax"
	AreaConsumer       PracticeArea = "consumer"
	AreaAdministrative PracticeArea = "administrative"
	// AreaGeneral marks content not tied to a single practice area.
	AreaGeneral PracticeArea = "general"
)

// Areas lists all valid practice areas in display order.
var Areas = []PracticeArea{
	AreaConstitutional,
	AreaCriminal,
	AreaCivil,
	AreaCommercial,
	AreaLabour,
	AreaFamily,
	AreaProperty,
	AreaTax,
	AreaConsumer,
	AreaAdministrative,
	AreaGeneral,
}

// Valid reports whether a is one of the known practice areas.
func (a PracticeArea) Valid() bool {
	for _, known := range Areas {
		if a == known {
			return true
		}
	}
	return false
}

// Template is an immutable practice-area prompt template.
type Template struct {
	// Name is the catalog key (e.g. "letter_of_demand").
	Name string

	// Title is the human-readable template title.
	Title string

	PracticeArea PracticeArea
	Description  string

	// Body is a Go text/template string. Placeholders reference input
	// names: {{.client_name}}, {{.amount_owed}}.
	Body string

	// RequiredInputs names every placeholder the body references. A
	// workflow step using this template must supply each of them.
	RequiredInputs []string

	// KeyLegislation lists refdata legislation keys relevant to this
	// template, surfaced alongside the rendered prompt.
	KeyLegislation []string
}

// Render substitutes the given inputs into the template body.
//
// Rendering fails if the body is malformed or references an input absent
// from the map (template execution runs with missingkey=error); an
// unresolved placeholder is a defect, never silently replaced with an
// empty value. Render is a pure function of its inputs.
func (t Template) Render(inputs map[string]string) (string, error) {
	tmpl, err := texttemplate.New(t.Name).Option("missingkey=error").Parse(t.Body)
	if err != nil {
		return "", fmt.Errorf("template %q: parse: %w", t.Name, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, inputs); err != nil {
		return "", fmt.Errorf("template %q: %w", t.Name, err)
	}
	return b.String(), nil
}
