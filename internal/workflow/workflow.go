// Package workflow provides multi-step workflow definitions for lexflow.
//
// A workflow definition is an ordered sequence of steps, each rendering a
// prompting framework or a document template and contributing named
// outputs that later steps consume. Definitions are validated at
// registration time: every step requirement must be satisfiable from the
// workflow's declared caller inputs or an earlier step's outputs, so a
// structurally broken definition is rejected before it can run.
//
// Key types:
//   - [Definition] - a named workflow with ordered [Step] entries
//   - [Step] - one step, referencing a framework or template via [StepRef]
//   - [Store] - read-only definition lookup, built with [NewStore]
//
// Definitions can be authored in YAML and loaded with [LoadFile] or
// [LoadDir]; [DefaultStore] returns the built-in set.
package workflow

import (
	"fmt"
	"strings"
)

// RefKind discriminates what a step renders. A step references exactly
// one framework or one template; the executor switches exhaustively on
// this tag.
type RefKind string

// The closed set of step reference kinds.
const (
	RefFramework RefKind = "framework"
	RefTemplate  RefKind = "template"
)

// Valid reports whether k is a known reference kind.
func (k RefKind) Valid() bool {
	return k == RefFramework || k == RefTemplate
}

// StepRef identifies the framework or template a step renders.
type StepRef struct {
	// Kind selects the registry the name resolves in.
	Kind RefKind `yaml:"kind"`

	// Name is the framework acronym or template name.
	Name string `yaml:"name"`
}

// Step is a single step in a workflow definition.
type Step struct {
	// ID identifies the step within its workflow. Unique per workflow.
	ID string `yaml:"id"`

	// Uses references the framework or template this step renders.
	Uses StepRef `yaml:"uses"`

	// Requires names the inputs this step needs. Each must be supplied
	// by the caller's initial context or produced by an earlier step.
	Requires []string `yaml:"requires"`

	// Outputs names the values this step contributes to later steps'
	// context. By default each output binds the step's full rendered
	// text; OutputExprs overrides that per name.
	Outputs []string `yaml:"outputs"`

	// OutputExprs optionally maps an output name to a Go template
	// expression evaluated over the merged context plus "rendered_text".
	// Names absent from this map bind the full rendered text.
	OutputExprs map[string]string `yaml:"output_exprs,omitempty"`
}

// Category classifies a workflow by the kind of legal work it supports.
type Category string

// The closed set of workflow categories.
const (
	CategoryLitigation        Category = "litigation"
	CategoryTransactional     Category = "transactional"
	CategoryRegulatory        Category = "regulatory"
	CategoryCorporate         Category = "corporate"
	CategoryDisputeResolution Category = "dispute_resolution"
)

// Valid reports whether c is a known workflow category.
func (c Category) Valid() bool {
	switch c {
	case CategoryLitigation, CategoryTransactional, CategoryRegulatory,
		CategoryCorporate, CategoryDisputeResolution:
		return true
	}
	return false
}

// Definition is a named multi-step workflow.
//
// Step order is fixed and total: the sequence is linear, with no branches
// or cycles. Definitions are immutable once registered in a [Store].
type Definition struct {
	// Name is the store key (e.g. "demand_letter").
	Name string `yaml:"name"`

	Description string   `yaml:"description"`
	Category    Category `yaml:"category"`

	// PracticeArea scopes risk assessment for every step of this
	// workflow. The value must be a valid template.PracticeArea; the
	// store validates it via the practice-area check in Validate.
	PracticeArea string `yaml:"practice_area"`

	// Inputs names the values the caller must supply in the initial
	// context. Satisfiability of step requirements is validated against
	// this set plus earlier steps' outputs.
	Inputs []string `yaml:"inputs"`

	Steps []Step `yaml:"steps"`

	// KeyLegislation lists refdata legislation keys relevant to this
	// workflow, surfaced in run output.
	KeyLegislation []string `yaml:"key_legislation,omitempty"`
}

// ValidationError reports a definition that failed registration-time
// validation. StepID and Missing are set for unsatisfiable step inputs;
// Reason covers structural problems.
type ValidationError struct {
	Workflow string
	StepID   string
	Missing  []string
	Reason   string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("workflow %q: step %q requires inputs not supplied by the caller or an earlier step: %s",
			e.Workflow, e.StepID, strings.Join(e.Missing, ", "))
	}
	if e.StepID != "" {
		return fmt.Sprintf("workflow %q: step %q: %s", e.Workflow, e.StepID, e.Reason)
	}
	return fmt.Sprintf("workflow %q: %s", e.Workflow, e.Reason)
}

// Validate checks the definition's structural invariants.
//
// Checks: non-empty name and steps, valid category, unique step IDs,
// valid reference kinds, output expressions only for declared outputs,
// and input satisfiability per step (every requirement covered by the
// declared caller inputs or an earlier step's outputs). Returns a
// [*ValidationError] on the
// first violation found.
func (d Definition) Validate() error {
	if d.Name == "" {
		return &ValidationError{Workflow: d.Name, Reason: "name is required"}
	}
	if len(d.Steps) == 0 {
		return &ValidationError{Workflow: d.Name, Reason: "at least one step is required"}
	}
	if !d.Category.Valid() {
		return &ValidationError{Workflow: d.Name, Reason: fmt.Sprintf("unknown category %q", d.Category)}
	}

	available := make(map[string]bool, len(d.Inputs))
	for _, in := range d.Inputs {
		available[in] = true
	}

	seenIDs := make(map[string]bool, len(d.Steps))
	for _, step := range d.Steps {
		if step.ID == "" {
			return &ValidationError{Workflow: d.Name, Reason: "every step requires an id"}
		}
		if seenIDs[step.ID] {
			return &ValidationError{Workflow: d.Name, StepID: step.ID, Reason: "duplicate step id"}
		}
		seenIDs[step.ID] = true

		if !step.Uses.Kind.Valid() {
			return &ValidationError{Workflow: d.Name, StepID: step.ID,
				Reason: fmt.Sprintf("unknown reference kind %q", step.Uses.Kind)}
		}
		if step.Uses.Name == "" {
			return &ValidationError{Workflow: d.Name, StepID: step.ID, Reason: "reference name is required"}
		}

		var missing []string
		for _, req := range step.Requires {
			if !available[req] {
				missing = append(missing, req)
			}
		}
		if len(missing) > 0 {
			return &ValidationError{Workflow: d.Name, StepID: step.ID, Missing: missing}
		}

		declared := make(map[string]bool, len(step.Outputs))
		for _, out := range step.Outputs {
			declared[out] = true
		}
		for name := range step.OutputExprs {
			if !declared[name] {
				return &ValidationError{Workflow: d.Name, StepID: step.ID,
					Reason: fmt.Sprintf("output expression for undeclared output %q", name)}
			}
		}

		// This step's outputs become available to later steps. Name
		// collisions are allowed: later outputs shadow earlier ones.
		for _, out := range step.Outputs {
			available[out] = true
		}
	}

	return nil
}
