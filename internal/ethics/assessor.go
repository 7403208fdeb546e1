package ethics

import (
	"strings"

	"lexflow/internal/template"
)

// Rationale text for assessments not produced by a guideline trigger.
const (
	// NoTriggerRationale is reported when no guideline fires.
	NoTriggerRationale = "No guideline triggers matched; standard precautions apply."

	// CarryForwardRationale is reported when an earlier step in the same
	// run was assessed PROHIBITED.
	CarryForwardRationale = "A prohibited assessment earlier in this workflow carries forward; risk cannot be downgraded by a later step. Revise the inputs and start a fresh run."
)

// Assessor evaluates rendered prompt text against a guideline table.
//
// Build with [NewAssessor] or [DefaultAssessor]. The guideline table is
// immutable after construction, so one Assessor may serve any number of
// concurrent workflow runs.
type Assessor struct {
	guidelines []Guideline
}

// NewAssessor creates an [Assessor] from the given guideline table.
//
// Guideline order is preserved: rationale unions and GuidelineIDs follow
// table order. Every guideline must pass [Guideline.Validate] and IDs
// must be unique.
func NewAssessor(guidelines []Guideline) (*Assessor, error) {
	seen := make(map[string]bool, len(guidelines))
	for _, g := range guidelines {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if seen[g.ID] {
			return nil, &duplicateGuidelineError{ID: g.ID}
		}
		seen[g.ID] = true
	}

	table := make([]Guideline, len(guidelines))
	copy(table, guidelines)
	return &Assessor{guidelines: table}, nil
}

// DefaultAssessor returns an [Assessor] over the built-in guideline table.
func DefaultAssessor() *Assessor {
	a, err := NewAssessor(DefaultGuidelines())
	if err != nil {
		// Static table; failures are programming errors caught by tests.
		panic(err)
	}
	return a
}

// Guidelines returns a copy of the assessor's guideline table.
func (a *Assessor) Guidelines() []Guideline {
	out := make([]Guideline, len(a.guidelines))
	copy(out, a.guidelines)
	return out
}

// Assess evaluates rendered text for the given practice area.
//
// prior holds the levels assessed for earlier steps of the same workflow
// run, in step order. If prior contains [LevelProhibited] the result is
// immediately PROHIBITED regardless of the text. Otherwise every
// applicable guideline is scanned; the result carries the single highest
// severity among those that triggered, with the union of their rationale
// fragments, or the low-risk default when nothing triggered.
//
// Assess is deterministic: no randomness, no external calls.
func (a *Assessor) Assess(text string, area template.PracticeArea, prior []Level) Assessment {
	for _, p := range prior {
		if p == LevelProhibited {
			return Assessment{
				Level:     LevelProhibited,
				Rationale: CarryForwardRationale,
			}
		}
	}

	lowered := strings.ToLower(text)

	var triggered []Guideline
	highest := LevelLow
	for _, g := range a.guidelines {
		if !g.appliesTo(area) {
			continue
		}
		if !matchesAny(lowered, g.Triggers) {
			continue
		}
		triggered = append(triggered, g)
		if g.Level.Severity() > highest.Severity() {
			highest = g.Level
		}
	}

	if len(triggered) == 0 {
		return Assessment{Level: LevelLow, Rationale: NoTriggerRationale}
	}

	var rationales []string
	var ids []string
	for _, g := range triggered {
		if g.Level != highest {
			continue
		}
		rationales = append(rationales, g.Rationale)
		ids = append(ids, g.ID)
	}

	return Assessment{
		Level:        highest,
		Rationale:    strings.Join(rationales, " "),
		GuidelineIDs: ids,
	}
}

func matchesAny(lowered string, triggers []string) bool {
	for _, t := range triggers {
		if t == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

type duplicateGuidelineError struct {
	ID string
}

func (e *duplicateGuidelineError) Error() string {
	return "duplicate guideline id: " + e.ID
}
