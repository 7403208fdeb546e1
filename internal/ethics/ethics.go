// Package ethics provides risk assessment of rendered prompt text against
// SA legal practice ethics guidelines.
//
// The [Assessor] scans rendered text for configured trigger phrases per
// guideline (plain keyword matching, no NLP) and reports a single
// [Level] with the rationale of every guideline that triggered at that
// level. Assessment is deterministic: the same text, practice area and
// prior levels always produce the same result, so a blocked or high-risk
// outcome is reproducible and never retried.
//
// Risk is monotonic across a workflow run: once any step assesses as
// [LevelProhibited], every subsequent assessment in that run is
// PROHIBITED regardless of its local content. A later step can never
// downgrade the run's risk.
//
// Key types:
//   - [Level] - severity, ordered PROHIBITED > HIGH > MEDIUM > LOW
//   - [Guideline] - a trigger-phrase rule derived from LPC ethics guidance
//   - [Assessment] - the per-step result attached to the execution trace
//   - [Assessor] - the deterministic evaluator, built with [NewAssessor]
package ethics

import (
	"fmt"

	"lexflow/internal/template"
)

// Level is an ethics-guideline-derived severity classification.
type Level string

// Severity levels, lowest to highest.
const (
	LevelLow        Level = "low"
	LevelMedium     Level = "medium"
	LevelHigh       Level = "high"
	LevelProhibited Level = "prohibited"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh, LevelProhibited:
		return true
	}
	return false
}

// Severity returns the ordering rank of the level: LOW=0 up to
// PROHIBITED=3. Unknown levels rank below LOW.
func (l Level) Severity() int {
	switch l {
	case LevelLow:
		return 0
	case LevelMedium:
		return 1
	case LevelHigh:
		return 2
	case LevelProhibited:
		return 3
	}
	return -1
}

// Label returns the practitioner-facing description of the level.
func (l Level) Label() string {
	switch l {
	case LevelLow:
		return "Low Risk - Standard Precautions"
	case LevelMedium:
		return "Medium Risk - Proceed with Care"
	case LevelHigh:
		return "High Risk - Exercise Extreme Caution"
	case LevelProhibited:
		return "Prohibited - Do Not Use AI"
	}
	return string(l)
}

// Max returns the highest-severity level among the given levels, or
// [LevelLow] when none are given.
func Max(levels ...Level) Level {
	max := LevelLow
	for _, l := range levels {
		if l.Severity() > max.Severity() {
			max = l
		}
	}
	return max
}

// Category groups guidelines by the professional duty they protect.
type Category string

// Guideline categories, mirroring the LPC duty areas.
const (
	CategoryCompetence      Category = "competence"
	CategoryConfidentiality Category = "confidentiality"
	CategorySupervision     Category = "supervision"
	CategoryDisclosure      Category = "disclosure"
	CategoryBilling         Category = "billing"
	CategoryVerification    Category = "verification"
	CategoryBias            Category = "bias"
)

// Guideline is a single trigger-phrase ethics rule.
//
// When any trigger phrase appears in rendered prompt text (matched
// case-insensitively), the guideline fires at its configured [Level] with
// its rationale. Guidelines are immutable once the [Assessor] is built.
type Guideline struct {
	// ID is the stable identifier referenced by assessments.
	ID string `mapstructure:"id" yaml:"id"`

	// Title is the human-readable guideline name.
	Title string `mapstructure:"title" yaml:"title"`

	Category Category `mapstructure:"category" yaml:"category"`

	// Level is the severity this guideline assigns when triggered.
	Level Level `mapstructure:"level" yaml:"level"`

	// Rationale explains why the trigger is a concern and what safeguard
	// applies. It is surfaced verbatim to the practitioner.
	Rationale string `mapstructure:"rationale" yaml:"rationale"`

	// Triggers are the phrases scanned for, matched case-insensitively
	// as plain substrings.
	Triggers []string `mapstructure:"triggers" yaml:"triggers"`

	// PracticeAreas restricts the guideline to specific areas. Empty
	// means the guideline applies to every practice area.
	PracticeAreas []template.PracticeArea `mapstructure:"practice_areas" yaml:"practice_areas"`

	// LPCReference cites the Legal Practice Council rule the guideline
	// derives from, where one exists.
	LPCReference string `mapstructure:"lpc_reference" yaml:"lpc_reference"`
}

// appliesTo reports whether the guideline is in scope for the given
// practice area.
func (g Guideline) appliesTo(area template.PracticeArea) bool {
	if len(g.PracticeAreas) == 0 {
		return true
	}
	for _, a := range g.PracticeAreas {
		if a == area {
			return true
		}
	}
	return false
}

// Validate checks the guideline's structural requirements.
func (g Guideline) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("guideline %q: id is required", g.Title)
	}
	if !g.Level.Valid() {
		return fmt.Errorf("guideline %q: invalid level %q", g.ID, g.Level)
	}
	if len(g.Triggers) == 0 {
		return fmt.Errorf("guideline %q: at least one trigger phrase is required", g.ID)
	}
	if g.Rationale == "" {
		return fmt.Errorf("guideline %q: rationale is required", g.ID)
	}
	return nil
}

// Assessment is the result of assessing one step's rendered text.
//
// An Assessment is immutable once produced; it is attached to the
// execution trace entry for its step. When multiple guidelines trigger,
// Level is the single highest severity and Rationale is the union of the
// rationale fragments of the guidelines that triggered at that severity,
// in guideline table order.
type Assessment struct {
	Level Level

	// Rationale explains the assessment to the practitioner.
	Rationale string

	// GuidelineIDs references the guidelines that produced this
	// assessment, in table order. Empty for the default low-risk result
	// and for the carry-forward prohibition.
	GuidelineIDs []string
}
