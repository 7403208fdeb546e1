package ethics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexflow/internal/template"
)

func testGuidelines() []Guideline {
	return []Guideline{
		{
			ID:        "client-data",
			Title:     "Identified Client Information",
			Category:  CategoryConfidentiality,
			Level:     LevelProhibited,
			Rationale: "Client-identifying details must never reach an AI tool.",
			Triggers:  []string{"do not anonymise", "identity number"},
		},
		{
			ID:        "outcome-prediction",
			Title:     "Case Outcome Prediction",
			Category:  CategorySupervision,
			Level:     LevelHigh,
			Rationale: "Predictions are not legal advice.",
			Triggers:  []string{"predict the outcome"},
		},
		{
			ID:        "citations",
			Title:     "Citation Verification",
			Category:  CategoryVerification,
			Level:     LevelMedium,
			Rationale: "Verify every citation on SAFLII.",
			Triggers:  []string{"cite", "case law"},
		},
		{
			ID:            "criminal-detail",
			Title:         "Criminal Defence Case Detail",
			Category:      CategoryConfidentiality,
			Level:         LevelHigh,
			Rationale:     "Criminal matters carry heightened privilege concerns.",
			Triggers:      []string{"defence strategy"},
			PracticeAreas: []template.PracticeArea{template.AreaCriminal},
		},
		{
			ID:        "filing",
			Title:     "Review Before Filing",
			Category:  CategorySupervision,
			Level:     LevelMedium,
			Rationale: "All AI output must be reviewed before filing.",
			Triggers:  []string{"ready to file"},
		},
	}
}

func testAssessor(t *testing.T) *Assessor {
	t.Helper()
	a, err := NewAssessor(testGuidelines())
	require.NoError(t, err)
	return a
}

func TestAssess_NoTriggerIsLow(t *testing.T) {
	a := testAssessor(t)

	result := a.Assess("Draft a polite overview of contract law.", template.AreaGeneral, nil)

	assert.Equal(t, LevelLow, result.Level)
	assert.Equal(t, NoTriggerRationale, result.Rationale)
	assert.Empty(t, result.GuidelineIDs)
}

func TestAssess_TriggerMatching(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		area      template.PracticeArea
		wantLevel Level
		wantIDs   []string
	}{
		{
			name:      "single medium trigger",
			text:      "Please cite the leading judgment.",
			area:      template.AreaGeneral,
			wantLevel: LevelMedium,
			wantIDs:   []string{"citations"},
		},
		{
			name:      "trigger matching is case-insensitive",
			text:      "PREDICT THE OUTCOME of this appeal.",
			area:      template.AreaGeneral,
			wantLevel: LevelHigh,
			wantIDs:   []string{"outcome-prediction"},
		},
		{
			name:      "highest severity wins across triggered guidelines",
			text:      "Predict the outcome and cite case law.",
			area:      template.AreaGeneral,
			wantLevel: LevelHigh,
			wantIDs:   []string{"outcome-prediction"},
		},
		{
			name:      "prohibited dominates everything",
			text:      "Use the identity number, predict the outcome, cite case law.",
			area:      template.AreaGeneral,
			wantLevel: LevelProhibited,
			wantIDs:   []string{"client-data"},
		},
		{
			name:      "union of rationales at equal severity in table order",
			text:      "Cite case law so this is ready to file.",
			area:      template.AreaGeneral,
			wantLevel: LevelMedium,
			wantIDs:   []string{"citations", "filing"},
		},
		{
			name:      "area-scoped guideline fires only in its area",
			text:      "Outline the defence strategy.",
			area:      template.AreaCriminal,
			wantLevel: LevelHigh,
			wantIDs:   []string{"criminal-detail"},
		},
		{
			name:      "area-scoped guideline is silent elsewhere",
			text:      "Outline the defence strategy.",
			area:      template.AreaCivil,
			wantLevel: LevelLow,
			wantIDs:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testAssessor(t)

			result := a.Assess(tt.text, tt.area, nil)

			assert.Equal(t, tt.wantLevel, result.Level)
			assert.Equal(t, tt.wantIDs, result.GuidelineIDs)
		})
	}
}

func TestAssess_RationaleUnion(t *testing.T) {
	a := testAssessor(t)

	result := a.Assess("Cite case law so this is ready to file.", template.AreaGeneral, nil)

	require.Equal(t, LevelMedium, result.Level)
	assert.Contains(t, result.Rationale, "Verify every citation")
	assert.Contains(t, result.Rationale, "reviewed before filing")
}

func TestAssess_PriorProhibitedCarriesForward(t *testing.T) {
	a := testAssessor(t)

	result := a.Assess("Entirely harmless text.", template.AreaGeneral,
		[]Level{LevelLow, LevelProhibited})

	assert.Equal(t, LevelProhibited, result.Level)
	assert.Equal(t, CarryForwardRationale, result.Rationale)
	assert.Empty(t, result.GuidelineIDs)
}

func TestAssess_PriorHighDoesNotFloorLaterSteps(t *testing.T) {
	a := testAssessor(t)

	result := a.Assess("Entirely harmless text.", template.AreaGeneral,
		[]Level{LevelHigh})

	assert.Equal(t, LevelLow, result.Level, "only PROHIBITED carries forward")
}

func TestAssess_Deterministic(t *testing.T) {
	a := testAssessor(t)
	text := "Cite case law and predict the outcome."

	first := a.Assess(text, template.AreaGeneral, nil)
	second := a.Assess(text, template.AreaGeneral, nil)

	assert.Equal(t, first, second)
}

func TestNewAssessor_RejectsDuplicateIDs(t *testing.T) {
	guidelines := testGuidelines()
	guidelines = append(guidelines, guidelines[0])

	_, err := NewAssessor(guidelines)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate guideline id")
}

func TestNewAssessor_RejectsInvalidGuideline(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Guideline)
		wantErrSub string
	}{
		{
			name:       "missing id",
			mutate:     func(g *Guideline) { g.ID = "" },
			wantErrSub: "id is required",
		},
		{
			name:       "invalid level",
			mutate:     func(g *Guideline) { g.Level = "catastrophic" },
			wantErrSub: "invalid level",
		},
		{
			name:       "no triggers",
			mutate:     func(g *Guideline) { g.Triggers = nil },
			wantErrSub: "trigger phrase",
		},
		{
			name:       "missing rationale",
			mutate:     func(g *Guideline) { g.Rationale = "" },
			wantErrSub: "rationale is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGuidelines()[0]
			tt.mutate(&g)

			_, err := NewAssessor([]Guideline{g})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrSub)
		})
	}
}

func TestMax(t *testing.T) {
	assert.Equal(t, LevelLow, Max())
	assert.Equal(t, LevelHigh, Max(LevelLow, LevelHigh, LevelMedium))
	assert.Equal(t, LevelProhibited, Max(LevelMedium, LevelProhibited, LevelLow))
}

func TestDefaultAssessor_ScreensKnownProhibitedUse(t *testing.T) {
	a := DefaultAssessor()

	result := a.Assess("Summarise this, do not anonymise the parties.", template.AreaGeneral, nil)

	assert.Equal(t, LevelProhibited, result.Level)
	assert.Contains(t, result.GuidelineIDs, "identified-client-data")
}
