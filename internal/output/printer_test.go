package output

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexflow/internal/config"
	"lexflow/internal/ethics"
	"lexflow/internal/framework"
	"lexflow/internal/pipeline"
	"lexflow/internal/refdata"
	"lexflow/internal/template"
	"lexflow/internal/workflow"
)

func testTrace() *pipeline.Trace {
	return &pipeline.Trace{
		RunID:    "run-123",
		Workflow: "demand_letter",
		State:    pipeline.StateCompleted,
		Entries: []pipeline.Entry{
			{
				StepID:   "draft",
				Rendered: "# Letter of Demand\nDear Sir.",
				Assessment: ethics.Assessment{
					Level:     ethics.LevelLow,
					Rationale: ethics.NoTriggerRationale,
				},
				Snapshot: map[string]string{"client_name": "Company A"},
			},
			{
				StepID:   "structure",
				Rendered: "# Structured Prompt",
				Assessment: ethics.Assessment{
					Level:        ethics.LevelMedium,
					Rationale:    "Verify every citation on SAFLII.",
					GuidelineIDs: []string{"citation-verification"},
				},
				Snapshot: map[string]string{"client_name": "Company A", "draft_text": "Dear Sir."},
			},
		},
	}
}

func TestPrintTrace(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinterWithWriter(buf)

	p.PrintTrace(testTrace(), []string{"Prescribed Rate of Interest Act 55 of 1975"})

	out := buf.String()
	assert.Contains(t, out, "demand_letter")
	assert.Contains(t, out, "COMPLETED")
	assert.Contains(t, out, "run run-123")
	assert.Contains(t, out, "Prescribed Rate of Interest Act 55 of 1975")
	assert.Contains(t, out, "[1/2] draft")
	assert.Contains(t, out, "[2/2] structure")
	assert.Contains(t, out, "# Letter of Demand")
	assert.Contains(t, out, ethics.NoTriggerRationale)
	assert.Contains(t, out, "citation-verification")
	assert.Contains(t, out, ethics.LevelMedium.Label())
}

func TestPrintTrace_BlockedState(t *testing.T) {
	trace := testTrace()
	trace.State = pipeline.StateBlocked
	trace.Entries = trace.Entries[:1]
	trace.Entries[0].Assessment = ethics.Assessment{
		Level:        ethics.LevelProhibited,
		Rationale:    "Client-identifying details must never reach an AI tool.",
		GuidelineIDs: []string{"identified-client-data"},
	}

	buf := &bytes.Buffer{}
	NewPrinterWithWriter(buf).PrintTrace(trace, nil)

	out := buf.String()
	assert.Contains(t, out, "BLOCKED")
	assert.Contains(t, out, ethics.LevelProhibited.Label())
	assert.Contains(t, out, "identified-client-data")
}

func TestPrintTrace_SnapshotsOnlyWhenConfigured(t *testing.T) {
	cfg := config.DefaultConfig().Output
	cfg.Markdown.Enabled = false
	cfg.ShowSnapshots = true

	buf := &bytes.Buffer{}
	NewPrinterWithConfig(buf, cfg).PrintTrace(testTrace(), nil)
	assert.Contains(t, buf.String(), "context: 1 values")

	buf.Reset()
	NewPrinterWithWriter(buf).PrintTrace(testTrace(), nil)
	assert.NotContains(t, buf.String(), "context:")
}

func TestPrintAssessment(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinterWithWriter(buf)

	p.PrintAssessment(ethics.Assessment{
		Level:        ethics.LevelHigh,
		Rationale:    "Predictions are not legal advice.",
		GuidelineIDs: []string{"outcome-prediction"},
	})

	out := buf.String()
	assert.Contains(t, out, ethics.LevelHigh.Label())
	assert.Contains(t, out, "Predictions are not legal advice.")
	assert.Contains(t, out, "outcome-prediction")
}

func TestPrintWorkflowList(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinterWithWriter(buf)

	p.PrintWorkflowList(workflow.DefaultStore().List())

	out := buf.String()
	assert.Contains(t, out, "demand_letter")
	assert.Contains(t, out, "contract_review")
	assert.Contains(t, out, "unfair_dismissal")
	assert.Contains(t, out, "steps: 2")
}

func TestPrintWorkflow(t *testing.T) {
	store := workflow.DefaultStore()
	def, err := store.Get("demand_letter")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	NewPrinterWithWriter(buf).PrintWorkflow(def, []string{"National Credit Act 34 of 2005"})

	out := buf.String()
	assert.Contains(t, out, "demand_letter")
	assert.Contains(t, out, "Practice area: civil")
	assert.Contains(t, out, "1. draft")
	assert.Contains(t, out, `uses template "letter_of_demand"`)
	assert.Contains(t, out, `uses framework "RICE"`)
	assert.Contains(t, out, "National Credit Act 34 of 2005")
}

func TestPrintFramework(t *testing.T) {
	r := framework.DefaultRegistry()
	f, err := r.Get("RICE")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	NewPrinterWithWriter(buf).PrintFramework(f)

	out := buf.String()
	assert.Contains(t, out, "RICE")
	assert.Contains(t, out, "[ROLE]")
}

func TestPrintTemplateList(t *testing.T) {
	buf := &bytes.Buffer{}
	NewPrinterWithWriter(buf).PrintTemplateList(template.DefaultCatalog().List())

	out := buf.String()
	assert.Contains(t, out, "letter_of_demand")
	assert.Contains(t, out, "inputs: client_name, amount_owed")
}

func TestPrintCourtsAndLegislation(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinterWithWriter(buf)

	p.PrintCourts(refdata.DefaultCourts().List())
	assert.Contains(t, buf.String(), "CCMA")

	buf.Reset()
	p.PrintLegislation(refdata.DefaultLegislation().List())
	assert.Contains(t, buf.String(), "Labour Relations Act 66 of 1995")
	assert.Contains(t, buf.String(), "s186")
}

func TestTruncate(t *testing.T) {
	cfg := config.DefaultConfig().Output
	cfg.Markdown.Enabled = false
	cfg.TruncateLength = 10
	p := NewPrinterWithConfig(&bytes.Buffer{}, cfg)

	assert.Equal(t, "short", p.truncate("short"))
	assert.Equal(t, "a long ...", p.truncate("a long description going past the limit"))
}

func TestTruncate_TinyLimitDisablesTruncation(t *testing.T) {
	cfg := config.DefaultConfig().Output
	cfg.Markdown.Enabled = false
	cfg.TruncateLength = 2
	p := NewPrinterWithConfig(&bytes.Buffer{}, cfg)

	assert.Equal(t, "a long description", p.truncate("a long description"))

	buf := &bytes.Buffer{}
	p = NewPrinterWithConfig(buf, cfg)
	p.PrintTemplateList(template.DefaultCatalog().List())
	assert.NotEmpty(t, buf.String())
}

func TestTruncate_CutsOnRunes(t *testing.T) {
	cfg := config.DefaultConfig().Output
	cfg.Markdown.Enabled = false
	cfg.TruncateLength = 8
	p := NewPrinterWithConfig(&bytes.Buffer{}, cfg)

	got := p.truncate("aandélé en dividende")
	assert.Equal(t, "aandé...", got)
	assert.True(t, utf8.ValidString(got))
}
