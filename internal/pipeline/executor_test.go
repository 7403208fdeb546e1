package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexflow/internal/ethics"
	"lexflow/internal/framework"
	"lexflow/internal/template"
	"lexflow/internal/workflow"
)

func defaultExecutor() *Executor {
	return NewExecutor(
		framework.DefaultRegistry(),
		template.DefaultCatalog(),
		workflow.DefaultStore(),
		ethics.DefaultAssessor(),
	)
}

// customExecutor builds an executor over a minimal catalog and the given
// definitions, for edge cases the built-in workflows don't exercise.
func customExecutor(t *testing.T, templates []template.Template, defs ...workflow.Definition) *Executor {
	t.Helper()

	catalog, err := template.NewCatalog(templates...)
	require.NoError(t, err)
	store, err := workflow.NewStore(defs...)
	require.NoError(t, err)

	return NewExecutor(framework.DefaultRegistry(), catalog, store, ethics.DefaultAssessor())
}

func demandLetterInputs() map[string]string {
	return map[string]string{
		"client_name": "Company A",
		"amount_owed": "R150 000",
	}
}

func TestRun_DemandLetterCompletes(t *testing.T) {
	e := defaultExecutor()

	trace, err := e.Run("demand_letter", demandLetterInputs())

	require.NoError(t, err)
	require.NotNil(t, trace)
	assert.Equal(t, StateCompleted, trace.State)
	assert.Equal(t, "demand_letter", trace.Workflow)
	assert.NotEmpty(t, trace.RunID)

	require.Len(t, trace.Entries, 2)
	assert.Equal(t, "draft", trace.Entries[0].StepID)
	assert.Equal(t, "structure", trace.Entries[1].StepID)

	// The draft step's output feeds the structure step, so the second
	// rendered prompt embeds the first one verbatim.
	assert.Contains(t, trace.Entries[0].Rendered, "Company A")
	assert.Contains(t, trace.Entries[1].Rendered, trace.Entries[0].Rendered)
}

func TestRun_SnapshotsTakenBeforeOutputBinding(t *testing.T) {
	e := defaultExecutor()

	trace, err := e.Run("demand_letter", demandLetterInputs())

	require.NoError(t, err)
	require.Len(t, trace.Entries, 2)

	first := trace.Entries[0].Snapshot
	assert.Equal(t, demandLetterInputs(), first, "first snapshot is the caller's context")
	_, hasDraft := first["draft_text"]
	assert.False(t, hasDraft, "a step's own output is not in its snapshot")

	second := trace.Entries[1].Snapshot
	assert.Equal(t, trace.Entries[0].Rendered, second["draft_text"])
	assert.Equal(t, "Company A", second["client_name"])
}

func TestRun_DoesNotMutateInitialContext(t *testing.T) {
	e := defaultExecutor()
	initial := demandLetterInputs()

	_, err := e.Run("demand_letter", initial)

	require.NoError(t, err)
	assert.Equal(t, demandLetterInputs(), initial)
}

func TestRun_BlockedOnProhibitedAssessment(t *testing.T) {
	e := defaultExecutor()
	initial := demandLetterInputs()
	initial["client_name"] = "Mr S Nkosi, identity number 800101 5009 087"

	trace, err := e.Run("demand_letter", initial)

	require.NoError(t, err, "blocking is a designed stop state, not an error")
	require.NotNil(t, trace)
	assert.Equal(t, StateBlocked, trace.State)

	require.Len(t, trace.Entries, 1, "the run stops at the blocking step")
	blocking := trace.Entries[0]
	assert.Equal(t, "draft", blocking.StepID)
	assert.Equal(t, ethics.LevelProhibited, blocking.Assessment.Level)
	assert.Contains(t, blocking.Assessment.GuidelineIDs, "identified-client-data")
	assert.Equal(t, ethics.LevelProhibited, trace.HighestRisk())
}

func TestRun_MissingInputFails(t *testing.T) {
	e := defaultExecutor()

	trace, err := e.Run("demand_letter", map[string]string{"client_name": "Company A"})

	require.Error(t, err)
	var missingErr *MissingInputError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "draft", missingErr.StepID)
	assert.Equal(t, []string{"amount_owed"}, missingErr.Missing)

	require.NotNil(t, trace, "partial work is always reported")
	assert.Equal(t, StateFailed, trace.State)
	assert.Empty(t, trace.Entries)
}

func TestRun_UnknownWorkflow(t *testing.T) {
	e := defaultExecutor()

	trace, err := e.Run("nonexistent", nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, workflow.ErrNotFound))
	assert.Nil(t, trace)
}

func TestRun_TemplateRenderFailure(t *testing.T) {
	broken := template.Template{
		Name:         "broken",
		Title:        "Broken",
		PracticeArea: template.AreaGeneral,
		Body:         "References {{.undeclared}} which nothing supplies.",
	}
	def := workflow.Definition{
		Name:         "broken_flow",
		Description:  "Exercises a render failure.",
		Category:     workflow.CategoryLitigation,
		PracticeArea: "general",
		Steps: []workflow.Step{
			{
				ID:      "only",
				Uses:    workflow.StepRef{Kind: workflow.RefTemplate, Name: "broken"},
				Outputs: []string{"out"},
			},
		},
	}
	e := customExecutor(t, []template.Template{broken}, def)

	trace, err := e.Run("broken_flow", nil)

	require.Error(t, err)
	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, "only", renderErr.StepID)

	require.NotNil(t, trace)
	assert.Equal(t, StateFailed, trace.State)
	assert.Empty(t, trace.Entries, "the failing step never produced an entry")
}

func TestRun_OutputExpressions(t *testing.T) {
	greeting := template.Template{
		Name:         "greeting",
		Title:        "Greeting",
		PracticeArea: template.AreaGeneral,
		Body:         "Advice for {{.client_name}}.",
	}
	def := workflow.Definition{
		Name:         "expr_flow",
		Description:  "Binds one output via an expression.",
		Category:     workflow.CategoryTransactional,
		PracticeArea: "general",
		Inputs:       []string{"client_name"},
		Steps: []workflow.Step{
			{
				ID:       "first",
				Uses:     workflow.StepRef{Kind: workflow.RefTemplate, Name: "greeting"},
				Requires: []string{"client_name"},
				Outputs:  []string{"full", "labelled"},
				OutputExprs: map[string]string{
					"labelled": "{{.client_name}}: {{.rendered_text}}",
				},
			},
			{
				ID:       "second",
				Uses:     workflow.StepRef{Kind: workflow.RefFramework, Name: "RICE"},
				Requires: []string{"full", "labelled"},
				Outputs:  []string{"final"},
			},
		},
	}
	e := customExecutor(t, []template.Template{greeting}, def)

	trace, err := e.Run("expr_flow", map[string]string{"client_name": "Company A"})

	require.NoError(t, err)
	require.Len(t, trace.Entries, 2)

	snapshot := trace.Entries[1].Snapshot
	assert.Equal(t, trace.Entries[0].Rendered, snapshot["full"],
		"an output without an expression binds the full rendered text")
	assert.Equal(t, "Company A: "+trace.Entries[0].Rendered, snapshot["labelled"])
}

func TestRun_FailingOutputExpression(t *testing.T) {
	greeting := template.Template{
		Name:         "greeting",
		Title:        "Greeting",
		PracticeArea: template.AreaGeneral,
		Body:         "Hello.",
	}
	def := workflow.Definition{
		Name:         "bad_expr_flow",
		Description:  "Output expression references an absent context name.",
		Category:     workflow.CategoryTransactional,
		PracticeArea: "general",
		Steps: []workflow.Step{
			{
				ID:      "only",
				Uses:    workflow.StepRef{Kind: workflow.RefTemplate, Name: "greeting"},
				Outputs: []string{"out"},
				OutputExprs: map[string]string{
					"out": "{{.absent_name}}",
				},
			},
		},
	}
	e := customExecutor(t, []template.Template{greeting}, def)

	trace, err := e.Run("bad_expr_flow", nil)

	require.Error(t, err)
	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, "only", renderErr.StepID)

	assert.Equal(t, StateFailed, trace.State)
	assert.Len(t, trace.Entries, 1, "the step rendered and was assessed before output binding failed")
}

func TestRun_LaterOutputsShadowEarlierNames(t *testing.T) {
	def := workflow.Definition{
		Name:         "shadow_flow",
		Description:  "Two steps write the same output name.",
		Category:     workflow.CategoryTransactional,
		PracticeArea: "general",
		Steps: []workflow.Step{
			{
				ID:      "first",
				Uses:    workflow.StepRef{Kind: workflow.RefFramework, Name: "RICE"},
				Outputs: []string{"working_text"},
			},
			{
				ID:       "second",
				Uses:     workflow.StepRef{Kind: workflow.RefFramework, Name: "CHAIN"},
				Requires: []string{"working_text"},
				Outputs:  []string{"working_text"},
			},
			{
				ID:       "third",
				Uses:     workflow.StepRef{Kind: workflow.RefFramework, Name: "CASE"},
				Requires: []string{"working_text"},
				Outputs:  []string{"final"},
			},
		},
	}
	e := customExecutor(t, nil, def)

	trace, err := e.Run("shadow_flow", nil)

	require.NoError(t, err)
	require.Len(t, trace.Entries, 3)
	assert.Equal(t, trace.Entries[1].Rendered, trace.Entries[2].Snapshot["working_text"],
		"the later step's output shadows the earlier one")
}

func TestRun_IdenticalInputsProduceIdenticalEntries(t *testing.T) {
	e := defaultExecutor()

	first, err := e.Run("demand_letter", demandLetterInputs())
	require.NoError(t, err)
	second, err := e.Run("demand_letter", demandLetterInputs())
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID, "each run gets a fresh ID")
	assert.Equal(t, first.Entries, second.Entries)
	assert.Equal(t, first.State, second.State)
}

func TestRun_ProgressCallback(t *testing.T) {
	e := defaultExecutor()

	type call struct {
		index, total int
		stepID       string
	}
	var calls []call
	e.SetProgressCallback(func(stepIndex, totalSteps int, stepID string) {
		calls = append(calls, call{stepIndex, totalSteps, stepID})
	})

	_, err := e.Run("demand_letter", demandLetterInputs())

	require.NoError(t, err)
	assert.Equal(t, []call{
		{1, 2, "draft"},
		{2, 2, "structure"},
	}, calls)
}

func TestRun_AllBuiltInWorkflowsComplete(t *testing.T) {
	inputs := map[string]map[string]string{
		"demand_letter": demandLetterInputs(),
		"contract_review": {
			"client_name":      "Company A",
			"contract_summary": "Supply agreement, 24 month term, automatic renewal.",
		},
		"unfair_dismissal": {
			"client_name":          "Company A",
			"employee_description": "Warehouse supervisor, eight years' service.",
			"dismissal_facts":      "Dismissed after a disciplinary hearing for repeated late arrival.",
		},
	}

	e := defaultExecutor()
	for _, def := range workflow.DefaultStore().List() {
		t.Run(def.Name, func(t *testing.T) {
			initial, ok := inputs[def.Name]
			require.True(t, ok, "no test inputs for built-in workflow %q", def.Name)

			trace, err := e.Run(def.Name, initial)

			require.NoError(t, err)
			assert.Equal(t, StateCompleted, trace.State)
			assert.Len(t, trace.Entries, len(def.Steps))
		})
	}
}

func TestTrace_RiskLevelsAndHighestRisk(t *testing.T) {
	trace := &Trace{
		Entries: []Entry{
			{Assessment: ethics.Assessment{Level: ethics.LevelLow}},
			{Assessment: ethics.Assessment{Level: ethics.LevelHigh}},
			{Assessment: ethics.Assessment{Level: ethics.LevelMedium}},
		},
	}

	assert.Equal(t, []ethics.Level{ethics.LevelLow, ethics.LevelHigh, ethics.LevelMedium}, trace.RiskLevels())
	assert.Equal(t, ethics.LevelHigh, trace.HighestRisk())

	empty := &Trace{}
	assert.Equal(t, ethics.LevelLow, empty.HighestRisk())
}

func TestState_Terminal(t *testing.T) {
	assert.False(t, StatePending.Terminal())
	assert.False(t, StateRunning.Terminal())
	assert.True(t, StateCompleted.Terminal())
	assert.True(t, StateFailed.Terminal())
	assert.True(t, StateBlocked.Terminal())
}
