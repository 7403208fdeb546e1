package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefinition() Definition {
	return Definition{
		Name:         "demand_letter",
		Description:  "Draft and structure a letter of demand.",
		Category:     CategoryLitigation,
		PracticeArea: "civil",
		Inputs:       []string{"client_name", "amount_owed"},
		Steps: []Step{
			{
				ID:       "draft",
				Uses:     StepRef{Kind: RefTemplate, Name: "letter_of_demand"},
				Requires: []string{"client_name", "amount_owed"},
				Outputs:  []string{"draft_text"},
			},
			{
				ID:       "structure",
				Uses:     StepRef{Kind: RefFramework, Name: "RICE"},
				Requires: []string{"draft_text"},
				Outputs:  []string{"final_prompt"},
			},
		},
	}
}

func TestValidate_ValidDefinition(t *testing.T) {
	assert.NoError(t, testDefinition().Validate())
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Definition)
		wantErrSub string
	}{
		{
			name:       "missing name",
			mutate:     func(d *Definition) { d.Name = "" },
			wantErrSub: "name is required",
		},
		{
			name:       "no steps",
			mutate:     func(d *Definition) { d.Steps = nil },
			wantErrSub: "at least one step",
		},
		{
			name:       "unknown category",
			mutate:     func(d *Definition) { d.Category = "artisanal" },
			wantErrSub: "unknown category",
		},
		{
			name:       "missing step id",
			mutate:     func(d *Definition) { d.Steps[0].ID = "" },
			wantErrSub: "every step requires an id",
		},
		{
			name: "duplicate step ids",
			mutate: func(d *Definition) {
				d.Steps[1].ID = "draft"
				d.Steps[1].Requires = nil
			},
			wantErrSub: "duplicate step id",
		},
		{
			name:       "unknown reference kind",
			mutate:     func(d *Definition) { d.Steps[0].Uses.Kind = "agent" },
			wantErrSub: "unknown reference kind",
		},
		{
			name:       "missing reference name",
			mutate:     func(d *Definition) { d.Steps[0].Uses.Name = "" },
			wantErrSub: "reference name is required",
		},
		{
			name: "output expression for undeclared output",
			mutate: func(d *Definition) {
				d.Steps[0].OutputExprs = map[string]string{"summary": "{{.rendered_text}}"}
			},
			wantErrSub: `output expression for undeclared output "summary"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDefinition()
			tt.mutate(&d)

			err := d.Validate()

			require.Error(t, err)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Contains(t, err.Error(), tt.wantErrSub)
		})
	}
}

func TestValidate_UnsatisfiableStepInput(t *testing.T) {
	d := testDefinition()
	d.Steps[1].Requires = []string{"draft_text", "counsel_notes"}

	err := d.Validate()

	require.Error(t, err)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "structure", vErr.StepID)
	assert.Equal(t, []string{"counsel_notes"}, vErr.Missing)
}

func TestValidate_LaterStepConsumesEarlierOutputs(t *testing.T) {
	d := testDefinition()
	d.Steps = append(d.Steps, Step{
		ID:       "advice",
		Uses:     StepRef{Kind: RefTemplate, Name: "client_advice_memo"},
		Requires: []string{"client_name", "final_prompt"},
		Outputs:  []string{"memo"},
	})

	assert.NoError(t, d.Validate(), "caller inputs and prior outputs together satisfy later steps")
}

func TestValidate_OutputShadowingIsAllowed(t *testing.T) {
	d := testDefinition()
	d.Steps[1].Outputs = []string{"draft_text"}

	assert.NoError(t, d.Validate())
}

func TestNewStore_RejectsInvalidDefinition(t *testing.T) {
	bad := testDefinition()
	bad.Steps[1].Requires = []string{"nonexistent"}

	s, err := NewStore(bad)

	require.Error(t, err)
	assert.Nil(t, s)
}

func TestNewStore_RejectsDuplicateNames(t *testing.T) {
	a := testDefinition()
	b := testDefinition()
	b.Name = "Demand_Letter"

	_, err := NewStore(a, b)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate name")
}

func TestStore_GetCaseInsensitive(t *testing.T) {
	s, err := NewStore(testDefinition())
	require.NoError(t, err)

	d, err := s.Get("DEMAND_LETTER")
	require.NoError(t, err)
	assert.Equal(t, "demand_letter", d.Name)
}

func TestStore_GetNotFound(t *testing.T) {
	s, err := NewStore(testDefinition())
	require.NoError(t, err)

	_, err = s.Get("eviction")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_ListPreservesInsertionOrder(t *testing.T) {
	second := testDefinition()
	second.Name = "contract_review"
	second.Category = CategoryTransactional

	s, err := NewStore(testDefinition(), second)
	require.NoError(t, err)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "demand_letter", list[0].Name)
	assert.Equal(t, "contract_review", list[1].Name)
}

func TestDefaultStore_AllDefinitionsValid(t *testing.T) {
	s := DefaultStore()

	list := s.List()
	require.NotEmpty(t, list)
	for _, d := range list {
		assert.NoError(t, d.Validate(), "built-in %q must validate", d.Name)
	}

	_, err := s.Get("demand_letter")
	assert.NoError(t, err)
}
