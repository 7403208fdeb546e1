package framework

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFramework() Framework {
	return Framework{
		Name:        "Role, Instructions, Context, Expectations",
		Acronym:     "RICE",
		Category:    CategoryStructural,
		Description: "Baseline structural framework.",
		Components: []Component{
			{Label: "Role", Guidance: "State the professional persona."},
			{Label: "Instructions", Guidance: "State the task precisely."},
		},
		Adaptations: []string{"Cite SAFLII references."},
		Difficulty:  "Beginner",
	}
}

func TestRender_SectionsInOrder(t *testing.T) {
	f := testFramework()

	out := f.Render(nil)

	assert.Contains(t, out, "# Role, Instructions, Context, Expectations (RICE)")
	assert.Contains(t, out, "[ROLE]\nState the professional persona.")
	assert.Contains(t, out, "[INSTRUCTIONS]\nState the task precisely.")
	assert.Less(t, strings.Index(out, "[ROLE]"), strings.Index(out, "[INSTRUCTIONS]"),
		"components should render in declaration order")
	assert.Contains(t, out, "## South African Practice Notes")
	assert.Contains(t, out, "- Cite SAFLII references.")
	assert.NotContains(t, out, "## Matter Material", "no inputs, no material section")
}

func TestRender_InputsSortedByName(t *testing.T) {
	f := testFramework()

	out := f.Render(map[string]string{
		"draft_text":  "Dear Sir, we demand payment.",
		"client_name": "Company A",
	})

	assert.Contains(t, out, "## Matter Material")
	assert.Contains(t, out, "### client_name\nCompany A")
	assert.Contains(t, out, "### draft_text\nDear Sir, we demand payment.")
	assert.Less(t, strings.Index(out, "### client_name"), strings.Index(out, "### draft_text"),
		"inputs should render in sorted name order")
}

func TestRender_Deterministic(t *testing.T) {
	f := testFramework()
	inputs := map[string]string{"b": "2", "a": "1", "c": "3"}

	assert.Equal(t, f.Render(inputs), f.Render(inputs))
}

func TestNewRegistry_Validation(t *testing.T) {
	valid := testFramework()

	tests := []struct {
		name       string
		mutate     func(*Framework)
		wantErrSub string
	}{
		{
			name:       "missing acronym",
			mutate:     func(f *Framework) { f.Acronym = "" },
			wantErrSub: "acronym is required",
		},
		{
			name:       "no components",
			mutate:     func(f *Framework) { f.Components = nil },
			wantErrSub: "at least one component",
		},
		{
			name:       "unknown category",
			mutate:     func(f *Framework) { f.Category = "mystical" },
			wantErrSub: "unknown framework category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)

			r, err := NewRegistry(f)

			require.Error(t, err)
			assert.Nil(t, r)
			assert.Contains(t, err.Error(), tt.wantErrSub)
		})
	}
}

func TestNewRegistry_DuplicateAcronymCaseInsensitive(t *testing.T) {
	a := testFramework()
	b := testFramework()
	b.Acronym = "rice"

	_, err := NewRegistry(a, b)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestRegistry_GetCaseInsensitive(t *testing.T) {
	r, err := NewRegistry(testFramework())
	require.NoError(t, err)

	for _, acronym := range []string{"RICE", "rice", " Rice "} {
		f, err := r.Get(acronym)
		require.NoError(t, err, "lookup %q", acronym)
		assert.Equal(t, "RICE", f.Acronym)
	}
}

func TestRegistry_GetNotFound(t *testing.T) {
	r, err := NewRegistry(testFramework())
	require.NoError(t, err)

	_, err = r.Get("ABCDE")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "ABCDE")
}

func TestRegistry_ListPreservesInsertionOrder(t *testing.T) {
	second := testFramework()
	second.Acronym = "CHAIN"
	second.Category = CategoryIterative

	r, err := NewRegistry(testFramework(), second)
	require.NoError(t, err)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "RICE", list[0].Acronym)
	assert.Equal(t, "CHAIN", list[1].Acronym)
}

func TestRegistry_ListByCategory(t *testing.T) {
	second := testFramework()
	second.Acronym = "CHAIN"
	second.Category = CategoryIterative

	r, err := NewRegistry(testFramework(), second)
	require.NoError(t, err)

	structural, err := r.ListByCategory(CategoryStructural)
	require.NoError(t, err)
	require.Len(t, structural, 1)
	assert.Equal(t, "RICE", structural[0].Acronym)

	_, err = r.ListByCategory("mystical")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestDefaultRegistry_CompleteAndValid(t *testing.T) {
	r := DefaultRegistry()

	list := r.List()
	assert.Len(t, list, 22)

	acronyms := []string{
		"RICE", "ABCDE", "7PS", "SANDWICH", "JUST-ASK", "CASE",
		"COT-LEGAL", "CHAIN", "HOSTILE", "FALSIFY", "POSITIVE",
		"VARI", "QSTAR", "MICRO", "SPO", "GUIDED",
		"CRISPE", "CO-STAR", "RISE", "EXPERT", "MEDIATE", "AUDIT",
	}
	for _, acronym := range acronyms {
		f, err := r.Get(acronym)
		require.NoError(t, err, "built-in %s should resolve", acronym)
		assert.True(t, f.Category.Valid())
		assert.NotEmpty(t, f.Components)
	}
}

func TestDefaultRegistry_EveryCategoryPopulated(t *testing.T) {
	r := DefaultRegistry()

	for _, c := range Categories {
		got, err := r.ListByCategory(c)
		require.NoError(t, err)
		assert.NotEmpty(t, got, "category %s should have at least one built-in framework", c)
	}
}
