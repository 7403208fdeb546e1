package refdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourtRegistry_GetCaseInsensitive(t *testing.T) {
	r := DefaultCourts()

	for _, abbrev := range []string{"CCMA", "ccma"} {
		c, err := r.Get(abbrev)
		require.NoError(t, err, "lookup %q", abbrev)
		assert.Equal(t, "CCMA", c.Abbreviation)
		assert.NotEmpty(t, c.GoverningAct)
	}
}

func TestCourtRegistry_GetNotFound(t *testing.T) {
	r := DefaultCourts()

	_, err := r.Get("ICC")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCourtNotFound))
}

func TestNewCourtRegistry_RejectsMissingAbbreviation(t *testing.T) {
	_, err := NewCourtRegistry(Court{Name: "Some Court"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "abbreviation is required")
}

func TestNewCourtRegistry_RejectsDuplicates(t *testing.T) {
	court := Court{Name: "Labour Court", Abbreviation: "LC"}

	_, err := NewCourtRegistry(court, court)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate abbreviation")
}

func TestDefaultCourts_CoversSpecialistForums(t *testing.T) {
	r := DefaultCourts()

	list := r.List()
	assert.Len(t, list, 10)

	for _, abbrev := range []string{"LC", "LAC", "CCMA", "CT", "CAC"} {
		_, err := r.Get(abbrev)
		assert.NoError(t, err, "built-in court %s should resolve", abbrev)
	}
}

func TestActRegistry_GetAndCitation(t *testing.T) {
	r := DefaultLegislation()

	lra, err := r.Get("labour_relations_act")
	require.NoError(t, err)
	assert.Equal(t, "Labour Relations Act 66 of 1995", lra.Citation())
	assert.NotEmpty(t, lra.KeyProvisions)
}

func TestActRegistry_GetNotFound(t *testing.T) {
	r := DefaultLegislation()

	_, err := r.Get("magna_carta")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrActNotFound))
}

func TestActRegistry_CitationsSkipsUnknownKeys(t *testing.T) {
	r := DefaultLegislation()

	citations := r.Citations([]string{"labour_relations_act", "magna_carta", "popia"})

	require.Len(t, citations, 2)
	assert.Contains(t, citations[0], "Labour Relations Act")
	assert.Contains(t, citations[1], "Protection of Personal Information Act")
}

func TestNewActRegistry_RejectsMissingKey(t *testing.T) {
	_, err := NewActRegistry(Act{ShortTitle: "Nameless Act"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "key is required")
}
