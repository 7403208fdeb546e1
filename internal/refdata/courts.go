// Package refdata provides the static South African reference data the
// prompt engine's callers draw on: specialist courts and key legislation.
//
// These are the immutable, already-validated lookup tables the pipeline
// treats as external collaborators. They are populated once at
// construction and never mutated, so registries may be shared freely
// across concurrent runs.
package refdata

import (
	"errors"
	"fmt"
	"strings"
)

// CourtCategory classifies a specialist court or tribunal.
type CourtCategory string

// Court categories.
const (
	CourtLabour      CourtCategory = "labour"
	CourtLand        CourtCategory = "land"
	CourtCompetition CourtCategory = "competition"
	CourtTax         CourtCategory = "tax"
	CourtEquality    CourtCategory = "equality"
	CourtFamily      CourtCategory = "family"
	CourtSmallClaims CourtCategory = "small_claims"
	CourtTribunal    CourtCategory = "tribunal"
)

// Court is an immutable specialist court or tribunal record.
type Court struct {
	// Name is the full court name.
	Name string

	// Abbreviation is the registry key (e.g. "LC", "CCMA").
	Abbreviation string

	Category CourtCategory

	// GoverningAct names the statute establishing the court.
	GoverningAct string

	// Jurisdiction summarises the court's subject-matter jurisdiction.
	Jurisdiction string

	// Seat is the principal seat, where the court has one.
	Seat string
}

// ErrCourtNotFound indicates the requested court abbreviation is unknown.
var ErrCourtNotFound = errors.New("court not found")

// CourtRegistry is a read-only collection of courts keyed by
// abbreviation.
type CourtRegistry struct {
	byAbbrev map[string]Court
	order    []string
}

// NewCourtRegistry creates a registry from the given courts.
// Abbreviations are keyed case-insensitively and must be unique.
func NewCourtRegistry(courts ...Court) (*CourtRegistry, error) {
	r := &CourtRegistry{
		byAbbrev: make(map[string]Court, len(courts)),
		order:    make([]string, 0, len(courts)),
	}
	for _, c := range courts {
		if c.Abbreviation == "" {
			return nil, fmt.Errorf("court %q: abbreviation is required", c.Name)
		}
		key := strings.ToUpper(c.Abbreviation)
		if _, exists := r.byAbbrev[key]; exists {
			return nil, fmt.Errorf("court %q: duplicate abbreviation", c.Abbreviation)
		}
		r.byAbbrev[key] = c
		r.order = append(r.order, key)
	}
	return r, nil
}

// Get returns the court registered under the given abbreviation
// (case-insensitive). Returns [ErrCourtNotFound] if absent.
func (r *CourtRegistry) Get(abbrev string) (Court, error) {
	c, ok := r.byAbbrev[strings.ToUpper(strings.TrimSpace(abbrev))]
	if !ok {
		return Court{}, fmt.Errorf("%w: %s", ErrCourtNotFound, abbrev)
	}
	return c, nil
}

// List returns all courts in insertion order.
func (r *CourtRegistry) List() []Court {
	out := make([]Court, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byAbbrev[key])
	}
	return out
}

// DefaultCourts returns the built-in specialist court registry.
func DefaultCourts() *CourtRegistry {
	r, err := NewCourtRegistry(defaultCourts...)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultCourts = []Court{
	{
		Name:         "Labour Court of South Africa",
		Abbreviation: "LC",
		Category:     CourtLabour,
		GoverningAct: "Labour Relations Act 66 of 1995, s151",
		Jurisdiction: "Exclusive jurisdiction over LRA matters: review of CCMA awards, strike interdicts, automatically unfair dismissals, s189A retrenchment disputes.",
		Seat:         "Johannesburg (also Cape Town, Durban, Gqeberha)",
	},
	{
		Name:         "Labour Appeal Court",
		Abbreviation: "LAC",
		Category:     CourtLabour,
		GoverningAct: "Labour Relations Act 66 of 1995, s167",
		Jurisdiction: "Appeals from the Labour Court; final court of appeal in most labour matters.",
		Seat:         "Johannesburg",
	},
	{
		Name:         "Commission for Conciliation, Mediation and Arbitration",
		Abbreviation: "CCMA",
		Category:     CourtTribunal,
		GoverningAct: "Labour Relations Act 66 of 1995, s112",
		Jurisdiction: "Conciliation and arbitration of dismissal and unfair labour practice disputes; 30-day referral period for dismissals.",
		Seat:         "National, with provincial offices",
	},
	{
		Name:         "Land Claims Court",
		Abbreviation: "LCC",
		Category:     CourtLand,
		GoverningAct: "Restitution of Land Rights Act 22 of 1994, s22",
		Jurisdiction: "Land restitution claims, labour tenant matters, ESTA evictions.",
		Seat:         "Randburg",
	},
	{
		Name:         "Competition Tribunal",
		Abbreviation: "CT",
		Category:     CourtCompetition,
		GoverningAct: "Competition Act 89 of 1998, s26",
		Jurisdiction: "Adjudication of prohibited practices, merger approval, interim relief in competition matters.",
		Seat:         "Pretoria",
	},
	{
		Name:         "Competition Appeal Court",
		Abbreviation: "CAC",
		Category:     CourtCompetition,
		GoverningAct: "Competition Act 89 of 1998, s36",
		Jurisdiction: "Appeals from and reviews of Competition Tribunal decisions.",
		Seat:         "Cape Town",
	},
	{
		Name:         "Tax Court",
		Abbreviation: "TC",
		Category:     CourtTax,
		GoverningAct: "Tax Administration Act 28 of 2011, s116",
		Jurisdiction: "Tax appeals against SARS assessments where the amount exceeds the ADR threshold.",
		Seat:         "Sittings per division",
	},
	{
		Name:         "Equality Court",
		Abbreviation: "EQC",
		Category:     CourtEquality,
		GoverningAct: "Promotion of Equality and Prevention of Unfair Discrimination Act 4 of 2000, s16",
		Jurisdiction: "Unfair discrimination, hate speech and harassment complaints; every High Court and designated Magistrate's Court sits as an Equality Court.",
		Seat:         "All divisions",
	},
	{
		Name:         "Small Claims Court",
		Abbreviation: "SCC",
		Category:     CourtSmallClaims,
		GoverningAct: "Small Claims Courts Act 61 of 1984",
		Jurisdiction: "Civil claims up to the prescribed monetary limit; no legal representation permitted.",
		Seat:         "Magisterial districts",
	},
	{
		Name:         "National Consumer Tribunal",
		Abbreviation: "NCT",
		Category:     CourtTribunal,
		GoverningAct: "National Credit Act 34 of 2005, s26",
		Jurisdiction: "Consumer credit and consumer protection matters under the NCA and CPA.",
		Seat:         "Centurion",
	},
}
