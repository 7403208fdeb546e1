package refdata

import (
	"errors"
	"fmt"
	"strings"
)

// LegislationCategory classifies an Act by field.
type LegislationCategory string

// Legislation categories.
const (
	LegConstitutional LegislationCategory = "constitutional"
	LegLabour         LegislationCategory = "labour"
	LegCommercial     LegislationCategory = "commercial"
	LegConsumer       LegislationCategory = "consumer"
	LegDataProtection LegislationCategory = "data_protection"
	LegCivil          LegislationCategory = "civil"
	LegAdministrative LegislationCategory = "administrative"
)

// Provision is a key section of an Act.
type Provision struct {
	Section string
	Title   string
	Summary string
}

// Act is an immutable legislation record.
type Act struct {
	// Key is the registry key (e.g. "labour_relations_act").
	Key string

	ShortTitle string

	// ActNumber is the formal citation (e.g. "Act 66 of 1995").
	ActNumber string

	FullTitle string
	Category  LegislationCategory

	// KeyProvisions are the sections most often engaged in practice.
	KeyProvisions []Provision
}

// Citation returns the conventional citation for the Act, e.g.
// "Labour Relations Act 66 of 1995".
func (a Act) Citation() string {
	if a.FullTitle != "" {
		return a.FullTitle
	}
	return a.ShortTitle + " " + a.ActNumber
}

// ErrActNotFound indicates the requested legislation key is unknown.
var ErrActNotFound = errors.New("legislation not found")

// ActRegistry is a read-only collection of Acts keyed by key.
type ActRegistry struct {
	byKey map[string]Act
	order []string
}

// NewActRegistry creates a registry from the given Acts. Keys are matched
// case-insensitively and must be unique.
func NewActRegistry(acts ...Act) (*ActRegistry, error) {
	r := &ActRegistry{
		byKey: make(map[string]Act, len(acts)),
		order: make([]string, 0, len(acts)),
	}
	for _, a := range acts {
		if a.Key == "" {
			return nil, fmt.Errorf("act %q: key is required", a.ShortTitle)
		}
		key := strings.ToLower(a.Key)
		if _, exists := r.byKey[key]; exists {
			return nil, fmt.Errorf("act %q: duplicate key", a.Key)
		}
		r.byKey[key] = a
		r.order = append(r.order, key)
	}
	return r, nil
}

// Get returns the Act registered under the given key (case-insensitive).
// Returns [ErrActNotFound] if absent.
func (r *ActRegistry) Get(key string) (Act, error) {
	a, ok := r.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Act{}, fmt.Errorf("%w: %s", ErrActNotFound, key)
	}
	return a, nil
}

// List returns all Acts in insertion order.
func (r *ActRegistry) List() []Act {
	out := make([]Act, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byKey[key])
	}
	return out
}

// Citations resolves a list of legislation keys to short citations,
// skipping unknown keys. Used to expand workflow and template metadata
// for display.
func (r *ActRegistry) Citations(keys []string) []string {
	var out []string
	for _, key := range keys {
		if a, err := r.Get(key); err == nil {
			out = append(out, a.Citation())
		}
	}
	return out
}

// DefaultLegislation returns the built-in legislation registry.
func DefaultLegislation() *ActRegistry {
	r, err := NewActRegistry(defaultActs...)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultActs = []Act{
	{
		Key:        "constitution",
		ShortTitle: "Constitution",
		ActNumber:  "Act 108 of 1996",
		FullTitle:  "Constitution of the Republic of South Africa, 1996",
		Category:   LegConstitutional,
		KeyProvisions: []Provision{
			{Section: "s9", Title: "Equality", Summary: "Equality before the law; the Harksen v Lane test governs unfair discrimination analysis."},
			{Section: "s25", Title: "Property", Summary: "Protection against arbitrary deprivation of property; expropriation requirements."},
			{Section: "s36", Title: "Limitation of rights", Summary: "General limitations clause; proportionality analysis for any rights infringement."},
		},
	},
	{
		Key:        "labour_relations_act",
		ShortTitle: "Labour Relations Act",
		ActNumber:  "Act 66 of 1995",
		FullTitle:  "Labour Relations Act 66 of 1995",
		Category:   LegLabour,
		KeyProvisions: []Provision{
			{Section: "s186", Title: "Meaning of dismissal", Summary: "Defines dismissal and unfair labour practice."},
			{Section: "s187", Title: "Automatically unfair dismissals", Summary: "Dismissals for protected strikes, discrimination or pregnancy are automatically unfair."},
			{Section: "s193", Title: "Remedies", Summary: "Reinstatement, re-employment or compensation for unfair dismissal."},
		},
	},
	{
		Key:        "companies_act",
		ShortTitle: "Companies Act",
		ActNumber:  "Act 71 of 2008",
		FullTitle:  "Companies Act 71 of 2008",
		Category:   LegCommercial,
		KeyProvisions: []Provision{
			{Section: "s76", Title: "Standards of directors conduct", Summary: "Fiduciary duties and the duty of care, skill and diligence."},
			{Section: "s77", Title: "Liability of directors", Summary: "Personal liability for breach of fiduciary duty or the duty of care."},
			{Section: "s163", Title: "Oppression remedy", Summary: "Relief from oppressive or unfairly prejudicial conduct."},
		},
	},
	{
		Key:        "popia",
		ShortTitle: "POPIA",
		ActNumber:  "Act 4 of 2013",
		FullTitle:  "Protection of Personal Information Act 4 of 2013",
		Category:   LegDataProtection,
		KeyProvisions: []Provision{
			{Section: "s11", Title: "Consent and lawful processing", Summary: "Grounds for lawful processing of personal information."},
			{Section: "s19", Title: "Security safeguards", Summary: "Duty to secure integrity and confidentiality of personal information."},
		},
	},
	{
		Key:        "consumer_protection_act",
		ShortTitle: "Consumer Protection Act",
		ActNumber:  "Act 68 of 2008",
		FullTitle:  "Consumer Protection Act 68 of 2008",
		Category:   LegConsumer,
		KeyProvisions: []Provision{
			{Section: "s14", Title: "Fixed-term agreements", Summary: "Consumer rights on expiry and cancellation of fixed-term agreements."},
			{Section: "s48", Title: "Unfair contract terms", Summary: "Prohibition of unfair, unreasonable or unjust contract terms."},
		},
	},
	{
		Key:        "national_credit_act",
		ShortTitle: "National Credit Act",
		ActNumber:  "Act 34 of 2005",
		FullTitle:  "National Credit Act 34 of 2005",
		Category:   LegConsumer,
		KeyProvisions: []Provision{
			{Section: "s129", Title: "Required procedures before debt enforcement", Summary: "Notice to the consumer before enforcing a credit agreement; a letter of demand is not a substitute."},
		},
	},
	{
		Key:        "prescription_act",
		ShortTitle: "Prescription Act",
		ActNumber:  "Act 68 of 1969",
		FullTitle:  "Prescription Act 68 of 1969",
		Category:   LegCivil,
		KeyProvisions: []Provision{
			{Section: "s11", Title: "Periods of prescription", Summary: "Three-year period for ordinary debts; longer periods for judgment and statutory debts."},
		},
	},
	{
		Key:        "prescribed_rate_of_interest_act",
		ShortTitle: "Prescribed Rate of Interest Act",
		ActNumber:  "Act 55 of 1975",
		FullTitle:  "Prescribed Rate of Interest Act 55 of 1975",
		Category:   LegCivil,
		KeyProvisions: []Provision{
			{Section: "s1", Title: "Prescribed rate", Summary: "Interest on debts where no rate is agreed; rate set by the Minister by notice."},
		},
	},
	{
		Key:        "paja",
		ShortTitle: "PAJA",
		ActNumber:  "Act 3 of 2000",
		FullTitle:  "Promotion of Administrative Justice Act 3 of 2000",
		Category:   LegAdministrative,
		KeyProvisions: []Provision{
			{Section: "s6", Title: "Judicial review", Summary: "Grounds for review of administrative action."},
		},
	},
}
