package workflow

// DefaultStore returns the built-in workflow set.
//
// Each built-in references only frameworks and templates present in the
// default registry and catalog. A fresh store is built on each call so
// callers own their copy.
func DefaultStore() *Store {
	s, err := NewStore(defaultDefinitions...)
	if err != nil {
		// Static table; failures are programming errors caught by tests.
		panic(err)
	}
	return s
}

// DefaultDefinitions returns a copy of the built-in workflow
// definitions, for callers that combine them with their own before
// constructing a [Store].
func DefaultDefinitions() []Definition {
	out := make([]Definition, len(defaultDefinitions))
	copy(out, defaultDefinitions)
	return out
}

var defaultDefinitions = []Definition{
	{
		Name:         "demand_letter",
		Description:  "Draft a letter of demand, then structure the draft into a reviewed final prompt.",
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
		KeyLegislation: []string{"prescribed_rate_of_interest_act", "national_credit_act"},
	},
	{
		Name:         "contract_review",
		Description:  "Clause-by-clause contract review, amendments schedule, and client advice memo.",
		Category:     CategoryTransactional,
		PracticeArea: "commercial",
		Inputs:       []string{"client_name", "contract_summary"},
		Steps: []Step{
			{
				ID:       "clause_analysis",
				Uses:     StepRef{Kind: RefTemplate, Name: "contract_clause_analysis"},
				Requires: []string{"client_name", "contract_summary"},
				Outputs:  []string{"clause_analysis"},
			},
			{
				ID:       "amendments",
				Uses:     StepRef{Kind: RefTemplate, Name: "amendments_schedule"},
				Requires: []string{"clause_analysis"},
				Outputs:  []string{"analysis_text"},
			},
			{
				ID:       "client_memo",
				Uses:     StepRef{Kind: RefTemplate, Name: "client_advice_memo"},
				Requires: []string{"client_name", "analysis_text"},
				Outputs:  []string{"final_prompt"},
			},
			{
				ID:       "stress_test",
				Uses:     StepRef{Kind: RefFramework, Name: "HOSTILE"},
				Requires: []string{"final_prompt"},
				Outputs:  []string{"review_prompt"},
			},
		},
		KeyLegislation: []string{"consumer_protection_act", "popia", "companies_act"},
	},
	{
		Name:         "unfair_dismissal",
		Description:  "Merits analysis of a dismissal dispute, reasoned stepwise and verified before advice.",
		Category:     CategoryDisputeResolution,
		PracticeArea: "labour",
		Inputs:       []string{"employee_description", "dismissal_facts", "client_name"},
		Steps: []Step{
			{
				ID:       "merits",
				Uses:     StepRef{Kind: RefTemplate, Name: "unfair_dismissal_analysis"},
				Requires: []string{"employee_description", "dismissal_facts"},
				Outputs:  []string{"analysis_text"},
			},
			{
				ID:       "reasoning",
				Uses:     StepRef{Kind: RefFramework, Name: "COT-LEGAL"},
				Requires: []string{"analysis_text"},
				Outputs:  []string{"reasoned_analysis", "analysis_text"},
			},
			{
				ID:       "advice",
				Uses:     StepRef{Kind: RefTemplate, Name: "client_advice_memo"},
				Requires: []string{"client_name", "analysis_text"},
				Outputs:  []string{"final_prompt"},
			},
		},
		KeyLegislation: []string{"labour_relations_act"},
	},
}
