package template

// DefaultCatalog returns the built-in template set.
//
// The set covers the document types and analyses the built-in workflows
// reference. A fresh catalog is built on each call so callers own their
// copy.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultTemplates...)
	if err != nil {
		// Static table; failures are programming errors caught by tests.
		panic(err)
	}
	return c
}

var defaultTemplates = []Template{
	{
		Name:         "letter_of_demand",
		Title:        "Letter of Demand",
		PracticeArea: AreaCivil,
		Description:  "Formal demand letter required before instituting civil proceedings for recovery of debt or damages.",
		Body: `# Letter of Demand Drafting

## Role
You are an experienced litigation attorney drafting a formal Letter of Demand under South African law.

## Matter
Client: {{.client_name}}
Amount owed: {{.amount_owed}}

## Requirements
Draft a professional Letter of Demand that:
1. Clearly identifies the parties and relationship
2. States the factual background chronologically
3. Specifies the legal basis for the claim
4. Provides detailed quantum with interest calculation for {{.amount_owed}}
5. Gives a reasonable demand period (7-14 days)
6. Warns of legal consequences and reserves costs

## Legal Considerations
- Check prescription (3 years for debts generally)
- Consider the in duplum rule for interest
- If consumer credit: an NCA s129 notice may be required instead
- Preserve evidence of delivery

## Output
A complete Letter of Demand for {{.client_name}}, in formal business letter format with all sections completed.
`,
		RequiredInputs: []string{"client_name", "amount_owed"},
		KeyLegislation: []string{"prescribed_rate_of_interest_act", "national_credit_act", "consumer_protection_act"},
	},
	{
		Name:         "particulars_of_claim",
		Title:        "Particulars of Claim",
		PracticeArea: AreaCivil,
		Description:  "Particulars of claim for a summons, pleading the cause of action with the precision Rule 18 requires.",
		Body: `# Particulars of Claim Drafting

## Role
You are a litigation attorney drafting particulars of claim for issue out of the {{.court}}.

## Matter
Plaintiff: {{.client_name}}
Cause of action: {{.cause_of_action}}

## Requirements
Plead, in numbered paragraphs:
1. Citation of the parties with capacity and address
2. Jurisdiction of the {{.court}}
3. The material facts of the {{.cause_of_action}}, not evidence
4. The breach or wrongful conduct relied on
5. Quantification of damages or the amount claimed
6. The prayer, including interest and costs

## Drafting Constraints
- Comply with Uniform Rule 18 (or Magistrates' Courts Rule 6)
- Every allegation must be provable; plead facta probanda only
- Address prescription if the claim is near the three-year mark

## Output
Complete particulars of claim ready for counsel's settlement.
`,
		RequiredInputs: []string{"client_name", "court", "cause_of_action"},
		KeyLegislation: []string{"prescription_act"},
	},
	{
		Name:         "heads_of_argument",
		Title:        "Heads of Argument",
		PracticeArea: AreaCivil,
		Description:  "Heads of argument structured per the relevant practice directives, built from an existing draft or analysis.",
		Body: `# Heads of Argument

## Role
You are counsel preparing heads of argument for the {{.court}}.

## Source Material
{{.draft_text}}

## Requirements
Produce heads of argument that:
1. Open with the issues for determination, crisply stated
2. Set out the factual matrix only to the extent the issues require
3. Argue each issue with binding authority cited in SAFLII neutral format
4. Address the strongest points against the client's case
5. Close with the order sought, including costs

## Format
Numbered paragraphs, concise propositions, authority footnoted after each proposition. Comply with the {{.court}} practice directives on length and form.
`,
		RequiredInputs: []string{"court", "draft_text"},
		KeyLegislation: nil,
	},
	{
		Name:         "contract_clause_analysis",
		Title:        "Contract Clause-by-Clause Analysis",
		PracticeArea: AreaCommercial,
		Description:  "Detailed analysis of each material clause against market standards and SA law.",
		Body: `# Detailed Clause Analysis

## Role
You are a Senior Commercial Attorney conducting a detailed contract review for {{.client_name}}.

## Contract Under Review
{{.contract_summary}}

## Analysis Framework
For each material clause provide:
- **Summary**: what it says in plain language
- **Risk to client**: low / medium / high
- **Market standard**: better than / at / worse than market
- **SA law issues**: CPA application, POPIA compliance, competition law concerns
- **Recommended changes**: specific proposed amendments
- **Negotiation priority**: must have / nice to have / accept

## Clauses to Cover
Scope, price and payment, term and termination, warranties, liability and indemnity, limitation of liability, intellectual property, confidentiality, force majeure, dispute resolution, boilerplate.

## Output
Clause-by-clause analysis matrix with recommendations.
`,
		RequiredInputs: []string{"client_name", "contract_summary"},
		KeyLegislation: []string{"consumer_protection_act", "popia", "companies_act"},
	},
	{
		Name:         "amendments_schedule",
		Title:        "Contract Amendments Schedule",
		PracticeArea: AreaCommercial,
		Description:  "Drafts a schedule of proposed amendments from a completed clause analysis.",
		Body: `# Amendments Schedule Drafting

## Role
You are a commercial attorney converting a clause analysis into a negotiable amendments schedule.

## Clause Analysis
{{.clause_analysis}}

## Requirements
For every clause the analysis marked for change, produce:
1. Clause reference and current wording summary
2. Proposed replacement wording, drafted in full
3. A one-line motivation the other side will see
4. Fallback wording if the primary proposal is rejected

Order the schedule by negotiation priority (must-have items first).

## Output
A complete amendments schedule in a two-column current/proposed format.
`,
		RequiredInputs: []string{"clause_analysis"},
		KeyLegislation: nil,
	},
	{
		Name:         "unfair_dismissal_analysis",
		Title:        "Unfair Dismissal Comprehensive Analysis",
		PracticeArea: AreaLabour,
		Description:  "Analysis of dismissal fairness under the LRA, covering substantive and procedural fairness and forum strategy.",
		Body: `# Unfair Dismissal Analysis

## Role
You are a labour law specialist with extensive CCMA and Labour Court experience.

## Matter
Employee: {{.employee_description}}
Dismissal circumstances: {{.dismissal_facts}}

## Analysis Required
1. **Dismissal established?** Apply s186 of the LRA to the facts.
2. **Automatically unfair?** Test each s187 ground against the facts.
3. **Substantive fairness**: was there a fair reason (conduct, capacity, operational requirements)?
4. **Procedural fairness**: measure the process against the Code of Good Practice.
5. **Forum and relief**: CCMA or bargaining council referral, 30-day limit, reinstatement vs compensation (s193-s194).

## Authorities
Ground the analysis in Sidumo, NUMSA v Bader Bop and the Code of Good Practice: Dismissal. Cite SAFLII references.

## Output
A structured merits assessment with prospects expressed as a reasoned range, not a bare percentage.
`,
		RequiredInputs: []string{"employee_description", "dismissal_facts"},
		KeyLegislation: []string{"labour_relations_act"},
	},
	{
		Name:         "client_advice_memo",
		Title:        "Client Advice Memo",
		PracticeArea: AreaGeneral,
		Description:  "Plain-language advice memo for a client, built from completed legal analysis.",
		Body: `# Client Advice Memo

## Role
You are an attorney writing to your client, {{.client_name}}, in plain language.

## Underlying Analysis
{{.analysis_text}}

## Requirements
Write an advice memo that:
1. Opens with the answer in two sentences
2. Explains the reasons without legal jargon
3. Sets out the options with costs and risks of each
4. Recommends a course of action
5. States the next steps and what you need from the client

## Tone
Professional, direct, and empathetic. The client is commercially sophisticated but not a lawyer.
`,
		RequiredInputs: []string{"client_name", "analysis_text"},
		KeyLegislation: nil,
	},
}
