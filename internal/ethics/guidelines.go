package ethics

import "lexflow/internal/template"

// DefaultGuidelines returns the built-in guideline table.
//
// The table recasts LPC ethics guidance for AI use as trigger-phrase
// rules. Trigger phrases are matched against rendered prompt text, so
// they target wording that would actually appear in a prompt: demands to
// skip anonymisation, requests for privileged material, outcome
// predictions presented as advice, and so on. Table order is the order
// rationales and guideline IDs are reported in.
//
// The returned slice is a fresh copy on each call.
func DefaultGuidelines() []Guideline {
	out := make([]Guideline, len(defaultGuidelines))
	copy(out, defaultGuidelines)
	return out
}

var defaultGuidelines = []Guideline{
	{
		ID:        "identified-client-data",
		Title:     "Identified Client Information",
		Category:  CategoryConfidentiality,
		Level:     LevelProhibited,
		Rationale: "The prompt discloses identified or identifiable client information. Client-identifying details must never be submitted to an AI tool; anonymise as \"the Client\", \"Company A\" etc. before any AI consultation.",
		Triggers: []string{
			"do not anonymise",
			"without anonymising",
			"real client name",
			"identity number",
			"id number",
			"passport number",
		},
		LPCReference: "LPC Code of Conduct, Rule 3.3 (Confidentiality)",
	},
	{
		ID:        "intake-disclosures",
		Title:     "Prospective Client Intake Disclosures",
		Category:  CategoryConfidentiality,
		Level:     LevelProhibited,
		Rationale: "Client intake and matter assessment using a prospective client's confidential disclosures is a prohibited AI use. Conduct intake manually and anonymise before any AI consultation.",
		Triggers: []string{
			"client intake",
			"prospective client's disclosure",
			"intake interview transcript",
		},
		LPCReference: "LPC Code of Conduct, Rule 3.3 (Confidentiality)",
	},
	{
		ID:        "privileged-material",
		Title:     "Privileged Document Analysis",
		Category:  CategoryConfidentiality,
		Level:     LevelHigh,
		Rationale: "The prompt involves privileged material. Use only enterprise AI tools under strict data agreements, anonymise all identifiers, and obtain client consent where any disclosure risk remains.",
		Triggers: []string{
			"privileged",
			"attorney-client privilege",
			"without prejudice correspondence",
		},
		LPCReference: "LPC Code of Conduct, Rule 3.3 (Confidentiality)",
	},
	{
		ID:        "settlement-positions",
		Title:     "Settlement Negotiation Positions",
		Category:  CategoryConfidentiality,
		Level:     LevelHigh,
		Rationale: "Actual offers, counteroffers or negotiation positions must not be disclosed to an AI tool. Seek general strategic guidance only, with no case-specific figures or positions.",
		Triggers: []string{
			"settlement offer",
			"counteroffer",
			"negotiation position",
			"bottom line figure",
		},
	},
	{
		ID:        "outcome-prediction",
		Title:     "Case Outcome Prediction",
		Category:  CategorySupervision,
		Level:     LevelHigh,
		Rationale: "Outcome predictions may not be relied on as legal advice. Treat any prediction as one input among many, apply professional judgment, and caveat extensively when advising the client.",
		Triggers: []string{
			"predict the outcome",
			"chances of success",
			"likelihood of success",
			"probability of winning",
		},
	},
	{
		ID:        "criminal-matter-detail",
		Title:     "Criminal Defence Case Detail",
		Category:  CategoryConfidentiality,
		Level:     LevelHigh,
		Rationale: "Criminal defence work carries heightened privilege concerns. Use AI for general legal research only; no identified or identifiable case details in prompts.",
		Triggers: []string{
			"defence strategy",
			"accused's version",
			"plea negotiation",
		},
		PracticeAreas: []template.PracticeArea{template.AreaCriminal},
	},
	{
		ID:        "citation-verification",
		Title:     "Citation Verification",
		Category:  CategoryVerification,
		Level:     LevelMedium,
		Rationale: "The output will cite authority. Verify every citation on SAFLII and read the actual judgments before use; AI-generated SA citations are a known hallucination risk.",
		Triggers: []string{
			"cite",
			"authority",
			"authorities",
			"case law",
			"precedent",
			"saflii",
		},
		LPCReference: "LPC Code of Conduct, Rule 3.1 (Competence and Diligence)",
	},
	{
		ID:        "filing-ready-output",
		Title:     "Review Before Filing or Sending",
		Category:  CategorySupervision,
		Level:     LevelMedium,
		Rationale: "The output is intended for filing or sending. All AI output must be reviewed and edited by the responsible practitioner before it leaves the firm; the practitioner remains fully accountable for the work product.",
		Triggers: []string{
			"ready-to-send",
			"ready to file",
			"for issue out of",
			"file with the court",
		},
		LPCReference: "LPC Code of Conduct, Rule 3.2 (Supervision)",
	},
	{
		ID:        "billing-representation",
		Title:     "Billing for AI-Assisted Work",
		Category:  CategoryBilling,
		Level:     LevelMedium,
		Rationale: "Time saved by AI assistance may not be billed as if the work were done manually. Bill actual time and consider disclosure of AI use in the mandate.",
		Triggers: []string{
			"bill the client",
			"fee estimate",
			"hours spent",
		},
	},
}
