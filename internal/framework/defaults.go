package framework

// DefaultRegistry returns the built-in framework set.
//
// The set covers the structural, reasoning and verification techniques in
// common use at the SA bar, each adapted for local practice (SAFLII
// citations, court hierarchy, constitutional values). The registry is
// freshly built on each call so callers own their copy.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultFrameworks...)
	if err != nil {
		// The built-in table is static; a construction failure is a
		// programming error caught by the package tests.
		panic(err)
	}
	return r
}

var defaultFrameworks = []Framework{
	{
		Name:        "Role, Instructions, Context, Examples",
		Acronym:     "RICE",
		Category:    CategoryStructural,
		Description: "Foundation framework structuring prompts with clear role definition, specific instructions, contextual information, and illustrative examples for consistent SA legal output.",
		Components: []Component{
			{
				Label:    "Role",
				Guidance: "Define the SA legal persona the model should adopt.",
				Example:  "You are a Senior Advocate SC at the Johannesburg Bar with 20 years of constitutional law experience.",
			},
			{
				Label:    "Instructions",
				Guidance: "State the specific task directives, including the tests and authorities to apply.",
				Example:  "Analyse the constitutionality of this provision under sections 9, 10 and 36 of the Constitution, applying the Harksen v Lane rationality test.",
			},
			{
				Label:    "Context",
				Guidance: "Supply the SA legal context and constraints of the matter.",
				Example:  "The client is challenging regulations promulgated under the Disaster Management Act.",
			},
			{
				Label:    "Examples",
				Guidance: "Provide sample outputs or precedents to structure the answer against.",
				Example:  "Structure your analysis similar to the Constitutional Court's approach in Mistry v Interim Medical and Dental Council.",
			},
		},
		Adaptations: []string{
			"Specify SA court hierarchy (Constitutional Court, SCA, High Court divisions)",
			"Reference SAFLII neutral citation format",
			"Include ubuntu and transformative constitutionalism principles where relevant",
			"Reference SA legislation by Act number",
		},
		BestFor:    []string{"Complex legal analysis", "Structured opinions", "Court preparation"},
		Difficulty: "Intermediate",
		Source:     "North Carolina Bar Association",
	},
	{
		Name:        "Audience, Behaviour, Context, Details, Examples",
		Acronym:     "ABCDE",
		Category:    CategoryStructural,
		Description: "Comprehensive framework emphasising audience awareness, crucial where documents serve stakeholders from lay clients to Constitutional Court justices.",
		Components: []Component{
			{
				Label:    "Audience",
				Guidance: "Define the target reader and their legal sophistication.",
				Example:  "This opinion is for a commercial client CEO and will also be reviewed by instructing attorneys.",
			},
			{
				Label:    "Behaviour",
				Guidance: "Describe the expected output behaviour and register.",
				Example:  "Provide a balanced analysis that identifies risks while showing commercial pragmatism.",
			},
			{
				Label:    "Context",
				Guidance: "Give the situational background of the matter.",
				Example:  "This relates to a proposed acquisition of a Johannesburg-based fintech company.",
			},
			{
				Label:    "Details",
				Guidance: "List the specific requirements and provisions to address.",
				Example:  "Focus on MOI provisions, Companies Act 71 of 2008 compliance and s77 director liability.",
			},
			{
				Label:    "Examples",
				Guidance: "Specify a sample format or precedents to follow.",
				Example:  "Structure the opinion as: Executive Summary, Background, Issues, Analysis, Recommendations, Caveats.",
			},
		},
		Adaptations: []string{
			"Account for different audiences: judges, masters, registrars, commissioners",
			"Adapt language for lay clients using plain language principles",
			"Reference appropriate SA law firm formats and styles",
		},
		BestFor:    []string{"Client communications", "Court documents", "Multi-stakeholder outputs"},
		Difficulty: "Intermediate",
		Source:     "ContractPod AI / Leah AI",
	},
	{
		Name:        "Purpose, Persona, Prompt, Parameters, Proof, Preview, Polish",
		Acronym:     "7PS",
		Category:    CategoryStructural,
		Description: "Seven-step framework ensuring thorough prompt preparation from initial purpose through final refinement, suited to complex SA litigation matters.",
		Components: []Component{
			{
				Label:    "Purpose",
				Guidance: "Define the objective of the work product.",
				Example:  "Prepare heads of argument for an urgent interdict application in the Gauteng Division.",
			},
			{
				Label:    "Persona",
				Guidance: "Assign the appropriate professional role.",
				Example:  "You are an experienced High Court advocate specialising in urgent applications.",
			},
			{
				Label:    "Prompt",
				Guidance: "State the core instruction.",
				Example:  "Draft heads of argument addressing the interim interdict requirements per Setlogelo v Setlogelo.",
			},
			{
				Label:    "Parameters",
				Guidance: "Set the constraints and specifications: length, authorities, sources.",
				Example:  "Maximum 15 pages; include at least 5 SA authorities; reference the urgency affidavit.",
			},
			{
				Label:    "Proof",
				Guidance: "State the verification requirements for everything produced.",
				Example:  "Cite only cases from SAFLII or official law reports; flag any uncertain authorities.",
			},
			{
				Label:    "Preview",
				Guidance: "Require an outline for approval before full drafting.",
				Example:  "Provide an outline and list of authorities first.",
			},
			{
				Label:    "Polish",
				Guidance: "Give refinement instructions for the final pass.",
				Example:  "Refine for High Court formal register with proper paragraph numbering.",
			},
		},
		Adaptations: []string{
			"Include practice directive compliance checks per court division",
			"Add Rule 6(12) urgent application requirements where relevant",
			"Verify SAFLII citation format before filing",
		},
		BestFor:    []string{"Complex litigation", "Urgent applications", "Formal court documents"},
		Difficulty: "Advanced",
		Source:     "Wisconsin State Bar",
	},
	{
		Name:        "Context-Instruction-Context Sandwich",
		Acronym:     "SANDWICH",
		Category:    CategoryStructural,
		Description: "Places the critical instructions between context layers to counter the lost-middle effect in long prompts, suited to multi-issue SA constitutional matters.",
		Components: []Component{
			{
				Label:    "Opening context",
				Guidance: "Set out the matter background before any instruction.",
				Example:  "This matter challenges municipal by-laws regulating informal trading in the Cape Town CBD.",
			},
			{
				Label:    "Critical instructions",
				Guidance: "State the core requirements here, in the middle, marked as essential.",
				Example:  "Apply the Camps Bay Ratepayers test for by-law validity and address both PAJA procedural fairness and substantive constitutional challenges.",
			},
			{
				Label:    "Supporting details",
				Guidance: "Add the secondary facts and context after the instructions.",
				Example:  "The by-laws were promulgated under s156 municipal powers; affected traders were not consulted.",
			},
			{
				Label:    "Reinforced instructions",
				Guidance: "Close by repeating the key requirements so they are not dropped.",
				Example:  "Remember: ultra vires analysis, PAJA fairness, the s22 right to trade, and at least three Constitutional Court authorities.",
			},
		},
		Adaptations: []string{
			"Place constitutional analysis requirements in the critical middle section",
			"Sandwich SAFLII citation requirements with the core instructions",
			"Reinforce jurisdiction-specific requirements at the end",
		},
		BestFor:    []string{"Long complex prompts", "Multi-issue analysis", "Constitutional matters"},
		Difficulty: "Intermediate",
		Source:     "Prompt Engineering Research",
	},
	{
		Name:        "Jurisdiction, Underlying facts, Specific issue, Timeframe, Authorities, Structure, Keywords",
		Acronym:     "JUST-ASK",
		Category:    CategorySpecialized,
		Description: "Legal-research framework ensuring every element of an SA research request is addressed, from forum selection through to the keywords the search should cover.",
		Components: []Component{
			{
				Label:    "Jurisdiction",
				Guidance: "Specify the court or forum precisely, including the division.",
				Example:  "High Court, Gauteng Division, Pretoria; appealable to the SCA.",
			},
			{
				Label:    "Underlying facts",
				Guidance: "Give the key factual background the research must fit.",
				Example:  "State entity expropriated property without following proper procedures; no compensation offered.",
			},
			{
				Label:    "Specific issue",
				Guidance: "Pose the precise legal question, not a topic.",
				Example:  "Whether s25(2) just and equitable compensation applies to expropriation for land reform purposes.",
			},
			{
				Label:    "Timeframe",
				Guidance: "Bound the research period where currency matters.",
				Example:  "Focus on Constitutional Court decisions after 2018.",
			},
			{
				Label:    "Authorities",
				Guidance: "Name the source classes the answer must rest on.",
				Example:  "Constitutional Court and SCA judgments on SAFLII, plus SALJ commentary.",
			},
			{
				Label:    "Structure",
				Guidance: "Prescribe the output format.",
				Example:  "IRAC format with separate sections for historical development and current position.",
			},
			{
				Label:    "Keywords",
				Guidance: "List the search terms the research should cover.",
				Example:  "Expropriation, compensation, land reform, s25, deprivation versus expropriation.",
			},
		},
		Adaptations: []string{
			"Specify the SA court division precisely (WCHC versus GPJHC)",
			"Include SAFLII as the authoritative source",
			"Reference SA law reports (SA, BCLR, All SA) and legislation by Act number",
		},
		BestFor:    []string{"Legal research", "Case preparation", "Opinion writing"},
		Difficulty: "Intermediate",
		Source:     "North Carolina Bar Association",
	},
	{
		Name:        "Context, Ask, Specify, Evaluate",
		Acronym:     "CASE",
		Category:    CategoryIterative,
		Description: "Lightweight iterative framework for day-to-day drafting: give context, ask the question, specify the form of the answer, then evaluate and refine.",
		Components: []Component{
			{
				Label:    "Context",
				Guidance: "Summarise the matter background in two or three sentences.",
				Example:  "Our client, a franchisee, received a termination notice alleging breach of brand standards.",
			},
			{
				Label:    "Ask",
				Guidance: "Pose the precise legal question.",
				Example:  "Is the termination lawful under the franchise agreement and the Consumer Protection Act?",
			},
			{
				Label:    "Specify",
				Guidance: "Specify the output format and depth required.",
				Example:  "A one-page advice note with a recommendation and two fallback positions.",
			},
			{
				Label:    "Evaluate",
				Guidance: "Review the output against the ask and iterate on gaps.",
				Example:  "Check whether s14 of the CPA was considered; if not, ask for it expressly.",
			},
		},
		Adaptations: []string{
			"Keep client identifiers out of the context summary",
			"Evaluate against SA authority, not foreign law defaults",
		},
		BestFor:    []string{"Quick advice notes", "Correspondence", "Iterative drafting"},
		Difficulty: "Beginner",
		Source:     "ContractPod AI",
	},
	{
		Name:        "Chain-of-Thought Legal Reasoning",
		Acronym:     "COT-LEGAL",
		Category:    CategoryReasoning,
		Description: "Directs the model to reason stepwise through the SA legal method: issue, applicable law, application to facts, counter-arguments, conclusion.",
		Components: []Component{
			{
				Label:    "Issue",
				Guidance: "Isolate the legal issue(s) to be decided, each stated as a question.",
				Example:  "Does the restraint of trade clause bind the employee after retrenchment?",
			},
			{
				Label:    "Law",
				Guidance: "Set out the governing statutes and leading cases step by step, from the Constitution downward.",
				Example:  "Begin with Magna Alloys v Ellis on restraint enforceability, then Basson v Chilwan reasonableness factors.",
			},
			{
				Label:    "Application",
				Guidance: "Apply each legal element to the matter facts explicitly, one element at a time.",
				Example:  "Apply each Basson factor to the employee's territory, duration and customer connection facts.",
			},
			{
				Label:    "Counter-arguments",
				Guidance: "State the strongest opposing construction before concluding.",
				Example:  "Consider the employer's protectable interest argument and its weaknesses.",
			},
			{
				Label:    "Conclusion",
				Guidance: "Conclude with a reasoned answer and confidence qualification.",
				Example:  "Conclude on enforceability with the principal uncertainties flagged.",
			},
		},
		Adaptations: []string{
			"Follow the SA court method: constitutional issues first where engaged",
			"Distinguish binding from persuasive authority by court level",
		},
		BestFor:    []string{"Opinions", "Heads of argument", "Exam-style analysis"},
		Difficulty: "Intermediate",
		Source:     "Legal prompting literature (CoT adaptation)",
	},
	{
		Name:        "Prompt Chaining",
		Acronym:     "CHAIN",
		Category:    CategoryIterative,
		Description: "Decomposes a large task into a sequence of dependent prompts, each consuming the prior output. The workflow engine applies this framework mechanically.",
		Components: []Component{
			{
				Label:    "Decompose",
				Guidance: "Break the matter into ordered sub-tasks with clear hand-offs.",
				Example:  "1. Summarise facts; 2. Research authority; 3. Draft; 4. Review against authority.",
			},
			{
				Label:    "Carry",
				Guidance: "State exactly which prior output this step builds on.",
				Example:  "Using the clause analysis above, draft the amendments schedule.",
			},
			{
				Label:    "Verify",
				Guidance: "End each link with a verification instruction before the next link runs.",
				Example:  "List any assumptions this draft makes that were not in the source analysis.",
			},
		},
		Adaptations: []string{
			"Keep each link's output self-contained so privilege review can happen per step",
		},
		BestFor:    []string{"Multi-step matters", "Contract review pipelines", "Due diligence"},
		Difficulty: "Advanced",
		Source:     "Anthropic / OpenAI prompting guides",
	},
	{
		Name:        "Hostile Witness Technique",
		Acronym:     "HOSTILE",
		Category:    CategoryVerification,
		Description: "Cross-examines a draft as opposing counsel would, surfacing weaknesses, unsupported assertions and missing authority before an opponent does.",
		Components: []Component{
			{
				Label:    "Adopt opposition",
				Guidance: "Instruct the model to act as opposing counsel attacking the draft.",
				Example:  "You act for the respondent. Attack these heads of argument clause by clause.",
			},
			{
				Label:    "Attack authority",
				Guidance: "Challenge every citation: is it real, current, and on point?",
				Example:  "Identify any authority that is distinguishable on the facts or has been overruled.",
			},
			{
				Label:    "Attack logic",
				Guidance: "Probe each inferential step for gaps a court would notice.",
				Example:  "Where does the argument assume causation without pleading it?",
			},
			{
				Label:    "Rehabilitate",
				Guidance: "Close by listing the repairs the draft needs to survive the attack.",
				Example:  "For each successful attack, state the amendment that cures it.",
			},
		},
		Adaptations: []string{
			"Attack SAFLII citations specifically; hallucinated SA citations are a known failure mode",
			"Consider appeal court treatment (SCA, Constitutional Court) of cited authority",
		},
		BestFor:    []string{"Pre-filing review", "Opinion stress-testing", "Negotiation preparation"},
		Difficulty: "Intermediate",
		Source:     "Trial advocacy adaptation",
	},
	{
		Name:        "Falsifiable Questions",
		Acronym:     "FALSIFY",
		Category:    CategoryVerification,
		Description: "Converts open requests into questions whose answers can be checked against a source, reducing hallucination in legal research output.",
		Components: []Component{
			{
				Label:    "Restate",
				Guidance: "Restate the research request as specific, checkable questions.",
				Example:  "Instead of 'what is the law on prescription', ask 'what period does s11(d) of the Prescription Act set for contractual debts?'",
			},
			{
				Label:    "Source",
				Guidance: "Require a named, checkable source for every answer.",
				Example:  "For each proposition, give the Act and section or the SAFLII citation.",
			},
			{
				Label:    "Falsify",
				Guidance: "Ask what evidence would disprove each answer.",
				Example:  "State what a contrary judgment would have to hold for this answer to be wrong.",
			},
		},
		Adaptations: []string{
			"Require SAFLII or official law report sourcing; reject secondary summaries",
		},
		BestFor:    []string{"Legal research", "Citation verification", "Fact checking"},
		Difficulty: "Beginner",
		Source:     "Scientific method adaptation",
	},
	{
		Name:        "Positive Framing",
		Acronym:     "POSITIVE",
		Category:    CategoryVerification,
		Description: "Replaces prohibitions with affirmative commands: tell the model what to do rather than what to avoid, improving compliance in SA legal output.",
		Components: []Component{
			{
				Label:    "Positive commands",
				Guidance: "Restate every prohibition as an affirmative instruction.",
				Example:  "Instead of 'do not cite American cases', write 'cite only South African authorities from SAFLII'.",
			},
			{
				Label:    "Inclusive language",
				Guidance: "Define what belongs in the answer, not what is excluded.",
				Example:  "Include only cases directly addressing s193 remedies.",
			},
			{
				Label:    "Specific guidance",
				Guidance: "Replace vague cautions with concrete requirements.",
				Example:  "Provide paragraph numbers for every proposition of law.",
			},
			{
				Label:    "Focus areas",
				Guidance: "Direct attention to the issues that matter.",
				Example:  "Focus exclusively on the limitation of actions defence.",
			},
		},
		Adaptations: []string{
			"Positively specify the SA citation format required",
			"Direct the model to SAFLII and official law reports by name",
			"Affirmatively require Constitutional Court jurisprudence where engaged",
		},
		BestFor:    []string{"Clear instructions", "Reducing confusion", "Better compliance"},
		Difficulty: "Beginner",
		Source:     "Relativity AI Prompt Engineering Guide",
	},
	{
		Name:        "Verify, Analyse, Reflect, Iterate",
		Acronym:     "VARI",
		Category:    CategoryReasoning,
		Description: "Requires explicit verification, systematic analysis, self-reflection and iteration at each analytical step, for rigorous rights-based SA legal reasoning.",
		Components: []Component{
			{
				Label:    "Verify understanding",
				Guidance: "Confirm the precise legal question, relief sought and forum before analysing.",
				Example:  "Verify: is the eviction notice valid under PIE? The client has occupied since 2015; the forum is a Magistrate's Court application.",
			},
			{
				Label:    "Analyse systematically",
				Guidance: "Break the analysis into its elements and work each in turn.",
				Example:  "Work through the PIE Act s4-5 requirements, s26 housing obligations, and the meaningful engagement requirement.",
			},
			{
				Label:    "Reflect and question",
				Guidance: "Interrogate the analysis for missed authority and weak steps.",
				Example:  "Have all relevant Constitutional Court authorities been considered? Any recent SCA treatment?",
			},
			{
				Label:    "Iterate and improve",
				Guidance: "Refine the conclusions against the reflection's findings.",
				Example:  "Recheck the reasoning against ubuntu principles and recent Housing Act amendments.",
			},
		},
		Adaptations: []string{
			"Verify understanding against the SA court hierarchy",
			"Analyse within the constitutional framework first",
			"Reflect on ubuntu and community impact before concluding",
		},
		BestFor:    []string{"Complex constitutional matters", "Rights-based analysis", "Multi-step legal reasoning"},
		Difficulty: "Advanced",
		Source:     "DeepMind AI Research",
	},
	{
		Name:        "Query, Strategise, Think ahead, Assess, Recommend",
		Acronym:     "QSTAR",
		Category:    CategoryIterative,
		Description: "Maps litigation pathways and weighs cost, risk and probability across them to recommend the optimal strategy for an SA matter.",
		Components: []Component{
			{
				Label:    "Query state",
				Guidance: "Define the current legal position and the goal.",
				Example:  "Current state: employer received a demand letter. Goal: minimise liability while preserving the business relationship.",
			},
			{
				Label:    "Strategy paths",
				Guidance: "Map every available strategic pathway.",
				Example:  "Settlement negotiation, CCMA conciliation, defend at arbitration, Labour Court review.",
			},
			{
				Label:    "Think ahead",
				Guidance: "Project cost, timeline and probability several moves out per path.",
				Example:  "Settlement: estimated R150k at 80% acceptance. Defend: R300k plus a 60% success probability.",
			},
			{
				Label:    "Assess optimally",
				Guidance: "Compare expected values across paths.",
				Example:  "Settlement's expected cost undercuts the defended expected cost and preserves confidentiality.",
			},
			{
				Label:    "Recommend action",
				Guidance: "Close with an actionable recommendation and fallback.",
				Example:  "Initiate without prejudice discussions with a stated ceiling; prepare the arbitration defence as the fallback.",
			},
		},
		Adaptations: []string{
			"Factor in CCMA and bargaining council timelines",
			"Include the cost of Constitutional Court escalation in projections",
			"Account for ubuntu-based resolution preferences",
		},
		BestFor:    []string{"Litigation strategy", "Cost-benefit analysis", "Settlement negotiations"},
		Difficulty: "Advanced",
		Source:     "OpenAI Q* Research",
	},
	{
		Name:        "Measure, Identify, Correct, Refine, Optimise",
		Acronym:     "MICRO",
		Category:    CategoryIterative,
		Description: "Iterative micro-enhancement: score the current prompt, identify its specific weaknesses, and apply small cumulative fixes until it is near optimal.",
		Components: []Component{
			{
				Label:    "Measure current",
				Guidance: "Score the baseline prompt on clarity, specificity, SA context and structure.",
				Example:  "Clarity 6/10, specificity 5/10, SA context 7/10, structure 6/10.",
			},
			{
				Label:    "Identify weaknesses",
				Guidance: "Name the specific gaps the scores point to.",
				Example:  "No role specified, vague timeline, missing citation format requirement.",
			},
			{
				Label:    "Correct incrementally",
				Guidance: "Apply one targeted fix per gap.",
				Example:  "Add: you are a senior attorney specialising in commercial law; use SAFLII neutral citations.",
			},
			{
				Label:    "Refine structure",
				Guidance: "Reorganise the prompt into a clean section order.",
				Example:  "Context, then instructions, then format, then constraints, then output.",
			},
			{
				Label:    "Optimise tokens",
				Guidance: "Consolidate redundant instructions and raise information density.",
				Example:  "Remove filler phrasing and add explicit section delimiters.",
			},
		},
		Adaptations: []string{
			"Check each micro-fix preserves SA legal accuracy",
			"Add SA citation requirements incrementally rather than in one block",
		},
		BestFor:    []string{"Prompt refinement", "Quality improvement", "Teaching prompt engineering"},
		Difficulty: "Intermediate",
		Source:     "Microsoft Research",
	},
	{
		Name:        "Self-Play Optimisation",
		Acronym:     "SPO",
		Category:    CategoryIterative,
		Description: "Refines a prompt through adversarial self-questioning rounds: an opponent voice asks what the prompt leaves open, and each round closes a gap.",
		Components: []Component{
			{
				Label:    "Set initial prompt",
				Guidance: "Establish the baseline prompt, however rough.",
				Example:  "Analyse the validity of this restraint of trade clause.",
			},
			{
				Label:    "Play opponent",
				Guidance: "Generate the adversarial questions the prompt fails to answer.",
				Example:  "Which jurisdiction? Which industry? What restraint period? What consideration was given?",
			},
			{
				Label:    "Optimise response",
				Guidance: "Refine the prompt to answer every opponent question, then repeat.",
				Example:  "Analyse the validity of a two-year, 50km restraint for a sales manager in the pharmaceutical sector, Gauteng jurisdiction.",
			},
		},
		Adaptations: []string{
			"Include the SA restraint test (Magna Alloys) in refined rounds",
			"Add the Basson v Chilwan reasonableness factors where restraints arise",
		},
		BestFor:    []string{"Prompt refinement", "Gap identification", "Comprehensive coverage"},
		Difficulty: "Intermediate",
		Source:     "HKUST / DeepWisdom Research",
	},
	{
		Name:        "Goal, User, Information, Deliverable, Examples, Delimiters",
		Acronym:     "GUIDED",
		Category:    CategoryStructural,
		Description: "Step-by-step guided construction with a component checklist, walking the practitioner through every element of a complete legal prompt.",
		Components: []Component{
			{
				Label:    "Goal",
				Guidance: "State the legal outcome the prompt must achieve.",
				Example:  "Determine whether the client has a valid constructive dismissal claim.",
			},
			{
				Label:    "User",
				Guidance: "Identify the audience and its legal sophistication.",
				Example:  "Senior partner review; the client is an HR director.",
			},
			{
				Label:    "Information",
				Guidance: "List the factual inputs the analysis needs.",
				Example:  "Employment history, working condition changes, resignation circumstances.",
			},
			{
				Label:    "Deliverable",
				Guidance: "Prescribe the output format.",
				Example:  "Internal memo with a high/medium/low risk assessment.",
			},
			{
				Label:    "Examples",
				Guidance: "Name the authorities and precedent formats to follow.",
				Example:  "Cite Pretoria Society for the Care of the Retarded v Loots and Murray v Minister of Defence.",
			},
			{
				Label:    "Delimiters",
				Guidance: "Specify the output structure and section markers.",
				Example:  "Executive summary, facts, law, analysis, risk assessment, recommendations.",
			},
		},
		Adaptations: []string{
			"Guide the drafter to state SA jurisdiction context explicitly",
			"Prompt for SA legislation references by Act number",
		},
		BestFor:    []string{"Learning prompt engineering", "Ensuring completeness", "Training junior staff"},
		Difficulty: "Beginner",
		Source:     "302 Prompt Expert Complete Guide",
	},
	{
		Name:        "Capacity, Role, Insight, Statement, Personality, Experiment",
		Acronym:     "CRISPE",
		Category:    CategoryStructural,
		Description: "System-prompt framework layering role, expertise profile, goals, skills and constraints into a single structured persona for SA legal work.",
		Components: []Component{
			{
				Label:    "Role",
				Guidance: "Assign the professional persona the model acts as.",
				Example:  "You are an expert SA legal professional with comprehensive knowledge of South African jurisprudence.",
			},
			{
				Label:    "Profile",
				Guidance: "Detail the expertise, jurisdiction focus and citation standard of that persona.",
				Example:  "Jurisdiction: SA courts from Magistrates' Courts to the Constitutional Court; citation standard: SAFLII neutral citations.",
			},
			{
				Label:    "Goals",
				Guidance: "State the objectives the persona works toward in this matter.",
				Example:  "Produce a reasoned opinion on the enforceability of the suspensive condition.",
			},
			{
				Label:    "Skills",
				Guidance: "List the methods the persona applies.",
				Example:  "Statutory interpretation (purposive approach), precedent analysis, ubuntu-infused constitutional reasoning.",
			},
			{
				Label:    "Constraints",
				Guidance: "Bound the output: sources, citation format, ethics.",
				Example:  "Cite only SA case law with proper SAFLII citations; reference Acts by full title, number and year.",
			},
			{
				Label:    "Output format",
				Guidance: "Prescribe the deliverable's structure.",
				Example:  "Numbered-paragraph opinion with a separate authorities schedule.",
			},
		},
		Adaptations: []string{
			"Apply s36 limitations analysis for rights-based matters",
			"Consider appeal routes and court hierarchy in the persona's constraints",
			"Maintain professional ethics per LPC guidelines",
		},
		BestFor:    []string{"System prompts", "Persona setup", "Repeatable matter setups"},
		Difficulty: "Intermediate",
		Source:     "CRISPE prompting literature",
	},
	{
		Name:        "Context, Objective, Style, Tone, Audience, Result",
		Acronym:     "CO-STAR",
		Category:    CategoryStructural,
		Description: "Six-part framework separating what the matter is from how the answer should read, geared to outputs that must land with a specific SA audience.",
		Components: []Component{
			{
				Label:    "Context",
				Guidance: "Give the matter background and the applicable legal system.",
				Example:  "Shareholder dispute in a private company; SA mixed legal system with constitutional supremacy.",
			},
			{
				Label:    "Objective",
				Guidance: "State precisely what the output must achieve.",
				Example:  "Advise whether an oppression remedy under s163 of the Companies Act is available.",
			},
			{
				Label:    "Style",
				Guidance: "Define the analytical identity and approach.",
				Example:  "Senior SA legal practitioner applying scholarly precision with practical applicability.",
			},
			{
				Label:    "Tone",
				Guidance: "Set the register of the writing.",
				Example:  "Formal but direct; avoid hedging where the law is settled.",
			},
			{
				Label:    "Audience",
				Guidance: "Identify who reads the output and their sophistication.",
				Example:  "Instructing attorney and a commercially astute lay client.",
			},
			{
				Label:    "Result",
				Guidance: "Specify the expected deliverable and its quality standards.",
				Example:  "Two-page advice with SAFLII citations and numbered paragraphs.",
			},
		},
		Adaptations: []string{
			"Use human dignity, equality and freedom as interpretive guides in the style section",
			"Distinguish binding precedent from persuasive authority in the result standards",
		},
		BestFor:    []string{"Client-facing outputs", "Audience-sensitive drafting", "Advice notes"},
		Difficulty: "Intermediate",
		Source:     "CO-STAR prompting literature",
	},
	{
		Name:        "Recursive Introspection for Self-improvement",
		Acronym:     "RISE",
		Category:    CategoryReasoning,
		Description: "Directs the model through fixed self-critique iterations: initial analysis, weakness identification, then an enhanced pass with a confidence assessment.",
		Components: []Component{
			{
				Label:    "Initial analysis",
				Guidance: "Produce the first-pass analysis with a stated confidence rating and identified uncertainties.",
				Example:  "Initial opinion on the prescription defence; confidence 6/10; uncertain on interruption by acknowledgment.",
			},
			{
				Label:    "Self-critique",
				Guidance: "Examine the first pass for missing precedents, underexplored arguments and alternative interpretations.",
				Example:  "Missing: Makate v Vodacom on the meaning of debt; the delictual alternative was not explored.",
			},
			{
				Label:    "Enhanced analysis",
				Guidance: "Address every identified weakness and strengthen the reasoning chain.",
				Example:  "Incorporate the additional authorities and reassess the conclusion's confidence.",
			},
			{
				Label:    "Final assessment",
				Guidance: "Close with the refined opinion, an improvement summary and remaining risk flags.",
				Example:  "Final confidence 8/10; remaining risk: unreported High Court treatment of the acknowledgment point.",
			},
		},
		Adaptations: []string{
			"Distinguish obiter from ratio decidendi in the critique pass",
			"Apply transformative constitutionalism where constitutional interpretation arises",
		},
		BestFor:    []string{"High-stakes opinions", "Self-checked research", "Confidence-rated advice"},
		Difficulty: "Advanced",
		Source:     "RISE methodology research",
	},
	{
		Name:        "Expert Witness Opinion Structure",
		Acronym:     "EXPERT",
		Category:    CategorySpecialized,
		Description: "Structures a technical expert opinion to Uniform Rule 36(9) requirements: qualifications, brief, methodology, findings, opinion and declaration.",
		Components: []Component{
			{
				Label:    "Qualifications",
				Guidance: "State the expert's qualifications, experience and independence, confirming the duty is to the court.",
				Example:  "Chartered accountant, 15 years forensic practice; duty owed to the court, not the instructing party.",
			},
			{
				Label:    "Brief and materials",
				Guidance: "Summarise the instructions received and list every document reviewed, noting limitations.",
				Example:  "Reviewed the management accounts 2019-2024; bank statements for 2020 were not provided.",
			},
			{
				Label:    "Methodology",
				Guidance: "Explain the technical method applied, referencing professional standards.",
				Example:  "Funds-flow tracing per ISA 240 guidance, step by step.",
			},
			{
				Label:    "Findings",
				Guidance: "Present the factual findings, separating fact from inference from opinion.",
				Example:  "Fact: R2.4m transferred to the related entity. Inference: no commercial purpose appears from the records.",
			},
			{
				Label:    "Opinion",
				Guidance: "State conclusions with a degree of certainty and the alternative interpretations addressed.",
				Example:  "On a balance of probability the transfers were not arm's length; the loan-account explanation is inconsistent with the records.",
			},
			{
				Label:    "Declaration",
				Guidance: "Close with the Rule 36(9) independence declaration.",
				Example:  "I confirm my independence and acknowledge my duty to the court under Rule 36(9).",
			},
		},
		Adaptations: []string{
			"Keep the opinion comprehensible to a layperson",
			"Avoid legal conclusions; those are for the court",
			"Disclose any prior relationship with the parties",
		},
		BestFor:    []string{"Expert reports", "Technical opinions", "Trial preparation"},
		Difficulty: "Advanced",
		Source:     "Uniform Rules of Court practice",
	},
	{
		Name:        "Mediation and ADR Facilitation Structure",
		Acronym:     "MEDIATE",
		Category:    CategorySpecialized,
		Description: "Walks a dispute through the five mediation phases, from opening agreement to documented settlement, within the SA ADR legal framework.",
		Components: []Component{
			{
				Label:    "Opening",
				Guidance: "Confirm voluntary participation, the facilitator's neutral role, ground rules and authority to settle.",
				Example:  "Both parties confirm mandates to settle; confidentiality and good faith ground rules agreed.",
			},
			{
				Label:    "Statements",
				Guidance: "Let each party present uninterrupted, then distil positions into underlying interests and an issue agenda.",
				Example:  "Landlord's position is arrears payment; the underlying interest is a reliable long-term tenant.",
			},
			{
				Label:    "Exploration",
				Guidance: "Reality-test positions against the alternatives to settlement and generate options without commitment.",
				Example:  "Test the tenant's position against the cost and delay of an opposed eviction application.",
			},
			{
				Label:    "Negotiation",
				Guidance: "Facilitate interest-based bargaining, building incrementally on agreements reached.",
				Example:  "Agree the payment plan first, then the lease extension it supports.",
			},
			{
				Label:    "Agreement",
				Guidance: "Document clear, actionable terms with implementation and breach provisions.",
				Example:  "Settlement recorded as a court order by consent with a breach acceleration clause.",
			},
		},
		Adaptations: []string{
			"Apply the CCMA process under the LRA for labour disputes",
			"Reference the Arbitration Act 42 of 1965 for domestic arbitrations",
			"Recognise customary and traditional dispute resolution where applicable",
		},
		BestFor:    []string{"Settlement facilitation", "CCMA preparation", "Dispute resolution clauses"},
		Difficulty: "Intermediate",
		Source:     "SA ADR practice standards",
	},
	{
		Name:        "Regulatory Compliance Audit Structure",
		Acronym:     "AUDIT",
		Category:    CategorySpecialized,
		Description: "Structures a regulatory compliance review: scope, controls assessment, risk rating, gap analysis and a remediation plan against SA compliance legislation.",
		Components: []Component{
			{
				Label:    "Scope",
				Guidance: "Define the regulatory areas, entities and period under review.",
				Example:  "POPIA and FICA compliance for the lending division, 2023-2025.",
			},
			{
				Label:    "Controls",
				Guidance: "Assess the preventive, detective and corrective controls in place.",
				Example:  "Consent records exist but no retention schedule is enforced.",
			},
			{
				Label:    "Risk",
				Guidance: "Rate each compliance risk by likelihood and impact.",
				Example:  "Unlawful retention of client data: high likelihood, high impact given Information Regulator enforcement.",
			},
			{
				Label:    "Gaps",
				Guidance: "Tabulate each requirement against its current state, the gap and a risk level.",
				Example:  "s14 POPIA retention limits versus indefinite archive: gap rated high.",
			},
			{
				Label:    "Remediation",
				Guidance: "Set corrective actions with an owner and a timeline per finding.",
				Example:  "Implement a retention schedule; owner: compliance officer; 90 days.",
			},
		},
		Adaptations: []string{
			"Check Companies Act 71 of 2008 governance duties against King IV",
			"Cover FICA obligations for accountable institutions",
			"Address POPIA lawful-processing conditions per function",
		},
		BestFor:    []string{"Compliance reviews", "Board reporting", "Regulatory remediation"},
		Difficulty: "Advanced",
		Source:     "King IV / SA regulatory practice",
	},
}
