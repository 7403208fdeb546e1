package pipeline

import "lexflow/internal/ethics"

// State is the lifecycle state of a workflow run.
type State string

// Run states. A run moves from Pending through Running to one of the terminal
// states. Blocked is an expected, reportable outcome (the ethics gate
// stopped progress), distinct from Failed (a defect halted the run).
const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
	StateBlocked   State = "blocked"
)

// Terminal reports whether the state is one of the three terminal states.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateBlocked
}

// Entry is one step's record in an execution trace.
//
// Entries are immutable once appended: Snapshot is a copy of the merged
// context the step rendered from, taken before the step's outputs were
// bound.
type Entry struct {
	// StepID identifies the workflow step this entry records.
	StepID string

	// Rendered is the concrete prompt text the step produced.
	Rendered string

	// Assessment is the ethics risk assessment of Rendered.
	Assessment ethics.Assessment

	// Snapshot is the merged context (caller inputs overlaid by earlier
	// steps' outputs) the step was rendered from.
	Snapshot map[string]string
}

// Trace is the ordered record of a workflow run.
//
// The executor returns the trace to the caller in every outcome,
// including Failed and Blocked: work already done is never silently lost.
// Once returned, the trace is owned by the caller and must be treated as
// read-only. A Failed or Blocked run is never resumed; the caller starts
// a new run instead.
type Trace struct {
	// RunID uniquely identifies this run.
	RunID string

	// Workflow is the definition name the run executed.
	Workflow string

	// State is the terminal state the run reached.
	State State

	// Entries are the per-step records in execution order. A Blocked
	// trace includes the blocking step's entry; a Failed trace includes
	// every step that rendered before the defect.
	Entries []Entry
}

// RiskLevels returns the assessed level of each entry in step order.
func (t *Trace) RiskLevels() []ethics.Level {
	levels := make([]ethics.Level, len(t.Entries))
	for i, e := range t.Entries {
		levels[i] = e.Assessment.Level
	}
	return levels
}

// HighestRisk returns the highest severity assessed across the trace, or
// [ethics.LevelLow] for an empty trace.
func (t *Trace) HighestRisk() ethics.Level {
	return ethics.Max(t.RiskLevels()...)
}

// cloneContext copies a context map. Snapshots and the run's working
// context never alias caller-held maps.
func cloneContext(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
