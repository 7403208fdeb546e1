package pipeline

import (
	"fmt"
	"strings"
)

// MissingInputError reports a step whose required inputs were absent from
// the merged context at run time.
//
// For a validated workflow definition this indicates the caller supplied
// an incomplete initial context; the missing names are surfaced so the
// user can supply them and start a fresh run. The run is never retried
// automatically: the same inputs would fail the same way.
type MissingInputError struct {
	StepID  string
	Missing []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("step %q: missing required inputs: %s", e.StepID, strings.Join(e.Missing, ", "))
}

// RenderError reports a template substitution or output binding defect in
// a step.
//
// This is a definition-authoring bug (an unresolved placeholder, a
// malformed output expression, or a reference to an unregistered
// framework or template), surfaced with the step ID for diagnosis and
// never silently skipped.
type RenderError struct {
	StepID string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("step %q: render failed: %v", e.StepID, e.Err)
}

// Unwrap returns the underlying cause, enabling errors.Is checks against
// registry sentinels.
func (e *RenderError) Unwrap() error {
	return e.Err
}
