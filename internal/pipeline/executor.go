// Package pipeline provides the workflow executor for lexflow.
//
// The [Executor] runs a workflow definition as a single linear pass: for
// each step it merges the caller's initial context with the outputs of
// earlier steps, renders the step's framework or template into concrete
// prompt text, assesses the text against the ethics guidelines, and
// appends the result to an execution trace. Declared step outputs feed
// later steps' context, which is why ordering across steps is a hard
// sequential dependency: there is no backtracking, no retry, and no
// parallel step execution.
//
// A run owns its working context exclusively and shares no mutable state
// with other runs; the injected registries are read-only, so one Executor
// serves any number of concurrent runs without synchronisation.
//
// Key concepts:
//   - Terminal states are Completed, Failed, and Blocked ([State])
//   - Blocked (PROHIBITED assessment) stops the run but is not an error;
//     the partial trace up to and including the blocking step is returned
//   - Failed runs return the partial trace alongside the error
package pipeline

import (
	"fmt"
	"strings"
	texttemplate "text/template"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexflow/internal/ethics"
	"lexflow/internal/framework"
	"lexflow/internal/template"
	"lexflow/internal/workflow"
)

// FrameworkSource resolves framework acronyms for rendering.
//
// The [framework.Registry] type implements this interface.
type FrameworkSource interface {
	Get(acronym string) (framework.Framework, error)
}

// TemplateSource resolves template names for rendering.
//
// The [template.Catalog] type implements this interface.
type TemplateSource interface {
	Get(name string) (template.Template, error)
}

// DefinitionSource resolves workflow names to definitions.
//
// The [workflow.Store] type implements this interface.
type DefinitionSource interface {
	Get(name string) (workflow.Definition, error)
}

// RiskAssessor evaluates rendered text for a practice area given the
// levels assessed earlier in the same run.
//
// Implementations must be deterministic. The [ethics.Assessor] type
// implements this interface.
type RiskAssessor interface {
	Assess(text string, area template.PracticeArea, prior []ethics.Level) ethics.Assessment
}

// ProgressCallback is invoked before each step begins execution, with the
// 1-based step index, total step count, and step ID. Optional; set via
// [Executor.SetProgressCallback].
type ProgressCallback func(stepIndex, totalSteps int, stepID string)

// Executor runs workflow definitions.
//
// Executor uses dependency injection for testability: the framework and
// template sources supply renderable definitions, the definition source
// supplies workflows, and the assessor gates each step. Use [NewExecutor]
// to create an instance and [Executor.Run] to execute a workflow.
type Executor struct {
	frameworks  FrameworkSource
	templates   TemplateSource
	definitions DefinitionSource
	assessor    RiskAssessor
	logger      *zap.Logger
	progress    ProgressCallback
}

// NewExecutor creates an [Executor] with the required dependencies.
//
// Logging defaults to a no-op logger; use [Executor.SetLogger] to enable
// structured run logging.
func NewExecutor(frameworks FrameworkSource, templates TemplateSource, definitions DefinitionSource, assessor RiskAssessor) *Executor {
	return &Executor{
		frameworks:  frameworks,
		templates:   templates,
		definitions: definitions,
		assessor:    assessor,
		logger:      zap.NewNop(),
	}
}

// SetLogger configures structured logging for runs. A nil logger restores
// the no-op default.
func (e *Executor) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	e.logger = l
}

// SetProgressCallback configures an optional per-step progress callback,
// typically used for terminal progress display.
func (e *Executor) SetProgressCallback(cb ProgressCallback) {
	e.progress = cb
}

// Run executes the named workflow with the given initial context.
//
// The returned trace is non-nil whenever the workflow definition was
// found, including Failed and Blocked outcomes, so partial work is always
// reported. Outcomes:
//
//   - Completed: every step ran, none blocked; err is nil.
//   - Blocked: a step assessed PROHIBITED; the trace ends with the
//     blocking entry and err is nil. Blocking is a reportable stop state,
//     not a bug; the caller revises inputs and starts a fresh run.
//   - Failed: a defect halted the run ([*MissingInputError] or
//     [*RenderError]); the trace holds every entry appended before the
//     defect.
//
// Run never mutates the caller's initial map, and two calls with an
// identical definition and identical initial context produce identical
// trace entries: rendering and assessment are pure functions of their
// inputs.
func (e *Executor) Run(name string, initial map[string]string) (*Trace, error) {
	def, err := e.definitions.Get(name)
	if err != nil {
		return nil, err
	}

	trace := &Trace{
		RunID:    uuid.NewString(),
		Workflow: def.Name,
		State:    StatePending,
	}

	logger := e.logger.With(
		zap.String("run_id", trace.RunID),
		zap.String("workflow", def.Name),
	)
	logger.Debug("run starting",
		zap.Int("steps", len(def.Steps)),
		zap.Int("initial_inputs", len(initial)),
	)

	// The working context: caller inputs overlaid by step outputs as
	// they are produced. Later outputs shadow earlier names, since later
	// context is fresher.
	ctx := cloneContext(initial)
	area := template.PracticeArea(def.PracticeArea)
	var prior []ethics.Level

	trace.State = StateRunning
	for i, step := range def.Steps {
		if e.progress != nil {
			e.progress(i+1, len(def.Steps), step.ID)
		}

		// Defensive re-check of the registration-time invariant: the
		// caller may have supplied an incomplete initial context.
		if missing := missingInputs(step, ctx); len(missing) > 0 {
			trace.State = StateFailed
			err := &MissingInputError{StepID: step.ID, Missing: missing}
			logger.Warn("run failed", zap.String("step", step.ID), zap.Strings("missing", missing))
			return trace, err
		}

		rendered, err := e.renderStep(step, ctx)
		if err != nil {
			trace.State = StateFailed
			logger.Warn("run failed", zap.String("step", step.ID), zap.Error(err))
			return trace, &RenderError{StepID: step.ID, Err: err}
		}

		assessment := e.assessor.Assess(rendered, area, prior)
		prior = append(prior, assessment.Level)

		trace.Entries = append(trace.Entries, Entry{
			StepID:     step.ID,
			Rendered:   rendered,
			Assessment: assessment,
			Snapshot:   cloneContext(ctx),
		})

		logger.Debug("step assessed",
			zap.String("step", step.ID),
			zap.String("risk", string(assessment.Level)),
		)

		if assessment.Level == ethics.LevelProhibited {
			trace.State = StateBlocked
			logger.Info("run blocked",
				zap.String("step", step.ID),
				zap.String("rationale", assessment.Rationale),
			)
			return trace, nil
		}

		outputs, err := bindOutputs(step, ctx, rendered)
		if err != nil {
			trace.State = StateFailed
			logger.Warn("run failed", zap.String("step", step.ID), zap.Error(err))
			return trace, &RenderError{StepID: step.ID, Err: err}
		}
		for name, value := range outputs {
			ctx[name] = value
		}
	}

	trace.State = StateCompleted
	logger.Debug("run completed", zap.Int("entries", len(trace.Entries)))
	return trace, nil
}

// missingInputs returns the step requirements absent from the merged
// context, in declaration order.
func missingInputs(step workflow.Step, ctx map[string]string) []string {
	var missing []string
	for _, req := range step.Requires {
		if _, ok := ctx[req]; !ok {
			missing = append(missing, req)
		}
	}
	return missing
}

// renderStep renders the step's referent with the inputs it declared.
//
// The switch on the reference kind is exhaustive over the closed
// [workflow.RefKind] set; an unknown kind can only come from an
// unvalidated definition and is reported as a defect.
func (e *Executor) renderStep(step workflow.Step, ctx map[string]string) (string, error) {
	inputs := make(map[string]string, len(step.Requires))
	for _, req := range step.Requires {
		inputs[req] = ctx[req]
	}

	switch step.Uses.Kind {
	case workflow.RefFramework:
		f, err := e.frameworks.Get(step.Uses.Name)
		if err != nil {
			return "", err
		}
		return f.Render(inputs), nil
	case workflow.RefTemplate:
		t, err := e.templates.Get(step.Uses.Name)
		if err != nil {
			return "", err
		}
		return t.Render(inputs)
	default:
		return "", fmt.Errorf("unknown step reference kind %q", step.Uses.Kind)
	}
}

// bindOutputs produces the step's declared outputs.
//
// Each declared name binds the full rendered text unless the step
// supplies an output expression for it, in which case the expression is
// evaluated over the merged context plus "rendered_text". A failing
// expression means a declared output could not be produced, which is a
// definition defect.
func bindOutputs(step workflow.Step, ctx map[string]string, rendered string) (map[string]string, error) {
	out := make(map[string]string, len(step.Outputs))
	for _, name := range step.Outputs {
		expr, ok := step.OutputExprs[name]
		if !ok || expr == "" {
			out[name] = rendered
			continue
		}

		tmpl, err := texttemplate.New(name).Option("missingkey=error").Parse(expr)
		if err != nil {
			return nil, fmt.Errorf("output %q: parse: %w", name, err)
		}

		data := cloneContext(ctx)
		data["rendered_text"] = rendered
		var b strings.Builder
		if err := tmpl.Execute(&b, data); err != nil {
			return nil, fmt.Errorf("output %q: %w", name, err)
		}
		out[name] = b.String()
	}
	return out, nil
}
