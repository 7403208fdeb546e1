package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lexflow/internal/pipeline"
)

func newRunCommand(app *App) *cobra.Command {
	var inputs []string

	cmd := &cobra.Command{
		Use:   "run <workflow>",
		Short: "Execute a workflow and print the prompt trace",
		Long: `Execute a workflow step by step. Each step renders its framework or
template, is screened against ethics guidelines, and feeds its outputs
to later steps. A prohibited-risk step stops the run.

Exit codes: 0 completed, 1 failed, 2 blocked.

Example:
  lexflow run demand_letter --input client_name="Dlamini Holdings" --input amount_owed="R150 000"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			initial, err := parseInputs(inputs)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return NewExitError(1)
			}

			def, err := app.Workflows.Get(name)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return NewExitError(1)
			}

			if app.Config.Verbose {
				app.Executor.SetProgressCallback(func(stepIndex, totalSteps int, stepID string) {
					fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] %s\n", stepIndex, totalSteps, stepID)
				})
			}

			trace, runErr := app.Executor.Run(name, initial)
			if trace != nil {
				app.Printer.PrintTrace(trace, app.Legislation.Citations(def.KeyLegislation))
			}
			if runErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", runErr)
				return NewExitError(1)
			}
			if trace.State == pipeline.StateBlocked {
				return NewExitError(2)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&inputs, "input", nil, "initial context value as name=value (repeatable)")

	return cmd
}

// parseInputs converts repeated name=value flags into the initial
// workflow context.
func parseInputs(pairs []string) (map[string]string, error) {
	inputs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --input %q: expected name=value", pair)
		}
		inputs[strings.TrimSpace(name)] = value
	}
	return inputs, nil
}
