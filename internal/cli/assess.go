package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lexflow/internal/ethics"
	"lexflow/internal/template"
)

func newAssessCommand(app *App) *cobra.Command {
	var area string

	cmd := &cobra.Command{
		Use:   "assess <text>",
		Short: "Assess the ethics risk of a prompt",
		Long: `Screen a prompt against the professional conduct guidelines and print
the resulting risk level, rationale and matched guideline IDs.

Exit codes: 0 for low to high risk, 2 for prohibited.

Example:
  lexflow assess "Predict the outcome of this appeal" --area civil`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pa := template.PracticeArea(area)
			if !pa.Valid() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown practice area %q\n", area)
				return NewExitError(1)
			}

			assessment := app.Assessor.Assess(args[0], pa, nil)
			app.Printer.PrintAssessment(assessment)
			if assessment.Level == ethics.LevelProhibited {
				return NewExitError(2)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&area, "area", string(template.AreaGeneral), "practice area for area-scoped guidelines")

	return cmd
}
