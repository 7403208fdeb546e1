package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWorkflowsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflows [name]",
		Short: "List workflows or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				app.Printer.PrintWorkflowList(app.Workflows.List())
				return nil
			}

			def, err := app.Workflows.Get(args[0])
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return NewExitError(1)
			}
			app.Printer.PrintWorkflow(def, app.Legislation.Citations(def.KeyLegislation))
			return nil
		},
	}

	return cmd
}
