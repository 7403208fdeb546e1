package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lexflow/internal/framework"
)

func newFrameworksCommand(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "frameworks [acronym]",
		Short: "List prompt frameworks or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				f, err := app.Frameworks.Get(args[0])
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					return NewExitError(1)
				}
				app.Printer.PrintFramework(f)
				return nil
			}

			if category != "" {
				frameworks, err := app.Frameworks.ListByCategory(framework.Category(category))
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					return NewExitError(1)
				}
				app.Printer.PrintFrameworkList(frameworks)
				return nil
			}

			app.Printer.PrintFrameworkList(app.Frameworks.List())
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category (structural, iterative, reasoning, verification, specialized)")

	return cmd
}
