package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lexflow/internal/template"
)

func newTemplatesCommand(app *App) *cobra.Command {
	var area string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List prompt templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if area != "" {
				templates, err := app.Templates.ListByArea(template.PracticeArea(area))
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					return NewExitError(1)
				}
				app.Printer.PrintTemplateList(templates)
				return nil
			}

			app.Printer.PrintTemplateList(app.Templates.List())
			return nil
		},
	}

	cmd.Flags().StringVar(&area, "area", "", "filter by practice area (e.g. labour, civil, commercial)")

	return cmd
}
