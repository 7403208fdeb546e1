package cli

import (
	"github.com/spf13/cobra"
)

func newCourtsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "courts",
		Short: "List South African specialist courts and tribunals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Printer.PrintCourts(app.Courts.List())
			return nil
		},
	}
}

func newLegislationCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "legislation",
		Short: "List key South African legislation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Printer.PrintLegislation(app.Legislation.List())
			return nil
		},
	}
}
