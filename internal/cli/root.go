package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lexflow/internal/config"
)

// NewRootCommand creates the lexflow root command with all
// subcommands attached.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lexflow",
		Short: "Prompt engineering workflows for South African legal practice",
		Long: `lexflow assembles structured AI prompts for South African legal work.

It combines prompt frameworks, practice-area templates and multi-step
workflows, and screens every generated prompt against professional
conduct guidelines before it reaches a model.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRunCommand(app))
	rootCmd.AddCommand(newWorkflowsCommand(app))
	rootCmd.AddCommand(newFrameworksCommand(app))
	rootCmd.AddCommand(newTemplatesCommand(app))
	rootCmd.AddCommand(newAssessCommand(app))
	rootCmd.AddCommand(newCourtsCommand(app))
	rootCmd.AddCommand(newLegislationCommand(app))

	return rootCmd
}

// Execute loads configuration, wires the [App] and runs the root
// command, returning the process exit code.
func Execute() int {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	app, err := NewApp(*cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	rootCmd := NewRootCommand(app)
	if err := rootCmd.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
