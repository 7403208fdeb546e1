// Package cli wires the lexflow commands together.
//
// The [App] struct is a dependency container: commands receive it and
// pull out the registries, executor and printer they need. Tests build
// an App with mocks and in-memory buffers instead of the real wiring.
package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"lexflow/internal/config"
	"lexflow/internal/ethics"
	"lexflow/internal/framework"
	"lexflow/internal/output"
	"lexflow/internal/pipeline"
	"lexflow/internal/refdata"
	"lexflow/internal/template"
	"lexflow/internal/workflow"
)

// App holds the dependencies shared by all commands.
type App struct {
	Config      config.Config
	Frameworks  *framework.Registry
	Templates   *template.Catalog
	Workflows   *workflow.Store
	Assessor    *ethics.Assessor
	Executor    *pipeline.Executor
	Courts      *refdata.CourtRegistry
	Legislation *refdata.ActRegistry
	Printer     *output.Printer
	Logger      *zap.Logger
}

// NewApp builds a fully wired [App] from configuration.
//
// Built-in frameworks, templates and workflows are always loaded.
// Additional workflow definitions come from the configured directories,
// and custom ethics guidelines extend (or replace) the defaults.
func NewApp(cfg config.Config) (*App, error) {
	logger := zap.NewNop()
	if cfg.Verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("initialising logger: %w", err)
		}
	}

	frameworks := framework.DefaultRegistry()
	templates := template.DefaultCatalog()
	courts := refdata.DefaultCourts()
	legislation := refdata.DefaultLegislation()

	assessor, err := ethics.NewAssessor(cfg.Guidelines())
	if err != nil {
		return nil, fmt.Errorf("loading ethics guidelines: %w", err)
	}

	defs := workflow.DefaultDefinitions()
	for _, dir := range cfg.Workflows.Paths {
		loaded, err := workflow.LoadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("loading workflows from %s: %w", dir, err)
		}
		defs = append(defs, loaded...)
	}
	store, err := workflow.NewStore(defs...)
	if err != nil {
		return nil, fmt.Errorf("registering workflows: %w", err)
	}

	executor := pipeline.NewExecutor(frameworks, templates, store, assessor)
	executor.SetLogger(logger)

	return &App{
		Config:      cfg,
		Frameworks:  frameworks,
		Templates:   templates,
		Workflows:   store,
		Assessor:    assessor,
		Executor:    executor,
		Courts:      courts,
		Legislation: legislation,
		Printer:     output.NewPrinterWithConfig(os.Stdout, cfg.Output),
		Logger:      logger,
	}, nil
}
