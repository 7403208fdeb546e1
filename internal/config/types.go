// Package config provides configuration loading and management for lexflow.
//
// Configuration is loaded using Viper, supporting YAML config files and
// environment variable overrides. The defaults work out of the box; a
// config file can add workflow definition directories, extend or replace
// the ethics guideline table, and tune terminal output.
//
// Key types:
//   - [Config] is the root configuration container
//   - [Loader] handles Viper-based configuration loading
//
// Configuration priority (highest to lowest):
//  1. Environment variables (LEXFLOW_ prefix)
//  2. Config file specified by LEXFLOW_CONFIG_PATH
//  3. User config directory (platform-standard):
//     - Linux: ~/.config/lexflow/lexflow.yaml
//     - macOS: ~/Library/Application Support/lexflow/lexflow.yaml
//  4. ./lexflow.yaml
//  5. [DefaultConfig] defaults
package config

// Config represents the root configuration structure.
//
// This is the main configuration container loaded by [Loader]. Use
// [DefaultConfig] for sensible defaults.
type Config struct {
	// Workflows configures workflow definition loading.
	Workflows WorkflowsConfig `mapstructure:"workflows"`

	// Ethics configures the risk assessor's guideline table.
	Ethics EthicsConfig `mapstructure:"ethics"`

	// Output contains terminal output formatting configuration.
	Output OutputConfig `mapstructure:"output"`

	// Verbose enables debug-level structured logging of workflow runs.
	Verbose bool `mapstructure:"verbose"`
}

// WorkflowsConfig configures where user-authored workflow definitions
// are loaded from.
type WorkflowsConfig struct {
	// Paths lists directories scanned for .yaml workflow definition
	// files at startup. Loaded definitions are registered alongside the
	// built-in set and validated the same way.
	Paths []string `mapstructure:"paths"`
}

// EthicsConfig configures the risk assessor.
type EthicsConfig struct {
	// Guidelines are additional trigger-phrase guidelines appended to
	// the built-in table (or replacing it when ReplaceDefaults is set).
	// Each entry maps onto an ethics.Guideline.
	Guidelines []GuidelineConfig `mapstructure:"guidelines"`

	// ReplaceDefaults drops the built-in guideline table and uses only
	// the configured guidelines. Leave false to extend the defaults.
	ReplaceDefaults bool `mapstructure:"replace_defaults"`
}

// GuidelineConfig is the config-file shape of an ethics guideline.
type GuidelineConfig struct {
	ID            string   `mapstructure:"id"`
	Title         string   `mapstructure:"title"`
	Category      string   `mapstructure:"category"`
	Level         string   `mapstructure:"level"`
	Rationale     string   `mapstructure:"rationale"`
	Triggers      []string `mapstructure:"triggers"`
	PracticeAreas []string `mapstructure:"practice_areas"`
	LPCReference  string   `mapstructure:"lpc_reference"`
}

// OutputConfig contains terminal output formatting configuration.
type OutputConfig struct {
	// ShowSnapshots includes each trace entry's context snapshot in run
	// output. Off by default; snapshots repeat prompt text and are
	// mostly useful when debugging a workflow definition.
	ShowSnapshots bool `mapstructure:"show_snapshots"`

	// TruncateLength is the maximum length of header lines before
	// truncation with a "..." suffix. Default: 72.
	TruncateLength int `mapstructure:"truncate_length"`

	// Markdown contains markdown rendering configuration.
	Markdown MarkdownConfig `mapstructure:"markdown"`
}

// MarkdownConfig contains configuration for markdown rendering of prompt
// text in terminal output.
type MarkdownConfig struct {
	// Enabled controls whether rendered prompts are formatted with
	// glamour. Default: true.
	Enabled bool `mapstructure:"enabled"`

	// Style is the glamour theme: "dark", "light", "dracula",
	// "tokyo-night". Avoid "auto" as it can cause detection delays on
	// some terminals. Default: "dark".
	Style string `mapstructure:"style"`

	// WordWrap is the column width for text wrapping. Default: 100.
	WordWrap int `mapstructure:"word_wrap"`
}

// DefaultConfig returns a new [Config] with sensible defaults.
//
// The defaults load no extra workflow files, keep the built-in guideline
// table, and render prompts as dark-themed markdown.
func DefaultConfig() *Config {
	return &Config{
		Workflows: WorkflowsConfig{},
		Ethics:    EthicsConfig{},
		Output: OutputConfig{
			TruncateLength: 72,
			Markdown: MarkdownConfig{
				Enabled:  true,
				Style:    "dark",
				WordWrap: 100,
			},
		},
	}
}
