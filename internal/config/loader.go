package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"lexflow/internal/ethics"
	"lexflow/internal/template"
)

// EnvPrefix is the prefix for environment variable overrides
// (e.g. LEXFLOW_VERBOSE, LEXFLOW_OUTPUT_MARKDOWN_ENABLED).
const EnvPrefix = "LEXFLOW"

// ConfigPathEnv names the environment variable that pins an explicit
// config file path, bypassing discovery.
const ConfigPathEnv = "LEXFLOW_CONFIG_PATH"

// Loader handles Viper-based configuration loading.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a [Loader] with defaults and environment binding
// registered.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("workflows.paths", defaults.Workflows.Paths)
	v.SetDefault("ethics.replace_defaults", defaults.Ethics.ReplaceDefaults)
	v.SetDefault("output.show_snapshots", defaults.Output.ShowSnapshots)
	v.SetDefault("output.truncate_length", defaults.Output.TruncateLength)
	v.SetDefault("output.markdown.enabled", defaults.Output.Markdown.Enabled)
	v.SetDefault("output.markdown.style", defaults.Output.Markdown.Style)
	v.SetDefault("output.markdown.word_wrap", defaults.Output.Markdown.WordWrap)

	return &Loader{v: v}
}

// Load reads configuration from the discovered config file (if any) and
// returns the merged [Config].
//
// A missing config file is not an error: the defaults and environment
// overrides apply. A present but unparseable file is an error.
func (l *Loader) Load() (*Config, error) {
	if path := l.resolvePath(); path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &cfg, nil
}

// resolvePath discovers the config file location, or returns "" when no
// file exists at any candidate path.
func (l *Loader) resolvePath() string {
	if envPath := os.Getenv(ConfigPathEnv); envPath != "" {
		return envPath
	}

	var candidates []string
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "lexflow", "lexflow.yaml"))
	}
	candidates = append(candidates, "lexflow.yaml")

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Guidelines materialises the configured ethics guideline table.
//
// The built-in table comes first unless ReplaceDefaults is set; the
// result is suitable for ethics.NewAssessor, which performs the
// validation (levels, trigger presence, unique IDs).
func (c *Config) Guidelines() []ethics.Guideline {
	var out []ethics.Guideline
	if !c.Ethics.ReplaceDefaults {
		out = ethics.DefaultGuidelines()
	}

	for _, gc := range c.Ethics.Guidelines {
		areas := make([]template.PracticeArea, 0, len(gc.PracticeAreas))
		for _, a := range gc.PracticeAreas {
			areas = append(areas, template.PracticeArea(a))
		}
		out = append(out, ethics.Guideline{
			ID:            gc.ID,
			Title:         gc.Title,
			Category:      ethics.Category(gc.Category),
			Level:         ethics.Level(gc.Level),
			Rationale:     gc.Rationale,
			Triggers:      gc.Triggers,
			PracticeAreas: areas,
			LPCReference:  gc.LPCReference,
		})
	}
	return out
}
