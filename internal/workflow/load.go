package workflow

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and validates a single workflow definition from a YAML
// file.
//
// Expected format:
//
//	name: demand_letter
//	description: Draft and structure a letter of demand.
//	category: litigation
//	practice_area: civil
//	inputs: [client_name, amount_owed]
//	steps:
//	  - id: draft
//	    uses: {kind: template, name: letter_of_demand}
//	    requires: [client_name, amount_owed]
//	    outputs: [draft_text]
//	  - id: structure
//	    uses: {kind: framework, name: RICE}
//	    requires: [draft_text]
//	    outputs: [final_prompt]
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read workflow file: %w", err)
	}

	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("failed to parse workflow file %s: %w", path, err)
	}

	if err := d.Validate(); err != nil {
		return Definition{}, fmt.Errorf("workflow file %s: %w", path, err)
	}
	return d, nil
}

// LoadDir loads every .yaml/.yml workflow definition in a directory,
// sorted by file name for a stable registration order. Subdirectories are
// not descended into.
func LoadDir(dir string) ([]Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	defs := make([]Definition, 0, len(paths))
	for _, p := range paths {
		d, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}
