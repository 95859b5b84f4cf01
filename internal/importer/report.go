// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk record of one import run. The operator can keep it
// next to the BibTeX source as an audit trail of what was imported when.
type Report struct {
	// Source describes where records came from (file path, author name, or
	// author ID).
	Source string `yaml:"source"`

	DryRun    bool      `yaml:"dry_run"`
	Timestamp time.Time `yaml:"timestamp"`

	Summary Summary         `yaml:"summary"`
	Records []RecordOutcome `yaml:"records"`
}

// WriteReport saves a run report to a YAML file.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// ReadReport loads a previously written run report.
func ReadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, err
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return r, nil
}
