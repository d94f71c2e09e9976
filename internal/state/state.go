// Package state writes the JSON report of a bootstrap run.
package state

import (
	"encoding/json" // For encoding the report file
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"setup-build-env/internal/bootstrap"
	"setup-build-env/internal/logger"
)

// Report is the persisted record of one run. The detected platform is
// intentionally absent: it is recomputed on every run and never stored.
type Report struct {
	Project    string                 `json:"project"`
	StartedAt  time.Time              `json:"started_at"`
	FinishedAt time.Time              `json:"finished_at"`
	State      bootstrap.State        `json:"state"`
	Steps      []bootstrap.StepResult `json:"steps"`
	SDKReady   bool                   `json:"sdk_ready"`
	Installed  bool                   `json:"installed"`
	ExitCode   int                    `json:"exit_code"`
}

// NewReport builds the report for a finished run.
func NewReport(project string, started, finished time.Time, res *bootstrap.Result) *Report {
	return &Report{
		Project:    project,
		StartedAt:  started.UTC(),
		FinishedAt: finished.UTC(),
		State:      res.State,
		Steps:      res.Steps,
		SDKReady:   res.SDKReady,
		Installed:  res.Installed,
		ExitCode:   res.ExitCode,
	}
}

// SaveReport writes r to path as indented JSON.
// Errors are logged but not propagated; a report never changes the exit code.
func SaveReport(fs afero.Fs, path string, r *Report) bool {
	file, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal run report: %v\n", err)
		return false
	}

	logger.Debug("[DEBUG] Writing run report to %s:\n%s\n", path, string(file))

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			logger.Error("[ERROR] Failed to create report directory %s: %v\n", dir, err)
			return false
		}
	}
	if err := afero.WriteFile(fs, path, append(file, '\n'), 0o644); err != nil {
		logger.Error("[ERROR] Failed to write run report %s: %v\n", path, err)
		return false
	}
	return true
}
