// Package vcs wraps the git operations the bootstrapper performs.
package vcs

import (
	"setup-build-env/internal/logger"
	"setup-build-env/internal/runner"
)

// Submodules initializes and updates the repository's git submodules.
type Submodules struct {
	Runner runner.Runner
	// Git is the git executable, "git" when empty.
	Git string
}

func (s Submodules) git() string {
	if s.Git == "" {
		return "git"
	}
	return s.Git
}

// Steps returns the commands Run executes, in order.
func (s Submodules) Steps() []runner.Command {
	return []runner.Command{
		runner.Cmd(s.git(), "submodule", "init").Streamed(),
		runner.Cmd(s.git(), "submodule", "update").Streamed(),
	}
}

// Run executes "submodule init" then "submodule update". It stops at the first
// failing command; nothing already done is undone.
func (s Submodules) Run() bool {
	logger.Plain("Initializing submodules...\n")

	for _, step := range s.Steps() {
		res := s.Runner.Run(step)
		if !res.OK() {
			if res.Err != nil {
				logger.Error("✗ %s failed: %v\n", step, res.Err)
			} else {
				logger.Error("✗ %s failed with status %d\n", step, res.ExitCode)
			}
			logger.Error("✗ Submodule initialization failed\n")
			return false
		}
	}

	logger.Info("✓ Submodules initialized\n")
	return true
}
