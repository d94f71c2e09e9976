// Package prereq verifies that the external tools the build needs are installed.
package prereq

import (
	"fmt"

	"setup-build-env/internal/config"
	"setup-build-env/internal/logger"
	"setup-build-env/internal/runner"
)

// Probe runs command with args and reports whether it started and exited 0.
// A missing executable and a failing one are both false.
func Probe(r runner.Runner, command string, args ...string) bool {
	return check(r, command, args...).OK()
}

// check runs one version command and returns its full result.
func check(r runner.Runner, command string, args ...string) runner.Result {
	return r.Run(runner.Cmd(command, args...))
}

// Diagnose describes why a probe result is a failure, for display only.
func Diagnose(res runner.Result) string {
	switch {
	case res.OK():
		return "ok"
	case res.NotFound():
		return "not found on PATH"
	case res.Err != nil:
		return "could not be started"
	default:
		return fmt.Sprintf("exited with status %d", res.ExitCode)
	}
}

// Checker probes a list of tool requirements.
type Checker struct {
	Runner runner.Runner
}

// CheckAll probes every requirement once, in order, printing a pass/fail line
// for each. It never stops early so the report is complete, and returns true
// only if every probe succeeded.
func (c Checker) CheckAll(reqs []config.ToolRequirement) bool {
	logger.Plain("Checking prerequisites...\n")

	allOK := true
	for _, req := range reqs {
		label := req.Label
		if label == "" {
			label = req.Command
		}

		res := check(c.Runner, req.Command, req.Args...)
		if res.OK() {
			logger.Info("✓ %s found\n", label)
			continue
		}

		allOK = false
		if req.Hint != "" {
			logger.Error("✗ %s %s, %s\n", label, Diagnose(res), req.Hint)
		} else {
			logger.Error("✗ %s %s\n", label, Diagnose(res))
		}
	}
	return allOK
}
