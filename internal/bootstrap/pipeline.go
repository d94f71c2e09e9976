// Package bootstrap runs the build environment setup as a fixed, linear
// pipeline of hard-gated and soft-gated steps.
package bootstrap

import (
	"strings"

	"setup-build-env/internal/config"
	"setup-build-env/internal/installer"
	"setup-build-env/internal/logger"
	"setup-build-env/internal/platform"
)

// Step names as recorded in a Result.
const (
	StepDetect       = "detect-platform"
	StepPrereqs      = "prerequisites"
	StepSubmodules   = "submodules"
	StepSDK          = "sdk"
	StepInstall      = "install"
	StepInstructions = "instructions"
)

// PrereqChecker verifies required tools. It must probe every tool.
type PrereqChecker interface {
	CheckAll(reqs []config.ToolRequirement) bool
}

// SubmoduleInitializer synchronizes git submodules.
type SubmoduleInitializer interface {
	Run() bool
}

// SDKChecker verifies the vendored SDK for a platform.
type SDKChecker interface {
	Check(p platform.Platform) bool
}

// Presenter prints the build steps for a platform.
type Presenter interface {
	Present(p platform.Platform)
}

// InstallerFactory selects the installer variant for a platform.
type InstallerFactory func(p platform.Platform) (installer.Installer, error)

// Pipeline wires the collaborators of one run. Every field is required.
type Pipeline struct {
	// Project is the display name used in the banner.
	Project string
	// Detect resolves the host platform. It is called exactly once per run.
	Detect func() (platform.Platform, error)
	// Tools are the prerequisites handed to Prereqs.
	Tools []config.ToolRequirement
	// Prereqs gates the run on Tools. A failure aborts.
	Prereqs PrereqChecker
	// Submodules initializes the project's git submodules. A failure aborts.
	Submodules SubmoduleInitializer
	// SDK checks the vendored Steamworks SDK. A failure is only recorded.
	SDK SDKChecker
	// Installers picks the dependency installer for the detected platform.
	Installers InstallerFactory
	// Presenter prints the closing build instructions.
	Presenter Presenter
}

// StepResult records how one step ended.
type StepResult struct {
	Name    string  `json:"name"`
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message,omitempty"`
}

// Result summarizes a run.
type Result struct {
	// State is the last state reached.
	State    State
	Platform platform.Platform
	Steps    []StepResult
	// SDKReady is false when the SDK soft gate failed.
	SDKReady bool
	// Installed selects the closing banner.
	Installed bool
	ExitCode  int
}

// Aborted reports whether a hard gate stopped the run.
func (r *Result) Aborted() bool {
	return r.ExitCode != 0
}

func (r *Result) record(name string, o Outcome, msg string) {
	r.Steps = append(r.Steps, StepResult{Name: name, Outcome: o, Message: msg})
}

var rule = strings.Repeat("=", 40)

// Run executes the pipeline. Detection, prerequisite and submodule failures
// abort with exit code 1 before any instructions are shown. SDK and install
// failures are recorded and the run still ends with the build instructions and
// exit code 0.
func (pl *Pipeline) Run() *Result {
	res := &Result{State: Start}

	logger.Plain("%s build environment setup\n", pl.Project)
	logger.Plain("%s\n", rule)

	p, err := pl.Detect()
	if err != nil {
		logger.Error("✗ %v\n", err)
		res.record(StepDetect, HardFailure, err.Error())
		res.ExitCode = 1
		return res
	}
	res.Platform = p
	res.State = PlatformDetected
	res.record(StepDetect, Success, "")
	logger.Plain("Detected platform: %s\n", p)

	if !pl.Prereqs.CheckAll(pl.Tools) {
		logger.Error("\nInstall the missing prerequisites and run this tool again.\n")
		res.record(StepPrereqs, HardFailure, "missing prerequisites")
		res.ExitCode = 1
		return res
	}
	res.State = PrereqsChecked
	res.record(StepPrereqs, Success, "")

	if !pl.Submodules.Run() {
		logger.Error("\nSubmodule initialization failed.\n")
		res.record(StepSubmodules, HardFailure, "submodule initialization failed")
		res.ExitCode = 1
		return res
	}
	res.State = SubmodulesReady
	res.record(StepSubmodules, Success, "")

	res.SDKReady = pl.SDK.Check(p)
	if res.SDKReady {
		res.record(StepSDK, Success, "")
	} else {
		logger.Warn("\nMake sure the Steamworks SDK is configured before building.\n")
		res.record(StepSDK, SoftFailure, "steamworks SDK incomplete")
	}
	res.State = SdkChecked

	res.Installed = pl.install(p, res)
	res.State = PlatformInstalled

	logger.Plain("\n%s\n", rule)
	if res.Installed {
		logger.Info("✓ Build environment configured!\n")
		logger.Plain("\nNext build steps:\n")
		pl.Presenter.Present(p)
	} else {
		logger.Warn("⚠ Problems occurred while configuring the build environment\n")
		logger.Plain("\nManual build steps:\n")
		pl.Presenter.Present(p)
		logger.Plain("\nConfigure the environment manually following the steps above.\n")
	}
	res.record(StepInstructions, Success, "")
	res.State = InstructionsShown

	res.State = End
	return res
}

func (pl *Pipeline) install(p platform.Platform, res *Result) bool {
	in, err := pl.Installers(p)
	if err != nil {
		logger.Error("✗ %v\n", err)
		res.record(StepInstall, SoftFailure, err.Error())
		return false
	}
	if !in.Install() {
		res.record(StepInstall, SoftFailure, p.Title()+" dependency installation failed")
		return false
	}
	res.record(StepInstall, Success, "")
	return true
}
