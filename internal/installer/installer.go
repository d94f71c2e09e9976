// Package installer installs the native development libraries the build needs,
// using the package manager of each supported platform.
package installer

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"setup-build-env/internal/config"
	"setup-build-env/internal/logger"
	"setup-build-env/internal/platform"
	"setup-build-env/internal/runner"
)

// Installer is the per-platform dependency installer.
type Installer interface {
	// Platform returns the platform this installer targets.
	Platform() platform.Platform
	// Resolve performs discovery (environment, privileges, package manager)
	// and returns the plan Install would execute. It has no side effects
	// beyond probing.
	Resolve() (*Plan, error)
	// Install resolves the plan and runs its single bulk install command.
	Install() bool
}

// Deps are the collaborators shared by every installer variant.
type Deps struct {
	Runner runner.Runner
	Fs     afero.Fs
	// Getenv reads environment variables; defaults to an empty environment.
	Getenv   func(string) string
	Packages config.Packages
}

func (d Deps) getenv(key string) string {
	if d.Getenv == nil {
		return ""
	}
	return d.Getenv(key)
}

// New returns the installer for p.
func New(p platform.Platform, d Deps) (Installer, error) {
	switch p {
	case platform.Windows:
		return &windowsInstaller{deps: d}, nil
	case platform.Linux:
		return &linuxInstaller{deps: d}, nil
	case platform.MacOS:
		return &macosInstaller{deps: d}, nil
	default:
		return nil, errors.Wrapf(platform.ErrUnsupported, "no installer for %q", p)
	}
}

// Plan is the resolved installation for one platform: what was discovered and
// the one command that installs every package.
type Plan struct {
	Platform platform.Platform
	// Discovery lists the facts found while resolving, in order.
	Discovery []string
	// Manager names the package manager used (vcpkg, apt, brew, ...).
	Manager string
	// Command is the install invocation without the package list.
	Command  []string
	Packages []string
}

// Invocation returns the full install command, streamed to the console.
func (p *Plan) Invocation() runner.Command {
	argv := make([]string, 0, len(p.Command)+len(p.Packages))
	argv = append(argv, p.Command...)
	argv = append(argv, p.Packages...)
	return runner.Cmd(argv[0], argv[1:]...).Streamed()
}

// String renders the install command line.
func (p *Plan) String() string {
	return p.Invocation().String()
}

// install is the flow shared by every variant: resolve, then one blocking call
// whose exit status is the only failure signal.
func install(in Installer, r runner.Runner) bool {
	title := in.Platform().Title()
	logger.Plain("Configuring %s build environment...\n", title)

	plan, err := in.Resolve()
	if err != nil {
		ReportError(err)
		return false
	}
	for _, fact := range plan.Discovery {
		logger.Debug("[DEBUG] %s\n", fact)
	}

	logger.Plain("Installing dependencies (%s) with %s...\n", strings.Join(plan.Packages, ", "), plan.Manager)
	res := r.Run(plan.Invocation())
	if !res.OK() {
		if res.Err != nil {
			logger.Error("✗ %s dependency installation failed: %v\n", title, res.Err)
		} else {
			logger.Error("✗ %s dependency installation failed (status %d)\n", title, res.ExitCode)
		}
		return false
	}

	logger.Info("✓ %s dependencies installed\n", title)
	return true
}

// ReportError prints a resolution error and its hints as a warning.
func ReportError(err error) {
	logger.Warn("⚠ %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		for _, line := range strings.Split(hint, "\n") {
			logger.Warn("  %s\n", line)
		}
	}
}
