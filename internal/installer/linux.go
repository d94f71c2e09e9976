package installer

import (
	"strings"

	"github.com/cockroachdb/errors"

	"setup-build-env/internal/platform"
	"setup-build-env/internal/runner"
)

// linuxInstaller checks for sudo and installs with the first package manager
// found on PATH.
type linuxInstaller struct {
	deps Deps
}

// Platform returns platform.Linux.
func (l *linuxInstaller) Platform() platform.Platform { return platform.Linux }

// Resolve confirms elevated privileges when an elevate command is configured,
// then plans with the first configured package manager found on PATH.
func (l *linuxInstaller) Resolve() (*Plan, error) {
	cfg := l.deps.Packages.Linux
	var discovery []string

	// An empty elevate setting means the installer already runs with the
	// required privileges (e.g., as root in a container).
	if cfg.Elevate != "" {
		res := l.deps.Runner.Run(runner.Cmd(cfg.Elevate, cfg.PrivilegeProbe...))
		if !res.OK() {
			return nil, errors.WithHint(
				errors.Newf("%s privileges are required to install dependencies", cfg.Elevate),
				"run the script as a user allowed to use "+cfg.Elevate,
			)
		}
		discovery = append(discovery, cfg.Elevate+" privileges available")
	}

	names := make([]string, 0, len(cfg.Managers))
	for _, m := range cfg.Managers {
		names = append(names, m.Name)
		path, err := l.deps.Runner.LookPath(m.Name)
		if err != nil {
			continue
		}
		discovery = append(discovery, "package manager "+m.Name+" at "+path)

		var command []string
		if cfg.Elevate != "" {
			command = append(command, cfg.Elevate)
		}
		command = append(command, m.Name)
		command = append(command, m.InstallArgs...)

		return &Plan{
			Platform:  platform.Linux,
			Discovery: discovery,
			Manager:   m.Name,
			Command:   command,
			Packages:  m.PackagesOr(cfg.Packages),
		}, nil
	}

	return nil, errors.WithHint(
		errors.Newf("no supported package manager found (%s)", strings.Join(names, ", ")),
		"install the glfw and boost development packages manually",
	)
}

// Install resolves the plan and runs the chosen package manager, through the
// elevate command if one is configured.
func (l *linuxInstaller) Install() bool {
	return install(l, l.deps.Runner)
}
