package installer

import (
	"github.com/cockroachdb/errors"

	"setup-build-env/internal/platform"
)

// macosInstaller installs through Homebrew.
type macosInstaller struct {
	deps Deps
}

// Platform returns platform.MacOS.
func (m *macosInstaller) Platform() platform.Platform { return platform.MacOS }

// Resolve locates the brew binary on PATH.
func (m *macosInstaller) Resolve() (*Plan, error) {
	cfg := m.deps.Packages.MacOS

	path, err := m.deps.Runner.LookPath(cfg.Binary)
	if err != nil {
		hint := "install Homebrew first"
		if cfg.InstallHint != "" {
			hint += ":\n  " + cfg.InstallHint
		}
		return nil, errors.WithHint(errors.Newf("Homebrew (%s) not found", cfg.Binary), hint)
	}

	return &Plan{
		Platform:  platform.MacOS,
		Discovery: []string{"Homebrew at " + path},
		Manager:   "brew",
		Command:   []string{cfg.Binary, "install"},
		Packages:  cfg.Packages,
	}, nil
}

// Install resolves the plan and runs brew install for the configured packages.
func (m *macosInstaller) Install() bool {
	return install(m, m.deps.Runner)
}
