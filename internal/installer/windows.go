package installer

import (
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"setup-build-env/internal/platform"
)

// windowsInstaller installs through vcpkg, located via an environment variable.
type windowsInstaller struct {
	deps Deps
}

// Platform returns platform.Windows.
func (w *windowsInstaller) Platform() platform.Platform { return platform.Windows }

// Resolve reads the vcpkg root from the configured environment variable and
// checks that the root directory and the vcpkg executable exist. Nothing is run.
func (w *windowsInstaller) Resolve() (*Plan, error) {
	cfg := w.deps.Packages.Windows
	hint := fmt.Sprintf("install vcpkg and set the %s environment variable\nsee: %s", cfg.RootEnv, cfg.DocsURL)

	root := w.deps.getenv(cfg.RootEnv)
	if root == "" {
		return nil, errors.WithHint(errors.Newf("%s environment variable is not set", cfg.RootEnv), hint)
	}
	if ok, err := afero.DirExists(w.deps.Fs, root); err != nil || !ok {
		return nil, errors.WithHint(errors.Newf("%s points to %s, which is not a directory", cfg.RootEnv, root), hint)
	}

	exe := filepath.Join(root, cfg.Executable)
	if ok, err := afero.Exists(w.deps.Fs, exe); err != nil || !ok {
		return nil, errors.WithHint(errors.Newf("vcpkg executable not found at %s", exe), "bootstrap vcpkg first (bootstrap-vcpkg.bat)")
	}

	return &Plan{
		Platform:  platform.Windows,
		Discovery: []string{cfg.RootEnv + "=" + root, "found " + exe},
		Manager:   "vcpkg",
		Command:   []string{exe, "install"},
		Packages:  cfg.Packages,
	}, nil
}

// Install resolves the plan and runs vcpkg install for the configured packages.
func (w *windowsInstaller) Install() bool {
	return install(w, w.deps.Runner)
}
