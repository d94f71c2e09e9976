package bootstrap

import (
	"os"

	"github.com/spf13/afero"

	"setup-build-env/internal/config"
	"setup-build-env/internal/installer"
	"setup-build-env/internal/instructions"
	"setup-build-env/internal/platform"
	"setup-build-env/internal/prereq"
	"setup-build-env/internal/runner"
	"setup-build-env/internal/sdk"
	"setup-build-env/internal/vcs"
)

// Env is the process-wide state a run depends on, made explicit.
type Env struct {
	Runner runner.Runner
	Fs     afero.Fs
	// Dir is the project directory. Relative SDK roots resolve against it.
	Dir    string
	Getenv func(string) string
	// Detect overrides host platform detection.
	Detect func() (platform.Platform, error)
}

// OSEnv returns the Env of the running process rooted at dir.
func OSEnv(dir string) Env {
	return Env{
		Runner: runner.ExecRunner{Dir: dir},
		Fs:     afero.NewOsFs(),
		Dir:    dir,
		Getenv: os.Getenv,
		Detect: platform.Current,
	}
}

// New builds the standard pipeline for cfg.
func New(cfg *config.Config, env Env) *Pipeline {
	deps := env.InstallerDeps(cfg.Packages)

	return &Pipeline{
		Project:    cfg.Project.Name,
		Detect:     env.DetectPlatform,
		Tools:      cfg.Tools,
		Prereqs:    prereq.Checker{Runner: env.Runner},
		Submodules: vcs.Submodules{Runner: env.Runner, Git: cfg.Git.Binary},
		SDK:        sdk.Checker{Fs: env.Fs, Dir: env.Dir, SDK: cfg.SDK},
		Installers: func(p platform.Platform) (installer.Installer, error) {
			return installer.New(p, deps)
		},
		Presenter: instructions.Presenter{Project: cfg.Project},
	}
}

// InstallerDeps returns the installer collaborators for this environment.
func (e Env) InstallerDeps(pk config.Packages) installer.Deps {
	return installer.Deps{
		Runner:   e.Runner,
		Fs:       e.Fs,
		Getenv:   e.Getenv,
		Packages: pk,
	}
}

// DetectPlatform runs the environment's platform detection.
func (e Env) DetectPlatform() (platform.Platform, error) {
	if e.Detect == nil {
		return platform.Current()
	}
	return e.Detect()
}
