package config

import "setup-build-env/internal/platform"

// Config is the full configuration of a bootstrap run: which tools are required,
// where the vendored SDK lives, and what each platform installs.
type Config struct {
	Project  Project           `yaml:"project" toml:"project"`
	Tools    []ToolRequirement `yaml:"tools" toml:"tools"`
	Git      Git               `yaml:"git" toml:"git"`
	SDK      SDK               `yaml:"sdk" toml:"sdk"`
	Packages Packages          `yaml:"packages" toml:"packages"`
}

// Project describes the C++ project being prepared.
// - Name: the binary produced by the build (e.g., ConnectTool).
// - BuildDir: out-of-source build directory used in the instructions.
type Project struct {
	Name     string `yaml:"name" toml:"name"`
	BuildDir string `yaml:"build_dir" toml:"build_dir"`
}

// ToolRequirement is a prerequisite executable probed before anything else runs.
// - Command/Args: the probe invocation (e.g., cmake --version).
// - Label: human name printed in the pass/fail line.
// - Hint: remediation printed when the probe fails.
type ToolRequirement struct {
	Name    string   `yaml:"name" toml:"name"`
	Command string   `yaml:"command" toml:"command"`
	Args    []string `yaml:"args" toml:"args"`
	Label   string   `yaml:"label" toml:"label"`
	Hint    string   `yaml:"hint" toml:"hint"`
}

// Git configures the version-control binary used for submodule sync.
type Git struct {
	Binary string `yaml:"binary" toml:"binary"`
}

// SDK describes the vendored Steamworks SDK.
// - Root: directory, relative to the project, the SDK is unpacked into.
// - AcquireURL: where users download the SDK from.
// - Manifest: per-platform library files that must exist under Root.
type SDK struct {
	Root       string                         `yaml:"root" toml:"root"`
	AcquireURL string                         `yaml:"acquire_url" toml:"acquire_url"`
	Manifest   map[platform.Platform][]string `yaml:"manifest" toml:"manifest"`
}

// Packages holds the per-platform dependency installation settings.
type Packages struct {
	Windows Vcpkg    `yaml:"windows" toml:"windows"`
	Linux   Linux    `yaml:"linux" toml:"linux"`
	MacOS   Homebrew `yaml:"macos" toml:"macos"`
}

// Vcpkg configures the Windows installer.
// - RootEnv: environment variable naming the vcpkg installation directory.
// - Executable: helper binary expected inside that directory.
type Vcpkg struct {
	RootEnv    string   `yaml:"root_env" toml:"root_env"`
	Executable string   `yaml:"executable" toml:"executable"`
	DocsURL    string   `yaml:"docs_url" toml:"docs_url"`
	Packages   []string `yaml:"packages" toml:"packages"`
}

// Linux configures the Linux installer.
// - Elevate/PrivilegeProbe: privilege escalation binary and the arguments that
//   check it can be used (sudo -v).
// - Managers: package managers in priority order; the first one on PATH wins.
// - Packages: default package list for managers without their own.
type Linux struct {
	Elevate        string           `yaml:"elevate" toml:"elevate"`
	PrivilegeProbe []string         `yaml:"privilege_probe" toml:"privilege_probe"`
	Packages       []string         `yaml:"packages" toml:"packages"`
	Managers       []PackageManager `yaml:"managers" toml:"managers"`
}

// PackageManager is one Linux package manager candidate.
type PackageManager struct {
	Name        string   `yaml:"name" toml:"name"`
	InstallArgs []string `yaml:"install_args" toml:"install_args"`
	Packages    []string `yaml:"packages" toml:"packages"`
}

// PackagesOr returns the manager's own package list, or fallback when it has none.
func (m PackageManager) PackagesOr(fallback []string) []string {
	if len(m.Packages) > 0 {
		return m.Packages
	}
	return fallback
}

// Homebrew configures the macOS installer.
type Homebrew struct {
	Binary      string   `yaml:"binary" toml:"binary"`
	Packages    []string `yaml:"packages" toml:"packages"`
	InstallHint string   `yaml:"install_hint" toml:"install_hint"`
}
