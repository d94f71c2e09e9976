package config

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"setup-build-env/internal/platform"
)

// ErrInvalidConfig is the mark carried by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks that every platform has an SDK manifest and an installable
// package set, and that the tools and git sections are usable.
func (c *Config) Validate() error {
	var problems []string

	if c.Git.Binary == "" {
		problems = append(problems, "git.binary is empty")
	}
	if c.SDK.Root == "" {
		problems = append(problems, "sdk.root is empty")
	}
	for _, p := range platform.All() {
		if len(c.SDK.Manifest[p]) == 0 {
			problems = append(problems, "sdk.manifest."+p.String()+" has no entries")
		}
	}
	for i, t := range c.Tools {
		if t.Command == "" {
			problems = append(problems, fmt.Sprintf("tools[%d] has no command", i))
		}
	}

	if c.Packages.Windows.RootEnv == "" || c.Packages.Windows.Executable == "" {
		problems = append(problems, "packages.windows needs root_env and executable")
	}
	if len(c.Packages.Windows.Packages) == 0 {
		problems = append(problems, "packages.windows.packages is empty")
	}
	if len(c.Packages.Linux.Managers) == 0 {
		problems = append(problems, "packages.linux.managers is empty")
	}
	for _, m := range c.Packages.Linux.Managers {
		if m.Name == "" {
			problems = append(problems, "packages.linux.managers has an entry without a name")
		} else if len(m.PackagesOr(c.Packages.Linux.Packages)) == 0 {
			problems = append(problems, "packages.linux: no packages for "+m.Name)
		}
	}
	if c.Packages.MacOS.Binary == "" || len(c.Packages.MacOS.Packages) == 0 {
		problems = append(problems, "packages.macos needs binary and packages")
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.Mark(
		errors.Newf("invalid configuration: %s", strings.Join(problems, "; ")),
		ErrInvalidConfig,
	)
}
