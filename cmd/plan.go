package cmd

import (
	"github.com/spf13/cobra"

	"setup-build-env/internal/bootstrap"
	"setup-build-env/internal/installer"
	"setup-build-env/internal/logger"
	"setup-build-env/internal/platform"
)

var planPlatform string

// planCmd resolves the dependency installation without running it.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show how dependencies would be installed, without installing them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, env, err := setup()
		if err != nil {
			return err
		}

		p, err := targetPlatform(env, planPlatform)
		if err != nil {
			return err
		}

		in, err := installer.New(p, env.InstallerDeps(cfg.Packages))
		if err != nil {
			return err
		}
		plan, err := in.Resolve()
		if err != nil {
			installer.ReportError(err)
			return exitCode(1)
		}

		logger.Plain("Platform: %s\n", plan.Platform)
		for _, fact := range plan.Discovery {
			logger.Plain("  %s\n", fact)
		}
		logger.Plain("Package manager: %s\n", plan.Manager)
		logger.Info("Install command: %s\n", plan)
		return nil
	},
}

// targetPlatform returns the platform named by flag, or the detected one.
func targetPlatform(env bootstrap.Env, flag string) (platform.Platform, error) {
	if flag != "" {
		return platform.Parse(flag)
	}
	return env.DetectPlatform()
}

func init() {
	planCmd.Flags().StringVar(&planPlatform, "platform", "", "Platform to plan for: windows, linux or macos (default: detected)")
}
