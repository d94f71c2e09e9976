package cmd

import (
	"github.com/spf13/cobra"

	"setup-build-env/internal/logger"
	"setup-build-env/internal/prereq"
	"setup-build-env/internal/sdk"
)

// checkCmd runs the read-only checks: platform, prerequisites and SDK.
// Nothing is installed and submodules are left alone.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check prerequisites and the Steamworks SDK without changing anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, env, err := setup()
		if err != nil {
			return err
		}

		p, err := env.DetectPlatform()
		if err != nil {
			return err
		}
		logger.Plain("Detected platform: %s\n", p)

		toolsOK := prereq.Checker{Runner: env.Runner}.CheckAll(cfg.Tools)
		sdk.Checker{Fs: env.Fs, Dir: env.Dir, SDK: cfg.SDK}.Check(p)

		if !toolsOK {
			return exitCode(1)
		}
		return nil
	},
}
