package cmd

import (
	"github.com/spf13/cobra"

	"setup-build-env/internal/instructions"
	"setup-build-env/internal/logger"
)

var instructionsPlatform string

// instructionsCmd prints the manual build steps.
var instructionsCmd = &cobra.Command{
	Use:   "instructions",
	Short: "Print the build steps for a platform",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, env, err := setup()
		if err != nil {
			return err
		}

		p, err := targetPlatform(env, instructionsPlatform)
		if err != nil {
			return err
		}

		text, err := instructions.Presenter{Project: cfg.Project}.Text(p)
		if err != nil {
			return err
		}
		logger.Plain("%s", text)
		return nil
	},
}

func init() {
	instructionsCmd.Flags().StringVar(&instructionsPlatform, "platform", "", "Platform to print steps for: windows, linux or macos (default: detected)")
}
