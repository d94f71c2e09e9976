package cmd

import (
	"github.com/spf13/cobra"

	"setup-build-env/internal/vcs"
)

// syncCmd only synchronizes git submodules (init followed by update).
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Initialize and update git submodules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, env, err := setup()
		if err != nil {
			return err
		}

		if !(vcs.Submodules{Runner: env.Runner, Git: cfg.Git.Binary}).Run() {
			return exitCode(1)
		}
		return nil
	},
}
