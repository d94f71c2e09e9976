package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"setup-build-env/internal/logger"
	"setup-build-env/internal/sdk"
)

// forceUnpack replaces an existing SDK root.
var forceUnpack bool

// sdkCmd groups the Steamworks SDK helpers.
var sdkCmd = &cobra.Command{
	Use:   "sdk",
	Short: "Manage the vendored Steamworks SDK",
}

// sdkUnpackCmd places a downloaded SDK archive into the SDK root.
var sdkUnpackCmd = &cobra.Command{
	Use:   "unpack <archive-or-url>",
	Short: "Unpack a Steamworks SDK archive (.zip, .7z, .tar.*) into the SDK directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, env, err := setup()
		if err != nil {
			return err
		}

		src := args[0]
		if sdk.IsURL(src) {
			logger.Plain("Downloading %s...\n", src)
			path, err := sdk.Download(env.Fs, nil, src)
			if err != nil {
				return err
			}
			defer func() {
				if err := env.Fs.RemoveAll(filepath.Dir(path)); err != nil {
					logger.Debug("[DEBUG] Failed to remove download directory: %v\n", err)
				}
			}()
			src = path
		}

		u := sdk.Unpacker{
			Fs:    env.Fs,
			Root:  sdk.ResolveRoot(env.Dir, cfg.SDK.Root),
			Force: forceUnpack,
		}
		if _, err := u.Unpack(src); err != nil {
			return err
		}

		// Report what the current platform still lacks, if anything.
		if p, err := env.DetectPlatform(); err == nil {
			sdk.Checker{Fs: env.Fs, Dir: env.Dir, SDK: cfg.SDK}.Check(p)
		}
		return nil
	},
}

func init() {
	sdkUnpackCmd.Flags().BoolVar(&forceUnpack, "force", false, "Replace an existing SDK directory")
	sdkCmd.AddCommand(sdkUnpackCmd)
}
