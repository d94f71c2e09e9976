package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"setup-build-env/internal/bootstrap"
	"setup-build-env/internal/config"
	"setup-build-env/internal/logger"
	"setup-build-env/internal/state"
)

// Persistent flag values. Each can also be set through a SETUP_BUILD_ENV_*
// environment variable; settings() resolves the effective values.
var (
	debug      bool
	configPath string
	reportPath string
	workDir    string
)

// newEnv builds the process environment for a run. Tests replace it.
var newEnv = bootstrap.OSEnv

// now is the clock used for run reports.
var now = time.Now

// rootCmd runs the whole setup pipeline when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "setup-build-env",
	Short: "Prepare a machine to build ConnectTool",
	Long: `setup-build-env checks the build prerequisites, initializes git submodules,
verifies the Steamworks SDK, installs the native libraries with the platform
package manager and prints the build steps.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,

	// PersistentPreRunE resolves flags and environment before any subcommand
	// and initializes the logger.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		current = s
		logger.Init(s.Debug)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, env, err := setup()
		if err != nil {
			return err
		}

		started := now()
		res := bootstrap.New(cfg, env).Run()

		if current.Report != "" {
			state.SaveReport(env.Fs, current.Report, state.NewReport(cfg.Project.Name, started, now(), res))
		}
		if res.Aborted() {
			return exitCode(res.ExitCode)
		}
		return nil
	},
}

// runSettings are the effective values of the persistent flags.
type runSettings struct {
	Debug  bool
	Config string
	Report string
	Dir    string
}

// current holds the settings of the command being executed.
var current runSettings

// loadSettings merges flags and SETUP_BUILD_ENV_* variables; flags win.
func loadSettings(cmd *cobra.Command) (runSettings, error) {
	v := viper.New()
	v.SetEnvPrefix("SETUP_BUILD_ENV")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range []string{"debug", "config", "report", "dir"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return runSettings{}, errors.Wrapf(err, "binding --%s", name)
		}
	}

	s := runSettings{
		Debug:  v.GetBool("debug"),
		Config: v.GetString("config"),
		Report: v.GetString("report"),
		Dir:    v.GetString("dir"),
	}
	if s.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return s, errors.Wrap(err, "determining working directory")
		}
		s.Dir = wd
	}
	return s, nil
}

// setup loads the configuration and builds the run environment.
func setup() (*config.Config, bootstrap.Env, error) {
	env := newEnv(current.Dir)
	cfg, err := config.Load(env.Fs, config.Resolve(env.Fs, current.Config, current.Dir))
	if err != nil {
		return nil, env, err
	}
	return cfg, env, nil
}

// Execute runs the CLI and exits with its status.
func Execute() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var code exitCode
	if errors.As(err, &code) {
		return int(code)
	}
	reportError(err)
	return 1
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML or TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&reportPath, "report", "", "Write a JSON report of the run to this file")
	rootCmd.PersistentFlags().StringVar(&workDir, "dir", "", "Project directory (default: current directory)")

	rootCmd.AddCommand(checkCmd, planCmd, instructionsCmd, sdkCmd, syncCmd)
}
