package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/setcover/internal/config"
	"github.com/katalvlaran/setcover/internal/logging"
)

var log = logrus.WithField("prefix", "main")

// cfg is loaded once by the root command before any subcommand runs.
var cfg = config.DefaultConfig()

var (
	configPath string
	logLevel   string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "setcover",
	Short: "Weighted minimum set cover solver",
	Long: `setcover picks a minimum-weight collection of candidate sets covering a universe.
Small instances are solved exactly by bitmask dynamic programming, large or
uncoverable ones by the greedy cost-effectiveness heuristic.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// setup loads the config file and applies global flags over it.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if noColor {
		color.NoColor = true
	}

	return logging.Setup(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
}

func init() {
	rootCmd.Version = Version

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to setcover.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Debug("Command failed")
		os.Exit(1)
	}
}
