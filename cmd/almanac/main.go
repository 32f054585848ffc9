// Package main is the entry point for the almanac CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/almanac/internal/config"
	"github.com/katalvlaran/almanac/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "almanac",
		Short:         "Lowest-location solver for seed almanacs",
		Long:          `almanac reads a seeds/maps almanac and reports the lowest location reachable from its seeds, both as single values and as (start, length) ranges.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(solveCmd())
	cmd.AddCommand(inspectCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// commonFlags are shared by every command that reads an almanac.
type commonFlags struct {
	envFile   string
	input     string
	logLevel  string
	logFormat string
	workers   int
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Almanac file (default: input.txt)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN, ERROR (default: INFO)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format: pretty, json (default: pretty)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Concurrent interval mappers per stage (default: 1)")
}

// load reads configuration and applies flag overrides; flags win over the
// environment, which wins over .env.
func (f *commonFlags) load(args []string) (config.Config, error) {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return config.Config{}, err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if f.input != "" {
		cfg.Input = f.input
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = config.LogFormat(f.logFormat)
	}
	if f.workers != 0 {
		cfg.Workers = f.workers
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) *slog.Logger {
	return log.FromConfig(os.Stderr, cfg)
}
