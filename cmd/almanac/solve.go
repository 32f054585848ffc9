package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/almanac"
	"github.com/katalvlaran/almanac/internal/config"
	"github.com/katalvlaran/almanac/parser"
	"github.com/katalvlaran/almanac/pipeline"
)

func solveCmd() *cobra.Command {
	var (
		flags  commonFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Print the lowest location for seeds and for seed ranges",
		Long: `Print the lowest location for seeds and for seed ranges.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  ALMANAC_INPUT        Almanac file (default: input.txt)
  ALMANAC_LOG_LEVEL    Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  ALMANAC_LOG_FORMAT   Log format: pretty, json (default: pretty)
  ALMANAC_OUTPUT       Result format: text, json, yaml (default: text)
  ALMANAC_WORKERS      Concurrent interval mappers per stage (default: 1)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(args)
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Output = config.OutputFormat(output)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return runSolve(cmd, cfg, newLogger(cfg))
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Result format: text, json, yaml (default: text)")

	return cmd
}

func runSolve(cmd *cobra.Command, cfg config.Config, logger *slog.Logger) error {
	a, err := parser.ParseFile(cfg.Input)
	if err != nil {
		return err
	}
	logger.Debug("almanac parsed", "input", cfg.Input, "seeds", len(a.Seeds), "maps", len(a.Maps))

	res, err := almanac.SolveAlmanac(a,
		pipeline.WithContext(cmd.Context()),
		pipeline.WithWorkers(cfg.Workers),
		pipeline.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Info("solved", "scalar", res.Scalar, "bulk", res.Bulk)

	return writeResult(cmd.OutOrStdout(), cfg.Output, res)
}

func writeResult(w io.Writer, format config.OutputFormat, res almanac.Result) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(res)
	default:
		_, err := fmt.Fprintf(w, "Lowest location (seeds):       %d\nLowest location (seed ranges): %d\n", res.Scalar, res.Bulk)
		return err
	}
}
