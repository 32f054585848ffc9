package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/parser"
	"github.com/katalvlaran/almanac/pipeline"
)

func inspectCmd() *cobra.Command {
	var (
		flags    commonFlags
		coverage bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [input]",
		Short: "List the parsed maps and their rules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(args)
			if err != nil {
				return err
			}
			return runInspect(cmd, cfg.Input, cfg.Workers, coverage)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&coverage, "coverage", false, "Also print the merged final ranges of the seed ranges")

	return cmd
}

func runInspect(cmd *cobra.Command, input string, workers int, coverage bool) error {
	a, err := parser.ParseFile(input)
	if err != nil {
		return err
	}
	p, err := a.Pipeline(pipeline.WithContext(cmd.Context()), pipeline.WithWorkers(workers))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seeds: %v\n", a.Seeds)
	for _, m := range p.Stages() {
		fmt.Fprintln(out, m)
		for _, r := range m.Rules {
			fmt.Fprintf(out, "  %v\n", r)
		}
	}
	if !coverage {
		return nil
	}

	ranges, err := a.SeedRanges()
	if err != nil {
		return err
	}
	seeds, err := pipeline.SeedIntervals(ranges)
	if err != nil {
		return err
	}
	final, err := p.ApplyIntervals(seeds)
	if err != nil {
		return err
	}
	cov := interval.NewCoverage(final...)
	fmt.Fprintf(out, "final: %d pieces, %d merged ranges, %d values\n", len(final), len(cov.Ranges()), cov.Count())
	for _, r := range cov.Ranges() {
		fmt.Fprintf(out, "  %v\n", r)
	}
	return nil
}
