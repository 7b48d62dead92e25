package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/primarray/foundation/core/errors"
	"github.com/msto63/primarray/internal/bench"
)

var (
	runKinds  string
	runSize   int
	runRounds int
	runSeed   uint64
	runOps    string
	runOutput string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs the primitive versus boxed benchmark",
	Long: `Runs reverse, sort and shuffle on every selected element kind, once on
the primitive array and once on a boxed copy, and reports min and mean
durations per side. Boolean arrays have no ordering, so their sort is
reported as skipped.

Flags override the configuration file.`,
	Example: `  primbench run --kinds int,double --size 1000000 --rounds 10
  primbench run --ops reverse --output json`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runKinds, "kinds", "", "comma-separated element kinds, or all")
	runCmd.Flags().IntVar(&runSize, "size", 0, "elements per array")
	runCmd.Flags().IntVar(&runRounds, "rounds", 0, "timed rounds per operation")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "seed for data and shuffles")
	runCmd.Flags().StringVar(&runOps, "ops", "", "comma-separated operations: reverse, sort, shuffle, or all")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "report format: table or json")
}

func runBench(cmd *cobra.Command, args []string) error {
	opts, err := bench.FromConfig(appConfig)
	if err != nil {
		return err
	}
	if err := applyRunFlags(cmd, &opts); err != nil {
		return err
	}

	output := strings.ToLower(firstNonEmpty(runOutput, appConfig.GetString("bench.output")))
	if output != "table" && output != "json" {
		return errors.InvalidInput(errors.ModuleBench, "run", "output", output, "expected table or json")
	}

	runner, err := bench.NewRunner(opts, logger)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if output == "json" {
		return report.WriteJSON(cmd.OutOrStdout())
	}
	return report.WriteTable(cmd.OutOrStdout(), true)
}

func applyRunFlags(cmd *cobra.Command, opts *bench.Options) error {
	flags := cmd.Flags()
	if flags.Changed("kinds") {
		kinds, err := bench.ParseKinds(strings.Split(runKinds, ","))
		if err != nil {
			return err
		}
		opts.Kinds = kinds
	}
	if flags.Changed("ops") {
		ops, err := bench.ParseOperations(strings.Split(runOps, ","))
		if err != nil {
			return err
		}
		opts.Operations = ops
	}
	if flags.Changed("size") {
		opts.Size = runSize
	}
	if flags.Changed("rounds") {
		opts.Rounds = runRounds
	}
	if flags.Changed("seed") {
		opts.Seed = runSeed
	}
	return opts.Validate()
}
