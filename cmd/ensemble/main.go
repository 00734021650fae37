package main

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/csdurfee/ensemble-learning/internal/config"
	"github.com/csdurfee/ensemble-learning/internal/experiment"
	"github.com/csdurfee/ensemble-learning/internal/utils/logger"
)

var (
	params experiment.Params
	debug  bool
	trace  bool
)

func main() {
	root, err := newRootCmd()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load environment configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	defaults := experiment.Params{
		NumBits:        cfg.NumBits,
		NumClassifiers: cfg.NumClassifiers,
		FlipRatio:      cfg.FlipRatio,
		CorrelatedFlip: cfg.CorrelatedFlip,
		Seed:           cfg.RandomSeed,
	}

	root := &cobra.Command{
		Use:   "ensemble",
		Short: "Simulate ensemble voting over synthetic binary classifiers",
		Long: "ensemble generates a synthetic boolean ground truth, derives noisy\n" +
			"classifiers from it, aggregates their predictions by hard or soft\n" +
			"voting, and reports accuracy metrics against the ground truth.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init()
			switch {
			case trace:
				logger.SetLevel("trace")
			case debug:
				logger.SetLevel("debug")
			}
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&params.NumBits, "num-bits", defaults.NumBits, "length of the ground-truth sequence")
	pf.IntVar(&params.NumClassifiers, "num-classifiers", defaults.NumClassifiers, "ensemble size")
	pf.Float64Var(&params.FlipRatio, "flip-ratio", defaults.FlipRatio, "independent-mode flip probability")
	pf.Float64Var(&params.CorrelatedFlip, "flip", defaults.CorrelatedFlip, "correlated-mode secondary flip probability")
	pf.Uint64Var(&params.Seed, "seed", defaults.Seed, "random seed")
	pf.BoolVar(&debug, "debug", false, "sets log level to debug")
	pf.BoolVar(&trace, "trace", false, "sets log level to trace")

	root.AddCommand(newRunCmd(), newSweepCmd(), newCompareCmd())
	return root, nil
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one experiment and print the classification report",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := experiment.New(experiment.WithParams(params)).Run()
			if err != nil {
				return err
			}
			printResult(res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&params.SoftVoting, "soft", false, "use soft (mean-then-round) voting")
	cmd.Flags().BoolVar(&params.CorrelatedErrors, "correlated", false, "derive classifier errors from one shared noisy base")
	return cmd
}

func newSweepCmd() *cobra.Command {
	var sizes []int
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Rerun across ensemble sizes and plot F1 by size",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := experiment.New(experiment.WithParams(params)).SweepSizes(sizes)
			if err != nil {
				return err
			}
			experiment.PlotResultsTerminal(results, "Ensemble F1 by size")
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{3, 9, 33, 99}, "ensemble sizes to sweep")
	cmd.Flags().BoolVar(&params.SoftVoting, "soft", false, "use soft (mean-then-round) voting")
	cmd.Flags().BoolVar(&params.CorrelatedErrors, "correlated", false, "derive classifier errors from one shared noisy base")
	return cmd
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Contrast independent against correlated classifier errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			independent, err := experiment.New(
				experiment.WithParams(params),
				experiment.WithCorrelatedErrors(false),
			).Run()
			if err != nil {
				return err
			}
			correlated, err := experiment.New(
				experiment.WithParams(params),
				experiment.WithCorrelatedErrors(true),
			).Run()
			if err != nil {
				return err
			}

			fmt.Println("--- Independent errors ---")
			printResult(independent)
			fmt.Println("--- Correlated errors ---")
			printResult(correlated)
			return nil
		},
	}
}

func printResult(res *experiment.Result) {
	fmt.Println(res.Report)

	pairwise := "n/a"
	if !math.IsNaN(res.PairwiseAgreement) {
		pairwise = fmt.Sprintf("%.4f", res.PairwiseAgreement)
	}
	fmt.Printf("f1: %.4f  kappa: %.4f  agreement: %.4f  pairwise agreement: %s\n",
		res.F1, res.Kappa, res.AgreementRate, pairwise)
}
