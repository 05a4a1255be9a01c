package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ninefold/calibrate"
	"github.com/katalvlaran/ninefold/report"
)

type calibrateFlags struct {
	engineFlags
	trials   int
	length   int
	seed     int64
	parallel int
}

func newCalibrateCmd(a *app) *cobra.Command {
	var fl calibrateFlags
	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Derive Ω thresholds from random sequences",
		Long: `Calibrate computes Ω for seeded uniform random sequences and suggests
thresholds weak = p95 × 1.1 and strong = p95 × 1.65. The shipped defaults
were calibrated with --mode=sliding.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.engine(cmd, &fl.engineFlags)
			if err != nil {
				return err
			}
			cc := a.cfg.Calibrate
			f := cmd.Flags()
			if f.Changed("trials") {
				cc.Trials = fl.trials
			}
			if f.Changed("length") {
				cc.Length = fl.length
			}
			if f.Changed("seed") {
				cc.Seed = fl.seed
			}
			if f.Changed("parallel") {
				cc.Parallel = fl.parallel
			}
			res, err := calibrate.Run(cmd.Context(), e,
				calibrate.WithTrials(max(cc.Trials, 1)),
				calibrate.WithLength(max(cc.Length, 1)),
				calibrate.WithSeed(cc.Seed),
				calibrate.WithParallel(max(cc.Parallel, 1)),
				calibrate.WithLogger(a.log),
			)
			if err != nil {
				return err
			}

			return report.WriteCalibration(cmd.OutOrStdout(), a.format, res)
		},
	}
	addEngineFlags(cmd, &fl.engineFlags)
	f := cmd.Flags()
	f.IntVar(&fl.trials, "trials", calibrate.DefaultTrials, "Number of random sequences")
	f.IntVar(&fl.length, "length", calibrate.DefaultLength, "Digits per sequence")
	f.Int64Var(&fl.seed, "seed", calibrate.DefaultSeed, "Base random seed")
	f.IntVar(&fl.parallel, "parallel", calibrate.DefaultParallel, "Concurrent trials")

	return cmd
}
