package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ninefold/batch"
	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/report"
)

type batchFlags struct {
	engineFlags
	parallel int
	limit    int
}

func newBatchCmd(a *app) *cobra.Command {
	var fl batchFlags
	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Analyze several files and rank them by Ω",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := batch.ReadFiles(args, digits.ParseOptions{Limit: fl.limit})
			if err != nil {
				return err
			}
			e, err := a.engine(cmd, &fl.engineFlags)
			if err != nil {
				return err
			}
			parallel := a.cfg.Batch.Parallel
			if cmd.Flags().Changed("parallel") {
				parallel = fl.parallel
			}
			opts := []batch.Option{batch.WithParallel(max(parallel, 1)), batch.WithLogger(a.log)}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			if st != nil {
				defer st.Close()
				opts = append(opts, batch.WithStore(st))
			}
			res, err := batch.Run(cmd.Context(), e, inputs, opts...)
			if err != nil {
				return err
			}

			return report.WriteBatch(cmd.OutOrStdout(), a.format, res)
		},
	}
	addEngineFlags(cmd, &fl.engineFlags)
	f := cmd.Flags()
	f.IntVar(&fl.parallel, "parallel", batch.DefaultParallel, "Concurrent analyses (overrides config)")
	f.IntVar(&fl.limit, "limit", 0, "Keep at most N digits per file (0 = all)")

	return cmd
}
