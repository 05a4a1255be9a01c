package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/engine"
	"github.com/katalvlaran/ninefold/report"
)

type analyzeFlags struct {
	engineFlags
	digits string
	limit  int
	strict bool
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var fl analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Compute Ω for one digit sequence",
		Long: `Analyze reads digits from --digits, a file or stdin (separators such as
'.', ',' and whitespace are skipped), runs forward and backward track
analysis and prints the Ω report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			seq, err := readInput(fl.digits, path, cmd.InOrStdin(), digits.ParseOptions{Limit: fl.limit, Strict: fl.strict})
			if err != nil {
				return err
			}
			e, err := a.engine(cmd, &fl.engineFlags)
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}

			var rep *engine.Report
			if st != nil {
				defer st.Close()
				var hit bool
				rep, hit, err = st.Analyze(cmd.Context(), e, seq)
				a.log.Debug("cache lookup", "hit", hit)
			} else {
				rep, err = e.AnalyzeSequence(seq)
			}
			if err != nil {
				return err
			}
			if w := rep.Warning(); errors.Is(w, engine.ErrInsufficientLength) {
				a.log.Warn("sequence shorter than one block", "length", rep.Length)
			}
			a.log.Info("analysis done", "length", rep.Length, "omega", fmt.Sprintf("%.6f", rep.Omega), "level", rep.Level)

			return report.Write(cmd.OutOrStdout(), a.format, rep)
		},
	}
	addEngineFlags(cmd, &fl.engineFlags)
	f := cmd.Flags()
	f.StringVar(&fl.digits, "digits", "", "Digits to analyze instead of a file")
	f.IntVar(&fl.limit, "limit", 0, "Keep at most N digits (0 = all)")
	f.BoolVar(&fl.strict, "strict", false, "Reject characters other than digits and separators")

	return cmd
}
