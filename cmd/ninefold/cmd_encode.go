package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ninefold/dna"
	"github.com/katalvlaran/ninefold/engine"
	"github.com/katalvlaran/ninefold/report"
)

// encodeResult is the single structured document of encode --analyze.
type encodeResult struct {
	Encoding dna.Encoding   `json:"encoding" yaml:"encoding"`
	Report   *engine.Report `json:"report" yaml:"report"`
}

type encodeFlags struct {
	engineFlags
	scheme  string
	analyze bool
}

func newEncodeCmd(a *app) *cobra.Command {
	var fl encodeFlags
	cmd := &cobra.Command{
		Use:   "encode <dna>...",
		Short: "Encode a DNA sequence as digits",
		Long: `Encode maps base pairs to digits (AA 0, AC/CA 1, ... TT 9) with a
direction mark for non-canonical order. With --analyze the encoded digits
are analyzed as well.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme := dna.Scheme(strings.ToLower(fl.scheme))
			if scheme != dna.Pair && scheme != dna.Simple {
				return fmt.Errorf("encode: unknown scheme %q", fl.scheme)
			}
			enc, err := dna.Encode(strings.Join(args, ""), scheme)
			if err != nil {
				return err
			}
			if enc.Truncated {
				a.log.Warn("odd number of bases, last base dropped")
			}
			out := cmd.OutOrStdout()
			if !fl.analyze {
				return report.WriteEncoding(out, a.format, enc)
			}
			e, err := a.engine(cmd, &fl.engineFlags)
			if err != nil {
				return err
			}
			rep, err := e.AnalyzeSequence(enc.Digits)
			if err != nil {
				return err
			}
			if a.format == report.JSON || a.format == report.YAML {
				return report.Encode(out, a.format, encodeResult{Encoding: enc, Report: rep})
			}
			if err := report.WriteEncoding(out, a.format, enc); err != nil {
				return err
			}
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}

			return report.Write(out, a.format, rep)
		},
	}
	addEngineFlags(cmd, &fl.engineFlags)
	f := cmd.Flags()
	f.StringVar(&fl.scheme, "scheme", string(dna.Pair), "Encoding scheme (pair, simple)")
	f.BoolVar(&fl.analyze, "analyze", false, "Analyze the encoded digits")

	return cmd
}
