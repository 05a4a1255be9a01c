package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ninefold/block"
	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/engine"
	"github.com/katalvlaran/ninefold/internal/config"
	"github.com/katalvlaran/ninefold/internal/logging"
	"github.com/katalvlaran/ninefold/omega"
	"github.com/katalvlaran/ninefold/report"
	"github.com/katalvlaran/ninefold/store"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries state shared by every command after PersistentPreRunE.
type app struct {
	cfg    *config.Config
	format report.Format
	log    *slog.Logger

	configPath string
	cachePath  string
	logLevel   string
	logFormat  string
	output     string
}

// engineFlags are the engine overrides common to analyze, batch and calibrate.
type engineFlags struct {
	mode      string
	stride    int
	basis     string
	weak      float64
	strong    float64
	composite bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ninefold",
		Short: "Structural symmetry (Ω) of digit sequences",
		Long: "ninefold encodes digits as attribute states, pairs them on four tracks,\n" +
			"compares forward and reversed readings and reports the Ω score.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.Version = version

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to config file (YAML/JSON)")
	pf.StringVar(&a.cachePath, "cache", "", "SQLite report cache path (overrides config; empty = config value)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format (text, json)")
	pf.StringVarP(&a.output, "output", "o", "table", "Output format (table, markdown, json, yaml)")

	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newCalibrateCmd(a))
	root.AddCommand(newEncodeCmd(a))
	root.AddCommand(newCacheCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	var err error
	a.cfg = config.Default()
	if a.configPath != "" {
		if a.cfg, err = config.LoadFromPath(a.configPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Log.Format = a.logFormat
	}
	if a.cachePath != "" {
		a.cfg.Cache.Path = a.cachePath
	}
	level, err := logging.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return err
	}
	logging.Init(level, a.cfg.Log.Format, cmd.ErrOrStderr())
	a.log = logging.New(cmd.Name())

	a.format, err = report.ParseFormat(a.output)

	return err
}

// openStore opens the configured cache, or returns nil when none is set.
func (a *app) openStore() (*store.Store, error) {
	if a.cfg.Cache.Path == "" {
		return nil, nil
	}
	a.log.Debug("opening cache", "path", a.cfg.Cache.Path)

	return store.Open(a.cfg.Cache.Path)
}

func addEngineFlags(cmd *cobra.Command, ef *engineFlags) {
	f := cmd.Flags()
	f.StringVar(&ef.mode, "mode", "", "Block mode (fixed, sliding)")
	f.IntVar(&ef.stride, "stride", 0, "Block stride (0 = mode default)")
	f.StringVar(&ef.basis, "basis", "", "Ω basis (dimensions, tracks)")
	f.Float64Var(&ef.weak, "weak", 0, "Weak Ω threshold (requires --strong)")
	f.Float64Var(&ef.strong, "strong", 0, "Strong Ω threshold (requires --weak)")
	f.BoolVar(&ef.composite, "composite", false, "Add composite scores to reports")
	cmd.MarkFlagsRequiredTogether("weak", "strong")
}

// engine builds an engine from the config with flag overrides applied.
func (a *app) engine(cmd *cobra.Command, ef *engineFlags) (*engine.Engine, error) {
	ec := &a.cfg.Engine
	f := cmd.Flags()
	if f.Changed("mode") {
		ec.Mode = ef.mode
		if _, ok := block.ParseMode(ef.mode); ok && !f.Changed("stride") {
			ec.Stride = 0
		}
	}
	if f.Changed("stride") {
		ec.Stride = ef.stride
	}
	if f.Changed("basis") {
		ec.Basis = ef.basis
	}
	if f.Changed("weak") {
		ec.Thresholds = &omega.Thresholds{Weak: ef.weak, Strong: ef.strong}
	}
	if ef.composite {
		ec.Composite = true
	}
	opts, err := a.cfg.EngineOptions()
	if err != nil {
		return nil, err
	}
	e, err := engine.New(opts...)
	if err != nil {
		return nil, err
	}
	a.log.Debug("engine ready", "fingerprint", e.Fingerprint(), "mode", ec.Mode, "basis", ec.Basis)

	return e, nil
}

// readInput returns digits from literal, the file at path, or in.
func readInput(literal, path string, in io.Reader, opts digits.ParseOptions) (digits.Sequence, error) {
	switch {
	case literal != "":
		return digits.Parse(literal, opts)
	case path != "" && path != "-":
		return digits.ReadFile(path, opts)
	default:
		if in == nil {
			in = os.Stdin
		}
		return digits.ReadFrom(in, opts)
	}
}
