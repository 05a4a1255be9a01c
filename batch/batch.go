// SPDX-License-Identifier: MIT
// Package: ninefold/batch
//
// batch.go — bounded parallel analysis and Ω ranking.

package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/engine"
	"github.com/katalvlaran/ninefold/internal/logging"
	"github.com/katalvlaran/ninefold/omega"
)

// Input is one named sequence.
type Input struct {
	Name string
	Seq  digits.Sequence
}

// Item is the outcome for one input.
type Item struct {
	Name   string         `json:"name" yaml:"name"`
	Length int            `json:"length" yaml:"length"`
	Report *engine.Report `json:"report,omitempty" yaml:"report,omitempty"`
	Cached bool           `json:"cached" yaml:"cached"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// Rank is one row of the comparative summary.
type Rank struct {
	Name     string      `json:"name" yaml:"name"`
	Omega    float64     `json:"omega" yaml:"omega"`
	Level    omega.Level `json:"level" yaml:"level"`
	Symmetry float64     `json:"overall_symmetry" yaml:"overall_symmetry"`
}

// Result holds every item in input order plus the Ω ranking.
type Result struct {
	Items   []Item `json:"items" yaml:"items"`
	Ranking []Rank `json:"ranking" yaml:"ranking"`
	Failed  int    `json:"failed" yaml:"failed"`
	Hits    int    `json:"cache_hits" yaml:"cache_hits"`
}

// Run analyzes inputs on e.
func Run(ctx context.Context, e *engine.Engine, inputs []Input, opts ...Option) (Result, error) {
	if e == nil {
		return Result{}, ErrNilEngine
	}
	if len(inputs) == 0 {
		return Result{}, ErrNoInputs
	}
	cfg := newConfig(opts...)
	log := cfg.logger
	if log == nil {
		log = logging.Discard()
	}
	log.Info("batch started", "inputs", len(inputs), "parallel", cfg.parallel, "cache", cfg.store != nil)

	items := make([]Item, len(inputs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallel)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			items[i] = analyzeOne(gCtx, e, cfg, in)
			if items[i].Error != "" {
				log.Warn("input failed", "name", in.Name, "error", items[i].Error)
			} else {
				log.Debug("input done", "name", in.Name, "omega", items[i].Report.Omega, "cached", items[i].Cached)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("batch.Run: %w", err)
	}

	res := Result{Items: items}
	for _, it := range items {
		switch {
		case it.Error != "":
			res.Failed++
		case it.Cached:
			res.Hits++
		}
	}
	res.Ranking = Ranking(items)
	log.Info("batch finished", "items", len(items), "failed", res.Failed, "cache_hits", res.Hits)

	return res, nil
}

func analyzeOne(ctx context.Context, e *engine.Engine, cfg config, in Input) Item {
	it := Item{Name: in.Name, Length: len(in.Seq)}
	var err error
	if cfg.store != nil {
		it.Report, it.Cached, err = cfg.store.Analyze(ctx, e, in.Seq)
	} else {
		it.Report, err = e.AnalyzeSequence(in.Seq)
	}
	if err != nil {
		it.Report, it.Cached = nil, false
		it.Error = err.Error()
	}

	return it
}

// Ranking orders successful items by Ω descending; ties keep input order.
func Ranking(items []Item) []Rank {
	out := make([]Rank, 0, len(items))
	for _, it := range items {
		if it.Report == nil {
			continue
		}
		out = append(out, Rank{
			Name:     it.Name,
			Omega:    it.Report.Omega,
			Level:    it.Report.Level,
			Symmetry: it.Report.Symmetry.Mean,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Omega > out[j].Omega })

	return out
}

// ReadFiles loads each path as an Input named after its base name without
// extension.
func ReadFiles(paths []string, opts digits.ParseOptions) ([]Input, error) {
	inputs := make([]Input, 0, len(paths))
	for _, p := range paths {
		seq, err := digits.ReadFile(p, opts)
		if err != nil {
			return nil, fmt.Errorf("batch.ReadFiles: %w", err)
		}
		base := filepath.Base(p)
		inputs = append(inputs, Input{Name: strings.TrimSuffix(base, filepath.Ext(base)), Seq: seq})
	}

	return inputs, nil
}
