// SPDX-License-Identifier: MIT
// Package: ninefold/calibrate
//
// calibrate.go — random trials and threshold suggestion.

package calibrate

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/engine"
	"github.com/katalvlaran/ninefold/internal/logging"
	"github.com/katalvlaran/ninefold/omega"
)

// Result summarises Ω over random sequences.
type Result struct {
	Trials    int              `json:"trials" yaml:"trials"`
	Length    int              `json:"length" yaml:"length"`
	Seed      int64            `json:"seed" yaml:"seed"`
	Mean      float64          `json:"random_mean" yaml:"random_mean"`
	Std       float64          `json:"random_std" yaml:"random_std"`
	Min       float64          `json:"min" yaml:"min"`
	Max       float64          `json:"max" yaml:"max"`
	P95       float64          `json:"random_95_percentile" yaml:"random_95_percentile"`
	Suggested omega.Thresholds `json:"suggested" yaml:"suggested"`
	Values    []float64        `json:"-" yaml:"-"`
}

// RandomSequence returns n uniform digits drawn from rng.
func RandomSequence(rng *rand.Rand, n int) digits.Sequence {
	s := make(digits.Sequence, n)
	for i := range s {
		s[i] = uint8(rng.Intn(digits.Base))
	}

	return s
}

// Run measures Ω of random sequences on e.
func Run(ctx context.Context, e *engine.Engine, opts ...Option) (Result, error) {
	if e == nil {
		return Result{}, ErrNilEngine
	}
	cfg := newConfig(opts...)
	log := cfg.logger
	if log == nil {
		log = logging.Discard()
	}
	log.Info("calibration started", "trials", cfg.trials, "length", cfg.length, "seed", cfg.seed, "parallel", cfg.parallel)

	values := make([]float64, cfg.trials)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallel)
	for i := 0; i < cfg.trials; i++ {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(cfg.seed + int64(i)))
			v, _, err := e.Omega(RandomSequence(rng, cfg.length))
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			values[i] = v
			log.Debug("trial done", "trial", i, "omega", v)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("calibrate.Run: %w", err)
	}

	res := Summarize(values)
	res.Length, res.Seed = cfg.length, cfg.seed
	log.Info("calibration finished", "mean", res.Mean, "p95", res.P95,
		"weak", res.Suggested.Weak, "strong", res.Suggested.Strong)

	return res, nil
}

// Summarize computes the statistics and suggested thresholds of values.
// p95 is the nearest-rank value sorted[⌈0.95·n⌉−1].
func Summarize(values []float64) Result {
	res := Result{Trials: len(values), Values: append([]float64(nil), values...)}
	if len(values) == 0 {
		return res
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	res.Mean = sum / float64(len(sorted))
	ss := 0.0
	for _, v := range sorted {
		ss += (v - res.Mean) * (v - res.Mean)
	}
	res.Std = math.Sqrt(ss / float64(len(sorted)))
	res.Min, res.Max = sorted[0], sorted[len(sorted)-1]

	rank := int(math.Ceil(0.95*float64(len(sorted)))) - 1
	res.P95 = sorted[max(rank, 0)]
	res.Suggested = omega.Thresholds{Weak: res.P95 * WeakFactor, Strong: res.P95 * StrongFactor}

	return res
}
