// SPDX-License-Identifier: MIT
// Package: ninefold/stats
//
// Purpose:
//   - Descriptive statistics used by the composite scores.
//
// Exposed API:
//   - Describe(seq)    -> Summary  // everything below in one pass set
//   - Distribution(seq) -> [10]float64
//   - Entropy(seq)     -> float64   // bits, max log2(10)
//   - Moments(seq)     -> mean, variance, std, skewness, kurtosis
//   - Lag1(seq)        -> float64   // Pearson r of neighbours
//   - Runs(seq)        -> RunsTest
//   - PercentilesOf(seq) -> Percentiles
//
// Determinism:
//   - Fixed traversal order; no randomness.

package stats

import (
	"math"

	"github.com/katalvlaran/ninefold/digits"
)

// MaxEntropy is log2(10), the entropy of a uniform digit distribution.
var MaxEntropy = math.Log2(digits.Base)

// Summary bundles every statistic of a sequence.
type Summary struct {
	Count        int                  `json:"total_digits" yaml:"total_digits"`
	Distribution [digits.Base]float64 `json:"digit_distribution" yaml:"digit_distribution"`
	Entropy      float64              `json:"entropy" yaml:"entropy"`
	Mean         float64              `json:"mean" yaml:"mean"`
	Std          float64              `json:"std" yaml:"std"`
	Variance     float64              `json:"variance" yaml:"variance"`
	Skewness     float64              `json:"skewness" yaml:"skewness"`
	Kurtosis     float64              `json:"kurtosis" yaml:"kurtosis"`
	Correlation  float64              `json:"correlation" yaml:"correlation"`
	Runs         RunsTest             `json:"runs_analysis" yaml:"runs_analysis"`
	Percentiles  Percentiles          `json:"percentiles" yaml:"percentiles"`
}

// RunsTest is the result of the runs test over digit changes.
type RunsTest struct {
	Runs     int     `json:"runs" yaml:"runs"`
	Expected float64 `json:"expected_runs" yaml:"expected_runs"`
	Std      float64 `json:"std_runs" yaml:"std_runs"`
	Z        float64 `json:"z_score" yaml:"z_score"`
}

// Percentiles holds sorted[⌊n·q⌋] for q in {0.1, 0.25, 0.5, 0.75, 0.9}.
type Percentiles struct {
	P10 float64 `json:"p10" yaml:"p10"`
	P25 float64 `json:"p25" yaml:"p25"`
	P50 float64 `json:"p50" yaml:"p50"`
	P75 float64 `json:"p75" yaml:"p75"`
	P90 float64 `json:"p90" yaml:"p90"`
}

// Describe computes the full Summary.
func Describe(seq digits.Sequence) Summary {
	s := Summary{
		Count:        len(seq),
		Distribution: Distribution(seq),
		Entropy:      Entropy(seq),
		Correlation:  Lag1(seq),
		Runs:         Runs(seq),
		Percentiles:  PercentilesOf(seq),
	}
	s.Mean, s.Variance, s.Std, s.Skewness, s.Kurtosis = Moments(seq)

	return s
}

// Distribution returns the relative frequency of each digit.
func Distribution(seq digits.Sequence) [digits.Base]float64 {
	var p [digits.Base]float64
	if len(seq) == 0 {
		return p
	}
	c := seq.Counts()
	n := float64(len(seq))
	for d := range c {
		p[d] = float64(c[d]) / n
	}

	return p
}

// Entropy returns the Shannon entropy of the digit distribution in bits.
func Entropy(seq digits.Sequence) float64 {
	h := 0.0
	for _, p := range Distribution(seq) {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}

	return h
}

// Moments returns mean, population variance, standard deviation, skewness
// and excess kurtosis.
func Moments(seq digits.Sequence) (mean, variance, std, skew, kurt float64) {
	n := float64(len(seq))
	if n == 0 {
		return
	}
	for _, v := range seq {
		mean += float64(v)
	}
	mean /= n

	var m2, m3, m4 float64
	for _, v := range seq {
		d := float64(v) - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	variance = m2 / n
	std = math.Sqrt(variance)
	if std == 0 {
		return mean, variance, std, 0, 0
	}
	if len(seq) >= 3 {
		skew = (m3 / n) / (std * std * std)
	}
	if len(seq) >= 4 {
		kurt = (m4/n)/(variance*variance) - 3
	}

	return mean, variance, std, skew, kurt
}

// Lag1 returns the Pearson correlation between each digit and its
// successor. Constant halves and sequences shorter than 3 yield 0.
func Lag1(seq digits.Sequence) float64 {
	if len(seq) < 3 {
		return 0
	}
	x, y := seq[:len(seq)-1], seq[1:]
	n := float64(len(x))

	var mx, my float64
	for i := range x {
		mx += float64(x[i])
		my += float64(y[i])
	}
	mx /= n
	my /= n

	var sxy, sxx, syy float64
	for i := range x {
		dx, dy := float64(x[i])-mx, float64(y[i])-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0
	}

	return sxy / math.Sqrt(sxx*syy)
}

// Runs performs the multi-symbol runs test. A run is a maximal stretch of
// equal digits.
func Runs(seq digits.Sequence) RunsTest {
	n := len(seq)
	if n < 2 {
		return RunsTest{}
	}
	r := RunsTest{Runs: 1}
	for i := 1; i < n; i++ {
		if seq[i] != seq[i-1] {
			r.Runs++
		}
	}

	var s1, s2 float64
	for _, p := range Distribution(seq) {
		s1 += p * (1 - p)
		s2 += p * p * (1 - p) * (1 - p)
	}
	fn := float64(n)
	r.Expected = 1 + 2*fn*s1
	variance := 2*(2*fn-3)*s2 - (r.Expected-1)*(r.Expected-1)/(fn-1)
	r.Std = math.Sqrt(math.Max(variance, 0))
	if r.Std > 0 {
		r.Z = (float64(r.Runs) - r.Expected) / r.Std
	}

	return r
}

// PercentilesOf returns the percentile table of seq.
func PercentilesOf(seq digits.Sequence) Percentiles {
	if len(seq) == 0 {
		return Percentiles{}
	}
	c := seq.Counts()
	n := len(seq)
	at := func(q float64) float64 {
		idx := int(float64(n) * q)
		for d, cnt := range c {
			if idx < cnt {
				return float64(d)
			}
			idx -= cnt
		}

		return float64(digits.Base - 1)
	}

	return Percentiles{P10: at(0.1), P25: at(0.25), P50: at(0.5), P75: at(0.75), P90: at(0.9)}
}
