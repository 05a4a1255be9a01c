package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/stats"
	"github.com/stretchr/testify/assert"
)

var ramp = digits.MustNew(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)

func TestDescribe_Empty(t *testing.T) {
	assert.Equal(t, stats.Summary{}, stats.Describe(nil))
}

func TestDistributionAndEntropy(t *testing.T) {
	p := stats.Distribution(ramp)
	for d := range p {
		assert.InDelta(t, 0.1, p[d], 1e-12)
	}
	assert.InDelta(t, stats.MaxEntropy, stats.Entropy(ramp), 1e-12)
	assert.Equal(t, 0.0, stats.Entropy(digits.MustNew(7, 7, 7)))
	assert.InDelta(t, 1.0, stats.Entropy(digits.MustNew(1, 2, 1, 2)), 1e-12)
}

func TestMoments(t *testing.T) {
	mean, variance, std, skew, kurt := stats.Moments(ramp)
	assert.InDelta(t, 4.5, mean, 1e-12)
	assert.InDelta(t, 8.25, variance, 1e-12)
	assert.InDelta(t, math.Sqrt(8.25), std, 1e-12)
	assert.InDelta(t, 0, skew, 1e-12)
	assert.InDelta(t, 120.8625/68.0625-3, kurt, 1e-12)

	_, _, std, skew, kurt = stats.Moments(digits.MustNew(4, 4, 4, 4))
	assert.Equal(t, 0.0, std)
	assert.Equal(t, 0.0, skew)
	assert.Equal(t, 0.0, kurt)

	_, _, _, skew, kurt = stats.Moments(digits.MustNew(1, 9))
	assert.Equal(t, 0.0, skew, "skewness needs three values")
	assert.Equal(t, 0.0, kurt, "kurtosis needs four values")
}

func TestLag1(t *testing.T) {
	assert.InDelta(t, 1.0, stats.Lag1(ramp), 1e-12)
	assert.InDelta(t, -1.0, stats.Lag1(ramp.Reverse()), 1e-12)
	assert.Equal(t, 0.0, stats.Lag1(digits.MustNew(3, 3, 3, 3)))
	assert.Equal(t, 0.0, stats.Lag1(digits.MustNew(1, 2)))
}

func TestRuns(t *testing.T) {
	r := stats.Runs(digits.MustNew(1, 1, 2, 2, 3))
	assert.Equal(t, 3, r.Runs)
	// p = {0.4, 0.4, 0.2}: Σp(1-p) = 0.64
	assert.InDelta(t, 1+2*5*0.64, r.Expected, 1e-12)
	assert.GreaterOrEqual(t, r.Std, 0.0)

	assert.Equal(t, stats.RunsTest{}, stats.Runs(digits.MustNew(5)))
	one := stats.Runs(digits.MustNew(5, 5, 5))
	assert.Equal(t, 1, one.Runs)
	assert.Equal(t, 0.0, one.Z)
}

func TestPercentiles(t *testing.T) {
	p := stats.PercentilesOf(ramp)
	assert.Equal(t, stats.Percentiles{P10: 1, P25: 2, P50: 5, P75: 7, P90: 9}, p)

	p = stats.PercentilesOf(digits.MustNew(9, 0, 0, 0))
	assert.Equal(t, 0.0, p.P50)
	assert.Equal(t, 9.0, p.P90)
	assert.Equal(t, stats.Percentiles{}, stats.PercentilesOf(nil))
}
