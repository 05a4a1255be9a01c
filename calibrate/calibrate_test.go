package calibrate_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/ninefold/block"
	"github.com/katalvlaran/ninefold/calibrate"
	"github.com/katalvlaran/ninefold/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	vals := make([]float64, 20)
	for i := range vals {
		vals[i] = float64(20-i) / 100 // 0.20 .. 0.01
	}
	r := calibrate.Summarize(vals)
	assert.Equal(t, 20, r.Trials)
	assert.InDelta(t, 0.105, r.Mean, 1e-12)
	assert.Equal(t, 0.01, r.Min)
	assert.Equal(t, 0.20, r.Max)
	assert.Equal(t, 0.19, r.P95) // ⌈19⌉−1 = 18 → 0.19
	assert.InDelta(t, 0.19*1.1, r.Suggested.Weak, 1e-12)
	assert.InDelta(t, 0.19*1.65, r.Suggested.Strong, 1e-12)

	assert.Equal(t, calibrate.Result{}.Mean, calibrate.Summarize(nil).Mean)
}

func TestRun_Reproducible(t *testing.T) {
	e, err := engine.New(engine.WithMode(block.Sliding))
	require.NoError(t, err)
	ctx := context.Background()

	a, err := calibrate.Run(ctx, e, calibrate.WithTrials(8), calibrate.WithLength(240), calibrate.WithSeed(42), calibrate.WithParallel(1))
	require.NoError(t, err)
	b, err := calibrate.Run(ctx, e, calibrate.WithTrials(8), calibrate.WithLength(240), calibrate.WithSeed(42), calibrate.WithParallel(4))
	require.NoError(t, err)

	assert.Equal(t, a.Values, b.Values, "parallelism must not change results")
	assert.Equal(t, a.Suggested, b.Suggested)
	assert.Len(t, a.Values, 8)
	assert.GreaterOrEqual(t, a.Min, 0.0)
	assert.LessOrEqual(t, a.P95, a.Max)
	if a.P95 > 0 {
		assert.NoError(t, a.Suggested.Validate())
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := calibrate.Run(ctx, engine.Default(), calibrate.WithTrials(4), calibrate.WithLength(24))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	_, err := calibrate.Run(context.Background(), engine.Default(),
		calibrate.WithTrials(2), calibrate.WithLength(24), calibrate.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "calibration finished")
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { calibrate.WithTrials(0) })
	assert.Panics(t, func() { calibrate.WithLength(0) })
	assert.Panics(t, func() { calibrate.WithParallel(0) })
	assert.Panics(t, func() { calibrate.WithLogger(nil) })
}

func TestRun_NilEngine(t *testing.T) {
	_, err := calibrate.Run(context.Background(), nil)
	assert.ErrorIs(t, err, calibrate.ErrNilEngine)
}
