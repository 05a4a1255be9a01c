package engine_test

import (
	"testing"

	"github.com/katalvlaran/ninefold/block"
	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/engine"
	"github.com/katalvlaran/ninefold/omega"
	"github.com/katalvlaran/ninefold/pairing"
	"github.com/katalvlaran/ninefold/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// first 60 decimals of pi
var piDigits = []int{
	1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3, 2, 3, 8, 4, 6,
	2, 6, 4, 3, 3, 8, 3, 2, 7, 9, 5, 0, 2, 8, 8, 4, 1, 9, 7, 1,
	6, 9, 3, 9, 9, 3, 7, 5, 1, 0, 5, 8, 2, 0, 9, 7, 4, 9, 4, 4,
}

func TestAnalyze_Deterministic(t *testing.T) {
	e := engine.Default()
	a, err := e.Analyze(piDigits)
	require.NoError(t, err)
	b, err := e.Analyze(piDigits)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, e.Fingerprint(), a.Fingerprint)
}

func TestAnalyze_Bounds(t *testing.T) {
	for _, opt := range []engine.Option{engine.WithMode(block.Fixed), engine.WithMode(block.Sliding)} {
		e, err := engine.New(opt, engine.WithComposite())
		require.NoError(t, err)
		r, err := e.Analyze(piDigits)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, r.Omega, 0.0)
		require.Len(t, r.Tracks, 4)
		for _, tr := range r.Tracks {
			for _, res := range []pairing.TrackResult{tr.Forward, tr.Backward} {
				for _, ratio := range []float64{res.State.Ratio, res.Global.Ratio, res.Direct.Ratio, res.Polarity.YangPercent} {
					assert.GreaterOrEqual(t, ratio, 0.0)
					assert.LessOrEqual(t, ratio, 1.0)
				}
			}
			assert.GreaterOrEqual(t, tr.Symmetry.Overall, 0.0)
			assert.LessOrEqual(t, tr.Symmetry.Overall, 1.0)
		}
		require.NotNil(t, r.Composite)
		assert.LessOrEqual(t, r.Composite.Scores.Overall, 1.0)
	}
}

func TestAnalyze_ShortAndEmpty(t *testing.T) {
	e := engine.Default()
	for _, raw := range [][]int{nil, {}, {1, 8, 2, 7, 3, 6, 4, 5, 9, 0}, {1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1}} {
		r, err := e.Analyze(raw)
		require.NoError(t, err)
		assert.True(t, r.Insufficient)
		assert.ErrorIs(t, r.Warning(), engine.ErrInsufficientLength)
		assert.Equal(t, 0.0, r.Omega)
		assert.Equal(t, omega.None, r.Level)
		for _, tr := range r.Tracks {
			assert.Equal(t, pairing.Result{}, tr.Forward.State.Result)
			assert.Equal(t, pairing.Result{}, tr.Forward.Global.Result)
			assert.Equal(t, pairing.Result{}, tr.Backward.Global.Result)
		}
	}

	r, err := e.Analyze(piDigits[:12])
	require.NoError(t, err)
	assert.False(t, r.Insufficient)
	assert.NoError(t, r.Warning())
}

func TestAnalyze_InvalidInput(t *testing.T) {
	e := engine.Default()
	_, err := e.Analyze([]int{1, 2, 10})
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
	assert.ErrorIs(t, err, digits.ErrOutOfRange)

	_, err = e.Analyze([]int{-1})
	assert.ErrorIs(t, err, engine.ErrInvalidInput)

	_, err = e.AnalyzeSequence(digits.Sequence{3, 12})
	assert.ErrorIs(t, err, engine.ErrInvalidInput)

	c, err := engine.New(engine.WithComposite())
	require.NoError(t, err)
	_, err = c.Analyze(nil)
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestAnalyze_PalindromeHasZeroOmega(t *testing.T) {
	half := piDigits[:12]
	raw := append([]int(nil), half...)
	for i := len(half) - 1; i >= 0; i-- {
		raw = append(raw, half[i])
	}

	for _, basis := range []omega.Basis{omega.BasisDimensions, omega.BasisTracks} {
		e, err := engine.New(engine.WithOmegaBasis(basis))
		require.NoError(t, err)
		r, err := e.Analyze(raw)
		require.NoError(t, err)
		assert.Equal(t, 0.0, r.Omega, basis.String())
		assert.Equal(t, omega.None, r.Level)
		for _, tr := range r.Tracks {
			assert.Equal(t, 1.0, tr.Symmetry.Overall, tr.Track.String())
		}
	}
}

func TestAnalyze_Deltas(t *testing.T) {
	r, err := engine.Default().Analyze(piDigits)
	require.NoError(t, err)
	require.Len(t, r.Deltas, 4)
	assert.Equal(t, "scale", r.Deltas[0].Label)
	assert.Equal(t, "relation", r.Deltas[3].Label)

	sum := 0.0
	for _, d := range r.Deltas {
		sum += d.Delta * d.Delta
	}
	assert.InDelta(t, sum, r.Omega*r.Omega, 1e-12)
	assert.Equal(t, omega.Classify(r.Omega, omega.DefaultThresholds()), r.Level)

	e, err := engine.New(engine.WithOmegaBasis(omega.BasisTracks))
	require.NoError(t, err)
	r, err = e.Analyze(piDigits)
	require.NoError(t, err)
	require.Len(t, r.Deltas, 4)
	assert.Equal(t, "track2", r.Deltas[1].Label)
}

func TestAnalyze_TrackReports(t *testing.T) {
	r, err := engine.Default().Analyze(piDigits)
	require.NoError(t, err)

	t1 := r.Track(track.Track1)
	require.NotNil(t, t1)
	assert.Nil(t, t1.Direct)
	assert.Equal(t, 5, t1.Forward.State.Blocks)

	t2 := r.Track(track.Track2)
	require.NotNil(t, t2)
	require.NotNil(t, t2.Direct)
	assert.Equal(t, 30, t2.Forward.Global.Total)
	assert.Equal(t, t2.Forward.Global.Valid, t2.Backward.Global.Valid)
	assert.Nil(t, r.Track(9))

	assert.Len(t, r.Symmetry.Tracks, 4)
}

func TestNew_Errors(t *testing.T) {
	_, err := engine.New(engine.WithTracks(track.Reference().Of(track.Alphabet)))
	assert.ErrorIs(t, err, engine.ErrNoAttributeTrack)

	e, err := engine.New(
		engine.WithTracks(track.Reference().Of(track.Alphabet)),
		engine.WithOmegaBasis(omega.BasisTracks),
	)
	require.NoError(t, err)
	assert.Len(t, e.Tracks(), 3)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { engine.WithStride(0) })
	assert.Panics(t, func() { engine.WithThresholds(omega.Thresholds{Weak: 0.2, Strong: 0.1}) })
	assert.Panics(t, func() { engine.WithTracks(nil) })
	assert.Panics(t, func() { engine.WithAttributeTable(nil) })
	assert.Panics(t, func() { engine.WithMode(block.Mode(9)) })
	assert.Panics(t, func() { engine.WithOmegaBasis(omega.Basis(9)) })
}

func TestFingerprint(t *testing.T) {
	a := engine.Default()
	b, err := engine.New(engine.WithStride(6))
	require.NoError(t, err)
	c, err := engine.New(engine.WithThresholds(omega.Thresholds{Weak: 0.1, Strong: 0.2}))
	require.NoError(t, err)

	assert.Len(t, a.Fingerprint(), 16)
	assert.Equal(t, a.Fingerprint(), engine.Default().Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestWithThresholds_Classify(t *testing.T) {
	e, err := engine.New(engine.WithThresholds(omega.Thresholds{Weak: 0, Strong: 1e-9}))
	require.NoError(t, err)
	omg, lvl, err := e.Omega(digits.MustNew(piDigits...))
	require.NoError(t, err)
	if omg > 1e-9 {
		assert.Equal(t, omega.Strong, lvl)
	}
	assert.Equal(t, e.Thresholds().Strong, 1e-9)
}
