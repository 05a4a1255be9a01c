package pairing_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/ninefold/attribute"
	"github.com/katalvlaran/ninefold/block"
	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/pairing"
	"github.com/katalvlaran/ninefold/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = track.Reference()

func TestGlobalPairs_AllComplementary(t *testing.T) {
	seq := digits.MustNew(1, 8, 2, 7, 3, 6, 4, 5, 9, 0)
	g := pairing.GlobalPairs(ref.Get(track.Track2), seq)

	assert.Equal(t, 5, g.Valid)
	assert.Equal(t, 5, g.Total)
	assert.Equal(t, 1.0, g.Ratio)
	assert.Empty(t, g.Unpaired)
	require.Len(t, g.Types, 5)
	assert.Equal(t, pairing.TypeCount{Type: "A", Polarity: "yang", Count: 1}, g.Types[0])
	assert.Equal(t, pairing.TypeCount{Type: "B", Polarity: "yin", Count: 1}, g.Types[1])
}

func TestGlobalPairs_NoSelfRule(t *testing.T) {
	seq := digits.MustNew(1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	g := pairing.GlobalPairs(ref.Get(track.Track2), seq)

	assert.Equal(t, 0, g.Valid)
	assert.Equal(t, 5, g.Total)
	assert.Equal(t, 0.0, g.Ratio)
	assert.Equal(t, map[uint8]int{1: 10}, g.Unpaired)
	assert.Empty(t, g.Types)
}

func TestGlobalPairs_EqualDigitRule(t *testing.T) {
	syms := [10]track.Symbol{"x", "x", "x", "x", "x", "x", "x", "x", "x", "x"}
	def, err := track.NewAlphabet(7, "self", syms, []track.Symbol{"x"}, nil,
		[]track.PairRule{{A: 5, B: 5, Type: "five", Polarity: track.Yang}})
	require.NoError(t, err)

	g := pairing.GlobalPairs(def, digits.MustNew(5, 5, 5, 5, 5, 2))
	assert.Equal(t, 2, g.Valid)
	assert.Equal(t, 3, g.Total)
	assert.Equal(t, map[uint8]int{5: 1, 2: 1}, g.Unpaired)
}

func TestGlobalPairs_RuleOrderMatters(t *testing.T) {
	syms := [10]track.Symbol{"x", "x", "x", "x", "x", "x", "x", "x", "x", "x"}
	r12 := track.PairRule{A: 1, B: 2, Type: "p", Polarity: track.Yang}
	r13 := track.PairRule{A: 1, B: 3, Type: "q", Polarity: track.Yin}
	seq := digits.MustNew(1, 2, 3, 4)

	first, err := track.NewAlphabet(7, "first", syms, []track.Symbol{"x"}, nil, []track.PairRule{r12, r13})
	require.NoError(t, err)
	second, err := track.NewAlphabet(7, "second", syms, []track.Symbol{"x"}, nil, []track.PairRule{r13, r12})
	require.NoError(t, err)

	a := pairing.GlobalPairs(first, seq)
	b := pairing.GlobalPairs(second, seq)
	assert.Equal(t, 1, a.Valid)
	assert.Equal(t, 1, b.Valid)
	assert.Equal(t, map[uint8]int{3: 1, 4: 1}, a.Unpaired)
	assert.Equal(t, map[uint8]int{2: 1, 4: 1}, b.Unpaired)
	assert.Equal(t, track.Symbol("p"), a.Types[0].Type)
	assert.Equal(t, track.Symbol("q"), b.Types[0].Type)
}

func TestGlobalPairs_ShortAndEmpty(t *testing.T) {
	g := pairing.GlobalPairs(ref.Get(track.Track3), nil)
	assert.Equal(t, pairing.NewResult(0, 0), g.Result)
	g = pairing.GlobalPairs(ref.Get(track.Track3), digits.MustNew(5))
	assert.Equal(t, 0, g.Total)
	assert.Equal(t, map[uint8]int{5: 1}, g.Unpaired)
}

func TestStatePairs_KnownBlock(t *testing.T) {
	seq := digits.MustNew(1, 1, 1, 0, 0, 0, 9, 9, 9, 0, 0, 0)
	blocks, err := block.Partition(seq, block.Size)
	require.NoError(t, err)

	s := pairing.StatePairs(attribute.Default(), blocks, attribute.Dimensions)
	assert.Equal(t, 1, s.Blocks)
	assert.Equal(t, pairing.NewResult(2, 8), s.Result)

	want := map[attribute.Dimension]pairing.Result{
		attribute.Scale:    pairing.NewResult(1, 2),
		attribute.Position: pairing.NewResult(1, 2),
		attribute.Parity:   pairing.NewResult(0, 2),
		attribute.Relation: pairing.NewResult(0, 2),
	}
	for dim, r := range want {
		got, ok := s.Dimension(dim)
		require.True(t, ok, dim.String())
		assert.Equal(t, r, got, dim.String())
	}
}

func TestStatePairs_NoCrossBlockCoupling(t *testing.T) {
	one := digits.MustNew(2, 7, 1, 8, 2, 8, 1, 8, 2, 8, 4, 5)
	seq := append(append(digits.Sequence{}, one...), one...)
	blocks, err := block.Partition(seq, block.Size)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	tab := attribute.Default()
	b1 := pairing.StatePairs(tab, blocks[:1], attribute.Dimensions)
	b2 := pairing.StatePairs(tab, blocks[1:], attribute.Dimensions)
	assert.Equal(t, b1, b2)

	both := pairing.StatePairs(tab, blocks, attribute.Dimensions)
	assert.Equal(t, 2*b1.Valid, both.Valid)
	assert.Equal(t, 2*b1.Total, both.Total)
}

func TestDirectPairs(t *testing.T) {
	d := pairing.DirectPairs(ref.Get(track.Track2), digits.MustNew(1, 8, 8, 1, 2, 2, 4))
	assert.Equal(t, 2, d.Valid)
	assert.Equal(t, 3, d.Total)
	assert.Equal(t, 1, d.Unpaired)

	d = pairing.DirectPairs(ref.Get(track.Track1), digits.MustNew(1, 8, 2, 7))
	assert.Equal(t, 0, d.Valid)
	assert.Equal(t, 2, d.Total)
}

func TestPolarity(t *testing.T) {
	t1 := ref.Get(track.Track1)
	p := pairing.Polarity(t1, digits.MustNew(1, 1, 1, 0, 0, 0, 9, 9, 9, 0, 0, 0))
	assert.Equal(t, 3, p.Yang)
	assert.Equal(t, 9, p.Yin)
	assert.InDelta(t, 1.0/3, float64(p.Ratio), 1e-12)
	assert.Equal(t, 0.25, p.YangPercent)

	p = pairing.Polarity(t1, digits.MustNew(1, 2))
	assert.True(t, math.IsInf(float64(p.Ratio), 1))
	assert.Equal(t, 1.0, p.YangPercent)

	p = pairing.Polarity(t1, nil)
	assert.Equal(t, pairing.PolarityResult{}, p)
}

func TestRatio_JSON(t *testing.T) {
	b, err := json.Marshal(pairing.Ratio(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, `"inf"`, string(b))

	var r pairing.Ratio
	require.NoError(t, json.Unmarshal(b, &r))
	assert.True(t, math.IsInf(float64(r), 1))
	require.NoError(t, json.Unmarshal([]byte(`0.5`), &r))
	assert.Equal(t, pairing.Ratio(0.5), r)
}

func TestAnalyzeTrack(t *testing.T) {
	tab := attribute.Default()
	seq := digits.MustNew(1, 1, 1, 0, 0, 0, 9, 9, 9, 0, 0, 0)

	r, err := pairing.AnalyzeTrack(ref.Get(track.Track1), tab, seq, block.Size)
	require.NoError(t, err)
	assert.Equal(t, track.Attribute, r.Kind)
	assert.Equal(t, 0.25, r.Primary())
	assert.Equal(t, pairing.GlobalResult{}, r.Global)

	r, err = pairing.AnalyzeTrack(ref.Get(track.Track2), tab, seq, block.Size)
	require.NoError(t, err)
	assert.Equal(t, track.Alphabet, r.Kind)
	assert.Equal(t, 6, r.Global.Total)
	assert.Equal(t, r.Global.Ratio, r.Primary())
	assert.Equal(t, pairing.StateResult{}, r.State)
}

func TestAnalyzeTrack_Short(t *testing.T) {
	seq := digits.MustNew(1, 8, 2, 7, 3, 6, 4, 5, 9, 0)
	for _, def := range ref {
		r, err := pairing.AnalyzeTrack(def, attribute.Default(), seq, block.Size)
		require.NoError(t, err)
		assert.Equal(t, pairing.StateResult{}, r.State)
		assert.Equal(t, pairing.GlobalResult{}, r.Global)
		assert.Equal(t, pairing.DirectResult{}, r.Direct)
		assert.Equal(t, 10, r.Polarity.Yang+r.Polarity.Yin)
	}
}

func TestAnalyzeTrack_Errors(t *testing.T) {
	seq := make(digits.Sequence, 24)
	_, err := pairing.AnalyzeTrack(nil, attribute.Default(), seq, block.Size)
	assert.ErrorIs(t, err, pairing.ErrNilTrack)
	_, err = pairing.AnalyzeTrack(ref.Get(track.Track1), nil, seq, block.Size)
	assert.ErrorIs(t, err, pairing.ErrNilTable)
	_, err = pairing.AnalyzeTrack(ref.Get(track.Track1), attribute.Default(), seq, 0)
	assert.ErrorIs(t, err, block.ErrBadStride)
}
