package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/engine"
	"github.com/katalvlaran/ninefold/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestKey(t *testing.T) {
	seq := digits.MustNew(3, 1, 4, 1, 5)
	assert.Len(t, store.Key(seq, "abc"), 64)
	assert.Equal(t, store.Key(seq, "abc"), store.Key(seq, "abc"))
	assert.NotEqual(t, store.Key(seq, "abc"), store.Key(seq, "abd"))
	assert.NotEqual(t, store.Key(seq, "abc"), store.Key(digits.MustNew(3, 1, 4, 1), "abc"))
}

func TestAnalyze_CachesReport(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	e := engine.Default()
	seq, err := digits.Parse("314159265358979323846264338327950288", digits.ParseOptions{})
	require.NoError(t, err)

	first, hit, err := s.Analyze(ctx, e, seq)
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := s.Analyze(ctx, e, seq)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.InDelta(t, first.Omega, second.Omega, 1e-12)
	assert.Equal(t, first.Level, second.Level)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	require.Len(t, second.Tracks, len(first.Tracks))
	assert.InDelta(t, first.Tracks[0].Forward.Primary(), second.Tracks[0].Forward.Primary(), 1e-12)

	list, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, len(seq), list[0].Length)
	assert.Equal(t, e.Fingerprint(), list[0].Fingerprint)
	assert.NotEmpty(t, list[0].RunID)
}

func TestGet_NotFound(t *testing.T) {
	s := openTemp(t)
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPut_Nil(t *testing.T) {
	s := openTemp(t)
	_, err := s.Put(context.Background(), "k", nil)
	assert.ErrorIs(t, err, store.ErrNilReport)
}

func TestPurge(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	e := engine.Default()
	for _, in := range []string{"123456789012345678901234", "987654321098765432109876"} {
		seq, err := digits.Parse(in, digits.ParseOptions{})
		require.NoError(t, err)
		_, _, err = s.Analyze(ctx, e, seq)
		require.NoError(t, err)
	}
	list, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	n, err := s.Purge(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	list, err = s.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOpen_Memory(t *testing.T) {
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	defer s.Close()
	_, err = s.Put(context.Background(), "k", &engine.Report{Length: 1})
	require.NoError(t, err)
	rep, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Length)
}
