package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/ninefold/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_NewestFirstWithinOneSecond(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	stamps := []time.Time{base, base.Add(500 * time.Millisecond), base.Add(time.Second)}
	for i, ts := range stamps {
		s.now = func() time.Time { return ts }
		_, err := s.Put(ctx, string(rune('a'+i)), &engine.Report{Length: i})
		require.NoError(t, err)
	}

	list, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{list[0].Key, list[1].Key, list[2].Key})
	assert.True(t, list[1].CreatedAt.Equal(stamps[1]), "sub-second precision survives")
	assert.Equal(t, time.UTC, list[0].CreatedAt.Location())
}
