package state_test

import (
	"testing"

	"github.com/katalvlaran/ninefold/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allTuples enumerates {0,1}³ in table order (1,1,1) … (0,0,0).
func allTuples() [][3]uint8 {
	out := make([][3]uint8, 0, 8)
	for v := 7; v >= 0; v-- {
		out = append(out, [3]uint8{uint8(v >> 2 & 1), uint8(v >> 1 & 1), uint8(v & 1)})
	}

	return out
}

// TestEncode_Table pins the fixed ordering of the encoding table.
func TestEncode_Table(t *testing.T) {
	want := map[[3]uint8]state.ID{
		{1, 1, 1}: 1, {1, 1, 0}: 2, {1, 0, 1}: 3, {1, 0, 0}: 4,
		{0, 1, 1}: 5, {0, 1, 0}: 6, {0, 0, 1}: 7, {0, 0, 0}: 8,
	}
	for bits, id := range want {
		assert.Equal(t, id, state.Encode(bits[0], bits[1], bits[2]), "bits %v", bits)
	}
}

// TestEncode_Bijective checks the image is exactly 1..8 with no collisions.
func TestEncode_Bijective(t *testing.T) {
	seen := make(map[state.ID]bool)
	for _, b := range allTuples() {
		s := state.Encode(b[0], b[1], b[2])
		require.True(t, s.Valid(), "bits %v", b)
		require.False(t, seen[s], "duplicate state %d", s)
		seen[s] = true
	}
	assert.Len(t, seen, 8)
}

// TestComplement_MatchesInvertedBits verifies complement(encode(t)) == encode(¬t).
func TestComplement_MatchesInvertedBits(t *testing.T) {
	for _, b := range allTuples() {
		s := state.Encode(b[0], b[1], b[2])
		inv := state.Encode(1-b[0], 1-b[1], 1-b[2])
		assert.Equal(t, inv, state.Complement(s), "bits %v", b)
		assert.True(t, state.Pairs(s, inv))
	}
}

// TestPairs_Commutative checks the sum-to-9 rule is symmetric over all states.
func TestPairs_Commutative(t *testing.T) {
	for s := state.ID(0); s <= 9; s++ {
		for u := state.ID(0); u <= 9; u++ {
			assert.Equal(t, state.Pairs(s, u), state.Pairs(u, s), "s=%d u=%d", s, u)
		}
	}
	assert.False(t, state.Pairs(state.Invalid, 9), "invalid states never pair")
}

func TestEncode_Malformed(t *testing.T) {
	assert.Equal(t, state.Invalid, state.Encode(2, 0, 0))

	_, err := state.EncodeBits([]uint8{1, 0})
	assert.ErrorIs(t, err, state.ErrBadBits)

	_, err = state.EncodeBits([]uint8{1, 0, 3})
	assert.ErrorIs(t, err, state.ErrBadBits)

	s, err := state.EncodeBits([]uint8{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, state.ID(6), s)
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, b := range allTuples() {
		got, err := state.Decode(state.Encode(b[0], b[1], b[2]))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	_, err := state.Decode(state.Invalid)
	assert.ErrorIs(t, err, state.ErrBadState)
	assert.Equal(t, state.Invalid, state.Complement(state.Invalid))
}
