package attribute_test

import (
	"testing"

	"github.com/katalvlaran/ninefold/attribute"
	"github.com/katalvlaran/ninefold/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReference_Rules re-derives every bit of the reference table from its
// defining rules so an edit to the literal cannot drift silently.
func TestReference_Rules(t *testing.T) {
	tbl := attribute.Default()
	for d := uint8(0); d < 10; d++ {
		p := tbl.Profile(d)
		small := d >= 1 && d <= 5
		up := d == 1 || d == 2 || d == 3 || d == 6 || d == 7 || d == 8
		assert.Equal(t, b2u(small), p.Scale, "scale of %d", d)
		assert.Equal(t, b2u(up), p.Position, "position of %d", d)
		assert.Equal(t, d%2, p.Parity, "parity of %d", d)
		assert.GreaterOrEqual(t, p.Level, uint8(1))
		assert.LessOrEqual(t, p.Level, uint8(5))
	}
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}

	return 0
}

func TestNewTable_Validation(t *testing.T) {
	p := attribute.ReferenceProfiles
	p[3].Parity = 2
	_, err := attribute.NewTable(p, attribute.ReferenceRelation)
	assert.ErrorIs(t, err, attribute.ErrBadProfile)

	p = attribute.ReferenceProfiles
	p[0].Level = 0
	_, err = attribute.NewTable(p, attribute.ReferenceRelation)
	assert.ErrorIs(t, err, attribute.ErrBadProfile)

	r := attribute.ReferenceRelation
	r[4][4] = 7
	_, err = attribute.NewTable(attribute.ReferenceProfiles, r)
	assert.ErrorIs(t, err, attribute.ErrBadRelation)
}

func TestTable_CopiesAreDetached(t *testing.T) {
	tbl := attribute.Default()
	m := tbl.Matrix()
	m[0][0] = 1
	assert.Equal(t, uint8(0), tbl.Matrix()[0][0], "matrix accessor must return a copy")

	p := tbl.Profiles()
	p[1].Scale = 0
	assert.Equal(t, uint8(1), tbl.Profile(1).Scale, "profiles accessor must return a copy")
}

func TestRelation(t *testing.T) {
	tbl := attribute.Default()
	v, err := tbl.Relation(1, 3)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)

	v, err = tbl.Relation(3, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)

	_, err = tbl.Relation(0, 2)
	assert.ErrorIs(t, err, attribute.ErrBadLevel)
	_, err = tbl.Relation(2, 6)
	assert.ErrorIs(t, err, attribute.ErrBadLevel)
}

func TestPartState(t *testing.T) {
	tbl := attribute.Default()
	tests := []struct {
		name string
		part []uint8
		dim  attribute.Dimension
		want state.ID
	}{
		{"scale small-small-small", []uint8{1, 2, 3}, attribute.Scale, 1},
		{"scale large-large-large", []uint8{0, 9, 8}, attribute.Scale, 8},
		{"position up-down-up", []uint8{1, 4, 7}, attribute.Position, 3},
		{"parity odd-even-even", []uint8{9, 0, 2}, attribute.Parity, 4},
		// levels (1,2,3): R(1,2)=0 R(2,3)=1 R(3,1)=1 → (0,1,1)
		{"relation ring 1-2-3", []uint8{1, 2, 3}, attribute.Relation, 5},
		// levels (5,5,5): R(5,5)=0 three times → (0,0,0)
		{"relation ring 0-5-0", []uint8{0, 5, 0}, attribute.Relation, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tbl.PartState(tc.part, tc.dim))
		})
	}
}

func TestPartBits_Errors(t *testing.T) {
	tbl := attribute.Default()
	_, err := tbl.PartBits([]uint8{1, 2}, attribute.Scale)
	assert.ErrorIs(t, err, attribute.ErrBadPart)

	_, err = tbl.PartBits([]uint8{1, 2, 3}, attribute.Dimension(42))
	assert.ErrorIs(t, err, attribute.ErrBadDimension)

	assert.Equal(t, state.Invalid, tbl.PartState([]uint8{1}, attribute.Parity))
	assert.Equal(t, uint8(0), tbl.Bit(1, attribute.Relation))
}

func TestDimension_Names(t *testing.T) {
	for _, d := range attribute.Dimensions {
		got, ok := attribute.ParseDimension(d.String())
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := attribute.ParseDimension("colour")
	assert.False(t, ok)
	assert.Equal(t, "unknown", attribute.Dimension(9).String())
}
