package dna_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/dna"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_PairTable(t *testing.T) {
	cases := map[string]uint8{
		"AA": 0, "AC": 1, "CA": 1, "AG": 2, "GA": 2, "AT": 3, "TA": 3, "CC": 4,
		"CG": 5, "GC": 5, "CT": 6, "TC": 6, "GG": 7, "GT": 8, "TG": 8, "TT": 9,
	}
	for pair, want := range cases {
		enc, err := dna.Encode(pair, dna.Pair)
		require.NoError(t, err, pair)
		require.Len(t, enc.Digits, 1)
		assert.Equal(t, want, enc.Digits[0], pair)

		back, err := dna.DecodeEncoding(enc)
		require.NoError(t, err)
		assert.Equal(t, pair, back, "decode must restore orientation")
	}
}

func TestEncode_Details(t *testing.T) {
	enc, err := dna.Encode("acgt tg\n", dna.Pair)
	require.NoError(t, err)
	assert.Equal(t, "ACGTTG", enc.DNA)
	assert.Equal(t, digits.Sequence{1, 8, 8}, enc.Digits)
	assert.Equal(t, []string{"", "", dna.ReverseMark}, enc.Marks)
	assert.False(t, enc.Truncated)
	assert.True(t, enc.Units[0].Forward)
	assert.False(t, enc.Units[2].Forward)
	assert.Equal(t, dna.Mismatch, enc.Units[2].PairType)
	assert.Equal(t, 2, enc.Stats.UniqueDigits)
}

func TestEncode_TruncatesOddBase(t *testing.T) {
	enc, err := dna.Encode("ATGCA", dna.Pair)
	require.NoError(t, err)
	assert.True(t, enc.Truncated)
	assert.Equal(t, "ATGC", enc.DNA)
	assert.Equal(t, digits.Sequence{3, 5}, enc.Digits)
	assert.Equal(t, dna.WatsonCrickAT, enc.Units[0].PairType)
	assert.Equal(t, dna.WatsonCrickCG, enc.Units[1].PairType)
	assert.Equal(t, dna.ReverseMark, enc.Marks[1])
	assert.Equal(t, 0.5, enc.Stats.GCContent)
	assert.Equal(t, 2, enc.Stats.ATCount)
}

func TestEncode_Invalid(t *testing.T) {
	_, err := dna.Encode("ACGU", dna.Pair)
	assert.ErrorIs(t, err, dna.ErrBadBase)
	_, err = dna.Normalize("AC-GT")
	assert.ErrorIs(t, err, dna.ErrBadBase)
}

func TestEncode_Simple(t *testing.T) {
	enc, err := dna.Encode("TGCA", dna.Simple)
	require.NoError(t, err)
	assert.Equal(t, digits.Sequence{3, 2, 1, 0}, enc.Digits)
	assert.Nil(t, enc.Marks)
	_, err = dna.DecodeEncoding(enc)
	assert.ErrorIs(t, err, dna.ErrNotDecodable)
}

func TestDecode(t *testing.T) {
	s, err := dna.Decode(digits.Sequence{0, 5, 9}, []string{"", dna.ReverseMark})
	require.NoError(t, err)
	assert.Equal(t, "AAGCTT", s)

	_, err = dna.Decode(digits.Sequence{10}, nil)
	assert.ErrorIs(t, err, dna.ErrBadDigit)
}

func TestEncoding_JSON(t *testing.T) {
	enc, err := dna.Encode("GATTACA", dna.Pair)
	require.NoError(t, err)
	b, err := json.Marshal(enc)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"encoded_digits":"291"`)

	var back dna.Encoding
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, enc.Digits, back.Digits)
}
