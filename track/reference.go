// SPDX-License-Identifier: MIT
// Package: ninefold/track
//
// reference.go — the four reference tracks.
//
//   track1  attribute  scale+position+parity+relation, yang = digits 1..7
//   track2  alphabet   A..E,            pairs sum to 9
//   track3  alphabet   heavenly stems,  pairs sum to 10
//   track4  alphabet   late stems,      pairs (1,8) (2,5) (3,6) (4,7) (9,0)
//
// Every rule is declared in both orientations, in the fixed order below.
// The reverse orientation never finds a pair after the forward one has
// consumed min(count) units, but it is kept so the rule list matches the
// declared tables one-to-one.

package track

import "github.com/katalvlaran/ninefold/attribute"

// Reference track identifiers.
const (
	Track1 ID = iota + 1
	Track2
	Track3
	Track4
)

// both expands {a,b} into the two orientations sharing one type.
func both(a, b uint8, typ Symbol, p Polarity) []PairRule {
	return []PairRule{{A: a, B: b, Type: typ, Polarity: p}, {A: b, B: a, Type: typ, Polarity: p}}
}

func concat(groups ...[]PairRule) []PairRule {
	var out []PairRule
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

// Reference returns freshly built reference tracks in ID order.
func Reference() Set {
	t1, err := NewAttribute(Track1, "attributes", attribute.Dimensions, []uint8{1, 2, 3, 4, 5, 6, 7})
	if err != nil {
		panic(err)
	}

	t2, err := NewAlphabet(Track2, "nine-sum",
		[10]Symbol{"E", "A", "B", "C", "D", "D", "C", "B", "A", "E"},
		[]Symbol{"A", "C", "E"}, []Symbol{"B", "D"},
		concat(
			both(1, 8, "A", Yang),
			both(2, 7, "B", Yin),
			both(3, 6, "C", Yang),
			both(4, 5, "D", Yin),
			both(9, 0, "E", Yang),
		))
	if err != nil {
		panic(err)
	}

	t3, err := NewAlphabet(Track3, "ten-sum",
		[10]Symbol{"戊", "甲", "乙", "丙", "丁", "戊", "丁", "丙", "乙", "甲"},
		[]Symbol{"甲", "丙", "戊"}, []Symbol{"乙", "丁"},
		concat(
			both(1, 9, "甲", Yang),
			both(2, 8, "乙", Yin),
			both(3, 7, "丙", Yang),
			both(4, 6, "丁", Yin),
			both(5, 0, "戊", Yang),
		))
	if err != nil {
		panic(err)
	}

	t4, err := NewAlphabet(Track4, "stems",
		[10]Symbol{"癸", "己", "庚", "辛", "壬", "庚", "辛", "壬", "己", "癸"},
		[]Symbol{"己", "辛", "癸"}, []Symbol{"庚", "壬"},
		concat(
			both(1, 8, "一", Yang),
			both(2, 5, "二", Yin),
			both(3, 6, "三", Yang),
			both(4, 7, "四", Yin),
			both(9, 0, "五", Yang),
		))
	if err != nil {
		panic(err)
	}

	return Set{t1, t2, t3, t4}
}
