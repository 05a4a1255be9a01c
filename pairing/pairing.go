// SPDX-License-Identifier: MIT
// Package: ninefold/pairing
//
// pairing.go — state, global and direct pairing plus polarity.

package pairing

import (
	"math"

	"github.com/katalvlaran/ninefold/attribute"
	"github.com/katalvlaran/ninefold/block"
	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/state"
	"github.com/katalvlaran/ninefold/track"
)

// StatePairs counts complementary part states over blocks for each of dims.
// Each block contributes two attempts per dimension. Blocks do not interact:
// identical blocks contribute identical counts.
func StatePairs(tab *attribute.Table, blocks []block.Block, dims []attribute.Dimension) StateResult {
	out := StateResult{Blocks: len(blocks), ByDimension: make([]DimensionResult, len(dims))}
	for i, dim := range dims {
		valid, total := 0, 0
		for _, b := range blocks {
			for _, sp := range block.SymmetricPairs {
				s := tab.PartState(b.Part(sp[0]), dim)
				t := tab.PartState(b.Part(sp[1]), dim)
				if state.Pairs(s, t) {
					valid++
				}
				total++
			}
		}
		out.ByDimension[i] = DimensionResult{Dimension: dim, Result: NewResult(valid, total)}
		out.Result = out.Result.add(out.ByDimension[i].Result)
	}

	return out
}

// GlobalPairs pairs digits of seq across the whole sequence using the rules
// of def in declaration order. Rule order is observable: an earlier rule
// consumes digits a later one could have used.
// Complexity: O(N + R).
func GlobalPairs(def *track.Definition, seq digits.Sequence) GlobalResult {
	rem := seq.Counts()
	valid := 0
	var types []TypeCount
	index := make(map[track.Symbol]int)

	for _, r := range def.Rules() {
		var n int
		if r.A == r.B {
			n = rem[r.A] / 2
		} else {
			n = min(rem[r.A], rem[r.B])
		}
		if n == 0 {
			continue
		}
		valid += n
		if r.A == r.B {
			rem[r.A] -= 2 * n
		} else {
			rem[r.A] -= n
			rem[r.B] -= n
		}
		i, ok := index[r.Type]
		if !ok {
			i = len(types)
			index[r.Type] = i
			types = append(types, TypeCount{Type: r.Type, Polarity: r.Polarity.String()})
		}
		types[i].Count += n
	}

	var unpaired map[uint8]int
	for d, c := range rem {
		if c > 0 {
			if unpaired == nil {
				unpaired = make(map[uint8]int)
			}
			unpaired[uint8(d)] = c
		}
	}

	return GlobalResult{Result: NewResult(valid, len(seq)/2), Types: types, Unpaired: unpaired}
}

// DirectPairs checks the non-overlapping neighbours (s[0],s[1]), (s[2],s[3]),
// … against def's rules. A trailing odd digit is reported as unpaired.
func DirectPairs(def *track.Definition, seq digits.Sequence) DirectResult {
	valid := 0
	for i := 0; i+1 < len(seq); i += 2 {
		if def.Complementary(seq[i], seq[i+1]) {
			valid++
		}
	}

	return DirectResult{Result: NewResult(valid, len(seq)/2), Unpaired: len(seq) % 2}
}

// Polarity counts yang and yin digits of seq on def. The ratio is +Inf when
// a non-empty sequence has no yin digit, and 0 for an empty one.
func Polarity(def *track.Definition, seq digits.Sequence) PolarityResult {
	var p PolarityResult
	for _, v := range seq {
		if def.IsYang(v) {
			p.Yang++
		} else {
			p.Yin++
		}
	}
	if len(seq) == 0 {
		return p
	}
	p.YangPercent = float64(p.Yang) / float64(len(seq))
	if p.Yin == 0 {
		p.Ratio = Ratio(math.Inf(1))
	} else {
		p.Ratio = Ratio(float64(p.Yang) / float64(p.Yin))
	}

	return p
}
