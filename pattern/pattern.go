// SPDX-License-Identifier: MIT
// Package: ninefold/pattern
//
// pattern.go — detectors and scores.

package pattern

import (
	"sort"

	"github.com/katalvlaran/ninefold/digits"
)

// Analyze runs every detector and score over seq.
func Analyze(seq digits.Sequence) Analysis {
	var ps []Pattern
	ps = append(ps, Repetitions(seq)...)
	ps = append(ps, Sequential(seq)...)
	ps = append(ps, Pairs(seq)...)

	a := Analysis{
		Patterns:        ps,
		RepetitionScore: RepetitionScore(seq),
		PairScore:       PairScore(seq),
		SequentialScore: SequentialScore(seq),
		Density:         Density(ps, len(seq)),
		Distribution:    make(map[Kind]int),
		Total:           len(ps),
	}
	for _, p := range ps {
		a.Distribution[p.Kind]++
	}

	return a
}

// Repetitions finds sub-strings of length 2..min(20, N/2) occurring at
// least twice, overlapping occurrences included.
func Repetitions(seq digits.Sequence) []Pattern {
	var out []Pattern
	maxLen := min(MaxRepeatLength, len(seq)/2)
	for l := MinRepeatLength; l <= maxLen; l++ {
		var order []string
		pos := make(map[string][]int)
		for i := 0; i+l <= len(seq); i++ {
			k := string(seq[i : i+l])
			if _, seen := pos[k]; !seen {
				order = append(order, k)
			}
			pos[k] = append(pos[k], i)
		}
		for _, k := range order {
			at := pos[k]
			if len(at) < MinRepeats {
				continue
			}
			out = append(out, Pattern{
				Kind:      Repetition,
				Digits:    seq[at[0] : at[0]+l].Ints(),
				Length:    l,
				Count:     len(at),
				Positions: at,
				Score:     len(at) * l,
			})
		}
	}

	return out
}

// Sequential finds maximal runs of unit steps of at least three digits.
func Sequential(seq digits.Sequence) []Pattern {
	var out []Pattern
	n := len(seq)
	step := func(i, d int) bool { return int(seq[i+1])-int(seq[i]) == d }

	for i := 0; i+2 < n; {
		var kind Kind
		var d int
		switch {
		case step(i, 1) && step(i+1, 1):
			kind, d = SequentialIncreasing, 1
		case step(i, -1) && step(i+1, -1):
			kind, d = SequentialDecreasing, -1
		default:
			i++
			continue
		}
		start := i
		for i+1 < n && step(i, d) {
			i++
		}
		l := i - start + 1
		out = append(out, Pattern{
			Kind:   kind,
			Digits: seq[start : i+1].Ints(),
			Length: l,
			Count:  1,
			Start:  start,
			End:    i,
			Score:  l,
		})
	}

	return out
}

type pairCount struct {
	a, b uint8
	at   []int
}

// adjacentPairs counts neighbour pairs in first-occurrence order, then
// stable-sorts them by descending count.
func adjacentPairs(seq digits.Sequence) []*pairCount {
	var order []*pairCount
	var index [digits.Base][digits.Base]*pairCount
	for i := 0; i+1 < len(seq); i++ {
		a, b := seq[i], seq[i+1]
		pc := index[a][b]
		if pc == nil {
			pc = &pairCount{a: a, b: b}
			index[a][b] = pc
			order = append(order, pc)
		}
		pc.at = append(pc.at, i)
	}
	sort.SliceStable(order, func(i, j int) bool { return len(order[i].at) > len(order[j].at) })

	return order
}

// Pairs returns the most frequent adjacent pairs (top TopPairs) that occur
// at least MinPairCount times.
func Pairs(seq digits.Sequence) []Pattern {
	var out []Pattern
	for i, pc := range adjacentPairs(seq) {
		if i == TopPairs {
			break
		}
		if len(pc.at) < MinPairCount {
			continue
		}
		out = append(out, Pattern{
			Kind:      Pair,
			Digits:    []int{int(pc.a), int(pc.b)},
			Length:    2,
			Count:     len(pc.at),
			Positions: pc.at,
			Score:     2 * len(pc.at),
		})
	}

	return out
}

// RepetitionScore returns the longest L in 2..10 such that some window is
// immediately followed by a copy of itself, or 0.
func RepetitionScore(seq digits.Sequence) int {
	best := 0
	for l := 2; l <= MaxScoreLength; l++ {
		for i := 0; i+2*l <= len(seq); i++ {
			if string(seq[i:i+l]) == string(seq[i+l:i+2*l]) {
				best = l
				break
			}
		}
	}

	return best
}

// PairScore returns the count of the most frequent adjacent pair.
func PairScore(seq digits.Sequence) int {
	ps := adjacentPairs(seq)
	if len(ps) == 0 {
		return 0
	}

	return len(ps[0].at)
}

// SequentialScore counts triples whose two steps both have magnitude 1.
func SequentialScore(seq digits.Sequence) int {
	c := 0
	for i := 0; i+2 < len(seq); i++ {
		if absDiff(seq[i], seq[i+1]) == 1 && absDiff(seq[i+1], seq[i+2]) == 1 {
			c++
		}
	}

	return c
}

// Density is Σ length·count over ps divided by n; 0 when n is 0.
func Density(ps []Pattern, n int) float64 {
	if n == 0 {
		return 0
	}
	total := 0
	for _, p := range ps {
		total += p.Length * p.Count
	}

	return float64(total) / float64(n)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}

	return int(b - a)
}
