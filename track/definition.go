// SPDX-License-Identifier: MIT
// Package: ninefold/track
//
// definition.go — immutable track definitions.
//
// Contract:
//   • An attribute track holds ≥1 dimension and a yang digit set.
//   • An alphabet track maps all ten digits, its yang/yin sets partition the
//     mapped symbols, and its rules are kept in declaration order (the
//     global pairing result depends on that order).

package track

import (
	"fmt"

	"github.com/katalvlaran/ninefold/attribute"
	"github.com/katalvlaran/ninefold/digits"
)

// Definition is one configured track.
type Definition struct {
	id   ID
	name string
	kind Kind

	dims []attribute.Dimension // attribute tracks

	symbols [digits.Base]Symbol // alphabet tracks
	rules   []PairRule          // alphabet tracks, declaration order

	yang [digits.Base]bool // per digit, both kinds
}

// NewAttribute builds an attribute track. yangDigits lists the digits
// counted as yang by the polarity statistic.
func NewAttribute(id ID, name string, dims []attribute.Dimension, yangDigits []uint8) (*Definition, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("NewAttribute(%s): %w", name, ErrNoDimensions)
	}
	def := &Definition{id: id, name: name, kind: Attribute}
	def.dims = append([]attribute.Dimension(nil), dims...)
	for _, d := range yangDigits {
		if d >= digits.Base {
			return nil, fmt.Errorf("NewAttribute(%s): yang digit %d: %w", name, d, ErrBadDigit)
		}
		def.yang[d] = true
	}

	return def, nil
}

// NewAlphabet builds an alphabet track from its digit→symbol map, its
// polarity partition and its ordered pair rules.
func NewAlphabet(id ID, name string, symbols [digits.Base]Symbol, yang, yin []Symbol, rules []PairRule) (*Definition, error) {
	class := make(map[Symbol]Polarity, len(yang)+len(yin))
	for _, s := range yang {
		class[s] = Yang
	}
	for _, s := range yin {
		if _, dup := class[s]; dup {
			return nil, fmt.Errorf("NewAlphabet(%s): %q: %w", name, s, ErrPolarityOverlap)
		}
		class[s] = Yin
	}

	def := &Definition{id: id, name: name, kind: Alphabet, symbols: symbols}
	for d, s := range symbols {
		p, ok := class[s]
		if !ok {
			return nil, fmt.Errorf("NewAlphabet(%s): digit %d symbol %q: %w", name, d, s, ErrPolarityGap)
		}
		def.yang[d] = p == Yang
	}
	for i, r := range rules {
		if r.A >= digits.Base || r.B >= digits.Base || r.Type == "" {
			return nil, fmt.Errorf("NewAlphabet(%s): rule %d: %w", name, i, ErrBadRule)
		}
	}
	def.rules = append([]PairRule(nil), rules...)

	return def, nil
}

// ID returns the track identifier.
func (d *Definition) ID() ID { return d.id }

// Name returns the human-readable track name.
func (d *Definition) Name() string { return d.name }

// Kind returns Attribute or Alphabet.
func (d *Definition) Kind() Kind { return d.kind }

// Dimensions returns a copy of the observed dimensions (attribute tracks).
func (d *Definition) Dimensions() []attribute.Dimension {
	return append([]attribute.Dimension(nil), d.dims...)
}

// Rules returns a copy of the pair rules in declaration order.
func (d *Definition) Rules() []PairRule {
	return append([]PairRule(nil), d.rules...)
}

// Symbol returns the symbol digit v maps to; attribute tracks return "".
func (d *Definition) Symbol(v uint8) Symbol { return d.symbols[v] }

// IsYang reports whether digit v counts as yang on this track.
func (d *Definition) IsYang(v uint8) bool { return d.yang[v] }

// Complementary reports whether the unordered digit pair {a, b} is declared
// by some rule. Attribute tracks declare none.
func (d *Definition) Complementary(a, b uint8) bool {
	for _, r := range d.rules {
		if (r.A == a && r.B == b) || (r.A == b && r.B == a) {
			return true
		}
	}

	return false
}
