// SPDX-License-Identifier: MIT
// Package: ninefold/dna
//
// dna.go — encoder, decoder and composition statistics.

package dna

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/ninefold/digits"
)

// Scheme selects the encoding.
type Scheme string

// Encoding schemes.
const (
	Pair   Scheme = "pair"
	Simple Scheme = "simple"
)

// ReverseMark flags a pair stored in mirror order.
const ReverseMark = "←"

// PairType classifies a base pair.
type PairType string

// Pair types.
const (
	Homo          PairType = "homo"
	WatsonCrickAT PairType = "watson_crick_at"
	WatsonCrickCG PairType = "watson_crick_cg"
	Mismatch      PairType = "mismatch"
)

var canonical = [digits.Base]string{"AA", "AC", "AG", "AT", "CC", "CG", "CT", "GG", "GT", "TT"}

var pairCode = func() map[string]uint8 {
	m := make(map[string]uint8, 16)
	for d, p := range canonical {
		m[p] = uint8(d)
		m[string([]byte{p[1], p[0]})] = uint8(d)
	}

	return m
}()

const bases = "ACGT"

// Unit describes how one digit was produced.
type Unit struct {
	Bases     string   `json:"bases" yaml:"bases"`
	Code      uint8    `json:"code" yaml:"code"`
	Forward   bool     `json:"forward" yaml:"forward"`
	Direction string   `json:"direction_mark" yaml:"direction_mark"`
	PairType  PairType `json:"pair_type,omitempty" yaml:"pair_type,omitempty"`
}

// Stats summarises base composition.
type Stats struct {
	TotalBases   int              `json:"total_bases" yaml:"total_bases"`
	GCCount      int              `json:"gc_count" yaml:"gc_count"`
	ATCount      int              `json:"at_count" yaml:"at_count"`
	GCContent    float64          `json:"gc_content" yaml:"gc_content"`
	Distribution [digits.Base]int `json:"digit_distribution" yaml:"digit_distribution"`
	UniqueDigits int              `json:"unique_digits" yaml:"unique_digits"`
}

// Encoding is the result of Encode.
type Encoding struct {
	Scheme    Scheme          `json:"encoding_scheme" yaml:"encoding_scheme"`
	DNA       string          `json:"dna_sequence" yaml:"dna_sequence"`
	Digits    digits.Sequence `json:"encoded_digits" yaml:"encoded_digits"`
	Marks     []string        `json:"direction_flags,omitempty" yaml:"direction_flags,omitempty"`
	Units     []Unit          `json:"encoding_details" yaml:"encoding_details"`
	Truncated bool            `json:"truncated" yaml:"truncated"`
	Stats     Stats           `json:"stats" yaml:"stats"`
}

// Normalize upper-cases s, removes whitespace and rejects other non-base
// characters.
func Normalize(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		r = unicode.ToUpper(r)
		if !strings.ContainsRune(bases, r) {
			return "", fmt.Errorf("Normalize: %q at byte %d: %w", r, i, ErrBadBase)
		}
		b.WriteRune(r)
	}

	return b.String(), nil
}

// ClassifyPair returns the type of a two-base pair.
func ClassifyPair(p string) PairType {
	switch {
	case p[0] == p[1]:
		return Homo
	case p == "AT" || p == "TA":
		return WatsonCrickAT
	case p == "CG" || p == "GC":
		return WatsonCrickCG
	default:
		return Mismatch
	}
}

// Encode converts s under scheme.
func Encode(s string, scheme Scheme) (Encoding, error) {
	seq, err := Normalize(s)
	if err != nil {
		return Encoding{}, fmt.Errorf("Encode: %w", err)
	}
	enc := Encoding{Scheme: scheme}

	switch scheme {
	case Simple:
		enc.DNA = seq
		enc.Digits = make(digits.Sequence, len(seq))
		for i := 0; i < len(seq); i++ {
			c := uint8(strings.IndexByte(bases, seq[i]))
			enc.Digits[i] = c
			enc.Units = append(enc.Units, Unit{Bases: seq[i : i+1], Code: c, Forward: true})
		}
	default:
		enc.Scheme = Pair
		if len(seq)%2 == 1 {
			seq = seq[:len(seq)-1]
			enc.Truncated = true
		}
		enc.DNA = seq
		enc.Digits = make(digits.Sequence, 0, len(seq)/2)
		enc.Marks = make([]string, 0, len(seq)/2)
		for i := 0; i+1 < len(seq); i += 2 {
			p := seq[i : i+2]
			c := pairCode[p]
			fwd := p == canonical[c]
			mark := ""
			if !fwd {
				mark = ReverseMark
			}
			enc.Digits = append(enc.Digits, c)
			enc.Marks = append(enc.Marks, mark)
			enc.Units = append(enc.Units, Unit{Bases: p, Code: c, Forward: fwd, Direction: mark, PairType: ClassifyPair(p)})
		}
	}
	enc.Stats = composition(enc.DNA, enc.Digits)

	return enc, nil
}

// Decode rebuilds the DNA string of a pair encoding. Missing marks mean
// forward.
func Decode(d digits.Sequence, marks []string) (string, error) {
	var b strings.Builder
	b.Grow(2 * len(d))
	for i, c := range d {
		if c >= digits.Base {
			return "", fmt.Errorf("Decode: element %d = %d: %w", i, c, ErrBadDigit)
		}
		p := canonical[c]
		if i < len(marks) && marks[i] == ReverseMark {
			p = string([]byte{p[1], p[0]})
		}
		b.WriteString(p)
	}

	return b.String(), nil
}

// DecodeEncoding is Decode on the digits and marks of enc.
func DecodeEncoding(enc Encoding) (string, error) {
	if enc.Scheme != Pair {
		return "", ErrNotDecodable
	}

	return Decode(enc.Digits, enc.Marks)
}

func composition(s string, d digits.Sequence) Stats {
	st := Stats{TotalBases: len(s), Distribution: d.Counts()}
	for i := 0; i < len(s); i++ {
		if s[i] == 'G' || s[i] == 'C' {
			st.GCCount++
		}
	}
	st.ATCount = st.TotalBases - st.GCCount
	if st.TotalBases > 0 {
		st.GCContent = float64(st.GCCount) / float64(st.TotalBases)
	}
	for _, c := range st.Distribution {
		if c > 0 {
			st.UniqueDigits++
		}
	}

	return st
}
