// SPDX-License-Identifier: MIT
// Package: ninefold/digits
//
// sequence.go — the validated Sequence type.
//
// Contract:
//   • Values produced by New/Parse/ReadFile are always in 0..9; downstream
//     packages index fixed 10-entry tables with them without re-checking.
//   • Sequences are never mutated by ninefold; Reverse allocates.

package digits

import "fmt"

// Base is the size of the digit alphabet.
const Base = 10

// Sequence is an ordered list of digits in 0..9.
type Sequence []uint8

// New validates raw and converts it to a Sequence. The first offending
// element is reported with its index.
// Complexity: O(N) time, O(N) space.
func New(raw []int) (Sequence, error) {
	seq := make(Sequence, len(raw))
	for i, v := range raw {
		if v < 0 || v >= Base {
			return nil, fmt.Errorf("New: element %d = %d: %w", i, v, ErrOutOfRange)
		}
		seq[i] = uint8(v)
	}

	return seq, nil
}

// MustNew is New for literals in tests and examples; it panics on bad input.
func MustNew(raw ...int) Sequence {
	seq, err := New(raw)
	if err != nil {
		panic(err)
	}

	return seq
}

// Validate reports whether every element of s is a digit. Sequences built
// by conversion (Sequence(b)) bypass New, so entry points call this.
func (s Sequence) Validate() error {
	for i, v := range s {
		if v >= Base {
			return fmt.Errorf("Validate: element %d = %d: %w", i, v, ErrOutOfRange)
		}
	}

	return nil
}

// Reverse returns a reversed copy of s.
func (s Sequence) Reverse() Sequence {
	out := make(Sequence, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}

// Ints converts s back to []int for callers that want plain integers.
func (s Sequence) Ints() []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = int(v)
	}

	return out
}

// Counts returns how often each digit occurs.
func (s Sequence) Counts() [Base]int {
	var c [Base]int
	for _, v := range s {
		c[v]++
	}

	return c
}

// String renders the digits without separators ("31415").
func (s Sequence) String() string {
	b := make([]byte, len(s))
	for i, v := range s {
		b[i] = '0' + v
	}

	return string(b)
}

// MarshalText implements encoding.TextMarshaler; sequences serialise as
// digit strings.
func (s Sequence) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Only digits are
// accepted.
func (s *Sequence) UnmarshalText(b []byte) error {
	out := make(Sequence, len(b))
	for i, c := range b {
		if c < '0' || c > '9' {
			return fmt.Errorf("UnmarshalText: byte %d = %q: %w", i, c, ErrForeignRune)
		}
		out[i] = c - '0'
	}
	*s = out

	return nil
}
