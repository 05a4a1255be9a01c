// Package track defines the independently configured lenses ("tracks")
// through which a digit sequence is scored.
//
// Two kinds exist:
//
//   - Attribute tracks observe one or more attribute.Dimension values and are
//     scored by block state pairing. Their polarity is a fixed digit range.
//   - Alphabet tracks map each digit to a symbol, partition the symbols into
//     yang and yin, and declare an ordered table of complementary digit pairs.
//     They are scored by whole-sequence multiset pairing.
//
// Reference() returns the four reference tracks (one attribute track over
// all four dimensions, three alphabet tracks). Definitions are immutable
// once built; accessors return copies.
//
// Errors:
//
//   - ErrNoDimensions, ErrPolarityOverlap, ErrPolarityGap, ErrBadRule,
//     ErrDuplicateID, ErrEmptySet.
package track
