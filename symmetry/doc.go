// Package symmetry compares a track's forward analysis with its backward
// analysis and summarises symmetry across tracks.
//
// Similarity of two values is 1 − |f − b|, or 0 when the difference
// exceeds 1. Compare averages:
//
//   - state-pairing ratio similarity,
//   - global-pairing ratio similarity (alphabet tracks only; omitted for
//     attribute tracks, not zero-filled),
//   - yang-percent similarity.
//
// Direct adjacent pairing is compared separately (CompareDirect) and does
// not enter Overall.
//
// Summarize grades each track high (> 0.8), medium (> 0.4) or low, and
// reports mean, extremes and range.
package symmetry
