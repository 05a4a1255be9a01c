// Package pairing scores one track over one digit sequence.
//
// What:
//
//   - StatePairs: for every block and every observed dimension, encode the
//     four parts to states and count part1↔part3 and part2↔part4 pairs whose
//     states sum to 9. Results are kept per dimension and in aggregate.
//   - GlobalPairs: walk an alphabet track's rules in declaration order over
//     the digit multiset. Equal-digit rules take ⌊rem/2⌋ pairs, others
//     min(rem[a], rem[b]); consumed units are removed before the next rule.
//     total = ⌊N/2⌋.
//   - DirectPairs: non-overlapping neighbours (s[2i], s[2i+1]) checked
//     against the rule table.
//   - Polarity: yang/yin counts over the whole sequence.
//   - AnalyzeTrack: all of the above for one track in one direction.
//
// Ratios of 0/0 are 0. AnalyzeTrack returns zero pairing results for
// sequences shorter than one block and still reports polarity.
//
// Complexity:
//
//   - StatePairs O(B·D) for B blocks and D dimensions, GlobalPairs O(N + R),
//     DirectPairs O(N·R), Polarity O(N).
//
// Errors:
//
//   - ErrNilTrack, ErrNilTable: missing configuration.
//   - block.ErrBadStride is passed through from partitioning.
package pairing
