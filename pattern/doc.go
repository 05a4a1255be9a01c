// Package pattern detects repeated, monotone and paired sub-strings in a
// digit sequence and condenses them into density and scores.
//
// What:
//
//   - Repetitions: every sub-string of length 2..min(20, N/2) seen at least
//     twice, ordered by length then first occurrence. Score = count·length.
//   - Sequential: maximal runs of +1 (increasing) or −1 (decreasing) steps
//     spanning at least 3 digits.
//   - Pairs: the ten most frequent adjacent pairs occurring at least 3 times.
//   - RepetitionScore: the longest L ≤ 10 with s[i:i+L] == s[i+L:i+2L].
//   - PairScore: the count of the most frequent adjacent pair.
//   - SequentialScore: positions i with |Δ| = 1 at both i and i+1.
//   - Density: Σ length·count over all patterns, divided by N.
//
// Complexity:
//
//   - Repetitions O(20·N) with hashing, the rest O(N).
package pattern
