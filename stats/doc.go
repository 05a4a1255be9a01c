// Package stats computes descriptive statistics of a digit sequence.
//
// What:
//
//   - Distribution (share of each digit), Shannon entropy in bits.
//   - Mean, population variance and standard deviation.
//   - Skewness (n ≥ 3) and excess kurtosis (n ≥ 4); 0 when σ = 0.
//   - Lag-1 Pearson correlation between s[:n-1] and s[1:]; 0 when undefined.
//   - Runs test over digit changes: runs, expected runs, σ and z-score.
//   - Percentiles p10..p90 as sorted[⌊n·q⌋].
//
// All functions accept the empty sequence and return zeros for it.
//
// Complexity:
//
//   - O(N) time; percentiles read the digit histogram instead of sorting.
package stats
