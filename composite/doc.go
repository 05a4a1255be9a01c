// Package composite blends pairing, entropy and pattern statistics into
// bounded scores.
//
// Scores (each in [0, 1]):
//
//	randomness         = min(H / log2(10), 1)
//	pattern_complexity = (min(density·10, 1) + min(patterns/100, 1)) / 2
//	symmetry           = min(R·2, 1)          R: attribute-track state ratio
//	predictability     = min((|r1| + min(density·10, 1)) / 2, 1)
//	overall            = mean of the four
//
// Complexity = 0.4·randomness + 0.3·min(density·10, 1) + 0.2·min(R·2, 1)
// + 0.1·|r1|. Consistency compares density with 1 − randomness and |r1|
// with 2R.
//
// The symmetry score reuses the pairing ratio, not Ω.
package composite
