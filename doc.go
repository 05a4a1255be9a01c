// Package ninefold measures the structural forward/backward symmetry of
// decimal digit sequences and condenses it into a single score, Ω.
//
// 🚀 What is ninefold?
//
//	A deterministic, side-effect-free analysis engine plus a small CLI:
//		• Attribute states: each 3-digit part becomes one of 8 states
//		• Tracks: one attribute track and three alphabet tracks pair digits
//		• Directions: every track is read forward and backward
//		• Ω: the Euclidean norm of forward/backward ratio gaps, graded none / weak / strong
//		• Extras: statistics, pattern detection, composite scores, DNA input
//
// ✨ Why ninefold?
//
//   - Deterministic – same digits and options, same report, bit for bit
//   - Pure Go – modernc sqlite for the cache, no cgo
//   - Calibrated – thresholds come from seeded random baselines
//
// Packages, bottom-up:
//
//	digits/    — Sequence type, parsing of constant files
//	state/     — 3-bit state encoding, complements, pairing predicate
//	attribute/ — per-digit profiles and the relation matrix
//	track/     — attribute and alphabet track definitions, reference set
//	block/     — 12-digit blocks, fixed and sliding partitioning
//	pairing/   — state, global, direct and polarity pairing
//	symmetry/  — forward/backward similarity and cross-track summary
//	omega/     — deltas, Ω, thresholds and levels
//	stats/     — distribution, entropy, moments, runs test
//	pattern/   — repetitions, monotone runs, frequent pairs
//	composite/ — randomness / complexity / symmetry / predictability scores
//	engine/    — the Engine entry point and its Report
//	dna/       — DNA base-pair to digit encoding
//	calibrate/ — threshold calibration on random sequences
//	store/     — sqlite report cache
//	batch/     — bounded parallel analysis with Ω ranking
//	report/    — JSON, YAML and table rendering
//	cmd/ninefold — the command-line tool
//
// Quick example:
//
//	e := engine.Default()
//	rep, err := e.Analyze([]int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3})
//	if err != nil {
//		// a value outside 0..9
//	}
//	fmt.Printf("Ω=%.4f level=%s\n", rep.Omega, rep.Level)
package ninefold
