// Package calibrate derives Ω thresholds from random digit sequences.
//
// Run draws Trials uniform sequences of Length digits, computes Ω for each
// on a caller-supplied engine and reports mean, standard deviation, p95
// and suggested thresholds weak = p95·1.1, strong = p95·1.65.
//
// Trial i is generated from seed+i, so the result does not depend on the
// parallelism; the same seed always yields the same thresholds.
// Trials run on an errgroup bounded by Parallel and stop early when ctx is
// cancelled.
package calibrate
