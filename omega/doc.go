// Package omega folds forward/backward pairing-ratio differences into the
// scalar Ω and classifies it.
//
//	ΔR_i = |R_forward,i − R_backward,i|
//	Ω    = sqrt(Σ ΔR_i²)
//
// The canonical basis is the four dimensions of the attribute track
// (scale, position, parity, relation). BasisTracks uses one primary ratio
// per track instead.
//
// Thresholds are empirical calibration constants, not derived ones: the
// defaults (weak 0.040158, strong 0.060237) come from the latest
// calibration over random sequences, see package calibrate. Ω below Weak
// is random-like, below Strong weak structure, otherwise strong structure.
//
// Ω ≥ 0 always, and Ω = 0 exactly when every ΔR is 0.
package omega
