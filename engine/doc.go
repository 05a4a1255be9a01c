// Package engine is the entry point of ninefold: it analyses a digit
// sequence on every configured track in both directions and reduces the
// results to Ω.
//
// What:
//
//   - Forward analysis runs each track over the sequence; backward analysis
//     runs it over the reversed sequence (reverse first, then partition).
//   - Each track gets a symmetry record; alphabet tracks also get a direct
//     adjacent-pairing comparison.
//   - Ω is the Euclidean norm of the forward/backward ratio differences on
//     the configured basis, classified by the configured thresholds.
//   - Optionally (WithComposite) the report carries composite scores.
//
// Why:
//
//   - The engine owns no mutable state after New; one *Engine may be shared
//     by any number of goroutines.
//
// Defaults:
//
//   - Fixed mode (stride 12), reference attribute table and tracks,
//     dimension basis, thresholds weak 0.040158 / strong 0.060237.
//
// Errors:
//
//   - ErrInvalidInput: a value outside 0..9, or an empty sequence when
//     composite scores are requested. Nothing is returned with it.
//   - ErrInsufficientLength: not returned as an error; Report.Warning
//     reports it when the sequence is shorter than one block and every
//     pairing result is zero.
//   - ErrNoAttributeTrack: dimension basis without an attribute track.
package engine
