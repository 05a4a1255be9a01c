// Package digits holds the validated digit sequence consumed by every
// ninefold analysis, plus the ingestion helpers that produce it.
//
// What:
//
//   - Sequence is an ordered list of base-10 digits (values 0..9).
//   - New validates an []int and rejects any value outside 0..9.
//   - Parse extracts digits from constant files ("3.1415 9265…"),
//     skipping separators; ReadFile does the same from disk with a limit.
//   - Reverse returns the full reversal used by backward analysis.
//
// Errors:
//
//   - ErrOutOfRange: an element is not a decimal digit.
//   - ErrForeignRune: Parse met a rune that is neither a digit nor a separator
//     while running in strict mode.
package digits
