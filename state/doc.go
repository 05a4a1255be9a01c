// Package state encodes 3-bit attribute patterns into one of eight discrete
// states and defines the complementary pairing rule between states.
//
// What:
//
//   - Encode maps a 3-bit tuple to an ID in 1..8 with (1,1,1)→1 … (0,0,0)→8.
//   - Complement returns the state whose bits are all inverted: 9 − s.
//   - Pairs reports whether two states are complementary (s + t == 9).
//   - Decode is the inverse of Encode.
//
// Why:
//
//   - Every block-level score in ninefold reduces a 3-digit part to a state
//     and asks whether symmetric parts hold complementary states.
//
// Complexity:
//
//   - All operations are O(1) and allocation-free.
//
// Errors:
//
//   - ErrBadBits: tuple length ≠ 3 or a value other than 0/1.
//   - ErrBadState: state outside 1..8.
package state
