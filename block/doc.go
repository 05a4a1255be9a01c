// Package block splits digit sequences into 12-digit blocks and each block
// into four 3-digit parts.
//
// What:
//
//   - Partition cuts seq[k·stride : k·stride+12] for every k whose window
//     fits; a trailing remainder shorter than a block is discarded.
//   - Fixed mode uses stride 12 (non-overlapping), Sliding mode stride 5.
//   - Backward partitions the reversed sequence. Block k of the backward
//     series is reverse(seq)[12k : 12k+12], never the forward blocks in
//     reverse order.
//   - Block.Parts returns block[0:3], block[3:6], block[6:9], block[9:12];
//     parts 1↔3 and 2↔4 are the symmetric pairs.
//
// Complexity:
//
//   - O(N/stride) blocks; blocks share the backing array of their input.
//     Backward allocates one reversed copy.
//
// Errors:
//
//   - ErrBadStride: stride ≤ 0.
package block
