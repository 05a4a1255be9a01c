// Package attribute defines the fixed per-digit attribute profiles and the
// 5×5 relation matrix from which ninefold derives its four analysis
// dimensions.
//
// What:
//
//   - Profile: scale (1 = small), level (1..5), position (1 = up) and
//     parity (1 = odd) of one digit.
//   - RelationMatrix: binary "generative/destructive" relation between two
//     levels, indexed by level−1; not symmetric in general.
//   - Table: the immutable pair (10 profiles, relation matrix). Default()
//     returns the reference table.
//   - Dimension: Scale, Position, Parity read one bit per digit; Relation
//     reads the ring (x→y, y→z, z→x) of a 3-digit part through the matrix.
//
// Why:
//
//   - The block pairing score (package pairing) needs, for every 3-digit
//     part and every dimension, a 3-bit pattern to encode into a state.
//
// Complexity:
//
//   - Bit / PartState: O(1). NewTable: O(1) (fixed-size validation).
//
// Errors:
//
//   - ErrBadProfile: a profile field outside its domain.
//   - ErrBadRelation: a matrix entry other than 0/1.
//   - ErrBadLevel: a level outside 1..5 passed to Relation.
//   - ErrBadPart: a part that is not exactly three digits.
package attribute
