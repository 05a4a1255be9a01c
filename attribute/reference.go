// SPDX-License-Identifier: MIT
// Package: ninefold/attribute
//
// reference.go — the reference table used by Default().
//
// Layout (digit: scale level position parity):
//   0: 0 5 0 0   1: 1 1 1 1   2: 1 2 1 0   3: 1 3 1 1   4: 1 4 0 0
//   5: 1 5 0 1   6: 0 1 1 0   7: 0 2 1 1   8: 0 3 1 0   9: 0 4 0 1
// Small digits are 1..5, up digits are {1,2,3,6,7,8}, parity is d mod 2.

package attribute

// ReferenceProfiles is the reference digit → profile mapping.
var ReferenceProfiles = Profiles{
	0: {Scale: 0, Level: 5, Position: 0, Parity: 0},
	1: {Scale: 1, Level: 1, Position: 1, Parity: 1},
	2: {Scale: 1, Level: 2, Position: 1, Parity: 0},
	3: {Scale: 1, Level: 3, Position: 1, Parity: 1},
	4: {Scale: 1, Level: 4, Position: 0, Parity: 0},
	5: {Scale: 1, Level: 5, Position: 0, Parity: 1},
	6: {Scale: 0, Level: 1, Position: 1, Parity: 0},
	7: {Scale: 0, Level: 2, Position: 1, Parity: 1},
	8: {Scale: 0, Level: 3, Position: 1, Parity: 0},
	9: {Scale: 0, Level: 4, Position: 0, Parity: 1},
}

// ReferenceRelation is the reference level relation matrix.
var ReferenceRelation = RelationMatrix{
	{0, 0, 1, 1, 0},
	{0, 0, 1, 0, 1},
	{1, 1, 0, 0, 0},
	{1, 0, 0, 0, 1},
	{0, 1, 0, 1, 0},
}

var defaultTable = mustTable(ReferenceProfiles, ReferenceRelation)

// Default returns the shared reference table. It is immutable.
func Default() *Table { return defaultTable }

func mustTable(p Profiles, r RelationMatrix) *Table {
	t, err := NewTable(p, r)
	if err != nil {
		panic(err)
	}

	return t
}
