// SPDX-License-Identifier: MIT
// Package: ninefold/attribute
//
// table.go — the immutable attribute table and dimension readers.
//
// Contract:
//   • A *Table is total over digits 0..9 and never mutated after NewTable.
//   • PartState is pure: same part and dimension ⇒ same state.
//   • Callers pass validated digits (digits.Sequence); lookups do not re-check.

package attribute

import (
	"fmt"

	"github.com/katalvlaran/ninefold/state"
)

// Table bundles the per-digit profiles and the relation matrix.
type Table struct {
	profiles Profiles
	relation RelationMatrix
}

// NewTable validates and freezes a table. Inputs are copied.
func NewTable(p Profiles, r RelationMatrix) (*Table, error) {
	for d, pr := range p {
		if pr.Scale > 1 || pr.Position > 1 || pr.Parity > 1 {
			return nil, fmt.Errorf("NewTable: digit %d: %w", d, ErrBadProfile)
		}
		if pr.Level < 1 || pr.Level > Levels {
			return nil, fmt.Errorf("NewTable: digit %d level %d: %w", d, pr.Level, ErrBadProfile)
		}
	}
	for i := range r {
		for j, v := range r[i] {
			if v > 1 {
				return nil, fmt.Errorf("NewTable: R[%d][%d]=%d: %w", i, j, v, ErrBadRelation)
			}
		}
	}

	return &Table{profiles: p, relation: r}, nil
}

// Profile returns the attributes of digit d.
func (t *Table) Profile(d uint8) Profile { return t.profiles[d] }

// Profiles returns a copy of the full mapping.
func (t *Table) Profiles() Profiles { return t.profiles }

// Matrix returns a copy of the relation matrix.
func (t *Table) Matrix() RelationMatrix { return t.relation }

// Relation returns R(li, lj) for levels in 1..5.
func (t *Table) Relation(li, lj uint8) (uint8, error) {
	if li < 1 || li > Levels || lj < 1 || lj > Levels {
		return 0, fmt.Errorf("Relation(%d,%d): %w", li, lj, ErrBadLevel)
	}

	return t.relation[li-1][lj-1], nil
}

// Bit returns the single-digit bit of a per-digit dimension. Relation is a
// property of a whole part, so Bit(d, Relation) reports 0.
func (t *Table) Bit(d uint8, dim Dimension) uint8 {
	p := t.profiles[d]
	switch dim {
	case Scale:
		return p.Scale
	case Position:
		return p.Position
	case Parity:
		return p.Parity
	default:
		return 0
	}
}

// PartBits returns the 3-bit pattern of a part under dim.
//
// For Scale/Position/Parity the bits are the digits' own bits in order.
// For Relation, with levels (x, y, z), the bits are (R(x,y), R(y,z), R(z,x)).
func (t *Table) PartBits(part []uint8, dim Dimension) ([state.Width]uint8, error) {
	var bits [state.Width]uint8
	if len(part) != state.Width {
		return bits, fmt.Errorf("PartBits(len=%d): %w", len(part), ErrBadPart)
	}
	switch dim {
	case Scale, Position, Parity:
		for i, d := range part {
			bits[i] = t.Bit(d, dim)
		}
	case Relation:
		x, y, z := t.profiles[part[0]].Level, t.profiles[part[1]].Level, t.profiles[part[2]].Level
		bits[0] = t.relation[x-1][y-1]
		bits[1] = t.relation[y-1][z-1]
		bits[2] = t.relation[z-1][x-1]
	default:
		return bits, fmt.Errorf("PartBits(dim=%d): %w", dim, ErrBadDimension)
	}

	return bits, nil
}

// PartState encodes the part's pattern under dim. Malformed parts yield
// state.Invalid, which never pairs.
func (t *Table) PartState(part []uint8, dim Dimension) state.ID {
	bits, err := t.PartBits(part, dim)
	if err != nil {
		return state.Invalid
	}

	return state.Encode(bits[0], bits[1], bits[2])
}
