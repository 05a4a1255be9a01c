// SPDX-License-Identifier: MIT
// Package: ninefold/track
//
// set.go — ordered track collections.

package track

import "fmt"

// Set is an ordered list of tracks with unique IDs.
type Set []*Definition

// Validate checks that s is non-empty and its IDs are unique.
func (s Set) Validate() error {
	if len(s) == 0 {
		return ErrEmptySet
	}
	seen := make(map[ID]bool, len(s))
	for _, d := range s {
		if seen[d.ID()] {
			return fmt.Errorf("Set.Validate: %s: %w", d.ID(), ErrDuplicateID)
		}
		seen[d.ID()] = true
	}

	return nil
}

// Get returns the track with the given ID, or nil.
func (s Set) Get(id ID) *Definition {
	for _, d := range s {
		if d.ID() == id {
			return d
		}
	}

	return nil
}

// Of returns the tracks of one kind, preserving order.
func (s Set) Of(k Kind) Set {
	var out Set
	for _, d := range s {
		if d.Kind() == k {
			out = append(out, d)
		}
	}

	return out
}
