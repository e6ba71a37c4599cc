// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package morph

// A State indicates the lifecycle of an element
// during a transition between two trees.
type State int

const (
	// The element is present in both trees.
	Update State = iota

	// The element is only present in the destination tree.
	Entering

	// The element is only present in the source tree.
	Exiting
)

// Match pairs the elements of two keyed sequences
// and interpolates each pair at time t.
//
// Elements are paired only by their identifier:
// geometric proximity is never used.
// An element present in both sequences
// is interpolated between its two versions.
// An element only present in the destination sequence
// enters at its final geometry
// (the interpolation function is called at t = 1).
// An element only present in the source sequence
// exits at its initial geometry
// (the interpolation function is called at t = 0).
//
// The result preserves the order of the destination sequence,
// with the exiting elements appended at the end,
// so the number of emitted elements
// is the number of destination elements
// plus the number of source-only elements.
func Match[E, R any](from, to []E, id func(E) string, f func(from, to E, t float64, st State) R, t float64) []R {
	fromMap := make(map[string]E, len(from))
	for _, e := range from {
		fromMap[id(e)] = e
	}

	out := make([]R, 0, len(to))
	seen := make(map[string]bool, len(to))
	for _, e := range to {
		k := id(e)
		seen[k] = true
		if fe, ok := fromMap[k]; ok {
			out = append(out, f(fe, e, t, Update))
			continue
		}
		out = append(out, f(e, e, 1, Entering))
	}

	for _, e := range from {
		if seen[id(e)] {
			continue
		}
		out = append(out, f(e, e, 0, Exiting))
	}
	return out
}
