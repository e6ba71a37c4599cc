// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package morph

import (
	"iter"

	"github.com/js-arias/treemorph/radial"
	"gonum.org/v1/gonum/floats"
)

// Sequence returns the frames of a full playback
// over a list of laid out trees:
// for every pair of consecutive trees
// it yields the given number of frames,
// with the time factor evenly spaced
// from 0 to 1.
//
// The sequence is lazy and finite,
// and it can be ranged over more than once.
func (e *Engine) Sequence(trees []*radial.Tree, frames int, o Options) iter.Seq[*Frame] {
	if frames < 2 {
		frames = 2
	}
	ts := floats.Span(make([]float64, frames), 0, 1)

	return func(yield func(*Frame) bool) {
		for i := 1; i < len(trees); i++ {
			e.ResetCaches()
			for _, t := range ts {
				f, err := e.Frame(trees[i-1], trees[i], t, o)
				if err != nil {
					e.logger.Error("invalid tree pair", "from", i-1, "to", i, "error", err)
					return
				}
				if !yield(f) {
					return
				}
			}
		}
	}
}
