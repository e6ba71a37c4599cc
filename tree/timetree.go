// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/js-arias/timetree"
)

// MillionYears is the scale
// used to convert the ages of a time calibrated tree
// into branch lengths.
const MillionYears = 1_000_000

// FromTimetree creates an input tree
// from a time calibrated tree,
// using the difference between the age of a node
// and the age of its parent
// as the branch length,
// in million years.
//
// The taxa list defines the leaf-index assignment
// as in New;
// if empty,
// the order of appearance of the terminals is used.
func FromTimetree(t *timetree.Tree, taxa []string) (*Tree, error) {
	if t == nil {
		return nil, errEmptyTree
	}

	ids := make(map[int]*Node)
	var root *Node
	for _, id := range t.Nodes() {
		n := &Node{
			Name: t.Taxon(id),
		}
		p := t.Parent(id)
		if p < 0 {
			root = n
		} else {
			anc, ok := ids[p]
			if !ok {
				return nil, fmt.Errorf("tree %q: node %d: parent %d not defined", t.Name(), id, p)
			}
			n.Length = float64(t.Age(p)-t.Age(id)) / MillionYears
			anc.Children = append(anc.Children, n)
		}
		ids[id] = n
	}
	if root == nil {
		return nil, fmt.Errorf("tree %q: %v", t.Name(), errEmptyTree)
	}

	nt, err := New(root, taxa)
	if err != nil {
		return nil, fmt.Errorf("tree %q: %v", t.Name(), err)
	}
	return nt, nil
}
