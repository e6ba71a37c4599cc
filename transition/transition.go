// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package transition builds the intermediate trees
// used to smooth the animation
// between two trees with different topologies.
//
// For a pair of trees over the same leaf set
// the full transition has six stages:
//
//	the first tree;
//	the first tree with the branches
//	  absent from the second collapsed to zero length,
//	  and the shared branches set to the average length;
//	the consensus topology
//	  (only the clades present in both trees),
//	  ordered as the first tree;
//	the same consensus ordered as the second tree;
//	the second tree with the branches
//	  absent from the first collapsed and averaged;
//	the second tree.
//
// As every stage pair differs either in branch lengths only,
// or by pure insertions or removals of clades,
// the interpolation between consecutive stages
// is free of large topological jumps.
package transition

import (
	"fmt"
	"slices"

	"github.com/js-arias/treemorph/tree"
)

// Splits returns the branch length of every clade of a tree,
// indexed by the split key of the clade.
func Splits(t *tree.Tree) map[string]float64 {
	sp := make(map[string]float64)
	addSplits(t.Root(), sp)
	return sp
}

func addSplits(n *tree.Node, sp map[string]float64) {
	sp[n.Key()] = n.Length
	for _, c := range n.Children {
		addSplits(c, sp)
	}
}

// Pair returns the six stages of the transition
// between two trees.
// The first and last stages
// are the given trees themselves.
// Both trees must be built over the same taxa list.
func Pair(t1, t2 *tree.Tree) ([]*tree.Tree, error) {
	if !slices.Equal(t1.Taxa(), t2.Taxa()) {
		return nil, fmt.Errorf("trees with different taxa lists")
	}

	s1 := Splits(t1)
	s2 := Splits(t2)

	return []*tree.Tree{
		t1,
		averaged(t1, s2),
		consensus(t1, s2),
		consensus(t2, s1),
		averaged(t2, s1),
		t2,
	}, nil
}

// Sequence expands a list of trees
// with the four intermediate stages
// between every pair of consecutive trees.
func Sequence(trees []*tree.Tree) ([]*tree.Tree, error) {
	if len(trees) == 0 {
		return nil, nil
	}

	out := []*tree.Tree{trees[0]}
	for i := 1; i < len(trees); i++ {
		st, err := Pair(trees[i-1], trees[i])
		if err != nil {
			return nil, fmt.Errorf("trees %d-%d: %v", i-1, i, err)
		}
		out = append(out, st[1:]...)
	}
	return out, nil
}

// averaged returns a copy of a tree
// in which every branch shared with the other tree
// has the average of the two lengths,
// and every branch absent from the other tree
// is collapsed to zero length.
func averaged(t *tree.Tree, other map[string]float64) *tree.Tree {
	nt := t.Copy()
	averageNode(nt.Root(), other)
	nt.Root().Length = 0
	return nt
}

func averageNode(n *tree.Node, other map[string]float64) {
	if l, ok := other[n.Key()]; ok {
		n.Length = (n.Length + l) / 2
	} else {
		n.Length = 0
	}
	for _, c := range n.Children {
		averageNode(c, other)
	}
}

// consensus returns a copy of a tree
// in which every internal node absent from the other tree
// is removed,
// splicing its children in its place,
// so only the clades present in both trees remain.
// The node order of the source tree is preserved.
func consensus(t *tree.Tree, other map[string]float64) *tree.Tree {
	nt := t.Copy()
	consensusNode(nt.Root(), other)
	nt.Root().Length = 0
	return nt
}

func consensusNode(n *tree.Node, other map[string]float64) {
	if l, ok := other[n.Key()]; ok {
		n.Length = (n.Length + l) / 2
	}

	var kept []*tree.Node
	for _, c := range n.Children {
		consensusNode(c, other)
		if c.IsLeaf() {
			kept = append(kept, c)
			continue
		}
		if _, ok := other[c.Key()]; !ok {
			// the clade is not in the other tree:
			// splice its children in place
			kept = append(kept, c.Children...)
			continue
		}
		kept = append(kept, c)
	}
	n.Children = kept
}
