// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package transition_test

import (
	"math"
	"testing"

	"github.com/js-arias/treemorph/transition"
	"github.com/js-arias/treemorph/tree"
)

var testTaxa = []string{"A", "B", "C", "D"}

func newTree(t testing.TB, root *tree.Node) *tree.Tree {
	t.Helper()

	nt, err := tree.New(root, testTaxa)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return nt
}

// treeAB is "((A:2,B:1):1,(C:1,D:1.5):2);".
func treeAB(t testing.TB) *tree.Tree {
	return newTree(t, &tree.Node{
		Children: []*tree.Node{
			{
				Length: 1,
				Children: []*tree.Node{
					{Name: "A", Length: 2},
					{Name: "B", Length: 1},
				},
			},
			{
				Length: 2,
				Children: []*tree.Node{
					{Name: "C", Length: 1},
					{Name: "D", Length: 1.5},
				},
			},
		},
	})
}

// treeAC is "((A:1,C:2):1.5,(B:1,D:1):1);",
// a different topology over the same taxa.
func treeAC(t testing.TB) *tree.Tree {
	return newTree(t, &tree.Node{
		Children: []*tree.Node{
			{
				Length: 1.5,
				Children: []*tree.Node{
					{Name: "A", Length: 1},
					{Name: "C", Length: 2},
				},
			},
			{
				Length: 1,
				Children: []*tree.Node{
					{Name: "B", Length: 1},
					{Name: "D", Length: 1},
				},
			},
		},
	})
}

func TestSplits(t *testing.T) {
	sp := transition.Splits(treeAB(t))

	want := map[string]float64{
		"0-1-2-3": 0,
		"0-1":     1,
		"2-3":     2,
		"0":       2,
		"1":       1,
		"2":       1,
		"3":       1.5,
	}
	if len(sp) != len(want) {
		t.Errorf("splits: got %d, want %d", len(sp), len(want))
	}
	for k, w := range want {
		g, ok := sp[k]
		if !ok {
			t.Errorf("split %q: not found", k)
			continue
		}
		if math.Abs(g-w) > 1e-9 {
			t.Errorf("split %q: length %.6f, want %.6f", k, g, w)
		}
	}
}

func TestPair(t *testing.T) {
	t1 := treeAB(t)
	t2 := treeAC(t)

	stages, err := transition.Pair(t1, t2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stages) != 6 {
		t.Fatalf("stages: got %d, want 6", len(stages))
	}
	if stages[0] != t1 || stages[5] != t2 {
		t.Errorf("the first and last stages must be the input trees")
	}

	// averaged stage of the first tree:
	// leaves get the average length,
	// clades unique to the first tree collapse to 0
	zw1 := transition.Splits(stages[1])
	if got := zw1["0"]; math.Abs(got-1.5) > 1e-9 {
		t.Errorf("averaged leaf A: length %.6f, want 1.5", got)
	}
	if got := zw1["0-1"]; got != 0 {
		t.Errorf("collapsed clade AB: length %.6f, want 0", got)
	}
	if got := zw1["2-3"]; got != 0 {
		t.Errorf("collapsed clade CD: length %.6f, want 0", got)
	}

	// the consensus stages keep only the shared clades
	cons1 := transition.Splits(stages[2])
	if _, ok := cons1["0-1"]; ok {
		t.Errorf("consensus keeps clade AB")
	}
	if _, ok := cons1["0-2"]; ok {
		t.Errorf("consensus keeps clade AC")
	}
	wantCons := []string{"0-1-2-3", "0", "1", "2", "3"}
	if len(cons1) != len(wantCons) {
		t.Errorf("consensus splits: got %d, want %d", len(cons1), len(wantCons))
	}
	for _, k := range wantCons {
		if _, ok := cons1[k]; !ok {
			t.Errorf("consensus split %q: not found", k)
		}
	}

	// the consensus root is a polytomy with the four leaves
	if got := len(stages[2].Root().Children); got != 4 {
		t.Errorf("consensus root children: got %d, want 4", got)
	}

	// averaged stage of the second tree
	zw2 := transition.Splits(stages[4])
	if got := zw2["0"]; math.Abs(got-1.5) > 1e-9 {
		t.Errorf("averaged leaf A: length %.6f, want 1.5", got)
	}
	if got := zw2["0-2"]; got != 0 {
		t.Errorf("collapsed clade AC: length %.6f, want 0", got)
	}

	// the input trees are never modified
	orig := transition.Splits(t1)
	if math.Abs(orig["0-1"]-1) > 1e-9 {
		t.Errorf("the source tree was modified")
	}
}

func TestPairSameTree(t *testing.T) {
	t1 := treeAB(t)
	t2 := treeAB(t)

	stages, err := transition.Pair(t1, t2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// with identical topologies every stage
	// has the same splits with the same lengths
	want := transition.Splits(t1)
	for i, st := range stages {
		got := transition.Splits(st)
		if len(got) != len(want) {
			t.Errorf("stage %d: splits: got %d, want %d", i, len(got), len(want))
		}
		for k, w := range want {
			g, ok := got[k]
			if !ok {
				t.Errorf("stage %d: split %q: not found", i, k)
				continue
			}
			if math.Abs(g-w) > 1e-9 {
				t.Errorf("stage %d: split %q: length %.6f, want %.6f", i, k, g, w)
			}
		}
	}
}

func TestPairDifferentTaxa(t *testing.T) {
	t1 := treeAB(t)

	other, err := tree.New(&tree.Node{
		Children: []*tree.Node{
			{Name: "X", Length: 1},
			{Name: "Y", Length: 1},
		},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := transition.Pair(t1, other); err == nil {
		t.Errorf("trees with different taxa: expecting error")
	}
}

func TestSequence(t *testing.T) {
	t1 := treeAB(t)
	t2 := treeAC(t)
	t3 := treeAB(t)

	seq, err := transition.Sequence([]*tree.Tree{t1, t2, t3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// each pair adds five stages after the first tree
	if got, want := len(seq), 1+5+5; got != want {
		t.Errorf("sequence: got %d trees, want %d", got, want)
	}
	if seq[0] != t1 || seq[5] != t2 || seq[10] != t3 {
		t.Errorf("the input trees must appear in the sequence")
	}
}
