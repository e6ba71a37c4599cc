// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"slices"
	"testing"

	"github.com/js-arias/treemorph/tree"
)

// newTestTree returns the tree "((A,B),(C,D));"
// with unit branch lengths.
func newTestTree(t testing.TB) *tree.Tree {
	t.Helper()

	root := &tree.Node{
		Children: []*tree.Node{
			{
				Length: 1,
				Children: []*tree.Node{
					{Name: "A", Length: 1},
					{Name: "B", Length: 1},
				},
			},
			{
				Length: 1,
				Children: []*tree.Node{
					{Name: "C", Length: 1},
					{Name: "D", Length: 1},
				},
			},
		},
	}
	nt, err := tree.New(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return nt
}

func TestNew(t *testing.T) {
	nt := newTestTree(t)

	if got := nt.Leaves(); got != 4 {
		t.Errorf("leaves: got %d, want %d", got, 4)
	}
	wantTaxa := []string{"A", "B", "C", "D"}
	if got := nt.Taxa(); !slices.Equal(got, wantTaxa) {
		t.Errorf("taxa: got %v, want %v", got, wantTaxa)
	}

	root := nt.Root()
	if want := []int{0, 1, 2, 3}; !slices.Equal(root.Split, want) {
		t.Errorf("root split: got %v, want %v", root.Split, want)
	}
	if root.Length != 0 {
		t.Errorf("root length: got %.6f, want 0", root.Length)
	}
	if want := []int{0, 1}; !slices.Equal(root.Children[0].Split, want) {
		t.Errorf("first clade split: got %v, want %v", root.Children[0].Split, want)
	}
	if want := []int{2, 3}; !slices.Equal(root.Children[1].Split, want) {
		t.Errorf("second clade split: got %v, want %v", root.Children[1].Split, want)
	}
}

func TestNewWithTaxaList(t *testing.T) {
	root := &tree.Node{
		Children: []*tree.Node{
			{Name: "C", Length: 1},
			{
				Length: 1,
				Children: []*tree.Node{
					{Name: "A", Length: 1},
					{Name: "B", Length: 1},
				},
			},
		},
	}
	nt, err := tree.New(root, []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// leaf C must have the index of the taxa list,
	// not its traversal position
	if want := []int{2}; !slices.Equal(nt.Root().Children[0].Split, want) {
		t.Errorf("leaf C split: got %v, want %v", nt.Root().Children[0].Split, want)
	}
	if want := []int{0, 1}; !slices.Equal(nt.Root().Children[1].Split, want) {
		t.Errorf("clade AB split: got %v, want %v", nt.Root().Children[1].Split, want)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := tree.New(nil, nil); err == nil {
		t.Errorf("nil root: expecting error")
	}

	dup := &tree.Node{
		Children: []*tree.Node{
			{Name: "A", Length: 1},
			{Name: "A", Length: 1},
		},
	}
	if _, err := tree.New(dup, nil); err == nil {
		t.Errorf("repeated leaf name: expecting error")
	}

	unknown := &tree.Node{
		Children: []*tree.Node{
			{Name: "A", Length: 1},
			{Name: "B", Length: 1},
		},
	}
	if _, err := tree.New(unknown, []string{"A", "X"}); err == nil {
		t.Errorf("leaf not in taxa list: expecting error")
	}
}

func TestKeys(t *testing.T) {
	nt := newTestTree(t)
	root := nt.Root()

	if got, want := root.Key(), "0-1-2-3"; got != want {
		t.Errorf("root key: got %q, want %q", got, want)
	}

	ab := root.Children[0]
	if got, want := ab.Key(), "0-1"; got != want {
		t.Errorf("clade key: got %q, want %q", got, want)
	}
	if got, want := tree.LinkKey(ab.Key()), "link-0-1"; got != want {
		t.Errorf("link key: got %q, want %q", got, want)
	}

	a := ab.Children[0]
	if got, want := tree.LabelKey(a.Key()), "label-0"; got != want {
		t.Errorf("label key: got %q, want %q", got, want)
	}
	if got, want := tree.ExtensionKey(a.Key()), "ext-0"; got != want {
		t.Errorf("extension key: got %q, want %q", got, want)
	}

	// keys must be unique within a tree
	keys := make(map[string]bool)
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		if keys[n.Key()] {
			t.Errorf("key %q: repeated", n.Key())
		}
		keys[n.Key()] = true
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
}

func TestSort(t *testing.T) {
	root := &tree.Node{
		Children: []*tree.Node{
			{
				Length: 1,
				Children: []*tree.Node{
					{Name: "D", Length: 1},
					{Name: "B", Length: 1},
				},
			},
			{
				Length: 1,
				Children: []*tree.Node{
					{Name: "C", Length: 1},
					{Name: "A", Length: 1},
				},
			},
		},
	}
	nt, err := tree.New(root, []string{"A", "B", "C", "D"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nt.Sort()

	r := nt.Root()
	if want := []int{0, 2}; !slices.Equal(r.Children[0].Split, want) {
		t.Errorf("first child split: got %v, want %v", r.Children[0].Split, want)
	}
	if got, want := r.Children[0].Children[0].Name, "A"; got != want {
		t.Errorf("first leaf: got %q, want %q", got, want)
	}
	if got, want := r.Children[1].Children[0].Name, "B"; got != want {
		t.Errorf("second clade first leaf: got %q, want %q", got, want)
	}
}

func TestCopy(t *testing.T) {
	nt := newTestTree(t)
	cp := nt.Copy()

	if got, want := cp.Root().Key(), nt.Root().Key(); got != want {
		t.Errorf("copied root key: got %q, want %q", got, want)
	}

	// the copy must be independent
	cp.Root().Children[0].Length = 100
	if nt.Root().Children[0].Length == 100 {
		t.Errorf("copy shares nodes with the source tree")
	}
}
