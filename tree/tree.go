// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements the input trees
// of a radial tree animation.
//
// A tree is a rooted hierarchy
// with ordered children and branch lengths.
// Each node is identified by its split,
// the sorted set of indices
// of all the leaves reachable from the node,
// under a leaf-index assignment
// that is shared by all the trees of a sequence.
// Two nodes in different trees
// are the same element of the animation
// if, and only if,
// they have the same split.
package tree

import (
	"errors"
	"fmt"
	"slices"
)

// A Node is a node of an input tree.
type Node struct {
	// Name of the node
	// (usually empty for internal nodes).
	Name string

	// Length of the branch
	// that connects the node with its parent.
	// It is zero at the root.
	Length float64

	// Ordered descendants of the node.
	Children []*Node

	// Split is the sorted collection of indices
	// of all the leaves reachable from the node.
	// It is assigned at tree creation.
	Split []int
}

// IsLeaf reports whether the node is a terminal.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Index returns the leaf index of a terminal node,
// or -1 for an internal node.
func (n *Node) Index() int {
	if !n.IsLeaf() || len(n.Split) == 0 {
		return -1
	}
	return n.Split[0]
}

// A Tree is a rooted tree
// with splits assigned to all of its nodes.
type Tree struct {
	root *Node
	taxa []string // leaf names, by leaf index
}

var errEmptyTree = errors.New("empty tree")

// New creates a tree from a root node,
// assigning splits to every node.
//
// The leaf-index assignment is taken from taxa,
// the list of leaf names in index order.
// If taxa is empty,
// the order of appearance of the leaves
// in the given tree will be used.
// All the trees of an animated sequence
// must be created with the same taxa list,
// otherwise their splits will not be comparable.
func New(root *Node, taxa []string) (*Tree, error) {
	if root == nil {
		return nil, errEmptyTree
	}

	if len(taxa) == 0 {
		taxa = leafNames(root, nil)
	}
	ids := make(map[string]int, len(taxa))
	for i, nm := range taxa {
		if _, dup := ids[nm]; dup {
			return nil, fmt.Errorf("taxon %q: repeated leaf name", nm)
		}
		ids[nm] = i
	}

	t := &Tree{
		root: root,
		taxa: taxa,
	}
	if err := t.setSplits(root, ids); err != nil {
		return nil, err
	}
	root.Length = 0
	return t, nil
}

func leafNames(n *Node, names []string) []string {
	if n.IsLeaf() {
		return append(names, n.Name)
	}
	for _, c := range n.Children {
		names = leafNames(c, names)
	}
	return names
}

func (t *Tree) setSplits(n *Node, ids map[string]int) error {
	if n.IsLeaf() {
		id, ok := ids[n.Name]
		if !ok {
			return fmt.Errorf("taxon %q: leaf not in the taxa list", n.Name)
		}
		n.Split = []int{id}
		return nil
	}

	n.Split = nil
	for _, c := range n.Children {
		if err := t.setSplits(c, ids); err != nil {
			return err
		}
		n.Split = append(n.Split, c.Split...)
	}
	slices.Sort(n.Split)
	return nil
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Taxa returns the leaf names of the tree,
// in leaf index order.
func (t *Tree) Taxa() []string {
	return t.taxa
}

// Leaves returns the number of leaves of the tree.
func (t *Tree) Leaves() int {
	return len(t.root.Split)
}

// Sort orders the children of every node
// by the smallest leaf index of their splits,
// so that trees over the same leaf set
// place shared clades in the same relative positions.
func (t *Tree) Sort() {
	sortNodes(t.root)
}

func sortNodes(n *Node) {
	for _, c := range n.Children {
		sortNodes(c)
	}
	slices.SortStableFunc(n.Children, func(a, b *Node) int {
		return a.Split[0] - b.Split[0]
	})
}

// Copy returns a deep copy of the tree.
func (t *Tree) Copy() *Tree {
	nt := &Tree{
		root: copyNode(t.root),
		taxa: slices.Clone(t.taxa),
	}
	return nt
}

func copyNode(n *Node) *Node {
	c := &Node{
		Name:   n.Name,
		Length: n.Length,
		Split:  slices.Clone(n.Split),
	}
	for _, d := range n.Children {
		c.Children = append(c.Children, copyNode(d))
	}
	return c
}
