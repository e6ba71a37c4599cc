// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package radial implements a radial layout
// for a phylogenetic tree.
//
// In a radial layout the root sits at the center of the canvas,
// the leaves lie on a circle at uniform angular spacing,
// and every branch is drawn as a circular arc
// on the radius of the parent node,
// followed by a radial line segment.
package radial

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/js-arias/treemorph/angles"
	"github.com/js-arias/treemorph/tree"
)

// A Node is a node of a laid out tree.
type Node struct {
	// ID is the stable identifier of the node,
	// shared by the equivalent nodes of other trees.
	ID string

	// Taxon is the name of a terminal node.
	Taxon string

	// Split of the source node.
	Split []int

	// IsLeaf indicates a terminal node.
	IsLeaf bool

	// LeafIndex is the position of a leaf
	// in the traversal order of its own tree
	// (-1 on internal nodes).
	LeafIndex int

	// Depth is the distance from the root,
	// in edges.
	Depth int

	// Polar coordinates.
	Radius float64
	Angle  float64

	// ParentAngle is the angle of the parent node.
	// It is zero at the root.
	ParentAngle float64

	// Cartesian coordinates.
	X float64
	Y float64

	Parent   *Node
	Children []*Node
}

// A Tree is a tree laid out on a canvas.
//
// After layout the tree is read-only
// and can be shared freely.
type Tree struct {
	// Root of the tree,
	// always at the origin.
	Root *Node

	// Nodes in pre-order.
	Nodes []*Node

	// MaxRadius is the radius of the most distant leaf,
	// after scaling.
	MaxRadius float64

	// Scale applied to the branch length units.
	Scale float64

	// Effective canvas size.
	Width  float64
	Height float64
}

// Options are the parameters of a layout.
type Options struct {
	// IgnoreBranchLengths makes every branch
	// to have a unit length.
	IgnoreBranchLengths bool

	// Canvas size and margin,
	// in pixels.
	Width  float64
	Height float64
	Margin float64

	// Rotation is a uniform angular twist
	// added to every node after the layout,
	// in radians.
	Rotation float64

	// Pane reduces the scale factor
	// for small comparison panes.
	Pane bool

	// Logger for layout diagnostics.
	// If nil a discarding logger is used.
	Logger *log.Logger
}

// scaleFactor is the base divisor
// between the canvas radius
// and the radius of the most distant leaf.
const scaleFactor = 2.0

// Layout assigns polar and Cartesian coordinates
// to every node of a tree.
func Layout(t *tree.Tree, opts Options) *Tree {
	lg := opts.Logger
	if lg == nil {
		lg = log.New(io.Discard)
	}

	lt := &Tree{
		Width:  opts.Width,
		Height: opts.Height,
	}
	leaves := 0
	lt.Root = lt.copyNode(t.Root(), nil, &leaves, opts, lg)

	lt.setAngles(lt.Root, leaves)
	if opts.Rotation != 0 {
		lt.rotate(lt.Root, opts.Rotation)
	}

	f := scaleFactor
	if opts.Pane {
		f *= 0.8
	}
	minDim := math.Min(opts.Width-opts.Margin, opts.Height-opts.Margin) / 2
	maxR := 0.0
	for _, n := range lt.Nodes {
		if n.IsLeaf && n.Radius > maxR {
			maxR = n.Radius
		}
	}
	scale := 1.0
	if maxR > 0 && minDim > 0 {
		scale = minDim / (f * maxR)
	}
	lt.Scale = scale
	lt.MaxRadius = maxR * scale

	for _, n := range lt.Nodes {
		n.Radius *= scale
		p := angles.Cartesian(n.Radius, n.Angle, angles.Point{})
		n.X = p.X
		n.Y = p.Y
	}
	return lt
}

// copyNode builds the laid out node hierarchy,
// assigning leaf indices in traversal order
// and accumulating the radius from the root.
func (lt *Tree) copyNode(n *tree.Node, parent *Node, leaves *int, opts Options, lg *log.Logger) *Node {
	ln := &Node{
		ID:        n.Key(),
		Taxon:     n.Name,
		Split:     n.Split,
		IsLeaf:    n.IsLeaf(),
		LeafIndex: -1,
		Parent:    parent,
	}
	brLen := n.Length
	if math.IsNaN(brLen) || math.IsInf(brLen, 0) {
		lg.Warn("non finite branch length", "node", ln.ID)
		brLen = 0
	}
	if opts.IgnoreBranchLengths {
		brLen = 1
	}
	if parent == nil {
		brLen = 0
	} else {
		ln.Depth = parent.Depth + 1
		ln.Radius = parent.Radius + brLen
	}
	lt.Nodes = append(lt.Nodes, ln)

	if ln.IsLeaf {
		ln.LeafIndex = *leaves
		*leaves++
		return ln
	}
	for _, c := range n.Children {
		ln.Children = append(ln.Children, lt.copyNode(c, ln, leaves, opts, lg))
	}
	return ln
}

// setAngles assigns the leaf angles
// at uniform spacing in traversal order,
// and the internal angles
// as the mean of the children angles.
func (lt *Tree) setAngles(n *Node, leaves int) {
	if n.IsLeaf {
		if leaves > 0 {
			n.Angle = angles.Circle / float64(leaves) * float64(n.LeafIndex)
		}
	} else {
		sum := 0.0
		for _, c := range n.Children {
			lt.setAngles(c, leaves)
			sum += c.Angle
		}
		n.Angle = sum / float64(len(n.Children))
	}
	for _, c := range n.Children {
		c.ParentAngle = n.Angle
	}
}

func (lt *Tree) rotate(n *Node, phi float64) {
	n.Angle += phi
	n.ParentAngle += phi
	for _, c := range n.Children {
		lt.rotate(c, phi)
	}
}

// Leaves returns the terminal nodes of the tree
// in traversal order.
func (lt *Tree) Leaves() []*Node {
	var ls []*Node
	for _, n := range lt.Nodes {
		if n.IsLeaf {
			ls = append(ls, n)
		}
	}
	return ls
}

// Edges returns the branches of the tree,
// one per non-root node,
// in pre-order of the target node.
func (lt *Tree) Edges() []Edge {
	var es []Edge
	for _, n := range lt.Nodes {
		if n.Parent == nil {
			continue
		}
		es = append(es, Edge{
			ID:     tree.LinkKey(n.ID),
			Source: n.Parent,
			Target: n,
		})
	}
	return es
}

// An Edge is a branch of a laid out tree,
// from a parent node to one of its children.
type Edge struct {
	ID     string
	Source *Node
	Target *Node
}
