// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package morph implements the interpolation
// of radial tree layouts:
// given two laid out trees
// and a time factor between 0 and 1,
// it produces the drawable frame
// of the transition between the trees.
//
// Tree elements are identified across trees
// by their split keys,
// so a clade shared by both trees
// slides smoothly from its position in the first tree
// to its position in the second,
// along circular arcs
// that never sweep over the root angle.
package morph

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/js-arias/treemorph/angles"
	"github.com/js-arias/treemorph/radial"
	"github.com/js-arias/treemorph/tree"
)

// An Anchor is the side of a label text
// attached to the label position.
type Anchor string

// Valid anchors.
const (
	Start Anchor = "start"
	End   Anchor = "end"
)

// A Frame is the drawable state of a transition
// at a single instant.
// It is a pure data record:
// a renderer consumes it
// without any reference to the engine.
type Frame struct {
	Nodes      []FrameNode
	Links      []FrameLink
	Labels     []FrameLabel
	Extensions []FrameExtension
}

// A FrameNode is the dot drawn for a tree node.
type FrameNode struct {
	ID       string
	Position angles.Point
	Radius   float64
	IsLeaf   bool
	Opacity  float64
}

// A FrameLink is the polyline drawn for a branch,
// packed as x, y, z triples.
type FrameLink struct {
	ID      string
	Path    []float64
	Opacity float64
}

// A FrameLabel is the taxon name of a leaf,
// anchored outside the leaf circle.
// Rotation is in radians;
// the anchor and the added half turn
// keep the text readable
// on both halves of the circle.
type FrameLabel struct {
	ID       string
	Position angles.Point
	Rotation float64
	Anchor   Anchor
	Text     string
	Opacity  float64
}

// A FrameExtension is the two point dashed line
// from a leaf to the circle
// where its label is anchored.
type FrameExtension struct {
	ID      string
	Path    []float64
	Opacity float64
}

// Options control the geometry of the produced frames.
type Options struct {
	// ExtensionRadius is the radius of the circle
	// where the leaf extensions end.
	// If zero,
	// the largest of the two tree radii
	// plus 20 units is used.
	ExtensionRadius float64

	// LabelRadius is the radius of the circle
	// where the labels are anchored.
	// If zero,
	// the extension radius plus 5 units is used.
	LabelRadius float64

	// RootAngle is the angle
	// that no interpolation sweep should cross.
	RootAngle float64

	// Segments is the base number of samples
	// on an interpolated arc.
	// If zero, 16 is used.
	Segments int

	// Dot radii of the drawn nodes.
	// If zero, 3 for leaves and 2 for internal nodes.
	LeafDot  float64
	InnerDot float64

	// IgnoreCaches disables the unwrap cache.
	IgnoreCaches bool
}

// ErrInvalidInput is returned
// when a frame is requested
// for a nil or un-laid out tree.
var ErrInvalidInput = errors.New("invalid input tree")

// An Engine produces the frames of a transition
// between pairs of laid out trees.
//
// The engine is deterministic:
// for a fixed tree pair,
// the same time factor always produces the same frame.
// Its only state are the caches of the path interpolator,
// which are reset automatically
// when the tree pair changes.
// An engine must not be shared across goroutines;
// to animate two panes concurrently
// create one engine for each pane.
type Engine struct {
	logger *log.Logger

	paths    *PathInterpolator
	lastFrom *radial.Tree
	lastTo   *radial.Tree
	lastRoot float64
	lastSeg  int
}

// NewEngine creates an empty interpolation engine.
// If lg is nil diagnostics are discarded.
func NewEngine(lg *log.Logger) *Engine {
	if lg == nil {
		lg = log.New(io.Discard)
	}
	return &Engine{logger: lg}
}

// ResetCaches discards the per-transition caches.
// It is called automatically
// when a frame for a new tree pair is requested.
func (e *Engine) ResetCaches() {
	if e.paths != nil {
		e.paths.ResetCaches()
	}
}

// Frame returns the drawable frame of the transition
// from one laid out tree to another
// at time t.
//
// The time factor is clamped to [0, 1]
// and a NaN becomes 0,
// so at t = 0 the frame draws the source tree
// and at t = 1 the destination tree.
// Malformed elements are reported and skipped;
// the frame is still produced.
func (e *Engine) Frame(from, to *radial.Tree, t float64, o Options) (*Frame, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidInput)
	}
	if from.Root == nil || to.Root == nil {
		return nil, fmt.Errorf("%w: tree without layout", ErrInvalidInput)
	}

	if math.IsNaN(t) {
		t = 0
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	seg := o.Segments
	if seg <= 0 {
		seg = defaultSegments
	}
	if e.paths == nil || from != e.lastFrom || to != e.lastTo || o.RootAngle != e.lastRoot || seg != e.lastSeg {
		e.paths = NewPathInterpolator(o.RootAngle, seg, e.logger)
		e.lastFrom = from
		e.lastTo = to
		e.lastRoot = o.RootAngle
		e.lastSeg = seg
	}
	e.paths.IgnoreCaches(o.IgnoreCaches)

	extR := o.ExtensionRadius
	if extR == 0 {
		extR = math.Max(from.MaxRadius, to.MaxRadius) + 20
	}
	lblR := o.LabelRadius
	if lblR == 0 {
		lblR = extR + 5
	}
	leafDot := o.LeafDot
	if leafDot == 0 {
		leafDot = 3
	}
	innerDot := o.InnerDot
	if innerDot == 0 {
		innerDot = 2
	}

	f := &Frame{
		Nodes:      e.frameNodes(from, to, t, o.RootAngle, leafDot, innerDot),
		Links:      e.frameLinks(from, to, t),
		Labels:     e.frameLabels(from, to, t, o.RootAngle, lblR),
		Extensions: e.frameExtensions(from, to, t, o.RootAngle, extR),
	}
	return f, nil
}

func nodeID(n *radial.Node) string { return n.ID }

func (e *Engine) frameNodes(from, to *radial.Tree, t, rootAngle, leafDot, innerDot float64) []FrameNode {
	nodes := Match(from.Nodes, to.Nodes, nodeID,
		func(fn, tn *radial.Node, t float64, st State) *FrameNode {
			if !nodeOK(fn) || !nodeOK(tn) {
				e.logger.Warn("malformed node", "node", tn.ID)
				return nil
			}
			dot := innerDot
			if tn.IsLeaf {
				dot = leafDot
			}
			return &FrameNode{
				ID: tn.ID,
				Position: interpolatePoint(
					radial.Polar{Angle: fn.Angle, Radius: fn.Radius},
					radial.Polar{Angle: tn.Angle, Radius: tn.Radius},
					t, rootAngle),
				Radius:  dot,
				IsLeaf:  tn.IsLeaf,
				Opacity: 1,
			}
		}, t)

	out := make([]FrameNode, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		out = append(out, *n)
	}
	return out
}

func nodeOK(n *radial.Node) bool {
	for _, v := range []float64{n.Angle, n.Radius, n.X, n.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (e *Engine) frameLinks(from, to *radial.Tree, t float64) []FrameLink {
	links := Match(from.Edges(), to.Edges(),
		func(l radial.Edge) string { return l.ID },
		func(fl, tl radial.Edge, t float64, st State) *FrameLink {
			if fl.Source == fl.Target || tl.Source == tl.Target {
				e.logger.Warn("self referential branch", "link", tl.ID)
				return nil
			}
			return &FrameLink{
				ID:      tl.ID,
				Path:    e.paths.Interpolate(fl, tl, t),
				Opacity: 1,
			}
		}, t)

	out := make([]FrameLink, 0, len(links))
	for _, l := range links {
		if l == nil {
			continue
		}
		out = append(out, *l)
	}
	return out
}

func (e *Engine) frameLabels(from, to *radial.Tree, t, rootAngle, labelRadius float64) []FrameLabel {
	labels := Match(from.Leaves(), to.Leaves(),
		func(n *radial.Node) string { return tree.LabelKey(n.ID) },
		func(fn, tn *radial.Node, t float64, st State) *FrameLabel {
			if !nodeOK(fn) || !nodeOK(tn) {
				e.logger.Warn("malformed leaf", "label", tn.ID)
				return nil
			}
			fp := radial.Polar{Angle: fn.Angle, Radius: labelRadius}
			tp := radial.Polar{Angle: tn.Angle, Radius: labelRadius}
			pa := interpolatePolar(fp, tp, t, rootAngle)

			rot := pa.Angle
			anchor := Start
			if na := angles.Normalize(pa.Angle); na > math.Pi/2 && na < 3*math.Pi/2 {
				anchor = End
				rot += math.Pi
			}
			return &FrameLabel{
				ID:       tree.LabelKey(tn.ID),
				Position: angles.Cartesian(pa.Radius, pa.Angle, angles.Point{}),
				Rotation: rot,
				Anchor:   anchor,
				Text:     tn.Taxon,
				Opacity:  1,
			}
		}, t)

	out := make([]FrameLabel, 0, len(labels))
	for _, l := range labels {
		if l == nil {
			continue
		}
		out = append(out, *l)
	}
	return out
}

func (e *Engine) frameExtensions(from, to *radial.Tree, t, rootAngle, extRadius float64) []FrameExtension {
	exts := Match(from.Leaves(), to.Leaves(),
		func(n *radial.Node) string { return tree.ExtensionKey(n.ID) },
		func(fn, tn *radial.Node, t float64, st State) *FrameExtension {
			if !nodeOK(fn) || !nodeOK(tn) {
				e.logger.Warn("malformed leaf", "extension", tn.ID)
				return nil
			}
			leaf := interpolatePoint(
				radial.Polar{Angle: fn.Angle, Radius: fn.Radius},
				radial.Polar{Angle: tn.Angle, Radius: tn.Radius},
				t, rootAngle)
			end := interpolatePoint(
				radial.Polar{Angle: fn.Angle, Radius: extRadius},
				radial.Polar{Angle: tn.Angle, Radius: extRadius},
				t, rootAngle)
			return &FrameExtension{
				ID:      tree.ExtensionKey(tn.ID),
				Path:    []float64{leaf.X, leaf.Y, leaf.Z, end.X, end.Y, end.Z},
				Opacity: 1,
			}
		}, t)

	out := make([]FrameExtension, 0, len(exts))
	for _, x := range exts {
		if x == nil {
			continue
		}
		out = append(out, *x)
	}
	return out
}
