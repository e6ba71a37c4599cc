// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package radial

import (
	"math"

	"github.com/js-arias/treemorph/angles"
)

// StraightEpsilon is the angular difference,
// in radians,
// under which a branch is drawn
// as a pure radial line.
const StraightEpsilon = 1e-3

// A Polar is a position in polar coordinates.
type Polar struct {
	Angle  float64
	Radius float64
}

// ArcProps describe the arc segment of a branch.
type ArcProps struct {
	// Radius of the circle that contains the arc,
	// always the radius of the source node.
	Radius float64

	// Angular sweep of the arc.
	StartAngle float64
	EndAngle   float64
	AngleDiff  float64

	// Center of the circle.
	Center angles.Point
}

// Coords is the drawable geometry of a branch:
// a move to the source node,
// an arc on the source radius
// up to the angle of the target node,
// and a radial line to the target node.
//
// On a branch with almost equal source and target angles
// the arc is degenerate:
// Arc and ArcEnd are nil
// and the branch is the line from Move to LineEnd.
type Coords struct {
	Move    angles.Point
	ArcEnd  *angles.Point
	LineEnd angles.Point
	Arc     *ArcProps
}

// Branch returns the geometry of the branch
// between two polar positions,
// around a center point.
//
// The angular difference of the arc
// is always the signed shortest delta:
// any root-crossing policy is applied
// during interpolation,
// not on a static layout.
func Branch(src, tgt Polar, center angles.Point) Coords {
	c := Coords{
		Move:    angles.Cartesian(src.Radius, src.Angle, center),
		LineEnd: angles.Cartesian(tgt.Radius, tgt.Angle, center),
	}

	diff := angles.SignedShortest(src.Angle, tgt.Angle)
	if math.Abs(diff) < StraightEpsilon {
		return c
	}

	ae := angles.Cartesian(src.Radius, tgt.Angle, center)
	c.ArcEnd = &ae
	c.Arc = &ArcProps{
		Radius:     src.Radius,
		StartAngle: src.Angle,
		EndAngle:   tgt.Angle,
		AngleDiff:  diff,
		Center:     center,
	}
	return c
}

// PathLength returns the length of the drawn path of a branch:
// the arc length
// plus the length of the radial segment.
func PathLength(c Coords) float64 {
	if c.Arc == nil {
		return math.Hypot(c.LineEnd.X-c.Move.X, c.LineEnd.Y-c.Move.Y)
	}
	arc := math.Abs(c.Arc.AngleDiff) * c.Arc.Radius
	return arc + math.Hypot(c.LineEnd.X-c.ArcEnd.X, c.LineEnd.Y-c.ArcEnd.Y)
}
