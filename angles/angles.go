// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package angles implements the angular arithmetic
// used by a radial tree layout:
// normalization, signed shortest deltas,
// unwrapping of successive angles,
// the crossing test for a directed angular sweep,
// and conversion between polar and Cartesian coordinates.
//
// All angles are in radians.
package angles

import "math"

// Circle is the full turn.
const Circle = 2 * math.Pi

// CoincidentEpsilon is the tolerance
// used to consider two angles as the same angle.
const CoincidentEpsilon = 1e-10

// Normalize returns the angle a
// moved to the range [0, 2π).
func Normalize(a float64) float64 {
	m := math.Mod(a, Circle)
	if m < 0 {
		m += Circle
	}
	return m
}

// SignedShortest returns the smallest signed delta
// that moves angle a into angle b,
// in the range (-π, π].
// A tie at half a turn returns +π.
func SignedShortest(a, b float64) float64 {
	d := Normalize(b - a)
	if d > math.Pi {
		d -= Circle
	}
	return d
}

// Unwrap returns the angle a
// shifted by full turns
// so that it is as close as possible to a reference angle.
// It is used to keep the successive angles of an animated element
// in a continuous range,
// without jumps of ±2π between frames.
// If the reference is not finite,
// the angle is returned unchanged.
func Unwrap(a, reference float64) float64 {
	if math.IsNaN(reference) || math.IsInf(reference, 0) {
		return a
	}
	return a + math.Round((reference-a)/Circle)*Circle
}

// Crosses reports whether the directed angular path
// from start to end,
// in the direction implied by end-start,
// sweeps past the target angle.
// A zero-length sweep never crosses.
func Crosses(start, end, target float64) bool {
	if math.Abs(end-start) < CoincidentEpsilon {
		return false
	}

	s := Normalize(start)
	e := Normalize(end)
	t := Normalize(target)

	if end > start {
		// counterclockwise sweep
		if s <= e {
			return t > s && t < e
		}
		// the sweep wraps past 2π
		return t > s || t < e
	}

	// clockwise sweep
	if e <= s {
		return t > e && t < s
	}
	// the sweep wraps past 0
	return t > e || t < s
}

// LongArc returns the angular delta
// that joins the same two endpoints as a shortest delta,
// but sweeping in the opposite direction.
// The two deltas always add up to ±2π.
func LongArc(shortDelta float64) float64 {
	if shortDelta > 0 {
		return shortDelta - Circle
	}
	return shortDelta + Circle
}

// A Point is a location in the plane
// with an explicit z coordinate,
// so that it can be sent untouched to a 3D renderer.
type Point struct {
	X, Y, Z float64
}

// Cartesian returns the Cartesian location
// of a polar coordinate
// around a given center point.
// A negative radius is read as its positive counterpart
// rotated by half a turn.
func Cartesian(radius, angle float64, center Point) Point {
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
		Z: center.Z,
	}
}
