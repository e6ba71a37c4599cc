// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package morph

import (
	"math"

	"github.com/js-arias/treemorph/angles"
	"github.com/js-arias/treemorph/radial"
)

// chooseDelta returns the angular delta
// used to move an element from one angle to another.
// The shortest delta is preferred,
// except when its sweep would pass the root angle:
// in a radial layout an element sliding through the root angle
// appears to jump through the center of the drawing,
// so the long arc is used instead.
func chooseDelta(from, to, rootAngle float64) float64 {
	d := angles.SignedShortest(from, to)
	if angles.Crosses(from, from+d, rootAngle) {
		d = angles.LongArc(d)
	}
	return d
}

// lerp is a linear interpolation
// between two scalar values.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// finite degrades a non finite value to a fallback.
func finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// interpolatePolar returns the polar position of an element
// moving between two polar positions,
// at time t,
// avoiding any sweep over the root angle.
func interpolatePolar(from, to radial.Polar, t, rootAngle float64) radial.Polar {
	fa := finite(from.Angle, 0)
	ta := finite(to.Angle, fa)
	fr := finite(from.Radius, 0)
	tr := finite(to.Radius, fr)

	return radial.Polar{
		Angle:  fa + chooseDelta(fa, ta, rootAngle)*t,
		Radius: lerp(fr, tr, t),
	}
}

// interpolatePoint returns the Cartesian position of an element
// moving between two polar positions at time t.
func interpolatePoint(from, to radial.Polar, t, rootAngle float64) angles.Point {
	p := interpolatePolar(from, to, t, rootAngle)
	return angles.Cartesian(p.Radius, p.Angle, angles.Point{})
}
