// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package morph

import (
	"math"
	"testing"

	"github.com/js-arias/treemorph/radial"
)

func deg(d float64) float64 {
	return d * math.Pi / 180
}

func TestInterpolatePolarLongArc(t *testing.T) {
	// moving from 10° to 350°:
	// the short arc sweeps over the root angle,
	// so the long arc must be taken
	from := radial.Polar{Angle: deg(10), Radius: 100}
	to := radial.Polar{Angle: deg(350), Radius: 100}

	p := interpolatePolar(from, to, 0.5, 0)
	if math.Abs(angleMod(p.Angle)-math.Pi) > 1e-9 {
		t.Errorf("interpolated angle: got %.6f, want %.6f", p.Angle, math.Pi)
	}

	pt := interpolatePoint(from, to, 0.5, 0)
	if math.Abs(pt.X+100) > 1e-6 || math.Abs(pt.Y) > 1e-6 {
		t.Errorf("interpolated point: got (%.6f, %.6f), want (-100, 0)", pt.X, pt.Y)
	}
}

func angleMod(a float64) float64 {
	m := math.Mod(a, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m
}

func TestInterpolatePolarShortArc(t *testing.T) {
	// moving from 45° to 135° never passes the root angle,
	// so the short arc is kept
	from := radial.Polar{Angle: deg(45), Radius: 100}
	to := radial.Polar{Angle: deg(135), Radius: 100}

	p := interpolatePolar(from, to, 0.5, 0)
	if math.Abs(p.Angle-deg(90)) > 1e-9 {
		t.Errorf("interpolated angle: got %.6f, want %.6f", p.Angle, deg(90))
	}
}

func TestInterpolateRadiusIndependentOfArc(t *testing.T) {
	// same long arc endpoints,
	// radius from 50 to 150:
	// the interpolated radius is not affected
	// by the arc choice
	from := radial.Polar{Angle: deg(10), Radius: 50}
	to := radial.Polar{Angle: deg(350), Radius: 150}

	p := interpolatePolar(from, to, 0.5, 0)
	if math.Abs(p.Radius-100) > 1e-9 {
		t.Errorf("interpolated radius: got %.6f, want %.6f", p.Radius, 100.0)
	}

	pt := interpolatePoint(from, to, 0.5, 0)
	if got := math.Hypot(pt.X, pt.Y); math.Abs(got-100) > 1e-6 {
		t.Errorf("interpolated vector magnitude: got %.6f, want %.6f", got, 100.0)
	}
}

func TestInterpolatePolarEndpoints(t *testing.T) {
	from := radial.Polar{Angle: deg(30), Radius: 20}
	to := radial.Polar{Angle: deg(300), Radius: 70}

	p0 := interpolatePolar(from, to, 0, 0)
	if math.Abs(p0.Angle-from.Angle) > 1e-9 || math.Abs(p0.Radius-from.Radius) > 1e-9 {
		t.Errorf("at t=0: got (%.6f, %.6f), want (%.6f, %.6f)", p0.Angle, p0.Radius, from.Angle, from.Radius)
	}

	p1 := interpolatePolar(from, to, 1, 0)
	if math.Abs(angleMod(p1.Angle)-to.Angle) > 1e-9 || math.Abs(p1.Radius-to.Radius) > 1e-9 {
		t.Errorf("at t=1: got (%.6f, %.6f), want (%.6f, %.6f)", angleMod(p1.Angle), p1.Radius, to.Angle, to.Radius)
	}
}

func TestInterpolatePolarNonFinite(t *testing.T) {
	// non finite inputs degrade to the available value
	from := radial.Polar{Angle: math.NaN(), Radius: math.NaN()}
	to := radial.Polar{Angle: deg(90), Radius: 50}

	p := interpolatePolar(from, to, 0, 0)
	if math.IsNaN(p.Angle) || math.IsNaN(p.Radius) {
		t.Errorf("interpolation with NaN input: got (%.6f, %.6f)", p.Angle, p.Radius)
	}
}
