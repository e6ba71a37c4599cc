// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package morph

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/js-arias/treemorph/angles"
	"github.com/js-arias/treemorph/radial"
)

// Polyline sampling parameters:
// one sample about every sampleSpacing world units on an arc,
// with at least the base number of segments
// and never more than maxSegments.
const (
	sampleSpacing   = 15.0
	defaultSegments = 16
	maxSegments     = 100
)

// A PathInterpolator produces the polyline of a branch
// moving between two trees,
// at any time of the transition.
//
// The interpolator keeps two caches:
// the unwrap cache,
// with the last interpolated angles of each branch,
// so that the angles of successive frames
// stay in a continuous range;
// and the normalization cache of the linear fallback.
// Both caches belong to a single transition:
// call ResetCaches when the tree pair changes.
//
// An interpolator must not be shared across goroutines;
// a second interpolator is cheap to create.
type PathInterpolator struct {
	rootAngle float64
	segments  int
	noCache   bool
	logger    *log.Logger

	unwrap map[string]unwrapRef
	norm   map[string]normPair
}

type unwrapRef struct {
	source float64
	target float64
}

type normPair struct {
	from []angles.Point
	to   []angles.Point
}

// NewPathInterpolator creates a path interpolator
// for a transition between two trees.
// The given root angle is the angle
// that no branch sweep should cross.
// If segments is not positive,
// the default base sampling is used.
// If lg is nil diagnostics are discarded.
func NewPathInterpolator(rootAngle float64, segments int, lg *log.Logger) *PathInterpolator {
	if segments <= 0 {
		segments = defaultSegments
	}
	if lg == nil {
		lg = log.New(io.Discard)
	}
	return &PathInterpolator{
		rootAngle: rootAngle,
		segments:  segments,
		logger:    lg,
		unwrap:    make(map[string]unwrapRef),
		norm:      make(map[string]normPair),
	}
}

// ResetCaches discards the unwrap and normalization caches.
// It must be called whenever the tree pair
// of the transition changes.
func (p *PathInterpolator) ResetCaches() {
	p.unwrap = make(map[string]unwrapRef)
	p.norm = make(map[string]normPair)
}

// IgnoreCaches disables the unwrap cache.
// Without the cache each frame is computed in isolation,
// so a sequence of frames may show a single ±2π jump.
func (p *PathInterpolator) IgnoreCaches(ignore bool) {
	p.noCache = ignore
}

// Interpolate returns the polyline of a branch at time t,
// moving from its geometry in the source tree
// to its geometry in the destination tree.
// The polyline is packed as x, y, z triples.
//
// If the polar data of the branches
// are missing or non finite,
// the polylines of both branches are sampled,
// normalized to a common length,
// and interpolated point by point.
func (p *PathInterpolator) Interpolate(from, to radial.Edge, t float64) []float64 {
	if !polarOK(from) || !polarOK(to) {
		return p.linear(from, to, t)
	}

	fs, ft := from.Source, from.Target
	ts, tt := to.Source, to.Target

	fsa, tsa := fs.Angle, ts.Angle
	fta, tta := ft.Angle, tt.Angle
	if !p.noCache {
		if ref, ok := p.unwrap[to.ID]; ok {
			fsa = angles.Unwrap(fsa, ref.source)
			tsa = angles.Unwrap(tsa, ref.source)
			fta = angles.Unwrap(fta, ref.target)
			tta = angles.Unwrap(tta, ref.target)
		}
	}

	srcDelta := chooseDelta(fsa, tsa, p.rootAngle)
	tgtDelta := chooseDelta(fta, tta, p.rootAngle)

	src := radial.Polar{
		Angle:  fsa + srcDelta*t,
		Radius: lerp(fs.Radius, ts.Radius, t),
	}
	tgt := radial.Polar{
		Angle:  fta + tgtDelta*t,
		Radius: lerp(ft.Radius, tt.Radius, t),
	}
	if !p.noCache {
		p.unwrap[to.ID] = unwrapRef{
			source: src.Angle,
			target: tgt.Angle,
		}
	}

	c := radial.Branch(src, tgt, angles.Point{})
	if c.Arc != nil {
		// the branch endpoints were interpolated independently,
		// so the resulting arc must be re-tested
		// against the root angle
		if angles.Crosses(c.Arc.StartAngle, c.Arc.StartAngle+c.Arc.AngleDiff, p.rootAngle) {
			c.Arc.AngleDiff = angles.LongArc(c.Arc.AngleDiff)
		}
	}
	return p.sample(c)
}

// sample converts the geometry of a branch
// into a packed polyline.
func (p *PathInterpolator) sample(c radial.Coords) []float64 {
	if c.Arc == nil {
		return []float64{
			c.Move.X, c.Move.Y, c.Move.Z,
			c.LineEnd.X, c.LineEnd.Y, c.LineEnd.Z,
		}
	}

	n := int(math.Ceil(math.Abs(c.Arc.AngleDiff) * c.Arc.Radius / sampleSpacing))
	if n < p.segments {
		n = p.segments
	}
	if n > maxSegments {
		n = maxSegments
	}

	path := make([]float64, 0, (n+2)*3)
	path = append(path, c.Move.X, c.Move.Y, c.Move.Z)
	for i := 1; i < n; i++ {
		a := c.Arc.StartAngle + c.Arc.AngleDiff*float64(i)/float64(n)
		pt := angles.Cartesian(c.Arc.Radius, a, c.Arc.Center)
		path = append(path, pt.X, pt.Y, pt.Z)
	}
	path = append(path, c.ArcEnd.X, c.ArcEnd.Y, c.ArcEnd.Z)
	path = append(path, c.LineEnd.X, c.LineEnd.Y, c.LineEnd.Z)
	return path
}

// linear is the fallback interpolation
// for branches without usable polar data:
// both branch polylines are normalized to the same length
// and interpolated point by point.
func (p *PathInterpolator) linear(from, to radial.Edge, t float64) []float64 {
	key := from.ID + "|" + to.ID
	np, ok := p.norm[key]
	if !ok {
		fp := p.staticPath(from)
		tp := p.staticPath(to)
		size := max(len(fp), len(tp))
		np = normPair{
			from: resample(fp, size),
			to:   resample(tp, size),
		}
		if !p.noCache {
			p.norm[key] = np
		}
	}

	path := make([]float64, 0, len(np.from)*3)
	for i := range np.from {
		f, e := np.from[i], np.to[i]
		path = append(path, lerp(f.X, e.X, t), lerp(f.Y, e.Y, t), lerp(f.Z, e.Z, t))
	}
	return path
}

// staticPath samples the drawn polyline of a branch
// in its own tree.
// A branch with unusable endpoints
// degrades to a point at the origin.
func (p *PathInterpolator) staticPath(e radial.Edge) []angles.Point {
	if e.Source == nil || e.Target == nil {
		p.logger.Warn("branch without endpoints", "link", e.ID)
		return []angles.Point{{}, {}}
	}
	src := radial.Polar{Angle: finite(e.Source.Angle, 0), Radius: finite(e.Source.Radius, 0)}
	tgt := radial.Polar{Angle: finite(e.Target.Angle, 0), Radius: finite(e.Target.Radius, 0)}
	packed := p.sample(radial.Branch(src, tgt, angles.Point{}))

	pts := make([]angles.Point, 0, len(packed)/3)
	for i := 0; i+2 < len(packed); i += 3 {
		pts = append(pts, angles.Point{X: packed[i], Y: packed[i+1], Z: packed[i+2]})
	}
	return pts
}

// resample returns a polyline with the given number of points,
// interpolating linearly between the points
// of the source polyline at fractional indices.
func resample(pts []angles.Point, size int) []angles.Point {
	if len(pts) == 0 {
		return make([]angles.Point, size)
	}
	if len(pts) == size {
		return pts
	}

	out := make([]angles.Point, size)
	last := float64(len(pts) - 1)
	for i := range out {
		f := 0.0
		if size > 1 {
			f = last * float64(i) / float64(size-1)
		}
		lo := int(math.Floor(f))
		hi := int(math.Ceil(f))
		if hi >= len(pts) {
			hi = len(pts) - 1
		}
		frac := f - float64(lo)
		out[i] = angles.Point{
			X: lerp(pts[lo].X, pts[hi].X, frac),
			Y: lerp(pts[lo].Y, pts[hi].Y, frac),
			Z: lerp(pts[lo].Z, pts[hi].Z, frac),
		}
	}
	return out
}

// polarOK reports whether a branch
// has usable polar endpoints.
func polarOK(e radial.Edge) bool {
	if e.Source == nil || e.Target == nil {
		return false
	}
	for _, v := range []float64{
		e.Source.Angle, e.Source.Radius,
		e.Target.Angle, e.Target.Radius,
		e.Target.X, e.Target.Y,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
