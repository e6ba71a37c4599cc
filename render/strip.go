// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import (
	"math"

	"github.com/js-arias/treemorph/morph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Strip is a plotter
// that draws a row of transition frames,
// one cell per frame,
// so a full transition can be inspected
// on a single static image.
type Strip struct {
	Frames []*morph.Frame
	Line   draw.LineStyle

	cell float64
}

// NewStrip creates a strip plotter from a list of frames.
func NewStrip(frames []*morph.Frame) *Strip {
	s := &Strip{
		Frames: frames,
		Line:   plotter.DefaultLineStyle,
	}

	r := 1.0
	for _, f := range frames {
		for _, ln := range f.Links {
			for i := 0; i+2 < len(ln.Path); i += 3 {
				if v := math.Abs(ln.Path[i]); v > r {
					r = v
				}
				if v := math.Abs(ln.Path[i+1]); v > r {
					r = v
				}
			}
		}
	}
	s.cell = 2 * r * 1.05
	return s
}

// DataRange implements the plot.DataRanger interface.
func (s *Strip) DataRange() (xMin, xMax, yMin, yMax float64) {
	return 0, float64(len(s.Frames)) * s.cell, 0, s.cell
}

// Plot implements the plot.Plotter interface.
func (s *Strip) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	c.SetLineStyle(s.Line)

	for i, f := range s.Frames {
		ox := float64(i)*s.cell + s.cell/2
		oy := s.cell / 2
		for _, ln := range f.Links {
			if len(ln.Path) < 6 {
				continue
			}
			var p vg.Path
			for j := 0; j+2 < len(ln.Path); j += 3 {
				pt := vg.Point{
					X: trX(ox + ln.Path[j]),
					Y: trY(oy + ln.Path[j+1]),
				}
				if j == 0 {
					p.Move(pt)
					continue
				}
				p.Line(pt)
			}
			c.Stroke(p)
		}
	}
}
