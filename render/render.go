// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package render implements an SVG renderer
// for the frames of a tree transition.
//
// The interpolation engine only produces frames:
// pure records of positions, polylines, and labels.
// This package is the reference consumer of those frames;
// any other renderer that accepts a frame
// can be used in its place.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/js-arias/blind"
	"github.com/js-arias/treemorph/morph"
)

// A Style holds the drawing parameters of a frame.
type Style struct {
	// Canvas size in pixels.
	Width  int
	Height int

	// Stroke width of the branches.
	StrokeWidth int

	// Font size of the labels.
	FontSize int

	// Color returns the color of an element
	// from its identifier.
	// If nil, all the elements are black.
	Color func(id string) color.Color
}

func (s Style) prepare() Style {
	if s.Width == 0 {
		s.Width = 800
	}
	if s.Height == 0 {
		s.Height = 800
	}
	if s.StrokeWidth == 0 {
		s.StrokeWidth = 2
	}
	if s.FontSize == 0 {
		s.FontSize = 10
	}
	if s.Color == nil {
		s.Color = func(string) color.Color {
			return color.RGBA{A: 255}
		}
	}
	return s
}

// RainbowColors returns a color function
// that assigns to each identifier
// a color from the rainbow scheme of Paul Tol,
// spread over the identifier hash.
func RainbowColors() func(id string) color.Color {
	return func(id string) color.Color {
		var h uint32
		for _, c := range []byte(id) {
			h = h*31 + uint32(c)
		}
		return blind.Sequential(blind.RainbowPurpleToRed, float64(h%1000)/1000)
	}
}

// SVG draws a frame as an SVG document.
// The frame coordinates are centered on the canvas.
func SVG(w io.Writer, f *morph.Frame, sty Style) error {
	if f == nil {
		return fmt.Errorf("render: nil frame")
	}
	sty = sty.prepare()

	cx := sty.Width / 2
	cy := sty.Height / 2

	canvas := svg.New(w)
	canvas.Start(sty.Width, sty.Height)
	canvas.Rect(0, 0, sty.Width, sty.Height, "fill:rgb(255,255,255)")

	for _, ln := range f.Links {
		x, y := pathPoints(ln.Path, cx, cy)
		if len(x) < 2 {
			continue
		}
		canvas.Polyline(x, y, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d;stroke-opacity:%.3f;stroke-linecap:round",
			rgb(sty.Color(ln.ID)), sty.StrokeWidth, ln.Opacity))
	}

	for _, ext := range f.Extensions {
		x, y := pathPoints(ext.Path, cx, cy)
		if len(x) < 2 {
			continue
		}
		canvas.Polyline(x, y, fmt.Sprintf("fill:none;stroke:%s;stroke-width:1;stroke-opacity:%.3f;stroke-dasharray:4 2",
			rgb(sty.Color(ext.ID)), ext.Opacity))
	}

	for _, n := range f.Nodes {
		canvas.Circle(cx+int(n.Position.X), cy+int(n.Position.Y), int(n.Radius),
			fmt.Sprintf("fill:%s;fill-opacity:%.3f", rgb(sty.Color(n.ID)), n.Opacity))
	}

	for _, lb := range f.Labels {
		anchor := "start"
		if lb.Anchor == morph.End {
			anchor = "end"
		}
		deg := lb.Rotation * 180 / math.Pi
		canvas.Gtransform(fmt.Sprintf("translate(%d,%d) rotate(%.3f)",
			cx+int(lb.Position.X), cy+int(lb.Position.Y), deg))
		canvas.Text(0, 0, lb.Text,
			fmt.Sprintf("font-family:Verdana;font-size:%d;text-anchor:%s;fill:%s;fill-opacity:%.3f",
				sty.FontSize, anchor, rgb(sty.Color(lb.ID)), lb.Opacity))
		canvas.Gend()
	}

	canvas.End()
	return nil
}

// pathPoints converts a packed polyline
// into the integer coordinate lists
// used by the SVG canvas,
// moved to the canvas center.
func pathPoints(path []float64, cx, cy int) (x, y []int) {
	for i := 0; i+2 < len(path); i += 3 {
		x = append(x, cx+int(path[i]))
		y = append(y, cy+int(path[i+1]))
	}
	return x, y
}

func rgb(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}
