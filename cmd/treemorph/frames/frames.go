// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package frames implements a command to produce
// the frames of an animated transition
// between consecutive trees.
package frames

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/treemorph/morph"
	"github.com/js-arias/treemorph/radial"
	"github.com/js-arias/treemorph/render"
	"github.com/js-arias/treemorph/transition"
	"github.com/js-arias/treemorph/tree"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `frames [--frames <number>] [--smooth]
	[--width <value>] [--height <value>] [--margin <value>]
	[--unitbl] [--strip <file>] [--verbose]
	[-o|--output <out-prefix>]
	<tree-file>`,
	Short: "produce the frames of a tree transition",
	Long: `
Command frames reads a file with time calibrated trees and writes the SVG
frames of the animated transition between each pair of consecutive trees, so
the drawn branches slide along circular arcs from their position in one tree
to their position in the next.

The argument of the command is the name of the tree file, a TSV file as used
by the timetree package. All the trees must share the same set of terminals.

By default, 25 frames are produced for each transition. Use the flag --frames
to change the number.

If the flag --smooth is given, the intermediate stages between each pair of
trees (the averaged trees and the shared-clades consensus trees) will be
inserted before producing the frames, so topological changes are played as
explicit collapse and expansion stages.

By default, an 800x800 canvas is used with a 50 pixel margin; use --width,
--height, and --margin to change it. With the flag --unitbl all branches are
drawn with a unit length.

If the flag --strip is given with a file name, a single PNG image with a row
of sampled frames will be written to that file.

Use the flag -o, or --output, to define a prefix for the frame files; the
default prefix is "frame".

With the flag --verbose the engine diagnostics will be printed to the
standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var numFrames int
var smooth bool
var width float64
var height float64
var margin float64
var unitBL bool
var verbose bool
var stripFile string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&numFrames, "frames", 25, "")
	c.Flags().BoolVar(&smooth, "smooth", false, "")
	c.Flags().Float64Var(&width, "width", 800, "")
	c.Flags().Float64Var(&height, "height", 800, "")
	c.Flags().Float64Var(&margin, "margin", 50, "")
	c.Flags().BoolVar(&unitBL, "unitbl", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&stripFile, "strip", "", "")
	c.Flags().StringVar(&outPrefix, "output", "frame", "")
	c.Flags().StringVar(&outPrefix, "o", "frame", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	trees, err := readTrees(args[0])
	if err != nil {
		return err
	}
	if smooth {
		trees, err = transition.Sequence(trees)
		if err != nil {
			return err
		}
	}

	layouts := make([]*radial.Tree, 0, len(trees))
	for _, it := range trees {
		layouts = append(layouts, radial.Layout(it, radial.Options{
			IgnoreBranchLengths: unitBL,
			Width:               width,
			Height:              height,
			Margin:              margin,
		}))
	}

	var lg *log.Logger
	if verbose {
		lg = log.New(c.Stderr())
	}
	eng := morph.NewEngine(lg)

	sty := render.Style{
		Width:  int(width),
		Height: int(height),
		Color:  render.RainbowColors(),
	}

	var all []*morph.Frame
	i := 0
	for f := range eng.Sequence(layouts, numFrames, morph.Options{}) {
		name := fmt.Sprintf("%s-%04d.svg", outPrefix, i)
		if err := writeSVG(name, f, sty); err != nil {
			return err
		}
		if stripFile != "" {
			all = append(all, f)
		}
		i++
	}

	if stripFile != "" {
		if err := writeStrip(stripFile, all); err != nil {
			return err
		}
	}
	return nil
}

func readTrees(name string) ([]*tree.Tree, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	coll, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}

	var trees []*tree.Tree
	var taxa []string
	for _, tn := range coll.Names() {
		it, err := tree.FromTimetree(coll.Tree(tn), taxa)
		if err != nil {
			return nil, err
		}
		if taxa == nil {
			taxa = it.Taxa()
		}
		it.Sort()
		trees = append(trees, it)
	}
	return trees, nil
}

func writeSVG(name string, f *morph.Frame, sty render.Style) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := file.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := render.SVG(file, f, sty); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}

// writeStrip draws a sample of the produced frames
// as a single row,
// at most 10 frames wide.
func writeStrip(name string, frames []*morph.Frame) error {
	if len(frames) == 0 {
		return nil
	}
	step := 1
	if len(frames) > 10 {
		step = len(frames) / 10
	}
	var sample []*morph.Frame
	for i := 0; i < len(frames); i += step {
		sample = append(sample, frames[i])
	}

	p := plot.New()
	p.HideAxes()
	p.Add(render.NewStrip(sample))

	w := vg.Length(len(sample)) * 3 * vg.Centimeter
	if err := p.Save(w, 3*vg.Centimeter, name); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
