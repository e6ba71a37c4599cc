// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// radial trees as SVG files.
package draw

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/treemorph/morph"
	"github.com/js-arias/treemorph/radial"
	"github.com/js-arias/treemorph/render"
	"github.com/js-arias/treemorph/tree"
)

var Command = &command.Command{
	Usage: `draw [--width <value>] [--height <value>]
	[--margin <value>] [--unitbl]
	[-o|--output <out-prefix>]
	<tree-file>`,
	Short: "draw trees as radial SVG files",
	Long: `
Command draw reads a file with time calibrated trees and draws each tree as
an SVG file in a radial layout, with the root at the center of the canvas and
the leaves on a circle.

The argument of the command is the name of the tree file, a TSV file as used
by the timetree package.

By default, an 800x800 canvas is used. Use the flags --width and --height to
define a different size, in pixels, and --margin to leave a margin around the
drawing.

By default, branch lengths are taken from the ages of the tree nodes. If the
flag --unitbl is given, all branches will be drawn with a unit length.

By default, the names of the trees will be used as the output file names. Use
the flag -o, or --output, to define a prefix for the resulting files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var width float64
var height float64
var margin float64
var unitBL bool
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&width, "width", 800, "")
	c.Flags().Float64Var(&height, "height", 800, "")
	c.Flags().Float64Var(&margin, "margin", 50, "")
	c.Flags().BoolVar(&unitBL, "unitbl", false, "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	coll, err := readTreeFile(args[0])
	if err != nil {
		return err
	}

	eng := morph.NewEngine(nil)
	var taxa []string
	for _, tn := range coll.Names() {
		it, err := tree.FromTimetree(coll.Tree(tn), taxa)
		if err != nil {
			return err
		}
		if taxa == nil {
			taxa = it.Taxa()
		}
		it.Sort()

		lt := radial.Layout(it, radial.Options{
			IgnoreBranchLengths: unitBL,
			Width:               width,
			Height:              height,
			Margin:              margin,
		})

		f, err := eng.Frame(lt, lt, 0, morph.Options{})
		if err != nil {
			return fmt.Errorf("tree %q: %v", tn, err)
		}
		if err := writeSVG(tn, f); err != nil {
			return err
		}
	}
	return nil
}

func readTreeFile(name string) (*timetree.Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	coll, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return coll, nil
}

func writeSVG(name string, f *morph.Frame) (err error) {
	if outPrefix != "" {
		name = fmt.Sprintf("%s-%s.svg", outPrefix, name)
	} else {
		name += ".svg"
	}

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

	sty := render.Style{
		Width:  int(width),
		Height: int(height),
		Color:  render.RainbowColors(),
	}
	if err := render.SVG(file, f, sty); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
