// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// TreeMorph is a tool to draw and animate
// radial phylogenetic trees.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/treemorph/cmd/treemorph/draw"
	"github.com/js-arias/treemorph/cmd/treemorph/frames"
	"github.com/js-arias/treemorph/cmd/treemorph/transit"
)

var app = &command.Command{
	Usage: "treemorph <command> [<argument>...]",
	Short: "a tool to draw and animate radial phylogenetic trees",
}

func init() {
	app.Add(draw.Command)
	app.Add(frames.Command)
	app.Add(transit.Command)
}

func main() {
	app.Main()
}
