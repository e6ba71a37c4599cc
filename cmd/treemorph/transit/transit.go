// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package transit implements a command to inspect
// the intermediate stages of a tree transition.
package transit

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/treemorph/transition"
	"github.com/js-arias/treemorph/tree"
)

var Command = &command.Command{
	Usage: "transit <tree-file>",
	Short: "inspect the stages of a tree transition",
	Long: `
Command transit reads a file with time calibrated trees and prints, for each
pair of consecutive trees, a report of the intermediate stages used to smooth
the animated transition: the number of clades shared by both trees, the
number of clades collapsed from each side, and the total branch length of
each stage.

The argument of the command is the name of the tree file, a TSV file as used
by the timetree package. All the trees must share the same set of terminals.

The output is a tab-delimited table with the following columns:

	pair      the index of the tree pair
	stage     the name of the transition stage
	clades    the number of internal clades of the stage
	length    the sum of the branch lengths of the stage
	`,
	Run: run,
}

var stageNames = []string{
	"first",
	"averaged-first",
	"consensus-first",
	"consensus-second",
	"averaged-second",
	"second",
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	coll, err := timetree.ReadTSV(f)
	if err != nil {
		return fmt.Errorf("while reading file %q: %v", args[0], err)
	}

	var trees []*tree.Tree
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
		trees = append(trees, it)
	}

	fmt.Fprintf(c.Stdout(), "pair\tstage\tclades\tlength\n")
	for i := 1; i < len(trees); i++ {
		stages, err := transition.Pair(trees[i-1], trees[i])
		if err != nil {
			return fmt.Errorf("trees %d-%d: %v", i-1, i, err)
		}
		for j, st := range stages {
			clades, sum := describe(st.Root())
			fmt.Fprintf(c.Stdout(), "%d\t%s\t%d\t%.6f\n", i-1, stageNames[j], clades, sum)
		}
	}
	return nil
}

// describe returns the number of internal clades
// (excluding the root)
// and the total branch length of a tree.
func describe(n *tree.Node) (clades int, sum float64) {
	for _, c := range n.Children {
		cc, cs := describe(c)
		clades += cc
		sum += cs + c.Length
		if !c.IsLeaf() {
			clades++
		}
	}
	return clades, sum
}
