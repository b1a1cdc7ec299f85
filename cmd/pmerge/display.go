package main

import (
	"fmt"

	"github.com/npillmayer/pmerge/eval"
	"github.com/npillmayer/pmerge/parse"
	"github.com/npillmayer/pmerge/tree"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// printTree prints the rendering of a tree, and optionally its tree view.
func printTree(n *tree.Node, view bool) {
	if n == nil {
		pterm.Info.Println("(empty)")
		return
	}
	pterm.Info.Println(n.String())
	pterm.Info.Println(summary(n))
	if view {
		pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(leveled(n))).Render()
	}
}

// summary tells the size and the fingerprint of a tree.
func summary(n *tree.Node) string {
	return fmt.Sprintf("%d nodes, fingerprint %s", tree.Count(n), tree.Fingerprint(n))
}

// printStep prints the state of a stepper.
func printStep(s *parse.Stepper) {
	line := fmt.Sprintf("%3d  %s", s.Steps(), tree.String(s.Tree()))
	if s.Depth() > 0 {
		line += fmt.Sprintf("   [depth %d: %s]", s.Depth(), tree.String(s.Current().Right()))
	}
	pterm.Println(line)
}

// leveled converts a tree into a pterm leveled list, one item per node.
// Items are labeled with the edge leading to the node.
func leveled(n *tree.Node) pterm.LeveledList {
	ll := pterm.LeveledList{}
	tree.Walk(n, func(node *tree.Node, edge tree.Edge, depth int) bool {
		text := node.Token()
		if edge != tree.NoEdge {
			text = edge.String() + ": " + text
		}
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: text})
		return true
	})
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}

// printValue evaluates a tree and prints its value. Evaluation errors are
// not fatal: not every tree denotes a value.
func printValue(rt *eval.Runtime, n *tree.Node) {
	v, err := rt.Eval(n)
	if err != nil {
		tracer().Infof("%v", err)
		return
	}
	pterm.Info.Println("= " + eval.Format(v))
}
