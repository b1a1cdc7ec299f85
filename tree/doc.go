/*
Package tree implements binary trees built by precedence merge.

Every node of a tree carries a token label, a priority and an associativity.
New nodes are always inserted somewhere along the right spine of a tree, i.e. the
chain of nodes reachable from the root by following right-links. Insertion walks
down the right spine as long as it meets nodes of a larger priority value; the
node found at that point loses its right subtree to the new node, which adopts it
as its left subtree:

    root := tree.NewSentinel()
    tree.Add(root, tree.NewNode("a", 0, tree.LtoR))
    tree.Add(root, tree.NewNode("+", 50, tree.LtoR))
    tree.Add(root, tree.NewNode("b", 0, tree.LtoR))
    fmt.Println(root.Right())   // prints (+ a b)

Nodes of equal priority are nested according to their associativity: LtoR
(left-to-right) lets the newcomer displace its predecessor, RtoL (right-to-left)
walks past it.

Besides left and right subtrees, a node may own a scope: an independently rooted
tree, built by a nested parse run.

Nodes are read-only to clients. Package parse is the intended way to build trees
from a stream of input tokens.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmerge.tree'.
func tracer() tracing.Trace {
	return tracing.Select("pmerge.tree")
}
