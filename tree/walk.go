package tree

import (
	"github.com/cnf/structhash"
)

// Edge tells how a node is linked to its parent during a walk.
type Edge int8

// Nodes are reached from their parents by one of three edges. The start node
// of a walk is reached by NoEdge.
const (
	NoEdge Edge = iota
	LeftEdge
	ScopeEdge
	RightEdge
)

func (e Edge) String() string {
	switch e {
	case LeftEdge:
		return "left"
	case ScopeEdge:
		return "scope"
	case RightEdge:
		return "right"
	}
	return "root"
}

// Visitor is a function type for walking a tree. It receives the current node,
// the edge by which it has been reached, and its depth relative to the start
// of the walk. If it returns false, the children of the node are skipped.
//
// Visitors must not modify the tree.
type Visitor func(n *Node, edge Edge, depth int) bool

// Walk traverses a tree depth-first, calling visit for every node before its
// children. Children are visited in order left, scope, right.
func Walk(n *Node, visit Visitor) {
	if n == nil || visit == nil {
		return
	}
	walk(n, NoEdge, 0, visit)
}

func walk(n *Node, edge Edge, depth int, visit Visitor) {
	if !visit(n, edge, depth) {
		return
	}
	if n.left != nil {
		walk(n.left, LeftEdge, depth+1, visit)
	}
	if n.scope != nil {
		walk(n.scope, ScopeEdge, depth+1, visit)
	}
	if n.right != nil {
		walk(n.right, RightEdge, depth+1, visit)
	}
}

// Count returns the number of nodes in a tree, including nodes of scopes.
func Count(n *Node) int {
	cnt := 0
	Walk(n, func(*Node, Edge, int) bool {
		cnt++
		return true
	})
	return cnt
}

// Fingerprint returns a digest of a tree. Trees of identical shape, with
// identical tokens, priorities and associativities, have identical fingerprints.
// The nil tree has an empty fingerprint.
func Fingerprint(n *Node) string {
	if n == nil {
		return ""
	}
	h, err := structhash.Hash(shapeOf(n), 1)
	if err != nil {
		tracer().Errorf("cannot hash tree: %v", err)
		return ""
	}
	return h
}

// shape mirrors a tree with exported fields only, as structhash will not
// look into unexported ones.
type shape struct {
	Token    string
	Priority float64
	Assoc    int8
	Left     *shape
	Scope    *shape
	Right    *shape
}

func shapeOf(n *Node) *shape {
	if n == nil {
		return nil
	}
	return &shape{
		Token:    n.token,
		Priority: n.priority,
		Assoc:    int8(n.assoc),
		Left:     shapeOf(n.left),
		Scope:    shapeOf(n.scope),
		Right:    shapeOf(n.right),
	}
}
