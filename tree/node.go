package tree

import (
	"fmt"
	"math"
)

// Assoc is the associativity of a node. It decides how nodes of equal priority
// nest.
type Assoc int8

// Nodes nest either left-to-right or right-to-left with equal-priority nodes.
const (
	LtoR Assoc = iota // a ∘ b ∘ c = (a ∘ b) ∘ c
	RtoL              // a ∘ b ∘ c = a ∘ (b ∘ c)
)

func (a Assoc) String() string {
	switch a {
	case LtoR:
		return "ltr"
	case RtoL:
		return "rtl"
	}
	return fmt.Sprintf("Assoc(%d)", int8(a))
}

// SentinelToken is the token label of sentinel roots.
const SentinelToken = "⊤"

// Node is a node of a precedence tree.
//
// Left holds material which has been displaced by this node, right extends
// the right spine and scope holds an independently rooted nested tree.
// All three are owned exclusively by the node.
//
// A node may carry a value on behalf of clients. Values take no part in
// building, rendering or fingerprinting trees.
type Node struct {
	token    string
	priority float64
	assoc    Assoc
	left     *Node
	right    *Node
	scope    *Node
	value    interface{}
}

// NewNode creates a node. No validation is performed on any argument.
func NewNode(token string, priority float64, assoc Assoc) *Node {
	return &Node{
		token:    token,
		priority: priority,
		assoc:    assoc,
	}
}

// NewSentinel creates a root node for a parse level. Its priority is +∞,
// thus it will never be displaced by any other node.
func NewSentinel() *Node {
	return NewNode(SentinelToken, math.Inf(1), LtoR)
}

// Token returns the token label of a node.
func (n *Node) Token() string {
	if n == nil {
		return ""
	}
	return n.token
}

// Priority returns the priority of a node.
func (n *Node) Priority() float64 {
	if n == nil {
		return math.NaN()
	}
	return n.priority
}

// Assoc returns the associativity of a node.
func (n *Node) Assoc() Assoc {
	if n == nil {
		return LtoR
	}
	return n.assoc
}

// Value returns the client value of a node, if any.
func (n *Node) Value() interface{} {
	if n == nil {
		return nil
	}
	return n.value
}

// SetValue sets the client value of a node.
func (n *Node) SetValue(v interface{}) {
	n.value = v
}

// Left returns the left subtree of a node, if any.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right subtree of a node, if any.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// Scope returns the nested tree of a node, if any.
func (n *Node) Scope() *Node {
	if n == nil {
		return nil
	}
	return n.scope
}

// IsLeaf is true for nodes without left, right and scope.
func (n *Node) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil && n.scope == nil
}

// IsSentinel is true for root nodes created by NewSentinel.
func (n *Node) IsSentinel() bool {
	return n != nil && n.token == SentinelToken && math.IsInf(n.priority, 1)
}

// AttachScope sets the nested tree of a node. A scope, once attached, may
// not be replaced; AttachScope returns false if n already owns a scope.
// Attaching a nil scope is allowed and leaves n untouched.
func AttachScope(n *Node, scope *Node) bool {
	if n == nil {
		return false
	}
	if n.scope != nil {
		tracer().Errorf("node %q already owns a scope", n.token)
		return false
	}
	n.scope = scope
	return true
}
