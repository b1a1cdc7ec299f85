package tree

// Find locates the insertion point for node in the tree below root.
// It walks down the right spine of root for as long as the right child has
// a larger priority than node. For right-to-left nodes, equal priorities
// are walked past, too.
//
// Find returns the node which will get node as its new right child.
func Find(root *Node, node *Node) *Node {
	parent := root
	if node.assoc == RtoL {
		for parent.right != nil && parent.right.priority >= node.priority {
			parent = parent.right
		}
		return parent
	}
	for parent.right != nil && parent.right.priority > node.priority {
		parent = parent.right
	}
	return parent
}

// Add inserts node into the tree below root. The node found by Find gives
// away its right subtree to node, which adopts it as its left subtree, and
// then takes node as its right child.
//
// Clients are responsible for passing a root which is part of a valid right
// spine, usually a sentinel created by NewSentinel. Add with a nil root or a nil
// node does nothing.
func Add(root *Node, node *Node) {
	if root == nil || node == nil {
		return
	}
	parent := Find(root, node)
	tracer().Debugf("add %s[%g] below %s[%g]", node.token, node.priority,
		parent.token, parent.priority)
	node.left = parent.right
	parent.right = node
}
