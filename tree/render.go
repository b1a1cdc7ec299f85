package tree

import (
	"strings"
)

// String renders a tree as a parenthesized string:
//
//    leaf node                  ⇒  token
//    node with scope only       ⇒  rendering of the scope
//    otherwise                  ⇒  (token `scope left right)
//
// where absent parts are omitted together with their separating blank.
// The nil tree renders as the empty string.
func String(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	render(n, &b)
	return b.String()
}

func (n *Node) String() string {
	return String(n)
}

func render(n *Node, b *strings.Builder) {
	if n.left == nil && n.right == nil {
		if n.scope == nil {
			b.WriteString(n.token)
		} else {
			render(n.scope, b)
		}
		return
	}
	b.WriteByte('(')
	b.WriteString(n.token)
	if n.scope != nil {
		b.WriteString(" `")
		render(n.scope, b)
	}
	if n.left != nil {
		b.WriteByte(' ')
		render(n.left, b)
	}
	if n.right != nil {
		b.WriteByte(' ')
		render(n.right, b)
	}
	b.WriteByte(')')
}
