package tree

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// operand and operator priorities used throughout the tests
const (
	atom  = 0.0
	times = 40.0
	plus  = 50.0
)

func leaf(tok string) *Node {
	return NewNode(tok, atom, LtoR)
}

func build(nodes ...*Node) *Node {
	root := NewSentinel()
	for _, n := range nodes {
		Add(root, n)
	}
	return root.Right()
}

func TestPriorityOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.tree")
	defer teardown()
	//
	tree := build(leaf("a"), NewNode("PLUS", plus, LtoR), leaf("b"),
		NewNode("TIMES", times, LtoR), leaf("c"))
	if diff := cmp.Diff("(PLUS a (TIMES b c))", tree.String()); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", diff)
	}
	tree = build(leaf("a"), NewNode("TIMES", times, LtoR), leaf("b"),
		NewNode("PLUS", plus, LtoR), leaf("c"))
	if diff := cmp.Diff("(PLUS (TIMES a b) c)", tree.String()); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestAssociativity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.tree")
	defer teardown()
	//
	var tests = []struct {
		assoc Assoc
		want  string
	}{
		{LtoR, "(OP (OP a b) c)"},
		{RtoL, "(OP a (OP b c))"},
	}
	for _, test := range tests {
		tree := build(leaf("a"), NewNode("OP", 30, test.assoc), leaf("b"),
			NewNode("OP", 30, test.assoc), leaf("c"))
		if got := tree.String(); got != test.want {
			t.Errorf("%s: expected %s, got %s", test.assoc, test.want, got)
		}
	}
}

func TestRightAssocChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.tree")
	defer teardown()
	//
	tree := build(leaf("a"), NewNode("POW", 30, RtoL), leaf("b"),
		NewNode("POW", 30, RtoL), leaf("c"), NewNode("POW", 30, RtoL), leaf("d"))
	expected := "(POW a (POW b (POW c d)))"
	if tree.String() != expected {
		t.Errorf("expected %s, got %s", expected, tree.String())
	}
}

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.tree")
	defer teardown()
	//
	root := NewSentinel()
	p := NewNode("+", plus, LtoR)
	Add(root, leaf("a"))
	Add(root, p)
	Add(root, leaf("b"))
	if parent := Find(root, NewNode("*", times, LtoR)); parent != p {
		t.Errorf("expected '*' to be inserted below '+', is below %q", parent.Token())
	}
	if parent := Find(root, NewNode("+", plus, LtoR)); parent != root {
		t.Errorf("expected ltr '+' to be inserted below root, is below %q", parent.Token())
	}
	if parent := Find(root, NewNode("+", plus, RtoL)); parent != p {
		t.Errorf("expected rtl '+' to be inserted below '+', is below %q", parent.Token())
	}
}

func TestAddIsTotal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.tree")
	defer teardown()
	//
	Add(nil, leaf("a"))
	root := NewSentinel()
	Add(root, nil)
	if root.Right() != nil {
		t.Errorf("expected adding nil to leave root untouched")
	}
}

func TestSentinelNeverDisplaced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.tree")
	defer teardown()
	//
	root := NewSentinel()
	if !root.IsSentinel() {
		t.Fatalf("expected root to be a sentinel")
	}
	Add(root, leaf("a"))
	Add(root, NewNode("huge", 1e300, RtoL))
	Add(root, leaf("b"))
	if root.Right().Token() != "huge" {
		t.Errorf("expected 'huge' right below root, got %q", root.Right().Token())
	}
	if root.Left() != nil {
		t.Errorf("sentinel must never be displaced")
	}
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.tree")
	defer teardown()
	//
	if s := String(nil); s != "" {
		t.Errorf("expected nil tree to render as empty string, got %q", s)
	}
	group := leaf("()")
	AttachScope(group, build(leaf("x"), NewNode("+", plus, LtoR), leaf("y")))
	if group.String() != "(+ x y)" {
		t.Errorf("expected scope-only node to be transparent, got %s", group)
	}
	call := build(leaf("f"), group)
	if call.String() != "(() `(+ x y) f)" {
		t.Errorf("expected scope marker in rendering, got %s", call)
	}
	empty := leaf("()")
	AttachScope(empty, nil)
	if empty.String() != "()" {
		t.Errorf("expected empty group to render as its token, got %s", empty)
	}
}

func TestRenderIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.tree")
	defer teardown()
	//
	tree := build(leaf("a"), NewNode("+", plus, LtoR), leaf("b"), NewNode("*", times, LtoR), leaf("c"))
	s1, s2 := tree.String(), tree.String()
	if s1 != s2 {
		t.Errorf("rendering differs between calls: %s vs %s", s1, s2)
	}
}

func TestAttachScopeOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.tree")
	defer teardown()
	//
	n := leaf("[]")
	if !AttachScope(n, leaf("x")) {
		t.Fatalf("expected first scope attachment to succeed")
	}
	if AttachScope(n, leaf("y")) {
		t.Errorf("expected second scope attachment to fail")
	}
	if n.Scope().Token() != "x" {
		t.Errorf("scope has been replaced")
	}
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.tree")
	defer teardown()
	//
	group := NewNode("()", atom, LtoR)
	AttachScope(group, build(leaf("x"), NewNode("-", plus, LtoR), leaf("y")))
	tree := build(leaf("f"), group, NewNode("*", times, LtoR), leaf("z"))
	var b strings.Builder
	Walk(tree, func(n *Node, e Edge, depth int) bool {
		b.WriteString(strings.Repeat(".", depth))
		b.WriteString(e.String() + ":" + n.Token() + " ")
		return true
	})
	expected := "root:* .left:() ..left:f ..scope:- ...left:x ...right:y .right:z "
	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Errorf("unexpected walk order (-want +got):\n%s", diff)
	}
	if cnt := Count(tree); cnt != 7 {
		t.Errorf("expected 7 nodes, counted %d", cnt)
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.tree")
	defer teardown()
	//
	t1 := build(leaf("a"), NewNode("+", plus, LtoR), leaf("b"))
	t2 := build(leaf("a"), NewNode("+", plus, LtoR), leaf("b"))
	t3 := build(leaf("a"), NewNode("+", plus, RtoL), leaf("b"))
	if Fingerprint(t1) == "" {
		t.Fatalf("expected non-empty fingerprint")
	}
	if Fingerprint(t1) != Fingerprint(t2) {
		t.Errorf("expected equal trees to have equal fingerprints")
	}
	if Fingerprint(t1) == Fingerprint(t3) {
		t.Errorf("expected associativity to be part of the fingerprint")
	}
	if Fingerprint(nil) != "" {
		t.Errorf("expected empty fingerprint for nil tree")
	}
}
