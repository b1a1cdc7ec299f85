package lang

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/pmerge"
	"github.com/npillmayer/pmerge/parse"
	"github.com/npillmayer/pmerge/tree"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var exprTests = []struct {
	input    string
	expected string
}{
	{"1", "1"},
	{"1 + 2 * 3", "(+ 1 (* 2 3))"},
	{"1 * 2 + 3", "(+ (* 1 2) 3)"},
	{"1 * 2 / 3", "(/ (* 1 2) 3)"},
	{"a - b - c", "(- (- a b) c)"},
	{"2 ^ 3 ^ 4", "(^ 2 (^ 3 4))"},
	{"a = b = c", "(= a (= b c))"},
	{"x = 1 + 2 < 3", "(= x (< (+ 1 2) 3))"},
	{"-a * b", "(* (neg a) b)"},
	{"a * -b", "(* a (neg b))"},
	{"- - a", "(neg (neg a))"},
	{"a - -b", "(- a (neg b))"},
	{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
	{"-(a + b)", "(neg (+ a b))"},
	{"((a))", "a"},
	{"()", "()"},
	{"f(x)", "(() `x f)"},
	{"f(x) + 1", "(+ (() `x f) 1)"},
	{"f[x, y]", "([] `(, x y) f)"},
	{"[1, 2 + 3, [4]]", "(, (, 1 (+ 2 3)) 4)"},
	{`"hi" + x // comment`, `(+ "hi" x)`},
	{"", ""},
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.lang")
	defer teardown()
	//
	for _, test := range exprTests {
		tr, err := Parse(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.expected, tree.String(tr)); diff != "" {
			t.Errorf("%q: unexpected tree (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestStepper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.lang")
	defer teardown()
	//
	for _, test := range exprTests {
		s, err := NewStepper(test.input)
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		tr, err := s.Run()
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.expected, tree.String(tr)); diff != "" {
			t.Errorf("%q: unexpected tree (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestMultiCharOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.lang")
	defer teardown()
	//
	tr, err := Parse("a <= b == c != d")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("(!= (== (<= a b) c) d)", tr.String()); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestGoScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.lang")
	defer teardown()
	//
	for _, input := range []string{"1 + 2 * 3", "f[x, -y]", "(a + b"} {
		want, err := Parse(input)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Parse(input, WithGoScanner(true))
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if diff := cmp.Diff(want.String(), got.String()); diff != "" {
			t.Errorf("%q: lexers disagree (-lexmachine +go):\n%s", input, diff)
		}
	}
	_, err := Parse("a <= b", WithGoScanner(true))
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Errorf("expected Go scanner to split '<=', got %v", err)
	}
}

func TestLexerFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.lang")
	defer teardown()
	//
	gconf.Initialize(testconfig.Conf{"lexer": "go"})
	defer gconf.Initialize(testconfig.Conf{})
	if _, err := Parse("a <= b"); err == nil {
		t.Errorf("expected configured Go scanner to reject '<='")
	}
	if _, err := Parse("a <= b", WithGoScanner(false)); err != nil {
		t.Errorf("expected option to override configuration, got %v", err)
	}
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.lang")
	defer teardown()
	//
	var tests = []struct {
		input string
		pos   uint64
		msg   string
	}{
		{"a ~ b", 2, "unexpected input"},
		{"* a", 0, "missing operand"},
		{"a + * b", 4, "missing operand"},
		{"a ) b", 2, "unbalanced"},
		{"(a]", 2, "unbalanced"},
		{"(a, b)", 2, "unknown operator"},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("%q: expected SyntaxError, got %v", test.input, err)
			continue
		}
		if serr.Issues[0].Span.From() != test.pos || !strings.Contains(serr.Issues[0].Msg, test.msg) {
			t.Errorf("%q: expected %q at %d, got %v", test.input, test.msg, test.pos, serr)
		}
	}
	_, err := Parse("a ~ b", WithGoScanner(true))
	var serr *SyntaxError
	if !errors.As(err, &serr) || !strings.Contains(serr.Error(), "unknown operator") {
		t.Errorf("expected unknown operator from Go scanner, got %v", err)
	}
}

func TestStrictScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.lang")
	defer teardown()
	//
	tr, err := Parse("(a + [b")
	if err != nil {
		t.Fatal(err)
	}
	if tr.String() != "(+ a b)" {
		t.Errorf("expected partial tree (+ a b), got %s", tr)
	}
	_, err = Parse("(a + [b", StrictScopes(true))
	var ute *parse.UnterminatedScopeError
	if !errors.As(err, &ute) || ute.Depth != 2 {
		t.Errorf("expected unterminated scope error of depth 2, got %v", err)
	}
}

func TestCustomTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.lang")
	defer teardown()
	//
	yml := `
operand: 0
infix:
  - { op: "+", priority: 10, assoc: ltr }
  - { op: "*", priority: 20, assoc: rtl }
  - { op: "&&", name: "and", priority: 30, assoc: ltr }
`
	table, err := LoadOpTable(strings.NewReader(yml))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"&&", "*", "+"}, table.Symbols()); diff != "" {
		t.Errorf("unexpected symbols (-want +got):\n%s", diff)
	}
	tr, err := Parse("1 + 2 * 3 * 4 && x", WithTable(table))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("(and (* (+ 1 2) (* 3 4)) x)", tr.String()); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestWordOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.lang")
	defer teardown()
	//
	yml := `
operand: 0
prefix:
  - { op: "not", priority: 5, assoc: rtl }
infix:
  - { op: "mod", priority: 40, assoc: ltr }
  - { op: "+", priority: 50, assoc: ltr }
  - { op: "and", priority: 80, assoc: ltr }
`
	table, err := LoadOpTable(strings.NewReader(yml))
	if err != nil {
		t.Fatal(err)
	}
	var tests = []struct {
		input, expected string
	}{
		{"7 mod 2 + 1", "(+ (mod 7 2) 1)"},
		{"modulo mod d + n", "(+ (mod modulo d) n)"},
		{"not a and b", "(and (not a) b)"},
	}
	for _, goScanner := range []bool{false, true} {
		for _, test := range tests {
			tr, err := Parse(test.input, WithTable(table), WithGoScanner(goScanner))
			if err != nil {
				t.Errorf("%q (Go scanner = %v): %v", test.input, goScanner, err)
				continue
			}
			if diff := cmp.Diff(test.expected, tr.String()); diff != "" {
				t.Errorf("%q (Go scanner = %v): unexpected tree (-want +got):\n%s", test.input, goScanner, diff)
			}
		}
		_, err := Parse("a mod mod b", WithTable(table), WithGoScanner(goScanner))
		var serr *SyntaxError
		if !errors.As(err, &serr) || serr.Issues[0].Span != (pmerge.Span{6, 9}) {
			t.Errorf("expected missing operand at (6…9), got %v", err)
		}
	}
}

func TestBadTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.lang")
	defer teardown()
	//
	var tables = []string{
		`infix: [ { op: "+", priority: 10, assoc: up } ]`,
		`infix: [ { op: "+", priority: 0, assoc: ltr } ]`,
		`infix: [ { op: "", priority: 10, assoc: ltr } ]`,
		`infix: [ { op: "+", priority: 10, assoc: ltr }, { op: "+", priority: 20, assoc: ltr } ]`,
		`{ prefix: [ { op: "-", priority: 20, assoc: rtl } ], infix: [ { op: "+", priority: 10, assoc: ltr } ] }`,
		`{ list: [ { op: "+", priority: 20, assoc: ltr } ], infix: [ { op: "+", priority: 10, assoc: ltr } ] }`,
		`{ operand: 0, unknown: 1 }`,
		`operand: .nan`,
		`infix: [ { op: "a+", priority: 10, assoc: ltr } ]`,
		`infix: [ { op: "2x", priority: 10, assoc: ltr } ]`,
		`infix: [ { op: "<)", priority: 10, assoc: ltr } ]`,
	}
	for _, yml := range tables {
		if _, err := LoadOpTable(strings.NewReader(yml)); err == nil {
			t.Errorf("expected error for table %s", yml)
		}
	}
	if DefaultOpTable() != DefaultOpTable() {
		t.Errorf("expected default table to be loaded once")
	}
}

func TestNumberValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.lang")
	defer teardown()
	//
	c := makeConfig(nil)
	toks, err := lex("x + 3.25", &c)
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, have %d", len(toks))
	}
	if v, ok := toks[2].Value().(float64); !ok || v != 3.25 {
		t.Errorf("expected numeric value 3.25, got %v", toks[2].Value())
	}
	if toks[1].TokType() != Operator || toks[0].TokType() != Ident {
		t.Errorf("unexpected token types %d, %d", toks[0].TokType(), toks[1].TokType())
	}
	for _, goScanner := range []bool{false, true} {
		tr, err := Parse(`x + 3.25 + "s"`, WithGoScanner(goScanner))
		if err != nil {
			t.Fatal(err)
		}
		got := []interface{}{tr.Left().Left().Value(), tr.Left().Right().Value(), tr.Right().Value()}
		if diff := cmp.Diff([]interface{}{nil, 3.25, "s"}, got); diff != "" {
			t.Errorf("unexpected node values (-want +got):\n%s", diff)
		}
	}
}

func TestGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmerge.lang")
	defer teardown()
	//
	g, err := VerifyGrammar()
	if err != nil {
		t.Fatal(err)
	}
	for _, prod := range []string{"Expression", "Group", "List", "number"} {
		if _, ok := g[prod]; !ok {
			t.Errorf("expected production %s in grammar", prod)
		}
	}
	for _, op := range DefaultOpTable().Symbols() {
		if !strings.Contains(Grammar(), `"`+op+`"`) {
			t.Errorf("operator %q missing from grammar", op)
		}
	}
}
