package eval

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/pmerge/lang"
	"github.com/npillmayer/pmerge/tree"
)

// Runtime is an environment for evaluating expressions. It holds two scopes:
// constants (pi, e, true, false) and, nested within, global variables.
//
// A runtime is not safe for concurrent use.
type Runtime struct {
	Constants *Scope
	Globals   *Scope
	operand   float64 // priority of operands
}

// NewRuntime constructs a new runtime environment, initialized with constants.
// Trees to evaluate must have been built with operator table ops, which
// defaults to lang.DefaultOpTable().
func NewRuntime(ops *lang.OpTable) *Runtime {
	if ops == nil {
		ops = lang.DefaultOpTable()
	}
	rt := &Runtime{
		Constants: NewScope("constants", nil),
		operand:   ops.Operand,
	}
	rt.Constants.Set("pi", math.Pi)
	rt.Constants.Set("e", math.E)
	rt.Constants.Set("true", true)
	rt.Constants.Set("false", false)
	rt.Globals = NewScope("globals", rt.Constants)
	return rt
}

// Error is an evaluation error.
type Error struct {
	Expr string // rendering of the offending subtree
	Msg  string
}

func (e *Error) Error() string {
	if e.Expr == "" {
		return "eval: " + e.Msg
	}
	return fmt.Sprintf("eval %s: %s", e.Expr, e.Msg)
}

func errorf(n *tree.Node, format string, args ...interface{}) *Error {
	return &Error{Expr: tree.String(n), Msg: fmt.Sprintf(format, args...)}
}

// Eval evaluates an expression tree. Assignments define variables in the
// global scope of rt.
func (rt *Runtime) Eval(n *tree.Node) (interface{}, error) {
	if n == nil {
		return nil, &Error{Msg: "empty expression"}
	}
	v, err := rt.eval(n)
	if err != nil {
		tracer().Debugf("%v", err)
		return nil, err
	}
	tracer().Debugf("%s => %s", n, Format(v))
	return v, nil
}

func (rt *Runtime) eval(n *tree.Node) (interface{}, error) {
	if n == nil {
		return nil, &Error{Msg: "missing operand"}
	}
	if n.Priority() > rt.operand {
		return rt.operator(n)
	}
	switch n.Token() {
	case lang.GroupLabel, lang.ListLabel:
		if n.Left() != nil {
			return rt.call(n)
		}
		return rt.scope(n)
	}
	if !n.IsLeaf() {
		return nil, errorf(n, "cannot apply %s", n.Token())
	}
	return rt.atom(n)
}

// atom evaluates an operand: a number, a string or a variable. Numbers and
// strings usually carry their values, as delivered by the lexer.
func (rt *Runtime) atom(n *tree.Node) (interface{}, error) {
	switch v := n.Value().(type) {
	case float64, string:
		return v, nil
	}
	tok := n.Token()
	first := []rune(tok)[0]
	switch {
	case unicode.IsDigit(first):
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errorf(n, "illegal number")
		}
		return f, nil
	case first == '"' || first == '`' || first == '\'':
		if len(tok) < 2 {
			return nil, errorf(n, "illegal string")
		}
		return tok[1 : len(tok)-1], nil
	}
	v, _ := rt.Globals.Resolve(tok)
	if v == nil {
		return nil, errorf(n, "undefined variable")
	}
	return v.Value, nil
}

// scope evaluates a group or a list.
func (rt *Runtime) scope(n *tree.Node) (interface{}, error) {
	if n.Token() == lang.GroupLabel {
		if n.Scope() == nil {
			return nil, errorf(n, "empty group")
		}
		return rt.eval(n.Scope())
	}
	return rt.list(n.Scope())
}

func (rt *Runtime) list(n *tree.Node) ([]interface{}, error) {
	var values []interface{}
	for _, elem := range elements(n, nil) {
		v, err := rt.eval(elem)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// elements collects the elements of a list separated by ','.
func elements(n *tree.Node, elems []*tree.Node) []*tree.Node {
	if n == nil {
		return elems
	}
	if n.Token() == "," {
		elems = elements(n.Left(), elems)
		return elements(n.Right(), elems)
	}
	return append(elems, n)
}

func (rt *Runtime) operator(n *tree.Node) (interface{}, error) {
	switch n.Token() {
	case "neg":
		x, err := rt.number(n.Right())
		if err != nil {
			return nil, err
		}
		return -x, nil
	case "=":
		return rt.assign(n)
	case ",":
		return nil, errorf(n, "',' outside of list")
	}
	if n.Left() == nil || n.Right() == nil {
		return nil, errorf(n, "missing operand for %s", n.Token())
	}
	x, err := rt.eval(n.Left())
	if err != nil {
		return nil, err
	}
	y, err := rt.eval(n.Right())
	if err != nil {
		return nil, err
	}
	switch n.Token() {
	case "==":
		return reflect.DeepEqual(x, y), nil
	case "!=":
		return !reflect.DeepEqual(x, y), nil
	}
	if s, ok := x.(string); ok {
		return stringOp(n, s, y)
	}
	a, ok1 := x.(float64)
	b, ok2 := y.(float64)
	if !ok1 || !ok2 {
		return nil, errorf(n, "operands must be numbers")
	}
	switch n.Token() {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return nil, errorf(n, "division by zero")
		}
		return a / b, nil
	case "%":
		if b == 0 {
			return nil, errorf(n, "division by zero")
		}
		return math.Mod(a, b), nil
	case "^":
		return math.Pow(a, b), nil
	case "<":
		return a < b, nil
	case ">":
		return a > b, nil
	case "<=":
		return a <= b, nil
	case ">=":
		return a >= b, nil
	}
	return nil, errorf(n, "unknown operator %s", n.Token())
}

func stringOp(n *tree.Node, s string, y interface{}) (interface{}, error) {
	t, ok := y.(string)
	if !ok {
		if n.Token() != "+" {
			return nil, errorf(n, "operands must be strings")
		}
		t = Format(y)
	}
	switch n.Token() {
	case "+":
		return s + t, nil
	case "<":
		return s < t, nil
	case ">":
		return s > t, nil
	case "<=":
		return s <= t, nil
	case ">=":
		return s >= t, nil
	}
	return nil, errorf(n, "operator %s not defined for strings", n.Token())
}

func (rt *Runtime) assign(n *tree.Node) (interface{}, error) {
	target := n.Left()
	if target == nil || !target.IsLeaf() || target.Priority() > rt.operand || !isIdent(target.Token()) {
		return nil, errorf(n, "can only assign to variables")
	}
	if _, scope := rt.Globals.Resolve(target.Token()); scope == rt.Constants {
		return nil, errorf(n, "cannot assign to constant %s", target.Token())
	}
	v, err := rt.eval(n.Right())
	if err != nil {
		return nil, err
	}
	rt.Globals.Set(target.Token(), v)
	return v, nil
}

func (rt *Runtime) number(n *tree.Node) (float64, error) {
	v, err := rt.eval(n)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, errorf(n, "not a number")
	}
	return f, nil
}

func isIdent(s string) bool {
	for i, r := range s {
		if !(r == '_' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return s != ""
}

// Format formats a value for display.
func Format(v interface{}) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return strconv.Quote(x)
	case []interface{}:
		elems := make([]string, len(x))
		for i, e := range x {
			elems[i] = Format(e)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	}
	return fmt.Sprintf("%v", v)
}
