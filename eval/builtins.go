package eval

import (
	"math"

	"github.com/npillmayer/pmerge/lang"
	"github.com/npillmayer/pmerge/tree"
)

type builtin func(n *tree.Node, args []interface{}) (interface{}, error)

var builtins = map[string]builtin{
	"abs":  numeric1(math.Abs),
	"sqrt": numeric1(math.Sqrt),
	"min":  extremum(math.Min),
	"max":  extremum(math.Max),
	"len":  length,
}

// call applies a built-in function to a group (one argument) or a list
// (one argument per element).
func (rt *Runtime) call(n *tree.Node) (interface{}, error) {
	fn := n.Left()
	if !fn.IsLeaf() || builtins[fn.Token()] == nil {
		return nil, errorf(n, "cannot apply %s", fn)
	}
	var args []interface{}
	if n.Token() == lang.GroupLabel {
		if n.Scope() != nil {
			arg, err := rt.eval(n.Scope())
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	} else {
		var err error
		if args, err = rt.list(n.Scope()); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("calling %s with %d arguments", fn.Token(), len(args))
	return builtins[fn.Token()](n, args)
}

func numeric1(f func(float64) float64) builtin {
	return func(n *tree.Node, args []interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, errorf(n, "expected 1 argument, have %d", len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, errorf(n, "argument must be a number")
		}
		return f(x), nil
	}
}

func extremum(f func(float64, float64) float64) builtin {
	return func(n *tree.Node, args []interface{}) (interface{}, error) {
		if len(args) == 0 {
			return nil, errorf(n, "expected at least 1 argument")
		}
		var r float64
		for i, arg := range args {
			x, ok := arg.(float64)
			if !ok {
				return nil, errorf(n, "arguments must be numbers")
			}
			if i == 0 {
				r = x
			} else {
				r = f(r, x)
			}
		}
		return r, nil
	}
}

func length(n *tree.Node, args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, errorf(n, "expected 1 argument, have %d", len(args))
	}
	switch x := args[0].(type) {
	case string:
		return float64(len(x)), nil
	case []interface{}:
		return float64(len(x)), nil
	}
	return nil, errorf(n, "argument must be a string or a list")
}
