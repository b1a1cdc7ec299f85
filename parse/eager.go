package parse

import (
	"errors"

	"github.com/npillmayer/pmerge/tree"
)

// ErrNoTokenizer is returned by Parse and Stepper.Step if no tokenizer has
// been given.
var ErrNoTokenizer = errors.New("parse: no tokenizer given")

// Parse builds a tree from input, using tok as the tokenizer for the outermost
// parse level. Tokens opening a scope cause a recursive parse run with a fresh
// root, ending with an exit token or at the end of input.
//
// Parse returns the tree without its sentinel root, which is nil if no token
// has been inserted. Parsing stops early if an exit token is read at the
// outermost level; remaining input is left unconsumed.
//
// Errors from the tokenizer are returned without a tree, as are InvalidTokenErrors
// and, in strict mode, UnterminatedScopeErrors.
func Parse(tok Tokenizer, input Input, opts ...Option) (*tree.Node, error) {
	if tok == nil {
		return nil, ErrNoTokenizer
	}
	if input == nil {
		return nil, nil
	}
	c := makeConfig(opts)
	t, _, err := parseLevel(tok, input, 0, &c)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// parseLevel builds the tree of a single parse level. It returns the tree and
// a flag telling if the level has been closed by an exit token.
func parseLevel(tok Tokenizer, input Input, depth int, c *config) (*tree.Node, bool, error) {
	root := tree.NewSentinel()
	for !input.Empty() {
		d, err := next(tok, root, input)
		if err != nil {
			return nil, false, err
		}
		if d.Exit {
			tracer().Debugf("exit from level %d with %s", depth, d)
			return root.Right(), true, nil
		}
		node := d.node()
		if d.Scope != nil {
			tracer().Debugf("enter level %d with %s", depth+1, d)
			scope, _, err := parseLevel(d.Scope, input, depth+1, c)
			if err != nil {
				return nil, false, err
			}
			tree.AttachScope(node, scope)
		}
		tree.Add(root, node)
	}
	if depth > 0 && c.strict {
		return nil, false, &UnterminatedScopeError{Depth: depth}
	}
	return root.Right(), false, nil
}
