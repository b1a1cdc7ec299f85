package parse

import (
	"fmt"
	"math"

	"github.com/npillmayer/pmerge/tree"
)

// Input is a stream of items to be consumed by tokenizers. The parser itself
// never inspects items; it only checks for the end of input. Tokenizers will
// usually type-assert the input to the concrete stream type they expect.
type Input interface {
	Empty() bool
}

// Tokenizer is a client-supplied function which consumes items from input and
// describes the next token. root is the root of the current parse level, to be
// used by tokenizers which depend on the tree built so far (e.g., for telling
// prefix operators from infix ones).
//
// Tokenizers are called only if input is not empty.
type Tokenizer func(root *tree.Node, input Input) (Descriptor, error)

// Descriptor describes a token, as returned by a Tokenizer.
//
// If Scope is set, a nested parse level will be opened, using Scope as its
// tokenizer. The resulting tree will be attached to the token's node as its scope.
// If Exit is set, the current parse level is closed. Exit tokens are never
// inserted into a tree.
type Descriptor struct {
	Name     string      // token label, may not be empty
	Priority float64     // priority, may not be NaN
	Assoc    tree.Assoc  // associativity
	Scope    Tokenizer   // tokenizer for a nested scope, or nil
	Exit     bool        // close the current scope
	Value    interface{} // optional payload for the node, e.g. a number's value
}

func (d Descriptor) String() string {
	s := fmt.Sprintf("<%s %g %s", d.Name, d.Priority, d.Assoc)
	if d.Scope != nil {
		s += " scope"
	}
	if d.Exit {
		s += " exit"
	}
	return s + ">"
}

// validate checks a descriptor delivered by a tokenizer.
func validate(d Descriptor) error {
	if d.Exit {
		if d.Scope != nil {
			return &InvalidTokenError{Descriptor: d, Reason: "token may not both open and close a scope"}
		}
		return nil
	}
	if d.Name == "" {
		return &InvalidTokenError{Descriptor: d, Reason: "missing name"}
	}
	if math.IsNaN(d.Priority) {
		return &InvalidTokenError{Descriptor: d, Reason: "missing priority"}
	}
	return nil
}

// next calls a tokenizer and checks its result.
func next(tok Tokenizer, root *tree.Node, input Input) (Descriptor, error) {
	d, err := tok(root, input)
	if err != nil {
		return d, fmt.Errorf("tokenizer failed: %w", err)
	}
	if err = validate(d); err != nil {
		tracer().Errorf("%v", err)
		return d, err
	}
	return d, nil
}

func (d Descriptor) node() *tree.Node {
	n := tree.NewNode(d.Name, d.Priority, d.Assoc)
	if d.Value != nil {
		n.SetValue(d.Value)
	}
	return n
}
