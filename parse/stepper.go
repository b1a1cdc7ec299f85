package parse

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/pmerge/tree"
)

// Stepper builds a tree one token at a time. It is functionally equivalent to
// Parse, but replaces recursion for nested scopes by an explicit stack of parse
// levels. Clients drive a stepper by calling Step until it reports no progress;
// in between, the partial tree is available by Tree.
//
// A stepper is not safe for concurrent use.
type Stepper struct {
	input  Input
	stack  *arraystack.Stack // of *frame, innermost level on top
	top    *tree.Node        // root of the outermost level
	config config
	steps  int
	err    error // sticky error
}

// frame is a parse level. A nested level remembers its owner, the node which
// opened it. The owner is already part of the enclosing level's tree, but gets
// its scope attached only when this level is closed.
type frame struct {
	tokenizer Tokenizer
	root      *tree.Node
	owner     *tree.Node
}

// NewStepper creates a stepper for input, using tok as the tokenizer of the
// outermost parse level.
func NewStepper(tok Tokenizer, input Input, opts ...Option) *Stepper {
	s := &Stepper{
		input:  input,
		stack:  arraystack.New(),
		top:    tree.NewSentinel(),
		config: makeConfig(opts),
	}
	if tok == nil {
		s.err = ErrNoTokenizer
		return s
	}
	s.stack.Push(&frame{tokenizer: tok, root: s.top})
	return s
}

// Step processes one token. It returns true if it made progress, and false if
// the stack of parse levels is empty or input has been exhausted.
//
// When input runs dry with scopes still open, Step closes them, attaching their
// partial trees to their owners. In strict mode it returns an
// UnterminatedScopeError instead. Errors are sticky: after a failed step, every
// call to Step returns the same error.
func (s *Stepper) Step() (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if s.stack.Empty() {
		return false, nil
	}
	if s.input == nil || s.input.Empty() {
		s.err = s.closeAll()
		return false, s.err
	}
	f := s.current()
	d, err := next(f.tokenizer, f.root, s.input)
	if err != nil {
		s.err = err
		return false, err
	}
	s.steps++
	if d.Exit {
		s.stack.Pop()
		tracer().Debugf("step %d: exit %s, %d levels left", s.steps, d, s.stack.Size())
		if f.owner != nil {
			tree.AttachScope(f.owner, f.root.Right())
		}
		return true, nil
	}
	node := d.node()
	tree.Add(f.root, node)
	if d.Scope != nil {
		s.stack.Push(&frame{
			tokenizer: d.Scope,
			root:      tree.NewSentinel(),
			owner:     node,
		})
	}
	tracer().Debugf("step %d: %s, depth %d", s.steps, d, s.Depth())
	return true, nil
}

// closeAll closes all nested levels at the end of input.
func (s *Stepper) closeAll() error {
	if s.stack.Size() <= 1 {
		return nil
	}
	if s.config.strict {
		return &UnterminatedScopeError{Depth: s.stack.Size() - 1}
	}
	tracer().Infof("end of input, closing %d open scopes", s.stack.Size()-1)
	for s.stack.Size() > 1 {
		v, _ := s.stack.Pop()
		f := v.(*frame)
		tree.AttachScope(f.owner, f.root.Right())
	}
	return nil
}

func (s *Stepper) current() *frame {
	v, ok := s.stack.Peek()
	if !ok {
		return nil
	}
	return v.(*frame)
}

// Run calls Step until no more progress is made, and returns the tree.
func (s *Stepper) Run() (*tree.Node, error) {
	for {
		ok, err := s.Step()
		if err != nil {
			return nil, err
		}
		if !ok {
			return s.Tree(), nil
		}
	}
}

// Tree returns the tree of the outermost parse level, without its sentinel root.
// Between steps, this is the partially built tree. Scopes still open are not yet
// attached to their owners; see Current.
func (s *Stepper) Tree() *tree.Node {
	return s.top.Right()
}

// Current returns the root of the innermost open parse level, or nil if all
// levels have been closed.
func (s *Stepper) Current() *tree.Node {
	if f := s.current(); f != nil {
		return f.root
	}
	return nil
}

// Depth returns the number of nested scopes currently open.
func (s *Stepper) Depth() int {
	if s.stack.Size() <= 1 {
		return 0
	}
	return s.stack.Size() - 1
}

// Steps returns the number of tokens processed so far.
func (s *Stepper) Steps() int {
	return s.steps
}

// Done is true if no further tokens will be processed. A final call to Step
// may still be needed to close scopes left open at the end of input.
func (s *Stepper) Done() bool {
	return s.err != nil || s.stack.Empty() || s.input == nil || s.input.Empty()
}

// Err returns the error which stopped the stepper, if any.
func (s *Stepper) Err() error {
	return s.err
}
