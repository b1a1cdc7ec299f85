package lang

import (
	"fmt"

	"github.com/npillmayer/pmerge"
	"github.com/npillmayer/pmerge/parse"
	"github.com/npillmayer/pmerge/scanner"
	"github.com/npillmayer/pmerge/tree"
	"github.com/npillmayer/schuko/gconf"
)

// Node labels for groups and lists.
const (
	GroupLabel = "()"
	ListLabel  = "[]"
)

// --- Options ---------------------------------------------------------------

// Option configures Parse and NewStepper.
type Option func(c *config)

type config struct {
	goScanner bool
	table     *OpTable
	parseOpts []parse.Option
}

func makeConfig(opts []Option) config {
	c := config{
		goScanner: gconf.GetString("lexer") == "go",
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.table == nil {
		c.table = DefaultOpTable()
	}
	return c
}

// WithGoScanner selects text/scanner as the lexer, instead of lexmachine.
// The Go scanner delivers single-character operators only, thus operators
// like "<=" are not recognized. If this option is not given, the default is
// read from configuration key "lexer" (values "lm" or "go").
func WithGoScanner(b bool) Option {
	return func(c *config) {
		c.goScanner = b
	}
}

// WithTable sets the operator table. The default is DefaultOpTable().
func WithTable(t *OpTable) Option {
	return func(c *config) {
		c.table = t
	}
}

// StrictScopes is passed on to the parser, see parse.StrictScopes.
func StrictScopes(b bool) Option {
	return func(c *config) {
		c.parseOpts = append(c.parseOpts, parse.StrictScopes(b))
	}
}

// --- Parsing ---------------------------------------------------------------

// Parse parses an expression and returns its tree.
func Parse(src string, opts ...Option) (*tree.Node, error) {
	c := makeConfig(opts)
	toks, err := lex(src, &c)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsing %d tokens", len(toks))
	return parse.Parse(Tokenizer(c.table), items(toks), c.parseOpts...)
}

// NewStepper creates a stepper for an expression. It returns an error if
// the expression cannot be lexed.
func NewStepper(src string, opts ...Option) (*parse.Stepper, error) {
	c := makeConfig(opts)
	toks, err := lex(src, &c)
	if err != nil {
		return nil, err
	}
	return parse.NewStepper(Tokenizer(c.table), items(toks), c.parseOpts...), nil
}

func items(toks []pmerge.Token) *parse.Items {
	in := parse.NewItems()
	for _, t := range toks {
		in.Append(t)
	}
	return in
}

// Tokenizer returns the top-level tokenizer for expressions, using operators
// from table. The tokenizer expects its input to be a *parse.Items queue of
// pmerge.Tokens.
func Tokenizer(table *OpTable) parse.Tokenizer {
	tz := &tokenizer{table: table}
	return tz.level("")
}

type tokenizer struct {
	table *OpTable
}

// level returns a tokenizer for a parse level closed by closer. The top level
// has no closer.
func (tz *tokenizer) level(closer string) parse.Tokenizer {
	return func(root *tree.Node, input parse.Input) (parse.Descriptor, error) {
		in, ok := input.(*parse.Items)
		if !ok {
			return parse.Descriptor{}, fmt.Errorf("lang: unexpected input type %T", input)
		}
		item, _ := in.Next()
		tok, ok := item.(pmerge.Token)
		if !ok {
			return parse.Descriptor{}, fmt.Errorf("lang: unexpected input item %v", item)
		}
		return tz.describe(tok, root, closer)
	}
}

func (tz *tokenizer) describe(tok pmerge.Token, root *tree.Node, closer string) (parse.Descriptor, error) {
	lexeme := tok.Lexeme()
	switch tok.TokType() {
	case scanner.Int, scanner.Float, scanner.String:
		return tz.operand(tok), nil
	}
	switch lexeme {
	case "(":
		return parse.Descriptor{Name: GroupLabel, Priority: tz.table.Operand, Scope: tz.level(")")}, nil
	case "[":
		return parse.Descriptor{Name: ListLabel, Priority: tz.table.Operand, Scope: tz.level("]")}, nil
	case ")", "]":
		if lexeme != closer {
			return parse.Descriptor{}, syntaxError(tok, "unbalanced %q", lexeme)
		}
		return parse.Descriptor{Name: lexeme, Exit: true}, nil
	}
	if !tz.table.isOperator(lexeme) {
		if tok.TokType() == scanner.Ident {
			return tz.operand(tok), nil
		}
		return parse.Descriptor{}, syntaxError(tok, "unknown operator %q", lexeme)
	}
	if prefixContext(root, tz.table.Operand) {
		if op, ok := tz.table.prefix[lexeme]; ok {
			return describeOp(op), nil
		}
		if tz.isInfix(lexeme, closer) {
			return parse.Descriptor{}, syntaxError(tok, "missing operand before %q", lexeme)
		}
	} else if op, ok := tz.infix(lexeme, closer); ok {
		return describeOp(op), nil
	}
	return parse.Descriptor{}, syntaxError(tok, "unknown operator %q", lexeme)
}

// operand describes an identifier, number or string. Values delivered by the
// lexer travel with the node.
func (tz *tokenizer) operand(tok pmerge.Token) parse.Descriptor {
	return parse.Descriptor{Name: tok.Lexeme(), Priority: tz.table.Operand, Value: tok.Value()}
}

func (tz *tokenizer) infix(lexeme, closer string) (OpDef, bool) {
	if closer == "]" {
		if op, ok := tz.table.list[lexeme]; ok {
			return op, true
		}
	}
	op, ok := tz.table.infix[lexeme]
	return op, ok
}

func (tz *tokenizer) isInfix(lexeme, closer string) bool {
	_, ok := tz.infix(lexeme, closer)
	return ok
}

func describeOp(op OpDef) parse.Descriptor {
	return parse.Descriptor{Name: op.Label(), Priority: op.Priority, Assoc: op.assoc()}
}

// prefixContext is true if the next token starts an operand, i.e. if the
// current level is empty or its rightmost node is an operator.
func prefixContext(root *tree.Node, operand float64) bool {
	last := root
	for last.Right() != nil {
		last = last.Right()
	}
	return last.IsSentinel() || last.Priority() > operand
}
