/*
Package scanner defines an interface for lexers delivering tokens to tokenizers
of package parse.

Two lexer implementations are provided: (1) a lexer for Go-like operands over
the Go std lib 'text/scanner', and (2) an adapter for lexmachine, living in
sub-package `lexmach`.

Lexers report errors to an error handler instead of stopping. Function Tokens
drains a lexer into a slice of tokens, suited for filling a parse.Items queue.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"strconv"
	"text/scanner"

	"github.com/npillmayer/pmerge"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmerge.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pmerge.scanner")
}

// Token types shared by all lexers of this module. They are identical to the
// ones of text/scanner. Operators use the remaining positive values.
const (
	EOF     = scanner.EOF
	Ident   = scanner.Ident
	Int     = scanner.Int
	Float   = scanner.Float
	String  = scanner.String
	Comment = scanner.Comment
)

// Lexer is a scanner interface.
type Lexer interface {
	NextToken() pmerge.Token
	SetErrorHandler(func(error))
}

// Tokens reads tokens from a lexer until EOF. The EOF token is not included.
func Tokens(lx Lexer) []pmerge.Token {
	var toks []pmerge.Token
	for {
		tok := lx.NextToken()
		if tok == nil || tok.TokType() == EOF {
			break
		}
		toks = append(toks, tok)
	}
	tracer().Debugf("lexer delivered %d tokens", len(toks))
	return toks
}

// PositionError is a lexer error for a run of input.
type PositionError struct {
	Span pmerge.Span
	Msg  string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Msg)
}

// Default error reporting function for lexers
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// --- Tokens ----------------------------------------------------------------

// Token is the token type delivered by the lexers of this module.
type Token struct {
	Kind pmerge.TokType
	Text string      // lexeme
	Val  interface{} // value of operands, if known
	Loc  pmerge.Span
}

var _ pmerge.Token = Token{}

func (t Token) TokType() pmerge.TokType { return t.Kind }
func (t Token) Lexeme() string          { return t.Text }
func (t Token) Value() interface{}      { return t.Val }
func (t Token) Span() pmerge.Span       { return t.Loc }

func (t Token) String() string {
	return fmt.Sprintf("<%d %q %s>", t.Kind, t.Text, t.Loc)
}

// --- Go lexer --------------------------------------------------------------

// TextLexer is a lexer backed by scanner.Scanner, recognizing operands the way
// Go does. Create one with GoLexer.
//
// Numbers carry their float64 value and strings their unquoted text. Raw strings
// and character literals are delivered as strings. Operators are delivered
// as single-character tokens, with the character as token type; multi-character
// operators like "<=" are not combined.
type TextLexer struct {
	sc    scanner.Scanner
	Error func(error) // error handler
}

var _ Lexer = (*TextLexer)(nil)

// GoLexer creates a lexer for input. Comments are skipped.
func GoLexer(sourceID string, input io.Reader) *TextLexer {
	lx := &TextLexer{Error: logError}
	lx.sc.Init(input)
	lx.sc.Filename = sourceID
	lx.sc.Error = func(s *scanner.Scanner, msg string) {
		from := s.Pos().Offset
		if s.Position.IsValid() {
			from = s.Position.Offset
		}
		lx.Error(&PositionError{Span: pmerge.Span{uint64(from), uint64(s.Pos().Offset)}, Msg: msg})
	}
	return lx
}

// SetErrorHandler sets an error handler for the lexer.
func (lx *TextLexer) SetErrorHandler(h func(error)) {
	if h == nil {
		lx.Error = logError
		return
	}
	lx.Error = h
}

// NextToken is part of the Lexer interface.
func (lx *TextLexer) NextToken() pmerge.Token {
	kind := lx.sc.Scan()
	tok := Token{
		Kind: pmerge.TokType(kind),
		Text: lx.sc.TokenText(),
		Loc:  pmerge.Span{uint64(lx.sc.Position.Offset), uint64(lx.sc.Pos().Offset)},
	}
	switch kind {
	case scanner.EOF:
		tracer().Debugf("Go lexer reached end of input")
	case scanner.Int:
		if n, err := strconv.ParseInt(tok.Text, 0, 64); err == nil {
			tok.Val = float64(n)
		}
	case scanner.Float:
		if f, err := strconv.ParseFloat(tok.Text, 64); err == nil {
			tok.Val = f
		}
	case scanner.String, scanner.RawString, scanner.Char:
		tok.Kind = String
		if s, err := strconv.Unquote(tok.Text); err == nil {
			tok.Val = s
		}
	}
	return tok
}
