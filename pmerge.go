package pmerge

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to applications to define them.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// are consumed by tokenizers, which turn them into tree nodes.
//
// Tokenizers usually describe a token by its lexeme and type. Values are
// optional; lexers of this module deliver them for numbers and strings:
//
//    TokType = Float       // category of the token, defined by the lexer
//    Lexeme  = "3.1416"    // text as found in the input
//    Value   = 3.1416      // float64 value, passed on to tree nodes
//    Span    = 67…73       // byte offsets in the input
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// IsNull is true for the zero span, which denotes an unknown run of input.
func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
