package lexmach

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/pmerge"
	"github.com/npillmayer/pmerge/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'pmerge.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pmerge.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a lexer.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// Literals and keywords take precedence over patterns added by init, if both
// match input of the same length. Thus keywords are not mistaken for identifiers.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	words := make([]string, 0, len(keywords)+len(literals))
	words = append(append(words, keywords...), literals...)
	for _, word := range words {
		adapter.Lexer.Add([]byte(quote(word)), MakeToken(word, tokenIds[word]))
	}
	if init != nil {
		init(adapter.Lexer)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// quote turns a literal into a lexmachine pattern matching it verbatim.
// Letters and digits are left alone, as an escaped 'd' or 'n' denotes a class.
func quote(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Scanner creates a scanner for a given input. The scanner will implement the
// scanner.Lexer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// scanner.Lexer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Lexer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the scanner.Lexer interface.
//
// Unconsumed input is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() pmerge.Token {
	if lms.scanner == nil {
		return scanner.Token{Kind: scanner.EOF}
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.Error(&scanner.PositionError{
				Span: pmerge.Span{uint64(ui.StartTC), uint64(ui.FailTC)},
				Msg:  fmt.Sprintf("unexpected input %q", unconsumed(ui)),
			})
			lms.scanner.TC = ui.FailTC
		} else {
			lms.Error(err)
			return scanner.Token{Kind: scanner.EOF}
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.Token{Kind: scanner.EOF}
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return scanner.Token{
		Kind: pmerge.TokType(token.Type),
		Text: string(token.Lexeme),
		Val:  token.Value,
		Loc:  pmerge.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
}

// unconsumed extracts the offending text from a lexmachine error.
func unconsumed(ui *machines.UnconsumedInput) string {
	from, to := ui.StartTC, ui.FailTC
	if from < 0 || to > len(ui.Text) || from >= to {
		return ""
	}
	return string(ui.Text[from:to])
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
