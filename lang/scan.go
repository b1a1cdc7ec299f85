package lang

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/pmerge"
	"github.com/npillmayer/pmerge/scanner"
	"github.com/npillmayer/pmerge/scanner/lexmach"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the lexmachine lexer. Operands share their types with
// text/scanner, so tokenizers need not care about which lexer is in use.
const (
	Ident    = scanner.Ident
	Number   = scanner.Float
	String   = scanner.String
	Operator = 1 // operators and brackets
)

// The tokens representing brackets
var brackets = []string{"(", ")", "[", "]"}

var lexers sync.Map // of *OpTable -> *lexmach.LMAdapter

// lmAdapter returns the lexmachine lexer for an operator table. Lexers are
// created once per table and are read-only thereafter.
func lmAdapter(table *OpTable) (*lexmach.LMAdapter, error) {
	if lm, ok := lexers.Load(table); ok {
		return lm.(*lexmach.LMAdapter), nil
	}
	tracer().Infof("Creating lexer")
	var literals, keywords []string
	for _, op := range table.Symbols() {
		if isWord(op) {
			keywords = append(keywords, op)
		} else {
			literals = append(literals, op)
		}
	}
	literals = append(literals, brackets...)
	tokenIds := make(map[string]int, len(literals)+len(keywords))
	for _, op := range append(keywords, literals...) {
		tokenIds[op] = Operator
	}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), lexmach.Skip) // skip comments
		lexer.Add([]byte(`\"[^"]*\"`), makeString)
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), lexmach.MakeToken("ID", Ident))
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeNumber)
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
	}
	lm, err := lexmach.NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		return nil, err
	}
	actual, _ := lexers.LoadOrStore(table, lm)
	return actual.(*lexmach.LMAdapter), nil
}

// makeNumber is a lexmachine action which converts numbers to float64 values.
func makeNumber(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	f, err := strconv.ParseFloat(string(m.Bytes), 64)
	if err != nil {
		return nil, err
	}
	return s.Token(Number, f, m), nil
}

// makeString is a lexmachine action which strips the quotes off strings.
func makeString(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return s.Token(String, string(m.Bytes[1:len(m.Bytes)-1]), m), nil
}

// lex reads all tokens from src. Errors reported by the lexer are collected
// into a SyntaxError.
func lex(src string, c *config) ([]pmerge.Token, error) {
	var lx scanner.Lexer
	if c.goScanner {
		lx = scanner.GoLexer("input", strings.NewReader(src))
	} else {
		lm, err := lmAdapter(c.table)
		if err != nil {
			return nil, err
		}
		s, err := lm.Scanner(src)
		if err != nil {
			return nil, err
		}
		lx = s
	}
	serr := &SyntaxError{}
	lx.SetErrorHandler(serr.add)
	toks := scanner.Tokens(lx)
	if len(serr.Issues) > 0 {
		return nil, serr
	}
	return toks, nil
}

// --- Errors ----------------------------------------------------------------

// Issue is a single problem found in the input.
type Issue struct {
	Span pmerge.Span // offending input, null if unknown
	Msg  string
}

// SyntaxError lists problems found in the input.
type SyntaxError struct {
	Issues []Issue
}

func syntaxError(tok pmerge.Token, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Issues: []Issue{{
		Span: tok.Span(),
		Msg:  fmt.Sprintf(format, args...),
	}}}
}

func (e *SyntaxError) add(err error) {
	if perr, ok := err.(*scanner.PositionError); ok {
		e.Issues = append(e.Issues, Issue{Span: perr.Span, Msg: perr.Msg})
		return
	}
	e.Issues = append(e.Issues, Issue{Msg: err.Error()})
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString("syntax error")
	for i, issue := range e.Issues {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		if !issue.Span.IsNull() {
			fmt.Fprintf(&b, "%s ", issue.Span)
		}
		b.WriteString(issue.Msg)
	}
	return b.String()
}
