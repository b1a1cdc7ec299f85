package lang

import (
	"bytes"
	_ "embed"

	"golang.org/x/exp/ebnf"
)

//go:embed grammar.ebnf
var grammarSrc []byte

// StartSymbol is the start production of the grammar.
const StartSymbol = "Expression"

// Grammar returns the grammar of the expression language in EBNF, for the
// default operator table. Brackets in the grammar are scopes of the parser;
// operator priorities are not part of the grammar.
func Grammar() string {
	return string(grammarSrc)
}

// VerifyGrammar parses the grammar and checks that all productions are
// defined and reachable from StartSymbol.
func VerifyGrammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", bytes.NewReader(grammarSrc))
	if err != nil {
		return nil, err
	}
	if err = ebnf.Verify(g, StartSymbol); err != nil {
		return nil, err
	}
	return g, nil
}
