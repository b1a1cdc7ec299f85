/*
Package lexmach provides an adapter to use the lexmachine scanner generator as
a lexer for pmerge tokenizers.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing keywords and regular expressions.
Please refer to the lexmachine documentation on how to instruct lexmachine.
Package lexmach is very opinionated on how to do the setup of lexmachine.

	var literals []string       // The tokens representing literal strings
	var keywords []string       // The keyword tokens
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a token
	}

Having that, clients use `NewLMAdapter` to wrap lexmachine into a scanner.Lexer.
NewLMAdapter will return an error if compiling the DFA failed.
An adapter is safe to share; a scanner is instantiated for each input.

	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	scan, err := LM.Scanner("a + b*c")
	tokens := scanner.Tokens(scan)

Unmatched input is reported to the scanner's error handler as a
*scanner.PositionError, and scanning resumes behind the offending text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
