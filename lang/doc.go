/*
Package lang implements a small expression language on top of package parse.

Expressions consist of operands (numbers, identifiers, strings), prefix and
infix operators, parenthesized groups and bracketed lists:

    x = -a * (b + 1) ^ 2
    f[x, y + 1, [1, 2]]

Operators and their priorities are taken from an OpTable, loaded from YAML.
A default table is built in; see DefaultOpTable. Groups and lists are nested
scopes: each is parsed at a separate level, with a fresh tree root. Lists
accept operators of their own (e.g., ','), which are invalid elsewhere.

An operand directly followed by a group or list adopts it as an application
of the operand, thus

    lang.Parse("f(x)")       // renders (() `x f)

Parse and NewStepper accept options to switch the lexer (lexmachine per default,
text/scanner with WithGoScanner), the operator table, and strict scope checking.
The grammar of the language is available in EBNF form by Grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmerge.lang'.
func tracer() tracing.Trace {
	return tracing.Select("pmerge.lang")
}
