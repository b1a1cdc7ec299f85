/*
Command pmerge is a command line tool for experiments with precedence merge
trees. It parses expressions of the demo language of package lang and displays
the resulting trees, either all at once or step by step.

    pmerge parse --eval "a + b * c"
    pmerge step --delay 500ms "x = -(a + b) ^ 2"
    pmerge repl
    pmerge grammar

Flags common to all sub-commands select the lexer (--lexer lm|go), an operator
table in YAML format (--ops), strict checking of unterminated scopes (--strict)
and the trace level (--trace Debug|Info|Error).

The REPL evaluates every expression it parses, keeping variables between
lines. Commands :step and :tree toggle stepwise mode and the tree view, :vars
lists variables and :quit ends the session.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmerge.cmd'
func tracer() tracing.Trace {
	return tracing.Select("pmerge.cmd")
}
