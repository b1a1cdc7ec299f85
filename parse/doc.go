/*
Package parse builds precedence trees from a stream of input items.

Parsing is driven by a Tokenizer, a function supplied by the client. Every call
to a tokenizer consumes zero or more items from the input and describes a token:
its name, priority and associativity. A token may open a nested scope, which is
then parsed with a tokenizer of its own and a fresh root, or it may close the
current scope.

Trees are built in one of two modes:

■ Parse runs to completion and returns the finished tree.

■ A Stepper processes exactly one token per call to Step. Between steps the
partially built tree may be inspected, e.g. for displaying tree growth in an
animation.

For identical tokenizers and input, both modes produce identical trees.

Scopes left open at the end of input are accepted by default, with their
partial trees attached to their owners. Option StrictScopes changes this to
return an UnterminatedScopeError. The default may be set by configuration key
"strict-scopes".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmerge.parse'.
func tracer() tracing.Trace {
	return tracing.Select("pmerge.parse")
}
