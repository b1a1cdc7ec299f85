/*
Package eval evaluates expression trees of package lang.

Evaluation works on trees built with the default operator table. Operands are
numbers (float64), strings and variables; lists evaluate to slices. Variables
are defined by assignment and live in a scope of a Runtime:

    rt := eval.NewRuntime(nil)
    t, _ := lang.Parse("x = 2 * 3")
    rt.Eval(t)                       // 6
    t, _ = lang.Parse("max[x, 10] - x")
    rt.Eval(t)                       // 4

Application of a name to a group or list calls a built-in function
(abs, sqrt, min, max, len).

Symbol Table and Scope Tree

Symbol tables are attached to scopes; scopes link back to a parent scope.
Variables are resolved by searching upwards through the chain of scopes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmerge.eval'.
func tracer() tracing.Trace {
	return tracing.Select("pmerge.eval")
}
