/*
Package pmerge is a toolbox for precedence-merge tree construction.

PMerge builds binary trees from a stream of tokens, where every token carries a
priority and an associativity. Tree shape follows from these two values alone,
without a grammar or a parser generator. Package structure is as follows:

■ tree: Package tree implements the tree node, the insertion primitive along the
right spine of a tree, and a canonical text rendering.

■ parse: Package parse drives insertion from a pluggable tokenizer, either eagerly
or step by step, one token per call.

■ scanner: Package scanner defines lexers producing input tokens for tokenizers.

■ lang: Package lang is a small expression language built on top of the others,
mainly for demonstration and experiments.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pmerge
