package parse

import (
	"fmt"

	"github.com/npillmayer/pmerge/tree"
)

// Test tokenizers work on input of plain strings, one word per token.
//
//    ( … )   group, parsed by exprTok
//    [ … ]   list, parsed by listTok, where ',' is an operator
//    PLUS +  priority 50, ltr
//    TIMES * priority 40, ltr
//    POW ^   priority 30, rtl
//
// Every other word is an operand of priority 0.

const operand = 0.0

var ops = map[string]struct {
	prio  float64
	assoc tree.Assoc
}{
	"PLUS":  {50, tree.LtoR},
	"+":     {50, tree.LtoR},
	"TIMES": {40, tree.LtoR},
	"*":     {40, tree.LtoR},
	"POW":   {30, tree.RtoL},
	"^":     {30, tree.RtoL},
}

func word(input Input) (string, error) {
	items, ok := input.(*Items)
	if !ok {
		return "", fmt.Errorf("unexpected input type %T", input)
	}
	w, _ := items.Next()
	return w.(string), nil
}

func exprTok(root *tree.Node, input Input) (Descriptor, error) {
	w, err := word(input)
	if err != nil {
		return Descriptor{}, err
	}
	return describe(w), nil
}

func listTok(root *tree.Node, input Input) (Descriptor, error) {
	w, err := word(input)
	if err != nil {
		return Descriptor{}, err
	}
	switch w {
	case ",":
		return Descriptor{Name: ",", Priority: 100, Assoc: tree.LtoR}, nil
	case "]":
		return Descriptor{Name: "]", Exit: true}, nil
	}
	return describe(w), nil
}

func describe(w string) Descriptor {
	switch w {
	case "(":
		return Descriptor{Name: "()", Priority: operand, Scope: exprTok}
	case ")":
		return Descriptor{Name: ")", Exit: true}
	case "[":
		return Descriptor{Name: "[]", Priority: operand, Scope: listTok}
	}
	if op, ok := ops[w]; ok {
		return Descriptor{Name: w, Priority: op.prio, Assoc: op.assoc}
	}
	return Descriptor{Name: w, Priority: operand}
}

// juxtaTok inserts an implicit operator '·' between adjacent operands,
// without consuming input. It inspects the tree built so far to find out
// if the rightmost node of the current level is an operand.
func juxtaTok(root *tree.Node, input Input) (Descriptor, error) {
	items := input.(*Items)
	w, _ := items.Peek()
	last := root
	for last.Right() != nil {
		last = last.Right()
	}
	d := describe(w.(string))
	if !last.IsSentinel() && last.Priority() == operand && d.Priority == operand && !d.Exit {
		return Descriptor{Name: "·", Priority: 45, Assoc: tree.LtoR}, nil
	}
	items.Next()
	if d.Scope != nil {
		d.Scope = juxtaTok
	}
	return d, nil
}

// stepAll runs a stepper to completion.
func stepAll(tok Tokenizer, input Input, opts ...Option) (*tree.Node, error) {
	return NewStepper(tok, input, opts...).Run()
}
