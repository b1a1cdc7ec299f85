package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pmerge/eval"
	"github.com/npillmayer/pmerge/lang"
	"github.com/npillmayer/pmerge/tree"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	opts     []lang.Option
	ops      *lang.OpTable // nil for the default table
	stepwise bool       // build trees step by step
	view     bool       // display tree views
	last     *tree.Node // last tree built
	rt       *eval.Runtime
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Batch evaluates lines from a non-interactive input.
func (intp *Intp) Batch(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineno := 1
	for scanner.Scan() {
		quit, err := intp.Eval(scanner.Text())
		if err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		if quit {
			break
		}
		lineno++
	}
	return scanner.Err()
}

// Eval evaluates a line of input, either a command or an expression.
func (intp *Intp) Eval(line string) (bool, error) {
	if line = strings.TrimSpace(line); line == "" {
		return false, nil
	}
	switch line {
	case ":quit", ":q":
		return true, nil
	case ":step":
		intp.stepwise = !intp.stepwise
		pterm.Info.Printf("stepwise mode is %v\n", onOff(intp.stepwise))
		return false, nil
	case ":vars":
		if intp.rt != nil {
			for _, name := range intp.rt.Globals.Vars().Names() {
				v, _ := intp.rt.Globals.Resolve(name)
				pterm.Println(name + " = " + eval.Format(v.Value))
			}
		}
		return false, nil
	case ":tree":
		intp.view = !intp.view
		pterm.Info.Printf("tree view is %v\n", onOff(intp.view))
		return false, nil
	}
	if strings.HasPrefix(line, ":") {
		pterm.Info.Println("commands are :step, :tree, :vars and :quit")
		return false, nil
	}
	var err error
	if intp.stepwise {
		intp.last, err = intp.step(line)
	} else {
		intp.last, err = lang.Parse(line, intp.opts...)
	}
	if err != nil {
		return false, err
	}
	printTree(intp.last, intp.view)
	if intp.rt == nil {
		intp.rt = eval.NewRuntime(intp.ops)
	}
	printValue(intp.rt, intp.last)
	return false, nil
}

func (intp *Intp) step(line string) (*tree.Node, error) {
	stepper, err := lang.NewStepper(line, intp.opts...)
	if err != nil {
		return nil, err
	}
	for {
		ok, err := stepper.Step()
		if err != nil {
			return nil, err
		}
		if !ok {
			return stepper.Tree(), nil
		}
		printStep(stepper)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
