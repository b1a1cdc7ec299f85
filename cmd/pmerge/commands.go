package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/pmerge/eval"
	"github.com/npillmayer/pmerge/lang"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newParseCmd(s *settings) *cobra.Command {
	var view, value bool
	cmd := &cobra.Command{
		Use:          "parse <expression>",
		Short:        "Parse an expression and print its tree",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.TrimSpace(strings.Join(args, " "))
			tracer().Infof("Input argument is \"%s\"", input)
			t, err := lang.Parse(input, s.options()...)
			if err != nil {
				return err
			}
			printTree(t, view)
			if value {
				printValue(eval.NewRuntime(s.table), t)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&view, "tree", true, "display tree view")
	cmd.Flags().BoolVar(&value, "eval", false, "evaluate the expression")
	return cmd
}

func newStepCmd(s *settings) *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:          "step <expression>",
		Short:        "Build the tree of an expression one token at a time",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.TrimSpace(strings.Join(args, " "))
			stepper, err := lang.NewStepper(input, s.options()...)
			if err != nil {
				return err
			}
			for {
				ok, err := stepper.Step()
				if err != nil {
					return err
				}
				if !ok {
					break
				}
				printStep(stepper)
				time.Sleep(delay)
			}
			printTree(stepper.Tree(), true)
			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 300*time.Millisecond, "pause between steps")
	return cmd
}

func newReplCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:          "repl",
		Short:        "Parse expressions interactively",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			intp := &Intp{opts: s.options(), ops: s.table, view: true}
			if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				tracer().Debugf("stdin is not a terminal")
				return intp.Batch(os.Stdin)
			}
			repl, err := readline.New("pmerge> ")
			if err != nil {
				return err
			}
			defer repl.Close()
			intp.repl = repl
			pterm.Info.Println("Welcome to pmerge")
			tracer().Infof("Quit with <ctrl>D or :quit")
			intp.REPL()
			return nil
		},
	}
}

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "grammar",
		Short:        "Print and verify the grammar of the expression language",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), lang.Grammar())
			g, err := lang.VerifyGrammar()
			if err != nil {
				printErrors(err)
				return errors.New("grammar does not verify")
			}
			tracer().Infof("grammar verified, %d productions", len(g))
			return nil
		},
	}
}

// printErrors prints each error of an error list on a line by itself.
func printErrors(err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			pterm.Error.Println(v.Index(i).Interface())
		}
		return
	}
	pterm.Error.Println(err.Error())
}
