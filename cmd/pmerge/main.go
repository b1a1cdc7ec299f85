package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/pmerge/lang"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// settings holds the values of global flags.
type settings struct {
	strict bool
	lexer  string
	ops    string
	trace  string
	table  *lang.OpTable
}

func main() {
	initDisplay()
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	rootCmd := &cobra.Command{
		Use:   "pmerge",
		Short: "Build and display precedence merge trees",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&s.strict, "strict", false, "fail on unterminated scopes")
	flags.StringVar(&s.lexer, "lexer", "lm", "lexer to use [lm|go]")
	flags.StringVar(&s.ops, "ops", "", "operator table (YAML)")
	flags.StringVar(&s.trace, "trace", "Info", "trace level [Debug|Info|Error]")

	rootCmd.AddCommand(newParseCmd(s))
	rootCmd.AddCommand(newStepCmd(s))
	rootCmd.AddCommand(newReplCmd(s))
	rootCmd.AddCommand(newGrammarCmd())
	return rootCmd
}

// setup initializes tracing and configuration from the global flags.
// Library packages read their defaults from the configuration.
func (s *settings) setup() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if s.lexer != "lm" && s.lexer != "go" {
		return fmt.Errorf("unknown lexer %q", s.lexer)
	}
	conf := koanfadapter.New(nil, "", nil)
	conf.Set("strict-scopes", s.strict)
	conf.Set("lexer", s.lexer)
	gconf.Initialize(conf)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(s.trace))
	tracer().Debugf("lexer = %s, strict = %v", gconf.GetString("lexer"), gconf.GetBool("strict-scopes"))
	if s.ops != "" {
		f, err := os.Open(s.ops)
		if err != nil {
			return fmt.Errorf("open operator table: %w", err)
		}
		defer f.Close()
		if s.table, err = lang.LoadOpTable(f); err != nil {
			return err
		}
		tracer().Infof("using operators from %s", s.ops)
	}
	return nil
}

// options returns the options for parsing with package lang. Lexer and
// strictness are taken from the configuration.
func (s *settings) options() []lang.Option {
	if s.table == nil {
		return nil
	}
	return []lang.Option{lang.WithTable(s.table)}
}
