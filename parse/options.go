package parse

import (
	"github.com/npillmayer/schuko/gconf"
)

// Option configures a parse run, eager or stepwise.
type Option func(c *config)

type config struct {
	strict bool // fail on unterminated scopes
}

func makeConfig(opts []Option) config {
	c := config{
		strict: gconf.GetBool("strict-scopes"),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// StrictScopes sets or clears strict mode. In strict mode, input exhausted
// with scopes still open results in an UnterminatedScopeError.
// Otherwise open scopes are closed silently and partial trees are retained.
//
// If this option is not given, the default is read from configuration key
// "strict-scopes".
func StrictScopes(b bool) Option {
	return func(c *config) {
		c.strict = b
	}
}
