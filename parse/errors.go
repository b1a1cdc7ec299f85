package parse

import "fmt"

// InvalidTokenError is returned whenever a tokenizer delivers a descriptor
// which violates the tokenizer contract.
type InvalidTokenError struct {
	Descriptor Descriptor
	Reason     string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %v: %s", e.Descriptor, e.Reason)
}

// UnterminatedScopeError is returned in strict mode, if input has been
// exhausted with scopes still open. Depth is the number of open scopes.
type UnterminatedScopeError struct {
	Depth int
}

func (e *UnterminatedScopeError) Error() string {
	if e.Depth == 1 {
		return "input exhausted with 1 scope still open"
	}
	return fmt.Sprintf("input exhausted with %d scopes still open", e.Depth)
}
