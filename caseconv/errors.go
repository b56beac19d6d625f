package caseconv

import "fmt"

// InvalidInputError is returned in strict mode when the primary input is
// absent or not textual.
type InvalidInputError struct {
	Reason string
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// InvalidOptionError is returned in strict mode when an option value has
// the wrong kind.
type InvalidOptionError struct {
	Option string
	Want   string
	Value  any
}

// Error implements the error interface
func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %q: expected %s, got %T", e.Option, e.Want, e.Value)
}
