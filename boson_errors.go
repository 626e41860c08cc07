package boson

import (
	"errors"
	"fmt"
)

// HelpInvokedErr is returned by Runner invocations when help was
// requested (via -h or --help). Callers can compare against this
// constant with errors.Is to detect that help was shown instead of the
// command running.
var HelpInvokedErr = errors.New("help invoked")

// SwitchError reports an unknown or malformed option token, a missing
// or invalid value for a value-consuming switch, or a value position
// occupied by another valid switch token. Switch names the offender.
type SwitchError struct {
	Switch string
	msg    string
}

func (e *SwitchError) Error() string {
	return e.msg
}

func newSwitchError(switchName, format string, args ...any) *SwitchError {
	return &SwitchError{Switch: switchName, msg: fmt.Sprintf(format, args...)}
}

// ArityError reports a positional-argument count that does not match a
// non-splat command's declared arity.
type ArityError struct {
	Command  string
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("command %q takes %d arguments, got %d", e.Command, e.Expected, e.Actual)
}

// DefaultEvalError reports a failed default-value factory for a
// positional slot. It signals a registration bug, never bad user input,
// and is therefore never converted into a printed diagnostic.
type DefaultEvalError struct {
	Arg  string // positional slot name
	Slot int    // positional slot index
	Err  error
}

func (e *DefaultEvalError) Error() string {
	return fmt.Sprintf("default for argument %q (slot %d) failed: %v", e.Arg, e.Slot, e.Err)
}

func (e *DefaultEvalError) Unwrap() error {
	return e.Err
}

// translationFailure reports whether an error is one the dispatcher may
// swallow into a printed diagnostic: user-input errors from translation.
func translationFailure(err error) bool {
	var se *SwitchError
	var ae *ArityError
	return errors.As(err, &se) || errors.As(err, &ae)
}
