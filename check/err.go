package check

import (
	"errors"

	"github.com/ezrec/z8t/translate"
)

var f = translate.From

var (
	// Dispatch warnings. The line is ignored.
	ErrCommandUnknown      = errors.New(f("unknown command"))
	ErrCommandBareS        = errors.New(f("no bare S register"))
	ErrCommandUnrecognized = errors.New(f("unrecognized command"))
	ErrCommandTooLong      = errors.New(f("too many letters"))
)

// ErrLine locates a dispatch warning.
type ErrLine struct {
	LineNo  int
	Command string
	Err     error
}

func (err *ErrLine) Error() string {
	return f("line %d %v: %v", err.LineNo, err.Command, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
