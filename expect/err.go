package expect

import (
	"errors"

	"github.com/ezrec/z8t/translate"
)

var f = translate.From

var (
	ErrNoMatch     = errors.New(f("not an expectation"))
	ErrTokenLength = errors.New(f("token too long"))
	ErrLineLength  = errors.New(f("line too long, remainder ignored"))
)

// ErrSyntax locates a skipped line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRead is a failure reading the expectation stream.
type ErrRead struct {
	LineNo int
	Err    error
}

func (err *ErrRead) Error() string {
	return f("after line %d %v", err.LineNo, err.Err)
}

func (err *ErrRead) Unwrap() error {
	return err.Err
}
