package memory

import (
	"errors"

	"github.com/ezrec/z8t/translate"
)

var f = translate.From

var (
	// ErrTruncated is a warning: the image did not fit and was cut short.
	ErrTruncated = errors.New(f("image longer than memory"))
)

// ErrRead is returned when an image stream cannot be read.
type ErrRead struct {
	Err error
}

func (err *ErrRead) Error() string {
	return f("image read %v", err.Err)
}

func (err *ErrRead) Unwrap() error {
	return err.Err
}
