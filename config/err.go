package config

import (
	"errors"

	"github.com/ezrec/z8t/translate"
)

var f = translate.From

var (
	ErrType  = errors.New(f("wrong type"))
	ErrRange = errors.New(f("out of range"))
)

// ErrConfig locates a run file problem.
type ErrConfig struct {
	Path string
	Name string // Global at fault, if any.
	Err  error
}

func (err *ErrConfig) Error() string {
	if len(err.Name) == 0 {
		return f("%v: %v", err.Path, err.Err)
	}
	return f("%v: %v: %v", err.Path, err.Name, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
