package harness

import (
	"github.com/ezrec/z8t/translate"
)

var f = translate.From

// ErrRom indicates the ROM image could not be loaded.
type ErrRom struct {
	Path string
	Err  error
}

func (err *ErrRom) Error() string {
	return f("could not open rom file: %v: %v", err.Path, err.Err)
}

func (err *ErrRom) Unwrap() error {
	return err.Err
}
