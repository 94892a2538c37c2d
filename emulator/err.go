package emulator

import (
	"errors"

	"github.com/ezrec/wirenet/translate"
)

var f = translate.From

var (
	ErrCircuitMissing = errors.New(f("circuit missing"))
)

// ErrRuntime indicates the evaluation pass of a runtime error.
type ErrRuntime struct {
	Pass int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("pass %d %v", err.Pass, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
