package machine

import (
	"errors"

	"github.com/ezrec/brainluck/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrUnbalancedBrackets = errors.New(f("unbalanced brackets"))
	ErrEndOfInput         = errors.New(f("end of input"))
	ErrNoProgram          = errors.New(f("no program"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  int
	Op  Op
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d '%v' %v", err.Ip, err.Op, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrInvalidOp is returned when asked to execute an op that is not an
// instruction.
type ErrInvalidOp Op

func (eo ErrInvalidOp) Error() string {
	return f("invalid op %v", Op(eo))
}

func (eo ErrInvalidOp) Is(err error) (ok bool) {
	_, ok = err.(ErrInvalidOp)
	return
}
