package script

import (
	"github.com/ezrec/brainluck/translate"
)

var f = translate.From

// ErrExpression is returned when an expression does not evaluate to input
// bytes.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a string, bytes, or list of byte values", string(err))
}

// ErrByteRange is returned for an integer outside of [0, 255].
type ErrByteRange int64

func (err ErrByteRange) Error() string {
	return f("%d is not a byte value", int64(err))
}
