package tape

import (
	"errors"

	"github.com/ezrec/brainluck/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrOutOfBounds = errors.New(f("data pointer out of bounds"))
)
