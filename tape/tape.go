// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package tape

import (
	"fmt"
	"strings"
)

const (
	SIZE   = 2024 // Default number of cells.
	WINDOW = 4    // Cells shown either side of the pointer by String().
)

// Tape is a fixed size array of byte cells with a data pointer.
type Tape struct {
	Cells   []byte // Cell storage.
	Pointer int    // Data pointer, always in [0, len(Cells)).
}

// NewTape creates a zeroed tape of size cells, with the data pointer
// at the midpoint.
func NewTape(size uint) (tp *Tape) {
	tp = &Tape{
		Cells: make([]byte, size),
	}
	tp.Pointer = len(tp.Cells) / 2

	return
}

// Size returns the number of cells.
func (tp *Tape) Size() int {
	return len(tp.Cells)
}

// Reset zeros all cells and recentres the data pointer.
func (tp *Tape) Reset() {
	clear(tp.Cells)
	tp.Pointer = len(tp.Cells) / 2
}

func (tp *Tape) valid() bool {
	return tp.Pointer >= 0 && tp.Pointer < len(tp.Cells)
}

// Increment the cell under the pointer, wrapping 255 to 0.
func (tp *Tape) Increment() (err error) {
	if !tp.valid() {
		return ErrOutOfBounds
	}

	tp.Cells[tp.Pointer]++
	return
}

// Decrement the cell under the pointer, wrapping 0 to 255.
func (tp *Tape) Decrement() (err error) {
	if !tp.valid() {
		return ErrOutOfBounds
	}

	tp.Cells[tp.Pointer]--
	return
}

// MoveRight advances the data pointer by one cell.
func (tp *Tape) MoveRight() (err error) {
	if tp.Pointer+1 >= len(tp.Cells) {
		return ErrOutOfBounds
	}

	tp.Pointer++
	return
}

// MoveLeft retreats the data pointer by one cell.
func (tp *Tape) MoveLeft() (err error) {
	if tp.Pointer-1 < 0 || len(tp.Cells) == 0 {
		return ErrOutOfBounds
	}

	tp.Pointer--
	return
}

// Write overwrites the cell under the pointer.
func (tp *Tape) Write(value byte) (err error) {
	if !tp.valid() {
		return ErrOutOfBounds
	}

	tp.Cells[tp.Pointer] = value
	return
}

// Read returns the cell under the pointer.
func (tp *Tape) Read() (value byte, err error) {
	if !tp.valid() {
		err = ErrOutOfBounds
		return
	}

	value = tp.Cells[tp.Pointer]
	return
}

// String returns the pointer and the cells around it.
func (tp *Tape) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%04d:", tp.Pointer)
	lo := max(tp.Pointer-WINDOW, 0)
	hi := min(tp.Pointer+WINDOW+1, len(tp.Cells))
	for n := lo; n < hi; n++ {
		if n == tp.Pointer {
			fmt.Fprintf(&sb, " [%02X]", tp.Cells[n])
		} else {
			fmt.Fprintf(&sb, " %02X", tp.Cells[n])
		}
	}

	return sb.String()
}
