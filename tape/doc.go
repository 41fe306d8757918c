// Package tape implements the data memory of the BrainLuck machine.
//
// A tape is a fixed number of byte cells and a single data pointer. Cell
// arithmetic wraps at the byte boundary. The data pointer never leaves
// the tape; a move past either edge fails with ErrOutOfBounds and leaves
// the pointer where it was.
package tape
