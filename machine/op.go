package machine

// Op is a decoded instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NONE      = Op(0) // none
	OP_RIGHT     = Op(1) // >
	OP_LEFT      = Op(2) // <
	OP_INC       = Op(3) // +
	OP_DEC       = Op(4) // -
	OP_OUTPUT    = Op(5) // .
	OP_INPUT     = Op(6) // ,
	OP_JUMP_FWD  = Op(7) // [
	OP_JUMP_BACK = Op(8) // ]
)

var opMap = [256]Op{
	'>': OP_RIGHT,
	'<': OP_LEFT,
	'+': OP_INC,
	'-': OP_DEC,
	'.': OP_OUTPUT,
	',': OP_INPUT,
	'[': OP_JUMP_FWD,
	']': OP_JUMP_BACK,
}

// Decode an instruction character. Unrecognized characters are OP_NONE.
func Decode(c byte) Op {
	return opMap[c]
}

// Valid returns true if the op is one of the eight instructions.
func (op Op) Valid() bool {
	return op > OP_NONE && op <= OP_JUMP_BACK
}
