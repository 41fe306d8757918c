// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ezrec/brainluck/tape"
)

// Machine is the execution state of a single program run.
type Machine struct {
	Verbose bool   // If set, logs every executed instruction.
	Policy  Policy // Handling of unrecognized characters.

	Program *Program   // Program being executed.
	Tape    *tape.Tape // Data memory.
	Ip      int        // Instruction pointer, an index into the program text.

	Input  io.ByteReader // Source for ','.
	Output io.ByteWriter // Destination for '.'. If nil, output is discarded.

	Ticks    int  // Instructions executed.
	Finished bool // Set once the program has terminated normally.
}

// NewMachine creates a machine for a program, with a fresh tape.
func NewMachine(prog *Program, input io.ByteReader, output io.ByteWriter) (m *Machine) {
	m = &Machine{
		Program: prog,
		Tape:    tape.NewTape(tape.SIZE),
		Input:   input,
		Output:  output,
	}

	return
}

// Reset the machine to the start of the program, with a zeroed tape.
// The input and output streams are left as they are.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	m.Tape.Reset()
	m.Ip = 0
	m.Ticks = 0
	m.Finished = false
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	var op Op
	if m.Program != nil {
		op = m.Program.At(m.Ip)
	}

	text += fmt.Sprintf("% 6s: %04d\n", "ip", m.Ip)
	text += fmt.Sprintf("% 6s: %v\n", "op", op)
	text += fmt.Sprintf("% 6s: %d\n", "ticks", m.Ticks)
	text += fmt.Sprintf("% 6s: %v\n", "tape", m.Tape)

	return
}

// Tick executes a single instruction. done is set once the program has
// terminated normally.
func (m *Machine) Tick() (done bool, err error) {
	if m.Finished {
		done = true
		return
	}

	if m.Program == nil {
		err = ErrNoProgram
		return
	}

	ip := m.Ip
	op := m.Program.At(ip)
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Op: op, Err: err}
		}
	}()

	if ip >= m.Program.Len() {
		m.Finished = true
		done = true
		return
	}

	if op == OP_NONE {
		if m.Policy == POLICY_SKIP {
			m.Ip++
			return
		}
		if m.Verbose {
			log.Printf("%04d: terminated by %q", ip, m.Program.Text()[ip])
		}
		m.Finished = true
		done = true
		return
	}

	if m.Verbose {
		log.Printf("%04d: %v %v", ip, op, m.Tape)
	}

	err = m.Execute(op)
	if err != nil {
		return
	}

	m.Ticks++

	return
}

// Execute a single decoded instruction at the current instruction pointer.
func (m *Machine) Execute(op Op) (err error) {
	tp := m.Tape
	next_ip := m.Ip + 1

	switch op {
	case OP_RIGHT:
		err = tp.MoveRight()
	case OP_LEFT:
		err = tp.MoveLeft()
	case OP_INC:
		err = tp.Increment()
	case OP_DEC:
		err = tp.Decrement()
	case OP_OUTPUT:
		var value byte
		value, err = tp.Read()
		if err == nil && m.Output != nil {
			err = m.Output.WriteByte(value)
		}
	case OP_INPUT:
		if m.Input == nil {
			err = ErrEndOfInput
			break
		}
		var value byte
		value, err = m.Input.ReadByte()
		if errors.Is(err, io.EOF) {
			err = ErrEndOfInput
		}
		if err == nil {
			err = tp.Write(value)
		}
	case OP_JUMP_FWD:
		var value byte
		value, err = tp.Read()
		if err == nil && value == 0 {
			var index int
			index, err = m.Program.MatchClose(m.Ip)
			next_ip = index + 1
		}
	case OP_JUMP_BACK:
		var value byte
		value, err = tp.Read()
		if err == nil && value != 0 {
			var index int
			index, err = m.Program.MatchOpen(m.Ip)
			next_ip = index + 1
		}
	default:
		err = ErrInvalidOp(op)
	}

	if err != nil {
		return
	}

	m.Ip = next_ip

	return
}

// Run ticks the machine until the program terminates or fails.
func (m *Machine) Run() (err error) {
	for done := false; !done; {
		done, err = m.Tick()
		if err != nil {
			return
		}
	}

	return
}
