// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"iter"
)

// NO_MATCH marks a bracket without a balancing partner.
const NO_MATCH = -1

// Program is an immutable instruction text with its bracket pairs.
type Program struct {
	text  string
	match []int // Partner index for each bracket, NO_MATCH otherwise.
}

// Compile pairs the brackets of a program text.
// Compile never fails; unmatched brackets are reported by MatchClose and
// MatchOpen when execution needs them.
func Compile(text string) (prog *Program) {
	prog = &Program{
		text:  text,
		match: make([]int, len(text)),
	}

	var open Stack
	for ip := range len(text) {
		prog.match[ip] = NO_MATCH
		switch Decode(text[ip]) {
		case OP_JUMP_FWD:
			open.Push(ip)
		case OP_JUMP_BACK:
			start, ok := open.Pop()
			if !ok {
				continue
			}
			prog.match[start] = ip
			prog.match[ip] = start
		}
	}

	return
}

// Text returns the program text.
func (prog *Program) Text() string {
	return prog.text
}

// Len returns the length of the program text.
func (prog *Program) Len() int {
	return len(prog.text)
}

// At returns the decoded instruction at ip.
func (prog *Program) At(ip int) Op {
	if ip < 0 || ip >= len(prog.text) {
		return OP_NONE
	}

	return Decode(prog.text[ip])
}

// Ops iterates over every character position and its decoded instruction.
func (prog *Program) Ops() iter.Seq2[int, Op] {
	return func(yield func(ip int, op Op) bool) {
		for ip := range len(prog.text) {
			if !yield(ip, Decode(prog.text[ip])) {
				return
			}
		}
	}
}

// MatchClose returns the index of the ']' that balances the '[' at ip.
func (prog *Program) MatchClose(ip int) (index int, err error) {
	if prog.At(ip) != OP_JUMP_FWD || prog.match[ip] == NO_MATCH {
		err = ErrUnbalancedBrackets
		return
	}

	index = prog.match[ip]
	return
}

// MatchOpen returns the index of the '[' that balances the ']' at ip.
func (prog *Program) MatchOpen(ip int) (index int, err error) {
	if prog.At(ip) != OP_JUMP_BACK || prog.match[ip] == NO_MATCH {
		err = ErrUnbalancedBrackets
		return
	}

	index = prog.match[ip]
	return
}

// ScanClose finds the ']' balancing the '[' at ip by scanning forward.
func (prog *Program) ScanClose(ip int) (index int, err error) {
	return prog.scan(ip, 1, OP_JUMP_FWD, OP_JUMP_BACK)
}

// ScanOpen finds the '[' balancing the ']' at ip by scanning backward.
func (prog *Program) ScanOpen(ip int) (index int, err error) {
	return prog.scan(ip, -1, OP_JUMP_BACK, OP_JUMP_FWD)
}

// scan walks from ip in direction dir, counting same and opposite
// brackets, and stops where the depth returns to zero.
func (prog *Program) scan(ip int, dir int, same Op, opposite Op) (index int, err error) {
	if prog.At(ip) != same {
		err = ErrUnbalancedBrackets
		return
	}

	depth := 0
	for index = ip; index >= 0 && index < len(prog.text); index += dir {
		switch prog.At(index) {
		case same:
			depth++
		case opposite:
			depth--
		}
		if depth == 0 {
			return
		}
	}

	index = 0
	err = ErrUnbalancedBrackets
	return
}
